package engine

import "github.com/piwi3910/WallCalc/internal/model"

// RollUsage describes how one purchased roll is cut.
type RollUsage struct {
	Roll    int     `json:"roll"`     // 1-based roll number
	Strips  int     `json:"strips"`   // Strips cut from this roll
	UsedM   float64 `json:"used_m"`   // Length consumed by the strips
	OffcutM float64 `json:"offcut_m"` // Length left over
	Spare   bool    `json:"spare"`    // Bought only for the margin
}

// PlanRolls distributes the strips of a result over the purchased rolls,
// filling each roll before starting the next. Margin rolls come last and
// stay uncut. A result without usable strips yields no plan.
func PlanRolls(result model.CalculationResult, roll model.RollSpec) []RollUsage {
	if result.StripsPerRoll <= 0 || result.RollsWithMargin <= 0 {
		return nil
	}

	plan := make([]RollUsage, 0, result.RollsWithMargin)
	remaining := result.TotalStripsNeeded
	for i := 1; i <= result.RollsWithMargin; i++ {
		u := RollUsage{Roll: i, Spare: i > result.RollsNeeded}
		if !u.Spare {
			u.Strips = min(result.StripsPerRoll, remaining)
			remaining -= u.Strips
		}
		u.UsedM = float64(u.Strips) * result.StripHeightM
		u.OffcutM = max(roll.LengthM-u.UsedM, 0)
		plan = append(plan, u)
	}
	return plan
}
