// Package engine computes how many wallpaper rolls cover a room.
//
// Calculate is a pure function of its inputs: it keeps no state between
// calls and is safe to call from several goroutines at once. Callers own
// the roll, room and opening values and simply call it again whenever one
// of them changes.
package engine

import (
	"github.com/piwi3910/WallCalc/internal/model"
)

// Purchasing margin of 10%, applied as ceil(rolls * 11 / 10).
const (
	marginNumerator   = 11
	marginDenominator = 10
)

// Areas holds the wall, opening and remaining areas in m².
type Areas struct {
	Wall      float64
	Openings  float64
	Effective float64
}

// ComputeAreas returns the wall area, the area of all openings and the
// area left to paper, which is never negative.
func ComputeAreas(room model.RoomSpec, windows, doors []model.Opening) Areas {
	wall := room.WallArea()
	openings := model.TotalOpeningArea(windows) + model.TotalOpeningArea(doors)
	effective := wall - openings
	if effective < 0 {
		effective = 0
	}
	return Areas{Wall: wall, Openings: openings, Effective: effective}
}

// StripHeight returns the length cut from the roll for one wall-height strip.
// With a pattern repeat the room height is rounded up to the next whole
// repeat so neighbouring strips line up; without one it is the room height.
func StripHeight(roll model.RollSpec, room model.RoomSpec) float64 {
	if !roll.HasPatternRepeat() {
		return room.HeightM
	}
	return roundUpToMultiple(room.HeightM, roll.RepeatM())
}

// StripsPerRoll returns how many full strips one roll yields.
// A leftover shorter than a strip is not counted.
func StripsPerRoll(lengthM, stripHeightM float64) int {
	if stripHeightM <= 0 || lengthM <= 0 {
		return 0
	}
	return floorDiv(lengthM, stripHeightM)
}

// EffectivePerimeter returns the wall run left after subtracting the width
// of every opening, never negative.
func EffectivePerimeter(room model.RoomSpec, windows, doors []model.Opening) float64 {
	p := room.PerimeterM - model.TotalOpeningWidth(windows) - model.TotalOpeningWidth(doors)
	if p < 0 {
		return 0
	}
	return p
}

// StripsNeeded returns the number of strips covering perimeterM with rolls
// widthCm wide. Partial coverage always needs a whole strip.
func StripsNeeded(perimeterM, widthCm float64) int {
	if perimeterM <= 0 {
		return 0
	}
	return ceilDiv(perimeterM*100, widthCm)
}

// WastePercentage returns the share of purchased length that is not used,
// or 0 when nothing is purchased.
func WastePercentage(totalStrips int, stripHeightM float64, rolls int, lengthM float64) float64 {
	used := float64(totalStrips) * stripHeightM
	available := float64(rolls) * lengthM
	if available <= 0 {
		return 0
	}
	return (available - used) / available * 100
}

// Calculate turns a roll, a room and its openings into strip and roll counts.
//
// It returns *model.DegenerateInputError when the roll cannot yield a single
// strip (too short for the pattern-aligned strip height, or a non-positive
// strip height), and *model.InvalidDimensionError when the roll width is not
// positive. Both unwrap to the model sentinels. On error the result is zero.
func Calculate(roll model.RollSpec, room model.RoomSpec, windows, doors []model.Opening) (model.CalculationResult, error) {
	areas := ComputeAreas(room, windows, doors)

	stripHeight := StripHeight(roll, room)
	if stripHeight <= 0 {
		return model.CalculationResult{}, &model.DegenerateInputError{StripHeightM: stripHeight, LengthM: roll.LengthM}
	}

	stripsPerRoll := StripsPerRoll(roll.LengthM, stripHeight)
	if stripsPerRoll == 0 {
		return model.CalculationResult{}, &model.DegenerateInputError{StripHeightM: stripHeight, LengthM: roll.LengthM}
	}

	if roll.WidthCm <= 0 {
		return model.CalculationResult{}, &model.InvalidDimensionError{Field: "roll width", Value: roll.WidthCm}
	}

	perimeter := EffectivePerimeter(room, windows, doors)
	totalStrips := StripsNeeded(perimeter, roll.WidthCm)
	rolls := ceilIntDiv(totalStrips, stripsPerRoll)
	rollsWithMargin := withMargin(rolls)

	return model.CalculationResult{
		StripsPerRoll:       stripsPerRoll,
		TotalStripsNeeded:   totalStrips,
		RollsNeeded:         rolls,
		RollsWithMargin:     rollsWithMargin,
		WastePercentage:     WastePercentage(totalStrips, stripHeight, rollsWithMargin, roll.LengthM),
		WallAreaM2:          areas.Wall,
		OpeningsAreaM2:      areas.Openings,
		EffectiveAreaM2:     areas.Effective,
		StripHeightM:        stripHeight,
		EffectivePerimeterM: perimeter,
	}, nil
}

// CalculateProject runs Calculate on a snapshot of the project's inputs.
func CalculateProject(p model.Project) (model.CalculationResult, error) {
	return Calculate(p.Roll, p.Room, p.Windows.Snapshot(), p.Doors.Snapshot())
}
