// Package export writes calculation reports to PDF and Excel files.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/piwi3910/WallCalc/internal/engine"
	"github.com/piwi3910/WallCalc/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// Report bundles the inputs and outputs of one calculation for export.
type Report struct {
	Project  model.Project
	Result   model.CalculationResult
	Cost     model.CostEstimate
	Plan     []engine.RollUsage
	Currency string
}

// NewReport prices a result and plans the roll cuts for it.
func NewReport(p model.Project, result model.CalculationResult, pricePerRoll float64, currency string) Report {
	return Report{
		Project:  p,
		Result:   result,
		Cost:     model.EstimateCost(result, p.Roll, pricePerRoll),
		Plan:     engine.PlanRolls(result, p.Roll),
		Currency: currency,
	}
}

// HasPrice reports whether costs should be shown.
func (r Report) HasPrice() bool {
	return r.Cost.PricePerRoll > 0
}

// QRSummary is the data encoded into a report's QR code.
type QRSummary struct {
	Project         string  `json:"project"`
	RollWidthCm     float64 `json:"roll_width_cm"`
	RollLengthM     float64 `json:"roll_length_m"`
	PatternRepeatCm float64 `json:"pattern_repeat_cm,omitempty"`
	PerimeterM      float64 `json:"perimeter_m"`
	HeightM         float64 `json:"height_m"`
	Windows         int     `json:"windows"`
	Doors           int     `json:"doors"`
	Strips          int     `json:"strips"`
	Rolls           int     `json:"rolls"`
	RollsWithMargin int     `json:"rolls_with_margin"`
}

// Summary extracts the QR payload from a report.
func (r Report) Summary() QRSummary {
	return QRSummary{
		Project:         r.Project.Name,
		RollWidthCm:     r.Project.Roll.WidthCm,
		RollLengthM:     r.Project.Roll.LengthM,
		PatternRepeatCm: r.Project.Roll.PatternRepeatCm,
		PerimeterM:      r.Project.Room.PerimeterM,
		HeightM:         r.Project.Room.HeightM,
		Windows:         r.Project.Windows.Len(),
		Doors:           r.Project.Doors.Len(),
		Strips:          r.Result.TotalStripsNeeded,
		Rolls:           r.Result.RollsNeeded,
		RollsWithMargin: r.Result.RollsWithMargin,
	}
}

// SummaryQR renders the report summary as a QR code PNG.
func SummaryQR(r Report, size int) ([]byte, error) {
	data, err := json.Marshal(r.Summary())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

func formatMoney(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}
