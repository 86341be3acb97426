package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary  = "Summary"
	sheetOpenings = "Openings"
	sheetPlan     = "Cutting Plan"
)

// ExportXLSX writes a workbook with a summary sheet, the list of openings and
// the per-roll cutting plan. Numbers are stored as numbers so the sheet can
// be recalculated by hand.
func ExportXLSX(path string, r Report) error {
	if r.Result.StripsPerRoll == 0 {
		return fmt.Errorf("no calculation result to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetSummary); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	if err := writeSummarySheet(f, r, bold); err != nil {
		return err
	}
	if err := writeOpeningsSheet(f, r, bold); err != nil {
		return err
	}
	if err := writePlanSheet(f, r, bold); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, r Report, bold int) error {
	p := r.Project
	res := r.Result
	rows := [][]interface{}{
		{"Project", p.Name},
		{},
		{"Roll width (cm)", p.Roll.WidthCm},
		{"Roll length (m)", p.Roll.LengthM},
		{"Pattern repeat (cm)", p.Roll.PatternRepeatCm},
		{"Room perimeter (m)", p.Room.PerimeterM},
		{"Room height (m)", p.Room.HeightM},
		{"Windows", p.Windows.Len()},
		{"Doors", p.Doors.Len()},
		{},
		{"Wall area (m²)", res.WallAreaM2},
		{"Openings area (m²)", res.OpeningsAreaM2},
		{"Area to cover (m²)", res.EffectiveAreaM2},
		{"Strip length (m)", res.StripHeightM},
		{"Strips per roll", res.StripsPerRoll},
		{"Strips needed", res.TotalStripsNeeded},
		{"Rolls needed", res.RollsNeeded},
		{"Rolls with margin", res.RollsWithMargin},
		{"Waste (%)", res.WastePercentage},
	}
	if r.HasPrice() {
		rows = append(rows,
			[]interface{}{},
			[]interface{}{"Currency", r.Currency},
			[]interface{}{"Price per roll", r.Cost.PricePerRoll},
			[]interface{}{"Cost minimum", r.Cost.CostMinimum},
			[]interface{}{"Cost with margin", r.Cost.CostWithMargin},
			[]interface{}{"Cost per m²", r.Cost.CostPerSquareM},
		)
	}

	if err := writeRows(f, sheetSummary, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetSummary, "A1", fmt.Sprintf("A%d", len(rows)), bold); err != nil {
		return fmt.Errorf("failed to style summary: %w", err)
	}
	return f.SetColWidth(sheetSummary, "A", "A", 24)
}

func writeOpeningsSheet(f *excelize.File, r Report, bold int) error {
	if _, err := f.NewSheet(sheetOpenings); err != nil {
		return fmt.Errorf("failed to add openings sheet: %w", err)
	}

	rows := [][]interface{}{{"Type", "ID", "Width (m)", "Height (m)", "Area (m²)"}}
	for _, o := range r.Project.Windows.Items {
		rows = append(rows, []interface{}{"window", o.ID, o.WidthM, o.HeightM, o.Area()})
	}
	for _, o := range r.Project.Doors.Items {
		rows = append(rows, []interface{}{"door", o.ID, o.WidthM, o.HeightM, o.Area()})
	}

	if err := writeRows(f, sheetOpenings, rows); err != nil {
		return err
	}
	return f.SetCellStyle(sheetOpenings, "A1", "E1", bold)
}

func writePlanSheet(f *excelize.File, r Report, bold int) error {
	if _, err := f.NewSheet(sheetPlan); err != nil {
		return fmt.Errorf("failed to add plan sheet: %w", err)
	}

	rows := [][]interface{}{{"Roll", "Strips", "Used (m)", "Offcut (m)", "Spare"}}
	for _, u := range r.Plan {
		rows = append(rows, []interface{}{u.Roll, u.Strips, u.UsedM, u.OffcutM, u.Spare})
	}

	if err := writeRows(f, sheetPlan, rows); err != nil {
		return err
	}
	return f.SetCellStyle(sheetPlan, "A1", "E1", bold)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
