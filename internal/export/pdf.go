package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
)

// rollColor represents an RGB color for the strips cut from one roll.
type rollColor struct {
	R, G, B int
}

var rollColors = []rollColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

func (c rollColor) lighten() rollColor {
	return rollColor{R: c.R + (255-c.R)*2/3, G: c.G + (255-c.G)*2/3, B: c.B + (255-c.B)*2/3}
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 30.0
	drawAreaTop  = marginTop + headerHeight + 8.0
	qrSize       = 45.0
)

// ExportPDF writes a two page report: the unrolled wall with every strip
// coloured by the roll it is cut from, then a summary of inputs, results,
// costs and the roll cutting plan with a QR code of the summary.
func ExportPDF(path string, r Report) error {
	if r.Result.StripsPerRoll == 0 {
		return fmt.Errorf("no calculation result to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle("Wallpaper: "+r.Project.Name, true)

	pdf.AddPage()
	renderWallPage(pdf, r)

	pdf.AddPage()
	if err := renderSummaryPage(pdf, r); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// renderWallPage draws the walls unrolled into a single band, with the strips
// laid side by side. The part of a strip above the ceiling line is the cut
// lost to pattern matching.
func renderWallPage(pdf *fpdf.Fpdf, r Report) {
	res := r.Result
	room := r.Project.Room

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s: unrolled walls (%.2f m of %.2f m to cover)", r.Project.Name, res.EffectivePerimeterM, room.PerimeterM)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Strips: %d of %.2f m | Strips per roll: %d | Rolls: %d (%d with margin) | Waste: %.1f%%",
		res.TotalStripsNeeded, res.StripHeightM, res.StripsPerRoll, res.RollsNeeded, res.RollsWithMargin, res.WastePercentage)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	if res.EffectivePerimeterM <= 0 || res.TotalStripsNeeded == 0 {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.SetXY(marginLeft, drawAreaTop+20)
		pdf.CellFormat(200, 8, "Openings take up the whole perimeter, there is no wall to paper.", "", 0, "L", false, 0, "")
		return
	}

	stripW := r.Project.Roll.WidthCm / 100.0
	bandW := float64(res.TotalStripsNeeded) * stripW
	bandH := math.Max(res.StripHeightM, room.HeightM)

	drawWidth := pageWidth - marginLeft - marginRight - 10
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	scale := math.Min(drawWidth/bandW, drawHeight/bandH)

	offsetX := marginLeft + 10
	baseY := drawAreaTop + bandH*scale // floor line

	// Wall to cover
	wallW := res.EffectivePerimeterM * scale
	wallH := room.HeightM * scale
	pdf.SetFillColor(240, 240, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, baseY-wallH, wallW, wallH, "FD")

	for i := 0; i < res.TotalStripsNeeded; i++ {
		col := rollColors[(i/res.StripsPerRoll)%len(rollColors)]
		x := offsetX + float64(i)*stripW*scale
		w := stripW * scale

		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(x, baseY-wallH, w, wallH, "FD")

		if over := res.StripHeightM - room.HeightM; over > 1e-9 {
			light := col.lighten()
			pdf.SetFillColor(light.R, light.G, light.B)
			pdf.Rect(x, baseY-wallH-over*scale, w, over*scale, "FD")
		}

		if w > 5 && wallH > 8 {
			label := fmt.Sprintf("%d", i+1)
			pdf.SetFont("Helvetica", "", stripFontSize(w))
			pdf.SetTextColor(0, 0, 0)
			lw := pdf.GetStringWidth(label)
			pdf.SetXY(x+(w-lw)/2, baseY-wallH/2-2)
			pdf.CellFormat(lw, 4, label, "", 0, "C", false, 0, "")
		}
	}

	// Ceiling line across the band
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.SetDashPattern([]float64{2, 1}, 0)
	pdf.Line(offsetX, baseY-wallH, offsetX+bandW*scale, baseY-wallH)
	pdf.SetDashPattern([]float64{}, 0)

	drawDimensionAnnotations(pdf, res.EffectivePerimeterM, room.HeightM, offsetX, baseY-wallH, wallW, wallH)
	drawRollLegend(pdf, r, baseY+8)
}

// drawDimensionAnnotations labels the wall run below the band and the room
// height to its left.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, runM, heightM, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.2f m", runM)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.2f m", heightM)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawRollLegend lists which strips come from which roll.
func drawRollLegend(pdf *fpdf.Fpdf, r Report, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Rolls:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	first := 1
	for i, u := range r.Plan {
		if u.Spare {
			continue
		}
		col := rollColors[i%len(rollColors)]
		label := fmt.Sprintf("Roll %d: strips %d-%d", u.Roll, first, first+u.Strips-1)
		if u.Strips == 1 {
			label = fmt.Sprintf("Roll %d: strip %d", u.Roll, first)
		}
		first += u.Strips
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")
		xPos += labelW + 2
	}

	if spare := r.Result.RollsWithMargin - r.Result.RollsNeeded; spare > 0 {
		pdf.SetXY(marginLeft, startY+6)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.CellFormat(150, 4, fmt.Sprintf("Plus %d spare roll(s) for the 10%% margin.", spare), "", 0, "L", false, 0, "")
	}
}

type summaryItem struct {
	label string
	value string
}

// renderSummaryPage draws inputs, results, costs and the roll plan.
func renderSummaryPage(pdf *fpdf.Fpdf, r Report) error {
	res := r.Result
	p := r.Project

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight-qrSize, 10, "Wallpaper Summary: "+p.Name, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight-qrSize-5, marginTop+12)

	png, err := SummaryQR(r, 256)
	if err != nil {
		return err
	}
	pdf.RegisterImageOptionsReader("summary_qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions("summary_qr", pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	colX := marginLeft
	y := marginTop + 18
	y = drawSection(pdf, colX, y, "Roll", []summaryItem{
		{"Width", fmt.Sprintf("%.1f cm", p.Roll.WidthCm)},
		{"Length", fmt.Sprintf("%.2f m", p.Roll.LengthM)},
		{"Pattern repeat", patternLabel(p.Roll.PatternRepeatCm)},
	})
	y = drawSection(pdf, colX, y, "Room", []summaryItem{
		{"Perimeter", fmt.Sprintf("%.2f m", p.Room.PerimeterM)},
		{"Height", fmt.Sprintf("%.2f m", p.Room.HeightM)},
		{"Windows", fmt.Sprintf("%d (%.2f m wide)", p.Windows.Len(), p.Windows.TotalWidth())},
		{"Doors", fmt.Sprintf("%d (%.2f m wide)", p.Doors.Len(), p.Doors.TotalWidth())},
	})
	drawSection(pdf, colX, y, "Areas", []summaryItem{
		{"Wall area", fmt.Sprintf("%.2f m²", res.WallAreaM2)},
		{"Openings area", fmt.Sprintf("%.2f m²", res.OpeningsAreaM2)},
		{"Area to cover", fmt.Sprintf("%.2f m²", res.EffectiveAreaM2)},
	})

	colX = marginLeft + 85
	y = marginTop + 18
	y = drawSection(pdf, colX, y, "Result", []summaryItem{
		{"Strip length", fmt.Sprintf("%.2f m", res.StripHeightM)},
		{"Strips per roll", fmt.Sprintf("%d", res.StripsPerRoll)},
		{"Strips needed", fmt.Sprintf("%d", res.TotalStripsNeeded)},
		{"Rolls needed", fmt.Sprintf("%d", res.RollsNeeded)},
		{"Rolls to buy (+10%)", fmt.Sprintf("%d", res.RollsWithMargin)},
		{"Waste", fmt.Sprintf("%.1f%%", res.WastePercentage)},
	})
	if r.HasPrice() {
		drawSection(pdf, colX, y, "Cost", []summaryItem{
			{"Price per roll", formatMoney(r.Cost.PricePerRoll, r.Currency)},
			{"Minimum", formatMoney(r.Cost.CostMinimum, r.Currency)},
			{"With margin", formatMoney(r.Cost.CostWithMargin, r.Currency)},
			{"Per m² covered", formatMoney(r.Cost.CostPerSquareM, r.Currency)},
		})
	}

	drawPlanTable(pdf, marginLeft+170, marginTop+qrSize+8, r)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by WallCalc - Wallpaper Roll Calculator", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}

// drawSection writes a titled list of label/value pairs and returns the
// y position below it.
func drawSection(pdf *fpdf.Fpdf, x, y float64, title string, items []summaryItem) float64 {
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(x, y)
	pdf.CellFormat(80, 7, title, "", 0, "L", false, 0, "")
	y += 8

	for _, item := range items {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(x+3, y)
		pdf.CellFormat(40, 5, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(35, 5, tr(item.value), "", 0, "L", false, 0, "")
		y += 5.5
	}
	return y + 4
}

// drawPlanTable renders the per-roll cutting plan, truncated to the page.
func drawPlanTable(pdf *fpdf.Fpdf, x, y float64, r Report) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(x, y)
	pdf.CellFormat(80, 7, "Cutting Plan", "", 0, "L", false, 0, "")
	y += 8

	colWidths := []float64{15, 15, 25, 25, 17}
	headers := []string{"Roll", "Strips", "Used", "Offcut", "Spare"}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	xPos := x
	for i, h := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 5, h, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 5

	pdf.SetFont("Helvetica", "", 8)
	maxY := pageHeight - marginBottom - 10
	for i, u := range r.Plan {
		if y+5 > maxY {
			pdf.SetXY(x, y)
			pdf.CellFormat(90, 5, fmt.Sprintf("... %d more rolls", len(r.Plan)-i), "", 0, "L", false, 0, "")
			return
		}
		spare := ""
		if u.Spare {
			spare = "yes"
		}
		row := []string{
			fmt.Sprintf("%d", u.Roll),
			fmt.Sprintf("%d", u.Strips),
			fmt.Sprintf("%.2f m", u.UsedM),
			fmt.Sprintf("%.2f m", u.OffcutM),
			spare,
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos = x
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 5, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 5
	}
}

func patternLabel(repeatCm float64) string {
	if repeatCm <= 0 {
		return "none"
	}
	return fmt.Sprintf("%.1f cm", repeatCm)
}

// stripFontSize returns a font size that fits a strip of width w mm.
func stripFontSize(w float64) float64 {
	switch {
	case w > 12:
		return 8
	case w > 8:
		return 7
	default:
		return 6
	}
}
