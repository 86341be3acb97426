// Package importer reads window and door lists from CSV and Excel files and
// room outlines from DXF drawings. It supports automatic delimiter detection,
// flexible column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/WallCalc/internal/model"
	"github.com/xuri/excelize/v2"
)

// Kind tells windows and doors apart in an imported list.
type Kind int

const (
	KindWindow Kind = iota
	KindDoor
)

func (k Kind) String() string {
	if k == KindDoor {
		return "door"
	}
	return "window"
}

// Dimension is one imported opening in metres.
type Dimension struct {
	WidthM  float64
	HeightM float64
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Windows  []Dimension
	Doors    []Dimension
	Errors   []string
	Warnings []string
}

// Count returns the number of imported openings.
func (r ImportResult) Count() int {
	return len(r.Windows) + len(r.Doors)
}

// Apply appends the imported openings to the project. Each one receives a
// fresh ID from the project's lists.
func (r ImportResult) Apply(p *model.Project) {
	for _, d := range r.Windows {
		p.Windows.Add(d.WidthM, d.HeightM)
	}
	for _, d := range r.Doors {
		p.Doors.Add(d.WidthM, d.HeightM)
	}
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Kind     int
	Width    int
	Height   int
	Quantity int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"kind":     {"kind", "type", "opening", "opening type", "category"},
	"width":    {"width", "w", "width (m)", "width_m", "breadth"},
	"height":   {"height", "h", "height (m)", "height_m"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs"},
}

// maxPlausibleM is the largest opening side accepted without a warning.
const maxPlausibleM = 10.0

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping (kind, width, height, quantity) and false otherwise.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Kind: -1, Width: -1, Height: -1, Quantity: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "kind":
					if mapping.Kind == -1 {
						mapping.Kind = i
					}
				case "width":
					if mapping.Width == -1 {
						mapping.Width = i
					}
				case "height":
					if mapping.Height == -1 {
						mapping.Height = i
					}
				case "quantity":
					if mapping.Quantity == -1 {
						mapping.Quantity = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Kind: 0, Width: 1, Height: 2, Quantity: 3}, false
	}
	return mapping, true
}

// parseKind converts a cell value to a Kind.
func parseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "window", "windows", "win", "w":
		return KindWindow, true
	case "door", "doors", "d":
		return KindDoor, true
	default:
		return KindWindow, false
	}
}

// parseNumber accepts both "1.2" and "1,2".
func parseNumber(s string) (float64, error) {
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parsedRow is one data row after validation.
type parsedRow struct {
	kind     Kind
	dim      Dimension
	quantity int
}

// parseRow extracts an opening from a row using the given column mapping.
// Returns the row, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (parsedRow, string, string) {
	kindStr := getCell(row, mapping.Kind)
	if kindStr == "" {
		return parsedRow{}, fmt.Sprintf("%s: Missing opening type", rowLabel), ""
	}
	kind, ok := parseKind(kindStr)
	if !ok {
		return parsedRow{}, fmt.Sprintf("%s: Unknown opening type '%s'", rowLabel, kindStr), ""
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return parsedRow{}, fmt.Sprintf("%s: Missing width value", rowLabel), ""
	}
	width, err := parseNumber(widthStr)
	if err != nil {
		return parsedRow{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), ""
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return parsedRow{}, fmt.Sprintf("%s: Missing height value", rowLabel), ""
	}
	height, err := parseNumber(heightStr)
	if err != nil {
		return parsedRow{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr), ""
	}

	qty := 1
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		qty, err = strconv.Atoi(qtyStr)
		if err != nil {
			return parsedRow{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), ""
		}
	}

	if width <= 0 || height <= 0 || qty <= 0 {
		return parsedRow{}, fmt.Sprintf("%s: Width, height, and quantity must be positive", rowLabel), ""
	}

	var warning string
	if width > maxPlausibleM || height > maxPlausibleM {
		warning = fmt.Sprintf("%s: %.2f x %.2f m is unusually large, values are read as metres", rowLabel, width, height)
	}

	return parsedRow{kind: kind, dim: Dimension{WidthM: width, HeightM: height}, quantity: qty}, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports openings from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports openings from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports openings from the first sheet of an Excel workbook.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// ImportFile picks the CSV or Excel reader from the file extension.
func ImportFile(path string) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path)
	}
	return ImportCSV(path)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Kind == -1 {
			missing = append(missing, "Type")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// An unrecognized header still has a non-numeric width cell
		if _, err := parseNumber(strings.TrimSpace(rows[0][1])); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		parsed, errMsg, warning := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		for n := 0; n < parsed.quantity; n++ {
			if parsed.kind == KindDoor {
				result.Doors = append(result.Doors, parsed.dim)
			} else {
				result.Windows = append(result.Windows, parsed.dim)
			}
		}
	}

	return result
}
