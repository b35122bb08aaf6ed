// Package importer provides CSV and Excel import functionality for reel and
// cut lists. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/reelcut/internal/model"
)

// ImportResult holds the results of an import operation. An import with
// Errors may still carry the rows that parsed cleanly.
type ImportResult struct {
	Reels    []model.Reel
	Cuts     []model.CutRequest
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// A value of -1 means the column was not found.
type ColumnMapping struct {
	Serial   int
	Category int
	Length   int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"serial":   {"serial", "serial_number", "serial number", "sn", "reel", "reel_id", "id"},
	"category": {"item_number", "item number", "item", "category", "part_number", "part number", "pn"},
	"length":   {"length", "len", "l", "meters", "m", "feet", "ft"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter that
// produces the most consistent column count across lines wins.
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

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or the
// given positional fallback mapping and false if no header was found.
func DetectColumns(row []string, positional ColumnMapping) (ColumnMapping, bool) {
	mapping := ColumnMapping{Serial: -1, Category: -1, Length: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "serial":
						if mapping.Serial == -1 {
							mapping.Serial = i
						}
					case "category":
						if mapping.Category == -1 {
							mapping.Category = i
						}
					case "length":
						if mapping.Length == -1 {
							mapping.Length = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		return positional, false
	}
	return mapping, true
}

// reelPositional is the column order assumed for headerless reel files.
var reelPositional = ColumnMapping{Serial: 0, Category: 1, Length: 2}

// cutPositional is the column order assumed for headerless cut files.
var cutPositional = ColumnMapping{Serial: -1, Category: 0, Length: 1}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseLength parses a positive decimal length from a cell value.
func parseLength(s, rowLabel string) (decimal.Decimal, string) {
	if s == "" {
		return decimal.Zero, fmt.Sprintf("%s: Missing length value", rowLabel)
	}
	length, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Sprintf("%s: Invalid length '%s'", rowLabel, s)
	}
	if length.Sign() <= 0 {
		return decimal.Zero, fmt.Sprintf("%s: Length must be positive, got '%s'", rowLabel, s)
	}
	return length, ""
}

// parseReelRow extracts a Reel from a row using the given column mapping.
func parseReelRow(row []string, mapping ColumnMapping, rowLabel string) (model.Reel, string) {
	serial := getCell(row, mapping.Serial)
	if serial == "" {
		return model.Reel{}, fmt.Sprintf("%s: Missing serial value", rowLabel)
	}

	category := getCell(row, mapping.Category)
	if category == "" {
		return model.Reel{}, fmt.Sprintf("%s: Missing item number value", rowLabel)
	}

	length, errMsg := parseLength(getCell(row, mapping.Length), rowLabel)
	if errMsg != "" {
		return model.Reel{}, errMsg
	}

	return model.NewReel(serial, category, length), ""
}

// parseCutRow extracts a CutRequest from a row using the given column mapping.
func parseCutRow(row []string, mapping ColumnMapping, rowLabel string) (model.CutRequest, string) {
	category := getCell(row, mapping.Category)
	if category == "" {
		return model.CutRequest{}, fmt.Sprintf("%s: Missing item number value", rowLabel)
	}

	length, errMsg := parseLength(getCell(row, mapping.Length), rowLabel)
	if errMsg != "" {
		return model.CutRequest{}, errMsg
	}

	return model.NewCutRequest(category, length), ""
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

// readCSV loads a CSV file into rows, auto-detecting the delimiter.
func readCSV(path string) ([][]string, []string, []string) {
	var warnings []string

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []string{fmt.Sprintf("Cannot open file: %v", err)}, nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, []string{"File is empty"}, nil
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, []string{fmt.Sprintf("Cannot read CSV: %v", err)}, nil
	}
	return records, nil, warnings
}

// readExcel loads the first sheet of an Excel file into rows.
func readExcel(path string) ([][]string, []string) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, []string{fmt.Sprintf("Cannot open Excel file: %v", err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, []string{"Excel file has no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, []string{fmt.Sprintf("Cannot read Excel data: %v", err)}
	}
	return rows, nil
}

// ImportReelsCSV imports reels from a CSV file with columns
// serial, item_number, length. Delimiter and header are auto-detected.
func ImportReelsCSV(path string) ImportResult {
	rows, errs, warnings := readCSV(path)
	if errs != nil {
		return ImportResult{Errors: errs}
	}
	return reelsFromRows(rows, "Line", warnings)
}

// ImportCutsCSV imports cut requests from a CSV file with columns
// item_number, length. Delimiter and header are auto-detected.
func ImportCutsCSV(path string) ImportResult {
	rows, errs, warnings := readCSV(path)
	if errs != nil {
		return ImportResult{Errors: errs}
	}
	return cutsFromRows(rows, "Line", warnings)
}

// ImportReelsExcel imports reels from the first sheet of an Excel file.
func ImportReelsExcel(path string) ImportResult {
	rows, errs := readExcel(path)
	if errs != nil {
		return ImportResult{Errors: errs}
	}
	return reelsFromRows(rows, "Row", nil)
}

// ImportCutsExcel imports cut requests from the first sheet of an Excel file.
func ImportCutsExcel(path string) ImportResult {
	rows, errs := readExcel(path)
	if errs != nil {
		return ImportResult{Errors: errs}
	}
	return cutsFromRows(rows, "Row", nil)
}

// ImportReelsFromReader imports reels from a CSV reader with a known delimiter.
func ImportReelsFromReader(reader io.Reader, delimiter rune) ImportResult {
	rows, errMsg := readAll(reader, delimiter)
	if errMsg != "" {
		return ImportResult{Errors: []string{errMsg}}
	}
	return reelsFromRows(rows, "Line", nil)
}

// ImportCutsFromReader imports cuts from a CSV reader with a known delimiter.
func ImportCutsFromReader(reader io.Reader, delimiter rune) ImportResult {
	rows, errMsg := readAll(reader, delimiter)
	if errMsg != "" {
		return ImportResult{Errors: []string{errMsg}}
	}
	return cutsFromRows(rows, "Line", nil)
}

func readAll(reader io.Reader, delimiter rune) ([][]string, string) {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Sprintf("Cannot read CSV: %v", err)
	}
	return records, ""
}

// reelsFromRows is the shared reel import logic for CSV and Excel data.
func reelsFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0], reelPositional)
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		if mapping.Serial == -1 {
			missing = append(missing, "serial")
		}
		if mapping.Category == -1 {
			missing = append(missing, "item_number")
		}
		if mapping.Length == -1 {
			missing = append(missing, "length")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	seenSerials := make(map[string]bool)
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		r, errMsg := parseReelRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}

		if seenSerials[r.Serial] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: Duplicate serial '%s'", rowLabel, r.Serial))
		}
		seenSerials[r.Serial] = true

		result.Reels = append(result.Reels, r)
	}

	return result
}

// cutsFromRows is the shared cut import logic for CSV and Excel data.
func cutsFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0], cutPositional)
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		if mapping.Category == -1 {
			missing = append(missing, "item_number")
		}
		if mapping.Length == -1 {
			missing = append(missing, "length")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		c, errMsg := parseCutRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}

		result.Cuts = append(result.Cuts, c)
	}

	return result
}
