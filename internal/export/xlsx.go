package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/reelcut/internal/model"
)

// ExportXLSX writes the full allocation outcome to an Excel workbook with
// Reels, Assignments, Unassigned and Summary sheets.
func ExportXLSX(path string, result model.AllocationResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), "Reels"); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := writeReelsSheet(f, result); err != nil {
		return err
	}
	if err := writeAssignmentsSheet(f, result); err != nil {
		return err
	}
	if err := writeUnassignedSheet(f, result); err != nil {
		return err
	}
	if err := writeSummarySheet(f, result); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// setRow writes a slice of values into consecutive cells of one row.
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to build cell reference: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}

func writeReelsSheet(f *excelize.File, result model.AllocationResult) error {
	header := []interface{}{"serial", "item_number", "length", "remaining", "cuts", "utilization %"}
	if err := setRow(f, "Reels", 1, header); err != nil {
		return err
	}
	for i, u := range result.Usages {
		row := []interface{}{
			u.Reel.Serial,
			u.Reel.Category,
			u.Reel.Length.String(),
			u.Remaining.String(),
			len(u.Assignments),
			fmt.Sprintf("%.1f", u.Utilization()),
		}
		if err := setRow(f, "Reels", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeAssignmentsSheet(f *excelize.File, result model.AllocationResult) error {
	if _, err := f.NewSheet("Assignments"); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := setRow(f, "Assignments", 1, []interface{}{"item_number", "serial", "cut_length"}); err != nil {
		return err
	}
	for i, a := range result.AssignmentRows() {
		if err := setRow(f, "Assignments", i+2, []interface{}{a.Category, a.Serial, a.Length.String()}); err != nil {
			return err
		}
	}
	return nil
}

func writeUnassignedSheet(f *excelize.File, result model.AllocationResult) error {
	if _, err := f.NewSheet("Unassigned"); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := setRow(f, "Unassigned", 1, []interface{}{"item_number", "length"}); err != nil {
		return err
	}
	for i, c := range result.Unassigned {
		if err := setRow(f, "Unassigned", i+2, []interface{}{c.Category, c.Length.String()}); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, result model.AllocationResult) error {
	if _, err := f.NewSheet("Summary"); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	s := model.Summarize(result)
	rows := [][]interface{}{
		{"reels", s.ReelCount},
		{"assigned cuts", s.AssignedCuts},
		{"unassigned cuts", s.UnassignedCuts},
		{"assigned length", s.AssignedLength.String()},
		{"unassigned length", s.UnassignedLength.String()},
		{"remaining length", s.RemainingLength.String()},
		{"utilization %", fmt.Sprintf("%.1f", result.TotalUtilization())},
	}
	for i, row := range rows {
		if err := setRow(f, "Summary", i+1, row); err != nil {
			return err
		}
	}

	// Per-item-number block below the totals
	start := len(rows) + 2
	header := []interface{}{"item_number", "reels", "assigned cuts", "unassigned cuts", "assigned length", "remaining length"}
	if err := setRow(f, "Summary", start, header); err != nil {
		return err
	}
	for i, cs := range s.Categories {
		row := []interface{}{
			cs.Category,
			cs.ReelCount,
			cs.AssignedCuts,
			cs.UnassignedCuts,
			cs.AssignedLength.String(),
			cs.RemainingLength.String(),
		}
		if err := setRow(f, "Summary", start+1+i, row); err != nil {
			return err
		}
	}
	return nil
}
