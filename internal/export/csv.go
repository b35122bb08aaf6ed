// Package export provides functionality for exporting allocation results
// to various file formats.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/piwi3910/reelcut/internal/model"
)

// WriteAssignmentsCSV writes one row per assigned cut in the format
// item_number,serial,cut_length, in reel order then placement order.
func WriteAssignmentsCSV(path string, result model.AllocationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create assignments file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"item_number", "serial", "cut_length"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range result.AssignmentRows() {
		record := []string{row.Category, row.Serial, row.Length.String()}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write assignment row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush assignments file: %w", err)
	}
	return nil
}

// WriteUnassignedCSV writes the cuts that could not be placed as
// item_number,length rows.
func WriteUnassignedCSV(path string, unassigned []model.CutRequest) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create unassigned file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"item_number", "length"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range unassigned {
		if err := w.Write([]string{c.Category, c.Length.String()}); err != nil {
			return fmt.Errorf("failed to write unassigned row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush unassigned file: %w", err)
	}
	return nil
}

// WriteRemnantsCSV writes leftover reel lengths as serial,item_number,length
// rows, the same shape as a reels input file so remnants can be fed back in.
func WriteRemnantsCSV(path string, remnants []model.Remnant) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create remnants file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"serial", "item_number", "length"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range remnants {
		reel := r.ToReel()
		if err := w.Write([]string{reel.Serial, reel.Category, reel.Length.String()}); err != nil {
			return fmt.Errorf("failed to write remnant row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush remnants file: %w", err)
	}
	return nil
}
