package model

import "github.com/shopspring/decimal"

// CategorySummary holds per-item-number totals for one allocation run.
type CategorySummary struct {
	Category        string          `json:"item_number"`
	ReelCount       int             `json:"reel_count"`
	AssignedCuts    int             `json:"assigned_cuts"`
	UnassignedCuts  int             `json:"unassigned_cuts"`
	AssignedLength  decimal.Decimal `json:"assigned_length"`
	RemainingLength decimal.Decimal `json:"remaining_length"`
}

// CutSummary holds the aggregate totals for one allocation run.
type CutSummary struct {
	ReelCount        int               `json:"reel_count"`
	AssignedCuts     int               `json:"assigned_cuts"`
	UnassignedCuts   int               `json:"unassigned_cuts"`
	AssignedLength   decimal.Decimal   `json:"assigned_length"`
	UnassignedLength decimal.Decimal   `json:"unassigned_length"`
	RemainingLength  decimal.Decimal   `json:"remaining_length"`
	Categories       []CategorySummary `json:"categories"`
}

// Summarize computes run totals from an allocation result. Categories are
// reported in the order they first appear among the reels, then among the
// unassigned cuts.
func Summarize(result AllocationResult) CutSummary {
	summary := CutSummary{
		ReelCount:        len(result.Usages),
		AssignedLength:   decimal.Zero,
		UnassignedLength: decimal.Zero,
		RemainingLength:  decimal.Zero,
	}

	index := make(map[string]int)
	categoryAt := func(category string) int {
		if i, ok := index[category]; ok {
			return i
		}
		summary.Categories = append(summary.Categories, CategorySummary{
			Category:        category,
			AssignedLength:  decimal.Zero,
			RemainingLength: decimal.Zero,
		})
		index[category] = len(summary.Categories) - 1
		return index[category]
	}

	for _, u := range result.Usages {
		i := categoryAt(u.Reel.Category)
		summary.Categories[i].ReelCount++
		summary.Categories[i].AssignedCuts += len(u.Assignments)
		summary.Categories[i].AssignedLength = summary.Categories[i].AssignedLength.Add(u.AssignedLength())
		summary.Categories[i].RemainingLength = summary.Categories[i].RemainingLength.Add(u.Remaining)

		summary.AssignedCuts += len(u.Assignments)
		summary.AssignedLength = summary.AssignedLength.Add(u.AssignedLength())
		summary.RemainingLength = summary.RemainingLength.Add(u.Remaining)
	}

	for _, c := range result.Unassigned {
		i := categoryAt(c.Category)
		summary.Categories[i].UnassignedCuts++
		summary.UnassignedCuts++
		summary.UnassignedLength = summary.UnassignedLength.Add(c.Length)
	}

	return summary
}
