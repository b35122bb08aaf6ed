// Package engine implements the cut allocation algorithm.
package engine

import (
	"sort"

	"github.com/piwi3910/reelcut/internal/model"
)

// Allocate assigns cut requests to reels using a first-fit-decreasing
// heuristic per item number: within each item number, cuts are sorted from
// longest to shortest and each cut goes onto the first reel (in input order)
// with enough remaining length. Sorting the longest demands first reduces
// fragmentation compared to arbitrary order; the placement is deterministic
// for a fixed input order and makes no attempt at optimal packing.
//
// The inputs are never mutated. The result contains one ReelUsage per input
// reel, in input order; reels whose item number has no cuts carry zero
// assignments and their full length as remaining. Cuts whose item number
// matches no reel, or that fit on no reel, are returned as unassigned.
func Allocate(reels []model.Reel, cuts []model.CutRequest) model.AllocationResult {
	usages := make([]model.ReelUsage, len(reels))
	reelsByCategory := make(map[string][]int)
	for i, r := range reels {
		usages[i] = model.ReelUsage{Reel: r, Remaining: r.Length}
		reelsByCategory[r.Category] = append(reelsByCategory[r.Category], i)
	}

	// Group cuts by item number in order of first appearance so the
	// unassigned list comes out in a stable order.
	cutsByCategory := make(map[string][]model.CutRequest)
	var categories []string
	for _, c := range cuts {
		if _, seen := cutsByCategory[c.Category]; !seen {
			categories = append(categories, c.Category)
		}
		cutsByCategory[c.Category] = append(cutsByCategory[c.Category], c)
	}

	result := model.AllocationResult{Usages: usages}

	for _, category := range categories {
		group := make([]model.CutRequest, len(cutsByCategory[category]))
		copy(group, cutsByCategory[category])

		// Longest first; ties keep input order.
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Length.GreaterThan(group[j].Length)
		})

		candidates := reelsByCategory[category]

		for _, cut := range group {
			placed := false
			for _, idx := range candidates {
				if usages[idx].Remaining.GreaterThanOrEqual(cut.Length) {
					usages[idx].Assignments = append(usages[idx].Assignments, model.Assignment{
						CutID:    cut.ID,
						Serial:   usages[idx].Reel.Serial,
						Category: cut.Category,
						Length:   cut.Length,
					})
					usages[idx].Remaining = usages[idx].Remaining.Sub(cut.Length)
					placed = true
					break
				}
			}
			if !placed {
				result.Unassigned = append(result.Unassigned, cut)
			}
		}
	}

	return result
}
