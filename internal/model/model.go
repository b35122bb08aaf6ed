package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reel represents a physical reel (spool) of wire available to cut from.
// Lengths are decimal so capacity accounting stays exact regardless of how
// many cuts are taken from a reel.
type Reel struct {
	Serial   string          `json:"serial"`      // Unique identifier, assigned externally
	Category string          `json:"item_number"` // Item number matching cuts to reels
	Length   decimal.Decimal `json:"length"`      // Total length on the reel
}

// NewReel creates a reel from raw values.
func NewReel(serial, category string, length decimal.Decimal) Reel {
	return Reel{
		Serial:   serial,
		Category: category,
		Length:   length,
	}
}

// CutRequest represents a demand for one length of wire of a given item number.
// Every cut gets a generated ID so assignments can be traced back to the
// exact input row even when several cuts share the same item number and length.
type CutRequest struct {
	ID       string          `json:"id"`
	Category string          `json:"item_number"`
	Length   decimal.Decimal `json:"length"`
}

// NewCutRequest creates a cut request with a generated ID.
func NewCutRequest(category string, length decimal.Decimal) CutRequest {
	return CutRequest{
		ID:       uuid.New().String()[:8],
		Category: category,
		Length:   length,
	}
}

// Assignment records a single cut placed on a specific reel.
type Assignment struct {
	CutID    string          `json:"cut_id"`
	Serial   string          `json:"serial"`
	Category string          `json:"item_number"`
	Length   decimal.Decimal `json:"cut_length"`
}

// ReelUsage is one reel together with the cuts placed on it during an
// allocation run. Remaining always equals the reel length minus the sum of
// the assigned cut lengths and never goes negative.
type ReelUsage struct {
	Reel        Reel            `json:"reel"`
	Assignments []Assignment    `json:"assignments"`
	Remaining   decimal.Decimal `json:"remaining"`
}

// AssignedLength returns the total length of all cuts placed on the reel.
func (ru ReelUsage) AssignedLength() decimal.Decimal {
	total := decimal.Zero
	for _, a := range ru.Assignments {
		total = total.Add(a.Length)
	}
	return total
}

// Utilization returns the fraction of the reel consumed as a percentage.
func (ru ReelUsage) Utilization() float64 {
	if ru.Reel.Length.IsZero() {
		return 0
	}
	used := ru.AssignedLength()
	return used.Div(ru.Reel.Length).InexactFloat64() * 100.0
}

// AllocationResult holds the full outcome of one allocation run: every
// input reel with its placements, plus the cuts that fit nowhere.
type AllocationResult struct {
	Usages     []ReelUsage  `json:"usages"`
	Unassigned []CutRequest `json:"unassigned"`
}

// AssignmentRows flattens the result into one row per assigned cut, in
// reel order then placement order. This is the shape of the CSV export.
func (ar AllocationResult) AssignmentRows() []Assignment {
	var rows []Assignment
	for _, u := range ar.Usages {
		rows = append(rows, u.Assignments...)
	}
	return rows
}

// AssignedCount returns the number of cuts that were placed.
func (ar AllocationResult) AssignedCount() int {
	n := 0
	for _, u := range ar.Usages {
		n += len(u.Assignments)
	}
	return n
}

// TotalUtilization returns the overall consumed percentage across all reels.
func (ar AllocationResult) TotalUtilization() float64 {
	used := decimal.Zero
	total := decimal.Zero
	for _, u := range ar.Usages {
		used = used.Add(u.AssignedLength())
		total = total.Add(u.Reel.Length)
	}
	if total.IsZero() {
		return 0
	}
	return used.Div(total).InexactFloat64() * 100.0
}

// Job ties everything together for save/load.
type Job struct {
	Name   string            `json:"name"`
	Reels  []Reel            `json:"reels"`
	Cuts   []CutRequest      `json:"cuts"`
	Result *AllocationResult `json:"result,omitempty"`
}

// NewJob returns an empty job.
func NewJob() Job {
	return Job{
		Name:  "Untitled",
		Reels: []Reel{},
		Cuts:  []CutRequest{},
	}
}
