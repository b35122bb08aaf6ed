package model

import "github.com/shopspring/decimal"

// Remnant represents a usable leftover length on a reel after cutting.
// Untouched reels are not remnants; they go back to stock as they are.
type Remnant struct {
	Serial   string          `json:"serial"`      // Serial of the reel it remains on
	Category string          `json:"item_number"` // Item number of the source reel
	Length   decimal.Decimal `json:"length"`      // Leftover length
}

// ToReel converts a remnant into a reel for reuse in a later run. The serial
// gets a "-rem" suffix so it stays distinguishable from the original reel.
func (r Remnant) ToReel() Reel {
	return NewReel(r.Serial+"-rem", r.Category, r.Length)
}

// DefaultMinRemnantLength is the minimum leftover length worth returning to
// stock when no threshold is configured. Shorter leftovers are scrap.
var DefaultMinRemnantLength = decimal.NewFromInt(1)

// DetectRemnants scans an allocation result for reels that were cut into and
// still carry at least minLength of wire. Results keep reel order.
func DetectRemnants(result AllocationResult, minLength decimal.Decimal) []Remnant {
	var remnants []Remnant
	for _, u := range result.Usages {
		if len(u.Assignments) == 0 {
			continue
		}
		if u.Remaining.LessThan(minLength) || u.Remaining.IsZero() {
			continue
		}
		remnants = append(remnants, Remnant{
			Serial:   u.Reel.Serial,
			Category: u.Reel.Category,
			Length:   u.Remaining,
		})
	}
	return remnants
}
