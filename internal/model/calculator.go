package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// PurchaseEstimate holds the results of a reel purchasing calculation.
type PurchaseEstimate struct {
	TotalCutLength   decimal.Decimal `json:"total_cut_length"`   // Total length of all cuts
	ReelLength       decimal.Decimal `json:"reel_length"`        // Length of one reel
	ReelsNeededExact float64         `json:"reels_needed_exact"` // Exact fractional number of reels
	ReelsNeededMin   int             `json:"reels_needed_min"`   // Minimum reels (ceiling of exact)
	ReelsWithWaste   int             `json:"reels_with_waste"`   // Recommended reels including waste factor
	WastePercent     float64         `json:"waste_percent"`      // Waste factor applied (e.g., 15 for 15%)
	EstimatedCost    float64         `json:"estimated_cost"`     // Total cost if pricing available
	PricePerReel     float64         `json:"price_per_reel"`     // Price used for estimation
}

// CalculatePurchaseEstimate computes how many reels of a given length to buy
// to cover a cut list. A flat waste percentage covers trim loss and packing
// inefficiency; the estimate deliberately does not simulate an allocation.
func CalculatePurchaseEstimate(cuts []CutRequest, reelLength decimal.Decimal, wastePercent, pricePerReel float64) PurchaseEstimate {
	total := decimal.Zero
	for _, c := range cuts {
		total = total.Add(c.Length)
	}

	if reelLength.Sign() <= 0 {
		return PurchaseEstimate{
			TotalCutLength: total,
			ReelLength:     reelLength,
			WastePercent:   wastePercent,
			PricePerReel:   pricePerReel,
		}
	}

	exact := total.Div(reelLength).InexactFloat64()
	minReels := int(math.Ceil(exact))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	withWaste := int(math.Ceil(exact * wasteFactor))
	if withWaste < minReels {
		withWaste = minReels
	}

	return PurchaseEstimate{
		TotalCutLength:   total,
		ReelLength:       reelLength,
		ReelsNeededExact: exact,
		ReelsNeededMin:   minReels,
		ReelsWithWaste:   withWaste,
		WastePercent:     wastePercent,
		EstimatedCost:    float64(withWaste) * pricePerReel,
		PricePerReel:     pricePerReel,
	}
}
