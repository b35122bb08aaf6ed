package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReelPreset represents a standard reel type that can be added to a job
// without typing out serials and lengths by hand.
type ReelPreset struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"item_number"`
	Length   decimal.Decimal `json:"length"`
}

// NewReelPreset creates a new ReelPreset with a generated ID.
func NewReelPreset(name, category string, length decimal.Decimal) ReelPreset {
	return ReelPreset{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Category: category,
		Length:   length,
	}
}

// ToReels expands a preset into qty reels with generated serials. Generated
// serials embed the preset name prefix so they are recognizable in reports.
func (rp ReelPreset) ToReels(qty int) []Reel {
	reels := make([]Reel, 0, qty)
	for i := 0; i < qty; i++ {
		serial := rp.Category + "-" + uuid.New().String()[:8]
		reels = append(reels, NewReel(serial, rp.Category, rp.Length))
	}
	return reels
}

// Inventory holds the user's saved reel presets.
type Inventory struct {
	Presets []ReelPreset `json:"presets"`
}

// DefaultInventory returns an inventory populated with common wire reels.
func DefaultInventory() Inventory {
	return Inventory{
		Presets: []ReelPreset{
			NewReelPreset("H07V-K 1.5mm 100m", "H07VK-15", decimal.NewFromInt(100)),
			NewReelPreset("H07V-K 2.5mm 100m", "H07VK-25", decimal.NewFromInt(100)),
			NewReelPreset("THHN 12AWG 500ft", "THHN-12", decimal.NewFromInt(500)),
			NewReelPreset("THHN 10AWG 500ft", "THHN-10", decimal.NewFromInt(500)),
			NewReelPreset("Cat6 UTP 305m", "CAT6-UTP", decimal.NewFromInt(305)),
		},
	}
}

// FindPresetByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindPresetByID(id string) *ReelPreset {
	for i := range inv.Presets {
		if inv.Presets[i].ID == id {
			return &inv.Presets[i]
		}
	}
	return nil
}

// FindPresetByName returns a pointer to the first preset with the given name, or nil.
func (inv *Inventory) FindPresetByName(name string) *ReelPreset {
	for i := range inv.Presets {
		if inv.Presets[i].Name == name {
			return &inv.Presets[i]
		}
	}
	return nil
}

// PresetNames returns the preset names in inventory order.
func (inv *Inventory) PresetNames() []string {
	names := make([]string, len(inv.Presets))
	for i, p := range inv.Presets {
		names[i] = p.Name
	}
	return names
}
