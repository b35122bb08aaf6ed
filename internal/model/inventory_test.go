package model

import "testing"

func TestDefaultInventoryHasPresets(t *testing.T) {
	inv := DefaultInventory()

	if len(inv.Presets) == 0 {
		t.Fatal("expected default presets")
	}
	for _, p := range inv.Presets {
		if p.ID == "" || p.Name == "" || p.Category == "" {
			t.Errorf("incomplete preset: %+v", p)
		}
		if p.Length.Sign() <= 0 {
			t.Errorf("preset %s has non-positive length", p.Name)
		}
	}
}

func TestFindPresetByNameAndID(t *testing.T) {
	inv := DefaultInventory()
	want := inv.Presets[0]

	if got := inv.FindPresetByName(want.Name); got == nil || got.ID != want.ID {
		t.Errorf("FindPresetByName failed for %q", want.Name)
	}
	if got := inv.FindPresetByID(want.ID); got == nil || got.Name != want.Name {
		t.Errorf("FindPresetByID failed for %q", want.ID)
	}
	if got := inv.FindPresetByName("no such preset"); got != nil {
		t.Errorf("expected nil for unknown name, got %+v", got)
	}
}

func TestPresetToReels(t *testing.T) {
	p := NewReelPreset("Cat6 305m", "CAT6", d("305"))

	reels := p.ToReels(3)

	if len(reels) != 3 {
		t.Fatalf("expected 3 reels, got %d", len(reels))
	}
	serials := make(map[string]bool)
	for _, r := range reels {
		if r.Category != "CAT6" || !r.Length.Equal(d("305")) {
			t.Errorf("unexpected reel: %+v", r)
		}
		if serials[r.Serial] {
			t.Errorf("duplicate generated serial %s", r.Serial)
		}
		serials[r.Serial] = true
	}
}

func TestPresetNamesOrder(t *testing.T) {
	inv := Inventory{Presets: []ReelPreset{
		NewReelPreset("A", "X", d("1")),
		NewReelPreset("B", "Y", d("2")),
	}}

	names := inv.PresetNames()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("unexpected names: %v", names)
	}
}
