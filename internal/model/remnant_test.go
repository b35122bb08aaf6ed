package model

import "testing"

func TestDetectRemnantsSkipsUntouchedReels(t *testing.T) {
	result := AllocationResult{
		Usages: []ReelUsage{
			usage("R1", "X", "100", "40"), // 60 left, used
			usage("R2", "X", "100"),       // untouched
		},
	}

	remnants := DetectRemnants(result, d("5"))

	if len(remnants) != 1 {
		t.Fatalf("expected 1 remnant, got %d", len(remnants))
	}
	if remnants[0].Serial != "R1" || !remnants[0].Length.Equal(d("60")) {
		t.Errorf("unexpected remnant: %+v", remnants[0])
	}
}

func TestDetectRemnantsHonorsMinLength(t *testing.T) {
	result := AllocationResult{
		Usages: []ReelUsage{
			usage("R1", "X", "10", "8"), // 2 left
			usage("R2", "X", "10", "3"), // 7 left
		},
	}

	remnants := DetectRemnants(result, d("5"))

	if len(remnants) != 1 {
		t.Fatalf("expected 1 remnant, got %d", len(remnants))
	}
	if remnants[0].Serial != "R2" {
		t.Errorf("expected R2, got %s", remnants[0].Serial)
	}
}

func TestDetectRemnantsSkipsFullyConsumed(t *testing.T) {
	result := AllocationResult{
		Usages: []ReelUsage{
			usage("R1", "X", "10", "10"),
		},
	}

	remnants := DetectRemnants(result, d("0"))

	if len(remnants) != 0 {
		t.Errorf("expected no remnants for fully consumed reel, got %+v", remnants)
	}
}

func TestRemnantToReel(t *testing.T) {
	r := Remnant{Serial: "R1", Category: "X", Length: d("42")}

	reel := r.ToReel()

	if reel.Serial != "R1-rem" {
		t.Errorf("expected suffixed serial, got %s", reel.Serial)
	}
	if reel.Category != "X" || !reel.Length.Equal(d("42")) {
		t.Errorf("unexpected reel: %+v", reel)
	}
}
