package model

import "testing"

func TestDefaultAppConfig(t *testing.T) {
	c := DefaultAppConfig()

	if c.DefaultUnit != "m" {
		t.Errorf("expected unit m, got %q", c.DefaultUnit)
	}
	if c.RecentJobs == nil {
		t.Error("RecentJobs must not be nil")
	}
}

func TestAddRecentJobDeduplicatesAndCaps(t *testing.T) {
	c := DefaultAppConfig()

	c.AddRecentJob("/jobs/a.json")
	c.AddRecentJob("/jobs/b.json")
	c.AddRecentJob("/jobs/a.json")

	if len(c.RecentJobs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(c.RecentJobs))
	}
	if c.RecentJobs[0] != "/jobs/a.json" || c.RecentJobs[1] != "/jobs/b.json" {
		t.Errorf("unexpected order: %v", c.RecentJobs)
	}

	for i := 0; i < 20; i++ {
		c.AddRecentJob(string(rune('a'+i)) + ".json")
	}
	if len(c.RecentJobs) != maxRecentJobs {
		t.Errorf("expected cap of %d, got %d", maxRecentJobs, len(c.RecentJobs))
	}
}
