package model

import "testing"

func TestNewJobTemplateCopiesData(t *testing.T) {
	reels := []Reel{NewReel("R1", "X", d("100"))}
	cutList := cuts("X", "5", "10")

	tmpl := NewJobTemplate("Panel wiring", "standard panel run", reels, cutList)

	if tmpl.ID == "" || tmpl.CreatedAt == "" {
		t.Fatal("expected ID and timestamps")
	}
	if len(tmpl.Reels) != 1 || len(tmpl.Cuts) != 2 {
		t.Fatalf("unexpected template contents: %+v", tmpl)
	}

	// The template owns its copies.
	reels[0].Serial = "mutated"
	if tmpl.Reels[0].Serial != "R1" {
		t.Error("template shares backing array with caller")
	}
}

func TestTemplateToJobGetsFreshCutIDs(t *testing.T) {
	tmpl := NewJobTemplate("t", "", []Reel{NewReel("R1", "X", d("50"))}, cuts("X", "5"))

	job := tmpl.ToJob("today's run")

	if job.Name != "today's run" {
		t.Errorf("unexpected job name %q", job.Name)
	}
	if len(job.Cuts) != 1 || len(job.Reels) != 1 {
		t.Fatalf("unexpected job contents: %+v", job)
	}
	if job.Cuts[0].ID == tmpl.Cuts[0].ID {
		t.Error("expected fresh cut IDs in instantiated job")
	}
	if !job.Cuts[0].Length.Equal(d("5")) || job.Cuts[0].Category != "X" {
		t.Errorf("cut data lost: %+v", job.Cuts[0])
	}
}
