package cli

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/reelcut/internal/engine"
	"github.com/piwi3910/reelcut/internal/model"
	"github.com/piwi3910/reelcut/internal/project"
)

func saveTestJob(t *testing.T) string {
	t.Helper()
	reels := []model.Reel{model.NewReel("RL-1", "THHN-12", decimal.NewFromInt(500))}
	cuts := []model.CutRequest{model.NewCutRequest("THHN-12", decimal.NewFromInt(200))}
	result := engine.Allocate(reels, cuts)

	job := model.Job{Name: "Panel A", Reels: reels, Cuts: cuts, Result: &result}
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, project.SaveJob(path, job))
	return path
}

func TestShowCmd_RendersJob(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	showJSON = false
	path := saveTestJob(t)

	out, err := runCommand(t, "show", path)

	assert.NoError(t, err)
	assert.Contains(t, out, "Job: Panel A")
	assert.Contains(t, out, "RL-1")
	assert.Contains(t, out, "1 cut(s) assigned")
}

func TestShowCmd_JSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	showJSON = false
	path := saveTestJob(t)

	out, err := runCommand(t, "show", path, "--json")

	assert.NoError(t, err)
	assert.Contains(t, out, `"name": "Panel A"`)
	assert.Contains(t, out, `"usages"`)
}

func TestShowCmd_MissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	showJSON = false

	_, err := runCommand(t, "show", filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}
