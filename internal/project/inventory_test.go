package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/piwi3910/reelcut/internal/model"
)

func TestDefaultInventoryPath(t *testing.T) {
	path, err := DefaultInventoryPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path == "" {
		t.Fatal("expected non-empty path")
	}
	if filepath.Base(path) != "inventory.json" {
		t.Errorf("expected filename inventory.json, got %s", filepath.Base(path))
	}
	dir := filepath.Base(filepath.Dir(path))
	if dir != ".reelcut" {
		t.Errorf("expected parent dir .reelcut, got %s", dir)
	}
}

func TestSaveAndLoadInventory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test_inventory.json")

	inv := model.Inventory{
		Presets: []model.ReelPreset{
			model.NewReelPreset("Test Wire 100m", "TW-100", decimal.NewFromInt(100)),
		},
	}

	// Save
	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("inventory file was not created")
	}

	// Load
	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}

	if len(loaded.Presets) != 1 {
		t.Errorf("expected 1 preset, got %d", len(loaded.Presets))
	}
	if loaded.Presets[0].Name != "Test Wire 100m" {
		t.Errorf("expected preset name 'Test Wire 100m', got %q", loaded.Presets[0].Name)
	}
	if !loaded.Presets[0].Length.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected length 100, got %s", loaded.Presets[0].Length)
	}
}

func TestLoadInventoryCreatesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nonexistent", "inventory.json")

	inv, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}

	// Should have created defaults
	if len(inv.Presets) == 0 {
		t.Error("expected default presets, got none")
	}

	// Should have written the file
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("expected default inventory file to be created")
	}
}

func TestImportInventory(t *testing.T) {
	tmpDir := t.TempDir()

	existing := model.Inventory{
		Presets: []model.ReelPreset{
			{ID: "preset-001", Name: "Existing Wire", Category: "EW-1", Length: decimal.NewFromInt(100)},
		},
	}

	imported := model.Inventory{
		Presets: []model.ReelPreset{
			{ID: "preset-001", Name: "Duplicate Wire", Category: "EW-1", Length: decimal.NewFromInt(100)}, // same ID, should be skipped
			{ID: "preset-002", Name: "New Wire", Category: "NW-1", Length: decimal.NewFromInt(305)},       // new, should be added
		},
	}

	// Write import file
	importPath := filepath.Join(tmpDir, "import.json")
	data, _ := json.MarshalIndent(imported, "", "  ")
	if err := os.WriteFile(importPath, data, 0644); err != nil {
		t.Fatalf("failed to write import file: %v", err)
	}

	merged, err := ImportInventory(importPath, existing)
	if err != nil {
		t.Fatalf("ImportInventory failed: %v", err)
	}

	if len(merged.Presets) != 2 {
		t.Errorf("expected 2 presets after merge, got %d", len(merged.Presets))
	}
	if merged.Presets[0].Name != "Existing Wire" {
		t.Errorf("expected first preset to be 'Existing Wire', got %q", merged.Presets[0].Name)
	}
	if merged.Presets[1].Name != "New Wire" {
		t.Errorf("expected second preset to be 'New Wire', got %q", merged.Presets[1].Name)
	}
}

func TestExportInventory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "export.json")

	inv := model.DefaultInventory()
	if err := ExportInventory(path, inv); err != nil {
		t.Fatalf("ExportInventory failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}

	var loaded model.Inventory
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("failed to unmarshal exported inventory: %v", err)
	}

	if len(loaded.Presets) != len(inv.Presets) {
		t.Errorf("expected %d presets, got %d", len(inv.Presets), len(loaded.Presets))
	}
}
