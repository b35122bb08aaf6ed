package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/piwi3910/reelcut/internal/engine"
	"github.com/piwi3910/reelcut/internal/export"
	"github.com/piwi3910/reelcut/internal/model"
	"github.com/piwi3910/reelcut/internal/project"
)

var optimizeFlags struct {
	reelsFile  string
	cutsFile   string
	stock      []string
	out        string
	unassigned string
	remnants   string
	xlsxOut    string
	pdfOut     string
	labelsOut  string
	dxfOut     string
	saveJob    string
	minRemnant string
	unit       string
	asJSON     bool
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Assign cuts to reels",
	Long: `Reads a reels file and a cuts file, assigns each cut to a reel with
the same item number using first-fit decreasing, and prints the
resulting cutting plan. Cuts that fit on no reel are listed as
unassigned.

Input files are CSV (with or without a header row) or XLSX. Reels need
serial, item_number and length columns; cuts need item_number and
length.`,
	RunE: runOptimize,
}

func init() {
	f := optimizeCmd.Flags()
	f.StringVar(&optimizeFlags.reelsFile, "reels", "", "reels file (CSV or XLSX)")
	f.StringVar(&optimizeFlags.cutsFile, "cuts", "", "cuts file (CSV or XLSX)")
	f.StringArrayVar(&optimizeFlags.stock, "stock", nil, "add reels from an inventory preset, NAME:QTY (repeatable)")
	f.StringVar(&optimizeFlags.out, "out", "", "write assignments CSV to this path")
	f.StringVar(&optimizeFlags.unassigned, "unassigned", "", "write unassigned cuts CSV to this path")
	f.StringVar(&optimizeFlags.remnants, "remnants", "", "write leftover reel lengths CSV to this path")
	f.StringVar(&optimizeFlags.xlsxOut, "xlsx", "", "write a full XLSX workbook to this path")
	f.StringVar(&optimizeFlags.pdfOut, "pdf", "", "write a cutting plan PDF to this path")
	f.StringVar(&optimizeFlags.labelsOut, "labels", "", "write a QR label sheet PDF to this path")
	f.StringVar(&optimizeFlags.dxfOut, "dxf", "", "write a cutting diagram DXF to this path")
	f.StringVar(&optimizeFlags.saveJob, "save-job", "", "save inputs and result as a job JSON file")
	f.StringVar(&optimizeFlags.minRemnant, "min-remnant", "", "minimum leftover length worth keeping as a remnant")
	f.StringVar(&optimizeFlags.unit, "unit", "", "display unit for lengths")
	f.BoolVar(&optimizeFlags.asJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	if optimizeFlags.cutsFile == "" {
		return errors.New("--cuts is required")
	}
	if optimizeFlags.reelsFile == "" && len(optimizeFlags.stock) == 0 {
		return errors.New("--reels or --stock is required")
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	unit := optimizeFlags.unit
	if unit == "" {
		unit = cfg.DefaultUnit
	}

	var reels []model.Reel
	if optimizeFlags.reelsFile != "" {
		reels, err = loadReels(cmd, optimizeFlags.reelsFile)
		if err != nil {
			return err
		}
	}
	if len(optimizeFlags.stock) > 0 {
		stockReels, err := reelsFromPresets(optimizeFlags.stock)
		if err != nil {
			return err
		}
		reels = append(reels, stockReels...)
	}

	cuts, err := loadCuts(cmd, optimizeFlags.cutsFile)
	if err != nil {
		return err
	}

	result := engine.Allocate(reels, cuts)

	if optimizeFlags.asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
	} else {
		printResult(cmd, result, unit)
	}

	if err := writeOutputs(result, unit, cfg); err != nil {
		return err
	}

	if optimizeFlags.saveJob != "" {
		job := model.Job{
			Name:   strings.TrimSuffix(filepath.Base(optimizeFlags.saveJob), filepath.Ext(optimizeFlags.saveJob)),
			Reels:  reels,
			Cuts:   cuts,
			Result: &result,
		}
		if err := project.SaveJob(optimizeFlags.saveJob, job); err != nil {
			return fmt.Errorf("failed to save job: %w", err)
		}
		cfg.AddRecentJob(optimizeFlags.saveJob)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), cfg); err != nil {
			cmd.PrintErrf("warning: failed to update recent jobs: %v\n", err)
		}
	}

	if len(result.Unassigned) > 0 && !optimizeFlags.asJSON {
		cmd.PrintErrf("%d cut(s) could not be assigned\n", len(result.Unassigned))
	}
	return nil
}

// reelsFromPresets expands NAME:QTY specs against the saved inventory.
func reelsFromPresets(specs []string) ([]model.Reel, error) {
	inv, _, err := project.LoadOrCreateInventory()
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	var reels []model.Reel
	for _, spec := range specs {
		name, qtyStr, found := strings.Cut(spec, ":")
		qty := 1
		if found {
			qty, err = strconv.Atoi(qtyStr)
			if err != nil || qty < 1 {
				return nil, fmt.Errorf("invalid quantity in --stock %q", spec)
			}
		}
		preset := inv.FindPresetByName(name)
		if preset == nil {
			preset = inv.FindPresetByID(name)
		}
		if preset == nil {
			return nil, fmt.Errorf("no inventory preset named %q (have: %s)", name, strings.Join(inv.PresetNames(), ", "))
		}
		reels = append(reels, preset.ToReels(qty)...)
	}
	return reels, nil
}

func writeOutputs(result model.AllocationResult, unit string, cfg model.AppConfig) error {
	if optimizeFlags.out != "" {
		if err := export.WriteAssignmentsCSV(optimizeFlags.out, result); err != nil {
			return err
		}
	}
	if optimizeFlags.unassigned != "" {
		if err := export.WriteUnassignedCSV(optimizeFlags.unassigned, result.Unassigned); err != nil {
			return err
		}
	}
	if optimizeFlags.remnants != "" {
		minStr := optimizeFlags.minRemnant
		if minStr == "" {
			minStr = cfg.DefaultMinRemnant
		}
		min, err := decimal.NewFromString(minStr)
		if err != nil {
			return fmt.Errorf("invalid --min-remnant %q: %w", minStr, err)
		}
		remnants := model.DetectRemnants(result, min)
		if err := export.WriteRemnantsCSV(optimizeFlags.remnants, remnants); err != nil {
			return err
		}
	}
	if optimizeFlags.xlsxOut != "" {
		if err := export.ExportXLSX(optimizeFlags.xlsxOut, result); err != nil {
			return err
		}
	}
	if optimizeFlags.pdfOut != "" {
		if err := export.ExportPDF(optimizeFlags.pdfOut, result, unit); err != nil {
			return err
		}
	}
	if optimizeFlags.labelsOut != "" {
		if err := export.ExportLabels(optimizeFlags.labelsOut, result); err != nil {
			return err
		}
	}
	if optimizeFlags.dxfOut != "" {
		if err := export.ExportDXF(optimizeFlags.dxfOut, result); err != nil {
			return err
		}
	}
	return nil
}

// printResult renders the cutting plan as text.
func printResult(cmd *cobra.Command, result model.AllocationResult, unit string) {
	for _, u := range result.Usages {
		cmd.Printf("%s  [%s]  %s %s total, %s %s left, %.1f%% used\n",
			u.Reel.Serial, u.Reel.Category, u.Reel.Length, unit, u.Remaining, unit, u.Utilization())
		for i, a := range u.Assignments {
			cmd.Printf("    #%d  %s %s\n", i+1, a.Length, unit)
		}
	}

	if len(result.Unassigned) > 0 {
		cmd.Println("\nUnassigned cuts:")
		for _, c := range result.Unassigned {
			cmd.Printf("    %s  %s %s\n", c.Category, c.Length, unit)
		}
	}

	s := model.Summarize(result)
	cmd.Printf("\n%d reel(s), %d cut(s) assigned (%s %s), %d unassigned (%s %s), %s %s remaining, %.1f%% used\n",
		s.ReelCount, s.AssignedCuts, s.AssignedLength, unit,
		s.UnassignedCuts, s.UnassignedLength, unit,
		s.RemainingLength, unit, result.TotalUtilization())
}
