package cli

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/piwi3910/reelcut/internal/model"
	"github.com/piwi3910/reelcut/internal/project"
)

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Manage reel presets in the inventory",
}

var stockListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved reel presets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		inv, path, err := project.LoadOrCreateInventory()
		if err != nil {
			return err
		}
		cmd.Printf("Inventory: %s\n\n", path)
		for _, p := range inv.Presets {
			cmd.Printf("%-10s  %-30s  [%s]  %s\n", p.ID, p.Name, p.Category, p.Length)
		}
		return nil
	},
}

var stockAddFlags struct {
	name     string
	category string
	length   string
}

var stockAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a reel preset to the inventory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if stockAddFlags.name == "" || stockAddFlags.category == "" || stockAddFlags.length == "" {
			return errors.New("--name, --item-number and --length are required")
		}
		length, err := decimal.NewFromString(stockAddFlags.length)
		if err != nil {
			return fmt.Errorf("invalid --length %q: %w", stockAddFlags.length, err)
		}
		if length.Sign() <= 0 {
			return errors.New("--length must be positive")
		}

		inv, path, err := project.LoadOrCreateInventory()
		if err != nil {
			return err
		}
		if inv.FindPresetByName(stockAddFlags.name) != nil {
			return fmt.Errorf("a preset named %q already exists", stockAddFlags.name)
		}

		preset := model.NewReelPreset(stockAddFlags.name, stockAddFlags.category, length)
		inv.Presets = append(inv.Presets, preset)
		if err := project.SaveInventory(path, inv); err != nil {
			return err
		}
		cmd.Printf("Added preset %s (%s)\n", preset.Name, preset.ID)
		return nil
	},
}

var stockRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a reel preset by name or ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, path, err := project.LoadOrCreateInventory()
		if err != nil {
			return err
		}

		target := inv.FindPresetByName(args[0])
		if target == nil {
			target = inv.FindPresetByID(args[0])
		}
		if target == nil {
			return fmt.Errorf("no preset named %q", args[0])
		}

		kept := inv.Presets[:0]
		for _, p := range inv.Presets {
			if p.ID != target.ID {
				kept = append(kept, p)
			}
		}
		inv.Presets = kept

		if err := project.SaveInventory(path, inv); err != nil {
			return err
		}
		cmd.Printf("Removed preset %s\n", args[0])
		return nil
	},
}

func init() {
	f := stockAddCmd.Flags()
	f.StringVar(&stockAddFlags.name, "name", "", "preset name")
	f.StringVar(&stockAddFlags.category, "item-number", "", "item number of the reels")
	f.StringVar(&stockAddFlags.length, "length", "", "length of one reel")

	stockCmd.AddCommand(stockListCmd, stockAddCmd, stockRemoveCmd)
	rootCmd.AddCommand(stockCmd)
}
