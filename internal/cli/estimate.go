package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/piwi3910/reelcut/internal/model"
	"github.com/piwi3910/reelcut/internal/project"
)

var estimateFlags struct {
	cutsFile   string
	reelLength string
	waste      float64
	price      float64
	asJSON     bool
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate how many reels to buy for a cut list",
	Long: `Sums the cut list and divides by the reel length to estimate how many
reels to purchase. A flat waste percentage covers trim loss and packing
inefficiency; the estimate does not simulate an allocation.`,
	RunE: runEstimate,
}

func init() {
	f := estimateCmd.Flags()
	f.StringVar(&estimateFlags.cutsFile, "cuts", "", "cuts file (CSV or XLSX)")
	f.StringVar(&estimateFlags.reelLength, "reel-length", "", "length of one reel")
	f.Float64Var(&estimateFlags.waste, "waste", -1, "waste percentage (default from config)")
	f.Float64Var(&estimateFlags.price, "price", 0, "price per reel for cost estimation")
	f.BoolVar(&estimateFlags.asJSON, "json", false, "print the estimate as JSON")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	if estimateFlags.cutsFile == "" {
		return errors.New("--cuts is required")
	}
	if estimateFlags.reelLength == "" {
		return errors.New("--reel-length is required")
	}
	reelLength, err := decimal.NewFromString(estimateFlags.reelLength)
	if err != nil {
		return fmt.Errorf("invalid --reel-length %q: %w", estimateFlags.reelLength, err)
	}
	if reelLength.Sign() <= 0 {
		return errors.New("--reel-length must be positive")
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	waste := estimateFlags.waste
	if waste < 0 {
		waste = cfg.DefaultWastePercent
	}

	cuts, err := loadCuts(cmd, estimateFlags.cutsFile)
	if err != nil {
		return err
	}

	est := model.CalculatePurchaseEstimate(cuts, reelLength, waste, estimateFlags.price)

	if estimateFlags.asJSON {
		data, err := json.MarshalIndent(est, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Total cut length: %s %s\n", est.TotalCutLength, cfg.DefaultUnit)
	cmd.Printf("Reel length:      %s %s\n", est.ReelLength, cfg.DefaultUnit)
	cmd.Printf("Reels (exact):    %.2f\n", est.ReelsNeededExact)
	cmd.Printf("Reels (minimum):  %d\n", est.ReelsNeededMin)
	cmd.Printf("Reels (+%.0f%% waste): %d\n", est.WastePercent, est.ReelsWithWaste)
	if est.PricePerReel > 0 {
		cmd.Printf("Estimated cost:   %.2f\n", est.EstimatedCost)
	}
	return nil
}
