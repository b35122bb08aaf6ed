package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/reelcut/internal/project"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show JOB",
	Short: "Display a saved job",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the job as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	job, err := project.LoadJob(args[0])
	if err != nil {
		return err
	}

	if showJSON {
		data, err := json.MarshalIndent(job, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cmd.Printf("Job: %s\n", job.Name)
	cmd.Printf("Reels: %d, cuts: %d\n", len(job.Reels), len(job.Cuts))

	if job.Result == nil {
		cmd.Println("No allocation result saved.")
		return nil
	}
	cmd.Println()
	printResult(cmd, *job.Result, cfg.DefaultUnit)
	return nil
}
