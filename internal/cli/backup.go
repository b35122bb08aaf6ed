package cli

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/reelcut/internal/project"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import all application data",
}

var backupExportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export config, inventory and templates to one JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
		if err != nil {
			return err
		}
		inv, _, err := project.LoadOrCreateInventory()
		if err != nil {
			return err
		}
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		if err := project.ExportAllData(args[0], cfg, inv, store); err != nil {
			return err
		}
		cmd.Printf("Exported application data to %s\n", args[0])
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import application data from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := project.ImportAllData(args[0])
		if err != nil {
			return err
		}
		if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
			return err
		}
		invPath, err := project.DefaultInventoryPath()
		if err != nil {
			return err
		}
		if err := project.SaveInventory(invPath, backup.Inventory); err != nil {
			return err
		}
		if err := project.SaveDefaultTemplates(backup.Templates); err != nil {
			return err
		}
		cmd.Printf("Imported backup from %s (created %s)\n", args[0], backup.CreatedAt)
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupExportCmd, backupImportCmd)
	rootCmd.AddCommand(backupCmd)
}
