package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/reelcut/internal/model"
	"github.com/piwi3910/reelcut/internal/project"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage job templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		if len(store.Templates) == 0 {
			cmd.Println("No templates saved.")
			return nil
		}
		for _, t := range store.Templates {
			cmd.Printf("%-10s  %-25s  %d reel(s), %d cut(s)  %s\n",
				t.ID, t.Name, len(t.Reels), len(t.Cuts), t.Description)
		}
		return nil
	},
}

var templateSaveFlags struct {
	job         string
	name        string
	description string
}

var templateSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a job's reels and cuts as a template",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if templateSaveFlags.job == "" || templateSaveFlags.name == "" {
			return errors.New("--job and --name are required")
		}
		job, err := project.LoadJob(templateSaveFlags.job)
		if err != nil {
			return err
		}

		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		if store.FindByName(templateSaveFlags.name) != nil {
			return fmt.Errorf("a template named %q already exists", templateSaveFlags.name)
		}

		tmpl := model.NewJobTemplate(templateSaveFlags.name, templateSaveFlags.description, job.Reels, job.Cuts)
		store.Add(tmpl)
		if err := project.SaveDefaultTemplates(store); err != nil {
			return err
		}
		cmd.Printf("Saved template %s (%s)\n", tmpl.Name, tmpl.ID)
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a template by name or ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		target := store.FindByName(args[0])
		if target == nil {
			target = store.FindByID(args[0])
		}
		if target == nil {
			return fmt.Errorf("no template named %q", args[0])
		}
		store.Remove(target.ID)
		if err := project.SaveDefaultTemplates(store); err != nil {
			return err
		}
		cmd.Printf("Deleted template %s\n", args[0])
		return nil
	},
}

var templateNewFlags struct {
	out string
}

var templateNewCmd = &cobra.Command{
	Use:   "new NAME",
	Short: "Instantiate a template as a new job file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if templateNewFlags.out == "" {
			return errors.New("--out is required")
		}
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		tmpl := store.FindByName(args[0])
		if tmpl == nil {
			tmpl = store.FindByID(args[0])
		}
		if tmpl == nil {
			return fmt.Errorf("no template named %q", args[0])
		}

		job := tmpl.ToJob(tmpl.Name)
		if err := project.SaveJob(templateNewFlags.out, job); err != nil {
			return err
		}
		cmd.Printf("Created job %s from template %s\n", templateNewFlags.out, tmpl.Name)
		return nil
	},
}

func init() {
	f := templateSaveCmd.Flags()
	f.StringVar(&templateSaveFlags.job, "job", "", "job file to read reels and cuts from")
	f.StringVar(&templateSaveFlags.name, "name", "", "template name")
	f.StringVar(&templateSaveFlags.description, "description", "", "template description")

	templateNewCmd.Flags().StringVar(&templateNewFlags.out, "out", "", "path for the new job file")

	templateCmd.AddCommand(templateListCmd, templateSaveCmd, templateDeleteCmd, templateNewCmd)
	rootCmd.AddCommand(templateCmd)
}
