package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/reelcut/internal/importer"
	"github.com/piwi3910/reelcut/internal/model"
)

// loadReels imports a reels file, dispatching on extension.
// Row errors are fatal; duplicate serial warnings are printed and kept.
func loadReels(cmd *cobra.Command, path string) ([]model.Reel, error) {
	var res importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		res = importer.ImportReelsExcel(path)
	default:
		res = importer.ImportReelsCSV(path)
	}
	return res.Reels, reportImport(cmd, path, res)
}

// loadCuts imports a cuts file, dispatching on extension.
func loadCuts(cmd *cobra.Command, path string) ([]model.CutRequest, error) {
	var res importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		res = importer.ImportCutsExcel(path)
	default:
		res = importer.ImportCutsCSV(path)
	}
	return res.Cuts, reportImport(cmd, path, res)
}

func reportImport(cmd *cobra.Command, path string, res importer.ImportResult) error {
	for _, w := range res.Warnings {
		cmd.PrintErrf("warning: %s: %s\n", path, w)
	}
	if len(res.Errors) > 0 {
		for _, e := range res.Errors {
			cmd.PrintErrf("error: %s: %s\n", path, e)
		}
		return fmt.Errorf("%s: %d row(s) could not be imported", path, len(res.Errors))
	}
	return nil
}
