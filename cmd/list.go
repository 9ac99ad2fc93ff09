package cmd

import (
	"slices"

	"github.com/gnames/squadcheck/internal/iocheck"
	"github.com/gnames/squadcheck/internal/ioreport"
	"github.com/spf13/cobra"
)

// getListCmd returns the list command.
func getListCmd() *cobra.Command {
	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the integrity check catalog",
		Long: `List names, kinds and descriptions of all integrity checks in the
order they run. The database is not contacted.

Examples:
  squadcheck list
  squadcheck list --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := reportFormat(cmd, format, cfg)
			if !slices.Contains(ioreport.Formats(), f) {
				return ioreport.FormatError(f)
			}
			return ioreport.RenderCatalog(cmd.OutOrStdout(), iocheck.Catalog(), f)
		},
	}

	listCmd.Flags().StringVarP(&format, "format", "f", "",
		"output format: text, json or yaml")

	return listCmd
}
