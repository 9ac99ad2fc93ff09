package cmd

import (
	"strings"
	"time"

	"github.com/gnames/squadcheck/pkg/config"
	"github.com/spf13/cobra"
)

// checkFlags keeps values of the check command flags.
type checkFlags struct {
	only       []string
	skip       []string
	kinds      []string
	format     string
	timeout    time.Duration
	noProgress bool
}

func (f *checkFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringSliceVar(&f.only, "only", nil,
		"run only the given checks (repeat or separate by commas)")
	fs.StringSliceVar(&f.skip, "skip", nil,
		"do not run the given checks")
	fs.StringSliceVarP(&f.kinds, "kind", "k", nil,
		"run only checks of the given kinds")
	fs.StringVarP(&f.format, "format", "f", "",
		"report format: text, json or yaml")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0,
		"time limit of a single check, 0 disables it")
	fs.BoolVar(&f.noProgress, "no-progress", false,
		"do not show a progress bar")
}

// options converts flags that were set on the command line.
// Flags override values from the environment and config files.
func (f *checkFlags) options(cmd *cobra.Command) []config.Option {
	fs := cmd.Flags()
	res := []config.Option{
		config.OptCheckOnly(f.only),
		config.OptCheckSkip(f.skip),
		config.OptCheckKinds(f.kinds),
	}
	if fs.Changed("timeout") {
		res = append(res, config.OptDatabaseStatementTimeout(f.timeout))
	}
	if fs.Changed("no-progress") {
		res = append(res, config.OptCheckWithProgress(!f.noProgress))
	}
	return res
}

// reportFormat returns the format flag if it was given, otherwise
// the configured one.
func reportFormat(cmd *cobra.Command, flag string, cfg *config.Config) string {
	if cmd.Flags().Changed("format") {
		return strings.ToLower(strings.TrimSpace(flag))
	}
	return cfg.Check.Format
}
