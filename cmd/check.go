package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/gnames/squadcheck/internal/iocheck"
	"github.com/gnames/squadcheck/internal/iodb"
	"github.com/gnames/squadcheck/internal/ioreport"
	"github.com/gnames/squadcheck/pkg/config"
	"github.com/gnames/squadcheck/pkg/integrity"
	"github.com/spf13/cobra"
)

// getCheckCmd returns the check command.
func getCheckCmd() *cobra.Command {
	var flags checkFlags

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Run integrity checks against the database",
		Long: `Run the integrity check catalog against the configured database.

Each check runs in its own read-only cursor scope on a single connection.
A failing check or a query error does not stop the run: every selected
check is reported. Only a lost connection aborts the run.

Checks are selected by name with --only and --skip. A base name of a
parameterized check selects all its instances, for example
"table_exists" selects "table_exists[players]" and the others.
--kind selects checks by kind: existence, uniqueness, non_nullity,
referential, range, domain, aggregate, observational.
Use 'squadcheck list' to see the catalog.

Examples:
  squadcheck check
  squadcheck check --kind existence,referential
  squadcheck check --skip players_never_played --format yaml
  squadcheck check --timeout 5s --no-progress`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.Update(flags.options(cmd))
			format := reportFormat(cmd, flags.format, cfg)
			return runCheck(
				cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, format,
			)
		},
	}

	flags.register(checkCmd)
	return checkCmd
}

// runCheck validates settings, runs selected checks and writes the
// report to w. It returns integrity.ChecksFailedError when some checks
// did not pass. If the run is aborted, results of finished checks go to
// errW.
func runCheck(
	ctx context.Context,
	w, errW io.Writer,
	cfg *config.Config,
	format string,
) error {
	if !slices.Contains(ioreport.Formats(), format) {
		return ioreport.FormatError(format)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	checks, err := integrity.Select(
		iocheck.Catalog(),
		cfg.Check.Only,
		cfg.Check.Skip,
		cfg.Check.Kinds,
	)
	if err != nil {
		return err
	}

	op := iodb.NewOperator()
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	opts := []iocheck.Option{iocheck.OptTarget(cfg.Database.Target())}

	// a progress bar would mix with log lines on STDERR
	var bar *progress
	if cfg.Check.WithProgress && cfg.Log.Destination != "stderr" {
		bar = newProgress(len(checks))
		opts = append(opts, iocheck.OptOnResult(bar.update))
	}

	rep, err := iocheck.NewRunner(op, opts...).Run(ctx, checks)
	bar.finish()
	if err != nil {
		writePartial(errW, rep)
		return err
	}

	if err = ioreport.Render(w, rep, format); err != nil {
		return err
	}

	if !rep.OK() {
		return integrity.ChecksFailedError(rep.Failed, rep.Errored)
	}
	return nil
}

// writePartial shows checks that finished before the run was aborted.
func writePartial(w io.Writer, rep *integrity.Report) {
	if rep == nil || rep.Total() == 0 {
		return
	}
	fmt.Fprintf(w, "Run aborted, results of %d finished checks:\n\n",
		rep.Total())
	if err := ioreport.Render(w, rep, "text"); err != nil {
		slog.Error("Cannot write partial report", "error", err)
	}
}
