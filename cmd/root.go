/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/squadcheck/internal/ioconfig"
	"github.com/gnames/squadcheck/internal/iofs"
	"github.com/gnames/squadcheck/internal/iologger"
	app "github.com/gnames/squadcheck/pkg"
	"github.com/gnames/squadcheck/pkg/config"
	"github.com/gnames/squadcheck/pkg/errcode"
	"github.com/spf13/cobra"
)

// Exit codes of the squadcheck command.
const (
	exitOK = iota
	exitChecksFailed
	exitConfigError
)

var (
	homeDir    string
	configPath string
	envFile    string
	cfg        *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "squadcheck",
		Short:   "squadcheck verifies integrity of a football squad database",
		Long: `squadcheck runs a catalog of integrity checks against a sports-statistics
database with players, matches, appearances and staff tables. Every
check is reported, not only the first failing one.

The database is opened read-only. PostgreSQL and SQLite are supported.

Connection settings come from environment variables (DB_HOST, DB_PORT,
DB_NAME, DB_USER, DB_PASS), a .env file in the working directory, or
config.yaml. Settings of the process environment win over the .env file,
and both win over config.yaml.

Exit codes:
  0  all selected checks passed
  1  at least one check failed or could not be evaluated
  2  configuration or connection error

Examples:
  squadcheck list
  squadcheck check
  squadcheck check --kind domain --format json
  squadcheck check --only table_exists --skip table_exists[staff]`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "squadcheck version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for squadcheck")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to config.yaml (default is in the squadcheck config directory)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "",
		"path to a dotenv file (default is .env in the working directory)")

	rootCmd.AddCommand(getCheckCmd())
	rootCmd.AddCommand(getListCmd())

	return rootCmd
}

func bootstrap(_ *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	if err = iologger.Init(config.LogDir(homeDir), config.New().Log); err != nil {
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		return err
	}

	path := configPath
	if path == "" {
		path = config.ConfigFilePath(homeDir)
	}

	if cfg, err = ioconfig.Load(path, envFile); err != nil {
		return err
	}
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		return err
	}

	slog.Info("Configuration loaded", "config_file", path)
	return nil
}

// Execute runs the root command and exits with a code that tells
// failed checks apart from configuration and connection errors.
func Execute() {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	err := getRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		printError(err)
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Code == errcode.CheckFailedError {
		return exitChecksFailed
	}
	return exitConfigError
}

func printError(err error) {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		gn.PrintErrorMessage(err)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
