// Package config provides configuration management for squadcheck.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest):
// CLI flags > env vars > .env file > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is valid except for the fields that have
// no defaults (database name and password), Validate() reports those.
// - All mutations go through Option functions.
// - Invalid options are rejected with gn.Warn(), config keeps its old value.
// - ToOptions() converts persistent fields (those in config.yaml).
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, host, port, user, password, database, ssl_mode,
//     statement_timeout
//   - Log: level, format, destination
//   - Check: format
//
// Runtime-only fields (CLI flags only):
//   - Check.Only, Check.Skip, Check.Kinds, Check.WithProgress
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Connection settings use the conventional names of the test harness:
//
//	DB_HOST=localhost
//	DB_PORT=5432
//	DB_NAME=football       (required)
//	DB_USER=test_user
//	DB_PASS=secret         (required for PostgreSQL)
//	DB_SSLMODE=disable
//	DB_DRIVER=postgres
//	DB_STATEMENT_TIMEOUT=30s
//
// Application settings use the SQUADCHECK_ prefix:
//
//	SQUADCHECK_LOG_LEVEL=info
//	SQUADCHECK_LOG_FORMAT=json
//	SQUADCHECK_LOG_DESTINATION=file
//	SQUADCHECK_CHECK_FORMAT=text
package config

import (
	"fmt"
	"time"
)

// Config represents the complete squadcheck configuration.
type Config struct {
	// Database contains connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Check contains settings of a catalog run.
	Check CheckConfig `mapstructure:"check" yaml:"check"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// DatabaseConfig contains database connection parameters.
type DatabaseConfig struct {
	// Driver is either "postgres" or "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the database name to connect to. For the sqlite driver
	// it is a path to the database file.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// StatementTimeout limits the time a single check may spend on its
	// queries. Zero disables the limit.
	StatementTimeout time.Duration `mapstructure:"statement_timeout" yaml:"statement_timeout"`
}

// CheckConfig contains settings of a catalog run.
type CheckConfig struct {
	// Only restricts the run to the given check names. A base name of a
	// parameterized check (e.g. "table_exists") selects all its instances.
	Only []string `mapstructure:"only" yaml:"only"`

	// Skip removes the given check names from the run.
	Skip []string `mapstructure:"skip" yaml:"skip"`

	// Kinds restricts the run to checks of the given kinds.
	Kinds []string `mapstructure:"kinds" yaml:"kinds"`

	// Format of the report: "text", "json" or "yaml".
	Format string `mapstructure:"format" yaml:"format"`

	// WithProgress shows a progress bar on STDERR during a run.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with default values.
// Database name and password have no defaults and have to be provided
// through options before Validate() succeeds.
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:           "postgres",
			Host:             "localhost",
			Port:             5432,
			User:             "test_user",
			SSLMode:          "disable",
			StatementTimeout: 30 * time.Second,
		},
		Check: CheckConfig{
			Format:       "text",
			WithProgress: true,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

// IsSQLite returns true if the configured driver is sqlite.
func (d DatabaseConfig) IsSQLite() bool {
	return d.Driver == "sqlite"
}

// Target returns a password-free description of the database, suitable
// for logs and reports.
func (d DatabaseConfig) Target() string {
	if d.IsSQLite() {
		return "sqlite:" + d.Database
	}
	return fmt.Sprintf("%s@%s:%d/%s", d.User, d.Host, d.Port, d.Database)
}
