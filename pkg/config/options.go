package config

import (
	"strings"
	"time"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseDriver sets the database driver.
// Valid values: "postgres", "sqlite".
func OptDatabaseDriver(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.Driver", s) {
			c.Database.Driver = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
// The password is kept as is, surrounding spaces can be significant.
func OptDatabasePassword(s string) Option {
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the database name, or a file path for sqlite.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseStatementTimeout sets the time limit of a single check.
// Zero disables the limit, negative values are ignored.
func OptDatabaseStatementTimeout(d time.Duration) Option {
	return func(c *Config) {
		if isValidDuration("Statement Timeout", d) {
			c.Database.StatementTimeout = d
		}
	}
}

// OptCheckOnly restricts a run to the given check names.
// Runtime-only field - not in ToOptions().
func OptCheckOnly(ss []string) Option {
	ss = cleanList(ss)
	return func(c *Config) {
		if len(ss) > 0 {
			c.Check.Only = ss
		}
	}
}

// OptCheckSkip excludes the given check names from a run.
// Runtime-only field - not in ToOptions().
func OptCheckSkip(ss []string) Option {
	ss = cleanList(ss)
	return func(c *Config) {
		if len(ss) > 0 {
			c.Check.Skip = ss
		}
	}
}

// OptCheckKinds restricts a run to checks of the given kinds.
// Kind names are validated when the catalog is filtered.
// Runtime-only field - not in ToOptions().
func OptCheckKinds(ss []string) Option {
	ss = cleanList(ss)
	for i := range ss {
		ss[i] = strings.ToLower(ss[i])
	}
	return func(c *Config) {
		if len(ss) > 0 {
			c.Check.Kinds = ss
		}
	}
}

// OptCheckFormat sets the report format.
// Valid values: "text", "json", "yaml".
func OptCheckFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Check.Format", s) {
			c.Check.Format = s
		}
	}
}

// OptCheckWithProgress toggles the progress bar.
// Runtime-only field - not in ToOptions().
func OptCheckWithProgress(b bool) Option {
	return func(c *Config) {
		c.Check.WithProgress = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

func cleanList(ss []string) []string {
	var res []string
	for _, v := range ss {
		for _, s := range strings.Split(v, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				res = append(res, s)
			}
		}
	}
	return res
}
