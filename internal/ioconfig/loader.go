// Package ioconfig loads configuration from a dotenv file, the
// environment and an optional YAML file.
// This is an impure package that handles file system operations.
package ioconfig

import (
	"errors"
	"os"

	"github.com/gnames/squadcheck/pkg/config"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load returns configuration resolved from, highest precedence first:
// environment variables, the dotenv file, the YAML file at configPath,
// and defaults.
//
// If envFile is empty, config.EnvFile in the working directory is used
// when it exists. An explicitly given envFile or configPath has to exist.
// If configPath is empty, no YAML file is read.
func Load(configPath, envFile string) (*config.Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	initEnvVars(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, ReadConfigError(configPath, err)
		}
	}

	var raw config.Config
	if err := v.Unmarshal(&raw); err != nil {
		return nil, ReadConfigError(configPath, err)
	}

	opts := raw.ToOptions()
	// zero is a valid timeout that ToOptions skips
	if v.IsSet("database.statement_timeout") && raw.Database.StatementTimeout == 0 {
		opts = append(opts, config.OptDatabaseStatementTimeout(0))
	}

	res := config.New()
	res.Update(opts)
	return res, nil
}

// loadEnvFile adds variables from a dotenv file to the environment.
// Variables that are already set are not overridden.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = config.EnvFile
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return EnvFileError(path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return EnvFileError(path, err)
	}
	return nil
}

// initEnvVars binds every recognized environment variable explicitly,
// so it is clear which variables are allowed. They match the fields of
// config.ToOptions().
func initEnvVars(v *viper.Viper) {
	// Database configuration
	_ = v.BindEnv("database.driver", "DB_DRIVER")
	_ = v.BindEnv("database.host", "DB_HOST")
	_ = v.BindEnv("database.port", "DB_PORT")
	_ = v.BindEnv("database.user", "DB_USER")
	_ = v.BindEnv("database.password", "DB_PASS")
	_ = v.BindEnv("database.database", "DB_NAME")
	_ = v.BindEnv("database.ssl_mode", "DB_SSLMODE")
	_ = v.BindEnv("database.statement_timeout", "DB_STATEMENT_TIMEOUT")

	// Report configuration
	_ = v.BindEnv("check.format", "SQUADCHECK_CHECK_FORMAT")

	// Log configuration
	_ = v.BindEnv("log.level", "SQUADCHECK_LOG_LEVEL")
	_ = v.BindEnv("log.format", "SQUADCHECK_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "SQUADCHECK_LOG_DESTINATION")
}
