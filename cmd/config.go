// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shamo33/cryptor/internal/keyring"
)

// Log configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unsupported log level %q", level)
}

// SQLiteOptions holds driver options for the sqlite keyring backend. They
// are appended to the DSN as go-sqlite3 query parameters.
type SQLiteOptions struct {
	BusyTimeoutMS int  `mapstructure:"busy_timeout_ms"`
	ReadOnly      bool `mapstructure:"read_only"`
}

// PostgresOptions holds driver options for the postgres keyring backend.
// They are appended to the DSN as space-separated key=value settings.
type PostgresOptions struct {
	SSLMode         string `mapstructure:"ssl_mode"`
	ApplicationName string `mapstructure:"application_name"`
}

// Database configuration for the keyring. Unmarshalling happens in two
// steps: first the type and DSN are decoded, then once the type is known
// RawOptions can be decoded into the driver-specific options. See
// UnmarshalOptions() below.
type DatabaseConfig struct {
	Type       string                 `mapstructure:"type"`
	DSN        string                 `mapstructure:"dsn"`
	RawOptions map[string]interface{} `mapstructure:"options"`

	SQLiteOptions   *SQLiteOptions
	PostgresOptions *PostgresOptions
}

// UnmarshalOptions converts RawOptions to the appropriate typed options
// field based on the database type. This must be called after Viper
// unmarshaling.
func (dc *DatabaseConfig) UnmarshalOptions() error {
	if dc.RawOptions == nil {
		return nil
	}

	switch strings.ToLower(dc.Type) {
	case "sqlite":
		var opts SQLiteOptions
		if err := mapstructure.Decode(dc.RawOptions, &opts); err != nil {
			return fmt.Errorf("failed to decode sqlite options: %w", err)
		}
		dc.SQLiteOptions = &opts

	case "postgres":
		var opts PostgresOptions
		if err := mapstructure.Decode(dc.RawOptions, &opts); err != nil {
			return fmt.Errorf("failed to decode postgres options: %w", err)
		}
		dc.PostgresOptions = &opts

	default:
		return fmt.Errorf("unsupported database type %q", dc.Type)
	}

	// Clear RawOptions to save memory
	dc.RawOptions = nil
	return nil
}

func (dc *DatabaseConfig) validate() error {
	if dc.Type == "" && dc.DSN == "" {
		return errors.New("keyring database configuration is required ([db] type and dsn)")
	}
	dc.Type = strings.ToLower(dc.Type)
	if dc.Type != "sqlite" && dc.Type != "postgres" {
		return fmt.Errorf("unsupported database type: %s (must be 'sqlite' or 'postgres')", dc.Type)
	}
	if dc.DSN == "" {
		return errors.New("database configuration error: dsn is required")
	}
	return dc.UnmarshalOptions()
}

// effectiveDSN folds the typed driver options into the configured DSN.
func (dc *DatabaseConfig) effectiveDSN() string {
	dsn := dc.DSN
	switch {
	case dc.SQLiteOptions != nil:
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		if dc.SQLiteOptions.BusyTimeoutMS > 0 {
			dsn += fmt.Sprintf("%s_busy_timeout=%d", sep, dc.SQLiteOptions.BusyTimeoutMS)
			sep = "&"
		}
		if dc.SQLiteOptions.ReadOnly {
			dsn += sep + "mode=ro"
		}
	case dc.PostgresOptions != nil:
		if dc.PostgresOptions.SSLMode != "" {
			dsn += " sslmode=" + dc.PostgresOptions.SSLMode
		}
		if dc.PostgresOptions.ApplicationName != "" {
			dsn += " application_name=" + dc.PostgresOptions.ApplicationName
		}
	}
	return dsn
}

// openKeyring validates the database configuration and connects to it.
func (dc *DatabaseConfig) openKeyring() (*keyring.Keyring, error) {
	if err := dc.validate(); err != nil {
		return nil, err
	}
	return keyring.Open(dc.Type, dc.effectiveDSN())
}

// Structure to hold the contents of the configuration file
type CryptorConfig struct {
	Log LogConfig      `mapstructure:"log"`
	DB  DatabaseConfig `mapstructure:"db"`
}

// loadConfigFile binds the command's flags into viper and, if a --config
// flag was given, reads the configuration file. Command-line flags take
// precedence over file contents.
func loadConfigFile(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	configFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	if configFilePath != "" {
		slog.Debug("Loading configuration file", "path", configFilePath)
		viper.SetConfigFile(configFilePath)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("configuration file read failed: %w", err)
		}
	}

	return rootCmdLoadConfig()
}

// unmarshalConfig extracts the typed configuration after loadConfigFile.
func unmarshalConfig() (*CryptorConfig, error) {
	var cfg CryptorConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("configuration unmarshal failed: %w", err)
	}
	return &cfg, nil
}
