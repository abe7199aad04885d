// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var capturedConfig *CryptorConfig

func resetState(t *testing.T) {
	t.Helper()

	// reinitialize the CLI/Config logic
	viper.Reset()
	rootCmd.ResetFlags()
	rootCmd.ResetCommands()
	rootCmd.SetArgs(nil)

	for _, c := range []*cobra.Command{encryptCmd, decryptCmd, genkeyCmd, keysCmd, keysAddCmd, keysListCmd, keysRemoveCmd, keysShowCmd} {
		c.ResetFlags()
		c.ResetCommands()
		c.SetArgs(nil)
	}

	rootCmdInit()
	encryptCmdInit()
	decryptCmdInit()
	genkeyCmdInit()
	keysCmdInit()

	// Reset captured state
	capturedConfig = nil
	keyFilePath = ""
	keyName = ""
	cryptConfig = nil
	keysRing = nil
}

// Stub out the command execution. We do not want to run the actual
// command, just verify that the configuration is correct
func stubRunE(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	orig := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		// Capture the configuration that would be unmarshaled.
		// Note: flags are already parsed by cobra before RunE is called,
		// and PreRunE has already loaded the config file into viper
		cfg, err := unmarshalConfig()
		if err != nil {
			return err
		}
		capturedConfig = cfg
		return nil
	}
	t.Cleanup(func() { cmd.RunE = orig })
}

func writeConfigFile(t *testing.T, name, contents string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEncrypt_LoadsFromTOMLConfig(t *testing.T) {
	resetState(t)
	stubRunE(t, encryptCmd)

	cfg := `
[log]
level = "warn"
[db]
type = "sqlite"
dsn = "file:/tmp/keys.db"
[db.options]
busy_timeout_ms = 5000
`
	path := writeConfigFile(t, "config.toml", cfg)
	rootCmd.SetArgs([]string{"encrypt", "--config", path, "--keyfile", "/path/to/test.key", "in.bin", "out.bin"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if capturedConfig == nil {
		t.Fatalf("encrypt config not captured")
	}
	if capturedConfig.Log.Level != "warn" {
		t.Fatalf("Log.Level=%q, want %q", capturedConfig.Log.Level, "warn")
	}
	if capturedConfig.DB.Type != "sqlite" {
		t.Fatalf("DB.Type=%q, want %q", capturedConfig.DB.Type, "sqlite")
	}
	if capturedConfig.DB.DSN != "file:/tmp/keys.db" {
		t.Fatalf("DB.DSN=%q, want %q", capturedConfig.DB.DSN, "file:/tmp/keys.db")
	}
	if keyFilePath != "/path/to/test.key" {
		t.Fatalf("keyFilePath=%q, want %q", keyFilePath, "/path/to/test.key")
	}

	if err := capturedConfig.DB.validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if capturedConfig.DB.SQLiteOptions == nil || capturedConfig.DB.SQLiteOptions.BusyTimeoutMS != 5000 {
		t.Fatalf("SQLiteOptions=%+v, want busy_timeout_ms 5000", capturedConfig.DB.SQLiteOptions)
	}
	if dsn := capturedConfig.DB.effectiveDSN(); dsn != "file:/tmp/keys.db?_busy_timeout=5000" {
		t.Fatalf("effectiveDSN=%q", dsn)
	}
}

func TestEncrypt_LoadsFromYAMLConfig(t *testing.T) {
	resetState(t)
	stubRunE(t, encryptCmd)

	cfg := `
log:
  level: "error"
db:
  type: "postgres"
  dsn: "host=localhost user=cryptor dbname=keys"
  options:
    ssl_mode: "disable"
    application_name: "cryptor-test"
`
	path := writeConfigFile(t, "config.yaml", cfg)
	rootCmd.SetArgs([]string{"encrypt", "--config", path, "--key", "backup", "in.bin", "out.bin"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if capturedConfig == nil {
		t.Fatalf("encrypt config not captured")
	}
	if capturedConfig.Log.Level != "error" {
		t.Fatalf("Log.Level=%q, want %q", capturedConfig.Log.Level, "error")
	}
	if capturedConfig.DB.Type != "postgres" {
		t.Fatalf("DB.Type=%q, want %q", capturedConfig.DB.Type, "postgres")
	}
	if keyName != "backup" {
		t.Fatalf("keyName=%q, want %q", keyName, "backup")
	}

	if err := capturedConfig.DB.validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if capturedConfig.DB.PostgresOptions == nil || capturedConfig.DB.PostgresOptions.SSLMode != "disable" {
		t.Fatalf("PostgresOptions=%+v, want ssl_mode disable", capturedConfig.DB.PostgresOptions)
	}
	dsn := capturedConfig.DB.effectiveDSN()
	if !strings.Contains(dsn, "sslmode=disable") || !strings.Contains(dsn, "application_name=cryptor-test") {
		t.Fatalf("effectiveDSN=%q", dsn)
	}
}

func TestEncrypt_RequiresKeySource(t *testing.T) {
	resetState(t)
	stubRunE(t, encryptCmd)

	rootCmd.SetArgs([]string{"encrypt", "in.bin", "out.bin"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for missing key source")
	}
}

func TestEncrypt_KeySourcesAreExclusive(t *testing.T) {
	resetState(t)
	stubRunE(t, encryptCmd)

	rootCmd.SetArgs([]string{"encrypt", "--keyfile", "a.key", "--key", "b", "in.bin", "out.bin"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for both --keyfile and --key")
	}
}

func TestEncrypt_CommandLineFlagsOverrideConfigFile(t *testing.T) {
	resetState(t)
	stubRunE(t, encryptCmd)

	cfg := `
keyfile = "/config/file.key"
[db]
type = "sqlite"
dsn = "file:/tmp/keys.db"
`
	path := writeConfigFile(t, "config.toml", cfg)
	rootCmd.SetArgs([]string{"encrypt", "--config", path, "--keyfile", "/cli/file.key", "in.bin", "out.bin"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if keyFilePath != "/cli/file.key" {
		t.Fatalf("keyFilePath=%q, want %q (CLI flag should override config)", keyFilePath, "/cli/file.key")
	}
}

func TestDecrypt_KeyFileFromConfigFile(t *testing.T) {
	resetState(t)
	stubRunE(t, decryptCmd)

	cfg := `
keyfile = "/config/file.key"
`
	path := writeConfigFile(t, "config.toml", cfg)
	rootCmd.SetArgs([]string{"decrypt", "--config", path, "in.bin", "out.bin"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if keyFilePath != "/config/file.key" {
		t.Fatalf("keyFilePath=%q, want %q", keyFilePath, "/config/file.key")
	}
}

func TestGenkey_ErrorForInvalidConfigPath(t *testing.T) {
	resetState(t)
	stubRunE(t, genkeyCmd)

	rootCmd.SetArgs([]string{"genkey", "--config", "/no/such/file.toml", "out.key"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error reading config file")
	}
}

func TestDatabaseConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     DatabaseConfig
		wantErr bool
	}{
		{"valid sqlite", DatabaseConfig{Type: "sqlite", DSN: "file:x.db"}, false},
		{"valid postgres", DatabaseConfig{Type: "postgres", DSN: "host=db"}, false},
		{"case folded", DatabaseConfig{Type: "SQLite", DSN: "file:x.db"}, false},
		{"missing everything", DatabaseConfig{}, true},
		{"missing dsn", DatabaseConfig{Type: "sqlite"}, true},
		{"unsupported type", DatabaseConfig{Type: "oracle", DSN: "x"}, true},
		{
			"bad option value",
			DatabaseConfig{Type: "sqlite", DSN: "file:x.db", RawOptions: map[string]interface{}{"busy_timeout_ms": "soon"}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error", "WARN"} {
		if _, err := parseLogLevel(lvl); err != nil {
			t.Fatalf("parseLogLevel(%q): %v", lvl, err)
		}
	}
	if _, err := parseLogLevel("loud"); err == nil {
		t.Fatal("parseLogLevel accepted an unsupported level")
	}
}
