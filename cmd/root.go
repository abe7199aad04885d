// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"
)

var (
	debug    bool
	logLevel slog.LevelVar
)

var rootCmd = &cobra.Command{
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Use:   "cryptor",
	Short: "File encryption tool built on the KCipher-2 stream cipher",
	Long: `cryptor encrypts and decrypts files with the KCipher-2 stream cipher.

Keys are 128 bits, read from key files or from a named keyring stored in a
local sqlite or shared postgres database. Encrypted files carry their random
initialization vector as a 16-byte prefix, so the key alone is enough to
decrypt them.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stdout, &devlog.Options{
		Level: &logLevel,
	})))

	rootCmdInit()
}

func rootCmdInit() {
	rootCmd.PersistentFlags().Bool("debug", false, "Print debug contents")
}

// Initialize configuration from viper's configuration. This function is
// called by the subcommands after the viper flags are bound and the
// configuration file is loaded.
func rootCmdLoadConfig() error {
	debug = viper.GetBool("debug")
	if debug {
		logLevel.Set(slog.LevelDebug)
	} else if lvl := viper.GetString("log.level"); lvl != "" {
		parsed, err := parseLogLevel(lvl)
		if err != nil {
			return err
		}
		logLevel.Set(parsed)
	}
	return nil
}
