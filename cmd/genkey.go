// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shamo33/cryptor/internal/cryptor"
)

// genkeyCmd represents the genkey command
var genkeyCmd = &cobra.Command{
	Use:   "genkey keyfile",
	Short: "Generate a new random key file",
	Long: `Generate 16 cryptographically random bytes and write them to keyfile.
With --name the key is also stored in the keyring under that name.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfigFile(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := cryptor.WriteKeyFile(args[0])
		if err != nil {
			return err
		}
		slog.Info("Generated key file", "path", args[0])

		if name := viper.GetString("name"); name != "" {
			cfg, err := unmarshalConfig()
			if err != nil {
				return err
			}
			ring, err := cfg.DB.openKeyring()
			if err != nil {
				return err
			}
			if err := ring.Put(name, key); err != nil {
				return err
			}
			slog.Info("Stored key in keyring", "name", name)
		}
		return nil
	},
}

func init() {
	genkeyCmdInit()
}

func genkeyCmdInit() {
	rootCmd.AddCommand(genkeyCmd)
	genkeyCmd.Flags().String("config", "", "Pathname of the configuration file")
	genkeyCmd.Flags().String("name", "", "Also store the key in the keyring under this name")
}
