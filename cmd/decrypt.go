// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shamo33/cryptor/internal/cryptor"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt infile outfile",
	Short: "Decrypt a file",
	Long: `Decrypt infile into outfile. The first 16 bytes of infile are the
initialization vector written by encrypt; inputs shorter than that are
rejected.

The key comes from --keyfile (a 16-byte key file) or --key (the name of a
key in the keyring).`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return cryptCmdLoadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := resolveKey()
		if err != nil {
			return err
		}

		if err := cryptor.DecryptFile(args[0], args[1], key); err != nil {
			return err
		}
		slog.Info("Decrypted", "src", args[0], "dst", args[1])
		return nil
	},
}

func init() {
	decryptCmdInit()
}

func decryptCmdInit() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.Flags().String("config", "", "Pathname of the configuration file")
	decryptCmd.Flags().String("keyfile", "", "Path to a 16-byte key file")
	decryptCmd.Flags().String("key", "", "Name of a key in the keyring")
}
