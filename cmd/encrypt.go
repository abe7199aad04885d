// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shamo33/cryptor/internal/cryptor"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt infile outfile",
	Short: "Encrypt a file",
	Long: `Encrypt infile into outfile. A fresh random initialization vector is
generated for every run and stored as the first 16 bytes of outfile.

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

		if err := cryptor.EncryptFile(args[0], args[1], key); err != nil {
			return err
		}
		slog.Info("Encrypted", "src", args[0], "dst", args[1])
		return nil
	},
}

func init() {
	encryptCmdInit()
}

func encryptCmdInit() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().String("config", "", "Pathname of the configuration file")
	encryptCmd.Flags().String("keyfile", "", "Path to a 16-byte key file")
	encryptCmd.Flags().String("key", "", "Name of a key in the keyring")
}

// Configuration shared by the encrypt and decrypt commands.
var (
	keyFilePath string
	keyName     string
	cryptConfig *CryptorConfig
)

// Load configuration from viper for a crypt command.
func cryptCmdLoadConfig(cmd *cobra.Command) error {
	if err := loadConfigFile(cmd); err != nil {
		return err
	}

	cfg, err := unmarshalConfig()
	if err != nil {
		return err
	}
	cryptConfig = cfg

	keyFilePath = viper.GetString("keyfile")
	keyName = viper.GetString("key")

	if keyFilePath == "" && keyName == "" {
		return errors.New("a key source is required: --keyfile or --key")
	}
	if keyFilePath != "" && keyName != "" {
		return errors.New("--keyfile and --key are mutually exclusive")
	}
	return nil
}

// resolveKey loads the key material selected by cryptCmdLoadConfig.
func resolveKey() ([]byte, error) {
	if keyFilePath != "" {
		return cryptor.ReadKeyFile(keyFilePath)
	}

	ring, err := cryptConfig.DB.openKeyring()
	if err != nil {
		return nil, err
	}
	key, err := ring.Get(keyName)
	if err != nil {
		return nil, fmt.Errorf("load key %q: %w", keyName, err)
	}
	return key, nil
}
