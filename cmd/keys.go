// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shamo33/cryptor/internal/cryptor"
	"github.com/shamo33/cryptor/internal/keyring"
	"github.com/shamo33/cryptor/kcipher2"
)

// keysCmd represents the keys command group
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the named keyring",
	Long: `Manage named keys stored in the keyring database.

The keyring backend is configured in the [db] section of the configuration
file: type "sqlite" or "postgres" and a driver DSN.`,
}

var keysAddCmd = &cobra.Command{
	Use:   "add name",
	Short: "Add a key to the keyring",
	Long: `Store a key in the keyring under name. With --keyfile the key is
imported from an existing 16-byte key file; otherwise a fresh random key is
generated.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return keysCmdLoadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var key []byte
		if path := viper.GetString("keyfile"); path != "" {
			k, err := cryptor.ReadKeyFile(path)
			if err != nil {
				return err
			}
			key = k
		} else {
			key = make([]byte, kcipher2.KeySize)
			if _, err := rand.Read(key); err != nil {
				return fmt.Errorf("generate key: %w", err)
			}
		}

		if err := keysRing.Put(args[0], key); err != nil {
			return err
		}
		slog.Info("Stored key", "name", args[0])
		return nil
	},
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List keyring entries",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return keysCmdLoadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := keysRing.List()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCREATED")
		for _, k := range keys {
			fmt.Fprintf(w, "%s\t%s\n", k.Name, k.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()
	},
}

var keysRemoveCmd = &cobra.Command{
	Use:   "remove name",
	Short: "Remove a key from the keyring",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return keysCmdLoadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keysRing.Remove(args[0]); err != nil {
			return err
		}
		slog.Info("Removed key", "name", args[0])
		return nil
	},
}

var keysShowCmd = &cobra.Command{
	Use:   "show name",
	Short: "Print a key's material as hex",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return keysCmdLoadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := keysRing.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(key))
		return nil
	},
}

func init() {
	keysCmdInit()
}

func keysCmdInit() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.AddCommand(keysAddCmd, keysListCmd, keysRemoveCmd, keysShowCmd)
	for _, c := range []*cobra.Command{keysAddCmd, keysListCmd, keysRemoveCmd, keysShowCmd} {
		c.Flags().String("config", "", "Pathname of the configuration file")
	}
	keysAddCmd.Flags().String("keyfile", "", "Import the key from this file instead of generating one")
}

var keysRing *keyring.Keyring

// Load configuration from viper and open the keyring.
func keysCmdLoadConfig(cmd *cobra.Command) error {
	if err := loadConfigFile(cmd); err != nil {
		return err
	}

	cfg, err := unmarshalConfig()
	if err != nil {
		return err
	}

	ring, err := cfg.DB.openKeyring()
	if err != nil {
		return err
	}
	keysRing = ring
	return nil
}
