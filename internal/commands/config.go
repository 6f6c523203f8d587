// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kegmil/catalog-cli/internal/config"
)

func newConfigCommand(global *globalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage catalog configuration",
		Long: `Manage the catalog file, default page size, default sort and status filter.

Keys: catalog-file, page-size, sort, status, debug.
Each key can also be set through the environment, e.g. CATALOG_PAGE_SIZE=25.`,
	}

	configSetCmd := &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			cfg := global.cfg
			if cfg == nil {
				cfg = config.Default()
			}

			if err := cfg.Set(key, value); err != nil {
				return err
			}

			if err := config.Save(cfg, global.cfgFile); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			stored, _ := cfg.Get(key)
			fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %s\n", displayKey(key), stored)
			return nil
		},
	}

	configGetCmd := &cobra.Command{
		Use:       "get [key]",
		Short:     "Get a configuration value",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: displayKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := global.cfg
			if cfg == nil {
				cfg = config.Default()
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, key := range config.Keys {
					value, _ := cfg.Get(key)
					if value == "" {
						value = "(not set)"
					}
					fmt.Fprintf(out, "%s: %s\n", displayKey(key), value)
				}
				return nil
			}

			value, err := cfg.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, value)
			return nil
		},
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			path := global.cfgFile
			if path == "" {
				path = config.DefaultConfigPath()
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		},
	}

	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)

	return configCmd
}

// displayKey is the dashed spelling shown to users
func displayKey(key string) string {
	return strings.ReplaceAll(config.NormalizeKey(key), "_", "-")
}

func displayKeys() []string {
	keys := make([]string, len(config.Keys))
	for i, key := range config.Keys {
		keys[i] = displayKey(key)
	}
	return keys
}
