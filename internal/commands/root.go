// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kegmil/catalog-cli/internal/catalog"
	"github.com/kegmil/catalog-cli/internal/config"
	"github.com/kegmil/catalog-cli/internal/errors"
	"github.com/kegmil/catalog-cli/internal/logging"
	"github.com/kegmil/catalog-cli/pkg/version"
)

// globalOptions holds the persistent flags and what PersistentPreRunE
// derives from them
type globalOptions struct {
	cfgFile string
	debug   bool

	cfg      *config.Config
	closeLog func()
}

// NewRootCommand builds the full command tree. Each call returns fresh
// flag state.
func NewRootCommand() *cobra.Command {
	rootCmd, _ := newRootCommand()
	return rootCmd
}

func newRootCommand() (*cobra.Command, *globalOptions) {
	opts := &globalOptions{closeLog: func() {}}

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Catalog CLI - search, filter, sort and page through item catalogs",
		Long: `Catalog CLI browses item catalogs loaded from JSON, YAML or Markdown files.
Without a catalog file it uses a built-in sample of ten items.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "",
		"config file (default is $XDG_CONFIG_HOME/catalog/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false,
		"write debug logs (see "+logging.EnvDebugLog+")")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newShowCommand(opts))
	rootCmd.AddCommand(newTUICommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newCompletionCommand())

	return rootCmd, opts
}

// run executes rootCmd and closes the debug log, also when the command fails
func run(ctx context.Context, rootCmd *cobra.Command, opts *globalOptions) error {
	defer func() { opts.closeLog() }()
	return rootCmd.ExecuteContext(ctx)
}

func (o *globalOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	if o.debug {
		cfg.Debug = true
	}
	o.cfg = cfg

	logger, closeLog := logging.New(logging.Options{Enabled: cfg.Debug})
	o.closeLog = closeLog

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithContext(ctx, logger))

	if err := cfg.Validate(); err != nil {
		logger.Warn().Err(err).Msg("invalid configuration, using defaults for bad values")
	}
	logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("version", version.UserAgent()).
		Str("config_file", o.cfgFile).
		Str("catalog_file", cfg.CatalogFile).
		Msg("configuration loaded")

	return nil
}

// openCatalog loads the catalog named by --file, falling back to the
// configured catalog file and then the built-in sample
func (o *globalOptions) openCatalog(cmd *cobra.Command, file string) (*catalog.Catalog, error) {
	if file == "" && o.cfg != nil {
		file = o.cfg.CatalogFile
	}

	cat, err := catalog.Open(file)
	if err != nil {
		return nil, err
	}

	logging.FromContext(cmd.Context()).Debug().
		Str("component", "catalog").
		Str("name", cat.Name).
		Int("items", len(cat.Items)).
		Msg("catalog loaded")

	return cat, nil
}

func Execute() {
	rootCmd, opts := newRootCommand()
	if err := run(context.Background(), rootCmd, opts); err != nil {
		// Format error message for better user experience
		errorMsg := errors.FormatUserError(err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", errorMsg)

		if hint := errors.Hint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "\nHint: %s\n", hint)
		}

		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetBuildInfo())
		},
	}
}
