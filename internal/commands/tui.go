// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kegmil/catalog-cli/internal/logging"
	"github.com/kegmil/catalog-cli/internal/tui"
)

var errNotTerminal = errors.New("the TUI needs an interactive terminal; use 'catalog list' for scripted output")

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

func newTUICommand(global *globalOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive Terminal User Interface",
		Long: `Launch the interactive item browser.

The TUI provides:
- Live search over item names and IDs (/ and s)
- Status filter (f), column sort toggles (1-5) and page size (p)
- Page navigation with h/l or [ and ]
- Item details with JSON view and copy-to-clipboard (enter, then y)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isInteractive() {
				return errNotTerminal
			}

			cat, err := global.openCatalog(cmd, file)
			if err != nil {
				return err
			}

			state := global.cfg.ViewState()
			app := tui.NewApp(cat, state, *logging.FromContext(cmd.Context()))

			return app.Run()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog file (.json, .yaml, .yml, .md)")

	return cmd
}
