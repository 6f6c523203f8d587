// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kegmil/catalog-cli/internal/catalog"
	"github.com/kegmil/catalog-cli/internal/models"
)

func newShowCommand(global *globalOptions) *cobra.Command {
	var (
		file     string
		showJSON bool
	)

	cmd := &cobra.Command{
		Use:   "show ITEM_ID",
		Short: "Show the details of one item",
		Long:  `Show every field of the item with the given item ID. Matching ignores case.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := global.openCatalog(cmd, file)
			if err != nil {
				return err
			}

			item, err := catalog.FindByItemID(cat.Items, args[0])
			if err != nil {
				return err
			}

			if showJSON {
				return writeStructured(cmd.OutOrStdout(), outputJSON, item)
			}

			printItemDetails(cmd.OutOrStdout(), item)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog file (.json, .yaml, .yml, .md)")
	cmd.Flags().BoolVar(&showJSON, "json", false, "output in JSON format")

	return cmd
}

func printItemDetails(out io.Writer, item models.Item) {
	fmt.Fprintf(out, "Item ID: %s\n", item.ItemID)
	fmt.Fprintf(out, "Name: %s\n", item.ItemName)
	fmt.Fprintf(out, "Category: %s\n", item.ItemCategory)
	fmt.Fprintf(out, "Status: %s\n", item.Status)
	fmt.Fprintf(out, "Unit of Measure: %s\n", item.UnitOfMeasure)
	fmt.Fprintf(out, "Record ID: %s\n", item.ID)
}
