// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/kegmil/catalog-cli/internal/dataview"
	"github.com/kegmil/catalog-cli/internal/errors"
	"github.com/kegmil/catalog-cli/internal/logging"
	"github.com/kegmil/catalog-cli/internal/utils"
)

type listOptions struct {
	file         string
	search       string
	globalSearch string
	status       string
	sort         string
	page         int
	pageSize     int
	output       string
}

// listResult is the json/yaml shape of `catalog list`
type listResult struct {
	Catalog       string `json:"catalog"        yaml:"catalog"`
	Sort          string `json:"sort"           yaml:"sort"`
	StatusFilter  string `json:"status_filter"  yaml:"status_filter"`
	dataview.View `yaml:",inline"`
}

func newListCommand(global *globalOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		Long: `List one page of catalog items.

Search terms match item names and item IDs, ignoring case. --search and
--global must both match. Defaults for --sort, --status and --page-size come
from the configuration.`,
		Example: `  catalog list
  catalog list -s xx --status Active --sort itemId:desc
  catalog list --file items.yaml --page 2 --page-size 5 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "catalog file (.json, .yaml, .yml, .md)")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "search item names and IDs")
	cmd.Flags().StringVar(&opts.globalSearch, "global", "", "second search term, combined with --search")
	cmd.Flags().StringVar(&opts.status, "status", "", "status filter: All, Active or Inactive")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort as field[:asc|desc], e.g. itemId:desc")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "items per page")
	cmd.Flags().StringVarP(&opts.output, "output", "o", string(outputTable), "output format: table, json or yaml")

	_ = cmd.RegisterFlagCompletionFunc("status", cobra.FixedCompletions(
		[]string{string(dataview.StatusAll), string(dataview.StatusActive), string(dataview.StatusInactive)},
		cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(
		outputFormatNames(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// listState applies the list flags on top of the configured defaults
func listState(cmd *cobra.Command, global *globalOptions, opts *listOptions) (dataview.ViewState, error) {
	state := dataview.DefaultState()
	if global.cfg != nil {
		state = global.cfg.ViewState()
	}

	flags := cmd.Flags()

	if flags.Changed("sort") {
		field, dir, err := dataview.ParseSort(opts.sort)
		if err != nil {
			return state, errors.NewValidationError("sort", opts.sort, "%v", err)
		}
		state.SortField = field
		state.SortDirection = dir
	}

	if flags.Changed("status") {
		status, ok := dataview.ParseStatusFilter(opts.status)
		if !ok {
			return state, errors.NewValidationError("status", opts.status, "must be All, Active or Inactive")
		}
		state = dataview.Reduce(state, dataview.StatusFilterChanged{Filter: status})
	}

	if flags.Changed("page-size") {
		if opts.pageSize < 1 {
			return state, errors.NewValidationError("page-size", opts.pageSize, "must be at least 1")
		}
		state = dataview.Reduce(state, dataview.PageSizeChanged{Size: opts.pageSize})
	}

	state = dataview.Reduce(state, dataview.SearchChanged{Term: opts.search})
	state = dataview.Reduce(state, dataview.GlobalSearchChanged{Term: opts.globalSearch})

	if opts.page < 1 {
		return state, errors.NewValidationError("page", opts.page, "must be at least 1")
	}
	state.Page = opts.page

	return state, nil
}

func runList(cmd *cobra.Command, global *globalOptions, opts *listOptions) error {
	start := time.Now()
	logger := logging.FromContext(cmd.Context())

	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	state, err := listState(cmd, global, opts)
	if err != nil {
		return err
	}

	cat, err := global.openCatalog(cmd, opts.file)
	if err != nil {
		return err
	}

	view := dataview.ComputeView(cat.Items, state)

	logging.Elapsed(logger.Debug(), start).
		Str("component", "list").
		Str("state", state.Key()).
		Int("before", len(cat.Items)).
		Int("after", view.TotalMatched).
		Int("page", view.Page).
		Msg("view computed")

	out := cmd.OutOrStdout()
	switch format {
	case outputJSON, outputYAML:
		return writeStructured(out, format, listResult{
			Catalog:      cat.Name,
			Sort:         dataview.FormatSort(state.SortField, state.SortDirection),
			StatusFilter: string(state.StatusFilter),
			View:         view,
		})
	default:
		return writeTable(out, state, view, nameWidth(out))
	}
}

func writeTable(out io.Writer, state dataview.ViewState, view dataview.View, maxName int) error {
	if view.TotalMatched == 0 {
		fmt.Fprintln(out, "No items found")
		fmt.Fprintln(out, view.Footer())
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, field := range dataview.Fields() {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, header(field, state))
	}
	fmt.Fprintln(w)

	for _, item := range view.PageItems {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			utils.TruncateWithEllipsis(item.ItemName, maxName),
			item.ItemID,
			item.ItemCategory,
			item.Status,
			item.UnitOfMeasure,
		)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, view.Footer())
	return nil
}

// header is the column title plus the sort indicator
func header(field dataview.Field, state dataview.ViewState) string {
	if field == state.SortField {
		return field.Title() + " " + state.SortDirection.Arrow()
	}
	return field.Title()
}
