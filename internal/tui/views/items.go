// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/kegmil/catalog-cli/internal/cache"
	"github.com/kegmil/catalog-cli/internal/dataview"
	"github.com/kegmil/catalog-cli/internal/models"
	"github.com/kegmil/catalog-cli/internal/tui/components"
	"github.com/kegmil/catalog-cli/internal/tui/messages"
	"github.com/kegmil/catalog-cli/internal/tui/styles"
	"github.com/kegmil/catalog-cli/internal/utils"
)

// PageSizes are the choices cycled by the page size key
var PageSizes = []int{5, 10, 20, 50}

// unsortedArrow marks sortable columns that are not the active sort
const unsortedArrow = "↕"

type searchTarget int

const (
	searchNone searchTarget = iota
	searchTable
	searchGlobal
)

// chromeHeight is the rows used by title, filter line, footer and help
const chromeHeight = 7

type ItemsView struct {
	title     string
	records   []models.Item
	state     dataview.ViewState
	view      dataview.View
	viewCache *cache.ViewCache
	table     *components.Table
	keys      components.KeyMap
	help      help.Model
	input     textinput.Model
	searching searchTarget
	showHelp  bool
	width     int
	height    int
	logger    zerolog.Logger
}

// NewItemsView builds the list screen. records are never modified; every
// state change recomputes the page through viewCache.
func NewItemsView(title string, records []models.Item, state dataview.ViewState, viewCache *cache.ViewCache, logger zerolog.Logger) *ItemsView {
	columns := []components.Column{
		{Title: dataview.FieldItemName.Title(), MinWidth: 20, Flex: 3},
		{Title: dataview.FieldItemID.Title(), MinWidth: 10, Flex: 1},
		{Title: dataview.FieldItemCategory.Title(), MinWidth: 14, Flex: 2},
		{Title: dataview.FieldStatus.Title(), MinWidth: 10},
		{Title: dataview.FieldUnitOfMeasure.Title(), MinWidth: 8},
	}

	input := textinput.New()
	input.Prompt = "/ "
	input.CharLimit = 100

	v := &ItemsView{
		title:     title,
		records:   records,
		state:     state,
		viewCache: viewCache,
		table:     components.NewTable(columns),
		keys:      components.DefaultKeyMap,
		help:      help.New(),
		input:     input,
		logger:    logger.With().Str("component", "items").Logger(),
	}
	v.refresh()

	return v
}

func (v *ItemsView) Init() tea.Cmd {
	return nil
}

// State is the current search, filter, sort and page configuration
func (v *ItemsView) State() dataview.ViewState {
	return v.state
}

// CurrentView is the page on screen
func (v *ItemsView) CurrentView() dataview.View {
	return v.view
}

// SelectedItem returns the item under the cursor
func (v *ItemsView) SelectedItem() (models.Item, bool) {
	idx := v.table.GetSelectedIndex()
	if idx < 0 || idx >= len(v.view.PageItems) {
		return models.Item{}, false
	}
	return v.view.PageItems[idx], true
}

// Searching reports whether a search input has focus
func (v *ItemsView) Searching() bool {
	return v.searching != searchNone
}

func (v *ItemsView) compute(state dataview.ViewState) dataview.View {
	return dataview.ComputeView(v.records, state)
}

// apply runs ev through the reducer and recomputes the page when the state changed
func (v *ItemsView) apply(ev dataview.Event) {
	next := dataview.Reduce(v.state, ev)
	if next == v.state {
		return
	}

	v.logger.Debug().
		Str("event", fmt.Sprintf("%T", ev)).
		Str("state", next.Key()).
		Msg("state changed")

	v.state = next
	v.refresh()
	v.table.GoToTop()
}

func (v *ItemsView) refresh() {
	hit := false
	if v.viewCache != nil {
		v.view, hit = v.viewCache.GetOrCompute(v.state, v.compute)
	} else {
		v.view = v.compute(v.state)
	}

	// the engine clamps the page; keep the state on the page actually shown
	v.state.Page = v.view.Page

	v.logger.Debug().
		Bool("cache_hit", hit).
		Int("before", len(v.records)).
		Int("after", v.view.TotalMatched).
		Int("page", v.view.Page).
		Msg("view computed")

	v.table.SetTitles(v.headers())
	v.table.SetEmptyMessage(v.emptyMessage())

	rows := make([]components.Row, 0, len(v.view.PageItems))
	for _, item := range v.view.PageItems {
		rows = append(rows, components.Row{
			utils.SingleLine(item.ItemName),
			item.ItemID,
			item.ItemCategory,
			styles.GetStatusIcon(item.Status) + " " + string(item.Status),
			item.UnitOfMeasure,
		})
	}
	v.table.SetRows(rows)
}

func (v *ItemsView) headers() []string {
	fields := dataview.Fields()
	titles := make([]string, len(fields))
	for i, field := range fields {
		arrow := unsortedArrow
		if field == v.state.SortField {
			arrow = v.state.SortDirection.Arrow()
		}
		titles[i] = field.Title() + " " + arrow
	}
	return titles
}

func (v *ItemsView) emptyMessage() string {
	if len(v.records) == 0 {
		return "Catalog is empty"
	}
	return "No items found"
}

func (v *ItemsView) handleWindowSizeMsg(msg tea.WindowSizeMsg) {
	v.width = msg.Width
	v.height = msg.Height
	v.table.SetDimensions(msg.Width, max(4, msg.Height-chromeHeight))
	v.help.Width = msg.Width
	v.input.Width = max(10, msg.Width-20)
}

func (v *ItemsView) startSearch(target searchTarget) tea.Cmd {
	v.searching = target
	if target == searchGlobal {
		v.input.Prompt = "search all: "
		v.input.SetValue(v.state.GlobalSearch)
	} else {
		v.input.Prompt = "/ "
		v.input.SetValue(v.state.SearchTerm)
	}
	v.input.CursorEnd()
	return v.input.Focus()
}

func (v *ItemsView) searchEvent(term string) dataview.Event {
	if v.searching == searchGlobal {
		return dataview.GlobalSearchChanged{Term: term}
	}
	return dataview.SearchChanged{Term: term}
}

// handleSearchMode filters as the user types; esc clears the term
func (v *ItemsView) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		v.searching = searchNone
		v.input.Blur()
		return v, nil
	case tea.KeyEsc:
		v.apply(v.searchEvent(""))
		v.searching = searchNone
		v.input.SetValue("")
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.apply(v.searchEvent(v.input.Value()))
	return v, cmd
}

func (v *ItemsView) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.Searching() {
		return v.handleSearchMode(msg)
	}

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	case key.Matches(msg, v.keys.Help):
		v.showHelp = !v.showHelp
	case key.Matches(msg, v.keys.Search):
		return v, v.startSearch(searchTable)
	case key.Matches(msg, v.keys.Global):
		return v, v.startSearch(searchGlobal)
	case key.Matches(msg, v.keys.Status):
		v.apply(dataview.StatusFilterChanged{Filter: v.state.StatusFilter.Next()})
	case key.Matches(msg, v.keys.SortColumn):
		fields := dataview.Fields()
		if idx, ok := components.SortColumnIndex(msg.String()); ok && idx < len(fields) {
			v.apply(dataview.SortRequested{Field: fields[idx]})
		}
	case key.Matches(msg, v.keys.PageSize):
		v.apply(dataview.PageSizeChanged{Size: nextPageSize(v.state.PageSize)})
	case key.Matches(msg, v.keys.Reset):
		v.apply(dataview.Reset{})
	case key.Matches(msg, v.keys.PrevPage):
		v.apply(dataview.PrevPage{})
	case key.Matches(msg, v.keys.NextPage):
		v.apply(dataview.NextPage{TotalPages: v.view.TotalPages})
	case key.Matches(msg, v.keys.Home):
		v.apply(dataview.PageRequested{Page: 1, TotalPages: v.view.TotalPages})
	case key.Matches(msg, v.keys.End):
		v.apply(dataview.PageRequested{Page: v.view.TotalPages, TotalPages: v.view.TotalPages})
	case key.Matches(msg, v.keys.Up):
		v.table.MoveUp()
	case key.Matches(msg, v.keys.Down):
		v.table.MoveDown()
	case key.Matches(msg, v.keys.Enter):
		if item, ok := v.SelectedItem(); ok {
			return v, func() tea.Msg {
				return messages.NavigateToDetailsMsg{Item: item}
			}
		}
	}

	return v, nil
}

// nextPageSize cycles through PageSizes, starting over from the first
// size when the current one is not in the list
func nextPageSize(current int) int {
	for i, size := range PageSizes {
		if size == current {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	return PageSizes[0]
}

func (v *ItemsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.handleWindowSizeMsg(msg)
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *ItemsView) View() string {
	var s strings.Builder

	titleText := v.title
	if titleText == "" {
		titleText = "Items"
	}
	s.WriteString(styles.TitleStyle.MaxWidth(max(v.width, 1)).Render(titleText))
	s.WriteString("\n")

	if v.Searching() {
		s.WriteString(v.input.View())
	} else {
		s.WriteString(v.filterLine())
	}
	s.WriteString("\n\n")

	s.WriteString(v.table.View())
	s.WriteString("\n\n")

	s.WriteString(v.footerLine())
	s.WriteString("\n")

	v.help.ShowAll = v.showHelp
	s.WriteString(styles.HelpStyle.Render(v.help.View(v.keys)))

	return s.String()
}

func (v *ItemsView) filterLine() string {
	parts := []string{"Status: " + string(v.state.StatusFilter)}
	if v.state.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("Search: %q", v.state.SearchTerm))
	}
	if v.state.GlobalSearch != "" {
		parts = append(parts, fmt.Sprintf("All: %q", v.state.GlobalSearch))
	}
	parts = append(parts, "Sort: "+v.state.SortField.Title()+" "+v.state.SortDirection.Arrow())
	return styles.FilterStyle.Render(strings.Join(parts, "  "))
}

func (v *ItemsView) footerLine() string {
	prev := styles.MutedStyle.Render("◀ prev")
	if v.view.HasPrevious {
		prev = "◀ prev"
	}
	next := styles.MutedStyle.Render("next ▶")
	if v.view.HasNext {
		next = "next ▶"
	}
	return styles.StatusBarStyle.Render(v.view.Footer()) + "  " + prev + " " + next + "  " + v.table.StatusLine()
}
