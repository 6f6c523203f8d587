// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	Home       key.Binding
	End        key.Binding
	Enter      key.Binding
	Back       key.Binding
	Quit       key.Binding
	Help       key.Binding
	Search     key.Binding
	Global     key.Binding
	Status     key.Binding
	SortColumn key.Binding
	PageSize   key.Binding
	Reset      key.Binding
	Copy       key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "["),
		key.WithHelp("h/←/[", "previous page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "]"),
		key.WithHelp("l/→/]", "next page"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first page"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last page"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "view item"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "b"),
		key.WithHelp("esc/b", "go back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Global: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "global search"),
	),
	Status: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "cycle status filter"),
	),
	SortColumn: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "sort by column"),
	),
	PageSize: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "cycle page size"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset filters"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy item ID"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Status, k.SortColumn, k.PrevPage, k.NextPage, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.PrevPage, k.NextPage, k.Home, k.End},
		{k.Search, k.Global, k.Status, k.SortColumn, k.PageSize, k.Reset},
		{k.Help, k.Quit},
	}
}

// DetailKeyMap is the help shown on the item detail screen
type DetailKeyMap struct {
	KeyMap
}

func (k DetailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Back, k.Help, k.Quit}
}

func (k DetailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Copy, k.Back},
		{k.Help, k.Quit},
	}
}

// SortColumnIndex maps a pressed digit to a zero-based column index
func SortColumnIndex(pressed string) (int, bool) {
	if len(pressed) != 1 || pressed[0] < '1' || pressed[0] > '9' {
		return 0, false
	}
	return int(pressed[0] - '1'), true
}
