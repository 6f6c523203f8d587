// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/kegmil/catalog-cli/internal/models"
	"github.com/kegmil/catalog-cli/internal/tui/components"
	"github.com/kegmil/catalog-cli/internal/tui/messages"
	"github.com/kegmil/catalog-cli/internal/tui/styles"
	"github.com/kegmil/catalog-cli/internal/utils"
)

// ClipboardWriter copies text to the system clipboard
type ClipboardWriter func(text string) error

// clipboardResultMsg reports the outcome of a copy
type clipboardResultMsg struct {
	text string
	err  error
}

type ItemDetailView struct {
	item      models.Item
	keys      components.DetailKeyMap
	help      help.Model
	viewport  viewport.Model
	clipboard ClipboardWriter
	statusMsg string
	showHelp  bool
	width     int
	height    int
	logger    zerolog.Logger
}

func NewItemDetailView(item models.Item, logger zerolog.Logger) *ItemDetailView {
	v := &ItemDetailView{
		item:      item,
		keys:      components.DetailKeyMap{KeyMap: components.DefaultKeyMap},
		help:      help.New(),
		viewport:  viewport.New(80, 20),
		clipboard: utils.WriteToClipboard,
		logger:    logger.With().Str("component", "detail").Logger(),
	}
	v.viewport.SetContent(v.content())
	return v
}

// SetClipboardWriter replaces the system clipboard, e.g. in tests
func (v *ItemDetailView) SetClipboardWriter(w ClipboardWriter) {
	v.clipboard = w
}

func (v *ItemDetailView) Init() tea.Cmd {
	return nil
}

func (v *ItemDetailView) content() string {
	var s strings.Builder

	fields := []struct {
		label string
		value string
	}{
		{"Item ID", v.item.ItemID},
		{"Name", v.item.ItemName},
		{"Category", v.item.ItemCategory},
		{"Status", styles.GetStatusStyle(v.item.Status).Render(string(v.item.Status))},
		{"Unit of Measure", v.item.UnitOfMeasure},
		{"Record ID", v.item.ID},
	}
	for _, f := range fields {
		s.WriteString(styles.LabelStyle.Render(f.label))
		s.WriteString(f.value)
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(styles.LabelStyle.Render("JSON"))
	s.WriteString("\n")
	s.WriteString(highlightJSON(v.item))

	return s.String()
}

// highlightJSON renders item as indented JSON with terminal colors,
// falling back to plain text if highlighting fails
func highlightJSON(item models.Item) string {
	raw, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", item)
	}
	code := string(raw)

	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := chromastyles.Get("monokai")
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}

func (v *ItemDetailView) copyItemID() tea.Cmd {
	text := v.item.ItemID
	write := v.clipboard
	return func() tea.Msg {
		return clipboardResultMsg{text: text, err: write(text)}
	}
}

func (v *ItemDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.viewport.Width = msg.Width
		v.viewport.Height = max(3, msg.Height-4)
		v.help.Width = msg.Width
		return v, nil

	case clipboardResultMsg:
		if msg.err != nil {
			v.logger.Warn().Err(msg.err).Msg("clipboard write failed")
			v.statusMsg = styles.ErrorStyle.Render("Copy failed: " + msg.err.Error())
		} else {
			v.statusMsg = styles.SuccessStyle.Render("Copied " + msg.text)
		}
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg { return messages.NavigateBackMsg{} }
		case key.Matches(msg, v.keys.Copy):
			return v, v.copyItemID()
		case key.Matches(msg, v.keys.Help):
			v.showHelp = !v.showHelp
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *ItemDetailView) View() string {
	var s strings.Builder

	s.WriteString(styles.TitleStyle.Render("Item " + v.item.ItemID))
	s.WriteString("\n\n")
	s.WriteString(v.viewport.View())
	s.WriteString("\n")

	if v.statusMsg != "" {
		s.WriteString(v.statusMsg)
		s.WriteString("  ")
	}

	v.help.ShowAll = v.showHelp
	s.WriteString(styles.HelpStyle.Render(v.help.View(v.keys)))

	return s.String()
}
