// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kegmil/catalog-cli/internal/tui/styles"
	"github.com/kegmil/catalog-cli/internal/utils"
)

type Column struct {
	Title    string
	Width    int
	MinWidth int // Minimum width for this column
	Flex     int // Flex weight for distributing extra space (0 = fixed width)
}

type Row []string

type Table struct {
	columns      []Column
	rows         []Row
	selectedRow  int
	showCursor   bool
	height       int
	width        int
	scrollOffset int
	emptyMessage string
}

func NewTable(columns []Column) *Table {
	return &Table{
		columns:      columns,
		rows:         []Row{},
		selectedRow:  0,
		showCursor:   true,
		height:       20,
		width:        80,
		emptyMessage: "No items found",
	}
}

// SetTitles replaces the column titles, e.g. to move a sort indicator
func (t *Table) SetTitles(titles []string) {
	for i := range t.columns {
		if i < len(titles) {
			t.columns[i].Title = titles[i]
		}
	}
}

func (t *Table) SetRows(rows []Row) {
	t.rows = rows
	if t.selectedRow >= len(rows) {
		t.selectedRow = max(0, len(rows)-1)
	}
	t.ensureVisible()
}

func (t *Table) SetEmptyMessage(msg string) {
	t.emptyMessage = msg
}

func (t *Table) SetDimensions(width, height int) {
	t.width = width
	t.height = height
	t.calculateColumnWidths()
	// Recalculate scroll position to ensure selected row is still visible
	if t.scrollOffset > 0 {
		t.ensureVisible()
	}
}

// calculateColumnWidths dynamically calculates column widths based on available space
func (t *Table) calculateColumnWidths() {
	if t.width == 0 {
		return
	}

	// Account for spacing between columns (1 space per column gap)
	totalSpacing := len(t.columns) - 1
	availableWidth := t.width - totalSpacing

	totalMinWidth := 0
	totalFlex := 0
	for _, col := range t.columns {
		if col.MinWidth > 0 {
			totalMinWidth += col.MinWidth
		} else if col.Flex == 0 {
			totalMinWidth += col.Width
		}
		totalFlex += col.Flex
	}

	remainingWidth := max(0, availableWidth-totalMinWidth)

	for i := range t.columns {
		if t.columns[i].Flex > 0 {
			flexWidth := (remainingWidth * t.columns[i].Flex) / totalFlex
			t.columns[i].Width = t.columns[i].MinWidth + flexWidth
		} else if t.columns[i].MinWidth > 0 {
			t.columns[i].Width = t.columns[i].MinWidth
		}
	}
}

func (t *Table) MoveUp() {
	if t.selectedRow > 0 {
		t.selectedRow--
		t.ensureVisible()
	}
}

func (t *Table) MoveDown() {
	if t.selectedRow < len(t.rows)-1 {
		t.selectedRow++
		t.ensureVisible()
	}
}

func (t *Table) GoToTop() {
	t.selectedRow = 0
	t.scrollOffset = 0
}

func (t *Table) GetSelectedIndex() int {
	return t.selectedRow
}

func (t *Table) SetSelectedIndex(index int) {
	if index >= 0 && index < len(t.rows) {
		t.selectedRow = index
		t.ensureVisible()
	}
}

func (t *Table) visibleRows() int {
	return max(1, t.height-3)
}

func (t *Table) ensureVisible() {
	visibleRows := t.visibleRows()
	if t.selectedRow < t.scrollOffset {
		t.scrollOffset = t.selectedRow
	} else if t.selectedRow >= t.scrollOffset+visibleRows {
		t.scrollOffset = t.selectedRow - visibleRows + 1
	}
}

func (t *Table) View() string {
	if t.width == 0 || t.height == 0 {
		return ""
	}

	var s strings.Builder

	s.WriteString(t.renderHeader())
	s.WriteString("\n")
	s.WriteString(t.renderSeparator())
	s.WriteString("\n")

	endRow := min(t.scrollOffset+t.visibleRows(), len(t.rows))

	for i := t.scrollOffset; i < endRow; i++ {
		s.WriteString(t.renderRow(i))
		if i < endRow-1 {
			s.WriteString("\n")
		}
	}

	if len(t.rows) == 0 {
		emptyMsg := styles.MutedStyle.Render(t.emptyMessage)
		s.WriteString(lipgloss.Place(t.width, 3, lipgloss.Center, lipgloss.Center, emptyMsg))
	}

	return s.String()
}

func (t *Table) renderHeader() string {
	var cells []string
	for _, col := range t.columns {
		cell := utils.TruncateWithEllipsis(col.Title, col.Width)
		cell = lipgloss.NewStyle().Width(col.Width).Render(cell)
		cells = append(cells, cell)
	}
	return styles.TableHeaderStyle.Render(strings.Join(cells, " "))
}

func (t *Table) renderSeparator() string {
	totalWidth := 0
	for _, col := range t.columns {
		totalWidth += col.Width + 1
	}
	return strings.Repeat("─", max(0, totalWidth-1))
}

func (t *Table) renderRow(index int) string {
	if index >= len(t.rows) {
		return ""
	}

	row := t.rows[index]
	var cells []string

	for i, col := range t.columns {
		cell := ""
		if i < len(row) {
			cell = utils.TruncateWithEllipsis(row[i], col.Width)
		}
		cell = lipgloss.NewStyle().Width(col.Width).Render(cell)
		cells = append(cells, cell)
	}

	content := strings.Join(cells, " ")

	if t.showCursor && index == t.selectedRow {
		return styles.TableSelectedRowStyle.Render(content)
	}
	return styles.TableRowStyle.Render(content)
}

func (t *Table) StatusLine() string {
	if len(t.rows) == 0 {
		return "No items"
	}
	return fmt.Sprintf("%d/%d", t.selectedRow+1, len(t.rows))
}
