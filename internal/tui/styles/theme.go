// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kegmil/catalog-cli/internal/models"
)

var (
	BaseStyle = lipgloss.NewStyle()

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("63")).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Background(lipgloss.Color("235"))

	HelpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	MutedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82")).
		Bold(true)

	ActiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	InactiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	FilterStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("226"))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("63")).
		Width(18)

	TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	TableRowStyle = lipgloss.NewStyle().
		Padding(0, 1)

	TableSelectedRowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("63")).
		Padding(0, 1)
)

func GetStatusStyle(status models.Status) lipgloss.Style {
	switch status {
	case models.StatusActive:
		return ActiveStyle
	case models.StatusInactive:
		return InactiveStyle
	default:
		return BaseStyle
	}
}

func GetStatusIcon(status models.Status) string {
	switch status {
	case models.StatusActive:
		return "●"
	case models.StatusInactive:
		return "○"
	default:
		return "•"
	}
}
