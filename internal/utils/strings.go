// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ellipsis = "..."

// TruncateWithEllipsis truncates a string to fit within maxWidth using display width (handles unicode/emoji properly).
// This should be used for terminal display where visual width matters.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(ellipsis) {
		return ellipsis[:max(0, maxWidth)]
	}

	// Use runes to handle unicode properly when truncating
	runes := []rune(s)
	for i := len(runes); i > 0; i-- {
		truncated := string(runes[:i]) + ellipsis
		if lipgloss.Width(truncated) <= maxWidth {
			return truncated
		}
	}
	return ellipsis
}

// SingleLine collapses newlines and tabs so a value fits in one table cell
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\t", "    ")
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}
