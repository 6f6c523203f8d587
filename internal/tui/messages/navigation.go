// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package messages

import "github.com/kegmil/catalog-cli/internal/models"

// NavigationMsg is the base interface for all navigation messages
type NavigationMsg interface {
	IsNavigation() bool
}

// NavigateToDetailsMsg requests navigation to the item detail view
type NavigateToDetailsMsg struct {
	Item models.Item
}

// NavigateBackMsg requests navigation to the previous view in the stack
type NavigateBackMsg struct{}

// Implement NavigationMsg interface for all messages
func (NavigateToDetailsMsg) IsNavigation() bool { return true }
func (NavigateBackMsg) IsNavigation() bool      { return true }
