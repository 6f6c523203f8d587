// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package dataview

import (
	"fmt"
	"strings"

	"github.com/kegmil/catalog-cli/internal/models"
)

// Direction is the sort order
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Flip returns the opposite direction. Anything that is not Desc flips to Desc.
func (d Direction) Flip() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// Arrow is the header indicator for an active sort column
func (d Direction) Arrow() string {
	if d == Desc {
		return "↓"
	}
	return "↑"
}

// StatusFilter restricts the view to one status or shows all of them
type StatusFilter string

const (
	StatusAll      StatusFilter = "All"
	StatusActive   StatusFilter = StatusFilter(models.StatusActive)
	StatusInactive StatusFilter = StatusFilter(models.StatusInactive)
)

// StatusFilters lists the filter choices in the order the UI cycles them
var StatusFilters = []StatusFilter{StatusAll, StatusActive, StatusInactive}

// ParseStatusFilter matches a filter name case-insensitively
func ParseStatusFilter(value string) (StatusFilter, bool) {
	for _, f := range StatusFilters {
		if strings.EqualFold(strings.TrimSpace(value), string(f)) {
			return f, true
		}
	}
	return "", false
}

// Next returns the filter that follows f in StatusFilters, wrapping around
func (f StatusFilter) Next() StatusFilter {
	for i, candidate := range StatusFilters {
		if candidate == f {
			return StatusFilters[(i+1)%len(StatusFilters)]
		}
	}
	return StatusAll
}

// Default view settings used when no configuration overrides them
const (
	DefaultPageSize  = 10
	DefaultSortField = FieldItemName
	DefaultDirection = Asc
)

// ViewState is the complete search, filter, sort and page configuration.
// It is a value: transitions build a new state instead of editing one in place.
type ViewState struct {
	SearchTerm    string
	GlobalSearch  string
	StatusFilter  StatusFilter
	SortField     Field
	SortDirection Direction
	Page          int
	PageSize      int
}

// DefaultState returns the initial state of the items screen
func DefaultState() ViewState {
	return ViewState{
		StatusFilter:  StatusAll,
		SortField:     DefaultSortField,
		SortDirection: DefaultDirection,
		Page:          1,
		PageSize:      DefaultPageSize,
	}
}

// Key identifies a state for memoization
func (s ViewState) Key() string {
	return fmt.Sprintf("%q|%q|%s|%s|%s|%d|%d",
		s.SearchTerm, s.GlobalSearch, s.StatusFilter, s.SortField, s.SortDirection, s.Page, s.PageSize)
}
