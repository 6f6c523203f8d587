// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package dataview

// Event is a user action that changes the view state
type Event interface {
	isEvent()
}

// SearchChanged replaces the table search term
type SearchChanged struct{ Term string }

// GlobalSearchChanged replaces the header search term
type GlobalSearchChanged struct{ Term string }

// StatusFilterChanged selects a status filter
type StatusFilterChanged struct{ Filter StatusFilter }

// SortRequested is a column header activation
type SortRequested struct{ Field Field }

// PageSizeChanged selects a new page size. Non-positive sizes are ignored.
type PageSizeChanged struct{ Size int }

// PageRequested jumps to a page, clamped to TotalPages
type PageRequested struct {
	Page       int
	TotalPages int
}

// NextPage advances one page without passing TotalPages
type NextPage struct{ TotalPages int }

// PrevPage goes back one page, stopping at 1
type PrevPage struct{}

// Reset clears search and filters but keeps sort and page size
type Reset struct{}

func (SearchChanged) isEvent()       {}
func (GlobalSearchChanged) isEvent() {}
func (StatusFilterChanged) isEvent() {}
func (SortRequested) isEvent()       {}
func (PageSizeChanged) isEvent()     {}
func (PageRequested) isEvent()       {}
func (NextPage) isEvent()            {}
func (PrevPage) isEvent()            {}
func (Reset) isEvent()               {}

// Reduce returns the state that results from applying ev to state.
// Any change to what is matched sends the view back to page 1.
func Reduce(state ViewState, ev Event) ViewState {
	next := state

	switch ev := ev.(type) {
	case SearchChanged:
		next.SearchTerm = ev.Term
		next.Page = 1
	case GlobalSearchChanged:
		next.GlobalSearch = ev.Term
		next.Page = 1
	case StatusFilterChanged:
		next.StatusFilter = ev.Filter
		next.Page = 1
	case SortRequested:
		next = ToggleSort(state, ev.Field)
	case PageSizeChanged:
		if ev.Size > 0 {
			next.PageSize = ev.Size
			next.Page = 1
		}
	case PageRequested:
		next.Page = ClampPage(ev.Page, ev.TotalPages)
	case NextPage:
		next.Page = ClampPage(state.Page+1, ev.TotalPages)
	case PrevPage:
		next.Page = max(1, state.Page-1)
	case Reset:
		next.SearchTerm = ""
		next.GlobalSearch = ""
		next.StatusFilter = StatusAll
		next.Page = 1
	}

	return next
}

// ToggleSort applies a column header activation: the active column flips
// direction, any other column becomes active in ascending order.
func ToggleSort(state ViewState, field Field) ViewState {
	next := state
	if field == state.SortField {
		next.SortDirection = state.SortDirection.Flip()
		return next
	}
	next.SortField = field
	next.SortDirection = Asc
	return next
}
