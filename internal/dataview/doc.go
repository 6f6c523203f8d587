// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dataview computes the visible page of an item catalog.
//
// The package is a pure pipeline over an immutable slice of models.Item:
//   - ViewState: search terms, status filter, sort column and direction, page
//   - ComputeView: filter by search, filter by status, stable sort, paginate
//   - ToggleSort: the column-header sort policy (same column flips, new column starts ascending)
//   - Reduce: applies an Event to a ViewState and returns the replacement state
//
// Nothing here returns an error. Unknown sort fields and status filters pass
// records through unchanged and out-of-range pages are clamped. The one
// precondition is a positive PageSize, which callers validate.
package dataview
