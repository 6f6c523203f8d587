// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package dataview

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kegmil/catalog-cli/internal/models"
)

// View is one computed page plus the metadata a footer needs
type View struct {
	PageItems    []models.Item `json:"items"         yaml:"items"`
	TotalMatched int           `json:"total_matched" yaml:"total_matched"`
	TotalPages   int           `json:"total_pages"   yaml:"total_pages"`
	FromIndex    int           `json:"from_index"    yaml:"from_index"`
	ToIndex      int           `json:"to_index"      yaml:"to_index"`
	Page         int           `json:"page"          yaml:"page"`
	PageSize     int           `json:"page_size"     yaml:"page_size"`
	HasPrevious  bool          `json:"has_previous"  yaml:"has_previous"`
	HasNext      bool          `json:"has_next"      yaml:"has_next"`
}

// ComputeView filters, sorts and paginates records according to state.
// records is never modified. state.PageSize must be positive.
func ComputeView(records []models.Item, state ViewState) View {
	matched := Filter(records, state)
	SortItems(matched, state.SortField, state.SortDirection)
	return Paginate(matched, state.Page, state.PageSize)
}

// Filter returns a new slice holding the records that pass both search
// terms and the status filter, in source order.
func Filter(records []models.Item, state ViewState) []models.Item {
	fold := cases.Fold()
	search := fold.String(strings.TrimSpace(state.SearchTerm))
	global := fold.String(strings.TrimSpace(state.GlobalSearch))

	matched := make([]models.Item, 0, len(records))
	for _, item := range records {
		if !matchesTerm(fold, search, item) || !matchesTerm(fold, global, item) {
			continue
		}
		if !matchesStatus(state.StatusFilter, item) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

// matchesTerm expects term to be folded already
func matchesTerm(fold cases.Caser, term string, item models.Item) bool {
	if term == "" {
		return true
	}
	return strings.Contains(fold.String(item.ItemName), term) ||
		strings.Contains(fold.String(item.ItemID), term)
}

// Unrecognised filters behave like StatusAll
func matchesStatus(filter StatusFilter, item models.Item) bool {
	switch filter {
	case StatusActive, StatusInactive:
		return string(item.Status) == string(filter)
	default:
		return true
	}
}

// SortItems stably sorts items in place by field. Descending order negates
// the ascending comparison so equal keys keep their relative order.
// Unknown fields leave items untouched.
func SortItems(items []models.Item, field Field, dir Direction) {
	get, ok := accessors[field]
	if !ok {
		return
	}

	coll := collate.New(language.Und)
	slices.SortStableFunc(items, func(a, b models.Item) int {
		c := compareStrings(coll, get(a), get(b))
		if dir == Desc {
			return -c
		}
		return c
	})
}

// compareStrings orders by collation and breaks collation ties ordinally,
// so only identical strings compare equal.
func compareStrings(coll *collate.Collator, a, b string) int {
	if c := coll.CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Paginate slices one page out of items. page is clamped to the valid range.
func Paginate(items []models.Item, page, pageSize int) View {
	total := len(items)
	totalPages := TotalPages(total, pageSize)
	page = ClampPage(page, totalPages)

	start := (page - 1) * pageSize
	end := min(page*pageSize, total)
	if start > end {
		start = end
	}

	from := 0
	if total > 0 {
		from = start + 1
	}

	return View{
		PageItems:    slices.Clip(items[start:end]),
		TotalMatched: total,
		TotalPages:   totalPages,
		FromIndex:    from,
		ToIndex:      end,
		Page:         page,
		PageSize:     pageSize,
		HasPrevious:  page > 1,
		HasNext:      page < totalPages,
	}
}

// TotalPages is ceil(count/pageSize), never less than 1
func TotalPages(count, pageSize int) int {
	pages := count / pageSize
	if count%pageSize > 0 {
		pages++
	}
	return max(1, pages)
}

// ClampPage constrains page into [1, max(1, totalPages)]
func ClampPage(page, totalPages int) int {
	totalPages = max(1, totalPages)
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
