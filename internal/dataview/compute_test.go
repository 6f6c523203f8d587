// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package dataview

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegmil/catalog-cli/internal/models"
)

func threeItems() []models.Item {
	return []models.Item{
		{ID: "1", ItemName: "S landing door key", ItemID: "HMSS018", ItemCategory: "Schedule of rates", Status: models.StatusActive, UnitOfMeasure: "PC"},
		{ID: "2", ItemName: "PSU-PG-P-24-33V/13A", ItemID: "XX00331", ItemCategory: "Others", Status: models.StatusActive, UnitOfMeasure: "EA"},
		{ID: "3", ItemName: "LED Strip Light - 5m", ItemID: "XX00622", ItemCategory: "Others", Status: models.StatusInactive, UnitOfMeasure: "PC"},
	}
}

func catalogItems() []models.Item {
	return []models.Item{
		{ID: "1", ItemName: "PSU-PG-P-24-33V/13A", ItemID: "XX00331", ItemCategory: "Others", Status: models.StatusActive, UnitOfMeasure: "EA"},
		{ID: "2", ItemName: "S landing door key", ItemID: "HMSS018", ItemCategory: "Schedule of rates", Status: models.StatusActive, UnitOfMeasure: "PC"},
		{ID: "3", ItemName: "TAPE-2 MASKING TAPE TIP-210", ItemID: "XX00390", ItemCategory: "Others", Status: models.StatusActive, UnitOfMeasure: "EA"},
		{ID: "4", ItemName: "Triangle landing door key", ItemID: "HMSS019", ItemCategory: "Schedule of rates", Status: models.StatusActive, UnitOfMeasure: "PC"},
		{ID: "5", ItemName: "VACUUM BAG - Electrolux", ItemID: "XX00489", ItemCategory: "Others", Status: models.StatusActive, UnitOfMeasure: "EA"},
		{ID: "6", ItemName: "VVVF Inverter Unit", ItemID: "XX00501", ItemCategory: "Schedule of rates", Status: models.StatusActive, UnitOfMeasure: "EA"},
		{ID: "7", ItemName: "LED Strip Light - 5m", ItemID: "XX00622", ItemCategory: "Others", Status: models.StatusInactive, UnitOfMeasure: "PC"},
		{ID: "8", ItemName: "Emergency Exit Sign", ItemID: "HMSS025", ItemCategory: "Schedule of rates", Status: models.StatusActive, UnitOfMeasure: "EA"},
		{ID: "9", ItemName: "Fire Extinguisher - 5kg", ItemID: "XX00788", ItemCategory: "Others", Status: models.StatusActive, UnitOfMeasure: "PC"},
		{ID: "10", ItemName: "Smoke Detector - Ceiling Mount", ItemID: "HMSS033", ItemCategory: "Schedule of rates", Status: models.StatusActive, UnitOfMeasure: "EA"},
	}
}

func itemIDs(items []models.Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ItemID
	}
	return ids
}

func recordIDs(items []models.Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func stateWith(mutate func(*ViewState)) ViewState {
	s := DefaultState()
	mutate(&s)
	return s
}

func TestComputeView_ActiveSortedByItemID(t *testing.T) {
	state := stateWith(func(s *ViewState) {
		s.StatusFilter = StatusActive
		s.SortField = FieldItemID
		s.SortDirection = Asc
		s.PageSize = 2
	})

	view := ComputeView(threeItems(), state)

	assert.Equal(t, 2, view.TotalMatched)
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, []string{"HMSS018", "XX00331"}, itemIDs(view.PageItems))
	assert.Equal(t, 1, view.FromIndex)
	assert.Equal(t, 2, view.ToIndex)
	assert.False(t, view.HasPrevious)
	assert.False(t, view.HasNext)
}

func TestComputeView_SearchIsCaseInsensitiveOnItemID(t *testing.T) {
	for _, filter := range []StatusFilter{StatusAll, "bogus"} {
		t.Run(string(filter), func(t *testing.T) {
			state := stateWith(func(s *ViewState) {
				s.SearchTerm = "xx"
				s.StatusFilter = filter
				s.SortField = FieldItemID
			})

			view := ComputeView(threeItems(), state)
			assert.Equal(t, []string{"XX00331", "XX00622"}, itemIDs(view.PageItems))
		})
	}
}

func TestComputeView_SearchMatchesItemName(t *testing.T) {
	state := stateWith(func(s *ViewState) { s.SearchTerm = "  LANDING door " })

	view := ComputeView(catalogItems(), state)
	assert.Equal(t, []string{"HMSS018", "HMSS019"}, itemIDs(view.PageItems))
}

func TestComputeView_SearchIgnoresOtherFields(t *testing.T) {
	state := stateWith(func(s *ViewState) { s.SearchTerm = "Schedule" })

	view := ComputeView(catalogItems(), state)
	assert.Zero(t, view.TotalMatched)
	assert.Empty(t, view.PageItems)
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, 0, view.FromIndex)
	assert.Equal(t, 0, view.ToIndex)
}

func TestComputeView_GlobalAndTableSearchAreANDed(t *testing.T) {
	state := stateWith(func(s *ViewState) {
		s.GlobalSearch = "hmss"
		s.SearchTerm = "key"
	})

	view := ComputeView(catalogItems(), state)
	assert.Equal(t, []string{"HMSS018", "HMSS019"}, itemIDs(view.PageItems))

	state.SearchTerm = "led"
	view = ComputeView(catalogItems(), state)
	assert.Empty(t, view.PageItems)
}

func TestComputeView_CaseFoldingIsUnicodeAware(t *testing.T) {
	items := []models.Item{
		{ID: "1", ItemName: "Straße Schild", ItemID: "DE001", Status: models.StatusActive},
		{ID: "2", ItemName: "ΣΟΦΙΑ", ItemID: "GR001", Status: models.StatusActive},
	}

	view := ComputeView(items, stateWith(func(s *ViewState) { s.SearchTerm = "STRASSE" }))
	assert.Equal(t, []string{"DE001"}, itemIDs(view.PageItems))

	view = ComputeView(items, stateWith(func(s *ViewState) { s.SearchTerm = "σοφια" }))
	assert.Equal(t, []string{"GR001"}, itemIDs(view.PageItems))
}

func TestComputeView_StatusFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter StatusFilter
		want   int
	}{
		{name: "all", filter: StatusAll, want: 10},
		{name: "active", filter: StatusActive, want: 9},
		{name: "inactive", filter: StatusInactive, want: 1},
		{name: "unknown passes through", filter: "Archived", want: 10},
		{name: "empty passes through", filter: "", want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ComputeView(catalogItems(), stateWith(func(s *ViewState) { s.StatusFilter = tt.filter }))
			assert.Equal(t, tt.want, view.TotalMatched)
		})
	}
}

func TestComputeView_DoesNotMutateSource(t *testing.T) {
	source := catalogItems()
	snapshot := slices.Clone(source)

	state := stateWith(func(s *ViewState) {
		s.SortField = FieldItemID
		s.SortDirection = Desc
		s.PageSize = 3
	})
	_ = ComputeView(source, state)

	if diff := cmp.Diff(snapshot, source); diff != "" {
		t.Errorf("source changed (-want +got):\n%s", diff)
	}
}

func TestComputeView_Idempotent(t *testing.T) {
	state := stateWith(func(s *ViewState) {
		s.SearchTerm = "x"
		s.SortField = FieldUnitOfMeasure
		s.SortDirection = Desc
		s.Page = 2
		s.PageSize = 3
	})

	first := ComputeView(catalogItems(), state)
	second := ComputeView(catalogItems(), state)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ComputeView not idempotent (-first +second):\n%s", diff)
	}
}

func TestComputeView_FilterMonotonicity(t *testing.T) {
	terms := []string{"", "x", "xx", "xx0", "xx00", "xx006", "xx0062", "xx00622", "xx00622z"}

	previous := len(catalogItems()) + 1
	for _, term := range terms {
		view := ComputeView(catalogItems(), stateWith(func(s *ViewState) { s.SearchTerm = term }))
		assert.LessOrEqual(t, view.TotalMatched, previous, "term %q", term)
		assert.LessOrEqual(t, view.TotalMatched, len(catalogItems()))
		previous = view.TotalMatched
	}
}

func TestComputeView_SortRoundTripUniqueKeys(t *testing.T) {
	asc := ComputeView(catalogItems(), stateWith(func(s *ViewState) { s.SortField = FieldItemID }))
	desc := ComputeView(catalogItems(), stateWith(func(s *ViewState) {
		s.SortField = FieldItemID
		s.SortDirection = Desc
	}))

	reversed := slices.Clone(asc.PageItems)
	slices.Reverse(reversed)
	assert.Equal(t, itemIDs(reversed), itemIDs(desc.PageItems))
	assert.Equal(t,
		[]string{"HMSS018", "HMSS019", "HMSS025", "HMSS033", "XX00331", "XX00390", "XX00489", "XX00501", "XX00622", "XX00788"},
		itemIDs(asc.PageItems))
}

func TestComputeView_SortIsStableForDuplicateKeys(t *testing.T) {
	asc := ComputeView(catalogItems(), stateWith(func(s *ViewState) { s.SortField = FieldItemCategory }))
	assert.Equal(t, []string{"1", "3", "5", "7", "9", "2", "4", "6", "8", "10"}, recordIDs(asc.PageItems))

	desc := ComputeView(catalogItems(), stateWith(func(s *ViewState) {
		s.SortField = FieldItemCategory
		s.SortDirection = Desc
	}))
	// groups flip, order inside each group does not
	assert.Equal(t, []string{"2", "4", "6", "8", "10", "1", "3", "5", "7", "9"}, recordIDs(desc.PageItems))
}

func TestComputeView_SortIsLocaleAware(t *testing.T) {
	items := []models.Item{
		{ID: "1", ItemName: "cherry", ItemID: "C"},
		{ID: "2", ItemName: "Banana", ItemID: "B"},
		{ID: "3", ItemName: "apple", ItemID: "A"},
	}

	view := ComputeView(items, stateWith(func(s *ViewState) { s.SortField = FieldItemName }))
	assert.Equal(t, []string{"apple", "Banana", "cherry"}, []string{
		view.PageItems[0].ItemName, view.PageItems[1].ItemName, view.PageItems[2].ItemName,
	})
}

func TestComputeView_UnknownSortFieldKeepsSourceOrder(t *testing.T) {
	for _, dir := range []Direction{Asc, Desc} {
		view := ComputeView(catalogItems(), stateWith(func(s *ViewState) {
			s.SortField = "price"
			s.SortDirection = dir
		}))
		assert.Equal(t, recordIDs(catalogItems()), recordIDs(view.PageItems))
	}
}

func TestComputeView_PaginationCoverage(t *testing.T) {
	for _, size := range []int{1, 3, 4, 10, 25} {
		state := stateWith(func(s *ViewState) {
			s.SortField = FieldItemName
			s.PageSize = size
		})
		full := ComputeView(catalogItems(), stateWith(func(s *ViewState) {
			s.SortField = FieldItemName
			s.PageSize = 100
		}))

		var concatenated []models.Item
		first := ComputeView(catalogItems(), state)
		for page := 1; page <= first.TotalPages; page++ {
			state.Page = page
			concatenated = append(concatenated, ComputeView(catalogItems(), state).PageItems...)
		}

		assert.Equal(t, recordIDs(full.PageItems), recordIDs(concatenated), "page size %d", size)
	}
}

func TestComputeView_ClampSafety(t *testing.T) {
	state := stateWith(func(s *ViewState) { s.PageSize = 3 })

	tests := []struct {
		name     string
		page     int
		wantPage int
		wantFrom int
		wantTo   int
	}{
		{name: "page zero", page: 0, wantPage: 1, wantFrom: 1, wantTo: 3},
		{name: "negative page", page: -4, wantPage: 1, wantFrom: 1, wantTo: 3},
		{name: "last page", page: 4, wantPage: 4, wantFrom: 10, wantTo: 10},
		{name: "beyond last page", page: 4 + 5, wantPage: 4, wantFrom: 10, wantTo: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state.Page = tt.page
			var view View
			require.NotPanics(t, func() { view = ComputeView(catalogItems(), state) })
			assert.Equal(t, 4, view.TotalPages)
			assert.Equal(t, tt.wantPage, view.Page)
			assert.Equal(t, tt.wantFrom, view.FromIndex)
			assert.Equal(t, tt.wantTo, view.ToIndex)
			assert.Len(t, view.PageItems, tt.wantTo-tt.wantFrom+1)
		})
	}
}

func TestComputeView_EmptySource(t *testing.T) {
	view := ComputeView(nil, stateWith(func(s *ViewState) { s.Page = 3 }))

	assert.NotNil(t, view.PageItems)
	assert.Empty(t, view.PageItems)
	assert.Equal(t, View{
		PageItems:  view.PageItems,
		TotalPages: 1,
		Page:       1,
		PageSize:   DefaultPageSize,
	}, view)
}

func TestTotalPagesAndClampPage(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 10, TotalPages(10, 1))

	assert.Equal(t, 1, ClampPage(0, 0))
	assert.Equal(t, 1, ClampPage(5, 0))
	assert.Equal(t, 3, ClampPage(3, 5))
	assert.Equal(t, 5, ClampPage(50, 5))
}
