// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package dataview

import (
	"strings"

	"github.com/kegmil/catalog-cli/internal/models"
)

// Field names a sortable item column
type Field string

const (
	FieldItemName      Field = "itemName"
	FieldItemID        Field = "itemId"
	FieldItemCategory  Field = "itemCategory"
	FieldStatus        Field = "status"
	FieldUnitOfMeasure Field = "unitOfMeasure"
)

// fieldOrder is the column order of the items table
var fieldOrder = []Field{
	FieldItemName,
	FieldItemID,
	FieldItemCategory,
	FieldStatus,
	FieldUnitOfMeasure,
}

var accessors = map[Field]func(models.Item) string{
	FieldItemName:      func(i models.Item) string { return i.ItemName },
	FieldItemID:        func(i models.Item) string { return i.ItemID },
	FieldItemCategory:  func(i models.Item) string { return i.ItemCategory },
	FieldStatus:        func(i models.Item) string { return string(i.Status) },
	FieldUnitOfMeasure: func(i models.Item) string { return i.UnitOfMeasure },
}

var fieldTitles = map[Field]string{
	FieldItemName:      "ITEM NAME",
	FieldItemID:        "ITEM ID",
	FieldItemCategory:  "ITEM CATEGORY",
	FieldStatus:        "STATUS",
	FieldUnitOfMeasure: "UNIT OF MEASURE",
}

// Fields returns the sortable fields in table column order
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// IsValid reports whether f has an accessor
func (f Field) IsValid() bool {
	_, ok := accessors[f]
	return ok
}

// Title is the column header for f, or the raw name for unknown fields
func (f Field) Title() string {
	if title, ok := fieldTitles[f]; ok {
		return title
	}
	return string(f)
}

// Value extracts f from an item. Unknown fields yield "".
func (f Field) Value(item models.Item) string {
	if get, ok := accessors[f]; ok {
		return get(item)
	}
	return ""
}

// ParseField matches a field name case-insensitively. Dashed and
// underscored spellings ("item-id", "unit_of_measure") are accepted too.
func ParseField(name string) (Field, bool) {
	normalized := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(name))
	for _, f := range fieldOrder {
		if strings.EqualFold(normalized, string(f)) {
			return f, true
		}
	}
	return "", false
}
