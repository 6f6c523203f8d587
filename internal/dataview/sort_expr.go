// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package dataview

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'itemId:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
)

// sortPartsMax is the maximum number of parts in a sort string (field:order)
const sortPartsMax = 2

// ParseSort parses "field" or "field:order". A bare field sorts ascending.
// Used at the edges (flags, config) where a bad value should be reported
// instead of passed through.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(expr string) (field Field, dir Direction, err error) {
	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return "", "", ErrEmptySortField
	}

	field, ok := ParseField(name)
	if !ok {
		return "", "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, name, validFieldList())
	}

	dir = Asc
	if len(parts) == sortPartsMax {
		switch Direction(strings.ToLower(strings.TrimSpace(parts[1]))) {
		case Asc:
			dir = Asc
		case Desc:
			dir = Desc
		default:
			return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, parts[1])
		}
	}

	return field, dir, nil
}

// FormatSort is the inverse of ParseSort
func FormatSort(field Field, dir Direction) string {
	return string(field) + ":" + string(dir)
}

func validFieldList() string {
	names := make([]string, len(fieldOrder))
	for i, f := range fieldOrder {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
