// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog loads the item records the list and detail screens work on.
// A loaded catalog is read-only; every view is computed from Items.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/kegmil/catalog-cli/internal/errors"
	"github.com/kegmil/catalog-cli/internal/models"
)

// Catalog is a named set of items
type Catalog struct {
	Name        string        `json:"name"                  yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Items       []models.Item `json:"items"                 yaml:"items"`
}

// SampleName is the name of the built-in catalog
const SampleName = "Items"

var sampleItems = []models.Item{
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

// Sample returns the built-in catalog used when no file is configured
func Sample() *Catalog {
	return &Catalog{
		Name:        SampleName,
		Description: "Built-in sample items",
		Items:       slices.Clone(sampleItems),
	}
}

// Validate checks every item and rejects duplicate ids
func (c *Catalog) Validate() error {
	seen := make(map[string]int, len(c.Items))

	for i, item := range c.Items {
		field := fmt.Sprintf("items[%d]", i)

		if err := item.Validate(); err != nil {
			return apperrors.NewValidationError(field, item.ID, "%v", err)
		}

		if first, dup := seen[item.ID]; dup {
			return apperrors.NewValidationError(field, item.ID,
				"duplicate id '%s' (first used by items[%d])", item.ID, first)
		}
		seen[item.ID] = i
	}

	return nil
}

// FindByItemID returns the item whose itemId matches, ignoring case
func FindByItemID(items []models.Item, itemID string) (models.Item, error) {
	want := strings.TrimSpace(itemID)
	for _, item := range items {
		if strings.EqualFold(item.ItemID, want) {
			return item, nil
		}
	}
	return models.Item{}, &apperrors.NotFoundError{Kind: "item", Key: itemID}
}
