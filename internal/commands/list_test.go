// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kegmil/catalog-cli/internal/dataview"
	"github.com/kegmil/catalog-cli/internal/errors"
	"github.com/kegmil/catalog-cli/internal/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

type listJSON struct {
	Catalog      string        `json:"catalog"`
	Sort         string        `json:"sort"`
	StatusFilter string        `json:"status_filter"`
	Items        []models.Item `json:"items"`
	TotalMatched int           `json:"total_matched"`
	TotalPages   int           `json:"total_pages"`
	Page         int           `json:"page"`
	HasNext      bool          `json:"has_next"`
}

func itemIDs(items []models.Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ItemID
	}
	return ids
}

func TestList_DefaultTable(t *testing.T) {
	out, err := executeCommand(t, tempConfigPath(t), "list")
	require.NoError(t, err)

	assert.Contains(t, out, "ITEM NAME ↑")
	assert.Contains(t, out, "ITEM ID")
	assert.Contains(t, out, "1-10 of 10 items  page 1/1  10 / page")
	assert.Less(t, strings.Index(out, "Emergency Exit Sign"), strings.Index(out, "Fire Extinguisher - 5kg"))
	assert.Less(t, strings.Index(out, "Fire Extinguisher - 5kg"), strings.Index(out, "VVVF Inverter Unit"))
}

func TestList_SearchStatusSortJSON(t *testing.T) {
	out, err := executeCommand(t, tempConfigPath(t),
		"list", "-s", "xx", "--status", "Active", "--sort", "itemId:asc", "-o", "json")
	require.NoError(t, err)

	var result listJSON
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "Items", result.Catalog)
	assert.Equal(t, "itemId:asc", result.Sort)
	assert.Equal(t, "Active", result.StatusFilter)
	assert.Equal(t, 5, result.TotalMatched)
	assert.Equal(t, []string{"XX00331", "XX00390", "XX00489", "XX00501", "XX00788"}, itemIDs(result.Items))
}

func TestList_DescendingSortAndPaging(t *testing.T) {
	out, err := executeCommand(t, tempConfigPath(t),
		"list", "--sort", "item-id:desc", "--page-size", "3", "--page", "2", "-o", "json")
	require.NoError(t, err)

	var result listJSON
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, 4, result.TotalPages)
	assert.Equal(t, 2, result.Page)
	assert.True(t, result.HasNext)
	assert.Equal(t, []string{"XX00489", "XX00390", "XX00331"}, itemIDs(result.Items))
}

func TestList_PageIsClamped(t *testing.T) {
	out, err := executeCommand(t, tempConfigPath(t), "list", "--page", "99", "--page-size", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "10-10 of 10 items  page 4/4  3 / page")
}

func TestList_NoMatches(t *testing.T) {
	out, err := executeCommand(t, tempConfigPath(t), "list", "-s", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No items found")
	assert.Contains(t, out, "0-0 of 0 items  page 1/1  10 / page")
}

func TestList_GlobalAndTableSearchCombine(t *testing.T) {
	out, err := executeCommand(t, tempConfigPath(t), "list", "-s", "door", "--global", "triangle", "-o", "json")
	require.NoError(t, err)

	var result listJSON
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"HMSS019"}, itemIDs(result.Items))
}

func TestList_YAMLOutput(t *testing.T) {
	out, err := executeCommand(t, tempConfigPath(t), "list", "--status", "inactive", "-o", "yaml")
	require.NoError(t, err)

	var result struct {
		Catalog string        `yaml:"catalog"`
		Items   []models.Item `yaml:"items"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Items", result.Catalog)
	assert.Equal(t, []string{"XX00622"}, itemIDs(result.Items))
}

func TestList_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown status", []string{"--status", "Archived"}},
		{"unknown sort field", []string{"--sort", "price"}},
		{"unknown sort direction", []string{"--sort", "itemId:sideways"}},
		{"zero page size", []string{"--page-size", "0"}},
		{"zero page", []string{"--page", "0"}},
		{"unknown output", []string{"-o", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tempConfigPath(t), append([]string{"list"}, tt.args...)...)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestList_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "van.yaml")
	writeFile(t, path, `name: Van stock
items:
  - id: 1
    itemName: Emergency Exit Sign
    itemId: HMSS025
    itemCategory: Schedule of rates
    status: Active
    unitOfMeasure: EA
  - id: 2
    itemName: Fuse 10A
    itemId: FU010
    itemCategory: Others
    status: Inactive
    unitOfMeasure: PC
`)

	out, err := executeCommand(t, tempConfigPath(t), "list", "--file", path, "-o", "json")
	require.NoError(t, err)

	var result listJSON
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Van stock", result.Catalog)
	assert.Equal(t, 2, result.TotalMatched)
}

func TestList_MissingFile(t *testing.T) {
	_, err := executeCommand(t, tempConfigPath(t), "list", "--file", filepath.Join(t.TempDir(), "none.json"))
	require.Error(t, err)
	assert.True(t, errors.IsCatalogError(err))
	assert.Contains(t, errors.FormatUserError(err), "Catalog file not found")
}

func TestList_UsesConfiguredDefaults(t *testing.T) {
	path := tempConfigPath(t)
	writeFile(t, path, "page_size: 4\nsort: itemId:desc\nstatus: Active\n")

	out, err := executeCommand(t, path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ITEM ID ↓")
	assert.Contains(t, out, "1-4 of 9 items  page 1/3  4 / page")
	assert.NotContains(t, out, "XX00622")
}

func TestWriteTable_TruncatesNames(t *testing.T) {
	state := dataview.DefaultState()
	view := dataview.ComputeView([]models.Item{
		{ID: "1", ItemName: "Smoke Detector - Ceiling Mount", ItemID: "HMSS033", ItemCategory: "Schedule of rates", Status: models.StatusActive, UnitOfMeasure: "EA"},
	}, state)

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, state, view, 10))

	assert.Contains(t, buf.String(), "Smoke D...")
	assert.NotContains(t, buf.String(), "Ceiling Mount")
}

func TestParseOutputFormat(t *testing.T) {
	format, err := parseOutputFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, outputJSON, format)

	_, err = parseOutputFormat("csv")
	assert.True(t, errors.IsValidation(err))
}
