// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
		ok    bool
	}{
		{"Active", StatusActive, true},
		{" inactive ", StatusInactive, true},
		{"ACTIVE", StatusActive, true},
		{"Archived", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseStatus(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestItem_UnmarshalJSONAcceptsNumericID(t *testing.T) {
	var items []Item
	err := json.Unmarshal([]byte(`[
		{"id": 7, "itemName": "LED Strip Light - 5m", "itemId": "XX00622", "itemCategory": "Others", "status": "Inactive", "unitOfMeasure": "PC"},
		{"id": "a-1", "itemName": "S landing door key", "itemId": "HMSS018", "status": "Active"}
	]`), &items)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "7", items[0].ID)
	assert.Equal(t, StatusInactive, items[0].Status)
	assert.Equal(t, "a-1", items[1].ID)
}

func TestItem_UnmarshalYAMLAcceptsNumericID(t *testing.T) {
	var item Item
	err := yaml.Unmarshal([]byte("id: 12\nitemId: HMSS025\nstatus: Active\n"), &item)
	require.NoError(t, err)
	assert.Equal(t, "12", item.ID)
	assert.Equal(t, "HMSS025", item.ItemID)
}

func TestItem_UnmarshalRejectsStructuredID(t *testing.T) {
	var item Item
	err := json.Unmarshal([]byte(`{"id": {"nested": true}, "itemId": "X", "status": "Active"}`), &item)
	assert.Error(t, err)
}

func TestItem_UnmarshalRejectsUnknownFields(t *testing.T) {
	var fromJSON Item
	err := json.Unmarshal([]byte(`{"id": 1, "itemId": "XX1", "itemNme": "Typo Name", "status": "Active"}`), &fromJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "itemNme")

	var fromYAML Item
	err = yaml.Unmarshal([]byte("id: 1\nitemId: XX1\nitemNme: Typo Name\nstatus: Active\n"), &fromYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3: field itemNme not found")
}

func TestItem_UnmarshalNormalizesStatus(t *testing.T) {
	var item Item
	require.NoError(t, yaml.Unmarshal([]byte("id: 1\nitemId: XX1\nstatus: inactive\n"), &item))
	assert.Equal(t, StatusInactive, item.Status)

	require.NoError(t, json.Unmarshal([]byte(`{"id": 2, "itemId": "XX2", "status": " ACTIVE "}`), &item))
	assert.Equal(t, StatusActive, item.Status)

	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "itemId": "XX3", "status": "Archived"}`), &item))
	assert.Equal(t, Status("Archived"), item.Status)
	assert.Error(t, item.Validate())
}

func TestItem_Validate(t *testing.T) {
	valid := Item{ID: "1", ItemID: "XX00331", Status: StatusActive}
	assert.NoError(t, valid.Validate())

	err := Item{Status: "Archived"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id is required")
	assert.Contains(t, err.Error(), "itemId is required")
	assert.Contains(t, err.Error(), "invalid status 'Archived'")
}
