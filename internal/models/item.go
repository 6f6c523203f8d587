// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Statuses lists every valid item status in display order
var Statuses = []Status{StatusActive, StatusInactive}

// IsValid reports whether s is one of the known statuses
func (s Status) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus matches a status case-insensitively
func ParseStatus(value string) (Status, bool) {
	for _, known := range Statuses {
		if strings.EqualFold(strings.TrimSpace(value), string(known)) {
			return known, true
		}
	}
	return "", false
}

// Item is one catalog record. Items are values and are never modified after load.
type Item struct {
	ID            string `json:"id"            yaml:"id"`
	ItemName      string `json:"itemName"      yaml:"itemName"`
	ItemID        string `json:"itemId"        yaml:"itemId"`
	ItemCategory  string `json:"itemCategory"  yaml:"itemCategory"`
	Status        Status `json:"status"        yaml:"status"`
	UnitOfMeasure string `json:"unitOfMeasure" yaml:"unitOfMeasure"`
}

// rawItem accepts numeric or string ids from catalog files
type rawItem struct {
	ID            any    `json:"id"            yaml:"id"`
	ItemName      string `json:"itemName"      yaml:"itemName"`
	ItemID        string `json:"itemId"        yaml:"itemId"`
	ItemCategory  string `json:"itemCategory"  yaml:"itemCategory"`
	Status        Status `json:"status"        yaml:"status"`
	UnitOfMeasure string `json:"unitOfMeasure" yaml:"unitOfMeasure"`
}

func (r rawItem) toItem() (Item, error) {
	id, err := formatID(r.ID)
	if err != nil {
		return Item{}, err
	}
	status := r.Status
	if known, ok := ParseStatus(string(r.Status)); ok {
		status = known
	}
	return Item{
		ID:            id,
		ItemName:      r.ItemName,
		ItemID:        r.ItemID,
		ItemCategory:  r.ItemCategory,
		Status:        status,
		UnitOfMeasure: r.UnitOfMeasure,
	}, nil
}

// itemFields are the keys a catalog record may carry
var itemFields = map[string]bool{
	"id":            true,
	"itemName":      true,
	"itemId":        true,
	"itemCategory":  true,
	"status":        true,
	"unitOfMeasure": true,
}

// UnmarshalJSON rejects unknown fields so a misspelled key is not loaded as an empty value
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw rawItem
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	item, err := raw.toItem()
	if err != nil {
		return err
	}
	*i = item
	return nil
}

// UnmarshalYAML rejects unknown fields like a KnownFields decoder would
func (i *Item) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for k := 0; k+1 < len(node.Content); k += 2 {
			key := node.Content[k]
			if !itemFields[key.Value] {
				return fmt.Errorf("line %d: field %s not found in type models.Item", key.Line, key.Value)
			}
		}
	}

	var raw rawItem
	if err := node.Decode(&raw); err != nil {
		return err
	}
	item, err := raw.toItem()
	if err != nil {
		return err
	}
	*i = item
	return nil
}

func formatID(v any) (string, error) {
	switch id := v.(type) {
	case nil:
		return "", nil
	case string:
		return id, nil
	case int:
		return strconv.Itoa(id), nil
	case int64:
		return strconv.FormatInt(id, 10), nil
	case uint64:
		return strconv.FormatUint(id, 10), nil
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported id type %T", v)
	}
}

// Validate checks the fields every catalog record must carry
func (i Item) Validate() error {
	var problems []string

	if strings.TrimSpace(i.ID) == "" {
		problems = append(problems, "id is required")
	}
	if strings.TrimSpace(i.ItemID) == "" {
		problems = append(problems, "itemId is required")
	}
	if !i.Status.IsValid() {
		problems = append(problems, fmt.Sprintf("invalid status '%s', must be 'Active' or 'Inactive'", i.Status))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}
