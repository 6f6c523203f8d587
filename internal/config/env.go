// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import "strings"

// AppName names the config directory under XDG_CONFIG_HOME
const AppName = "catalog"

// EnvPrefix is prepended to every key for environment overrides,
// e.g. CATALOG_PAGE_SIZE=25
const EnvPrefix = "CATALOG"

// Config keys as stored in config.yaml
const (
	KeyCatalogFile = "catalog_file"
	KeyPageSize    = "page_size"
	KeySort        = "sort"
	KeyStatus      = "status"
	KeyDebug       = "debug"
)

// Keys lists the settable keys in display order
var Keys = []string{KeyCatalogFile, KeyPageSize, KeySort, KeyStatus, KeyDebug}

// NormalizeKey accepts the dashed CLI spelling ("page-size") of a key
func NormalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}
