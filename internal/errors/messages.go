// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package errors

import (
	"errors"
	"fmt"
	"os"
)

// FormatUserError turns err into the single line printed after "Error: "
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return notFoundErr.Error()
	}

	var catalogErr *CatalogError
	if errors.As(err, &catalogErr) {
		if errors.Is(catalogErr.Err, os.ErrNotExist) {
			return fmt.Sprintf("Catalog file not found: %s", catalogErr.Path)
		}
		return catalogErr.Error()
	}

	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Error()
	}

	return err.Error()
}

// Hint returns a follow-up suggestion for err, or "" when there is none
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return "Run the command with --help to see accepted values"
	case IsNotFound(err):
		return "Run 'catalog list' to see available item IDs"
	case IsCatalogError(err):
		return "Check the file passed with --file or run 'catalog config set catalog-file PATH'"
	case TypeOf(err) == ErrorTypeConfig:
		return "Run 'catalog config get' to review the current configuration"
	default:
		return ""
	}
}
