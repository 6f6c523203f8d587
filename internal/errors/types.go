// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package errors

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeCatalog
	ErrorTypeNotFound
	ErrorTypeConfig
)

type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// CatalogError reports a catalog file that could not be read or decoded
type CatalogError struct {
	Path string
	Op   string
	Err  error
}

func (e *CatalogError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("catalog %s failed for %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("catalog %s failed: %v", e.Op, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Key)
}

type ConfigError struct {
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("configuration error for '%s': %v", e.Key, e.Err)
	}
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a ValidationError for a flag or config value
func NewValidationError(field string, value interface{}, format string, args ...interface{}) error {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
}

// TypeOf classifies err for hints and exit messages
func TypeOf(err error) ErrorType {
	var validationErr *ValidationError
	var catalogErr *CatalogError
	var notFoundErr *NotFoundError
	var configErr *ConfigError

	switch {
	case err == nil:
		return ErrorTypeUnknown
	case errors.As(err, &validationErr):
		return ErrorTypeValidation
	case errors.As(err, &notFoundErr):
		return ErrorTypeNotFound
	case errors.As(err, &catalogErr):
		return ErrorTypeCatalog
	case errors.As(err, &configErr):
		return ErrorTypeConfig
	default:
		return ErrorTypeUnknown
	}
}

func IsValidation(err error) bool {
	return TypeOf(err) == ErrorTypeValidation
}

func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

func IsCatalogError(err error) bool {
	var catalogErr *CatalogError
	return errors.As(err, &catalogErr)
}
