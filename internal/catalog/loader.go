// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	apperrors "github.com/kegmil/catalog-cli/internal/errors"
)

// ErrUnsupportedFormat is returned for file extensions Load does not know
var ErrUnsupportedFormat = errors.New("unsupported catalog format (use .json, .yaml, .yml, .md or .markdown)")

// Format identifies how a catalog file is encoded
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// DetectFormat maps a file extension to a Format
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// yamlFrontmatter decodes front matter with yaml.v3 so models.Item can
// accept numeric ids through its yaml.Node unmarshaler
var yamlFrontmatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Open returns the built-in sample when path is empty, otherwise Load(path)
func Open(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Sample(), nil
	}
	return Load(path)
}

// Load reads, decodes and validates the catalog file at path
func Load(path string) (*Catalog, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, &apperrors.CatalogError{Path: path, Op: "load", Err: err}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &apperrors.CatalogError{Path: path, Op: "read", Err: err}
	}
	defer func() { _ = file.Close() }()

	cat, err := Decode(file, format)
	if err != nil {
		return nil, &apperrors.CatalogError{Path: path, Op: "decode", Err: err}
	}

	if cat.Name == "" {
		cat.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return cat, nil
}

// Decode parses a catalog from r without validating it. JSON and YAML
// accept either a catalog object or a bare list of items.
func Decode(r io.Reader, format Format) (*Catalog, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	case FormatMarkdown:
		return decodeMarkdown(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func decodeJSON(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON content: %w", err)
	}

	var cat Catalog
	target := any(&cat)
	if isList(data, '[') {
		target = &cat.Items
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &cat, nil
}

func decodeYAML(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML content: %w", err)
	}

	var cat Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	target := any(&cat)
	if isList(data, '-') {
		target = &cat.Items
	}

	if err := decoder.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &cat, nil
}

func decodeMarkdown(r io.Reader) (*Catalog, error) {
	var cat Catalog
	body, err := frontmatter.MustParse(r, &cat, yamlFrontmatter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	if cat.Description == "" {
		cat.Description = strings.TrimSpace(string(body))
	}
	return &cat, nil
}

// isList reports whether the first significant byte of data is marker,
// skipping whitespace and YAML comment lines
func isList(data []byte, marker byte) bool {
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' || bytes.Equal(line, []byte("---")) {
			continue
		}
		return line[0] == marker
	}
	return false
}

