// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/kegmil/catalog-cli/internal/errors"
)

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

var outputFormats = []outputFormat{outputTable, outputJSON, outputYAML}

func outputFormatNames() []string {
	names := make([]string, len(outputFormats))
	for i, f := range outputFormats {
		names[i] = string(f)
	}
	return names
}

func parseOutputFormat(value string) (outputFormat, error) {
	for _, f := range outputFormats {
		if strings.EqualFold(strings.TrimSpace(value), string(f)) {
			return f, nil
		}
	}
	return "", errors.NewValidationError("output", value, "must be one of %s", strings.Join(outputFormatNames(), ", "))
}

func writeStructured(out io.Writer, format outputFormat, v any) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
}

const (
	unlimitedWidth = 1 << 16
	minNameWidth   = 20
	// room taken by the other four columns and padding
	otherColumnsWidth = 60
)

// nameWidth limits the item name column to the terminal width. Output that
// is not a terminal is never truncated.
func nameWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return unlimitedWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return unlimitedWidth
	}
	return max(minNameWidth, width-otherColumnsWidth)
}
