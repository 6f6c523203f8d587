// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/kegmil/catalog-cli/internal/dataview"
	apperrors "github.com/kegmil/catalog-cli/internal/errors"
)

type Config struct {
	CatalogFile string `mapstructure:"catalog_file"`
	PageSize    int    `mapstructure:"page_size"`
	Sort        string `mapstructure:"sort"`
	Status      string `mapstructure:"status"`
	Debug       bool   `mapstructure:"debug"`
}

var (
	defaultConfig = Config{
		CatalogFile: "",
		PageSize:    dataview.DefaultPageSize,
		Sort:        dataview.FormatSort(dataview.DefaultSortField, dataview.DefaultDirection),
		Status:      string(dataview.StatusAll),
		Debug:       false,
	}
)

// Default returns a copy of the built-in configuration
func Default() *Config {
	cfg := defaultConfig
	return &cfg
}

// DefaultConfigDir is $XDG_CONFIG_HOME/catalog
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultConfigPath is the config file used when --config is not given
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

func newViper(path string) *viper.Viper {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyCatalogFile, defaultConfig.CatalogFile)
	v.SetDefault(KeyPageSize, defaultConfig.PageSize)
	v.SetDefault(KeySort, defaultConfig.Sort)
	v.SetDefault(KeyStatus, defaultConfig.Status)
	v.SetDefault(KeyDebug, defaultConfig.Debug)

	return v
}

// Load reads the config file at path, or the default locations when path
// is empty. A missing file is not an error; defaults and CATALOG_* environment
// variables still apply.
func Load(path string) (*Config, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, &apperrors.ConfigError{Err: fmt.Errorf("error reading config file: %w", err)}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &apperrors.ConfigError{Err: fmt.Errorf("unable to decode config: %w", err)}
	}

	return &cfg, nil
}

// Save writes cfg to path, or to DefaultConfigPath when path is empty
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set(KeyCatalogFile, cfg.CatalogFile)
	v.Set(KeyPageSize, cfg.PageSize)
	v.Set(KeySort, cfg.Sort)
	v.Set(KeyStatus, cfg.Status)
	v.Set(KeyDebug, cfg.Debug)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate rejects values the list screen cannot use
func (c *Config) Validate() error {
	if c.PageSize < 1 {
		return &apperrors.ConfigError{
			Key: KeyPageSize,
			Err: apperrors.NewValidationError(KeyPageSize, c.PageSize, "must be at least 1"),
		}
	}

	if _, _, err := dataview.ParseSort(c.Sort); err != nil {
		return &apperrors.ConfigError{Key: KeySort, Err: err}
	}

	if _, ok := dataview.ParseStatusFilter(c.Status); !ok {
		return &apperrors.ConfigError{
			Key: KeyStatus,
			Err: apperrors.NewValidationError(KeyStatus, c.Status, "must be All, Active or Inactive"),
		}
	}

	return nil
}

// ViewState converts the configured defaults into the initial list state.
// Invalid values fall back to the built-in defaults.
func (c *Config) ViewState() dataview.ViewState {
	state := dataview.DefaultState()

	if c.PageSize > 0 {
		state.PageSize = c.PageSize
	}
	if field, dir, err := dataview.ParseSort(c.Sort); err == nil {
		state.SortField = field
		state.SortDirection = dir
	}
	if status, ok := dataview.ParseStatusFilter(c.Status); ok {
		state.StatusFilter = status
	}

	return state
}

// Get returns the display value of a config key
func (c *Config) Get(key string) (string, error) {
	switch NormalizeKey(key) {
	case KeyCatalogFile:
		return c.CatalogFile, nil
	case KeyPageSize:
		return strconv.Itoa(c.PageSize), nil
	case KeySort:
		return c.Sort, nil
	case KeyStatus:
		return c.Status, nil
	case KeyDebug:
		return strconv.FormatBool(c.Debug), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// Set parses and stores value under key. The updated config is validated
// so a bad value never reaches the file.
func (c *Config) Set(key, value string) error {
	next := *c

	switch NormalizeKey(key) {
	case KeyCatalogFile:
		next.CatalogFile = value
	case KeyPageSize:
		size, err := strconv.Atoi(value)
		if err != nil {
			return apperrors.NewValidationError(KeyPageSize, value, "must be a whole number")
		}
		next.PageSize = size
	case KeySort:
		field, dir, err := dataview.ParseSort(value)
		if err != nil {
			return err
		}
		next.Sort = dataview.FormatSort(field, dir)
	case KeyStatus:
		status, ok := dataview.ParseStatusFilter(value)
		if !ok {
			return apperrors.NewValidationError(KeyStatus, value, "must be All, Active or Inactive")
		}
		next.Status = string(status)
	case KeyDebug:
		debug, err := strconv.ParseBool(value)
		if err != nil {
			return apperrors.NewValidationError(KeyDebug, value, "must be true or false")
		}
		next.Debug = debug
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	if err := next.Validate(); err != nil {
		return err
	}

	*c = next
	return nil
}
