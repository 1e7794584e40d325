// Package config handles devsync configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"devsync/internal/model"
)

// Config is the root configuration structure.
type Config struct {
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
	UI       UIConfig       `yaml:"ui" mapstructure:"ui"`
	Compose  ComposeConfig  `yaml:"compose" mapstructure:"compose"`
	Catalog  CatalogConfig  `yaml:"catalog" mapstructure:"catalog"`
}

// DatabaseConfig contains database settings.
type DatabaseConfig struct {
	// Path is the SQLite file holding seeded catalogs.
	Path string `yaml:"path" mapstructure:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	// File receives logs while the terminal UI owns the screen. Empty
	// discards them.
	File string `yaml:"file" mapstructure:"file"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	Theme         string `yaml:"theme" mapstructure:"theme"`
	DefaultScreen string `yaml:"default_screen" mapstructure:"default_screen"`
}

// ComposeConfig contains composer settings.
type ComposeConfig struct {
	// MemoSize bounds the composed-view memo; 0 disables it.
	MemoSize int `yaml:"memo_size" mapstructure:"memo_size"`
}

// CatalogConfig selects where screen catalogs are seeded from.
type CatalogConfig struct {
	// Source is auto, fixtures or store. auto reads the store when it has
	// the screen and falls back to the embedded fixtures.
	Source string `yaml:"source" mapstructure:"source"`
}

const (
	SourceAuto     = "auto"
	SourceFixtures = "fixtures"
	SourceStore    = "store"
)

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	dir := DefaultDir()
	return &Config{
		Database: DatabaseConfig{Path: filepath.Join(dir, "devsync.db")},
		Logging:  LoggingConfig{Level: "info", Format: "console", File: filepath.Join(dir, "devsync.log")},
		UI:       UIConfig{Theme: "dark", DefaultScreen: model.ScreenHome},
		Compose:  ComposeConfig{MemoSize: 64},
		Catalog:  CatalogConfig{Source: SourceAuto},
	}
}

// DefaultDir is ~/.config/devsync, or ./.devsync when there is no home.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".devsync"
	}
	return filepath.Join(home, ".config", "devsync")
}

// Validate checks enum-like settings.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("ui.theme must be light or dark, got %q", c.UI.Theme)
	}
	if !slices.Contains(model.Screens, c.UI.DefaultScreen) {
		return fmt.Errorf("ui.default_screen must be one of %v, got %q", model.Screens, c.UI.DefaultScreen)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if c.Compose.MemoSize < 0 {
		return fmt.Errorf("compose.memo_size must not be negative")
	}
	switch c.Catalog.Source {
	case SourceAuto, SourceFixtures, SourceStore:
	default:
		return fmt.Errorf("catalog.source must be auto, fixtures or store, got %q", c.Catalog.Source)
	}
	if c.Database.Path == "" && c.Catalog.Source == SourceStore {
		return fmt.Errorf("database.path is required when catalog.source is store")
	}
	return nil
}
