package config

import (
	"encoding/json"
	"fmt"
)

// Config represents the main toolshed configuration
type Config struct {
	// Data directory
	DataDir string `json:"data_dir" mapstructure:"data_dir"`

	// Storage
	Storage StorageConfig `json:"storage" mapstructure:"storage"`

	// Catalog
	Catalog CatalogConfig `json:"catalog" mapstructure:"catalog"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// StorageConfig holds the tool database settings
type StorageConfig struct {
	Path string `json:"path" mapstructure:"path"` // SQLite file, defaults to <data_dir>/toolshed.db
}

// CatalogConfig holds catalog file settings
type CatalogConfig struct {
	Path string `json:"path" mapstructure:"path"` // default file for import/export, .json or .yaml
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level     string `json:"level" mapstructure:"level"`
	File      string `json:"file" mapstructure:"file"`
	Console   bool   `json:"console" mapstructure:"console"`
	Pretty    bool   `json:"pretty" mapstructure:"pretty"`
	Redaction bool   `json:"redaction" mapstructure:"redaction"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:     "warn",
			Console:   false,
			Pretty:    true,
			Redaction: true,
		},
	}
}

// String returns a JSON representation of the config
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DataDir == "" && c.Storage.Path == "" {
		return fmt.Errorf("either data_dir or storage.path must be set")
	}

	v := NewValidator()
	if errs := v.ValidateConfig(c); len(errs) > 0 {
		return errs[0]
	}

	return nil
}
