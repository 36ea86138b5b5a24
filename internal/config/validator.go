package config

import (
	"fmt"
	"strings"

	"github.com/harun/toolshed/pkg/catalog"
)

// Validator validates configuration values
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateLogLevel validates log level
func (v *Validator) ValidateLogLevel(level string) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	for _, valid := range validLevels {
		if level == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid log level: %s (must be one of: %s)", level, strings.Join(validLevels, ", "))
}

// ValidateCatalogPath checks that a catalog path has a known extension.
// An empty path is allowed.
func (v *Validator) ValidateCatalogPath(path string) error {
	if path == "" {
		return nil
	}
	if _, err := catalog.FormatFromPath(path); err != nil {
		return fmt.Errorf("invalid catalog path: %w (use .json, .yaml or .yml)", err)
	}
	return nil
}

// ValidateStoragePath validates the database path
func (v *Validator) ValidateStoragePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("storage path cannot be empty")
	}
	if strings.HasSuffix(path, "/") {
		return fmt.Errorf("storage path must be a file, got directory %s", path)
	}
	return nil
}

// ValidateConfig performs comprehensive validation
func (v *Validator) ValidateConfig(cfg *Config) []error {
	var errors []error

	if cfg.Storage.Path != "" {
		if err := v.ValidateStoragePath(cfg.Storage.Path); err != nil {
			errors = append(errors, err)
		}
	}

	if err := v.ValidateCatalogPath(cfg.Catalog.Path); err != nil {
		errors = append(errors, err)
	}

	if err := v.ValidateLogLevel(cfg.Logging.Level); err != nil {
		errors = append(errors, err)
	}

	return errors
}
