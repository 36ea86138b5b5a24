package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harun/toolshed/pkg/inventory"
	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Format identifies a catalog encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for catalog paths with an unrecognized extension
var ErrUnknownFormat = errors.New("unknown catalog format")

// ValidationError lists every schema violation found in a catalog document
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog schema validation errors: %s", strings.Join(e.Errors, "; "))
}

// Catalog is an ordered list of tools read from or written to a file
type Catalog struct {
	Tools []*inventory.Tool `json:"tools" yaml:"tools"`
}

// Library wraps the catalog's tools in a ToolLibrary
func (c *Catalog) Library() *inventory.ToolLibrary {
	return inventory.NewToolLibrary(c.Tools)
}

// FormatFromPath picks a format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Loader loads, validates and saves catalogs
type Loader struct {
	logger       zerolog.Logger
	schemaLoader gojsonschema.JSONLoader
}

// NewLoader creates a new catalog loader
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{
		logger:       logger.With().Str("component", "catalog-loader").Logger(),
		schemaLoader: gojsonschema.NewStringLoader(CatalogSchema),
	}
}

// Load reads and validates a catalog file
func (l *Loader) Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	cat, err := l.Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	l.logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("tools", len(cat.Tools)).
		Msg("Loaded catalog")

	return cat, nil
}

// Parse validates and decodes a catalog document
func (l *Loader) Parse(data []byte, format Format) (*Catalog, error) {
	var document gojsonschema.JSONLoader
	switch format {
	case FormatJSON:
		document = gojsonschema.NewBytesLoader(data)
	case FormatYAML:
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
		document = gojsonschema.NewGoLoader(raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	if err := l.validateSchema(document); err != nil {
		return nil, err
	}

	var cat Catalog
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
	}

	// Rebuild through the constructor so every tool has a non-nil
	// reservation slice.
	for i, t := range cat.Tools {
		cat.Tools[i] = inventory.NewTool(t.Name, t.Quantity, t.Reservations)
	}
	if cat.Tools == nil {
		cat.Tools = []*inventory.Tool{}
	}

	return &cat, nil
}

// validateSchema checks a document against CatalogSchema
func (l *Loader) validateSchema(document gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(l.schemaLoader, document)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		verr := &ValidationError{}
		for _, e := range result.Errors() {
			verr.Errors = append(verr.Errors, e.String())
		}
		return verr
	}

	return nil
}

// Save writes tools to path in the format implied by its extension
func (l *Loader) Save(path string, tools []*inventory.Tool) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if tools == nil {
		tools = []*inventory.Tool{}
	}
	cat := Catalog{Tools: tools}

	var data []byte
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(cat, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(cat)
	}
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	// Write to temporary file first
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	l.logger.Debug().
		Str("path", path).
		Int("tools", len(tools)).
		Msg("Saved catalog")

	return nil
}

// Load is a convenience function that loads a catalog without logging
func Load(path string) (*Catalog, error) {
	return NewLoader(zerolog.Nop()).Load(path)
}

// Save is a convenience function that saves a catalog without logging
func Save(path string, tools []*inventory.Tool) error {
	return NewLoader(zerolog.Nop()).Save(path, tools)
}
