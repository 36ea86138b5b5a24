package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Wizard provides an interactive configuration wizard
type Wizard struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewWizard creates a new configuration wizard reading answers from in
func NewWizard(in io.Reader, out io.Writer) *Wizard {
	return &Wizard{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run runs the interactive configuration wizard. defaultDataDir is offered
// when the user leaves the data directory blank.
func (w *Wizard) Run(defaultDataDir string) (*Config, error) {
	fmt.Fprintln(w.out, "=== Toolshed Configuration Wizard ===")
	fmt.Fprintln(w.out)

	cfg := DefaultConfig()
	validator := NewValidator()

	// Data directory
	fmt.Fprintf(w.out, "Data directory [%s]: ", defaultDataDir)
	dir, err := w.readLine()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = defaultDataDir
	}
	cfg.DataDir = dir
	cfg.Storage.Path = filepath.Join(dir, "toolshed.db")

	// Catalog file
	for {
		fmt.Fprint(w.out, "Catalog file for import/export (.json/.yaml, press Enter to skip): ")
		path, err := w.readLine()
		if err != nil {
			return nil, err
		}

		if err := validator.ValidateCatalogPath(path); err != nil {
			fmt.Fprintf(w.out, "Error: %v\n", err)
			continue
		}

		cfg.Catalog.Path = path
		break
	}

	fmt.Fprintln(w.out)

	// Log Level
	fmt.Fprintln(w.out, "Logging:")
	fmt.Fprintf(w.out, "Log level (debug/info/warn/error) [%s]: ", cfg.Logging.Level)
	level, err := w.readLine()
	if err != nil {
		return nil, err
	}

	if level != "" {
		if err := validator.ValidateLogLevel(level); err != nil {
			fmt.Fprintf(w.out, "Warning: %v, using default (%s)\n", err, cfg.Logging.Level)
		} else {
			cfg.Logging.Level = level
		}
	}

	fmt.Fprint(w.out, "Redact borrower contact details in logs? (y/n) [y]: ")
	redact, err := w.readLine()
	if err != nil {
		return nil, err
	}
	cfg.Logging.Redaction = redact == "" || strings.ToLower(redact) == "y"

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "Configuration complete!")

	return cfg, nil
}

func (w *Wizard) readLine() (string, error) {
	line, err := w.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
