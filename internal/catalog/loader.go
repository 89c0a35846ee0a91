package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed defaults/figures.txt
var defaultFigures []byte

// defaultNames labels the built-in pieces in file order.
var defaultNames = []string{"O", "I", "T", "L", "J", "S", "Z"}

// Default returns the built-in seven-piece catalog.
func Default() *Catalog {
	pieces, err := ParseLegacy(bytes.NewReader(defaultFigures))
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded figures are invalid: %v", err))
	}
	for i := range pieces {
		if i < len(defaultNames) {
			pieces[i].Name = defaultNames[i]
		}
	}
	c, err := New(pieces, "embedded")
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog file. An empty path returns the built-in catalog.
// Files ending in .yaml/.yml use the YAML format, anything else the legacy
// integer format.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrUnavailable, path, err)
	}

	pieces, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return New(pieces, path)
}

// FormatExtensions returns the file extensions parsed as YAML.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) ([]Piece, error) {
	for _, yamlExt := range FormatExtensions() {
		if ext == yamlExt {
			return ParseYAML(data)
		}
	}
	return ParseLegacy(bytes.NewReader(data))
}
