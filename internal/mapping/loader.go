package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"extenum-generator/internal/syntax"
)

// CurrentVersion is the declaration schema version written by Marshal.
const CurrentVersion = "1"

// LoadFile loads and parses a YAML declaration file from the given path.
func LoadFile(path string) (*DeclFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a DeclFile.
func Parse(data []byte) (*DeclFile, error) {
	var df DeclFile

	err := yaml.Unmarshal(data, &df)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&df)

	return &df, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(df *DeclFile) {
	if df.Version == "" {
		df.Version = CurrentVersion
	}

	for i := range df.Enums {
		e := &df.Enums[i]
		if e.Kind == "" {
			e.Kind = syntax.DeclEnum.String()
		}

		if e.KnownCases != nil && e.KnownCases.Visibility == "" {
			e.KnownCases.Visibility = syntax.ModifierPrivate
		}
	}
}

// Marshal serializes a DeclFile to YAML.
func Marshal(df *DeclFile) ([]byte, error) {
	return yaml.Marshal(df)
}

// WriteFile writes a DeclFile to the given path.
func WriteFile(df *DeclFile, path string) error {
	data, err := Marshal(df)
	if err != nil {
		return fmt.Errorf("failed to marshal declarations: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write declaration file %s: %w", path, err)
	}

	return nil
}
