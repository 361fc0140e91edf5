package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the brush defaults with the YAML file at path merged on top.
// An empty path returns the plain defaults. The merged result is validated
// before it is returned.
func Load(path string) (Brush, error) {
	b := Default()
	if path == "" {
		return b, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := b.Validate(); err != nil {
		return b, err
	}

	return b, nil
}

// Save writes the brush settings to path as YAML.
func Save(path string, b Brush) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("config: marshaling: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}

	return nil
}
