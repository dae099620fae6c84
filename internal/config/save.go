package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WriteDefault writes the default configuration to path as YAML. An
// existing file is left alone and reported as an error.
func WriteDefault(path string) error {
	if fileExists(path) {
		return fmt.Errorf("config file already exists: %s", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := Encode(Defaults())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Encode renders cfg as two-space indented YAML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()
	return buf.Bytes(), nil
}
