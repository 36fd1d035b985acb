package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a map request from a YAML file. Fields left unset in the
// file keep their defaults.
func Load(path string) (*MapRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map spec file: %w", err)
	}

	req := Default()
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing map spec YAML: %w", err)
	}

	return &req, nil
}

// LoadProject loads a map request from a project directory.
// It looks for map.yaml in the given directory.
func LoadProject(projectDir string) (*MapRequest, error) {
	return Load(filepath.Join(projectDir, "map.yaml"))
}
