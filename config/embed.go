package config

import (
	_ "embed"
	"os"
	"path/filepath"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the bundled configuration document.
func Default() []byte {
	return defaultYAML
}

// readFile reads an override file. An empty path means no override.
func readFile(path string) ([]byte, bool, error) {
	if path == "" {
		return nil, false, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
