package levels

import (
	_ "embed"
	"fmt"
)

//go:embed levels.level.json
var embedded []byte

// Embedded returns the bundled level set document.
func Embedded() ([]byte, error) {
	return embedded, nil
}

// LoadEmbedded parses the bundled level set.
func LoadEmbedded() (*Set, error) {
	set, err := Parse(embedded)
	if err != nil {
		return nil, fmt.Errorf("embedded levels: %w", err)
	}
	return set, nil
}
