package deck

import (
	"fmt"
	"os"

	"github.com/yuanying/memr-odp/internal/yamlutil"
)

// Load reads a YAML deck definition from path.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML deck definition and validates it.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := yamlutil.UnmarshalStrict(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
