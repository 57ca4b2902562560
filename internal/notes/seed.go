package notes

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// LoadSeed parses a YAML list of notes. Every note must carry a positive,
// unique id and satisfy the same field rules as a submission.
func LoadSeed(data []byte) ([]Note, error) {
	var seed []Note
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	seen := make(map[int64]bool, len(seed))
	for i, n := range seed {
		if n.ID <= 0 {
			return nil, fmt.Errorf("seed note %d: %w: %d", i, ErrInvalidID, n.ID)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("seed note %d: duplicate id %d", i, n.ID)
		}
		seen[n.ID] = true

		n.Title = strings.TrimSpace(n.Title)
		n.Subject = strings.TrimSpace(n.Subject)
		n.Helper = strings.TrimSpace(n.Helper)
		if n.Title == "" || n.Subject == "" || n.Helper == "" {
			return nil, fmt.Errorf("seed note %d: title, subject and helper are required", n.ID)
		}
		if !n.Grade.Valid() {
			return nil, fmt.Errorf("seed note %d: unknown grade %q", n.ID, n.Grade)
		}
		if n.Image == "" {
			n.Image = PlaceholderImage
		}
		seed[i] = n
	}
	return seed, nil
}

// OpenCatalog builds a catalog from the seed file at path, or from the
// embedded seed set when path is empty.
func OpenCatalog(path string) (*Catalog, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		data = b
	}

	seed, err := LoadSeed(data)
	if err != nil {
		return nil, err
	}
	return NewCatalog(seed), nil
}
