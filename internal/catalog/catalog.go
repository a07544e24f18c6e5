// Package catalog loads the static list of challenges a session draws from.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/divijg19/moveit/internal/core"
)

//go:embed challenges.json
var defaultChallenges []byte

// Catalog is an ordered, read-only list of challenges.
type Catalog struct {
	challenges []core.Challenge
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	c, err := Parse(defaultChallenges)
	if err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog from path. An empty path selects the built-in catalog.
// Both YAML and JSON files are accepted.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a list of challenges.
func Parse(data []byte) (*Catalog, error) {
	var challenges []core.Challenge
	if err := yaml.Unmarshal(data, &challenges); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(challenges) == 0 {
		return nil, errors.New("catalog is empty")
	}

	for idx, ch := range challenges {
		if !ch.Kind.Valid() {
			return nil, fmt.Errorf("challenge %d: unknown type %q", idx, ch.Kind)
		}
		if ch.Description == "" {
			return nil, fmt.Errorf("challenge %d: description is empty", idx)
		}
		if ch.Amount <= 0 {
			return nil, fmt.Errorf("challenge %d: amount must be > 0", idx)
		}
	}

	return &Catalog{challenges: challenges}, nil
}

// Len returns the number of challenges.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.challenges)
}

// At returns the challenge at position i.
func (c *Catalog) At(i int) core.Challenge {
	return c.challenges[i]
}

// All returns a copy of the challenges in catalog order.
func (c *Catalog) All() []core.Challenge {
	if c == nil {
		return nil
	}
	out := make([]core.Challenge, len(c.challenges))
	copy(out, c.challenges)
	return out
}
