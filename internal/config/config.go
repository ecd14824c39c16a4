// Package config loads and validates the YAML match configuration consumed
// by the game server.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Match describes one match: which bot programs play, for how many rounds,
// and optionally which container image sandboxes them.
type Match struct {
	// Programs are paths to bot scripts, one client per entry.
	Programs []string `yaml:"programs"`

	// Rounds is how many rounds the match lasts.
	Rounds uint32 `yaml:"rounds"`

	// Image, when set, runs every bot inside a container from this image
	// instead of directly on the host.
	Image string `yaml:"image,omitempty"`
}

// Load reads and validates a match config from path.
func Load(path string) (*Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a match config from raw YAML. Unknown fields are rejected so
// typos in configs fail loudly instead of silently defaulting.
func Parse(data []byte) (*Match, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Match
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Match) validate() error {
	if len(m.Programs) == 0 {
		return fmt.Errorf("config: at least one program is required")
	}
	for i, p := range m.Programs {
		if p == "" {
			return fmt.Errorf("config: programs[%d] is empty", i)
		}
	}
	if m.Rounds == 0 {
		return fmt.Errorf("config: rounds must be at least 1")
	}
	return nil
}
