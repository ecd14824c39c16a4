// Tests in this file cover match config parsing and validation.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFullConfig(t *testing.T) {
	t.Parallel()

	data := []byte(`
programs:
  - bots/first.py
  - bots/second.py
rounds: 5
image: mikailbag/game-runner:v1.0.0
`)
	m, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(m.Programs) != 2 {
		t.Fatalf("Programs len = %d, want 2", len(m.Programs))
	}
	if m.Rounds != 5 {
		t.Fatalf("Rounds = %d, want 5", m.Rounds)
	}
	if m.Image != "mikailbag/game-runner:v1.0.0" {
		t.Fatalf("Image = %q", m.Image)
	}
}

func TestParseImageOptional(t *testing.T) {
	t.Parallel()

	m, err := Parse([]byte("programs: [bot.py]\nrounds: 1\n"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if m.Image != "" {
		t.Fatalf("Image = %q, want empty", m.Image)
	}
}

func TestParseRejectsNoPrograms(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("programs: []\nrounds: 3\n")); err == nil {
		t.Fatal("expected error for empty programs list")
	}
}

func TestParseRejectsZeroRounds(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("programs: [bot.py]\nrounds: 0\n")); err == nil {
		t.Fatal("expected error for zero rounds")
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("programs: [bot.py]\nrounds: 1\nroundz: 9\n")); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "match.yaml")
	if err := os.WriteFile(path, []byte("programs: [bot.py]\nrounds: 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if m.Rounds != 2 {
		t.Fatalf("Rounds = %d, want 2", m.Rounds)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
