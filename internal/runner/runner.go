// Package runner executes a bot script with the interpreter matching its
// file extension. It is the whole job of the game-runner image and doubles
// as the child half of the host-mode re-exec.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/MikailBag/simple-game/internal/logs"
)

// Kind is a supported script flavor.
type Kind string

const (
	KindPython Kind = "python"
	KindShell  Kind = "shell"
)

var interpreters = map[Kind][]string{
	KindPython: {"python3"},
	KindShell:  {"sh"},
}

// DetectKind maps a script path to its Kind by extension.
func DetectKind(path string) (Kind, error) {
	switch filepath.Ext(path) {
	case ".py":
		return KindPython, nil
	case ".sh":
		return KindShell, nil
	}
	return "", fmt.Errorf("could not detect code kind for %s", path)
}

// Exec runs the script with stdio passed through and blocks until it exits.
// A non-zero exit comes back as an error.
func Exec(ctx context.Context, path string) error {
	kind, err := DetectKind(path)
	if err != nil {
		return err
	}
	logs.Debugf("%s detected as %s", path, kind)

	argv := append(append([]string{}, interpreters[kind]...), path)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("script %s failed: %w", path, err)
	}
	return nil
}
