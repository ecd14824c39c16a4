package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDetectKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want Kind
	}{
		{"bot.py", KindPython},
		{"/abs/path/to/bot.py", KindPython},
		{"bot.sh", KindShell},
	}
	for _, tc := range cases {
		got, err := DetectKind(tc.path)
		if err != nil {
			t.Fatalf("DetectKind(%q) returned error: %v", tc.path, err)
		}
		if got != tc.want {
			t.Fatalf("DetectKind(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestDetectKindUnknown(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"bot.exe", "bot", "bot.py.bak"} {
		if _, err := DetectKind(path); err == nil {
			t.Fatalf("DetectKind(%q) accepted an unknown extension", path)
		}
	}
}

func TestExecShellScript(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ok.sh")
	if err := os.WriteFile(path, []byte("exit 0\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if err := Exec(context.Background(), path); err != nil {
		t.Fatalf("Exec returned error: %v", err)
	}
}

func TestExecPropagatesFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fail.sh")
	if err := os.WriteFile(path, []byte("exit 3\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if err := Exec(context.Background(), path); err == nil {
		t.Fatal("expected error for failing script")
	}
}
