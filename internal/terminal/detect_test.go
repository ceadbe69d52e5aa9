package terminal

import (
	"bytes"
	"testing"
)

func TestIsInteractive(t *testing.T) {
	// Depends on the environment; only verify it runs.
	_ = IsInteractive()
}

func TestNonFileWriters(t *testing.T) {
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Fatalf("buffer must not be a terminal")
	}
	if got := Width(&buf); got != defaultWidth {
		t.Fatalf("expected default width, got %d", got)
	}
}
