package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/zen-explorer/zen-explorer/internal/catalog"
	"github.com/zen-explorer/zen-explorer/internal/install"
	"github.com/zen-explorer/zen-explorer/internal/manifest"
	"github.com/zen-explorer/zen-explorer/internal/profile"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"zx", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"zx", "version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if strings.TrimSpace(out.String()) != versionString() {
		t.Fatalf("unexpected version output %q", out.String())
	}
}

func TestVersionStringMetadata(t *testing.T) {
	origCommit, origDate := Commit, BuildDate
	t.Cleanup(func() { Commit, BuildDate = origCommit, origDate })

	Commit, BuildDate = "abc1234", "2026-01-02"
	got := versionString()
	if !strings.Contains(got, "abc1234") || !strings.Contains(got, "2026-01-02") {
		t.Fatalf("expected commit and date in %q", got)
	}
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"zx", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"zx", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMainSilentExit(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return fmt.Errorf("wrapped: %w", &SilentExitError{Code: 7})
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"zx"}, &out, &out, func(c int) { code = c })
	if code != 7 {
		t.Fatalf("expected exit 7, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestExitCodes(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{errors.New("boom"), exitFailure},
		{&profile.NotFoundError{Ref: "x"}, exitNotFound},
		{&catalog.ThemeNotFoundError{ID: "x"}, exitNotFound},
		{fmt.Errorf("ctx: %w", &install.NotInstalledError{Profile: "p", ThemeID: "x"}), exitNotFound},
		{&install.ConflictError{Profile: "p", Paths: []string{"userChrome.css"}}, exitConflict},
		{&manifest.CorruptError{Path: "m.json", Err: errors.New("bad")}, exitCorrupt},
	}
	for _, tc := range cases {
		if got := exitCode(tc.err); got != tc.code {
			t.Errorf("exitCode(%v) = %d, want %d", tc.err, got, tc.code)
		}
	}
}

func TestFormatErrorHints(t *testing.T) {
	conflict := formatError(&install.ConflictError{Profile: "p", Paths: []string{"userChrome.css"}})
	if !strings.Contains(conflict, "--force") {
		t.Fatalf("expected --force hint, got %q", conflict)
	}
	corrupt := formatError(&manifest.CorruptError{Path: "/p/chrome/zen-explorer.json", Err: errors.New("bad")})
	if !strings.Contains(corrupt, "/p/chrome/zen-explorer.json") {
		t.Fatalf("expected manifest path hint, got %q", corrupt)
	}
	plain := formatError(errors.New("boom"))
	if strings.Contains(plain, "\n") {
		t.Fatalf("expected single line, got %q", plain)
	}
}
