package stylesheet

import (
	"fmt"
	"os"
	"strings"

	"github.com/zen-explorer/zen-explorer/internal/messages"
	"github.com/zen-explorer/zen-explorer/internal/profile"
)

// Strategy selects how composed imports reach the user stylesheets.
type Strategy string

const (
	// StrategyAuto picks inject or overwrite per profile from what is on disk.
	StrategyAuto Strategy = "auto"
	// StrategyInject writes tool-owned files and injects one import into each user stylesheet.
	StrategyInject Strategy = "inject"
	// StrategyOverwrite regenerates the user stylesheets, preserving foreign lines below a delimiter.
	StrategyOverwrite Strategy = "overwrite"
)

// ParseStrategy validates a configured strategy name. Empty means auto.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(strings.TrimSpace(value)) {
	case "", StrategyAuto:
		return StrategyAuto, nil
	case StrategyInject:
		return StrategyInject, nil
	case StrategyOverwrite:
		return StrategyOverwrite, nil
	default:
		return "", fmt.Errorf(messages.StylesheetUnknownStrategyFmt, value)
	}
}

// WriteKind tags why a stylesheet write is planned.
type WriteKind string

const (
	// WriteGenerated replaces a tool-owned composed stylesheet.
	WriteGenerated WriteKind = "generated"
	// WriteBackup saves a user stylesheet before its first injection.
	WriteBackup WriteKind = "backup"
	// WriteInject adds the import of a tool-owned stylesheet to a user stylesheet.
	WriteInject WriteKind = "inject"
	// WriteOverwrite regenerates a user stylesheet in place.
	WriteOverwrite WriteKind = "overwrite"
)

// Write is one planned stylesheet file replacement.
type Write struct {
	Kind WriteKind
	Path string
	Data []byte
	Perm os.FileMode
}

// ReadFunc returns the content of path and whether it exists.
type ReadFunc func(path string) (content string, exists bool, err error)

// Writer reconciles composed stylesheets with a profile's files.
// Plan must be deterministic for a given disk state and must return no writes
// when the disk already matches.
type Writer interface {
	Strategy() Strategy
	Plan(paths profile.Paths, composed Composed, read ReadFunc) ([]Write, error)
}

// NewWriter returns the Writer for a concrete strategy.
func NewWriter(strategy Strategy) (Writer, error) {
	switch strategy {
	case StrategyInject:
		return InjectWriter{}, nil
	case StrategyOverwrite:
		return OverwriteWriter{}, nil
	default:
		return nil, fmt.Errorf(messages.StylesheetUnresolvedStrategyFmt, strategy)
	}
}

// Detect resolves StrategyAuto for a profile. Profiles that already have
// tool-owned stylesheets keep injecting and unmanaged profiles start injecting.
// A manifest without generated files was written by the legacy
// direct-overwrite flow, even once every theme is disabled and the user
// stylesheets no longer carry imports, unless an injection line survives.
func Detect(paths profile.Paths, read ReadFunc, manifestExists bool) (Strategy, error) {
	for _, path := range []string{paths.GeneratedChrome, paths.GeneratedContent} {
		_, exists, err := read(path)
		if err != nil {
			return "", err
		}
		if exists {
			return StrategyInject, nil
		}
	}
	if !manifestExists {
		return StrategyInject, nil
	}
	injected := false
	for _, path := range []string{paths.UserChrome, paths.UserContent} {
		content, exists, err := read(path)
		if err != nil {
			return "", err
		}
		if !exists {
			continue
		}
		for _, line := range splitLines(content) {
			if IsThemeImport(line) || strings.TrimSpace(line) == PreservedDelimiter {
				return StrategyOverwrite, nil
			}
			if isAnyInjection(line) {
				injected = true
			}
		}
	}
	if injected {
		return StrategyInject, nil
	}
	return StrategyOverwrite, nil
}

// Resolve returns the concrete Writer for strategy, running detection for auto.
func Resolve(strategy Strategy, paths profile.Paths, read ReadFunc, manifestExists bool) (Writer, error) {
	if strategy == StrategyAuto || strategy == "" {
		detected, err := Detect(paths, read, manifestExists)
		if err != nil {
			return nil, err
		}
		strategy = detected
	}
	return NewWriter(strategy)
}
