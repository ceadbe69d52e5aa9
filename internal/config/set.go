package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// v1 provides the mutable tree used to edit a single key in place.
	tomlv1 "github.com/pelletier/go-toml"

	"github.com/zen-explorer/zen-explorer/internal/fsutil"
	"github.com/zen-explorer/zen-explorer/internal/messages"
)

// SetValue sets one registered key in the config file and rewrites it atomically.
// The edited document is validated before anything is written.
func SetValue(paths Paths, key string, raw string) (*Config, error) {
	field, ok := LookupField(key)
	if !ok {
		return nil, fmt.Errorf(messages.ConfigSetUnknownKeyFmt, key)
	}
	value, err := field.Parse(raw)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf(messages.ConfigReadFmt, paths.ConfigPath, err)
	}
	tree, err := tomlv1.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, paths.ConfigPath, err)
	}
	tree.Set(key, value)
	out, err := tree.Marshal()
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigEncodeFmt, err)
	}

	cfg, err := Parse(out, paths, paths.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(paths.ConfigPath), 0o755); err != nil {
		return nil, fmt.Errorf(messages.ConfigWriteFmt, paths.ConfigPath, err)
	}
	if err := fsutil.WriteFileAtomic(paths.ConfigPath, out, 0o644); err != nil {
		return nil, fmt.Errorf(messages.ConfigWriteFmt, paths.ConfigPath, err)
	}
	return cfg, nil
}
