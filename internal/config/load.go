package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/zen-explorer/zen-explorer/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors).
var ErrConfigValidation = errors.New(messages.ConfigValidationFailed)

// Load reads the config at paths.ConfigPath. A missing file yields Default(paths).
func Load(paths Paths) (*Config, error) {
	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default(paths)
			return &cfg, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFmt, paths.ConfigPath, err)
	}
	return Parse(data, paths, paths.ConfigPath)
}

// Parse decodes config TOML over the defaults and validates the result.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, paths Paths, source string) (*Config, error) {
	cfg := Default(paths)
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf(messages.ConfigExpandPathFmt, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&cfg)
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		keys := make([]string, 0, len(strict.Errors))
		for _, missing := range strict.Errors {
			keys = append(keys, strings.Join(missing.Key(), "."))
		}
		return errors.New(strings.Join(keys, ", "))
	}
	return err
}

func (c *Config) expandPaths() error {
	var err error
	if c.Catalog.Path, err = ExpandHome(c.Catalog.Path); err != nil {
		return err
	}
	for i, root := range c.Browser.ProfileRoots {
		if c.Browser.ProfileRoots[i], err = ExpandHome(root); err != nil {
			return err
		}
	}
	return nil
}

// Encode renders cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigEncodeFmt, err)
	}
	return buf.Bytes(), nil
}
