package config

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

const (
	// AppName names the config and data directories.
	AppName = "zen-explorer"
	// EnvConfigDir overrides the config directory.
	EnvConfigDir = "ZEN_EXPLORER_CONFIG"
	// EnvDataDir overrides the data directory holding the synced catalog.
	EnvDataDir = "ZEN_EXPLORER_DATA"

	configFileName = "config.toml"
	catalogDirName = "repository"
)

// Paths holds resolved paths for config files and directories.
type Paths struct {
	ConfigDir  string
	ConfigPath string
	DataDir    string
	CatalogDir string
}

// LookupEnvFunc matches os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// DefaultPaths resolves the config and data directories from the environment,
// falling back to XDG locations under the user's home directory.
func DefaultPaths(lookupEnv LookupEnvFunc) (Paths, error) {
	configDir, err := resolveDir(lookupEnv, EnvConfigDir, "XDG_CONFIG_HOME", ".config")
	if err != nil {
		return Paths{}, err
	}
	dataDir, err := resolveDir(lookupEnv, EnvDataDir, "XDG_DATA_HOME", filepath.Join(".local", "share"))
	if err != nil {
		return Paths{}, err
	}
	return Paths{
		ConfigDir:  configDir,
		ConfigPath: filepath.Join(configDir, configFileName),
		DataDir:    dataDir,
		CatalogDir: filepath.Join(dataDir, catalogDirName),
	}, nil
}

func resolveDir(lookupEnv LookupEnvFunc, override string, xdg string, homeRel string) (string, error) {
	if value, ok := lookupEnv(override); ok && strings.TrimSpace(value) != "" {
		return ExpandHome(value)
	}
	if value, ok := lookupEnv(xdg); ok && strings.TrimSpace(value) != "" {
		return filepath.Join(value, AppName), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeRel, AppName), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	return homedir.Expand(strings.TrimSpace(path))
}
