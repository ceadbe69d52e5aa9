// Package config loads the zen-explorer application settings.
package config

import (
	"fmt"
	"strings"

	"github.com/zen-explorer/zen-explorer/internal/messages"
	"github.com/zen-explorer/zen-explorer/internal/profile"
	"github.com/zen-explorer/zen-explorer/internal/stylesheet"
)

// Config is the parsed config.toml.
type Config struct {
	Browser     BrowserConfig     `toml:"browser"`
	Catalog     CatalogConfig     `toml:"catalog"`
	Stylesheets StylesheetsConfig `toml:"stylesheets"`
	UI          UIConfig          `toml:"ui"`
}

// BrowserConfig selects the browser whose profiles are managed.
type BrowserConfig struct {
	Name string `toml:"name"`
	// ProfileRoots overrides the built-in profile locations for Name.
	ProfileRoots []string `toml:"profile_roots"`
	// RequiredDirs are subdirectories a directory must contain to count as a profile.
	RequiredDirs []string `toml:"required_dirs"`
}

// CatalogConfig locates the synced theme repository.
type CatalogConfig struct {
	Path string `toml:"path"`
}

// StylesheetsConfig selects how imports reach the user stylesheets.
type StylesheetsConfig struct {
	Strategy string `toml:"strategy"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `toml:"theme"`
	// Color forces colored output on or off. Unset means detect.
	Color *bool `toml:"color"`
}

// Default returns the configuration used when no config file exists.
func Default(paths Paths) Config {
	return Config{
		Browser:     BrowserConfig{Name: profile.BrowserZen},
		Catalog:     CatalogConfig{Path: paths.CatalogDir},
		Stylesheets: StylesheetsConfig{Strategy: string(stylesheet.StrategyAuto)},
		UI:          UIConfig{Theme: ThemeDark},
	}
}

// UI themes.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(source string) error {
	name := strings.TrimSpace(c.Browser.Name)
	if name == "" {
		return fmt.Errorf(messages.ConfigBrowserRequiredFmt, source)
	}
	if len(c.Browser.ProfileRoots) == 0 && !isValidOption("browser.name", name) {
		return fmt.Errorf(messages.ConfigBrowserUnknownFmt, source, name, strings.Join(FieldOptionValues("browser.name"), ", "))
	}
	for _, root := range c.Browser.ProfileRoots {
		if strings.TrimSpace(root) == "" {
			return fmt.Errorf(messages.ConfigEmptyListEntryFmt, source, "browser.profile_roots")
		}
	}
	for _, dir := range c.Browser.RequiredDirs {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf(messages.ConfigEmptyListEntryFmt, source, "browser.required_dirs")
		}
	}
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf(messages.ConfigCatalogPathRequiredFmt, source)
	}
	if _, err := stylesheet.ParseStrategy(c.Stylesheets.Strategy); err != nil {
		return fmt.Errorf(messages.ConfigInvalidValueFmt, source, "stylesheets.strategy", err)
	}
	if !isValidOption("ui.theme", c.UI.Theme) {
		return fmt.Errorf(messages.ConfigInvalidOptionFmt, source, "ui.theme", c.UI.Theme, strings.Join(FieldOptionValues("ui.theme"), ", "))
	}
	return nil
}

// Strategy returns the parsed stylesheet strategy. Call after Validate.
func (c *Config) Strategy() stylesheet.Strategy {
	strategy, err := stylesheet.ParseStrategy(c.Stylesheets.Strategy)
	if err != nil {
		return stylesheet.StrategyAuto
	}
	return strategy
}

// Locator returns the profile locator for the configured browser.
// goos and home select the built-in roots when none are configured.
func (c *Config) Locator(goos string, home string) profile.DirLocator {
	roots := c.Browser.ProfileRoots
	if len(roots) == 0 {
		roots = profile.DefaultRoots(c.Browser.Name, goos, home)
	}
	return profile.DirLocator{
		Roots:        append([]string(nil), roots...),
		RequiredDirs: append([]string(nil), c.Browser.RequiredDirs...),
	}
}

func isValidOption(key string, value string) bool {
	for _, option := range FieldOptionValues(key) {
		if option == value {
			return true
		}
	}
	return false
}
