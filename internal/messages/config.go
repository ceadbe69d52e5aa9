package messages

// Config messages for loading, validating, and editing config.toml.
const (
	// ConfigValidationFailed is the sentinel text for validation failures.
	ConfigValidationFailed       = "config validation failed"
	ConfigReadFmt                = "failed to read config %s: %w"
	ConfigInvalidConfigFmt       = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt    = "unrecognized config keys in %s: %w"
	ConfigExpandPathFmt          = "%s: expand path: %w"
	ConfigEncodeFmt              = "encode config: %w"
	ConfigWriteFmt               = "failed to write config %s: %w"
	ConfigBrowserRequiredFmt     = "%s: browser.name is required"
	ConfigBrowserUnknownFmt      = "%s: browser.name %q is not supported (supported: %s)"
	ConfigEmptyListEntryFmt      = "%s: %s must not contain empty entries"
	ConfigCatalogPathRequiredFmt = "%s: catalog.path is required"
	ConfigInvalidValueFmt        = "%s: %s: %w"
	ConfigInvalidOptionFmt       = "%s: %s %q must be one of %s"

	ConfigFieldBrowserName  = "Browser whose profiles are managed"
	ConfigFieldProfileRoots = "Directories searched for profiles (empty uses the browser defaults)"
	ConfigFieldRequiredDirs = "Subdirectories a directory must contain to count as a profile"
	ConfigFieldCatalogPath  = "Directory of the synced theme repository"
	ConfigFieldStrategy     = "How generated stylesheets are wired into userChrome.css and userContent.css"
	ConfigFieldUITheme      = "Color theme for interactive prompts"
	ConfigFieldUIColor      = "Colorize command output"

	ConfigStrategyAutoDescription      = "inject unless the stylesheets only hold older overwrite output"
	ConfigStrategyInjectDescription    = "add one @import line and leave user rules alone"
	ConfigStrategyOverwriteDescription = "replace the stylesheets with the generated imports"

	ConfigSetUnknownKeyFmt    = "unknown config key %q; run `zx config keys` to list them"
	ConfigSetInvalidBoolFmt   = "%s expects true or false, got %q"
	ConfigSetInvalidOptionFmt = "%s does not accept %q (options: %s)"

	// ConfigUse is the config command name.
	ConfigUse           = "config"
	ConfigShort         = "Show or edit zx configuration"
	ConfigPathUse       = "path"
	ConfigPathShort     = "Print the config file path"
	ConfigShowUse       = "show"
	ConfigShowShort     = "Print the effective configuration as TOML"
	ConfigSetUse        = "set <key> <value>"
	ConfigSetShort      = "Set one configuration key"
	ConfigSetDoneFmt    = "Set %s = %s in %s\n"
	ConfigKeysUse       = "keys"
	ConfigKeysShort     = "List configurable keys"
	ConfigKeyLineFmt    = "%-24s %-9s %s"
	ConfigKeyOptionsFmt = " [%s]"
)
