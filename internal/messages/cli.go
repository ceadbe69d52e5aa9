package messages

// CLI messages for user-facing commands, flags, and output.
const (
	// RootUse is the CLI command name.
	RootUse = "zx"
	// RootShort is the short description for the root command.
	RootShort       = "Install and manage browser profile themes"
	RootLong        = "zx installs userChrome/userContent themes from a synced theme repository into browser profiles.\nEvery mutation can be previewed with --dry-run and --diff before anything is written."
	RootFlagNoColor = "Disable colored output"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
	VersionUse       = "version"
	VersionShort     = "Print version information"

	// ErrorPrefixFmt formats a fatal error for stderr.
	ErrorPrefixFmt = "Error: %v"

	HintConflictForce      = "Hint: rerun with --force to install anyway; existing stylesheets are backed up first."
	HintCorruptManifestFmt = "Hint: fix or remove %s, then rerun."
	HintListProfiles       = "Hint: run `zx profiles` to see the profiles that were found."
	HintCatalogMissing     = "Hint: sync the theme repository or set catalog.path with `zx config set catalog.path <dir>`."

	FlagDryRun    = "Show the planned file operations without changing anything"
	FlagDiff      = "Show unified diffs of the stylesheets that would change (implies --dry-run)"
	FlagDiffLines = "Maximum diff lines to show per file"
	FlagJSON      = "Print machine-readable JSON"

	// ProfilesUse is the profiles command name.
	ProfilesUse     = "profiles"
	ProfilesShort   = "List browser profiles found under the configured roots"
	ProfilesLineFmt = "%s\t%s\n"
	ProfilesNoneFmt = "No %s profiles found under: %s\n"

	// ThemesUse is the themes command name.
	ThemesUse     = "themes"
	ThemesShort   = "List themes available in the repository"
	ThemesLineFmt = "%-24s %-10s %-8s %s by %s\n"

	ThemeShowUse       = "show <theme-id>"
	ThemeShowShort     = "Show details and README for a theme"
	ThemeShowHeaderFmt = "%s (%s) v%s\n"
	ThemeShowFieldFmt  = "  %-9s %s\n"
	ThemeShowAuthor    = "Author:"
	ThemeShowHomepage  = "Homepage:"
	ThemeShowType      = "Type:"
	ThemeShowTags      = "Tags:"
	ThemeShowUpdated   = "Updated:"

	// ListUse is the list command name.
	ListUse             = "list <profile>"
	ListShort           = "List themes installed in a profile"
	ListLineFmt         = "%-24s %-10s %s"
	ListLegacySuffix    = " (legacy record)"
	ListUpdateSuffixFmt = " (update available: %s)"
	ListNoneFmt         = "No themes installed in %s\n"

	StateEnabled  = "enabled"
	StateDisabled = "disabled"

	// InstallUse is the install command name.
	InstallUse       = "install <profile> <theme-id>..."
	InstallShort     = "Install themes into a profile"
	InstallFlagForce = "Install even when the profile has stylesheets zx does not manage"

	InstallConflictPromptFmt   = "%s has stylesheets zx does not manage. Back them up and install anyway?"
	InstallConflictAffirmative = "Install"
	InstallConflictNegative    = "Cancel"
	InstallCancelled           = "install cancelled"

	UninstallUse   = "uninstall <profile> <theme-id>"
	UninstallShort = "Remove a theme and its assets from a profile"

	UpdateUse                 = "update <profile> [theme-id...]"
	UpdateShort               = "Update installed themes from the repository"
	UpdateFlagAll             = "Update every theme that has a newer version"
	UpdateAllWithThemes       = "--all cannot be combined with theme ids"
	UpdateNeedsThemes         = "name at least one theme id or pass --all"
	UpdateProgressDescription = "Updating themes"
	UpdateProgressThemeFmt    = "Updating %s"

	UpdatesUse     = "updates <profile>"
	UpdatesShort   = "List installed themes that have newer versions"
	UpdatesLineFmt = "%-24s %s -> %s (%s)\n"
	UpdatesNoneFmt = "No updates available for %s\n"

	EnableUse    = "enable <profile> <theme-id>"
	EnableShort  = "Enable an installed theme"
	DisableUse   = "disable <profile> <theme-id>"
	DisableShort = "Disable an installed theme without removing it"

	ApplyUse   = "apply <profile>"
	ApplyShort = "Regenerate the profile stylesheets from the manifest"

	MigrateUse   = "migrate <profile>"
	MigrateShort = "Give legacy manifest records an explicit enabled state"

	ResultDryRunHeaderFmt = "Dry run: %s on %s\n"
	ResultNoOps           = "  (no file operations)"
	ResultUnchangedFmt    = "No changes for %s\n"
	ResultInstalledFmt    = "Installed %s into %s"
	ResultUninstalledFmt  = "Uninstalled %s from %s"
	ResultUpdatedFmt      = "Updated %s in %s"
	ResultEnabledFmt      = "Enabled %s in %s"
	ResultDisabledFmt     = "Disabled %s in %s"
	ResultMigratedFmt     = "Migrated %s: %s"
	ResultAppliedFmt      = "Applied stylesheets to %s (%s strategy)"
)
