package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor [profile...]"
	DoctorShort = "Check config, the theme repository, and profile health"

	DoctorCheckNameConfig      = "Config"
	DoctorCheckNameCatalog     = "Catalog"
	DoctorCheckNameProfiles    = "Profiles"
	DoctorCheckNameManifest    = "Manifest"
	DoctorCheckNameAssets      = "Assets"
	DoctorCheckNameMigration   = "Migration"
	DoctorCheckNameUpdates     = "Updates"
	DoctorCheckNameStylesheets = "Stylesheets"

	DoctorConfigLoadedFmt           = "Configuration loaded from %s"
	DoctorConfigLoadFailedFmt       = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend       = "Check config.toml for TOML syntax errors, or run `zx config path` to find it."
	DoctorConfigValidationRecommend = "Run `zx config keys` to see valid keys and values, then fix them with `zx config set`."

	DoctorCatalogLoadedFmt        = "%d themes available in %s"
	DoctorCatalogOpenFailedFmt    = "Failed to open the theme repository: %v"
	DoctorCatalogMissingRecommend = "Sync the theme repository, or point catalog.path at it with `zx config set catalog.path <dir>`."
	DoctorCatalogOpenRecommend    = "The theme repository looks damaged; re-sync it."

	DoctorNoProfilesFmt            = "No profiles found under: %s"
	DoctorNoProfilesRecommend      = "Set browser.profile_roots with `zx config set browser.profile_roots <dir>` if your browser keeps profiles elsewhere."
	DoctorProfileNotFoundRecommend = "Run `zx profiles` to see the profiles that were found."
	DoctorProfileHeaderFmt         = "\nProfile %s (%s)\n"

	DoctorManifestAbsentFmt           = "No themes installed in %s"
	DoctorManifestLoadedFmt           = "%s has %d installed themes"
	DoctorManifestFailedFmt           = "Cannot read the manifest of %s: %v"
	DoctorManifestCorruptRecommendFmt = "Fix or remove %s; the next install recreates it."
	DoctorManifestReadRecommend       = "Check the profile directory permissions."

	DoctorAssetsPresentFmt            = "Assets present for all %d themes"
	DoctorAssetsMissingFmt            = "Asset folders missing for: %s"
	DoctorAssetsMissingRecommendFmt   = "Reinstall the listed themes with `zx install --force %s <theme-id>`."
	DoctorThemesNotInCatalogFmt       = "Installed themes no longer in the repository: %s"
	DoctorThemesNotInCatalogRecommend = "These themes cannot be updated; uninstall them if they are no longer wanted."

	DoctorMigrationNotNeeded    = "All manifest records have an explicit enabled state"
	DoctorMigrationNeededFmt    = "Legacy records without an enabled state: %s"
	DoctorMigrationRecommendFmt = "Run `zx migrate %s`."

	DoctorUpToDate            = "All installed themes are up to date"
	DoctorUpdatesAvailableFmt = "Updates available: %s"
	DoctorUpdatesRecommendFmt = "Run `zx update --all %s`."
	DoctorUpdatesSkipped      = "Skipped: theme repository unavailable"

	DoctorStylesheetsCurrentFmt        = "Stylesheets match the manifest (%s strategy)"
	DoctorStylesheetsStaleFmt          = "Stylesheets out of date (%s strategy): %s"
	DoctorStylesheetsStaleRecommendFmt = "Run `zx apply %s`."
	DoctorStylesheetsFailedFmt         = "Cannot plan stylesheets: %v"
	DoctorStylesheetsFailedRecommend   = "Check that the chrome directory and its stylesheets are readable."

	// DoctorReadOnly is returned if a check ever tries to write.
	DoctorReadOnly = "doctor does not modify profiles"

	DoctorFailureSummary = "Some checks failed. Address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "All checks passed."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-11s %s\n"
	DoctorRecommendationPrefix = "       -> "
	DoctorRecommendationIndent = "          "
)
