package messages

// Install messages for theme installation, stylesheets, and the profile manifest.
const (
	InstallSystemRequired  = "install system is required"
	InstallLocatorRequired = "profile locator is required"
	InstallInvalidThemeID  = "theme id is not a safe directory name"

	InstallNotInstalledFmt = "theme %q is not installed in %s"
	InstallConflictFmt     = "%s has stylesheets that zx does not manage: %s"
	InstallAssetDeployFmt  = "deploy assets for %s at %s: %v"
	InstallCreateDirFmt    = "create %s: %w"
	InstallReadFileFmt     = "read %s: %w"

	InstallPlanStylesheetsFmt = "plan stylesheets for %s: %w"
	InstallWriteStylesheetFmt = "write stylesheet %s: %w"

	InstallAlreadyEnabledFmt       = "Warning: %s is already enabled"
	InstallAlreadyDisabledFmt      = "Warning: %s is already disabled"
	InstallNothingToApplyFmt       = "Warning: %s has no installed themes; nothing to apply"
	InstallUnsafeAssetPathFmt      = "Warning: %s lists unsafe asset path %q; skipping it"
	InstallMissingAssetFileFmt     = "Warning: %s: asset file %s is missing; skipping it"
	InstallMissingAssetFolderFmt   = "Warning: %s: asset folder %s is missing; skipping it"
	InstallAssetFolderNotDirFmt    = "Warning: %s: asset folder %s is not a directory; skipping it"
	InstallCopyAssetFailedFmt      = "Warning: failed to copy %s: %v"
	InstallAssetsAlreadyRemovedFmt = "Warning: %s: asset folder %s was already removed"
	InstallPreviousAssetsLeftFmt   = "Warning: %s: could not remove previous assets at %s: %v"

	InstallSkipReasonAbsent = "already absent"
	InstallSkipReasonNotDir = "source is not a directory"

	// InstallDiffTruncatedFmt ends a preview that hit the line limit.
	InstallDiffTruncatedFmt = "... (truncated to %d lines; rerun with --diff-lines <n> to see more)"

	StylesheetUnknownStrategyFmt    = "unknown stylesheet strategy %q (expected auto, inject, or overwrite)"
	StylesheetUnresolvedStrategyFmt = "stylesheet strategy %q must be resolved before writing"

	ManifestSystemRequired   = "manifest system is required"
	ManifestReadFmt          = "read manifest %s: %w"
	ManifestWriteFmt         = "write manifest %s: %w"
	ManifestCreateDirFmt     = "create manifest directory %s: %w"
	ManifestEncodeFmt        = "encode manifest: %w"
	ManifestCorruptFmt       = "manifest %s is corrupt: %v"
	ManifestNotObject        = "manifest must be a JSON object"
	ManifestRecordNotObject  = "record must be a JSON object"
	ManifestTrailingData     = "unexpected data after the manifest object"
	ManifestUnexpectedKeyFmt = "unexpected manifest key %v"
	ManifestThemeFmt         = "%s: %w"
	ManifestFieldFmt         = "field %s: %w"
)
