package messages

// Catalog, profile, file operation, and lock messages.
const (
	// CatalogRepositoryMissing is the sentinel text when themes.json is absent.
	CatalogRepositoryMissing    = "theme repository not found"
	CatalogFSRequired           = "catalog filesystem is required"
	CatalogRootRequired         = "catalog root path is required"
	CatalogReadIndexFmt         = "read theme index %s: %w"
	CatalogDecodeIndexFmt       = "decode theme index %s: %w"
	CatalogReadInstallDataFmt   = "read install data for %s: %w"
	CatalogDecodeInstallDataFmt = "decode install data for %s: %w"
	CatalogReadReadmeFmt        = "read README for %s: %w"

	ThemeNotFoundFmt = "theme %q not found in the repository"

	ProfileNotFoundFmt = "profile %q not found"
	ProfileReadRootFmt = "read profile root %s: %w"

	FileOpSourceMissing  = "source file does not exist"
	FileOpSourceIsDirFmt = "%s is a directory, not a file"

	LockCreateDirFmt = "create lock directory %s: %w"
	LockOpenFmt      = "open lock %s: %w"
	LockAcquireFmt   = "lock %s: %w"
	LockTimeoutFmt   = "timed out after %s waiting for another zx process to finish"
)
