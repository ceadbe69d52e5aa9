package profile

import "path/filepath"

const (
	// ChromeDirName is the profile subdirectory the browser reads override stylesheets from.
	ChromeDirName = "chrome"
	// ManifestFileName is the install manifest file under the chrome directory.
	ManifestFileName = "zen-explorer.json"
	// AssetDirName is the chrome subdirectory holding one directory per installed theme.
	AssetDirName = "zen-explorer-themes"
	// UserChromeFileName is the browser's user-authored chrome stylesheet.
	UserChromeFileName = "userChrome.css"
	// UserContentFileName is the browser's user-authored content stylesheet.
	UserContentFileName = "userContent.css"
	// GeneratedChromeFileName is the tool-owned composed chrome stylesheet.
	GeneratedChromeFileName = "zen-explorer-chrome.css"
	// GeneratedContentFileName is the tool-owned composed content stylesheet.
	GeneratedContentFileName = "zen-explorer-content.css"
)

// Paths holds the resolved customization paths of one profile.
type Paths struct {
	Dir              string
	ChromeDir        string
	ManifestPath     string
	AssetRoot        string
	UserChrome       string
	UserContent      string
	GeneratedChrome  string
	GeneratedContent string
}

// DefaultPaths returns the customization paths for a profile directory.
func DefaultPaths(dir string) Paths {
	chrome := filepath.Join(dir, ChromeDirName)
	return Paths{
		Dir:              dir,
		ChromeDir:        chrome,
		ManifestPath:     filepath.Join(chrome, ManifestFileName),
		AssetRoot:        filepath.Join(chrome, AssetDirName),
		UserChrome:       filepath.Join(chrome, UserChromeFileName),
		UserContent:      filepath.Join(chrome, UserContentFileName),
		GeneratedChrome:  filepath.Join(chrome, GeneratedChromeFileName),
		GeneratedContent: filepath.Join(chrome, GeneratedContentFileName),
	}
}

// ThemeDir returns the per-theme asset directory.
func (p Paths) ThemeDir(themeID string) string {
	return filepath.Join(p.AssetRoot, themeID)
}
