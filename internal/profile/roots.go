package profile

import "path/filepath"

// Browser names supported by the default profile root table.
const (
	BrowserZen     = "zen"
	BrowserFirefox = "firefox"
)

var defaultRootTable = map[string]map[string][]string{
	BrowserZen: {
		"darwin":  {"Library/Application Support/zen/Profiles"},
		"windows": {"AppData/Roaming/zen/Profiles"},
		"linux":   {".var/app/app.zen_browser.zen/.zen", ".zen/Profiles", ".zen"},
	},
	BrowserFirefox: {
		"darwin":  {"Library/Application Support/Firefox/Profiles"},
		"windows": {"AppData/Roaming/Mozilla/Firefox/Profiles"},
		"linux":   {".var/app/org.mozilla.firefox/.mozilla/firefox", ".mozilla/firefox"},
	},
}

// DefaultRoots returns the well-known profile roots for browser on goos, joined onto home.
// Unknown operating systems fall back to the linux layout.
func DefaultRoots(browser string, goos string, home string) []string {
	byOS, ok := defaultRootTable[browser]
	if !ok {
		return nil
	}
	rels, ok := byOS[goos]
	if !ok {
		rels = byOS["linux"]
	}
	out := make([]string, 0, len(rels))
	for _, rel := range rels {
		out = append(out, filepath.Join(home, filepath.FromSlash(rel)))
	}
	return out
}

// SupportedBrowsers lists the browsers with default roots.
func SupportedBrowsers() []string {
	return []string{BrowserZen, BrowserFirefox}
}
