// Package stylesheet renders override stylesheets from a manifest and
// reconciles them with the user's own userChrome.css and userContent.css.
package stylesheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zen-explorer/zen-explorer/internal/manifest"
	"github.com/zen-explorer/zen-explorer/internal/profile"
)

// Composed holds the rendered chrome and content stylesheet bodies.
type Composed struct {
	Chrome  string `json:"chrome"`
	Content string `json:"content"`
}

// ImportLine returns the import statement for one theme target.
// Paths are relative to the chrome directory, where the browser resolves them.
func ImportLine(themeID string, target string) string {
	return fmt.Sprintf(`@import url("%s/%s/%s");`, profile.AssetDirName, themeID, target)
}

// Compose renders both stylesheet bodies from m in manifest order.
// Disabled records contribute nothing. The result depends only on m.
func Compose(m *manifest.Manifest) Composed {
	var chrome, content []string
	for _, entry := range m.Entries() {
		if !entry.Record.IsEnabled() {
			continue
		}
		for _, target := range entry.Record.ChromeTargets {
			chrome = append(chrome, ImportLine(entry.ID, target))
		}
		for _, target := range entry.Record.ContentTargets {
			content = append(content, ImportLine(entry.ID, target))
		}
	}
	return Composed{
		Chrome:  strings.Join(chrome, "\n"),
		Content: strings.Join(content, "\n"),
	}
}

var themeImportPattern = regexp.MustCompile(`^\s*@import\b.*\b` + regexp.QuoteMeta(profile.AssetDirName) + `/[^/\s"')]+/`)

// IsThemeImport reports whether line is an import emitted by Compose.
func IsThemeImport(line string) bool {
	return themeImportPattern.MatchString(line)
}

// ContainsThemeImport reports whether content imports any asset of themeID.
func ContainsThemeImport(content string, themeID string) bool {
	marker := profile.AssetDirName + "/" + themeID + "/"
	for _, line := range splitLines(content) {
		if IsThemeImport(line) && strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
