package stylesheet

import (
	"strings"

	"github.com/zen-explorer/zen-explorer/internal/profile"
)

// PreservedDelimiter separates the composed imports from user content kept by the overwrite strategy.
const PreservedDelimiter = "/* ==== zen-explorer: preserved user content ==== */"

// OverwriteWriter regenerates the user stylesheets directly. Lines the tool
// did not write are kept below PreservedDelimiter.
type OverwriteWriter struct{}

// Strategy returns StrategyOverwrite.
func (OverwriteWriter) Strategy() Strategy {
	return StrategyOverwrite
}

// Plan rewrites each user stylesheet whose content differs from the rendered result.
func (OverwriteWriter) Plan(paths profile.Paths, composed Composed, read ReadFunc) ([]Write, error) {
	pairs := []struct {
		path string
		body string
	}{
		{paths.UserChrome, composed.Chrome},
		{paths.UserContent, composed.Content},
	}
	var writes []Write
	for _, pair := range pairs {
		current, exists, err := read(pair.path)
		if err != nil {
			return nil, err
		}
		rendered := RenderOverwrite(pair.body, PreservedContent(current))
		if exists && rendered == current {
			continue
		}
		if !exists && rendered == "" {
			continue
		}
		writes = append(writes, Write{Kind: WriteOverwrite, Path: pair.path, Data: []byte(rendered), Perm: 0o644})
	}
	return writes, nil
}

// PreservedContent strips tool-written lines from content and returns what remains,
// without leading or trailing blank lines.
func PreservedContent(content string) string {
	var kept []string
	for _, line := range splitLines(content) {
		trimmed := strings.TrimSpace(line)
		if trimmed == PreservedDelimiter || IsThemeImport(line) || isAnyInjection(line) {
			continue
		}
		kept = append(kept, strings.TrimRight(line, " \t"))
	}
	for len(kept) > 0 && strings.TrimSpace(kept[0]) == "" {
		kept = kept[1:]
	}
	for len(kept) > 0 && strings.TrimSpace(kept[len(kept)-1]) == "" {
		kept = kept[:len(kept)-1]
	}
	return strings.Join(kept, "\n")
}

func isAnyInjection(line string) bool {
	return HasInjection(line, profile.GeneratedChromeFileName) || HasInjection(line, profile.GeneratedContentFileName)
}

// RenderOverwrite joins the composed block and preserved user content.
func RenderOverwrite(composed string, preserved string) string {
	if preserved == "" {
		return composed
	}
	var b strings.Builder
	if composed != "" {
		b.WriteString(composed)
		b.WriteString("\n\n")
	}
	b.WriteString(PreservedDelimiter)
	b.WriteString("\n")
	b.WriteString(preserved)
	b.WriteString("\n")
	return b.String()
}
