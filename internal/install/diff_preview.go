package install

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/zen-explorer/zen-explorer/internal/messages"
	"github.com/zen-explorer/zen-explorer/internal/stylesheet"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown per file.
const DefaultDiffMaxLines = 40

// DiffPreview is a per-file unified diff of a planned stylesheet write.
type DiffPreview struct {
	Path        string               `json:"path"`
	Kind        stylesheet.WriteKind `json:"kind"`
	UnifiedDiff string               `json:"diff"`
	Truncated   bool                 `json:"truncated"`
}

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

func (s *session) previewWrites(writes []stylesheet.Write) error {
	for _, w := range writes {
		current, _, err := s.readText(w.Path)
		if err != nil {
			return err
		}
		name := s.displayPath(w.Path)
		rendered, truncated := renderTruncatedUnifiedDiff(name+" (current)", name+" (planned)", current, string(w.Data), s.mgr.diffMaxLines)
		if rendered == "" {
			continue
		}
		s.result.Previews = append(s.result.Previews, DiffPreview{
			Path:        name,
			Kind:        w.Kind,
			UnifiedDiff: rendered,
			Truncated:   truncated,
		})
	}
	return nil
}

func (s *session) displayPath(path string) string {
	rel, err := filepath.Rel(s.profile.Dir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := append(lines[:limit:limit], fmt.Sprintf(messages.InstallDiffTruncatedFmt, limit))
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
