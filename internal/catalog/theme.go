// Package catalog exposes the synced theme repository as read-only ThemeRecords.
package catalog

import (
	"fmt"
	"time"

	"github.com/zen-explorer/zen-explorer/internal/messages"
)

// ThemeType classifies what a theme customizes.
type ThemeType int

const (
	// ThemeTypeBundle customizes both the browser UI and page content.
	ThemeTypeBundle ThemeType = iota
	// ThemeTypeChrome customizes the browser UI only.
	ThemeTypeChrome
	// ThemeTypeContent customizes page content only.
	ThemeTypeContent
)

// String returns the display label for the theme type.
func (t ThemeType) String() string {
	switch t {
	case ThemeTypeBundle:
		return "bundle"
	case ThemeTypeChrome:
		return "theme"
	case ThemeTypeContent:
		return "page"
	default:
		return "unknown"
	}
}

// ThemeRecord is an immutable view of one catalog theme and its installable payload.
type ThemeRecord struct {
	ID             string
	Name           string
	Author         string
	AuthorURL      string
	Homepage       string
	Description    string
	Type           ThemeType
	Tags           []string
	Version        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ChromeTargets  []string
	ContentTargets []string
	Files          []string
	Folders        []string
}

// UpdatedAtUnix returns UpdatedAt as fractional unix seconds, the unit stored in manifests.
func (t ThemeRecord) UpdatedAtUnix() float64 {
	return float64(t.UpdatedAt.UnixNano()) / float64(time.Second)
}

// Source provides theme records and the on-disk location of their assets.
type Source interface {
	Theme(id string) (ThemeRecord, bool)
	AssetDir(id string) string
}

// ThemeNotFoundError reports a theme id that the catalog does not know.
type ThemeNotFoundError struct {
	ID string
}

func (e *ThemeNotFoundError) Error() string {
	return fmt.Sprintf(messages.ThemeNotFoundFmt, e.ID)
}

// Lookup returns the theme for id or a *ThemeNotFoundError.
func Lookup(src Source, id string) (ThemeRecord, error) {
	if src == nil {
		return ThemeRecord{}, &ThemeNotFoundError{ID: id}
	}
	theme, ok := src.Theme(id)
	if !ok {
		return ThemeRecord{}, &ThemeNotFoundError{ID: id}
	}
	return theme, nil
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
