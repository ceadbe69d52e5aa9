// Package update compares installed theme records against the catalog.
package update

import (
	"time"

	"github.com/zen-explorer/zen-explorer/internal/catalog"
	"github.com/zen-explorer/zen-explorer/internal/manifest"
)

// Update describes one installed theme with a newer catalog release.
type Update struct {
	ThemeID          string    `json:"theme_id"`
	InstalledVersion string    `json:"installed_version"`
	LatestVersion    string    `json:"latest_version"`
	InstalledAt      time.Time `json:"installed_at"`
	LatestAt         time.Time `json:"latest_at"`
}

// Checker reads catalog data to find outdated installs. It never mutates state.
type Checker struct {
	Catalog catalog.Source
}

// Updateable reports whether theme was published after record was installed.
// Equal timestamps are not an update, so installing or updating resets it.
func Updateable(record manifest.Record, theme catalog.ThemeRecord) bool {
	return theme.UpdatedAtUnix() > record.UpdatedAt
}

// Updateable looks up themeID in the catalog and compares it with record.
// Themes missing from the catalog are never updateable.
func (c Checker) Updateable(themeID string, record manifest.Record) bool {
	if c.Catalog == nil {
		return false
	}
	theme, ok := c.Catalog.Theme(themeID)
	if !ok {
		return false
	}
	return Updateable(record, theme)
}

// Available returns every updateable theme in m, in manifest order.
func (c Checker) Available(m *manifest.Manifest) []Update {
	if c.Catalog == nil || m == nil {
		return nil
	}
	var updates []Update
	for _, entry := range m.Entries() {
		theme, ok := c.Catalog.Theme(entry.ID)
		if !ok || !Updateable(entry.Record, theme) {
			continue
		}
		updates = append(updates, Update{
			ThemeID:          entry.ID,
			InstalledVersion: entry.Record.Version,
			LatestVersion:    theme.Version,
			InstalledAt:      unixTime(entry.Record.UpdatedAt),
			LatestAt:         theme.UpdatedAt,
		})
	}
	return updates
}

// IDs returns the theme ids of updates.
func IDs(updates []Update) []string {
	ids := make([]string, 0, len(updates))
	for _, u := range updates {
		ids = append(ids, u.ThemeID)
	}
	return ids
}

func unixTime(seconds float64) time.Time {
	return time.Unix(0, int64(seconds*float64(time.Second))).UTC()
}
