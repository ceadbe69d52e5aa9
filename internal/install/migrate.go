package install

import (
	"strings"

	"github.com/zen-explorer/zen-explorer/internal/stylesheet"
)

// Migration records the enabled state inferred for one legacy record.
type Migration struct {
	ThemeID string `json:"theme_id"`
	Enabled bool   `json:"enabled"`
}

// MigrateManifest sets the enabled field of records written before it
// existed. A record is enabled when its imports appear in the stylesheets the
// browser currently loads. The manifest is saved once, and only if a record
// changed, so a second run is a no-op.
func (m *Manager) MigrateManifest(profileRef string, opts Options) (*Result, error) {
	s, err := m.begin(OpMigrate, profileRef, opts)
	if err != nil {
		return nil, err
	}
	if !s.manifestExists {
		return s.finish(), nil
	}
	applied, err := s.appliedStylesheets()
	if err != nil {
		return nil, err
	}

	next := s.current.Clone()
	for _, entry := range next.Entries() {
		if !entry.Record.NeedsMigration() {
			continue
		}
		enabled := stylesheet.ContainsThemeImport(applied, entry.ID)
		next.Set(entry.ID, entry.Record.WithEnabled(enabled))
		s.result.ThemeIDs = append(s.result.ThemeIDs, entry.ID)
		s.result.Migrated = append(s.result.Migrated, Migration{ThemeID: entry.ID, Enabled: enabled})
	}
	if len(s.result.Migrated) > 0 {
		if err := s.commit(next); err != nil {
			return nil, err
		}
	}
	s.result.Stylesheets = stylesheet.Compose(s.current)
	return s.finish(), nil
}

// appliedStylesheets concatenates every stylesheet that can carry theme imports.
func (s *session) appliedStylesheets() (string, error) {
	var b strings.Builder
	for _, path := range []string{s.paths.UserChrome, s.paths.UserContent, s.paths.GeneratedChrome, s.paths.GeneratedContent} {
		content, _, err := s.readText(path)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
