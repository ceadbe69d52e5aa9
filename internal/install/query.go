package install

import (
	"github.com/zen-explorer/zen-explorer/internal/manifest"
	"github.com/zen-explorer/zen-explorer/internal/update"
)

func (m *Manager) checker() update.Checker {
	return update.Checker{Catalog: m.catalog}
}

func (m *Manager) loadManifest(profileRef string) (*manifest.Manifest, bool, error) {
	prof, err := m.locator.Resolve(profileRef)
	if err != nil {
		return nil, false, err
	}
	return manifest.Load(m.sys, prof.Paths().ManifestPath)
}

// Installed lists the profile's installed themes in manifest order.
func (m *Manager) Installed(profileRef string) ([]manifest.Entry, error) {
	current, _, err := m.loadManifest(profileRef)
	if err != nil {
		return nil, err
	}
	return current.Entries(), nil
}

// IsInstalled reports whether themeID is in the profile manifest.
func (m *Manager) IsInstalled(profileRef string, themeID string) (bool, error) {
	current, _, err := m.loadManifest(profileRef)
	if err != nil {
		return false, err
	}
	return current.Contains(themeID), nil
}

// IsEnabled reports whether an installed theme contributes imports.
func (m *Manager) IsEnabled(profileRef string, themeID string) (bool, error) {
	record, err := m.installedRecord(profileRef, themeID)
	if err != nil {
		return false, err
	}
	return record.IsEnabled(), nil
}

// IsUpdateable reports whether the catalog has a newer release of an installed theme.
func (m *Manager) IsUpdateable(profileRef string, themeID string) (bool, error) {
	record, err := m.installedRecord(profileRef, themeID)
	if err != nil {
		return false, err
	}
	return m.checker().Updateable(themeID, record), nil
}

// AvailableUpdates lists installed themes with a newer catalog release.
func (m *Manager) AvailableUpdates(profileRef string) ([]update.Update, error) {
	current, _, err := m.loadManifest(profileRef)
	if err != nil {
		return nil, err
	}
	return m.checker().Available(current), nil
}

func (m *Manager) installedRecord(profileRef string, themeID string) (manifest.Record, error) {
	prof, err := m.locator.Resolve(profileRef)
	if err != nil {
		return manifest.Record{}, err
	}
	current, _, err := manifest.Load(m.sys, prof.Paths().ManifestPath)
	if err != nil {
		return manifest.Record{}, err
	}
	record, ok := current.Get(themeID)
	if !ok {
		return manifest.Record{}, &NotInstalledError{Profile: prof.String(), ThemeID: themeID}
	}
	return record, nil
}
