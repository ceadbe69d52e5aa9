package update

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zen-explorer/zen-explorer/internal/catalog"
	"github.com/zen-explorer/zen-explorer/internal/manifest"
)

type staticCatalog map[string]catalog.ThemeRecord

func (c staticCatalog) Theme(id string) (catalog.ThemeRecord, bool) {
	theme, ok := c[id]
	return theme, ok
}

func (staticCatalog) AssetDir(id string) string { return "/catalog/themes/" + id }

func TestUpdateableStrictlyGreater(t *testing.T) {
	published := time.Unix(1700000000, 0)
	theme := catalog.ThemeRecord{ID: "aurora", UpdatedAt: published}

	if Updateable(manifest.Record{UpdatedAt: 1700000000}, theme) {
		t.Fatalf("equal timestamps must not be updateable")
	}
	if !Updateable(manifest.Record{UpdatedAt: 1699999999.5}, theme) {
		t.Fatalf("older install must be updateable")
	}
	if Updateable(manifest.Record{UpdatedAt: 1700000001}, theme) {
		t.Fatalf("newer install must not be updateable")
	}
	if !Updateable(manifest.Record{UpdatedAt: theme.UpdatedAtUnix() - 1}, theme) {
		t.Fatalf("expected update for stale record")
	}
}

func TestAvailableKeepsManifestOrderAndSkipsUnknownThemes(t *testing.T) {
	source := staticCatalog{
		"frost":  {ID: "frost", Version: "2.0", UpdatedAt: time.Unix(200, 0)},
		"aurora": {ID: "aurora", Version: "1.1", UpdatedAt: time.Unix(300, 0)},
		"zephyr": {ID: "zephyr", Version: "1.0", UpdatedAt: time.Unix(100, 0)},
	}
	m := manifest.New()
	m.Set("frost", manifest.Record{Version: "1.0", UpdatedAt: 150})
	m.Set("gone", manifest.Record{Version: "1.0", UpdatedAt: 1})
	m.Set("zephyr", manifest.Record{Version: "1.0", UpdatedAt: 100})
	m.Set("aurora", manifest.Record{Version: "1.0", UpdatedAt: 250})

	checker := Checker{Catalog: source}
	updates := checker.Available(m)

	require.Equal(t, []string{"frost", "aurora"}, IDs(updates))
	require.Equal(t, Update{
		ThemeID:          "frost",
		InstalledVersion: "1.0",
		LatestVersion:    "2.0",
		InstalledAt:      time.Unix(150, 0).UTC(),
		LatestAt:         time.Unix(200, 0),
	}, updates[0])

	require.True(t, checker.Updateable("aurora", manifest.Record{UpdatedAt: 250}))
	require.False(t, checker.Updateable("gone", manifest.Record{UpdatedAt: 1}))
}

func TestNilInputs(t *testing.T) {
	require.Nil(t, Checker{}.Available(manifest.New()))
	require.Nil(t, Checker{Catalog: staticCatalog{}}.Available(nil))
	require.False(t, Checker{}.Updateable("aurora", manifest.Record{}))
	require.Empty(t, IDs(nil))
}
