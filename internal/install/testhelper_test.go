package install

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zen-explorer/zen-explorer/internal/catalog"
	"github.com/zen-explorer/zen-explorer/internal/fileop"
	"github.com/zen-explorer/zen-explorer/internal/manifest"
	"github.com/zen-explorer/zen-explorer/internal/profile"
	"github.com/zen-explorer/zen-explorer/internal/stylesheet"
	"github.com/zen-explorer/zen-explorer/internal/testutil"
)

// faultSystem is a test helper that allows deterministic error injection for the
// manager System interface without chmod-based permission tricks.
type faultSystem struct {
	base       System
	statErrs   map[string]error
	readErrs   map[string]error
	walkErrs   map[string]error
	mkdirErrs  map[string]error
	removeErrs map[string]error
	renameErrs map[string]error
	writeErrs  map[string]error
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:       base,
		statErrs:   map[string]error{},
		readErrs:   map[string]error{},
		walkErrs:   map[string]error{},
		mkdirErrs:  map[string]error{},
		removeErrs: map[string]error{},
		renameErrs: map[string]error{},
		writeErrs:  map[string]error{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *faultSystem) ReadFile(name string) ([]byte, error) {
	if err, ok := f.readErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.ReadFile(name)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	if err, ok := f.mkdirErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.MkdirAll(path, perm)
}

func (f *faultSystem) RemoveAll(path string) error {
	if err, ok := f.removeErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.RemoveAll(path)
}

// Rename fails when either side of the move is registered.
func (f *faultSystem) Rename(oldpath string, newpath string) error {
	if err, ok := f.renameErrs[normalizePath(newpath)]; ok {
		return err
	}
	if err, ok := f.renameErrs[normalizePath(oldpath)]; ok {
		return err
	}
	return f.base.Rename(oldpath, newpath)
}

func (f *faultSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	if err, ok := f.walkErrs[normalizePath(root)]; ok {
		return err
	}
	return f.base.WalkDir(root, fn)
}

func (f *faultSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	if err, ok := f.writeErrs[normalizePath(filename)]; ok {
		return err
	}
	return f.base.WriteFileAtomic(filename, data, perm)
}

const testProfile = "abc123.default"

var (
	auroraTheme = testutil.Theme{
		ID:            "aurora",
		Name:          "Aurora",
		Version:       "1.0",
		UpdatedAt:     100,
		ChromeTargets: []string{"a.css"},
		Files:         []string{"a.css"},
		Folders:       []string{"img"},
		Assets: map[string]string{
			"a.css":        "#navigator-toolbox { color: teal; }",
			"img/logo.svg": "<svg/>",
		},
	}
	frostTheme = testutil.Theme{
		ID:             "frost",
		Name:           "Frost",
		Version:        "2.0",
		UpdatedAt:      200,
		ChromeTargets:  []string{"f.css"},
		ContentTargets: []string{"fc.css"},
		Files:          []string{"f.css", "fc.css"},
		Assets: map[string]string{
			"f.css":  "#sidebar { color: white; }",
			"fc.css": "body { background: white; }",
		},
	}
)

type fixture struct {
	t          *testing.T
	root       string
	catalogDir string
	profileDir string
	paths      profile.Paths
	warn       *bytes.Buffer
	sys        System
	strategy   stylesheet.Strategy
}

func newFixture(t *testing.T, themes ...testutil.Theme) *fixture {
	t.Helper()
	if len(themes) == 0 {
		themes = []testutil.Theme{auroraTheme, frostTheme}
	}
	root := t.TempDir()
	f := &fixture{
		t:          t,
		root:       root,
		catalogDir: filepath.Join(root, "catalog"),
		warn:       &bytes.Buffer{},
		sys:        fileop.RealSystem{},
	}
	testutil.WriteCatalog(t, f.catalogDir, themes...)
	f.profileDir = testutil.MakeProfile(t, filepath.Join(root, "profiles"), testProfile)
	f.paths = profile.DefaultPaths(f.profileDir)
	return f
}

func (f *fixture) manager() *Manager {
	f.t.Helper()
	repo, err := catalog.Open(f.catalogDir)
	require.NoError(f.t, err)
	mgr, err := New(Config{
		System:     f.sys,
		Catalog:    repo,
		Locator:    profile.DirLocator{Roots: []string{filepath.Dir(f.profileDir)}},
		Strategy:   f.strategy,
		WarnWriter: f.warn,
	})
	require.NoError(f.t, err)
	return mgr
}

func (f *fixture) loadManifest() *manifest.Manifest {
	f.t.Helper()
	m, _, err := manifest.Load(fileop.RealSystem{}, f.paths.ManifestPath)
	require.NoError(f.t, err)
	return m
}

func (f *fixture) read(path string) string {
	f.t.Helper()
	return testutil.ReadFile(f.t, path)
}

func (f *fixture) snapshot() map[string]string {
	f.t.Helper()
	return testutil.Snapshot(f.t, f.profileDir)
}
