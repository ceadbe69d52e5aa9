// Package install tracks which themes are installed into a browser profile
// and keeps the profile's assets and stylesheets in line with that state.
package install

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zen-explorer/zen-explorer/internal/catalog"
	"github.com/zen-explorer/zen-explorer/internal/fileop"
	"github.com/zen-explorer/zen-explorer/internal/manifest"
	"github.com/zen-explorer/zen-explorer/internal/messages"
	"github.com/zen-explorer/zen-explorer/internal/profile"
	"github.com/zen-explorer/zen-explorer/internal/stylesheet"
	"github.com/zen-explorer/zen-explorer/internal/update"
)

// Operation names a manager call in a Result.
type Operation string

const (
	OpInstall   Operation = "install"
	OpUninstall Operation = "uninstall"
	OpUpdate    Operation = "update"
	OpEnable    Operation = "enable"
	OpDisable   Operation = "disable"
	OpApply     Operation = "apply"
	OpMigrate   Operation = "migrate"
)

// Config wires a Manager to its collaborators.
type Config struct {
	System   System
	Catalog  catalog.Source
	Locator  profile.Locator
	Strategy stylesheet.Strategy
	// WarnWriter receives one line per warning. Defaults to stderr.
	WarnWriter   io.Writer
	DiffMaxLines int
}

// Manager orchestrates install state changes for browser profiles.
// It assumes a single caller per profile at a time.
type Manager struct {
	sys          System
	catalog      catalog.Source
	locator      profile.Locator
	strategy     stylesheet.Strategy
	warnWriter   io.Writer
	diffMaxLines int
}

// New validates cfg and returns a Manager.
func New(cfg Config) (*Manager, error) {
	if cfg.System == nil {
		return nil, errors.New(messages.InstallSystemRequired)
	}
	if cfg.Locator == nil {
		return nil, errors.New(messages.InstallLocatorRequired)
	}
	strategy, err := stylesheet.ParseStrategy(string(cfg.Strategy))
	if err != nil {
		return nil, err
	}
	warnWriter := cfg.WarnWriter
	if warnWriter == nil {
		warnWriter = os.Stderr
	}
	return &Manager{
		sys:          cfg.System,
		catalog:      cfg.Catalog,
		locator:      cfg.Locator,
		strategy:     strategy,
		warnWriter:   warnWriter,
		diffMaxLines: normalizeDiffMaxLines(cfg.DiffMaxLines),
	}, nil
}

// Options controls a mutating call.
type Options struct {
	// DryRun computes and records every operation without touching disk.
	DryRun bool
	// Diff attaches unified diffs of stylesheet writes to the result.
	Diff bool
}

// InstallOptions controls Install.
type InstallOptions struct {
	// BypassConflict installs even when unmanaged user stylesheets exist.
	BypassConflict bool
	DryRun         bool
	Diff           bool
}

// Result describes the outcome of a mutating call. In a dry run it is the
// plan a real call would carry out next.
type Result struct {
	Operation   Operation           `json:"operation"`
	Profile     string              `json:"profile"`
	ProfileDir  string              `json:"profile_dir"`
	ThemeIDs    []string            `json:"themes,omitempty"`
	DryRun      bool                `json:"dry_run"`
	Manifest    *manifest.Manifest  `json:"manifest"`
	Stylesheets stylesheet.Composed `json:"stylesheets"`
	Strategy    stylesheet.Strategy `json:"strategy,omitempty"`
	Ops         []fileop.Op         `json:"ops"`
	Warnings    []string            `json:"warnings,omitempty"`
	Previews    []DiffPreview       `json:"previews,omitempty"`
	Migrated    []Migration         `json:"migrated,omitempty"`
}

// Changed reports whether the call performed or planned any mutation.
func (r *Result) Changed() bool {
	for _, op := range r.Ops {
		if op.Kind != fileop.KindSkip {
			return true
		}
	}
	return false
}

// session carries the state of one manager call.
type session struct {
	mgr            *Manager
	opts           Options
	profile        profile.Profile
	paths          profile.Paths
	exec           *fileop.Executor
	current        *manifest.Manifest
	manifestExists bool
	result         *Result
}

func (m *Manager) begin(op Operation, profileRef string, opts Options) (*session, error) {
	prof, err := m.locator.Resolve(profileRef)
	if err != nil {
		return nil, err
	}
	paths := prof.Paths()
	current, exists, err := manifest.Load(m.sys, paths.ManifestPath)
	if err != nil {
		return nil, err
	}
	return &session{
		mgr:            m,
		opts:           opts,
		profile:        prof,
		paths:          paths,
		exec:           fileop.NewExecutor(m.sys, opts.DryRun),
		current:        current,
		manifestExists: exists,
		result: &Result{
			Operation:  op,
			Profile:    prof.String(),
			ProfileDir: prof.Dir,
			DryRun:     opts.DryRun,
		},
	}, nil
}

func (s *session) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.result.Warnings = append(s.result.Warnings, msg)
	_, _ = fmt.Fprintln(s.mgr.warnWriter, msg)
}

// requireInstalled returns the record for themeID or a *NotInstalledError.
func (s *session) requireInstalled(themeID string) (manifest.Record, error) {
	record, ok := s.current.Get(themeID)
	if !s.manifestExists || !ok {
		return manifest.Record{}, &NotInstalledError{Profile: s.result.Profile, ThemeID: themeID}
	}
	return record, nil
}

// commit persists next through the executor. It is the only manifest write.
func (s *session) commit(next *manifest.Manifest) error {
	if err := manifest.Save(s.exec, s.paths.ManifestPath, next); err != nil {
		return err
	}
	s.current = next
	return nil
}

func (s *session) finish() *Result {
	s.result.Manifest = s.current
	s.result.Ops = s.exec.Ops()
	return s.result
}

func (s *session) readText(path string) (string, bool, error) {
	data, err := s.mgr.sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(messages.InstallReadFileFmt, path, err)
	}
	return string(data), true, nil
}

// Install adds themeID to the profile, or reinstalls it, then applies stylesheets.
func (m *Manager) Install(profileRef string, themeID string, opts InstallOptions) (*Result, error) {
	return m.InstallAll(profileRef, []string{themeID}, opts)
}

// InstallAll installs each theme in order within one session and applies
// stylesheets once, so a dry run plans the whole batch. Unmanaged stylesheets
// are only checked before the first theme. When a later theme fails, the
// stylesheets are still brought in line with the themes already committed.
func (m *Manager) InstallAll(profileRef string, ids []string, opts InstallOptions) (*Result, error) {
	s, err := m.begin(OpInstall, profileRef, Options{DryRun: opts.DryRun, Diff: opts.Diff})
	if err != nil {
		return nil, err
	}
	s.result.ThemeIDs = append([]string(nil), ids...)
	if len(ids) == 0 {
		s.result.Stylesheets = stylesheet.Compose(s.current)
		return s.finish(), nil
	}
	for i, themeID := range ids {
		if err := s.install(themeID, opts.BypassConflict || i > 0); err != nil {
			if i > 0 {
				if applyErr := s.apply(); applyErr != nil {
					return nil, errors.Join(err, applyErr)
				}
			}
			return nil, err
		}
	}
	if err := s.apply(); err != nil {
		return nil, err
	}
	return s.finish(), nil
}

// Uninstall removes themeID's assets and manifest entry, then applies stylesheets.
func (m *Manager) Uninstall(profileRef string, themeID string, opts Options) (*Result, error) {
	s, err := m.begin(OpUninstall, profileRef, opts)
	if err != nil {
		return nil, err
	}
	s.result.ThemeIDs = []string{themeID}
	if _, err := s.requireInstalled(themeID); err != nil {
		return nil, err
	}
	if err := s.removeAssets(themeID); err != nil {
		return nil, err
	}
	next := s.current.Clone()
	next.Remove(themeID)
	if err := s.commit(next); err != nil {
		return nil, err
	}
	if err := s.apply(); err != nil {
		return nil, err
	}
	return s.finish(), nil
}

// Update reinstalls an installed theme from the catalog without touching
// stylesheets. Callers batch updates and call Apply once afterwards.
func (m *Manager) Update(profileRef string, themeID string, opts Options) (*Result, error) {
	s, err := m.begin(OpUpdate, profileRef, opts)
	if err != nil {
		return nil, err
	}
	s.result.ThemeIDs = []string{themeID}
	if err := s.update(themeID); err != nil {
		return nil, err
	}
	s.result.Stylesheets = stylesheet.Compose(s.current)
	return s.finish(), nil
}

// UpdateAll updates each theme in order and applies stylesheets once at the end.
// An empty ids list updates every theme with a newer catalog release.
// Progress, when non-nil, is called after each theme.
func (m *Manager) UpdateAll(profileRef string, ids []string, opts Options, progress func(themeID string)) (*Result, error) {
	s, err := m.begin(OpUpdate, profileRef, opts)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		ids = update.IDs(m.checker().Available(s.current))
	}
	s.result.ThemeIDs = append([]string(nil), ids...)
	for _, id := range ids {
		if err := s.update(id); err != nil {
			return nil, err
		}
		if progress != nil {
			progress(id)
		}
	}
	if len(ids) > 0 {
		if err := s.apply(); err != nil {
			return nil, err
		}
	} else {
		s.result.Stylesheets = stylesheet.Compose(s.current)
	}
	return s.finish(), nil
}

func (s *session) update(themeID string) error {
	if _, err := s.requireInstalled(themeID); err != nil {
		return err
	}
	return s.install(themeID, true)
}

// Enable turns an installed theme's imports back on.
func (m *Manager) Enable(profileRef string, themeID string, opts Options) (*Result, error) {
	return m.setEnabled(OpEnable, profileRef, themeID, true, opts)
}

// Disable removes an installed theme's imports while keeping it installed.
func (m *Manager) Disable(profileRef string, themeID string, opts Options) (*Result, error) {
	return m.setEnabled(OpDisable, profileRef, themeID, false, opts)
}

func (m *Manager) setEnabled(op Operation, profileRef string, themeID string, enabled bool, opts Options) (*Result, error) {
	s, err := m.begin(op, profileRef, opts)
	if err != nil {
		return nil, err
	}
	s.result.ThemeIDs = []string{themeID}
	record, err := s.requireInstalled(themeID)
	if err != nil {
		return nil, err
	}
	if record.IsEnabled() == enabled && !record.NeedsMigration() {
		if enabled {
			s.warnf(messages.InstallAlreadyEnabledFmt, themeID)
		} else {
			s.warnf(messages.InstallAlreadyDisabledFmt, themeID)
		}
		s.result.Stylesheets = stylesheet.Compose(s.current)
		return s.finish(), nil
	}
	next := s.current.Clone()
	next.Set(themeID, record.WithEnabled(enabled))
	if err := s.commit(next); err != nil {
		return nil, err
	}
	if err := s.apply(); err != nil {
		return nil, err
	}
	return s.finish(), nil
}

// Apply regenerates and reconciles the profile's stylesheets from its manifest.
func (m *Manager) Apply(profileRef string, opts Options) (*Result, error) {
	s, err := m.begin(OpApply, profileRef, opts)
	if err != nil {
		return nil, err
	}
	if !s.manifestExists {
		s.warnf(messages.InstallNothingToApplyFmt, s.result.Profile)
		return s.finish(), nil
	}
	if err := s.apply(); err != nil {
		return nil, err
	}
	return s.finish(), nil
}
