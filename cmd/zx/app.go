package main

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/zen-explorer/zen-explorer/internal/catalog"
	"github.com/zen-explorer/zen-explorer/internal/config"
	"github.com/zen-explorer/zen-explorer/internal/fileop"
	"github.com/zen-explorer/zen-explorer/internal/install"
	"github.com/zen-explorer/zen-explorer/internal/lock"
	"github.com/zen-explorer/zen-explorer/internal/profile"
	"github.com/zen-explorer/zen-explorer/internal/terminal"
)

const lockFileName = "zx.lock"

var (
	lookupEnv  = os.LookupEnv
	homeDir    = homedir.Dir
	isTerminal = terminal.IsInteractive
	goos       = runtime.GOOS
)

// app is the configuration shared by every command invocation.
type app struct {
	paths   config.Paths
	cfg     *config.Config
	locator profile.DirLocator
}

// loadApp resolves paths, loads config.toml, and applies the color setting.
func loadApp() (*app, error) {
	paths, err := config.DefaultPaths(lookupEnv)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(paths)
	if err != nil {
		return nil, err
	}
	home, err := homeDir()
	if err != nil {
		return nil, err
	}
	// ui.color can only turn color off; --no-color and NO_COLOR still win.
	if cfg.UI.Color != nil && !*cfg.UI.Color {
		color.NoColor = true
	}
	promptTheme = themeFor(cfg.UI.Theme)
	return &app{paths: paths, cfg: cfg, locator: cfg.Locator(goos, home)}, nil
}

func (a *app) openCatalog() (*catalog.Repository, error) {
	return catalog.Open(a.cfg.Catalog.Path)
}

// locked runs fn while holding the data directory lock so concurrent zx runs
// never interleave manifest writes. Plans run without the lock.
func (a *app) locked(dryRun bool, fn func() error) error {
	if dryRun {
		return fn()
	}
	return lock.With(filepath.Join(a.paths.DataDir, lockFileName), fn)
}

// managerOptions tunes manager construction per command.
type managerOptions struct {
	requireCatalog bool
	diffLines      int
}

// manager builds an install.Manager whose warnings go to the command's stderr.
// The catalog is attached when it opens; commands that read from it must set requireCatalog.
func (a *app) manager(cmd *cobra.Command, opts managerOptions) (*install.Manager, error) {
	var source catalog.Source
	repo, err := a.openCatalog()
	switch {
	case err == nil:
		source = repo
	case opts.requireCatalog:
		return nil, err
	}
	return install.New(install.Config{
		System:       fileop.RealSystem{},
		Catalog:      source,
		Locator:      a.locator,
		Strategy:     a.cfg.Strategy(),
		WarnWriter:   warnWriter(cmd.ErrOrStderr()),
		DiffMaxLines: opts.diffLines,
	})
}

// colorWriter colors each write, one manager warning per call.
type colorWriter struct {
	out   io.Writer
	color *color.Color
}

func (w colorWriter) Write(p []byte) (int, error) {
	if _, err := w.color.Fprint(w.out, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

func warnWriter(out io.Writer) io.Writer {
	return colorWriter{out: out, color: color.New(color.FgYellow)}
}
