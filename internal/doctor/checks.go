package doctor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zen-explorer/zen-explorer/internal/catalog"
	"github.com/zen-explorer/zen-explorer/internal/config"
	"github.com/zen-explorer/zen-explorer/internal/manifest"
	"github.com/zen-explorer/zen-explorer/internal/messages"
	"github.com/zen-explorer/zen-explorer/internal/profile"
	"github.com/zen-explorer/zen-explorer/internal/stylesheet"
	"github.com/zen-explorer/zen-explorer/internal/update"
)

var openCatalogFunc = catalog.Open

// CheckConfig validates that the configuration file can be loaded.
// It returns the defaults alongside a FAIL result when loading fails so the
// remaining checks can still run.
func CheckConfig(paths config.Paths) ([]Result, *config.Config) {
	cfg, err := config.Load(paths)
	if err != nil {
		recommend := messages.DoctorConfigLoadRecommend
		if errors.Is(err, config.ErrConfigValidation) {
			recommend = messages.DoctorConfigValidationRecommend
		}
		fallback := config.Default(paths)
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: recommend,
		}}, &fallback
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, paths.ConfigPath),
	}}, cfg
}

// CheckCatalog opens the theme repository at dir.
// A nil catalog is returned when the repository cannot be used.
func CheckCatalog(dir string) ([]Result, *catalog.Repository) {
	repo, err := openCatalogFunc(dir)
	if err != nil {
		recommend := messages.DoctorCatalogOpenRecommend
		if errors.Is(err, catalog.ErrRepositoryMissing) {
			recommend = messages.DoctorCatalogMissingRecommend
		}
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameCatalog,
			Message:        fmt.Sprintf(messages.DoctorCatalogOpenFailedFmt, err),
			Recommendation: recommend,
		}}, nil
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameCatalog,
		Message:   fmt.Sprintf(messages.DoctorCatalogLoadedFmt, len(repo.Themes()), dir),
	}}, repo
}

// CheckProfile inspects one profile: manifest, deployed assets, legacy records,
// available updates, and stylesheet wiring. source may be nil when the catalog
// is unavailable; update and catalog-membership checks are then skipped.
func CheckProfile(sys System, p profile.Profile, source catalog.Source, strategy stylesheet.Strategy) []Result {
	paths := p.Paths()
	results, current, exists := checkManifest(sys, p, paths)
	if current == nil {
		return results
	}
	if !exists || current.Len() == 0 {
		return results
	}
	results = append(results, checkAssets(sys, p, paths, current, source)...)
	results = append(results, checkMigration(p, current))
	results = append(results, checkUpdates(p, current, source))
	results = append(results, checkStylesheets(sys, p, paths, current, strategy))
	return results
}

func checkManifest(sys System, p profile.Profile, paths profile.Paths) ([]Result, *manifest.Manifest, bool) {
	current, exists, err := manifest.Load(readOnlySystem{sys}, paths.ManifestPath)
	if err != nil {
		var corrupt *manifest.CorruptError
		recommend := messages.DoctorManifestReadRecommend
		if errors.As(err, &corrupt) {
			recommend = fmt.Sprintf(messages.DoctorManifestCorruptRecommendFmt, paths.ManifestPath)
		}
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestFailedFmt, p, err),
			Recommendation: recommend,
		}}, nil, false
	}
	if !exists {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameManifest,
			Message:   fmt.Sprintf(messages.DoctorManifestAbsentFmt, p),
		}}, current, false
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameManifest,
		Message:   fmt.Sprintf(messages.DoctorManifestLoadedFmt, p, current.Len()),
	}}, current, true
}

func checkAssets(sys System, p profile.Profile, paths profile.Paths, current *manifest.Manifest, source catalog.Source) []Result {
	var results []Result
	var dangling []string
	for _, id := range current.IDs() {
		info, err := sys.Stat(paths.ThemeDir(id))
		if err != nil || !info.IsDir() {
			dangling = append(dangling, id)
		}
	}
	if len(dangling) > 0 {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameAssets,
			Message:        fmt.Sprintf(messages.DoctorAssetsMissingFmt, strings.Join(dangling, ", ")),
			Recommendation: fmt.Sprintf(messages.DoctorAssetsMissingRecommendFmt, p.DirName()),
		})
	} else {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameAssets,
			Message:   fmt.Sprintf(messages.DoctorAssetsPresentFmt, current.Len()),
		})
	}

	if source == nil {
		return results
	}
	var unknown []string
	for _, id := range current.IDs() {
		if _, ok := source.Theme(id); !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameCatalog,
			Message:        fmt.Sprintf(messages.DoctorThemesNotInCatalogFmt, strings.Join(unknown, ", ")),
			Recommendation: messages.DoctorThemesNotInCatalogRecommend,
		})
	}
	return results
}

func checkMigration(p profile.Profile, current *manifest.Manifest) Result {
	var legacy []string
	for _, entry := range current.Entries() {
		if entry.Record.NeedsMigration() {
			legacy = append(legacy, entry.ID)
		}
	}
	if len(legacy) == 0 {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameMigration,
			Message:   messages.DoctorMigrationNotNeeded,
		}
	}
	return Result{
		Status:         StatusWarn,
		CheckName:      messages.DoctorCheckNameMigration,
		Message:        fmt.Sprintf(messages.DoctorMigrationNeededFmt, strings.Join(legacy, ", ")),
		Recommendation: fmt.Sprintf(messages.DoctorMigrationRecommendFmt, p.DirName()),
	}
}

func checkUpdates(p profile.Profile, current *manifest.Manifest, source catalog.Source) Result {
	if source == nil {
		return Result{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameUpdates,
			Message:   messages.DoctorUpdatesSkipped,
		}
	}
	updates := update.Checker{Catalog: source}.Available(current)
	if len(updates) == 0 {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameUpdates,
			Message:   messages.DoctorUpToDate,
		}
	}
	return Result{
		Status:         StatusWarn,
		CheckName:      messages.DoctorCheckNameUpdates,
		Message:        fmt.Sprintf(messages.DoctorUpdatesAvailableFmt, strings.Join(update.IDs(updates), ", ")),
		Recommendation: fmt.Sprintf(messages.DoctorUpdatesRecommendFmt, p.DirName()),
	}
}

// checkStylesheets plans the stylesheet writes an apply would perform.
// A non-empty plan means the files on disk drifted from the manifest.
func checkStylesheets(sys System, p profile.Profile, paths profile.Paths, current *manifest.Manifest, strategy stylesheet.Strategy) Result {
	read := func(path string) (string, bool, error) {
		data, err := sys.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", false, nil
			}
			return "", false, err
		}
		return string(data), true, nil
	}
	writer, err := stylesheet.Resolve(strategy, paths, read, true)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameStylesheets,
			Message:        fmt.Sprintf(messages.DoctorStylesheetsFailedFmt, err),
			Recommendation: messages.DoctorStylesheetsFailedRecommend,
		}
	}
	writes, err := writer.Plan(paths, stylesheet.Compose(current), read)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameStylesheets,
			Message:        fmt.Sprintf(messages.DoctorStylesheetsFailedFmt, err),
			Recommendation: messages.DoctorStylesheetsFailedRecommend,
		}
	}
	var stale []string
	for _, w := range writes {
		if w.Kind == stylesheet.WriteBackup {
			continue
		}
		stale = append(stale, filepath.Base(w.Path))
	}
	if len(stale) > 0 {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameStylesheets,
			Message:        fmt.Sprintf(messages.DoctorStylesheetsStaleFmt, writer.Strategy(), strings.Join(stale, ", ")),
			Recommendation: fmt.Sprintf(messages.DoctorStylesheetsStaleRecommendFmt, p.DirName()),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameStylesheets,
		Message:   fmt.Sprintf(messages.DoctorStylesheetsCurrentFmt, writer.Strategy()),
	}
}

// readOnlySystem satisfies manifest.System for loading; doctor never writes.
type readOnlySystem struct {
	System
}

func (readOnlySystem) MkdirAll(string, os.FileMode) error {
	return errors.New(messages.DoctorReadOnly)
}

func (readOnlySystem) WriteFileAtomic(string, []byte, os.FileMode) error {
	return errors.New(messages.DoctorReadOnly)
}
