package install

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/zen-explorer/zen-explorer/internal/catalog"
	"github.com/zen-explorer/zen-explorer/internal/manifest"
	"github.com/zen-explorer/zen-explorer/internal/messages"
)

// install snapshots theme into the manifest and deploys its assets. Assets are
// deployed before the manifest is committed so a failed deploy leaves the
// manifest untouched.
func (s *session) install(themeID string, bypassConflict bool) error {
	if !bypassConflict && !s.manifestExists {
		conflicts, err := s.unmanagedStylesheets()
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &ConflictError{Profile: s.result.Profile, Paths: conflicts}
		}
	}
	theme, err := catalog.Lookup(s.mgr.catalog, themeID)
	if err != nil {
		return err
	}
	if !validThemeID(theme.ID) {
		return &AssetDeployError{ThemeID: themeID, Path: theme.ID, Err: errors.New(messages.InstallInvalidThemeID)}
	}

	enabled := true
	record := manifest.Record{
		Version:        theme.Version,
		UpdatedAt:      theme.UpdatedAtUnix(),
		ChromeTargets:  append([]string{}, theme.ChromeTargets...),
		ContentTargets: append([]string{}, theme.ContentTargets...),
	}
	if existing, ok := s.current.Get(themeID); ok {
		record.Extra = existing.Extra
		enabled = existing.IsEnabled()
	}
	record.Enabled = &enabled

	if err := s.deployAssets(theme); err != nil {
		return err
	}
	next := s.current.Clone()
	next.Set(themeID, record)
	return s.commit(next)
}

func (s *session) unmanagedStylesheets() ([]string, error) {
	var found []string
	for _, path := range []string{s.paths.UserChrome, s.paths.UserContent} {
		_, exists, err := s.readText(path)
		if err != nil {
			return nil, err
		}
		if exists {
			found = append(found, path)
		}
	}
	return found, nil
}

// deployAssets replaces the profile's copy of the theme's files and folders.
// The new copy is built in a staging directory and swapped in only once it is
// complete, so a failed deploy leaves the previous assets in place.
// Missing or unreadable individual files are warnings; failing to prepare a
// directory aborts with *AssetDeployError.
func (s *session) deployAssets(theme catalog.ThemeRecord) error {
	source := s.mgr.catalog.AssetDir(theme.ID)
	target := s.paths.ThemeDir(theme.ID)
	staging := stagingDir(target)

	if err := s.exec.MkdirAll(s.paths.AssetRoot, 0o755); err != nil {
		return &AssetDeployError{ThemeID: theme.ID, Path: s.paths.AssetRoot, Err: err}
	}
	if err := s.exec.RemoveAll(staging); err != nil {
		return &AssetDeployError{ThemeID: theme.ID, Path: staging, Err: err}
	}
	if err := s.exec.MkdirAll(staging, 0o755); err != nil {
		return &AssetDeployError{ThemeID: theme.ID, Path: staging, Err: err}
	}
	if err := s.stageAssets(theme, source, staging); err != nil {
		_ = s.exec.RemoveAll(staging)
		return err
	}
	return s.swapAssets(theme.ID, staging, target)
}

func (s *session) stageAssets(theme catalog.ThemeRecord, source string, staging string) error {
	for _, file := range theme.Files {
		dst, ok := containedPath(staging, file)
		if !ok {
			s.warnf(messages.InstallUnsafeAssetPathFmt, theme.ID, file)
			continue
		}
		if err := s.copyAsset(theme.ID, filepath.Join(source, filepath.FromSlash(file)), dst, staging); err != nil {
			return err
		}
	}
	for _, folder := range theme.Folders {
		dst, ok := containedPath(staging, folder)
		if !ok {
			s.warnf(messages.InstallUnsafeAssetPathFmt, theme.ID, folder)
			continue
		}
		if err := s.copyFolder(theme.ID, filepath.Join(source, filepath.FromSlash(folder)), dst); err != nil {
			return err
		}
	}
	return nil
}

// swapAssets moves staging over target. An existing target is set aside
// first and restored if the move fails.
func (s *session) swapAssets(themeID string, staging string, target string) error {
	_, err := s.mgr.sys.Stat(target)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		_ = s.exec.RemoveAll(staging)
		return &AssetDeployError{ThemeID: themeID, Path: target, Err: err}
	}
	if err != nil {
		if err := s.exec.Rename(staging, target); err != nil {
			_ = s.exec.RemoveAll(staging)
			return &AssetDeployError{ThemeID: themeID, Path: target, Err: err}
		}
		return nil
	}

	previous := previousDir(target)
	if err := s.exec.RemoveAll(previous); err != nil {
		_ = s.exec.RemoveAll(staging)
		return &AssetDeployError{ThemeID: themeID, Path: previous, Err: err}
	}
	if err := s.exec.Rename(target, previous); err != nil {
		_ = s.exec.RemoveAll(staging)
		return &AssetDeployError{ThemeID: themeID, Path: target, Err: err}
	}
	if err := s.exec.Rename(staging, target); err != nil {
		_ = s.exec.Rename(previous, target)
		_ = s.exec.RemoveAll(staging)
		return &AssetDeployError{ThemeID: themeID, Path: target, Err: err}
	}
	if err := s.exec.RemoveAll(previous); err != nil {
		s.warnf(messages.InstallPreviousAssetsLeftFmt, themeID, previous, err)
	}
	return nil
}

// stagingDir and previousDir sit next to target so renames stay on one filesystem.
func stagingDir(target string) string {
	return filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+".staging")
}

func previousDir(target string) string {
	return filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+".previous")
}

func (s *session) copyAsset(themeID string, src string, dst string, target string) error {
	if _, err := s.mgr.sys.Stat(src); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.warnf(messages.InstallMissingAssetFileFmt, themeID, src)
			s.exec.Skip(dst, messages.FileOpSourceMissing)
			return nil
		}
		s.warnf(messages.InstallCopyAssetFailedFmt, src, err)
		s.exec.Skip(dst, err.Error())
		return nil
	}
	if parent := filepath.Dir(dst); parent != target {
		if err := s.exec.MkdirAll(parent, 0o755); err != nil {
			return &AssetDeployError{ThemeID: themeID, Path: parent, Err: err}
		}
	}
	if err := s.exec.CopyFile(src, dst); err != nil {
		s.warnf(messages.InstallCopyAssetFailedFmt, src, err)
		s.exec.Skip(dst, err.Error())
	}
	return nil
}

func (s *session) copyFolder(themeID string, src string, dst string) error {
	info, err := s.mgr.sys.Stat(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.warnf(messages.InstallMissingAssetFolderFmt, themeID, src)
			s.exec.Skip(dst, messages.FileOpSourceMissing)
			return nil
		}
		return &AssetDeployError{ThemeID: themeID, Path: src, Err: err}
	}
	if !info.IsDir() {
		s.warnf(messages.InstallAssetFolderNotDirFmt, themeID, src)
		s.exec.Skip(dst, messages.InstallSkipReasonNotDir)
		return nil
	}

	walkErr := s.mgr.sys.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		out := filepath.Join(dst, rel)
		if d.IsDir() {
			if err := s.exec.MkdirAll(out, 0o755); err != nil {
				return &AssetDeployError{ThemeID: themeID, Path: out, Err: err}
			}
			return nil
		}
		if err := s.exec.CopyFile(path, out); err != nil {
			s.warnf(messages.InstallCopyAssetFailedFmt, path, err)
			s.exec.Skip(out, err.Error())
		}
		return nil
	})
	if walkErr != nil {
		var deployErr *AssetDeployError
		if errors.As(walkErr, &deployErr) {
			return deployErr
		}
		return &AssetDeployError{ThemeID: themeID, Path: src, Err: walkErr}
	}
	return nil
}

// removeAssets deletes the theme's asset directory. An already missing
// directory is tolerated with a warning.
func (s *session) removeAssets(themeID string) error {
	dir := s.paths.ThemeDir(themeID)
	if _, err := s.mgr.sys.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.warnf(messages.InstallAssetsAlreadyRemovedFmt, themeID, dir)
			s.exec.Skip(dir, messages.InstallSkipReasonAbsent)
			return nil
		}
		return &AssetDeployError{ThemeID: themeID, Path: dir, Err: err}
	}
	if err := s.exec.RemoveAll(dir); err != nil {
		return &AssetDeployError{ThemeID: themeID, Path: dir, Err: err}
	}
	return nil
}

// containedPath joins rel onto root and rejects results outside root.
func containedPath(root string, rel string) (string, bool) {
	if strings.TrimSpace(rel) == "" || filepath.IsAbs(rel) {
		return "", false
	}
	joined := filepath.Join(root, filepath.FromSlash(rel))
	back, err := filepath.Rel(root, joined)
	if err != nil || back == "." || back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
		return "", false
	}
	return joined, true
}

func validThemeID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}
