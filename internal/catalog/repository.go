package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	pathpkg "path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/zen-explorer/zen-explorer/internal/messages"
)

const (
	indexFile      = "themes.json"
	themesDir      = "themes"
	installFile    = "theme.json"
	readmeFileName = "README.md"
)

// ErrRepositoryMissing reports that the synced repository has no themes.json.
var ErrRepositoryMissing = errors.New(messages.CatalogRepositoryMissing)

type indexEntry struct {
	Name        string   `json:"name"`
	Author      string   `json:"author"`
	AuthorURL   string   `json:"authorUrl"`
	Homepage    string   `json:"homepage"`
	Description string   `json:"description"`
	Type        int      `json:"type"`
	Tags        []string `json:"tags"`
	Version     string   `json:"version"`
	CreatedAt   float64  `json:"createdAt"`
	UpdatedAt   float64  `json:"updatedAt"`
}

type installData struct {
	Files          []string `json:"files"`
	Folders        []string `json:"folders"`
	ChromeTargets  []string `json:"uclChromeTarget"`
	ContentTargets []string `json:"uclContentTarget"`
}

// Repository is a catalog backed by a synced theme repository directory.
type Repository struct {
	root   string
	fsys   fs.FS
	themes map[string]ThemeRecord
}

// Open loads the repository rooted at root from the OS filesystem.
func Open(root string) (*Repository, error) {
	return OpenFS(os.DirFS(root), root)
}

// OpenFS loads the repository from fsys; root is the OS path asset copies are read from.
func OpenFS(fsys fs.FS, root string) (*Repository, error) {
	if fsys == nil {
		return nil, fmt.Errorf(messages.CatalogFSRequired)
	}
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf(messages.CatalogRootRequired)
	}
	data, err := fs.ReadFile(fsys, indexFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRepositoryMissing, filepath.Join(root, indexFile))
		}
		return nil, fmt.Errorf(messages.CatalogReadIndexFmt, filepath.Join(root, indexFile), err)
	}
	var index map[string]indexEntry
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf(messages.CatalogDecodeIndexFmt, filepath.Join(root, indexFile), err)
	}

	repo := &Repository{
		root:   root,
		fsys:   fsys,
		themes: make(map[string]ThemeRecord, len(index)),
	}
	for id, entry := range index {
		installPath := pathpkg.Join(themesDir, id, installFile)
		raw, err := fs.ReadFile(fsys, installPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// Listed in the index but not synced yet.
				continue
			}
			return nil, fmt.Errorf(messages.CatalogReadInstallDataFmt, id, err)
		}
		var install installData
		if err := json.Unmarshal(raw, &install); err != nil {
			return nil, fmt.Errorf(messages.CatalogDecodeInstallDataFmt, id, err)
		}
		repo.themes[id] = newThemeRecord(id, entry, install)
	}
	return repo, nil
}

func newThemeRecord(id string, entry indexEntry, install installData) ThemeRecord {
	return ThemeRecord{
		ID:             id,
		Name:           entry.Name,
		Author:         entry.Author,
		AuthorURL:      entry.AuthorURL,
		Homepage:       entry.Homepage,
		Description:    entry.Description,
		Type:           ThemeType(entry.Type),
		Tags:           cloneStrings(entry.Tags),
		Version:        entry.Version,
		CreatedAt:      unixTime(entry.CreatedAt),
		UpdatedAt:      unixTime(entry.UpdatedAt),
		ChromeTargets:  cloneStrings(install.ChromeTargets),
		ContentTargets: cloneStrings(install.ContentTargets),
		Files:          cloneStrings(install.Files),
		Folders:        cloneStrings(install.Folders),
	}
}

func unixTime(seconds float64) time.Time {
	whole, frac := math.Modf(seconds)
	return time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC()
}

// Root returns the repository directory.
func (r *Repository) Root() string {
	return r.root
}

// Theme returns the record for id.
func (r *Repository) Theme(id string) (ThemeRecord, bool) {
	theme, ok := r.themes[id]
	return theme, ok
}

// AssetDir returns the directory holding the theme's files and folders.
func (r *Repository) AssetDir(id string) string {
	return filepath.Join(r.root, themesDir, id)
}

// Themes returns every theme sorted by id.
func (r *Repository) Themes() []ThemeRecord {
	out := make([]ThemeRecord, 0, len(r.themes))
	for _, theme := range r.themes {
		out = append(out, theme)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Readme returns the README shipped with the theme.
func (r *Repository) Readme(id string) (string, error) {
	if _, ok := r.themes[id]; !ok {
		return "", &ThemeNotFoundError{ID: id}
	}
	data, err := fs.ReadFile(r.fsys, pathpkg.Join(themesDir, id, readmeFileName))
	if err != nil {
		return "", fmt.Errorf(messages.CatalogReadReadmeFmt, id, err)
	}
	return string(data), nil
}
