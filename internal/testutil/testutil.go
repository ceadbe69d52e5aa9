package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// Theme describes a catalog theme fixture.
// Assets maps slash-separated paths under the theme directory to file content.
type Theme struct {
	ID             string
	Name           string
	Author         string
	Version        string
	UpdatedAt      float64
	ChromeTargets  []string
	ContentTargets []string
	Files          []string
	Folders        []string
	Assets         map[string]string
}

// WriteCatalog writes a theme repository with themes.json and one theme.json per theme.
// t is the active test; root is the repository directory.
func WriteCatalog(t *testing.T, root string, themes ...Theme) {
	t.Helper()
	index := make(map[string]any, len(themes))
	for _, theme := range themes {
		index[theme.ID] = map[string]any{
			"name":      theme.Name,
			"author":    theme.Author,
			"version":   theme.Version,
			"updatedAt": theme.UpdatedAt,
			"type":      0,
		}
		dir := filepath.Join(root, "themes", theme.ID)
		install := map[string]any{
			"files":            nonNil(theme.Files),
			"folders":          nonNil(theme.Folders),
			"uclChromeTarget":  nonNil(theme.ChromeTargets),
			"uclContentTarget": nonNil(theme.ContentTargets),
		}
		WriteJSON(t, filepath.Join(dir, "theme.json"), install)
		for rel, content := range theme.Assets {
			WriteFile(t, filepath.Join(dir, filepath.FromSlash(rel)), content)
		}
	}
	WriteJSON(t, filepath.Join(root, "themes.json"), index)
}

// MakeProfile creates "<root>/<dirName>" and returns its path.
func MakeProfile(t *testing.T, root string, dirName string) string {
	t.Helper()
	dir := filepath.Join(root, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir profile: %v", err)
	}
	return dir
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteJSON marshals v with indentation and writes it to path.
func WriteJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("marshal %s: %v", path, err)
	}
	WriteFile(t, path, string(data))
}

// ReadFile returns the content of path, or "" when it does not exist.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// Snapshot returns every regular file under root keyed by slash-separated relative path.
func Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("snapshot %s: %v", root, err)
	}
	return out
}

// BoolPtr returns a pointer to v.
// v is the boolean value to take the address of.
func BoolPtr(v bool) *bool {
	return &v
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
