// Package profile resolves browser profile references to directories.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zen-explorer/zen-explorer/internal/messages"
)

// Profile identifies one browser profile directory.
type Profile struct {
	ID   string
	Name string
	Dir  string
}

// DirName returns the profile's directory name.
func (p Profile) DirName() string {
	return filepath.Base(p.Dir)
}

// String returns "name (id)" for display.
func (p Profile) String() string {
	if p.Name == "" || p.Name == p.ID {
		return p.ID
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.ID)
}

// Paths returns the customization layout for the profile.
func (p Profile) Paths() Paths {
	return DefaultPaths(p.Dir)
}

// FromDir builds a Profile from a directory named "<id>.<name>".
func FromDir(dir string) Profile {
	base := filepath.Base(dir)
	id, name, found := strings.Cut(base, ".")
	if !found {
		name = base
	}
	return Profile{ID: id, Name: name, Dir: dir}
}

// NotFoundError reports a profile reference that does not resolve to a directory.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(messages.ProfileNotFoundFmt, e.Ref)
}

// Locator resolves profile references.
type Locator interface {
	Resolve(ref string) (Profile, error)
}

// DirLocator discovers profiles as subdirectories of one or more roots.
type DirLocator struct {
	Roots        []string
	RequiredDirs []string
}

// List returns every profile found under the roots, ordered by directory name.
func (l DirLocator) List() ([]Profile, error) {
	var out []Profile
	for _, root := range l.Roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf(messages.ProfileReadRootFmt, root, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := entry.Name()
			if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".ini") {
				continue
			}
			dir := filepath.Join(root, name)
			if !l.hasRequiredDirs(dir) {
				continue
			}
			out = append(out, FromDir(dir))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DirName() < out[j].DirName()
	})
	return out, nil
}

func (l DirLocator) hasRequiredDirs(dir string) bool {
	for _, required := range l.RequiredDirs {
		info, err := os.Stat(filepath.Join(dir, required))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}

// Resolve matches ref against profile directory names first, then against profile ids.
func (l DirLocator) Resolve(ref string) (Profile, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Profile{}, &NotFoundError{Ref: ref}
	}
	profiles, err := l.List()
	if err != nil {
		return Profile{}, err
	}
	for _, p := range profiles {
		if p.DirName() == ref {
			return p, nil
		}
	}
	for _, p := range profiles {
		if p.ID == ref {
			return p, nil
		}
	}
	return Profile{}, &NotFoundError{Ref: ref}
}

// DirProfile is a Locator for a single explicit profile directory.
type DirProfile string

// Resolve returns the profile at the directory regardless of ref.
func (d DirProfile) Resolve(string) (Profile, error) {
	dir := string(d)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return Profile{}, &NotFoundError{Ref: dir}
	}
	return FromDir(dir), nil
}
