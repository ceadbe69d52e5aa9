package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zen-explorer/zen-explorer/internal/messages"
)

// System is the filesystem surface the manifest store needs.
type System interface {
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

// CorruptError reports a manifest file that exists but cannot be decoded.
// It is never repaired automatically: replacing it with an empty manifest
// would forget every installed theme.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf(messages.ManifestCorruptFmt, e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// Load reads the manifest at path. A missing file yields an empty manifest and exists=false.
func Load(sys System, path string) (m *Manifest, exists bool, err error) {
	if sys == nil {
		return nil, false, fmt.Errorf(messages.ManifestSystemRequired)
	}
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), false, nil
		}
		return nil, false, fmt.Errorf(messages.ManifestReadFmt, path, err)
	}
	m, err = Decode(data)
	if err != nil {
		return nil, true, &CorruptError{Path: path, Err: err}
	}
	return m, true, nil
}

// Exists reports whether a manifest file is present at path.
func Exists(sys System, path string) (bool, error) {
	if sys == nil {
		return false, fmt.Errorf(messages.ManifestSystemRequired)
	}
	if _, err := sys.ReadFile(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.ManifestReadFmt, path, err)
	}
	return true, nil
}

// Save atomically replaces the manifest at path.
func Save(sys System, path string, m *Manifest) error {
	if sys == nil {
		return fmt.Errorf(messages.ManifestSystemRequired)
	}
	data, err := Encode(m)
	if err != nil {
		return fmt.Errorf(messages.ManifestEncodeFmt, err)
	}
	if err := sys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf(messages.ManifestCreateDirFmt, path, err)
	}
	if err := sys.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.ManifestWriteFmt, path, err)
	}
	return nil
}
