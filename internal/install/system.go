package install

import (
	"io/fs"
	"os"
)

// System abstracts filesystem operations needed by the manager.
// fileop.RealSystem implements it; tests wrap it for fault injection.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
	Rename(oldpath string, newpath string) error
	WalkDir(root string, fn fs.WalkDirFunc) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}
