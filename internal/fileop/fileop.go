// Package fileop routes every filesystem mutation through one executor so a
// dry run and a real run share the same code path and produce the same plan.
package fileop

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/zen-explorer/zen-explorer/internal/messages"
)

// Kind names a filesystem operation.
type Kind string

const (
	// KindMkdir creates a directory and its parents.
	KindMkdir Kind = "mkdir"
	// KindRemove removes a path recursively.
	KindRemove Kind = "remove"
	// KindRename moves a path into place.
	KindRename Kind = "rename"
	// KindCopy copies one file.
	KindCopy Kind = "copy"
	// KindWrite atomically replaces a file with generated content.
	KindWrite Kind = "write"
	// KindSkip records a tolerated operation that was not performed.
	KindSkip Kind = "skip"
)

// Op is one performed or planned filesystem operation.
type Op struct {
	Kind   Kind   `json:"kind"`
	Path   string `json:"path"`
	Source string `json:"source,omitempty"`
	Bytes  int    `json:"bytes,omitempty"`
	Reason string `json:"reason,omitempty"`
	Data   []byte `json:"-"`
}

// String renders the op for plan output.
func (o Op) String() string {
	switch o.Kind {
	case KindCopy:
		return fmt.Sprintf("copy   %s => %s", o.Source, o.Path)
	case KindWrite:
		return fmt.Sprintf("write  %s (%d bytes)", o.Path, o.Bytes)
	case KindSkip:
		return fmt.Sprintf("skip   %s (%s)", o.Path, o.Reason)
	case KindRemove:
		return fmt.Sprintf("remove %s", o.Path)
	case KindRename:
		return fmt.Sprintf("rename %s => %s", o.Source, o.Path)
	default:
		return fmt.Sprintf("%-6s %s", string(o.Kind), o.Path)
	}
}

// ErrSourceMissing reports a copy whose source file does not exist.
var ErrSourceMissing = errors.New(messages.FileOpSourceMissing)

// System is the filesystem surface the executor drives.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
	Rename(oldpath string, newpath string) error
	WalkDir(root string, fn fs.WalkDirFunc) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

// Executor records every operation and performs it unless DryRun is set.
// Reads always hit the real filesystem so dry runs see the same inputs.
type Executor struct {
	sys    System
	dryRun bool
	ops    []Op
}

// NewExecutor returns an executor over sys.
func NewExecutor(sys System, dryRun bool) *Executor {
	return &Executor{sys: sys, dryRun: dryRun}
}

// DryRun reports whether mutations are recorded only.
func (e *Executor) DryRun() bool {
	return e.dryRun
}

// System returns the underlying filesystem for read-only access.
func (e *Executor) System() System {
	return e.sys
}

// Ops returns the operations recorded so far.
func (e *Executor) Ops() []Op {
	out := make([]Op, len(e.ops))
	copy(out, e.ops)
	return out
}

func (e *Executor) record(op Op) {
	e.ops = append(e.ops, op)
}

// ReadFile reads name from the real filesystem, also in a dry run.
func (e *Executor) ReadFile(name string) ([]byte, error) {
	return e.sys.ReadFile(name)
}

// MkdirAll creates path and its parents.
func (e *Executor) MkdirAll(path string, perm os.FileMode) error {
	e.record(Op{Kind: KindMkdir, Path: path})
	if e.dryRun {
		return nil
	}
	return e.sys.MkdirAll(path, perm)
}

// RemoveAll removes path recursively. A missing path is not an error.
func (e *Executor) RemoveAll(path string) error {
	e.record(Op{Kind: KindRemove, Path: path})
	if e.dryRun {
		return nil
	}
	return e.sys.RemoveAll(path)
}

// Rename moves oldpath to newpath.
func (e *Executor) Rename(oldpath string, newpath string) error {
	e.record(Op{Kind: KindRename, Path: newpath, Source: oldpath})
	if e.dryRun {
		return nil
	}
	return e.sys.Rename(oldpath, newpath)
}

// WriteFileAtomic atomically replaces path with data.
// The executor satisfies the write-side System interfaces of other packages through it.
func (e *Executor) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	e.record(Op{Kind: KindWrite, Path: path, Bytes: len(data), Data: append([]byte(nil), data...)})
	if e.dryRun {
		return nil
	}
	return e.sys.WriteFileAtomic(path, data, perm)
}

// CopyFile copies src to dst preserving the permission bits.
// A missing source returns an error wrapping ErrSourceMissing and records nothing.
func (e *Executor) CopyFile(src string, dst string) error {
	info, err := e.sys.Stat(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceMissing, src)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf(messages.FileOpSourceIsDirFmt, src)
	}
	data, err := e.sys.ReadFile(src)
	if err != nil {
		return err
	}
	e.record(Op{Kind: KindCopy, Path: dst, Source: src, Bytes: len(data)})
	if e.dryRun {
		return nil
	}
	return e.sys.WriteFileAtomic(dst, data, info.Mode().Perm())
}

// Skip records an operation that was tolerated and not performed.
func (e *Executor) Skip(path string, reason string) {
	e.record(Op{Kind: KindSkip, Path: path, Reason: reason})
}
