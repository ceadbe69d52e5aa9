package fileop

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecutorPerformsOperations(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.css")
	require.NoError(t, os.WriteFile(src, []byte("body{}"), 0o600))

	exec := NewExecutor(RealSystem{}, false)
	target := filepath.Join(dir, "out", "nested")
	require.NoError(t, exec.MkdirAll(target, 0o755))
	require.NoError(t, exec.CopyFile(src, filepath.Join(target, "src.css")))
	require.NoError(t, exec.WriteFileAtomic(filepath.Join(target, "gen.css"), []byte("x"), 0o644))

	copied, err := os.ReadFile(filepath.Join(target, "src.css"))
	require.NoError(t, err)
	require.Equal(t, "body{}", string(copied))
	info, err := os.Stat(filepath.Join(target, "src.css"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, exec.RemoveAll(target))
	_, err = os.Stat(target)
	require.True(t, os.IsNotExist(err))

	ops := exec.Ops()
	require.Len(t, ops, 4)
	require.Equal(t, KindMkdir, ops[0].Kind)
	require.Equal(t, KindCopy, ops[1].Kind)
	require.Equal(t, src, ops[1].Source)
	require.Equal(t, 6, ops[1].Bytes)
	require.Equal(t, KindWrite, ops[2].Kind)
	require.Equal(t, []byte("x"), ops[2].Data)
	require.Equal(t, KindRemove, ops[3].Kind)
	require.False(t, exec.DryRun())
}

func TestExecutorDryRunRecordsSamePlanWithoutMutating(t *testing.T) {
	run := func(dryRun bool, dir string) []Op {
		src := filepath.Join(dir, "src.css")
		require.NoError(t, os.WriteFile(src, []byte("body{}"), 0o644))
		exec := NewExecutor(RealSystem{}, dryRun)
		target := filepath.Join(dir, "out")
		require.NoError(t, exec.MkdirAll(target, 0o755))
		require.NoError(t, exec.CopyFile(src, filepath.Join(target, "src.css")))
		require.NoError(t, exec.WriteFileAtomic(filepath.Join(target, "gen.css"), []byte("x"), 0o644))
		exec.Skip(filepath.Join(dir, "missing.css"), "source missing")
		return exec.Ops()
	}

	dryDir := t.TempDir()
	dryOps := run(true, dryDir)
	_, err := os.Stat(filepath.Join(dryDir, "out"))
	require.True(t, os.IsNotExist(err))

	realDir := t.TempDir()
	realOps := run(false, realDir)

	require.Equal(t, len(realOps), len(dryOps))
	for i := range realOps {
		require.Equal(t, realOps[i].Kind, dryOps[i].Kind)
		rel, err := filepath.Rel(realDir, realOps[i].Path)
		require.NoError(t, err)
		dryRel, err := filepath.Rel(dryDir, dryOps[i].Path)
		require.NoError(t, err)
		require.Equal(t, rel, dryRel)
	}
}

func TestExecutorRename(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "staging")
	to := filepath.Join(dir, "theme")
	require.NoError(t, os.MkdirAll(from, 0o755))

	dry := NewExecutor(RealSystem{}, true)
	require.NoError(t, dry.Rename(from, to))
	require.DirExists(t, from)
	require.NoDirExists(t, to)

	exec := NewExecutor(RealSystem{}, false)
	require.NoError(t, exec.Rename(from, to))
	require.NoDirExists(t, from)
	require.DirExists(t, to)
	require.Equal(t, dry.Ops(), exec.Ops())
	require.Equal(t, []Op{{Kind: KindRename, Path: to, Source: from}}, exec.Ops())
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	exec := NewExecutor(RealSystem{}, false)
	err := exec.CopyFile(filepath.Join(dir, "nope.css"), filepath.Join(dir, "dst.css"))
	require.True(t, errors.Is(err, ErrSourceMissing))
	require.Empty(t, exec.Ops())
}

func TestCopyFileRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	exec := NewExecutor(RealSystem{}, true)
	err := exec.CopyFile(dir, filepath.Join(dir, "dst"))
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrSourceMissing))
}

func TestOpString(t *testing.T) {
	require.Equal(t, "copy   a => b", Op{Kind: KindCopy, Source: "a", Path: "b"}.String())
	require.Equal(t, "write  f (3 bytes)", Op{Kind: KindWrite, Path: "f", Bytes: 3}.String())
	require.Equal(t, "skip   f (gone)", Op{Kind: KindSkip, Path: "f", Reason: "gone"}.String())
	require.Equal(t, "remove d", Op{Kind: KindRemove, Path: "d"}.String())
	require.Equal(t, "rename a => b", Op{Kind: KindRename, Source: "a", Path: "b"}.String())
	require.Equal(t, "mkdir  d", Op{Kind: KindMkdir, Path: "d"}.String())
}
