package lock

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func shortTimeout(t *testing.T) {
	t.Helper()
	origTimeout, origPoll := lockWaitTimeout, lockPollEvery
	t.Cleanup(func() {
		lockWaitTimeout, lockPollEvery = origTimeout, origPoll
	})
	lockWaitTimeout = 20 * time.Millisecond
	lockPollEvery = time.Millisecond
}

func TestWithCreatesLockAndRunsFn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "zx.lock")
	ran := false
	require.NoError(t, With(path, func() error {
		ran = true
		return nil
	}))
	require.True(t, ran)
	_, err := os.Stat(path)
	require.NoError(t, err)

	// Released locks can be taken again.
	require.NoError(t, With(path, func() error { return nil }))
}

func TestWithReturnsFnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zx.lock")
	boom := errors.New("boom")
	require.ErrorIs(t, With(path, func() error { return boom }), boom)
}

func TestWithTimesOutWhileHeld(t *testing.T) {
	shortTimeout(t)
	path := filepath.Join(t.TempDir(), "zx.lock")

	err := With(path, func() error {
		return With(path, func() error {
			t.Fatal("nested lock must not be granted")
			return nil
		})
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "timed out")
}

func TestAcquireLockFailure(t *testing.T) {
	orig := lockFileFn
	t.Cleanup(func() { lockFileFn = orig })
	lockFileFn = func(*os.File) error { return errors.New("denied") }

	err := With(filepath.Join(t.TempDir(), "zx.lock"), func() error { return nil })
	require.ErrorContains(t, err, "denied")
}

func TestAcquireDirFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := With(filepath.Join(blocker, "zx.lock"), func() error { return nil })
	require.ErrorContains(t, err, "create lock directory")
}

func TestReleaseNil(t *testing.T) {
	var l *fileLock
	require.NoError(t, l.release())
}
