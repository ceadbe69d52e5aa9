// Package lock serializes zx processes with an advisory file lock.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zen-explorer/zen-explorer/internal/messages"
)

type fileLock struct {
	file *os.File
}

var lockFileFn = lockFile
var unlockFileFn = unlockFile
var lockSleep = time.Sleep

var (
	lockWaitTimeout = 30 * time.Second
	lockPollEvery   = 100 * time.Millisecond
)

// With acquires the lock at path, runs fn, and releases the lock.
// The lock file and its directory are created when missing.
func With(path string, fn func() error) error {
	l, err := acquire(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = l.release()
	}()
	return fn()
}

func acquire(path string) (*fileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf(messages.LockCreateDirFmt, filepath.Dir(path), err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf(messages.LockOpenFmt, path, err)
	}
	if err := lockFileFn(file); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf(messages.LockAcquireFmt, path, err)
	}
	return &fileLock{file: file}, nil
}

func (l *fileLock) release() error {
	if l == nil || l.file == nil {
		return nil
	}
	if err := unlockFileFn(l.file); err != nil {
		_ = l.file.Close()
		return err
	}
	return l.file.Close()
}

// lockFile polls tryLock until it succeeds or lockWaitTimeout passes.
func lockFile(file *os.File) error {
	deadline := time.Now().Add(lockWaitTimeout)
	for {
		busy, err := tryLock(file)
		if err != nil {
			return err
		}
		if !busy {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf(messages.LockTimeoutFmt, lockWaitTimeout)
		}
		lockSleep(lockPollEvery)
	}
}
