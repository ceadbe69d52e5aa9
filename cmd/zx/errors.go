package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/zen-explorer/zen-explorer/internal/catalog"
	"github.com/zen-explorer/zen-explorer/internal/install"
	"github.com/zen-explorer/zen-explorer/internal/manifest"
	"github.com/zen-explorer/zen-explorer/internal/messages"
	"github.com/zen-explorer/zen-explorer/internal/profile"
)

// Exit codes by error class.
const (
	exitFailure  = 1
	exitNotFound = 2
	exitConflict = 3
	exitCorrupt  = 4
)

func exitCode(err error) int {
	var (
		profileNotFound *profile.NotFoundError
		themeNotFound   *catalog.ThemeNotFoundError
		notInstalled    *install.NotInstalledError
		conflict        *install.ConflictError
		corrupt         *manifest.CorruptError
	)
	switch {
	case errors.As(err, &conflict):
		return exitConflict
	case errors.As(err, &corrupt):
		return exitCorrupt
	case errors.As(err, &profileNotFound), errors.As(err, &themeNotFound), errors.As(err, &notInstalled):
		return exitNotFound
	default:
		return exitFailure
	}
}

// formatError renders err for stderr with a follow-up hint for the errors a user can act on.
func formatError(err error) string {
	msg := color.RedString(messages.ErrorPrefixFmt, err)
	var (
		conflict        *install.ConflictError
		corrupt         *manifest.CorruptError
		profileNotFound *profile.NotFoundError
	)
	switch {
	case errors.As(err, &conflict):
		return msg + "\n" + messages.HintConflictForce
	case errors.As(err, &corrupt):
		return msg + "\n" + fmt.Sprintf(messages.HintCorruptManifestFmt, corrupt.Path)
	case errors.As(err, &profileNotFound):
		return msg + "\n" + messages.HintListProfiles
	case errors.Is(err, catalog.ErrRepositoryMissing):
		return msg + "\n" + messages.HintCatalogMissing
	}
	return msg
}
