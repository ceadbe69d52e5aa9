package install

import (
	"fmt"
	"strings"

	"github.com/zen-explorer/zen-explorer/internal/messages"
)

// NotInstalledError reports an operation on a theme that is absent from the
// profile manifest, or a profile that has no manifest at all.
type NotInstalledError struct {
	Profile string
	ThemeID string
}

func (e *NotInstalledError) Error() string {
	return fmt.Sprintf(messages.InstallNotInstalledFmt, e.ThemeID, e.Profile)
}

// ConflictError reports hand-written user stylesheets in a profile that has
// never been managed. Installing over them requires an explicit bypass.
type ConflictError struct {
	Profile string
	Paths   []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(messages.InstallConflictFmt, e.Profile, strings.Join(e.Paths, ", "))
}

// AssetDeployError reports a directory-level failure while deploying theme
// assets. The manifest is left untouched when it is returned.
type AssetDeployError struct {
	ThemeID string
	Path    string
	Err     error
}

func (e *AssetDeployError) Error() string {
	return fmt.Sprintf(messages.InstallAssetDeployFmt, e.ThemeID, e.Path, e.Err)
}

func (e *AssetDeployError) Unwrap() error {
	return e.Err
}
