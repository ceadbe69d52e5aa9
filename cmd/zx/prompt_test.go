package main

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/require"

	"github.com/zen-explorer/zen-explorer/internal/config"
	"github.com/zen-explorer/zen-explorer/internal/install"
)

func stubRunForm(t *testing.T, fn func(*huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	t.Cleanup(func() { runFormFunc = orig })
	runFormFunc = fn
}

func TestConfirmConflict(t *testing.T) {
	conflict := &install.ConflictError{Profile: "abc123.default", Paths: []string{"/p/chrome/userChrome.css"}}

	t.Run("abort counts as no", func(t *testing.T) {
		stubRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })
		proceed, err := confirmConflict(conflict)
		require.NoError(t, err)
		require.False(t, proceed)
	})

	t.Run("form error", func(t *testing.T) {
		boom := errors.New("tty gone")
		stubRunForm(t, func(*huh.Form) error { return boom })
		_, err := confirmConflict(conflict)
		require.ErrorIs(t, err, boom)
	})

	t.Run("default answer", func(t *testing.T) {
		var seen *huh.Form
		stubRunForm(t, func(form *huh.Form) error {
			seen = form
			return nil
		})
		proceed, err := confirmConflict(conflict)
		require.NoError(t, err)
		require.False(t, proceed)
		require.NotNil(t, seen)
	})
}

func TestConfirmKeyMapQuitsOnEscape(t *testing.T) {
	keys := confirmKeyMap().Quit.Keys()
	require.Contains(t, keys, "esc")
	require.Contains(t, keys, "ctrl+c")
}

func TestThemeFor(t *testing.T) {
	require.NotNil(t, themeFor(config.ThemeLight))
	require.NotNil(t, themeFor(config.ThemeDark))
	require.NotNil(t, themeFor("unknown"))
}
