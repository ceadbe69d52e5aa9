package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zen-explorer/zen-explorer/internal/config"
	"github.com/zen-explorer/zen-explorer/internal/install"
	"github.com/zen-explorer/zen-explorer/internal/messages"
)

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// promptTheme follows ui.theme once the config is loaded.
var promptTheme = huh.ThemeCharm()

func themeFor(name string) *huh.Theme {
	if name == config.ThemeLight {
		return huh.ThemeBase()
	}
	return huh.ThemeCharm()
}

// confirmConflictFunc is swapped in tests to answer the conflict prompt.
var confirmConflictFunc = confirmConflict

// confirmKeyMap binds Esc as well as Ctrl+C to abort, which counts as "no".
func confirmKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	return km
}

// confirmConflict asks whether to install over stylesheets the tool does not manage.
func confirmConflict(conflict *install.ConflictError) (bool, error) {
	proceed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf(messages.InstallConflictPromptFmt, conflict.Profile)).
				Description(strings.Join(conflict.Paths, "\n")).
				Affirmative(messages.InstallConflictAffirmative).
				Negative(messages.InstallConflictNegative).
				Value(&proceed),
		),
	)
	form.WithTheme(promptTheme)
	form.WithKeyMap(confirmKeyMap())
	form.WithProgramOptions(tea.WithOutput(os.Stderr))

	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return proceed, nil
}
