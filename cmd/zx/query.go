package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zen-explorer/zen-explorer/internal/catalog"
	"github.com/zen-explorer/zen-explorer/internal/messages"
	"github.com/zen-explorer/zen-explorer/internal/update"
)

type profileView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Dir  string `json:"dir"`
}

func newProfilesCmd() *cobra.Command {
	var outputJSON bool
	cmd := &cobra.Command{
		Use:   messages.ProfilesUse,
		Short: messages.ProfilesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			profiles, err := a.locator.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if outputJSON {
				views := make([]profileView, 0, len(profiles))
				for _, p := range profiles {
					views = append(views, profileView{ID: p.ID, Name: p.Name, Dir: p.Dir})
				}
				return writeJSON(out, views)
			}
			if len(profiles) == 0 {
				_, err := fmt.Fprintf(out, messages.ProfilesNoneFmt, a.cfg.Browser.Name, strings.Join(a.locator.Roots, ", "))
				return err
			}
			for _, p := range profiles {
				if _, err := fmt.Fprintf(out, messages.ProfilesLineFmt, p.DirName(), p.Dir); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, messages.FlagJSON)
	return cmd
}

type themeView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Author      string   `json:"author"`
	Version     string   `json:"version"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Homepage    string   `json:"homepage,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	UpdatedAt   string   `json:"updated_at"`
}

func newThemeView(theme catalog.ThemeRecord) themeView {
	return themeView{
		ID:          theme.ID,
		Name:        theme.Name,
		Author:      theme.Author,
		Version:     theme.Version,
		Type:        theme.Type.String(),
		Description: theme.Description,
		Homepage:    theme.Homepage,
		Tags:        theme.Tags,
		UpdatedAt:   theme.UpdatedAt.Format("2006-01-02"),
	}
}

func newThemesCmd() *cobra.Command {
	var outputJSON bool
	cmd := &cobra.Command{
		Use:   messages.ThemesUse,
		Short: messages.ThemesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			repo, err := a.openCatalog()
			if err != nil {
				return err
			}
			themes := repo.Themes()
			out := cmd.OutOrStdout()
			if outputJSON {
				views := make([]themeView, 0, len(themes))
				for _, theme := range themes {
					views = append(views, newThemeView(theme))
				}
				return writeJSON(out, views)
			}
			for _, theme := range themes {
				if _, err := fmt.Fprintf(out, messages.ThemesLineFmt, theme.ID, theme.Version, theme.Type, theme.Name, theme.Author); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, messages.FlagJSON)
	cmd.AddCommand(newThemeShowCmd())
	return cmd
}

func newThemeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ThemeShowUse,
		Short: messages.ThemeShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			repo, err := a.openCatalog()
			if err != nil {
				return err
			}
			theme, err := catalog.Lookup(repo, args[0])
			if err != nil {
				return err
			}
			view := newThemeView(theme)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.ThemeShowHeaderFmt, color.New(color.Bold).Sprint(view.Name), view.ID, view.Version)
			_, _ = fmt.Fprintf(out, messages.ThemeShowFieldFmt, messages.ThemeShowAuthor, view.Author)
			_, _ = fmt.Fprintf(out, messages.ThemeShowFieldFmt, messages.ThemeShowType, view.Type)
			_, _ = fmt.Fprintf(out, messages.ThemeShowFieldFmt, messages.ThemeShowUpdated, view.UpdatedAt)
			if view.Homepage != "" {
				_, _ = fmt.Fprintf(out, messages.ThemeShowFieldFmt, messages.ThemeShowHomepage, view.Homepage)
			}
			if len(view.Tags) > 0 {
				_, _ = fmt.Fprintf(out, messages.ThemeShowFieldFmt, messages.ThemeShowTags, strings.Join(view.Tags, ", "))
			}
			if view.Description != "" {
				_, _ = fmt.Fprintf(out, "\n%s\n", view.Description)
			}
			readme, err := repo.Readme(theme.ID)
			if err == nil && strings.TrimSpace(readme) != "" {
				_, _ = fmt.Fprintf(out, "\n%s\n", strings.TrimRight(readme, "\n"))
			}
			return nil
		},
	}
}

type installedView struct {
	ID              string `json:"id"`
	Version         string `json:"version"`
	Enabled         bool   `json:"enabled"`
	Legacy          bool   `json:"legacy,omitempty"`
	UpdateAvailable string `json:"update_available,omitempty"`
}

func newListCmd() *cobra.Command {
	var outputJSON bool
	cmd := &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			mgr, err := a.manager(cmd, managerOptions{})
			if err != nil {
				return err
			}
			entries, err := mgr.Installed(args[0])
			if err != nil {
				return err
			}
			updates, err := mgr.AvailableUpdates(args[0])
			if err != nil {
				return err
			}
			latest := make(map[string]string, len(updates))
			for _, u := range updates {
				latest[u.ThemeID] = u.LatestVersion
			}

			views := make([]installedView, 0, len(entries))
			for _, entry := range entries {
				views = append(views, installedView{
					ID:              entry.ID,
					Version:         entry.Record.Version,
					Enabled:         entry.Record.IsEnabled(),
					Legacy:          entry.Record.NeedsMigration(),
					UpdateAvailable: latest[entry.ID],
				})
			}
			out := cmd.OutOrStdout()
			if outputJSON {
				return writeJSON(out, views)
			}
			if len(views) == 0 {
				_, err := fmt.Fprintf(out, messages.ListNoneFmt, args[0])
				return err
			}
			for _, view := range views {
				state := color.GreenString(messages.StateEnabled)
				if !view.Enabled {
					state = color.YellowString(messages.StateDisabled)
				}
				line := fmt.Sprintf(messages.ListLineFmt, view.ID, view.Version, state)
				if view.Legacy {
					line += messages.ListLegacySuffix
				}
				if view.UpdateAvailable != "" {
					line += fmt.Sprintf(messages.ListUpdateSuffixFmt, view.UpdateAvailable)
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, messages.FlagJSON)
	return cmd
}

func newUpdatesCmd() *cobra.Command {
	var outputJSON bool
	cmd := &cobra.Command{
		Use:   messages.UpdatesUse,
		Short: messages.UpdatesShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			mgr, err := a.manager(cmd, managerOptions{requireCatalog: true})
			if err != nil {
				return err
			}
			updates, err := mgr.AvailableUpdates(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if outputJSON {
				if updates == nil {
					updates = []update.Update{}
				}
				return writeJSON(out, updates)
			}
			if len(updates) == 0 {
				_, err := fmt.Fprintf(out, messages.UpdatesNoneFmt, args[0])
				return err
			}
			for _, u := range updates {
				if _, err := fmt.Fprintf(out, messages.UpdatesLineFmt, u.ThemeID, u.InstalledVersion, u.LatestVersion, u.LatestAt.Format("2006-01-02")); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, messages.FlagJSON)
	return cmd
}
