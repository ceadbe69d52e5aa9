package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zen-explorer/zen-explorer/internal/install"
	"github.com/zen-explorer/zen-explorer/internal/messages"
	"github.com/zen-explorer/zen-explorer/internal/update"
)

// errInstallCancelled is returned when the user declines the conflict prompt.
var errInstallCancelled = errors.New(messages.InstallCancelled)

func newInstallCmd() *cobra.Command {
	var flags mutationFlags
	var force bool

	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			mgr, err := a.manager(cmd, flags.managerOptions(true))
			if err != nil {
				return err
			}
			profileRef := args[0]
			opts := flags.options()
			var result *install.Result
			err = a.locked(opts.DryRun, func() error {
				result, err = installThemes(mgr, profileRef, args[1:], install.InstallOptions{
					BypassConflict: force,
					DryRun:         opts.DryRun,
					Diff:           opts.Diff,
				}, !flags.json)
				return err
			})
			if err != nil {
				return err
			}
			return flags.render(cmd.OutOrStdout(), result)
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolVar(&force, "force", false, messages.InstallFlagForce)
	return cmd
}

// installThemes installs a batch of themes, asking before it writes over
// unmanaged stylesheets when a terminal is attached and prompting is allowed.
func installThemes(mgr *install.Manager, profileRef string, themeIDs []string, opts install.InstallOptions, allowPrompt bool) (*install.Result, error) {
	result, err := mgr.InstallAll(profileRef, themeIDs, opts)
	var conflict *install.ConflictError
	if !errors.As(err, &conflict) || !allowPrompt || !isTerminal() {
		return result, err
	}
	proceed, promptErr := confirmConflictFunc(conflict)
	if promptErr != nil {
		return nil, promptErr
	}
	if !proceed {
		return nil, errInstallCancelled
	}
	opts.BypassConflict = true
	return mgr.InstallAll(profileRef, themeIDs, opts)
}

func newUninstallCmd() *cobra.Command {
	return newThemeMutationCmd(messages.UninstallUse, messages.UninstallShort, (*install.Manager).Uninstall)
}

func newEnableCmd() *cobra.Command {
	return newThemeMutationCmd(messages.EnableUse, messages.EnableShort, (*install.Manager).Enable)
}

func newDisableCmd() *cobra.Command {
	return newThemeMutationCmd(messages.DisableUse, messages.DisableShort, (*install.Manager).Disable)
}

type themeMutation func(mgr *install.Manager, profileRef string, themeID string, opts install.Options) (*install.Result, error)

// newThemeMutationCmd builds "<cmd> <profile> <theme>" commands that change one installed theme.
func newThemeMutationCmd(use string, short string, run themeMutation) *cobra.Command {
	var flags mutationFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			mgr, err := a.manager(cmd, flags.managerOptions(false))
			if err != nil {
				return err
			}
			opts := flags.options()
			var result *install.Result
			err = a.locked(opts.DryRun, func() error {
				result, err = run(mgr, args[0], args[1], opts)
				return err
			})
			if err != nil {
				return err
			}
			return flags.render(cmd.OutOrStdout(), result)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newApplyCmd() *cobra.Command {
	return newProfileMutationCmd(messages.ApplyUse, messages.ApplyShort, (*install.Manager).Apply)
}

func newMigrateCmd() *cobra.Command {
	return newProfileMutationCmd(messages.MigrateUse, messages.MigrateShort, (*install.Manager).MigrateManifest)
}

type profileMutation func(mgr *install.Manager, profileRef string, opts install.Options) (*install.Result, error)

// newProfileMutationCmd builds "<cmd> <profile>" commands.
func newProfileMutationCmd(use string, short string, run profileMutation) *cobra.Command {
	var flags mutationFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			mgr, err := a.manager(cmd, flags.managerOptions(false))
			if err != nil {
				return err
			}
			opts := flags.options()
			var result *install.Result
			err = a.locked(opts.DryRun, func() error {
				result, err = run(mgr, args[0], opts)
				return err
			})
			if err != nil {
				return err
			}
			return flags.render(cmd.OutOrStdout(), result)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newUpdateCmd() *cobra.Command {
	var flags mutationFlags
	var all bool

	cmd := &cobra.Command{
		Use:   messages.UpdateUse,
		Short: messages.UpdateShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profileRef, ids := args[0], args[1:]
			if all && len(ids) > 0 {
				return fmt.Errorf(messages.UpdateAllWithThemes)
			}
			if !all && len(ids) == 0 {
				return fmt.Errorf(messages.UpdateNeedsThemes)
			}
			a, err := loadApp()
			if err != nil {
				return err
			}
			mgr, err := a.manager(cmd, flags.managerOptions(true))
			if err != nil {
				return err
			}
			if all {
				updates, err := mgr.AvailableUpdates(profileRef)
				if err != nil {
					return err
				}
				ids = update.IDs(updates)
				if len(ids) == 0 && !flags.json {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), messages.UpdatesNoneFmt, profileRef)
					return err
				}
			}

			opts := flags.options()
			var progress *updateProgress
			if !flags.json {
				progress = startProgress(cmd.ErrOrStderr(), len(ids))
			}
			var result *install.Result
			err = a.locked(opts.DryRun, func() error {
				result, err = mgr.UpdateAll(profileRef, ids, opts, progress.step)
				return err
			})
			progress.finish()
			if err != nil {
				return err
			}
			return flags.render(cmd.OutOrStdout(), result)
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolVar(&all, "all", false, messages.UpdateFlagAll)
	return cmd
}
