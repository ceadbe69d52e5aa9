package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zen-explorer/zen-explorer/internal/messages"
)

func newRootCmd() *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, messages.RootFlagNoColor)

	cmd.AddCommand(
		newProfilesCmd(),
		newThemesCmd(),
		newListCmd(),
		newInstallCmd(),
		newUninstallCmd(),
		newUpdateCmd(),
		newEnableCmd(),
		newDisableCmd(),
		newApplyCmd(),
		newUpdatesCmd(),
		newMigrateCmd(),
		newDoctorCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.VersionUse,
		Short: messages.VersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write([]byte(versionString() + "\n"))
			return err
		},
	}
}
