package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zen-explorer/zen-explorer/internal/config"
	"github.com/zen-explorer/zen-explorer/internal/messages"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ConfigUse,
		Short: messages.ConfigShort,
	}
	cmd.AddCommand(newConfigPathCmd(), newConfigShowCmd(), newConfigSetCmd(), newConfigKeysCmd())
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConfigPathUse,
		Short: messages.ConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := config.DefaultPaths(lookupEnv)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), paths.ConfigPath)
			return err
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConfigShowUse,
		Short: messages.ConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			data, err := config.Encode(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConfigSetUse,
		Short: messages.ConfigSetShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := config.DefaultPaths(lookupEnv)
			if err != nil {
				return err
			}
			if _, err := config.SetValue(paths, args[0], args[1]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), messages.ConfigSetDoneFmt, args[0], args[1], paths.ConfigPath)
			return err
		},
	}
}

func newConfigKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConfigKeysUse,
		Short: messages.ConfigKeysShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, field := range config.Fields() {
				line := fmt.Sprintf(messages.ConfigKeyLineFmt, field.Key, field.Type, field.Description)
				if len(field.Options) > 0 {
					values := config.FieldOptionValues(field.Key)
					line += fmt.Sprintf(messages.ConfigKeyOptionsFmt, strings.Join(values, "|"))
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
