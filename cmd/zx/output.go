package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zen-explorer/zen-explorer/internal/install"
	"github.com/zen-explorer/zen-explorer/internal/messages"
)

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printResult renders one manager result: the planned operations and diffs
// for a dry run, otherwise a one-line summary.
func printResult(out io.Writer, result *install.Result) error {
	if result.DryRun {
		if _, err := fmt.Fprintf(out, messages.ResultDryRunHeaderFmt, result.Operation, result.Profile); err != nil {
			return err
		}
		if len(result.Ops) == 0 {
			_, err := fmt.Fprintln(out, messages.ResultNoOps)
			return err
		}
		for _, op := range result.Ops {
			if _, err := fmt.Fprintf(out, "  %s\n", op); err != nil {
				return err
			}
		}
		for _, preview := range result.Previews {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
			if _, err := io.WriteString(out, preview.UnifiedDiff); err != nil {
				return err
			}
		}
		return nil
	}

	if !result.Changed() {
		_, err := fmt.Fprintf(out, messages.ResultUnchangedFmt, result.Profile)
		return err
	}
	_, err := fmt.Fprintln(out, color.GreenString(summary(result)))
	return err
}

func summary(result *install.Result) string {
	themes := strings.Join(result.ThemeIDs, ", ")
	switch result.Operation {
	case install.OpInstall:
		return fmt.Sprintf(messages.ResultInstalledFmt, themes, result.Profile)
	case install.OpUninstall:
		return fmt.Sprintf(messages.ResultUninstalledFmt, themes, result.Profile)
	case install.OpUpdate:
		return fmt.Sprintf(messages.ResultUpdatedFmt, themes, result.Profile)
	case install.OpEnable:
		return fmt.Sprintf(messages.ResultEnabledFmt, themes, result.Profile)
	case install.OpDisable:
		return fmt.Sprintf(messages.ResultDisabledFmt, themes, result.Profile)
	case install.OpMigrate:
		parts := make([]string, 0, len(result.Migrated))
		for _, m := range result.Migrated {
			state := messages.StateDisabled
			if m.Enabled {
				state = messages.StateEnabled
			}
			parts = append(parts, fmt.Sprintf("%s=%s", m.ThemeID, state))
		}
		return fmt.Sprintf(messages.ResultMigratedFmt, result.Profile, strings.Join(parts, ", "))
	default:
		return fmt.Sprintf(messages.ResultAppliedFmt, result.Profile, result.Strategy)
	}
}

// mutationFlags are the flags shared by every command that changes a profile.
type mutationFlags struct {
	dryRun    bool
	diff      bool
	diffLines int
	json      bool
}

func (f *mutationFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&f.dryRun, "dry-run", false, messages.FlagDryRun)
	flags.BoolVar(&f.diff, "diff", false, messages.FlagDiff)
	flags.IntVar(&f.diffLines, "diff-lines", install.DefaultDiffMaxLines, messages.FlagDiffLines)
	flags.BoolVar(&f.json, "json", false, messages.FlagJSON)
}

func (f *mutationFlags) options() install.Options {
	// Diffs are only rendered for plans.
	return install.Options{DryRun: f.dryRun || f.diff, Diff: f.diff}
}

func (f *mutationFlags) managerOptions(requireCatalog bool) managerOptions {
	return managerOptions{requireCatalog: requireCatalog, diffLines: f.diffLines}
}

func (f *mutationFlags) render(out io.Writer, result *install.Result) error {
	if f.json {
		return writeJSON(out, result)
	}
	return printResult(out, result)
}
