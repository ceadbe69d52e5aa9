package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zen-explorer/zen-explorer/internal/catalog"
	"github.com/zen-explorer/zen-explorer/internal/config"
	"github.com/zen-explorer/zen-explorer/internal/doctor"
	"github.com/zen-explorer/zen-explorer/internal/fileop"
	"github.com/zen-explorer/zen-explorer/internal/messages"
	"github.com/zen-explorer/zen-explorer/internal/profile"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			paths, err := config.DefaultPaths(lookupEnv)
			if err != nil {
				return err
			}
			home, err := homeDir()
			if err != nil {
				return err
			}

			// 1. Config, falling back to defaults so the remaining checks still run.
			allResults, cfg := doctor.CheckConfig(paths)

			// 2. Catalog
			catalogResults, repo := doctor.CheckCatalog(cfg.Catalog.Path)
			allResults = append(allResults, catalogResults...)
			var source catalog.Source
			if repo != nil {
				source = repo
			}

			hasFail := doctor.HasFailure(allResults)
			for _, r := range allResults {
				printDoctorResult(out, r)
			}

			// 3. Profiles
			profiles, profileResults := doctorProfiles(cfg.Locator(goos, home), args)
			for _, r := range profileResults {
				printDoctorResult(out, r)
			}
			hasFail = hasFail || doctor.HasFailure(profileResults)
			for _, p := range profiles {
				_, _ = fmt.Fprintf(out, messages.DoctorProfileHeaderFmt, p, p.Dir)
				results := doctor.CheckProfile(fileop.RealSystem{}, p, source, cfg.Strategy())
				for _, r := range results {
					printDoctorResult(out, r)
				}
				hasFail = hasFail || doctor.HasFailure(results)
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

// doctorProfiles resolves the profiles named in refs, or every discovered profile when refs is empty.
func doctorProfiles(locator profile.DirLocator, refs []string) ([]profile.Profile, []doctor.Result) {
	if len(refs) == 0 {
		profiles, err := locator.List()
		if err != nil {
			return nil, []doctor.Result{{
				Status:    doctor.StatusFail,
				CheckName: messages.DoctorCheckNameProfiles,
				Message:   err.Error(),
			}}
		}
		if len(profiles) == 0 {
			return nil, []doctor.Result{{
				Status:         doctor.StatusWarn,
				CheckName:      messages.DoctorCheckNameProfiles,
				Message:        fmt.Sprintf(messages.DoctorNoProfilesFmt, strings.Join(locator.Roots, ", ")),
				Recommendation: messages.DoctorNoProfilesRecommend,
			}}
		}
		return profiles, nil
	}

	var profiles []profile.Profile
	var results []doctor.Result
	for _, ref := range refs {
		p, err := locator.Resolve(ref)
		if err != nil {
			results = append(results, doctor.Result{
				Status:         doctor.StatusFail,
				CheckName:      messages.DoctorCheckNameProfiles,
				Message:        err.Error(),
				Recommendation: messages.DoctorProfileNotFoundRecommend,
			})
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, results
}

func printDoctorResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	for i, line := range strings.Split(recommendation, "\n") {
		prefix := messages.DoctorRecommendationIndent
		if i == 0 {
			prefix = messages.DoctorRecommendationPrefix
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", prefix, line)
	}
}
