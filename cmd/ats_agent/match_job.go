package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/observability"
	"github.com/jonathan/resume-ats/internal/parsing"
)

// errShortJobDescription is returned when the description is too short to extract keywords from.
var errShortJobDescription = errors.New("job description too short to analyze")

func newMatchJobCmd(a *app) *cobra.Command {
	var (
		resumePath string
		asJSON     bool
		job        jobFlags
	)
	cmd := &cobra.Command{
		Use:   "match-job",
		Short: "Compare a résumé's keywords with a job description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readResume(resumePath, a.logger)
			if err != nil {
				return err
			}
			jd, err := job.load(cmd.Context(), a.logger)
			if err != nil {
				return err
			}

			match := a.calc.Matcher().AnalyzeText(parsing.NormalizeResume(raw), jd)
			if match == nil {
				return errShortJobDescription
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), "", match)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintJobMatch(match)
			return nil
		},
	}
	cmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to a résumé JSON file (required)")
	cmd.Flags().StringVar(&job.file, "job", "", "Path to a job description text file")
	cmd.Flags().StringVar(&job.url, "job-url", "", "URL of a job posting")
	cmd.Flags().BoolVar(&job.useBrowser, "use-browser", false, "Render --job-url in headless Chrome when needed")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the match as JSON")
	_ = cmd.MarkFlagRequired("resume")
	cmd.MarkFlagsOneRequired("job", "job-url")
	cmd.MarkFlagsMutuallyExclusive("job", "job-url")
	return cmd
}
