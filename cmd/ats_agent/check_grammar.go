package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ats/internal/grammar"
	"github.com/jonathan/resume-ats/internal/observability"
	"github.com/jonathan/resume-ats/internal/parsing"
)

func newCheckGrammarCmd(a *app) *cobra.Command {
	var (
		resumePath string
		fix        bool
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "check-grammar",
		Short: "Check a résumé for spelling, grammar and terminology errors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readResume(resumePath, a.logger)
			if err != nil {
				return err
			}
			record := parsing.NormalizeResume(raw)
			res := grammar.CheckResume(record)

			out := cmd.OutOrStdout()
			if asJSON {
				if err := writeJSON(out, "", res); err != nil {
					return err
				}
			} else {
				observability.NewPrinter(out).PrintGrammarReport(&res)
			}

			if !fix {
				return nil
			}
			fixed := grammar.FixSections(record)
			if len(fixed) == 0 {
				_, _ = fmt.Fprintln(out, "No corrections to apply.")
				return nil
			}
			names := make([]string, 0, len(fixed))
			for name := range fixed {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				_, _ = fmt.Fprintf(out, "\n[%s]\n%s\n", name, fixed[name])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to a résumé JSON file (required)")
	cmd.Flags().BoolVar(&fix, "fix", false, "Print each section with corrections applied")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full report as JSON")
	_ = cmd.MarkFlagRequired("resume")
	return cmd
}
