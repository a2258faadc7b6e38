package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ats/internal/export"
	"github.com/jonathan/resume-ats/internal/logging"
	"github.com/jonathan/resume-ats/internal/observability"
	"github.com/jonathan/resume-ats/internal/parsing"
	"github.com/jonathan/resume-ats/internal/schemas"
)

type scoreOptions struct {
	resume  string
	dir     string
	workers int
	xlsx    string
	out     string
	verbose bool
	job     jobFlags
}

func newScoreCmd(a *app) *cobra.Command {
	opts := &scoreOptions{}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one résumé or every résumé in a directory",
		Long: `Score a résumé JSON file and print the ATS result as JSON.

With --dir, every *.json file in the directory is scored in parallel and a
ranked summary is printed; --xlsx additionally writes an Excel report.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.dir != "" {
				return runScoreDir(cmd, a, opts)
			}
			return runScore(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.resume, "resume", "r", "", "Path to a résumé JSON file")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Directory of résumé JSON files to score and rank")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Parallel workers for --dir (default: batch.workers)")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "Write an Excel report for --dir to this path")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the JSON result to this file instead of stdout")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print a formatted report")
	cmd.Flags().StringVar(&opts.job.file, "job", "", "Path to a job description text file")
	cmd.Flags().StringVar(&opts.job.url, "job-url", "", "URL of a job posting to match against")
	cmd.Flags().BoolVar(&opts.job.useBrowser, "use-browser", false, "Render --job-url in headless Chrome when needed")

	cmd.MarkFlagsOneRequired("resume", "dir")
	cmd.MarkFlagsMutuallyExclusive("resume", "dir")
	cmd.MarkFlagsMutuallyExclusive("job", "job-url")
	cmd.MarkFlagsMutuallyExclusive("dir", "out")
	return cmd
}

func runScore(cmd *cobra.Command, a *app, opts *scoreOptions) error {
	ctx := cmd.Context()
	raw, err := readResume(opts.resume, a.logger)
	if err != nil {
		return err
	}
	jd, err := opts.job.load(ctx, a.logger)
	if err != nil {
		return err
	}
	if jd != "" {
		raw["job_description"] = jd
	}

	start := time.Now()
	res := a.calc.Calculate(raw)
	a.logger.Debug("scored resume",
		zap.String(logging.FieldSource, opts.resume),
		zap.Int(logging.FieldTotalScore, res.TotalScore),
		zap.Duration(logging.FieldDuration, time.Since(start)))

	if err := schemas.ValidateResult(res); err != nil {
		return fmt.Errorf("result failed schema validation: %w", err)
	}

	if opts.verbose {
		report := cmd.OutOrStdout()
		if opts.out == "" {
			report = cmd.ErrOrStderr()
		}
		observability.NewPrinter(report).PrintATSResult(&res)
	}
	return writeJSON(cmd.OutOrStdout(), opts.out, res)
}

func runScoreDir(cmd *cobra.Command, a *app, opts *scoreOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	paths, err := filepath.Glob(filepath.Join(opts.dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", opts.dir, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .json files found in %s", opts.dir)
	}
	sort.Strings(paths)

	jd, err := opts.job.load(ctx, a.logger)
	if err != nil {
		return err
	}

	workers := opts.workers
	if workers <= 0 {
		workers = a.cfg.Batch.Workers
	}

	entries := make([]observability.RankedEntry, len(paths))
	names := make([]string, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i].Source = filepath.Base(path)
			raw, err := readResume(path, a.logger)
			if err != nil {
				entries[i].Err = err
				return nil
			}
			if jd != "" {
				raw["job_description"] = jd
			}
			entries[i].Result = a.calc.Calculate(raw)
			names[i] = parsing.NormalizeResume(raw).Name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	order := rankOrder(entries)
	ranked := make([]observability.RankedEntry, 0, len(order))
	rows := make([]export.Entry, 0, len(order))
	for _, i := range order {
		ranked = append(ranked, entries[i])
		if entries[i].Err == nil {
			rows = append(rows, export.Entry{Source: entries[i].Source, Name: names[i], Result: entries[i].Result})
		}
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintRanking(ranked)
	if opts.verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		for _, e := range ranked {
			if e.Err == nil {
				printer.PrintATSResult(&e.Result)
			}
		}
	}

	if opts.xlsx != "" {
		path, err := export.SaveExcel(opts.xlsx, rows)
		if err != nil {
			return err
		}
		a.logger.Info("wrote excel report", zap.String("path", path), zap.Int("resumes", len(rows)))
	}

	failed := len(entries) - len(rows)
	if failed > 0 {
		return fmt.Errorf("%d of %d résumés could not be scored", failed, len(entries))
	}
	return nil
}

// rankOrder returns entry indexes by descending score. Failed entries go last
// and ties keep file-name order.
func rankOrder(entries []observability.RankedEntry) []int {
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		a, b := entries[order[x]], entries[order[y]]
		if (a.Err == nil) != (b.Err == nil) {
			return a.Err == nil
		}
		return a.Result.TotalScore > b.Result.TotalScore
	})
	return order
}

