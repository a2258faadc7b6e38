// Package main provides the ats_agent CLI: résumé scoring, grammar checks,
// job matching and the HTTP API server.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/ats"
	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/logging"
)

// app carries state shared by every subcommand once the root command has
// loaded configuration.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
	calc       *ats.Calculator
}

// setup loads configuration, the logger and the calculator.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		return err
	}
	calc, err := ats.NewCalculator()
	if err != nil {
		return fmt.Errorf("failed to load skill catalog: %w", err)
	}
	a.cfg, a.logger, a.calc = cfg, logger, calc
	return nil
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:               "ats_agent",
		Short:             "ATS résumé scoring engine",
		Long:              "ats_agent scores résumés the way an applicant tracking system would, reports flagged issues and corrections, and compares résumés with job descriptions.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.sync() },
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a config file (default: ./ats.{yaml,json,toml} when present)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.Bool("log-json", false, "Emit JSON logs")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.json", flags.Lookup("log-json"))

	rootCmd.AddCommand(
		newScoreCmd(a),
		newCheckGrammarCmd(a),
		newMatchJobCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
