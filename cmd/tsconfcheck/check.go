package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/tsconfcheck/internal/checker"
	"github.com/smykla-skalski/tsconfcheck/internal/color"
	internalconfig "github.com/smykla-skalski/tsconfcheck/internal/config"
	"github.com/smykla-skalski/tsconfcheck/internal/discover"
	"github.com/smykla-skalski/tsconfcheck/internal/report"
	"github.com/smykla-skalski/tsconfcheck/internal/rules"
	"github.com/smykla-skalski/tsconfcheck/internal/tsconfig"
	"github.com/smykla-skalski/tsconfcheck/pkg/config"
	"github.com/smykla-skalski/tsconfcheck/pkg/logger"
)

var (
	formatFlag      string
	failOnFlag      string
	disableList     []string
	concurrency     int
	recommendAbsent bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check tsconfig files (default command)",
	Long: `Check tsconfig files and report diagnostics.

Exit status is 1 when a tsconfig cannot be loaded or a diagnostic is at or
above --fail-on, 2 on invalid arguments or configuration, 0 otherwise.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addCheckFlags(checkCmd)
}

// addCheckFlags registers the check flags on cmd. Only flags changed on the
// command line override the configuration.
func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&formatFlag,
		"format",
		"f",
		string(config.FormatText),
		"Output format (text, table, json)",
	)
	cmd.Flags().StringVar(
		&failOnFlag,
		"fail-on",
		string(config.FailOnWarning),
		"Lowest severity failing the run (warning, advisory, never)",
	)
	cmd.Flags().StringSliceVar(
		&disableList,
		"disable",
		[]string{},
		"Comma-separated list of rule families to disable (e.g., default,recommended)",
	)
	cmd.Flags().IntVarP(
		&concurrency,
		"concurrency",
		"j",
		0,
		"Number of files checked in parallel (default: number of CPUs)",
	)
	cmd.Flags().BoolVar(
		&recommendAbsent,
		"recommend-absent",
		false,
		"Also recommend options that are not set at all",
	)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	paths, err := discover.Paths(args)
	if err != nil {
		return err
	}

	engine, err := rules.NewEngine(nil, internalconfig.EngineOptions(cfg)...)
	if err != nil {
		return errors.Wrap(err, "failed to create rule engine")
	}

	theme := color.NewTheme(color.Enabled(cfg.Output.IsColorEnabled(), stdoutFile(cmd)))

	reporter, err := report.New(cfg.Output.GetFormat(), theme)
	if err != nil {
		return err
	}

	log.Info("checking", "paths", len(paths), "format", cfg.Output.GetFormat())

	loader := tsconfig.NewLoader(tsconfig.WithLogger(log))
	results := checker.New(
		loader,
		engine,
		checker.WithLogger(log),
		checker.WithConcurrency(concurrency),
	).Check(cmd.Context(), paths)

	if err := reporter.Report(cmd.OutOrStdout(), results); err != nil {
		return err
	}

	exitCode = report.ExitCode(results, cfg.Output.GetFailOn())

	return nil
}

// loadConfig loads the configuration for cmd and creates the logger it asks for.
func loadConfig(cmd *cobra.Command) (*config.Config, logger.Logger, error) {
	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := loader.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load configuration")
	}

	level, err := logger.ParseLevel(cfg.Log.GetLevel())
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewSlogAdapter(cmd.ErrOrStderr(), level)
	log.Debug("configuration loaded", "sources", loader.Sources())

	return cfg, log, nil
}
