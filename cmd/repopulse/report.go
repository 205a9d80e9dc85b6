package main

import (
	"fmt"

	"github.com/ludo-technologies/repopulse/app"
	"github.com/ludo-technologies/repopulse/domain"
	"github.com/ludo-technologies/repopulse/internal/config"
	"github.com/ludo-technologies/repopulse/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// reportOptions holds the flag values of the root command
type reportOptions struct {
	fix          bool
	interactive  bool
	outputFormat string
	jsonOutput   bool
	configPath   string
	verbose      bool
}

func reportCmd() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "repopulse [path]",
		Short: "repopulse - repository health check",
		Long: `repopulse inspects a local repository and reports a health score covering
documentation, commit history, repository size and hygiene files.

With --fix it writes a missing LICENSE and .gitignore instead of reporting.

A directory named like a subcommand (init, version) must be given with a
path prefix, e.g. ./init, or it runs the subcommand.

Examples:
  repopulse
  repopulse ./my-project
  repopulse --json .
  repopulse --fix
  repopulse --fix --interactive
  repopulse ./init`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.fix, "fix", false,
		"Create missing LICENSE and .gitignore files instead of reporting")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false,
		"Ask before creating each file (with --fix)")
	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", "",
		"Output format: text, json, yaml (default from config, else text)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging on stderr")

	return cmd
}

func runReport(cmd *cobra.Command, args []string, opts *reportOptions) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := config.LoadConfigWithTarget(opts.configPath, root)
	if err != nil {
		return domain.NewConfigError("failed to load configuration", err)
	}

	format, err := resolveFormat(opts, cfg)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, cfg, opts.verbose)
	logger.WithFields(logrus.Fields{
		"root":   root,
		"format": format,
		"fix":    opts.fix,
	}).Debug("Starting")

	out := cmd.OutOrStdout()
	renderer := service.NewConsoleRenderer(out)
	formatter := service.NewOutputFormatter()

	if opts.fix {
		fixer := service.NewHygieneFixer(logger)
		if opts.interactive {
			fixer = fixer.WithConfirmer(service.NewPromptConfirmer())
		}
		_, err := app.NewFixUseCase(fixer, formatter, renderer).
			Execute(app.FixRequest{Root: root, Format: format, Writer: out})
		return err
	}

	classifier := service.NewFileClassifier(logger).WithGitignore(cfg.Analysis.RespectGitignore)
	commits := service.NewGitCommitSource(cfg.Git.Binary, cfg.Git.Timeout, logger)

	progress := service.NewProgressManager(format == domain.OutputFormatText)
	defer progress.Close()

	scorer := service.NewHealthScorer(commits, classifier, logger).WithProgress(progress)

	uc, err := app.NewAnalyzeUseCaseBuilder().
		WithAnalyzer(scorer).
		WithFormatter(formatter).
		WithRenderer(renderer).
		Build()
	if err != nil {
		return err
	}

	_, err = uc.Execute(cmd.Context(), app.AnalyzeRequest{Root: root, Format: format, Writer: out})
	return err
}

// resolveFormat applies --json, then --format, then the configured default
func resolveFormat(opts *reportOptions, cfg *config.Config) (domain.OutputFormat, error) {
	name := cfg.Output.Format
	if opts.outputFormat != "" {
		name = opts.outputFormat
	}
	if opts.jsonOutput {
		name = string(domain.OutputFormatJSON)
	}

	format, err := domain.ParseOutputFormat(name)
	if err != nil {
		return "", fmt.Errorf("invalid --format: %w", err)
	}
	return format, nil
}

// newLogger builds the stderr logger; --verbose forces debug
func newLogger(cmd *cobra.Command, cfg *config.Config, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(cfg.LogLevel())
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
