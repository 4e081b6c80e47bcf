package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/lint"
)

// ErrNoLinter is returned when the lint command has no runner wired.
var ErrNoLinter = errors.New("lint is not available")

// LintRequest carries the lint command's inputs to the runner.
type LintRequest struct {
	Paths       []string
	ConfigPath  string
	Suppress    []string
	Jobs        int
	MetricsFile string
}

// LintRunner defines the interface for running a lint pass.
type LintRunner interface {
	Lint(ctx context.Context, req LintRequest) (*lint.Result, error)
}

// ReportWriter writes a rendered report to a file.
type ReportWriter interface {
	WriteReport(ctx context.Context, path, content string) error
}

// Watcher reruns a callback when files under paths change.
type Watcher interface {
	Watch(ctx context.Context, paths []string, onChange func(context.Context) error) error
	Close() error
}

// lintOptions holds the lint command's flags.
type lintOptions struct {
	configPath  string
	jsonOutput  bool
	failLevel   string
	output      string
	metricsFile string
	suppress    []string
	watch       bool
	jobs        int
}

// NewLintCmd creates the lint command.
func NewLintCmd(runner LintRunner, reports ReportWriter, newWatcher func() (Watcher, error)) *cobra.Command {
	var opts lintOptions

	cmd := &cobra.Command{
		Use:          "lint [paths...]",
		Short:        "Validate document-tree exports against the rule set",
		SilenceUsage: true,
		Long: "Validate document-tree exports (*.adoc.json, *.adoc.yaml) against the rule set.\n" +
			"Directories are searched recursively; the default path is the current directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if runner == nil {
				return ErrNoLinter
			}
			threshold, err := domain.ParseSeverity(opts.failLevel)
			if err != nil || threshold == domain.SeverityUnset {
				return fmt.Errorf("invalid --fail-level %q: want error, warn, or info", opts.failLevel)
			}
			if len(args) == 0 {
				args = []string{"."}
			}
			req := LintRequest{
				Paths:       args,
				ConfigPath:  opts.configPath,
				Suppress:    opts.suppress,
				Jobs:        opts.jobs,
				MetricsFile: opts.metricsFile,
			}

			if !opts.watch {
				return runLintAndReport(cmd, runner, reports, req, opts, threshold)
			}
			return watchAndLint(cmd, runner, reports, newWatcher, req, opts, threshold)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Rules file (default: nearest .adoclint.yaml)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().StringVar(&opts.failLevel, "fail-level", "error", "Lowest severity that fails the run: error, warn, or info")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to a textfile")
	cmd.Flags().StringArrayVar(&opts.suppress, "suppress", nil, "Suppress a rule id; a trailing .* suppresses a prefix (repeatable)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-lint whenever exports or the rules file change")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "Documents to validate concurrently (default: one per CPU)")

	return cmd
}

// runLintAndReport runs the linter and renders the report. It returns a
// LoadFailedError when documents could not be loaded, or a
// FindingsDetectedError when messages reach the threshold.
func runLintAndReport(cmd *cobra.Command, runner LintRunner, reports ReportWriter, req LintRequest, opts lintOptions, threshold domain.Severity) error {
	result, err := runner.Lint(cmd.Context(), req)
	if err != nil {
		return &ContextError{Op: "lint", Err: err}
	}

	var buf bytes.Buffer
	render(&buf, result, opts.jsonOutput)
	if err := emit(cmd.Context(), cmd.OutOrStdout(), reports, opts.output, buf.String()); err != nil {
		return err
	}

	if result.Summary.Failed > 0 {
		return &LoadFailedError{Failed: result.Summary.Failed}
	}
	if result.Highest() != domain.SeverityUnset && result.Highest().AtLeast(threshold) {
		return &FindingsDetectedError{
			Errors:   result.Summary.Errors,
			Warnings: result.Summary.Warnings,
			Infos:    result.Summary.Infos,
		}
	}
	return nil
}

func render(w io.Writer, result *lint.Result, jsonOutput bool) {
	if jsonOutput {
		formatLintJSON(w, result)
		return
	}
	formatLintHuman(w, result)
}

// emit writes the report to stdout, or to path under an advisory lock.
func emit(ctx context.Context, stdout io.Writer, reports ReportWriter, path, content string) error {
	if path == "" {
		_, err := io.WriteString(stdout, content)
		return err
	}
	if reports == nil {
		return errors.New("report output is not available")
	}
	if err := reports.WriteReport(ctx, path, content); err != nil {
		return &ContextError{Op: "write report", Path: path, Err: err}
	}
	return nil
}

// watchAndLint lints once, then again after every change, until the
// command's context is cancelled. Findings do not stop the loop.
func watchAndLint(cmd *cobra.Command, runner LintRunner, reports ReportWriter, newWatcher func() (Watcher, error), req LintRequest, opts lintOptions, threshold domain.Severity) error {
	if newWatcher == nil {
		return errors.New("watch mode is not available")
	}
	w, err := newWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	once := func(context.Context) error {
		err := runLintAndReport(cmd, runner, reports, req, opts, threshold)
		if ExitCodeFromError(err) == 2 {
			return nil
		}
		return err
	}
	if err := once(cmd.Context()); err != nil {
		slog.Warn("lint failed", "err", err)
	}

	paths := append([]string(nil), req.Paths...)
	if req.ConfigPath != "" {
		paths = append(paths, req.ConfigPath)
	}
	return w.Watch(cmd.Context(), paths, once)
}
