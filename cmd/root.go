// Package cmd contains the CLI commands for the adoclint application.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

// verbose holds the global --verbose flag state.
var verbose bool

// logLevel controls the level of the logger installed by the root command.
var logLevel = new(slog.LevelVar)

func init() {
	rootCmd = BuildCommandTree(DefaultDeps())
}

// GetVerbose returns the current verbose flag state.
func GetVerbose() bool {
	return verbose
}

// newLogger returns a text logger on w that honors logLevel.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// NewRootCmd creates a new root command instance.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "adoclint",
		Short:         "Lint AsciiDoc documents against structural rules",
		Long:          "adoclint validates parsed AsciiDoc documents against a YAML rule set describing sections, blocks, and their order.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				logLevel.Set(slog.LevelDebug)
			} else {
				logLevel.Set(slog.LevelWarn)
			}
			slog.SetDefault(newLogger(cmd.ErrOrStderr()))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")

	return cmd
}

// Deps holds the collaborators injected into the command tree.
type Deps struct {
	Lint       LintRunner
	Reports    ReportWriter
	NewWatcher func() (Watcher, error)
	Config     ConfigSource
	Init       FileCreator
	Getwd      func() (string, error)
}

// DefaultDeps wires the production adapters.
func DefaultDeps() Deps {
	return Deps{
		Lint:       &lintAdapter{getwd: os.Getwd},
		Reports:    &reportAdapter{},
		NewWatcher: newWatchAdapter,
		Config:     &configAdapter{getwd: os.Getwd},
		Init:       &fileCreatorAdapter{},
		Getwd:      os.Getwd,
	}
}

// BuildCommandTree assembles the root command and its subcommands.
func BuildCommandTree(deps Deps) *cobra.Command {
	root := NewRootCmd()
	root.AddCommand(
		NewLintCmd(deps.Lint, deps.Reports, deps.NewWatcher),
		NewConfigCmd(deps.Config),
		NewInitCmd(deps.Getwd, deps.Init),
		NewRulesCmd(),
	)
	return root
}

// ExecuteContext runs the root command with the given context.
// This enables graceful shutdown via context cancellation (e.g., on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
