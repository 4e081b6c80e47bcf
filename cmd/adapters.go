package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/eykd/adoclint-go/internal/configfile"
	"github.com/eykd/adoclint-go/internal/doctree"
	"github.com/eykd/adoclint-go/internal/fs"
	"github.com/eykd/adoclint-go/internal/lint"
	"github.com/eykd/adoclint-go/internal/lock"
	"github.com/eykd/adoclint-go/internal/metrics"
	"github.com/eykd/adoclint-go/internal/ruleset"
	"github.com/eykd/adoclint-go/internal/watch"
)

// --- configAdapter ---

type configAdapter struct {
	getwd func() (string, error)
}

func (a *configAdapter) Resolve(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	cwd, err := a.getwd()
	if err != nil {
		return "", err
	}
	return fs.FindConfig(cwd, configfile.DefaultFilename)
}

func (a *configAdapter) Load(path string) (*ruleset.Config, error) {
	return configfile.Load(path)
}

func (a *configAdapter) Schema() string {
	return configfile.Schema()
}

// --- lintAdapter ---

type lintAdapter struct {
	getwd func() (string, error)
}

// loadConfig loads the explicit rules file, or the nearest default one.
// Without any rules file the run uses an empty rule set.
func (a *lintAdapter) loadConfig(path string) (*ruleset.Config, error) {
	resolver := &configAdapter{getwd: a.getwd}
	path, err := resolver.Resolve(path)
	if errors.Is(err, fs.ErrConfigNotFound) {
		slog.Warn("no rules file found; using an empty rule set", "name", configfile.DefaultFilename)
		return &ruleset.Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("loading rules", "path", path)
	return configfile.Load(path)
}

func (a *lintAdapter) Lint(ctx context.Context, req LintRequest) (*lint.Result, error) {
	cfg, err := a.loadConfig(req.ConfigPath)
	if err != nil {
		return nil, err
	}

	opts := []lint.Option{
		lint.WithLogger(slog.Default()),
		lint.WithSource(fs.OSSourceReader{}, fs.FMAdapter{}, fs.ColumnAdapter{}),
	}
	var recorder *metrics.Recorder
	if req.MetricsFile != "" {
		recorder = metrics.NewRecorder(nil)
		opts = append(opts, lint.WithRecorder(recorder))
	}

	svc := lint.NewService(fs.OSFinder{}, fs.DocTreeLoader{}, opts...)
	result, err := svc.Lint(ctx, cfg, req.Paths, lint.Options{Suppress: req.Suppress, Jobs: req.Jobs})
	if err != nil {
		return nil, err
	}

	if recorder != nil {
		if err := lock.ForFile(req.MetricsFile).Do(ctx, func() error {
			return recorder.WriteTextfile(req.MetricsFile)
		}); err != nil {
			return nil, &ContextError{Op: "write metrics", Path: req.MetricsFile, Err: err}
		}
	}
	return result, nil
}

// --- reportAdapter ---

type reportAdapter struct{}

// WriteReport writes content under a lock beside path. The lock file lives
// in the report's directory, so that directory is created first.
func (reportAdapter) WriteReport(ctx context.Context, path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return lock.ForFile(path).Do(ctx, func() error {
		return fs.OSWriter{}.WriteFile(ctx, path, content)
	})
}

// --- fileCreatorAdapter ---

type fileCreatorAdapter struct{}

func (fileCreatorAdapter) Exists(path string) bool {
	return fs.OSWriter{}.Exists(path)
}

func (fileCreatorAdapter) WriteFile(ctx context.Context, path, content string) error {
	return fs.OSWriter{}.WriteFile(ctx, path, content)
}

// --- watchAdapter ---

// watchedFile reports whether a change to path should trigger a rerun:
// document-tree exports, raw sources, and rules files.
func watchedFile(path string) bool {
	base := filepath.Base(path)
	if doctree.IsExport(base) || base == configfile.DefaultFilename {
		return true
	}
	switch filepath.Ext(base) {
	case ".adoc", ".yaml", ".yml":
		return true
	}
	return false
}

func newWatchAdapter() (Watcher, error) {
	return watch.New(slog.Default(), watch.DefaultInterval, watchedFile)
}
