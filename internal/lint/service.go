// Package lint provides the application service that validates a set of
// document-tree exports against a rules configuration.
package lint

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/engine"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// ErrNoDocuments is returned when the given paths contain no documents.
var ErrNoDocuments = errors.New("no document-tree exports found")

// Document is a loaded document ready for validation.
type Document struct {
	Root domain.Node
	// Filename names the document in messages.
	Filename string
	// SourcePath locates the raw source, or is "" when unknown.
	SourcePath string
}

// DocumentFinder abstracts expanding command-line paths into documents.
type DocumentFinder interface {
	FindDocuments(ctx context.Context, paths []string) ([]string, error)
}

// DocumentLoader abstracts loading one document-tree export.
type DocumentLoader interface {
	LoadDocument(ctx context.Context, path string) (*Document, error)
}

// SourceReader abstracts reading the raw markup of a document.
type SourceReader interface {
	ReadSource(ctx context.Context, path string) (string, error)
}

// FrontMatterReader abstracts reading per-document suppressions.
type FrontMatterReader interface {
	Suppressions(source string) ([]string, error)
}

// ColumnEnricher abstracts locating message values within source lines.
type ColumnEnricher interface {
	Enrich(source string, msgs []domain.Message) []domain.Message
}

// Recorder abstracts metrics collection for lint runs.
type Recorder interface {
	ObserveDocument(msgs []domain.Message, suppressed int)
	ObserveRun(result *Result, elapsed time.Duration)
}

// Options tune a single run.
type Options struct {
	// Suppress adds rule-id patterns to those in the configuration.
	Suppress []string
	// Jobs bounds concurrent document validation; zero means one per CPU.
	Jobs int
}

// FileResult holds the outcome for one document.
type FileResult struct {
	Path       string
	Filename   string
	Messages   []domain.Message
	Suppressed int
	// Err is set when the document could not be loaded.
	Err error
}

// Summary counts messages across a run.
type Summary struct {
	Files      int
	Failed     int
	Errors     int
	Warnings   int
	Infos      int
	Suppressed int
}

// Result holds the outcome of a run.
type Result struct {
	RunID   string
	Files   []FileResult
	Summary Summary
}

// Messages returns every message of the run in file order.
func (r *Result) Messages() []domain.Message {
	var all []domain.Message
	for _, f := range r.Files {
		all = append(all, f.Messages...)
	}
	return all
}

// Highest returns the most severe message severity, or SeverityUnset.
func (r *Result) Highest() domain.Severity {
	highest := domain.SeverityUnset
	for _, f := range r.Files {
		for _, m := range f.Messages {
			if m.Severity > highest {
				highest = m.Severity
			}
		}
	}
	return highest
}

// Service coordinates loading, validating, and post-processing documents.
type Service struct {
	finder   DocumentFinder
	loader   DocumentLoader
	source   SourceReader
	fm       FrontMatterReader
	columns  ColumnEnricher
	recorder Recorder
	logger   *slog.Logger
	newRunID func() string
	now      func() time.Time
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithSource enables front matter suppressions and column enrichment,
// both of which need the raw source.
func WithSource(source SourceReader, fm FrontMatterReader, columns ColumnEnricher) Option {
	return func(s *Service) {
		s.source = source
		s.fm = fm
		s.columns = columns
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithLogger sets the logger. A nil logger means slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service with the given dependencies.
func NewService(finder DocumentFinder, loader DocumentLoader, opts ...Option) *Service {
	s := &Service{
		finder:   finder,
		loader:   loader,
		logger:   slog.Default(),
		newRunID: func() string { return uuid.New().String() },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lint validates every document under paths against cfg. Documents that
// fail to load are reported in their FileResult and do not stop the run;
// a failure to expand paths does.
func (s *Service) Lint(ctx context.Context, cfg *ruleset.Config, paths []string, opts Options) (*Result, error) {
	start := s.now()
	runID := s.newRunID()
	log := s.logger.With("run", runID)

	files, err := s.finder.FindDocuments(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoDocuments
	}

	var suppress []string
	if cfg != nil {
		suppress = append(suppress, cfg.Suppress...)
	}
	suppress = append(suppress, opts.Suppress...)

	eng := engine.New(cfg)
	results := make([]FileResult, len(files))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.lintFile(gctx, log, eng, path, suppress)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{RunID: runID, Files: results, Summary: summarize(results)}
	elapsed := s.now().Sub(start)
	if s.recorder != nil {
		s.recorder.ObserveRun(result, elapsed)
	}
	log.Info("lint finished",
		"files", result.Summary.Files,
		"errors", result.Summary.Errors,
		"warnings", result.Summary.Warnings,
		"infos", result.Summary.Infos,
		"elapsed", elapsed)
	return result, nil
}

func (s *Service) lintFile(ctx context.Context, log *slog.Logger, eng *engine.Engine, path string, suppress []string) FileResult {
	fr := FileResult{Path: path, Filename: path}

	doc, err := s.loader.LoadDocument(ctx, path)
	if err != nil {
		log.Error("loading document failed", "path", path, "err", err)
		fr.Err = err
		return fr
	}
	if doc.Filename != "" {
		fr.Filename = doc.Filename
	}

	msgs := eng.Validate(doc.Root, fr.Filename)

	if source, ok := s.readSource(ctx, log, doc); ok {
		if s.fm != nil {
			ids, err := s.fm.Suppressions(source)
			if err != nil {
				log.Warn("ignoring front matter", "path", doc.SourcePath, "err", err)
			}
			suppress = append(append([]string(nil), suppress...), ids...)
		}
		if s.columns != nil {
			msgs = s.columns.Enrich(source, msgs)
		}
	}

	kept := msgs[:0:0]
	for _, m := range msgs {
		if ruleset.IsSuppressed(suppress, m.RuleID) {
			fr.Suppressed++
			continue
		}
		kept = append(kept, m)
	}
	SortMessages(kept)
	fr.Messages = kept

	if s.recorder != nil {
		s.recorder.ObserveDocument(kept, fr.Suppressed)
	}
	log.Debug("document validated", "path", path, "messages", len(kept), "suppressed", fr.Suppressed)
	return fr
}

// readSource returns the raw source when a reader is configured and the
// file is readable. Unreadable sources only cost enrichment.
func (s *Service) readSource(ctx context.Context, log *slog.Logger, doc *Document) (string, bool) {
	if s.source == nil || doc.SourcePath == "" {
		return "", false
	}
	source, err := s.source.ReadSource(ctx, doc.SourcePath)
	if err != nil {
		log.Debug("raw source unavailable", "path", doc.SourcePath, "err", err)
		return "", false
	}
	return source, true
}

func summarize(files []FileResult) Summary {
	var sum Summary
	for _, f := range files {
		sum.Files++
		if f.Err != nil {
			sum.Failed++
		}
		sum.Suppressed += f.Suppressed
		for _, m := range f.Messages {
			switch m.Severity {
			case domain.SeverityError:
				sum.Errors++
			case domain.SeverityWarn:
				sum.Warnings++
			case domain.SeverityInfo:
				sum.Infos++
			}
		}
	}
	return sum
}

// SortMessages orders messages by line, then column, then rule id. The
// sort is stable so equal keys keep emission order.
func SortMessages(msgs []domain.Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		a, b := msgs[i].Location, msgs[j].Location
		if a.StartLine != b.StartLine {
			return a.StartLine < b.StartLine
		}
		if a.StartColumn != b.StartColumn {
			return a.StartColumn < b.StartColumn
		}
		return msgs[i].RuleID < msgs[j].RuleID
	})
}
