package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eykd/adoclint-go/internal/configfile"
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/lint"
)

type fakeLintRunner struct {
	result *lint.Result
	err    error
	got    LintRequest
	calls  int
}

func (f *fakeLintRunner) Lint(_ context.Context, req LintRequest) (*lint.Result, error) {
	f.got = req
	f.calls++
	return f.result, f.err
}

type fakeReports struct {
	path    string
	content string
	err     error
}

func (f *fakeReports) WriteReport(_ context.Context, path, content string) error {
	f.path, f.content = path, content
	return f.err
}

type fakeWatcher struct {
	changes int
	closed  bool
}

func (f *fakeWatcher) Watch(ctx context.Context, _ []string, onChange func(context.Context) error) error {
	for i := 0; i < f.changes; i++ {
		if err := onChange(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeWatcher) Close() error {
	f.closed = true
	return nil
}

func warnResult() *lint.Result {
	loc := domain.LineLocation("guide.adoc", 5)
	msg := domain.NewMessage("paragraph.lines.min", domain.SeverityWarn, "Paragraph has too few lines", loc).
		WithActual("2").WithExpected("At least 3 lines").
		WithSuggestion("Add more lines", "")
	return &lint.Result{
		RunID: "run-1",
		Files: []lint.FileResult{
			{Path: "guide.adoc.json", Filename: "guide.adoc", Messages: []domain.Message{msg}},
			{Path: "clean.adoc.json", Filename: "clean.adoc"},
		},
		Summary: lint.Summary{Files: 2, Warnings: 1},
	}
}

func runLint(t *testing.T, runner LintRunner, reports ReportWriter, args ...string) (string, error) {
	t.Helper()
	cmd := NewLintCmd(runner, reports, nil)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestLintCmd_HumanOutput(t *testing.T) {
	runner := &fakeLintRunner{result: warnResult()}

	out, err := runLint(t, runner, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLines := []string{
		"guide.adoc:5:1 [warn] paragraph.lines.min: Paragraph has too few lines (actual: 2, expected: At least 3 lines)",
		"    suggestion: Add more lines",
		"0 error(s), 1 warning(s), 0 info(s) in 2 file(s)",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if len(runner.got.Paths) != 1 || runner.got.Paths[0] != "." {
		t.Errorf("default paths = %v, want [.]", runner.got.Paths)
	}
}

func TestLintCmd_FailLevel(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"default error level ignores warnings", nil, 0},
		{"warn level fails on warnings", []string{"--fail-level", "warn"}, 2},
		{"info level fails on warnings", []string{"--fail-level", "info"}, 2},
		{"warning alias", []string{"--fail-level", "WARNING"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runLint(t, &fakeLintRunner{result: warnResult()}, nil, tt.args...)
			if code := ExitCodeFromError(err); code != tt.wantCode {
				t.Errorf("exit code = %d (err %v), want %d", code, err, tt.wantCode)
			}
		})
	}
}

func TestLintCmd_InvalidFailLevel(t *testing.T) {
	runner := &fakeLintRunner{result: warnResult()}
	_, err := runLint(t, runner, nil, "--fail-level", "loud")
	if err == nil || !strings.Contains(err.Error(), "fail-level") {
		t.Errorf("error = %v, want fail-level error", err)
	}
	if runner.calls != 0 {
		t.Error("runner should not be called with an invalid flag")
	}
}

func TestLintCmd_PassesFlags(t *testing.T) {
	runner := &fakeLintRunner{result: &lint.Result{}}
	_, err := runLint(t, runner, nil, "docs", "more",
		"-c", "rules.yaml", "--suppress", "table.*", "--suppress", "image.alt.required",
		"-j", "3", "--metrics-file", "m.prom")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := runner.got
	if strings.Join(got.Paths, ",") != "docs,more" || got.ConfigPath != "rules.yaml" ||
		strings.Join(got.Suppress, ",") != "table.*,image.alt.required" || got.Jobs != 3 || got.MetricsFile != "m.prom" {
		t.Errorf("request = %+v", got)
	}
}

func TestLintCmd_JSONOutput(t *testing.T) {
	result := warnResult()
	result.Files = append(result.Files, lint.FileResult{Path: "bad.adoc.json", Filename: "bad.adoc.json", Err: errors.New("decode failed")})
	result.Summary.Files, result.Summary.Failed = 3, 1

	out, err := runLint(t, &fakeLintRunner{result: result}, nil, "--json")
	var loadErr *LoadFailedError
	if !errors.As(err, &loadErr) || loadErr.Failed != 1 {
		t.Errorf("error = %v, want LoadFailedError", err)
	}

	var resp lintJSONResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if resp.RunID != "run-1" || len(resp.Files) != 3 {
		t.Fatalf("response = %+v", resp)
	}
	if resp.Files[1].Messages == nil {
		t.Error("clean file should have an empty messages array, not null")
	}
	if resp.Files[2].Error != "decode failed" {
		t.Errorf("error = %q", resp.Files[2].Error)
	}
	if resp.Summary.Warnings != 1 || resp.Summary.Failed != 1 {
		t.Errorf("summary = %+v", resp.Summary)
	}
	if resp.Files[0].Messages[0].Severity != domain.SeverityWarn {
		t.Errorf("severity = %v", resp.Files[0].Messages[0].Severity)
	}
}

func TestLintCmd_RunnerError(t *testing.T) {
	_, err := runLint(t, &fakeLintRunner{err: lint.ErrNoDocuments}, nil)
	if !errors.Is(err, lint.ErrNoDocuments) {
		t.Errorf("error = %v, want ErrNoDocuments", err)
	}
	if code := ExitCodeFromError(err); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestLintCmd_ErrorDoesNotPrintUsage(t *testing.T) {
	tests := []struct {
		name   string
		runner *fakeLintRunner
		args   []string
	}{
		{"load failure with json", &fakeLintRunner{result: &lint.Result{Summary: lint.Summary{Files: 1, Failed: 1}}}, []string{"--json"}},
		{"findings", &fakeLintRunner{result: warnResult()}, []string{"--fail-level", "warn"}},
		{"runner error", &fakeLintRunner{err: lint.ErrNoDocuments}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runLint(t, tt.runner, nil, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if strings.Contains(out, "Usage:") {
				t.Errorf("stdout contains usage text:\n%s", out)
			}
		})
	}
}

func TestLintCmd_OutputFile(t *testing.T) {
	reports := &fakeReports{}
	out, err := runLint(t, &fakeLintRunner{result: warnResult()}, reports, "-o", "report.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("stdout should be empty, got %q", out)
	}
	if reports.path != "report.txt" || !strings.Contains(reports.content, "paragraph.lines.min") {
		t.Errorf("report = %q: %q", reports.path, reports.content)
	}

	reports.err = errors.New("locked")
	if _, err := runLint(t, &fakeLintRunner{result: warnResult()}, reports, "-o", "report.txt"); err == nil {
		t.Error("expected write error")
	}
}

func TestLintCmd_Watch(t *testing.T) {
	runner := &fakeLintRunner{result: warnResult()}
	w := &fakeWatcher{changes: 2}

	cmd := NewLintCmd(runner, nil, func() (Watcher, error) { return w, nil })
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--watch", "--fail-level", "warn"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("findings must not stop watch mode: %v", err)
	}
	if runner.calls != 3 {
		t.Errorf("runner calls = %d, want 3 (initial + 2 changes)", runner.calls)
	}
	if !w.closed {
		t.Error("watcher was not closed")
	}
}

// TestLintCmd_EndToEnd runs the production adapters against files on disk.
func TestLintCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	rules := "document:\n  blocks:\n    - paragraph:\n        severity: error\n        lines: {min: 2}\n"
	if err := os.WriteFile(filepath.Join(dir, configfile.DefaultFilename), []byte(rules), 0o644); err != nil {
		t.Fatal(err)
	}
	export := `{"blocks": [{"context": "paragraph", "content": "Only one line.", "lineno": 3}]}`
	if err := os.WriteFile(filepath.Join(dir, "guide.adoc.json"), []byte(export), 0o644); err != nil {
		t.Fatal(err)
	}
	source := "= Guide\n\nOnly one line.\n"
	if err := os.WriteFile(filepath.Join(dir, "guide.adoc"), []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := &lintAdapter{getwd: func() (string, error) { return dir, nil }}
	out, err := runLint(t, runner, nil, dir)
	if code := ExitCodeFromError(err); code != 2 {
		t.Fatalf("exit code = %d (err %v), want 2", code, err)
	}
	if !strings.Contains(out, "guide.adoc:3:1 [error] paragraph.lines.min") {
		t.Errorf("output:\n%s", out)
	}
}
