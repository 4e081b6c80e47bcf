package acceptance_test

import (
	"reflect"
	"strings"
	"testing"
)

const rulesYAML = `document:
  blocks:
    - paragraph:
        severity: warn
        lines:
          max: 2
    - image:
        severity: error
        alt:
          required: true
`

const guideSource = `= Guide

One.
Two.
Three.

image::logo.png[]
`

const guideExport = `{
  "blocks": [
    {"context": "paragraph", "content": "One.\nTwo.\nThree.", "lineno": 3},
    {"context": "image", "lineno": 7, "attributes": {"target": "logo.png"}}
  ]
}`

// newProject writes a rules file, an export, and its source into a temp dir.
func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, ".adoclint.yaml", rulesYAML)
	writeFile(t, dir, "docs/guide.adoc.json", guideExport)
	writeFile(t, dir, "docs/guide.adoc", guideSource)
	return dir
}

func TestLint_ReportsViolationsAndFailsOnErrors(t *testing.T) {
	dir := newProject(t)

	report := lintJSON(t, dir, 2)

	want := []string{"paragraph.lines.max", "image.alt.required"}
	if got := ruleIDs(report); !reflect.DeepEqual(got, want) {
		t.Fatalf("rule ids = %v, want %v", got, want)
	}
	if report.Files[0].Filename != "guide.adoc" {
		t.Errorf("filename = %q, want guide.adoc", report.Files[0].Filename)
	}
	if line := report.Files[0].Messages[1].Location.StartLine; line != 7 {
		t.Errorf("image message line = %d, want 7", line)
	}
	if report.Summary.Errors != 1 || report.Summary.Warnings != 1 {
		t.Errorf("summary = %+v", report.Summary)
	}
	if report.RunID == "" {
		t.Error("run id should be set")
	}
}

func TestLint_HumanOutput(t *testing.T) {
	dir := newProject(t)

	stdout := runAdoclintExit(t, dir, 2, "lint", "docs")

	for _, want := range []string{
		"guide.adoc:3:1 [warn] paragraph.lines.max",
		"guide.adoc:7:1 [error] image.alt.required",
		"1 error(s), 1 warning(s), 0 info(s) in 1 file(s)",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestLint_SuppressFlagAndFailLevel(t *testing.T) {
	dir := newProject(t)

	report := lintJSON(t, dir, 0, "--suppress", "image.*")
	if got := ruleIDs(report); !reflect.DeepEqual(got, []string{"paragraph.lines.max"}) {
		t.Errorf("rule ids = %v", got)
	}
	if report.Summary.Suppressed != 1 {
		t.Errorf("suppressed = %d, want 1", report.Summary.Suppressed)
	}

	lintJSON(t, dir, 2, "--suppress", "image.*", "--fail-level", "warn")
}

func TestLint_FrontMatterSuppression(t *testing.T) {
	dir := newProject(t)
	writeFile(t, dir, "docs/guide.adoc", "---\nadoclint-suppress: paragraph.lines.max\n---\n"+guideSource)

	report := lintJSON(t, dir, 2)
	if got := ruleIDs(report); !reflect.DeepEqual(got, []string{"image.alt.required"}) {
		t.Errorf("rule ids = %v", got)
	}
}

func TestLint_BrokenExportExitsOne(t *testing.T) {
	dir := newProject(t)
	writeFile(t, dir, "docs/broken.adoc.json", "{not json")

	report := lintJSON(t, dir, 1)
	if report.Summary.Failed != 1 {
		t.Errorf("failed = %d, want 1", report.Summary.Failed)
	}
}

func TestLint_OutputFile(t *testing.T) {
	dir := newProject(t)

	stdout := runAdoclintExit(t, dir, 2, "lint", "-o", "out/report.txt")
	if stdout != "" {
		t.Errorf("stdout should be empty, got %q", stdout)
	}
	if !strings.Contains(readFile(t, dir, "out/report.txt"), "image.alt.required") {
		t.Error("report file is missing findings")
	}
}

func TestLint_MetricsFile(t *testing.T) {
	dir := newProject(t)

	runAdoclintExit(t, dir, 2, "lint", "--metrics-file", "lint.prom")
	metrics := readFile(t, dir, "lint.prom")
	for _, want := range []string{"adoclint_messages_total", "adoclint_documents_total"} {
		if !strings.Contains(metrics, want) {
			t.Errorf("metrics missing %s:\n%s", want, metrics)
		}
	}
}

func TestInitThenConfigCheck(t *testing.T) {
	dir := t.TempDir()

	stdout := runAdoclintExit(t, dir, 0, "init")
	if !strings.Contains(stdout, "Wrote") || !fileExists(dir, ".adoclint.yaml") {
		t.Fatalf("init did not write the rules file: %s", stdout)
	}

	stdout = runAdoclintExit(t, dir, 0, "config", "check")
	if !strings.Contains(stdout, "ok") {
		t.Errorf("config check output = %q", stdout)
	}
}

func TestConfigCheck_RejectsBadRules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".adoclint.yaml", "document:\n  blocks:\n    - paragraph:\n        severity: loud\n")

	_, stderr, code := runAdoclint(t, dir, "config", "check")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr, "adoclint: ") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRules_ListsGroups(t *testing.T) {
	stdout := runAdoclintExit(t, t.TempDir(), 0, "rules", "image")
	if !strings.Contains(stdout, "image.alt.required") {
		t.Errorf("rules output = %q", stdout)
	}
}
