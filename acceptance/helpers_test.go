package acceptance_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// runAdoclint executes the adoclint binary and returns stdout, stderr, and exit code.
func runAdoclint(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(adoclintBinary, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run adoclint: %v", err)
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// runAdoclintExit runs adoclint expecting the given exit code and returns stdout.
func runAdoclintExit(t *testing.T, dir string, want int, args ...string) string {
	t.Helper()
	stdout, stderr, exitCode := runAdoclint(t, dir, args...)
	if exitCode != want {
		t.Fatalf("expected exit %d, got %d\nargs: %v\nstdout: %s\nstderr: %s", want, exitCode, args, stdout, stderr)
	}
	return stdout
}

// lintReport mirrors the parts of "lint --json" output the scenarios inspect.
type lintReport struct {
	RunID string `json:"runId"`
	Files []struct {
		Path     string `json:"path"`
		Filename string `json:"filename"`
		Error    string `json:"error"`
		Messages []struct {
			RuleID   string `json:"ruleId"`
			Severity string `json:"severity"`
			Location struct {
				StartLine   int `json:"startLine"`
				StartColumn int `json:"startColumn"`
			} `json:"location"`
		} `json:"messages"`
	} `json:"files"`
	Summary struct {
		Files      int `json:"files"`
		Failed     int `json:"failed"`
		Errors     int `json:"errors"`
		Warnings   int `json:"warnings"`
		Suppressed int `json:"suppressed"`
	} `json:"summary"`
}

// lintJSON runs "adoclint lint --json" expecting the given exit code.
func lintJSON(t *testing.T, dir string, want int, extraArgs ...string) lintReport {
	t.Helper()
	args := append([]string{"lint", "--json"}, extraArgs...)
	stdout := runAdoclintExit(t, dir, want, args...)
	var report lintReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("failed to parse lint JSON: %v\noutput: %s", err, stdout)
	}
	return report
}

// ruleIDs lists every rule id in the report, in order.
func ruleIDs(r lintReport) []string {
	var ids []string
	for _, f := range r.Files {
		for _, m := range f.Messages {
			ids = append(ids, m.RuleID)
		}
	}
	return ids
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// readFile reads a file's content.
func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	return string(content)
}

// fileExists checks if a file exists.
func fileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
