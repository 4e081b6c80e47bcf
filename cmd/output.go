package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/lint"
)

// writeJSON encodes v as indented JSON to w, handling I/O errors at the boundary.
func writeJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}

// lintJSONFile is one document in the JSON report.
type lintJSONFile struct {
	Path     string           `json:"path"`
	Filename string           `json:"filename"`
	Messages []domain.Message `json:"messages"`
	Error    string           `json:"error,omitempty"`
}

// lintJSONSummary counts messages in the JSON report.
type lintJSONSummary struct {
	Files      int `json:"files"`
	Failed     int `json:"failed"`
	Errors     int `json:"errors"`
	Warnings   int `json:"warnings"`
	Infos      int `json:"infos"`
	Suppressed int `json:"suppressed"`
}

// lintJSONResponse is the JSON output structure for the lint command.
type lintJSONResponse struct {
	RunID   string          `json:"runId"`
	Files   []lintJSONFile  `json:"files"`
	Summary lintJSONSummary `json:"summary"`
}

// formatLintJSON writes a run as JSON to w.
func formatLintJSON(w io.Writer, result *lint.Result) {
	out := lintJSONResponse{
		RunID: result.RunID,
		Files: make([]lintJSONFile, 0, len(result.Files)),
		Summary: lintJSONSummary{
			Files:      result.Summary.Files,
			Failed:     result.Summary.Failed,
			Errors:     result.Summary.Errors,
			Warnings:   result.Summary.Warnings,
			Infos:      result.Summary.Infos,
			Suppressed: result.Summary.Suppressed,
		},
	}
	for _, f := range result.Files {
		jf := lintJSONFile{Path: f.Path, Filename: f.Filename, Messages: f.Messages}
		if jf.Messages == nil {
			jf.Messages = []domain.Message{}
		}
		if f.Err != nil {
			jf.Error = f.Err.Error()
		}
		out.Files = append(out.Files, jf)
	}
	writeJSON(w, out)
}

// formatLintHuman writes a run as human-readable text to w.
func formatLintHuman(w io.Writer, result *lint.Result) {
	for _, f := range result.Files {
		if f.Err != nil {
			fmt.Fprintf(w, "%s: cannot lint: %v\n", f.Path, f.Err)
			continue
		}
		for _, m := range f.Messages {
			fmt.Fprintln(w, m.String())
			for _, s := range m.Suggestions {
				fmt.Fprintf(w, "    suggestion: %s\n", s.Description)
			}
		}
	}

	sum := result.Summary
	if sum.Errors > 0 || sum.Warnings > 0 || sum.Infos > 0 || sum.Failed > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d error(s), %d warning(s), %d info(s) in %d file(s)",
		sum.Errors, sum.Warnings, sum.Infos, sum.Files)
	if sum.Suppressed > 0 {
		fmt.Fprintf(w, ", %d suppressed", sum.Suppressed)
	}
	fmt.Fprintln(w)
}
