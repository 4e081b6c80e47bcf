package domain

import "fmt"

// SourceLocation identifies a span of the source document.
// Lines and columns are 1-based. Columns default to 1 when the raw source
// is unavailable; only an enrichment step with the file contents can make
// them exact.
type SourceLocation struct {
	Filename    string `json:"filename"`
	StartLine   int    `json:"startLine"`
	EndLine     int    `json:"endLine"`
	StartColumn int    `json:"startColumn"`
	EndColumn   int    `json:"endColumn"`
}

// LineLocation builds a single-line location with column 1.
// Non-positive lines fall back to line 1.
func LineLocation(filename string, line int) SourceLocation {
	if line < 1 {
		line = 1
	}
	return SourceLocation{
		Filename:    filename,
		StartLine:   line,
		EndLine:     line,
		StartColumn: 1,
		EndColumn:   1,
	}
}

// String returns "file:line:column".
func (l SourceLocation) String() string {
	if l.Filename == "" {
		return fmt.Sprintf("<unknown>:%d:%d", l.StartLine, l.StartColumn)
	}
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.StartLine, l.StartColumn)
}
