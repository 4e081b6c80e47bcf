// Package columns fills in exact start and end columns for messages whose
// actual value can be found on the message's start line of the raw source.
package columns

import (
	"strings"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/textnorm"
)

// Enrich returns msgs with columns set where the actual value appears on
// the start line of source. Messages without an actual value, or whose
// value is not found, keep their existing columns. msgs is not modified.
func Enrich(source string, msgs []domain.Message) []domain.Message {
	if source == "" || len(msgs) == 0 {
		return msgs
	}
	lines := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")

	out := make([]domain.Message, len(msgs))
	for i, m := range msgs {
		out[i] = locate(m, lines)
	}
	return out
}

func locate(m domain.Message, lines []string) domain.Message {
	line := m.Location.StartLine
	if m.ActualValue == "" || line < 1 || line > len(lines) {
		return m
	}
	// Multi-line values are located by their first line.
	needle, _, _ := strings.Cut(m.ActualValue, "\n")
	start, end, ok := textnorm.Column(lines[line-1], needle)
	if !ok {
		return m
	}
	m.Location.StartColumn = start
	m.Location.EndColumn = end
	if m.Location.EndLine < line {
		m.Location.EndLine = line
	}
	return m
}
