package blocks

import (
	"regexp"
	"strings"
)

// calloutPattern matches callout markers: <1> and the XML-safe <!--1-->.
var calloutPattern = regexp.MustCompile(`<\d+>|<!--\d+-->`)

// splitLines returns every line of content. Empty content has no lines.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// nonBlankLines returns the lines that contain something other than whitespace.
func nonBlankLines(content string) []string {
	var out []string
	for _, l := range splitLines(content) {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

func isTerminator(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

// sentences splits content on runs of '.', '?', and '!'. Newlines do not end
// a sentence. Text without any terminator is one sentence; blank content has
// none.
func sentences(content string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		s := strings.Join(strings.Fields(cur.String()), " ")
		if s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}

	runes := []rune(content)
	for i := 0; i < len(runes); i++ {
		cur.WriteRune(runes[i])
		if isTerminator(runes[i]) && (i+1 == len(runes) || !isTerminator(runes[i+1])) {
			flush()
		}
	}
	flush()
	return out
}

// wordCount counts whitespace-delimited tokens.
func wordCount(s string) int {
	return len(strings.Fields(s))
}

// countCallouts counts callout markers in content.
func countCallouts(content string) int {
	return len(calloutPattern.FindAllStringIndex(content, -1))
}

// leadingSpaces counts the spaces and tabs at the start of line. A tab
// counts as one.
func leadingSpaces(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}
