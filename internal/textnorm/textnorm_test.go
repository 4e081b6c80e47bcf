package textnorm

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty input", "", ""},
		{"simple lowercase", "intro", "intro"},
		{"uppercase to lowercase", "Getting Started", "getting-started"},
		{"underscores to dashes", "code_sample", "code-sample"},
		{"multiple spaces collapse", "one   two", "one-two"},
		{"diacritics removed", "R\u00e9sum\u00e9", "resume"},
		{"special chars stripped", "hello!world", "helloworld"},
		{"mixed special and spaces", "hello - world!", "hello-world"},
		{"em dash returns empty", "\u2014", ""},
		{"numbers preserved", "step-2", "step-2"},
		{"leading and trailing dashes trimmed", "--intro--", "intro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.input); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLen_CountsComposedRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"precomposed", "caf\u00e9", 4},
		{"decomposed", "cafe\u0301", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Len(tt.input); got != tt.want {
				t.Errorf("Len(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestColumn(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		needle    string
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{"found at start", "image::a.png[]", "image", 1, 6, true},
		{"found mid line", "image::a.png[]", "a.png", 8, 13, true},
		{"runes before needle", "caf\u00e9 term", "term", 6, 10, true},
		{"decomposed line", "cafe\u0301 term", "term", 6, 10, true},
		{"absent", "hello", "world", 0, 0, false},
		{"empty needle", "hello", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := Column(tt.line, tt.needle)
			if ok != tt.wantOK || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Column(%q, %q) = %d, %d, %v; want %d, %d, %v",
					tt.line, tt.needle, start, end, ok, tt.wantStart, tt.wantEnd, tt.wantOK)
			}
		})
	}
}

func TestSameName(t *testing.T) {
	if !SameName("Intro Section", "intro-section") {
		t.Error("SameName should match across case and separators")
	}
	if SameName("", "") {
		t.Error("empty names should never match")
	}
	if SameName("intro", "summary") {
		t.Error("different names should not match")
	}
}
