package blocks

import (
	"testing"

	"github.com/eykd/adoclint-go/internal/domain"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		node domain.Node
		want domain.BlockKind
	}{
		{"nil node", nil, domain.KindUnknown},
		{"empty context", &fakeNode{}, domain.KindUnknown},
		{"paragraph", &fakeNode{context: "paragraph"}, domain.KindParagraph},
		{"table", &fakeNode{context: "table"}, domain.KindTable},
		{"image", &fakeNode{context: "image"}, domain.KindImage},
		{"image from open block role", &fakeNode{context: "open", roles: []string{"image"}}, domain.KindImage},
		{"plain open block", &fakeNode{context: "open"}, domain.KindUnknown},
		{"listing", &fakeNode{context: "listing"}, domain.KindListing},
		{"source example is a listing", &fakeNode{context: "example", style: "source"}, domain.KindListing},
		{"example", &fakeNode{context: "example"}, domain.KindExample},
		{"literal", &fakeNode{context: "literal"}, domain.KindLiteral},
		{"verse", &fakeNode{context: "verse", style: "verse"}, domain.KindVerse},
		{"verse style on quote context", &fakeNode{context: "quote", style: "verse", attrs: map[string]string{"attribution": "A"}}, domain.KindVerse},
		{"verse context without style", &fakeNode{context: "verse"}, domain.KindUnknown},
		{"quote with attribution", &fakeNode{context: "quote", attrs: map[string]string{"attribution": "A"}}, domain.KindQuote},
		{"quote with author", &fakeNode{context: "quote", attrs: map[string]string{"author": "A"}}, domain.KindQuote},
		{"quote with citetitle", &fakeNode{context: "quote", attrs: map[string]string{"citetitle": "T"}}, domain.KindQuote},
		{"quote with source", &fakeNode{context: "quote", attrs: map[string]string{"source": "T"}}, domain.KindQuote},
		{"quote with positional author", &fakeNode{context: "quote", attrs: map[string]string{"2": "A"}}, domain.KindQuote},
		{"quote with positional source", &fakeNode{context: "quote", attrs: map[string]string{"3": "T"}}, domain.KindQuote},
		{"quote without attribution", &fakeNode{context: "quote"}, domain.KindUnknown},
		{"admonition", &fakeNode{context: "admonition"}, domain.KindAdmonition},
		{"sidebar", &fakeNode{context: "sidebar"}, domain.KindSidebar},
		{"pass", &fakeNode{context: "pass"}, domain.KindPass},
		{"audio", &fakeNode{context: "audio"}, domain.KindAudio},
		{"video", &fakeNode{context: "video"}, domain.KindVideo},
		{"dlist", &fakeNode{context: "dlist"}, domain.KindDList},
		{"ulist", &fakeNode{context: "ulist"}, domain.KindUList},
		{"section", &fakeNode{context: "section"}, domain.KindUnknown},
		{"olist", &fakeNode{context: "olist"}, domain.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.node); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	for _, kind := range domain.AllBlockKinds() {
		v := r.Validator(kind)
		if v == nil {
			t.Errorf("Validator(%q) = nil", kind)
			continue
		}
		if v.Kind() != kind {
			t.Errorf("Validator(%q).Kind() = %q", kind, v.Kind())
		}
	}
	if v := r.Validator(domain.KindUnknown); v != nil {
		t.Errorf("Validator(unknown) = %T, want nil", v)
	}
	var nilRegistry *Registry
	if v := nilRegistry.Validator(domain.KindParagraph); v != nil {
		t.Errorf("nil registry returned %T, want nil", v)
	}
}
