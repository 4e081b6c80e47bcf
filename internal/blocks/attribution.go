package blocks

import "github.com/eykd/adoclint-go/internal/domain"

// Verse and quote blocks name their author and source with synonyms; the
// positional attributes 2 and 3 are the fallback.
var (
	authorAttributes = []string{"author", "attribution", "2"}
	sourceAttributes = []string{"citetitle", "source", "3"}
)

func authorOf(node domain.Node) string {
	v, _ := domain.AttributeOf(node, authorAttributes...)
	return v
}

func sourceOf(node domain.Node) string {
	v, _ := domain.AttributeOf(node, sourceAttributes...)
	return v
}
