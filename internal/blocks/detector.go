package blocks

import "github.com/eykd/adoclint-go/internal/domain"

var contextKinds = map[string]domain.BlockKind{
	"paragraph":  domain.KindParagraph,
	"table":      domain.KindTable,
	"image":      domain.KindImage,
	"listing":    domain.KindListing,
	"literal":    domain.KindLiteral,
	"admonition": domain.KindAdmonition,
	"sidebar":    domain.KindSidebar,
	"example":    domain.KindExample,
	"pass":       domain.KindPass,
	"audio":      domain.KindAudio,
	"video":      domain.KindVideo,
	"dlist":      domain.KindDList,
	"ulist":      domain.KindUList,
}

// Detect classifies node. Style and attribute based special cases are
// checked before the plain context mapping. Nodes that are not a supported
// block, including sections, return domain.KindUnknown.
func Detect(node domain.Node) domain.BlockKind {
	if node == nil {
		return domain.KindUnknown
	}
	ctx, style := node.Context(), node.Style()
	switch {
	case ctx == "":
		return domain.KindUnknown
	case ctx == "example" && style == "source":
		return domain.KindListing
	case ctx == "open" && node.HasRole("image"):
		return domain.KindImage
	case (ctx == "verse" || ctx == "quote") && style == "verse":
		return domain.KindVerse
	case ctx == "verse":
		return domain.KindUnknown
	case ctx == "quote":
		if hasAttribution(node) {
			return domain.KindQuote
		}
		return domain.KindUnknown
	}
	if kind, ok := contextKinds[ctx]; ok {
		return kind
	}
	return domain.KindUnknown
}

// hasAttribution reports whether node carries any author or source
// attribute the quote validator reads, positional ones included.
func hasAttribution(node domain.Node) bool {
	for _, names := range [][]string{authorAttributes, sourceAttributes} {
		for _, name := range names {
			if node.HasAttribute(name) {
				return true
			}
		}
	}
	return false
}
