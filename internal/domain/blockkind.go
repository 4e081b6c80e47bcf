package domain

// BlockKind tags the supported block types.
type BlockKind string

// Supported block kinds. KindUnknown marks nodes the linter skips.
const (
	KindUnknown    BlockKind = ""
	KindParagraph  BlockKind = "paragraph"
	KindTable      BlockKind = "table"
	KindImage      BlockKind = "image"
	KindListing    BlockKind = "listing"
	KindLiteral    BlockKind = "literal"
	KindVerse      BlockKind = "verse"
	KindQuote      BlockKind = "quote"
	KindAdmonition BlockKind = "admonition"
	KindSidebar    BlockKind = "sidebar"
	KindExample    BlockKind = "example"
	KindPass       BlockKind = "pass"
	KindAudio      BlockKind = "audio"
	KindVideo      BlockKind = "video"
	KindDList      BlockKind = "dlist"
	KindUList      BlockKind = "ulist"
)

// AllBlockKinds lists every supported kind in a stable order.
func AllBlockKinds() []BlockKind {
	return []BlockKind{
		KindParagraph, KindTable, KindImage, KindListing, KindLiteral,
		KindVerse, KindQuote, KindAdmonition, KindSidebar, KindExample,
		KindPass, KindAudio, KindVideo, KindDList, KindUList,
	}
}

// ParseBlockKind maps a configuration key to a kind.
func ParseBlockKind(s string) (BlockKind, bool) {
	for _, k := range AllBlockKinds() {
		if string(k) == s {
			return k, true
		}
	}
	return KindUnknown, false
}

// String returns the kind name.
func (k BlockKind) String() string {
	if k == KindUnknown {
		return "unknown"
	}
	return string(k)
}
