package domain

// Node is one parsed block, section, or document. It is owned by the parser
// and read-only to the linter. Absent optional values are empty strings,
// nil slices, or a zero line.
type Node interface {
	// Context is the structural kind reported by the parser, e.g. "paragraph".
	Context() string
	Style() string
	Title() string
	Content() string
	ID() string
	// Level is the section level; zero for non-section nodes.
	Level() int
	Blocks() []Node
	// SourceLine is the 1-based line where the node starts, or 0 if unknown.
	SourceLine() int
	// SourceFile is the file the node came from, or "" to use the document's.
	SourceFile() string
	Attribute(name string) (string, bool)
	HasAttribute(name string) bool
	HasRole(role string) bool
}

// Cell is one table cell.
type Cell struct {
	Text string
}

// Row is an ordered list of cells.
type Row struct {
	Cells []Cell
}

// Table extends Node with the parsed table structure.
type Table interface {
	Node
	ColumnCount() int
	HeaderRows() []Row
	BodyRows() []Row
}

// ListItem is a term or description inside a description list.
type ListItem struct {
	Text string
	// Line is the item's own source line, or 0 to use the list's.
	Line int
}

// DListEntry is one entry of a description list: one or more terms and an
// optional description.
type DListEntry struct {
	Terms       []ListItem
	Description *ListItem
}

// DescriptionList extends Node with its entries.
type DescriptionList interface {
	Node
	Entries() []DListEntry
}

// AttributeOf returns the first present, non-empty attribute among names.
// Formats that offer synonyms are looked up in priority order.
func AttributeOf(n Node, names ...string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, name := range names {
		if v, ok := n.Attribute(name); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
