package doctree

import (
	"strings"

	"github.com/eykd/adoclint-go/internal/domain"
)

// Block is one exported node.
type Block struct {
	raw      *rawNode
	attrs    map[string]string
	children []domain.Node
}

var _ domain.Node = (*Block)(nil)

func (b *Block) Context() string       { return b.raw.Context }
func (b *Block) Style() string         { return b.raw.Style }
func (b *Block) Title() string         { return b.raw.Title }
func (b *Block) Content() string       { return b.raw.Content }
func (b *Block) ID() string            { return b.raw.ID }
func (b *Block) Level() int            { return b.raw.Level }
func (b *Block) Blocks() []domain.Node { return b.children }
func (b *Block) SourceLine() int       { return b.raw.Lineno }
func (b *Block) SourceFile() string    { return b.raw.File }

// Attribute returns a named attribute. The id, style, and title are also
// reachable as attributes, matching the parser's attribute map.
func (b *Block) Attribute(name string) (string, bool) {
	if v, ok := b.attrs[name]; ok {
		return v, true
	}
	switch name {
	case "id":
		return b.raw.ID, b.raw.ID != ""
	case "style":
		return b.raw.Style, b.raw.Style != ""
	case "title":
		return b.raw.Title, b.raw.Title != ""
	case "role":
		return strings.Join(b.raw.Roles, " "), len(b.raw.Roles) > 0
	}
	return "", false
}

func (b *Block) HasAttribute(name string) bool {
	_, ok := b.Attribute(name)
	return ok
}

func (b *Block) HasRole(role string) bool {
	for _, r := range b.raw.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Table is a table node with its parsed rows.
type Table struct {
	*Block
}

var _ domain.Table = (*Table)(nil)

// ColumnCount returns the declared column count, or the width of the first
// row when the export omits it.
func (t *Table) ColumnCount() int {
	if t.raw.Columns > 0 {
		return t.raw.Columns
	}
	for _, rows := range [][][]string{t.raw.Header, t.raw.Body} {
		if len(rows) > 0 {
			return len(rows[0])
		}
	}
	return 0
}

func (t *Table) HeaderRows() []domain.Row { return rows(t.raw.Header) }
func (t *Table) BodyRows() []domain.Row   { return rows(t.raw.Body) }

func rows(raw [][]string) []domain.Row {
	if len(raw) == 0 {
		return nil
	}
	out := make([]domain.Row, 0, len(raw))
	for _, r := range raw {
		row := domain.Row{Cells: make([]domain.Cell, 0, len(r))}
		for _, c := range r {
			row.Cells = append(row.Cells, domain.Cell{Text: c})
		}
		out = append(out, row)
	}
	return out
}

// DescriptionList is a dlist node with its entries.
type DescriptionList struct {
	*Block
}

var _ domain.DescriptionList = (*DescriptionList)(nil)

func (d *DescriptionList) Entries() []domain.DListEntry {
	if len(d.raw.Entries) == 0 {
		return nil
	}
	out := make([]domain.DListEntry, 0, len(d.raw.Entries))
	for _, e := range d.raw.Entries {
		entry := domain.DListEntry{}
		for _, t := range e.Terms {
			entry.Terms = append(entry.Terms, domain.ListItem{Text: t.Text, Line: t.Lineno})
		}
		if e.Description != nil {
			entry.Description = &domain.ListItem{Text: e.Description.Text, Line: e.Description.Lineno}
		}
		out = append(out, entry)
	}
	return out
}
