package blocks

import "github.com/eykd/adoclint-go/internal/domain"

// fakeNode is an in-memory domain.Node, domain.Table, and
// domain.DescriptionList for validator tests.
type fakeNode struct {
	context  string
	style    string
	title    string
	content  string
	id       string
	level    int
	line     int
	file     string
	attrs    map[string]string
	roles    []string
	children []domain.Node

	columns int
	header  []domain.Row
	body    []domain.Row
	entries []domain.DListEntry
}

func (n *fakeNode) Context() string       { return n.context }
func (n *fakeNode) Style() string         { return n.style }
func (n *fakeNode) Title() string         { return n.title }
func (n *fakeNode) Content() string       { return n.content }
func (n *fakeNode) ID() string            { return n.id }
func (n *fakeNode) Level() int            { return n.level }
func (n *fakeNode) Blocks() []domain.Node { return n.children }
func (n *fakeNode) SourceLine() int       { return n.line }
func (n *fakeNode) SourceFile() string    { return n.file }

func (n *fakeNode) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *fakeNode) HasAttribute(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

func (n *fakeNode) HasRole(role string) bool {
	for _, r := range n.roles {
		if r == role {
			return true
		}
	}
	return false
}

func (n *fakeNode) ColumnCount() int             { return n.columns }
func (n *fakeNode) HeaderRows() []domain.Row     { return n.header }
func (n *fakeNode) BodyRows() []domain.Row       { return n.body }
func (n *fakeNode) Entries() []domain.DListEntry { return n.entries }

func newTestContext() *Context {
	return NewContext(&fakeNode{context: "document"}, "doc.adoc")
}

func row(cells ...string) domain.Row {
	r := domain.Row{}
	for _, c := range cells {
		r.Cells = append(r.Cells, domain.Cell{Text: c})
	}
	return r
}

func ruleIDs(msgs []domain.Message) []string {
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.RuleID)
	}
	return ids
}

func hasRuleID(msgs []domain.Message, id string) bool {
	for _, m := range msgs {
		if m.RuleID == id {
			return true
		}
	}
	return false
}
