package blocks

import (
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// Occurrence is one tracked instance of a block rule.
type Occurrence struct {
	Node     domain.Node
	Position int
}

// Tracked is one entry of a scope's ordered occurrence list.
type Tracked struct {
	Position int
	Rule     ruleset.BlockRule
	Node     domain.Node
}

// scope holds the bookkeeping for one section's blocks.
type scope struct {
	section     domain.Node
	occurrences map[ruleset.BlockRule][]Occurrence
	tracked     []Tracked
}

func newScope(section domain.Node) *scope {
	return &scope{
		section:     section,
		occurrences: make(map[ruleset.BlockRule][]Occurrence),
	}
}

// Context is the mutable state of one document validation run. Validators
// record every block they recognize through TrackBlock; the occurrence and
// order validators read that record when a scope closes.
//
// A Context is not safe for concurrent use. Validate independent documents
// with one Context each.
type Context struct {
	document domain.Node
	filename string
	scopes   []*scope
	nesting  map[domain.BlockKind]int
}

// NewContext creates the context for one document. The document root opens
// the base scope. It panics if document is nil.
func NewContext(document domain.Node, filename string) *Context {
	if document == nil {
		panic("blocks: NewContext called with nil document")
	}
	return &Context{
		document: document,
		filename: filename,
		scopes:   []*scope{newScope(document)},
		nesting:  make(map[domain.BlockKind]int),
	}
}

// Filename returns the document filename.
func (c *Context) Filename() string {
	return c.filename
}

// Document returns the document root.
func (c *Context) Document() domain.Node {
	return c.document
}

// Section returns the node that owns the current scope: the innermost open
// section, or the document root.
func (c *Context) Section() domain.Node {
	return c.current().section
}

// EnterSection opens a new block scope for section.
func (c *Context) EnterSection(section domain.Node) {
	if section == nil {
		panic("blocks: EnterSection called with nil section")
	}
	c.scopes = append(c.scopes, newScope(section))
}

// LeaveSection closes the innermost section scope. The base scope is never closed.
func (c *Context) LeaveSection() {
	if len(c.scopes) > 1 {
		c.scopes = c.scopes[:len(c.scopes)-1]
	}
}

func (c *Context) current() *scope {
	return c.scopes[len(c.scopes)-1]
}

// TrackBlock records that node matched rule in the current scope and
// returns its 1-based position among the scope's tracked blocks.
// It panics if rule or node is nil.
func (c *Context) TrackBlock(rule ruleset.BlockRule, node domain.Node) int {
	if rule == nil || node == nil {
		panic("blocks: TrackBlock called with nil rule or node")
	}
	s := c.current()
	pos := len(s.tracked) + 1
	s.occurrences[rule] = append(s.occurrences[rule], Occurrence{Node: node, Position: pos})
	s.tracked = append(s.tracked, Tracked{Position: pos, Rule: rule, Node: node})
	return pos
}

// Occurrences returns the tracked occurrences of rule in the current scope.
func (c *Context) Occurrences(rule ruleset.BlockRule) []Occurrence {
	occ := c.current().occurrences[rule]
	out := make([]Occurrence, len(occ))
	copy(out, occ)
	return out
}

// Tracked returns every tracked block of the current scope in position order.
func (c *Context) Tracked() []Tracked {
	tracked := c.current().tracked
	out := make([]Tracked, len(tracked))
	copy(out, tracked)
	return out
}

// EnterBlock records that traversal descends into a block of kind.
func (c *Context) EnterBlock(kind domain.BlockKind) {
	if kind != domain.KindUnknown {
		c.nesting[kind]++
	}
}

// LeaveBlock records that traversal leaves a block of kind.
func (c *Context) LeaveBlock(kind domain.BlockKind) {
	if c.nesting[kind] > 0 {
		c.nesting[kind]--
	}
}

// Depth returns how many enclosing blocks of kind surround the node being
// validated.
func (c *Context) Depth(kind domain.BlockKind) int {
	return c.nesting[kind]
}

// Location returns the location of node. Missing data falls back to the
// document filename, line 1, and column 1.
func (c *Context) Location(node domain.Node) domain.SourceLocation {
	if node == nil {
		return domain.LineLocation(c.filename, 1)
	}
	return c.LocationAt(node, node.SourceLine())
}

// LocationAt returns a location in node's file at line.
func (c *Context) LocationAt(node domain.Node, line int) domain.SourceLocation {
	filename := c.filename
	if node != nil && node.SourceFile() != "" {
		filename = node.SourceFile()
	}
	return domain.LineLocation(filename, line)
}

func mustContext(vctx *Context) {
	if vctx == nil {
		panic("blocks: validator called with nil context")
	}
}
