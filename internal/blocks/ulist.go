package blocks

import (
	"fmt"
	"strconv"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// UListValidator checks the item count and nesting depth of unordered lists.
// The markerStyle rule is accepted but not checked.
type UListValidator struct{}

// Kind implements Validator.
func (UListValidator) Kind() domain.BlockKind { return domain.KindUList }

// Validate implements Validator. The nesting level is one plus the number of
// enclosing unordered lists recorded in vctx.
func (UListValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.UListBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	var msgs []domain.Message
	if r := cfg.Items; r != nil {
		f := newFacet(vctx, node, domain.KindUList, "items", "items", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.count(countItems(node), r, "items")...)
	}
	if r := cfg.NestingLevel; r != nil && r.Max != nil {
		level := vctx.Depth(domain.KindUList) + 1
		if level > *r.Max {
			f := newFacet(vctx, node, domain.KindUList, "nestingLevel", "nesting level", domain.Resolve(r.Severity, cfg.Severity))
			msgs = append(msgs, f.message("max", domain.ErrorTypeOutOfRange, "Unordered list is nested too deeply").
				WithActual(strconv.Itoa(level)).
				WithExpected(fmt.Sprintf("At most %d levels", *r.Max)))
		}
	}
	return msgs
}

// countItems counts the list_item children of a list.
func countItems(node domain.Node) int {
	n := 0
	for _, child := range node.Blocks() {
		if child != nil && child.Context() == "list_item" {
			n++
		}
	}
	return n
}
