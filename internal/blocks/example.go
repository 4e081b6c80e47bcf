package blocks

import (
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// ExampleValidator checks the title, caption, and collapsible option of
// example blocks.
type ExampleValidator struct{}

// Kind implements Validator.
func (ExampleValidator) Kind() domain.BlockKind { return domain.KindExample }

// Validate implements Validator.
func (ExampleValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.ExampleBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	var msgs []domain.Message
	if r := cfg.Title; r != nil {
		f := newFacet(vctx, node, domain.KindExample, "title", "title", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(node.Title(), r, ".Title", contentPlaceholder)...)
	}
	if r := cfg.Caption; r != nil {
		caption, _ := domain.AttributeOf(node, "caption")
		f := newFacet(vctx, node, domain.KindExample, "caption", "caption", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(caption, r, `caption="Example 1: "`, attrPlaceholder("caption"))...)
	}
	if r := cfg.Collapsible; r != nil {
		f := newFacet(vctx, node, domain.KindExample, "collapsible", "collapsible option", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.choice(collapsibleOf(node), r, "[%collapsible]")...)
	}
	return msgs
}

// collapsibleOf returns the explicit "collapsible" attribute, "true" when
// the %collapsible option is set, or "" when neither is present.
func collapsibleOf(node domain.Node) string {
	if v, ok := domain.AttributeOf(node, "collapsible"); ok {
		return v
	}
	if node.HasAttribute("collapsible-option") {
		return "true"
	}
	return ""
}
