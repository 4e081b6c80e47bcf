package blocks

import (
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// PassValidator checks the type, content, and stated reason of passthrough blocks.
type PassValidator struct{}

// Kind implements Validator.
func (PassValidator) Kind() domain.BlockKind { return domain.KindPass }

// Validate implements Validator. The type is the "type" attribute, or the
// block style, e.g. stem.
func (PassValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.PassBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	var msgs []domain.Message
	if r := cfg.Type; r != nil {
		typ, ok := domain.AttributeOf(node, "type")
		if !ok {
			typ = node.Style()
		}
		f := newFacet(vctx, node, domain.KindPass, "type", "type", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.choice(typ, r, `type="html"`)...)
	}
	if r := cfg.Content; r != nil {
		f := newFacet(vctx, node, domain.KindPass, "content", "content", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(node.Content(), r, "", contentPlaceholder)...)
	}
	if r := cfg.Reason; r != nil {
		reason, _ := domain.AttributeOf(node, "reason")
		f := newFacet(vctx, node, domain.KindPass, "reason", "reason", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(reason, r, `reason="..."`, attrPlaceholder("reason"))...)
	}
	return msgs
}
