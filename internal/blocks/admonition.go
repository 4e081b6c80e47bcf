package blocks

import (
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// AdmonitionValidator checks the type, title, content, and icon of admonitions.
type AdmonitionValidator struct{}

// Kind implements Validator.
func (AdmonitionValidator) Kind() domain.BlockKind { return domain.KindAdmonition }

// Validate implements Validator. The type is the "name" attribute, or the
// block style when the parser reports no name.
func (AdmonitionValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.AdmonitionBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	var msgs []domain.Message
	if r := cfg.Type; r != nil {
		typ, ok := domain.AttributeOf(node, "name")
		if !ok {
			typ = node.Style()
		}
		f := newFacet(vctx, node, domain.KindAdmonition, "type", "type", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.choice(typ, r, "[NOTE]")...)
	}
	if r := cfg.Title; r != nil {
		f := newFacet(vctx, node, domain.KindAdmonition, "title", "title", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(node.Title(), r, ".Title", contentPlaceholder)...)
	}
	if r := cfg.Content; r != nil {
		f := newFacet(vctx, node, domain.KindAdmonition, "content", "content", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(node.Content(), r, "", contentPlaceholder)...)
	}
	if r := cfg.Icon; r != nil {
		icon, _ := domain.AttributeOf(node, "icon")
		f := newFacet(vctx, node, domain.KindAdmonition, "icon", "icon", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(icon, r, `icon="info"`, attrPlaceholder("icon"))...)
	}
	return msgs
}
