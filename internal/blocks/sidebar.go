package blocks

import (
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// SidebarValidator checks the title, content, and position of sidebars.
type SidebarValidator struct{}

// Kind implements Validator.
func (SidebarValidator) Kind() domain.BlockKind { return domain.KindSidebar }

// Validate implements Validator.
func (SidebarValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.SidebarBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	var msgs []domain.Message
	if r := cfg.Title; r != nil {
		f := newFacet(vctx, node, domain.KindSidebar, "title", "title", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(node.Title(), r, ".Title", contentPlaceholder)...)
	}
	if r := cfg.Content; r != nil {
		f := newFacet(vctx, node, domain.KindSidebar, "content", "content", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(node.Content(), r, "", contentPlaceholder)...)
	}
	if r := cfg.Position; r != nil {
		pos, _ := domain.AttributeOf(node, "position")
		f := newFacet(vctx, node, domain.KindSidebar, "position", "position", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.choice(pos, r, `position="right"`)...)
	}
	return msgs
}
