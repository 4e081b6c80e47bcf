// Package engine walks a parsed document depth-first and applies a rule set
// to it: sections are matched to section rules, blocks to block rules, and
// every scope is checked for occurrence and order when it closes.
package engine

import (
	"github.com/eykd/adoclint-go/internal/blocks"
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
	"github.com/eykd/adoclint-go/internal/textnorm"
)

// sectionContext is the context string parsers use for sections.
const sectionContext = "section"

// Engine validates documents against one rule set. An Engine holds no
// per-document state and may be shared by concurrent callers.
type Engine struct {
	config   *ruleset.Config
	registry *blocks.Registry
}

// New creates an Engine for cfg. A nil cfg validates nothing.
func New(cfg *ruleset.Config) *Engine {
	if cfg == nil {
		cfg = &ruleset.Config{}
	}
	return &Engine{config: cfg, registry: blocks.NewRegistry()}
}

// scope is the rule set that applies to the children of one section.
type scope struct {
	blocks   []ruleset.BlockRule
	order    *ruleset.OrderRule
	sections []*ruleset.SectionRule
}

// Validate returns every message for document in traversal order. Messages
// are not filtered by suppressions. A nil document yields no messages.
func (e *Engine) Validate(document domain.Node, filename string) []domain.Message {
	if document == nil {
		return nil
	}
	vctx := blocks.NewContext(document, filename)
	root := scope{
		blocks:   e.config.Document.Blocks,
		order:    e.config.Document.Order,
		sections: e.config.Document.Sections,
	}
	return e.walkScope(vctx, document.Blocks(), root)
}

// walkScope validates the children of the node that owns the current scope
// of vctx, then closes the scope.
func (e *Engine) walkScope(vctx *blocks.Context, children []domain.Node, sc scope) []domain.Message {
	var msgs []domain.Message
	counts := make(map[*ruleset.SectionRule]int)

	for _, child := range children {
		if child == nil {
			continue
		}
		if child.Context() != sectionContext {
			msgs = append(msgs, e.walkBlock(vctx, child, sc)...)
			continue
		}
		rule := matchSection(child, sc.sections)
		if rule == nil {
			continue
		}
		counts[rule]++
		msgs = append(msgs, blocks.ValidateSectionTitle(vctx, child, rule)...)

		vctx.EnterSection(child)
		msgs = append(msgs, e.walkScope(vctx, child.Blocks(), scope{
			blocks:   rule.Blocks,
			order:    rule.Order,
			sections: rule.Subsections,
		})...)
		vctx.LeaveSection()
	}

	msgs = append(msgs, blocks.ValidateOccurrences(vctx, sc.blocks)...)
	msgs = append(msgs, blocks.ValidateOrder(vctx, effectiveOrder(sc))...)
	msgs = append(msgs, blocks.ValidateSectionOccurrences(vctx, sc.sections, counts)...)
	return msgs
}

// walkBlock validates node and its nested blocks against the rules of the
// enclosing scope.
func (e *Engine) walkBlock(vctx *blocks.Context, node domain.Node, sc scope) []domain.Message {
	var msgs []domain.Message
	kind := blocks.Detect(node)
	if kind != domain.KindUnknown {
		if rule := matchBlock(node, kind, sc.blocks); rule != nil {
			if v := e.registry.Validator(kind); v != nil {
				msgs = append(msgs, v.Validate(node, rule, vctx)...)
			}
		}
	}

	vctx.EnterBlock(kind)
	for _, child := range node.Blocks() {
		if child != nil {
			msgs = append(msgs, e.walkBlock(vctx, child, sc)...)
		}
	}
	vctx.LeaveBlock(kind)
	return msgs
}

// matchBlock returns the rule of kind whose name matches the node id or one
// of its roles, otherwise the first rule of kind.
func matchBlock(node domain.Node, kind domain.BlockKind, rules []ruleset.BlockRule) ruleset.BlockRule {
	var first ruleset.BlockRule
	for _, r := range rules {
		if r == nil || r.Kind() != kind {
			continue
		}
		if first == nil {
			first = r
		}
		name := r.Common().Name
		if name == "" {
			continue
		}
		if textnorm.SameName(name, node.ID()) || node.HasRole(name) || node.HasRole(textnorm.Slug(name)) {
			return r
		}
	}
	return first
}

// matchSection picks the section rule for node among the rules of one
// nesting depth. Only rules whose level is unset or equal to the node level
// are candidates. A candidate whose name matches the title or id wins, then
// the first candidate whose title pattern accepts the title, then the first
// candidate, so that its title rule can report the mismatch. Sections with
// no candidate are not checked.
func matchSection(node domain.Node, rules []*ruleset.SectionRule) *ruleset.SectionRule {
	var candidates []*ruleset.SectionRule
	for _, r := range rules {
		if r != nil && (r.Level == 0 || r.Level == node.Level()) {
			candidates = append(candidates, r)
		}
	}
	for _, r := range candidates {
		if r.Name != "" && (textnorm.SameName(r.Name, node.Title()) || textnorm.SameName(r.Name, node.ID())) {
			return r
		}
	}
	for _, r := range candidates {
		if r.Title == nil || r.Title.Pattern == nil || r.Title.Pattern.MatchString(textnorm.NFC(node.Title())) {
			return r
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return nil
}

// effectiveOrder returns the scope's order rule. Without an explicit fixed
// sequence, the ranks of the scope's block rules form one.
func effectiveOrder(sc scope) *ruleset.OrderRule {
	if sc.order != nil && len(sc.order.Fixed) > 0 {
		return sc.order
	}
	ranked := blocks.RankedSequence(sc.blocks)
	if len(ranked) == 0 {
		return sc.order
	}
	order := ruleset.OrderRule{Fixed: ranked}
	if sc.order != nil {
		order = *sc.order
		order.Fixed = ranked
	}
	return &order
}
