package blocks

import (
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// QuoteValidator checks the author, source, and content of quote blocks.
type QuoteValidator struct{}

// Kind implements Validator.
func (QuoteValidator) Kind() domain.BlockKind { return domain.KindQuote }

// Validate implements Validator.
func (QuoteValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.QuoteBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	var msgs []domain.Message
	if r := cfg.Author; r != nil {
		f := newFacet(vctx, node, domain.KindQuote, "author", "author", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(authorOf(node), r, "[quote, Author]", attrPlaceholder("author"))...)
	}
	if r := cfg.Source; r != nil {
		f := newFacet(vctx, node, domain.KindQuote, "source", "source", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(sourceOf(node), r, "[quote, Author, Source]", attrPlaceholder("citetitle"))...)
	}
	if r := cfg.Content; r != nil {
		f := newFacet(vctx, node, domain.KindQuote, "content", "content", domain.Resolve(r.Severity, cfg.Severity))
		content := node.Content()
		msgs = append(msgs, f.text(content, ruleset.TextConstraints{
			Required:  r.Required,
			MinLength: r.MinLength,
			MaxLength: r.MaxLength,
		}, "", contentPlaceholder)...)
		if r.Lines != nil && len(nonBlankLines(content)) > 0 {
			msgs = append(msgs, f.bounds(len(nonBlankLines(content)), r.Lines.Min, r.Lines.Max,
				"lines.min", "lines.max", "lines")...)
		}
	}
	return msgs
}
