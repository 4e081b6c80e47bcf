package blocks

import (
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// ParagraphValidator checks line and sentence counts and the title of paragraphs.
type ParagraphValidator struct{}

// Kind implements Validator.
func (ParagraphValidator) Kind() domain.BlockKind { return domain.KindParagraph }

// Validate implements Validator. Line counts ignore blank lines.
func (ParagraphValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.ParagraphBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	var msgs []domain.Message
	if r := cfg.Lines; r != nil {
		f := newFacet(vctx, node, domain.KindParagraph, "lines", "lines", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.count(len(nonBlankLines(node.Content())), r, "lines")...)
	}
	if r := cfg.Sentence; r != nil {
		f := newFacet(vctx, node, domain.KindParagraph, "sentence", "sentences", domain.Resolve(r.Severity, cfg.Severity))
		sents := sentences(node.Content())
		if r.Occurrence != nil {
			msgs = append(msgs, f.bounds(len(sents), r.Occurrence.Min, r.Occurrence.Max,
				"occurrence.min", "occurrence.max", "sentences")...)
		}
		if r.Words != nil {
			for _, s := range sents {
				msgs = append(msgs, f.bounds(wordCount(s), r.Words.Min, r.Words.Max,
					"words.min", "words.max", "words in a sentence")...)
			}
		}
	}
	if r := cfg.Title; r != nil {
		f := newFacet(vctx, node, domain.KindParagraph, "title", "title", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(node.Title(), r, ".Title", contentPlaceholder)...)
	}
	return msgs
}
