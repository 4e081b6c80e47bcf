package blocks

import (
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// VerseValidator checks verse blocks. Like images, verses use the block
// severity for every message.
type VerseValidator struct{}

// Kind implements Validator.
func (VerseValidator) Kind() domain.BlockKind { return domain.KindVerse }

// Validate implements Validator.
func (VerseValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.VerseBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	sev := cfg.Severity
	var msgs []domain.Message
	if c := cfg.Author; c != nil {
		f := newFacet(vctx, node, domain.KindVerse, "author", "author", sev)
		msgs = append(msgs, f.text(authorOf(node), *c, "[verse, Author]", attrPlaceholder("author"))...)
	}
	if c := cfg.Attribution; c != nil {
		f := newFacet(vctx, node, domain.KindVerse, "attribution", "attribution", sev)
		msgs = append(msgs, f.text(sourceOf(node), *c, "[verse, Author, Source]", attrPlaceholder("citetitle"))...)
	}
	if c := cfg.Content; c != nil {
		f := newFacet(vctx, node, domain.KindVerse, "content", "content", sev)
		msgs = append(msgs, f.text(node.Content(), *c, "", contentPlaceholder)...)
	}
	return msgs
}
