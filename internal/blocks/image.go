package blocks

import (
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// ImageValidator checks the target, alt text, dimensions, and caption of
// images. Every image message carries the block severity.
type ImageValidator struct{}

// Kind implements Validator.
func (ImageValidator) Kind() domain.BlockKind { return domain.KindImage }

// Validate implements Validator.
func (ImageValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.ImageBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	sev := cfg.Severity
	var msgs []domain.Message
	if c := cfg.URL; c != nil {
		target, _ := domain.AttributeOf(node, "target")
		f := newFacet(vctx, node, domain.KindImage, "url", "URL", sev)
		msgs = append(msgs, f.text(target, *c, "image::path/to/image.png[]", attrPlaceholder("target"))...)
	}
	if c := cfg.Alt; c != nil {
		alt, _ := domain.AttributeOf(node, "alt")
		f := newFacet(vctx, node, domain.KindImage, "alt", "alt text", sev)
		msgs = append(msgs, f.text(alt, *c, `alt="Description"`, attrPlaceholder("alt"))...)
	}
	if c := cfg.Width; c != nil {
		w, ok := domain.AttributeOf(node, "width")
		f := newFacet(vctx, node, domain.KindImage, "width", "width", sev)
		msgs = append(msgs, f.dimension(w, ok, c, "width")...)
	}
	if c := cfg.Height; c != nil {
		h, ok := domain.AttributeOf(node, "height")
		f := newFacet(vctx, node, domain.KindImage, "height", "height", sev)
		msgs = append(msgs, f.dimension(h, ok, c, "height")...)
	}
	if c := cfg.Caption; c != nil {
		f := newFacet(vctx, node, domain.KindImage, "caption", "caption", sev)
		msgs = append(msgs, f.text(node.Title(), *c, ".Caption", contentPlaceholder)...)
	}
	return msgs
}
