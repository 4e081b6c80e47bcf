package blocks

import (
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// VideoValidator checks the target, dimensions, poster, playback options,
// and caption of video blocks.
type VideoValidator struct{}

// Kind implements Validator.
func (VideoValidator) Kind() domain.BlockKind { return domain.KindVideo }

// Validate implements Validator.
func (VideoValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.VideoBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	var msgs []domain.Message
	if r := cfg.URL; r != nil {
		target, _ := domain.AttributeOf(node, "target")
		f := newFacet(vctx, node, domain.KindVideo, "url", "URL", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(target, r, "video::path/to/file.mp4[]", attrPlaceholder("target"))...)
	}
	if r := cfg.Dimensions; r != nil {
		sev := domain.Resolve(r.Severity, cfg.Severity)
		if r.Width != nil {
			w, ok := domain.AttributeOf(node, "width")
			f := newFacet(vctx, node, domain.KindVideo, "width", "width", sev)
			msgs = append(msgs, f.dimension(w, ok, r.Width, "width")...)
		}
		if r.Height != nil {
			h, ok := domain.AttributeOf(node, "height")
			f := newFacet(vctx, node, domain.KindVideo, "height", "height", sev)
			msgs = append(msgs, f.dimension(h, ok, r.Height, "height")...)
		}
	}
	if r := cfg.Poster; r != nil {
		poster, _ := domain.AttributeOf(node, "poster")
		f := newFacet(vctx, node, domain.KindVideo, "poster", "poster", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(poster, r, `poster="poster.png"`, attrPlaceholder("poster"))...)
	}
	msgs = append(msgs, mediaOptions(vctx, node, domain.KindVideo, cfg.Options, cfg.Severity)...)
	if r := cfg.Caption; r != nil {
		f := newFacet(vctx, node, domain.KindVideo, "caption", "caption", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(node.Title(), r, ".Caption", contentPlaceholder)...)
	}
	return msgs
}
