package blocks

import (
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// AudioValidator checks the target, playback options, and title of audio blocks.
type AudioValidator struct{}

// Kind implements Validator.
func (AudioValidator) Kind() domain.BlockKind { return domain.KindAudio }

// Validate implements Validator.
func (AudioValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.AudioBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	var msgs []domain.Message
	if r := cfg.URL; r != nil {
		target, _ := domain.AttributeOf(node, "target")
		f := newFacet(vctx, node, domain.KindAudio, "url", "URL", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(target, r, "audio::path/to/file.mp3[]", attrPlaceholder("target"))...)
	}
	msgs = append(msgs, mediaOptions(vctx, node, domain.KindAudio, cfg.Options, cfg.Severity)...)
	if r := cfg.Title; r != nil {
		f := newFacet(vctx, node, domain.KindAudio, "title", "title", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(node.Title(), r, ".Title", contentPlaceholder)...)
	}
	return msgs
}
