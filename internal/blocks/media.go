package blocks

import (
	"fmt"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// mediaOptions checks the playback options shared by audio and video blocks.
// An option is enabled by the %name block option or a plain name attribute.
func mediaOptions(vctx *Context, node domain.Node, kind domain.BlockKind, r *ruleset.MediaOptionsRule, blockSev domain.Severity) []domain.Message {
	if r == nil {
		return nil
	}
	sev := domain.Resolve(r.Severity, blockSev)
	var out []domain.Message
	for _, opt := range []struct {
		name string
		rule *ruleset.OptionRule
	}{
		{"autoplay", r.Autoplay},
		{"controls", r.Controls},
		{"loop", r.Loop},
	} {
		if opt.rule == nil {
			continue
		}
		f := newFacet(vctx, node, kind, "options."+opt.name, opt.name+" option", sev)
		enabled := node.HasAttribute(opt.name+"-option") || node.HasAttribute(opt.name)
		if opt.rule.Allowed != nil && !*opt.rule.Allowed && enabled {
			out = append(out, f.message("notAllowed", domain.ErrorTypeNotAllowed,
				fmt.Sprintf("%s must not use the %s option", KindLabel(kind), opt.name)).
				WithActual(opt.name).
				WithExpected("No " + opt.name).
				WithSuggestion("Remove the "+opt.name+" option", ""))
		}
		if opt.rule.Required && !enabled {
			out = append(out, f.missing("%"+opt.name, attrPlaceholder("options")))
		}
	}
	return out
}
