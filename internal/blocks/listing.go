package blocks

import (
	"fmt"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// ListingValidator checks listing and source blocks.
type ListingValidator struct{}

// Kind implements Validator.
func (ListingValidator) Kind() domain.BlockKind { return domain.KindListing }

// Validate implements Validator. Line counts include blank lines.
func (ListingValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.ListingBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	var msgs []domain.Message
	if r := cfg.Language; r != nil {
		lang, _ := domain.AttributeOf(node, "language")
		f := newFacet(vctx, node, domain.KindListing, "language", "language", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.choice(lang, r, "[source,language]")...)
	}
	if r := cfg.Title; r != nil {
		f := newFacet(vctx, node, domain.KindListing, "title", "title", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(node.Title(), r, ".Title", contentPlaceholder)...)
	}
	if r := cfg.Lines; r != nil {
		f := newFacet(vctx, node, domain.KindListing, "lines", "lines", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.count(len(splitLines(node.Content())), r, "lines")...)
	}
	if r := cfg.Callouts; r != nil {
		f := newFacet(vctx, node, domain.KindListing, "callouts", "callouts", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, checkCallouts(f, countCallouts(node.Content()), r)...)
	}
	return msgs
}

func checkCallouts(f facet, n int, r *ruleset.CalloutsRule) []domain.Message {
	var out []domain.Message
	if r.Allowed != nil && !*r.Allowed && n > 0 {
		out = append(out, f.message("notAllowed", domain.ErrorTypeNotAllowed, "Listing block must not contain callouts").
			WithActual(fmt.Sprintf("%d callouts", n)).
			WithExpected("No callouts").
			WithSuggestion("Remove the callout markers", ""))
	}
	if r.Max != nil && n > *r.Max {
		out = append(out, f.message("max", domain.ErrorTypeOutOfRange, "Listing block has too many callouts").
			WithActual(fmt.Sprintf("%d callouts", n)).
			WithExpected(fmt.Sprintf("At most %d callouts", *r.Max)))
	}
	return out
}
