package blocks

import (
	"strings"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
	"github.com/eykd/adoclint-go/internal/textnorm"
)

// DListValidator checks the terms and descriptions of description lists.
// The nestingLevel and delimiterStyle rules are accepted but not checked.
type DListValidator struct{}

// Kind implements Validator.
func (DListValidator) Kind() domain.BlockKind { return domain.KindDList }

// Validate implements Validator. Term and description checks need the node
// to implement domain.DescriptionList and are skipped otherwise.
func (DListValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.DListBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	list, isList := node.(domain.DescriptionList)
	if !isList {
		return nil
	}
	entries := list.Entries()

	var msgs []domain.Message
	if r := cfg.Terms; r != nil {
		f := newFacet(vctx, node, domain.KindDList, "terms", "term", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, checkTerms(f, entries, r)...)
	}
	if r := cfg.Descriptions; r != nil {
		f := newFacet(vctx, node, domain.KindDList, "descriptions", "description", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, checkDescriptions(f, entries, r)...)
	}
	return msgs
}

func checkTerms(f facet, entries []domain.DListEntry, r *ruleset.TermsRule) []domain.Message {
	var terms []domain.ListItem
	for _, e := range entries {
		terms = append(terms, e.Terms...)
	}

	out := f.bounds(len(terms), r.Min, r.Max, "min", "max", "terms")
	c := ruleset.TextConstraints{Pattern: r.Pattern, MinLength: r.MinLength, MaxLength: r.MaxLength}
	for _, t := range terms {
		out = append(out, f.atLine(t.Line).text(strings.TrimSpace(t.Text), c, "", contentPlaceholder)...)
	}
	return out
}

func checkDescriptions(f facet, entries []domain.DListEntry, r *ruleset.DescriptionsRule) []domain.Message {
	var out []domain.Message
	for _, e := range entries {
		line := 0
		if len(e.Terms) > 0 {
			line = e.Terms[0].Line
		}
		if e.Description == nil || strings.TrimSpace(e.Description.Text) == "" {
			if r.Required {
				out = append(out, f.atLine(line).missing(":: Description", contentPlaceholder))
			}
			continue
		}
		if e.Description.Line > 0 {
			line = e.Description.Line
		}
		text := textnorm.NFC(strings.TrimSpace(e.Description.Text))
		if r.Pattern != nil && !r.Pattern.MatchString(text) {
			out = append(out, f.atLine(line).mismatch(text, r.Pattern))
		}
	}
	return out
}
