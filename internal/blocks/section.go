package blocks

import (
	"fmt"
	"strconv"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// ValidateSectionTitle checks the title of a section matched by rule.
func ValidateSectionTitle(vctx *Context, section domain.Node, rule *ruleset.SectionRule) []domain.Message {
	mustContext(vctx)
	if section == nil || rule == nil || rule.Title == nil {
		return nil
	}
	f := newFacet(vctx, section, kindSection, "title", "title", domain.Resolve(rule.Title.Severity, rule.Severity))
	return f.textRule(section.Title(), rule.Title, "== Title", contentPlaceholder)
}

// ValidateSectionOccurrences checks how often each section rule matched
// among the sections of the current scope. counts is keyed by rule.
func ValidateSectionOccurrences(vctx *Context, rules []*ruleset.SectionRule, counts map[*ruleset.SectionRule]int) []domain.Message {
	mustContext(vctx)
	var msgs []domain.Message
	for _, rule := range rules {
		if rule == nil || rule.Occurrence == nil {
			continue
		}
		occ := rule.Occurrence
		sev := domain.Resolve(occ.Severity, rule.Severity)
		n := counts[rule]
		loc := vctx.Location(vctx.Section())
		name := rule.DisplayName()

		if occ.Min != nil && n < *occ.Min {
			msgs = append(msgs, domain.NewMessage("section.occurrence.min", sev,
				fmt.Sprintf("Section %q occurs too few times", name), loc).
				WithActual(strconv.Itoa(n)).
				WithExpected(fmt.Sprintf("At least %d occurrences", *occ.Min)).
				WithErrorType(domain.ErrorTypeOutOfRange).
				WithSuggestion(fmt.Sprintf("Add a %q section", name), ""))
		}
		if occ.Max != nil && n > *occ.Max {
			msgs = append(msgs, domain.NewMessage("section.occurrence.max", sev,
				fmt.Sprintf("Section %q occurs too many times", name), loc).
				WithActual(strconv.Itoa(n)).
				WithExpected(fmt.Sprintf("At most %d occurrences", *occ.Max)).
				WithErrorType(domain.ErrorTypeOutOfRange))
		}
	}
	return msgs
}
