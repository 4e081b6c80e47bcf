package blocks

import (
	"fmt"
	"strconv"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// ValidateOccurrences checks every rule that has occurrence bounds against
// the blocks tracked in the current scope of vctx. Messages are located at
// the node that owns the scope. Both bounds are checked independently, so a
// rule with min > max can report both.
func ValidateOccurrences(vctx *Context, rules []ruleset.BlockRule) []domain.Message {
	mustContext(vctx)
	var msgs []domain.Message
	for _, rule := range rules {
		if rule == nil || rule.Common().Occurrence == nil {
			continue
		}
		occ := rule.Common().Occurrence
		sev := domain.Resolve(occ.Severity, rule.Common().Severity)
		n := len(vctx.Occurrences(rule))
		name := ruleset.DisplayName(rule)
		loc := vctx.Location(vctx.Section())

		if occ.Min != nil && n < *occ.Min {
			msgs = append(msgs, domain.NewMessage("block.occurrence.min", sev,
				fmt.Sprintf("Block %q occurs too few times", name), loc).
				WithActual(strconv.Itoa(n)).
				WithExpected(fmt.Sprintf("At least %d occurrences", *occ.Min)).
				WithErrorType(domain.ErrorTypeOutOfRange).
				WithSuggestion(fmt.Sprintf("Add a %s block", KindLabel(rule.Kind())), ""))
		}
		if occ.Max != nil && n > *occ.Max {
			msgs = append(msgs, domain.NewMessage("block.occurrence.max", sev,
				fmt.Sprintf("Block %q occurs too many times", name), loc).
				WithActual(strconv.Itoa(n)).
				WithExpected(fmt.Sprintf("At most %d occurrences", *occ.Max)).
				WithErrorType(domain.ErrorTypeOutOfRange))
		}
	}
	return msgs
}
