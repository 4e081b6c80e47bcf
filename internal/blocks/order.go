package blocks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// ValidateOrder checks the blocks tracked in the current scope of vctx
// against order. The fixed sequence, before pairs, and after pairs are
// checked independently. Blocks are named by ruleset.DisplayName. A nil
// context or order yields no messages. An unset order severity reports as
// a warning.
func ValidateOrder(vctx *Context, order *ruleset.OrderRule) []domain.Message {
	if vctx == nil || order == nil {
		return nil
	}
	sev := domain.Resolve(order.Severity, domain.SeverityWarn)
	tracked := vctx.Tracked()

	var msgs []domain.Message
	msgs = append(msgs, checkFixed(vctx, tracked, order.Fixed, sev)...)

	first := firstPositions(tracked)
	for _, p := range order.Before {
		a, okA := first[p.First]
		b, okB := first[p.Second]
		if !okA || !okB || a.Position < b.Position {
			continue
		}
		msgs = append(msgs, domain.NewMessage("block.order.before", sev,
			fmt.Sprintf("Block %q must appear before %q", p.First, p.Second), vctx.Location(a.Node)).
			WithActual(fmt.Sprintf("%s at position %d, %s at position %d", p.First, a.Position, p.Second, b.Position)).
			WithExpected(fmt.Sprintf("%s before %s", p.First, p.Second)).
			WithErrorType(domain.ErrorTypeOrder))
	}
	for _, p := range order.After {
		a, okA := first[p.First]
		b, okB := first[p.Second]
		if !okA || !okB || a.Position > b.Position {
			continue
		}
		msgs = append(msgs, domain.NewMessage("block.order.after", sev,
			fmt.Sprintf("Block %q must appear after %q", p.First, p.Second), vctx.Location(a.Node)).
			WithActual(fmt.Sprintf("%s at position %d, %s at position %d", p.First, a.Position, p.Second, b.Position)).
			WithExpected(fmt.Sprintf("%s after %s", p.First, p.Second)).
			WithErrorType(domain.ErrorTypeOrder))
	}
	return msgs
}

// checkFixed reports each listed block that appears after a block listed
// later in fixed. Unlisted blocks are ignored.
func checkFixed(vctx *Context, tracked []Tracked, fixed []string, sev domain.Severity) []domain.Message {
	if len(fixed) == 0 {
		return nil
	}
	index := make(map[string]int, len(fixed))
	for i, name := range fixed {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var msgs []domain.Message
	highest, highestName := -1, ""
	for _, t := range tracked {
		name := ruleset.DisplayName(t.Rule)
		i, ok := index[name]
		if !ok {
			continue
		}
		if i < highest {
			msgs = append(msgs, domain.NewMessage("block.order.fixed", sev,
				fmt.Sprintf("Block %q is out of order: it must not come after %q", name, highestName), vctx.Location(t.Node)).
				WithActual(fmt.Sprintf("%s at position %d", name, t.Position)).
				WithExpected("Order: "+strings.Join(fixed, ", ")).
				WithErrorType(domain.ErrorTypeOrder).
				WithSuggestion(fmt.Sprintf("Move %s before %s", name, highestName), ""))
			continue
		}
		highest, highestName = i, name
	}
	return msgs
}

func firstPositions(tracked []Tracked) map[string]Tracked {
	first := make(map[string]Tracked)
	for _, t := range tracked {
		name := ruleset.DisplayName(t.Rule)
		if _, seen := first[name]; !seen {
			first[name] = t
		}
	}
	return first
}

// RankedSequence returns the display names of the rules that carry an order
// rank, sorted by rank. Rules with equal rank keep their configured order.
func RankedSequence(rules []ruleset.BlockRule) []string {
	var ranked []ruleset.BlockRule
	for _, r := range rules {
		if r != nil && r.Common().Order != nil {
			ranked = append(ranked, r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].Common().Order < *ranked[j].Common().Order
	})
	names := make([]string, 0, len(ranked))
	for _, r := range ranked {
		names = append(names, ruleset.DisplayName(r))
	}
	return names
}
