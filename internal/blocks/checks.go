package blocks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
	"github.com/eykd/adoclint-go/internal/textnorm"
)

// kindSection labels messages about sections, which are not blocks.
const kindSection domain.BlockKind = "section"

var kindLabels = map[domain.BlockKind]string{
	domain.KindParagraph:  "Paragraph",
	domain.KindTable:      "Table",
	domain.KindImage:      "Image",
	domain.KindListing:    "Listing block",
	domain.KindLiteral:    "Literal block",
	domain.KindVerse:      "Verse",
	domain.KindQuote:      "Quote",
	domain.KindAdmonition: "Admonition",
	domain.KindSidebar:    "Sidebar",
	domain.KindExample:    "Example block",
	domain.KindPass:       "Passthrough block",
	domain.KindAudio:      "Audio block",
	domain.KindVideo:      "Video block",
	domain.KindDList:      "Description list",
	domain.KindUList:      "Unordered list",
	kindSection:           "Section",
}

// KindLabel returns the human-readable name of kind.
func KindLabel(kind domain.BlockKind) string {
	if l, ok := kindLabels[kind]; ok {
		return l
	}
	return "Block"
}

// facet builds the messages for one nested rule group of a block, e.g. the
// title of a listing. Every message it creates carries the id prefix
// "<kind>.<name>" and the already resolved severity.
type facet struct {
	vctx     *Context
	node     domain.Node
	kind     domain.BlockKind
	name     string
	label    string
	severity domain.Severity
	line     int
}

func newFacet(vctx *Context, node domain.Node, kind domain.BlockKind, name, label string, sev domain.Severity) facet {
	return facet{vctx: vctx, node: node, kind: kind, name: name, label: label, severity: sev}
}

// atLine returns a copy of f that reports at line instead of the node's line.
func (f facet) atLine(line int) facet {
	f.line = line
	return f
}

func (f facet) subject() string {
	return KindLabel(f.kind) + " " + f.label
}

func (f facet) location() domain.SourceLocation {
	if f.line > 0 {
		return f.vctx.LocationAt(f.node, f.line)
	}
	return f.vctx.Location(f.node)
}

func (f facet) message(constraint string, errType domain.ErrorType, text string) domain.Message {
	id := string(f.kind) + "." + f.name + "." + constraint
	return domain.NewMessage(id, f.severity, text, f.location()).WithErrorType(errType)
}

// missing reports an absent required value.
func (f facet) missing(hint string, pc domain.PlaceholderContext) domain.Message {
	m := f.message("required", domain.ErrorTypeMissingValue, f.subject()+" is required").
		WithActual("No " + f.label).
		WithExpected("A non-empty " + f.label)
	if hint != "" {
		m = m.WithPlaceholder(hint, pc).WithSuggestion("Add the "+f.label, hint)
	}
	return m
}

// mismatch reports a value that fails a pattern.
func (f facet) mismatch(value string, p *ruleset.Pattern) domain.Message {
	return f.message("pattern", domain.ErrorTypeInvalidPattern,
		fmt.Sprintf("%s does not match the required pattern", f.subject())).
		WithActual(value).
		WithExpected("Pattern: " + p.String())
}

// text checks a textual value: required when blank, otherwise length
// bounds and the pattern. Lengths are rune counts after NFC normalization.
func (f facet) text(value string, c ruleset.TextConstraints, hint string, pc domain.PlaceholderContext) []domain.Message {
	if strings.TrimSpace(value) == "" {
		if c.Required {
			return []domain.Message{f.missing(hint, pc)}
		}
		return nil
	}
	value = textnorm.NFC(value)

	var out []domain.Message
	n := textnorm.Len(value)
	if c.MinLength != nil && n < *c.MinLength {
		out = append(out, f.message("minLength", domain.ErrorTypeOutOfRange,
			fmt.Sprintf("%s is too short", f.subject())).
			WithActual(strconv.Itoa(n)).
			WithExpected(fmt.Sprintf("At least %d characters", *c.MinLength)))
	}
	if c.MaxLength != nil && n > *c.MaxLength {
		out = append(out, f.message("maxLength", domain.ErrorTypeOutOfRange,
			fmt.Sprintf("%s is too long", f.subject())).
			WithActual(strconv.Itoa(n)).
			WithExpected(fmt.Sprintf("At most %d characters", *c.MaxLength)))
	}
	if c.Pattern != nil && !c.Pattern.MatchString(value) {
		out = append(out, f.mismatch(value, c.Pattern))
	}
	return out
}

// textRule is text for rule groups that carry their own severity. The
// caller resolves the severity when building f.
func (f facet) textRule(value string, r *ruleset.TextRule, hint string, pc domain.PlaceholderContext) []domain.Message {
	if r == nil {
		return nil
	}
	return f.text(value, r.Constraints(), hint, pc)
}

// bounds checks a count against inclusive limits, emitting
// "<facet>.<minID>" and "<facet>.<maxID>". unit names the counted things.
func (f facet) bounds(n int, lo, hi *int, minID, maxID, unit string) []domain.Message {
	var out []domain.Message
	if lo != nil && n < *lo {
		out = append(out, f.message(minID, domain.ErrorTypeOutOfRange,
			fmt.Sprintf("%s has too few %s", KindLabel(f.kind), unit)).
			WithActual(strconv.Itoa(n)).
			WithExpected(fmt.Sprintf("At least %d %s", *lo, unit)))
	}
	if hi != nil && n > *hi {
		out = append(out, f.message(maxID, domain.ErrorTypeOutOfRange,
			fmt.Sprintf("%s has too many %s", KindLabel(f.kind), unit)).
			WithActual(strconv.Itoa(n)).
			WithExpected(fmt.Sprintf("At most %d %s", *hi, unit)))
	}
	return out
}

// count is bounds with the usual "min"/"max" constraint names.
func (f facet) count(n int, r *ruleset.CountRule, unit string) []domain.Message {
	if r == nil {
		return nil
	}
	return f.bounds(n, r.Min, r.Max, "min", "max", unit)
}

// choice checks a value against a required flag and an allowed set.
// Comparison with the allowed set ignores case.
func (f facet) choice(value string, r *ruleset.ChoiceRule, hint string) []domain.Message {
	if r == nil {
		return nil
	}
	if strings.TrimSpace(value) == "" {
		if r.Required {
			pc := domain.PlaceholderContext{Type: domain.PlaceholderListValue, Choices: r.Allowed}
			if len(r.Allowed) == 0 {
				pc.Type = domain.PlaceholderSimpleValue
			}
			return []domain.Message{f.missing(hint, pc)}
		}
		return nil
	}
	if len(r.Allowed) == 0 || containsFold(r.Allowed, value) {
		return nil
	}
	m := f.message("allowed", domain.ErrorTypeNotAllowed,
		fmt.Sprintf("%s %q is not allowed", f.subject(), value)).
		WithActual(value).
		WithExpected("One of: " + strings.Join(r.Allowed, ", "))
	if best, ok := closestMatch(value, r.Allowed); ok {
		m = m.WithSuggestion(fmt.Sprintf("Did you mean '%s'?", best), best)
	}
	return []domain.Message{m}
}

// dimension checks a numeric attribute. Values that are not integers, such
// as percentages, are only checked for presence.
func (f facet) dimension(raw string, present bool, c *ruleset.DimensionConstraints, attr string) []domain.Message {
	if c == nil {
		return nil
	}
	if !present || strings.TrimSpace(raw) == "" {
		if c.Required {
			return []domain.Message{f.missing(attr+"=", domain.PlaceholderContext{
				Type:          domain.PlaceholderAttribute,
				AttributeName: attr,
			})}
		}
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(raw), "px"))
	if err != nil {
		return nil
	}
	return f.bounds(n, c.Min, c.Max, "min", "max", "pixels")
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

var contentPlaceholder = domain.PlaceholderContext{Type: domain.PlaceholderContent}

func attrPlaceholder(name string) domain.PlaceholderContext {
	return domain.PlaceholderContext{Type: domain.PlaceholderAttribute, AttributeName: name}
}
