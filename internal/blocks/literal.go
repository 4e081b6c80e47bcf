package blocks

import (
	"fmt"
	"strconv"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// LiteralValidator checks the title, line count, and indentation of literal blocks.
type LiteralValidator struct{}

// Kind implements Validator.
func (LiteralValidator) Kind() domain.BlockKind { return domain.KindLiteral }

// Validate implements Validator.
func (LiteralValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.LiteralBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	var msgs []domain.Message
	if r := cfg.Title; r != nil {
		f := newFacet(vctx, node, domain.KindLiteral, "title", "title", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(node.Title(), r, ".Title", contentPlaceholder)...)
	}
	if r := cfg.Lines; r != nil {
		f := newFacet(vctx, node, domain.KindLiteral, "lines", "lines", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.count(len(splitLines(node.Content())), r, "lines")...)
	}
	if r := cfg.Indentation; r != nil {
		f := newFacet(vctx, node, domain.KindLiteral, "indentation", "indentation", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, checkIndentation(f, nonBlankLines(node.Content()), r)...)
	}
	return msgs
}

// checkIndentation compares the leading whitespace of non-blank lines.
func checkIndentation(f facet, lines []string, r *ruleset.IndentationRule) []domain.Message {
	if len(lines) == 0 {
		return nil
	}
	lo, hi := leadingSpaces(lines[0]), leadingSpaces(lines[0])
	for _, l := range lines[1:] {
		n := leadingSpaces(l)
		lo, hi = min(lo, n), max(hi, n)
	}

	var out []domain.Message
	if r.Consistent && lo != hi {
		out = append(out, f.message("consistent", domain.ErrorTypeInconsistent, "Literal block indentation is inconsistent").
			WithActual(fmt.Sprintf("Between %d and %d spaces", lo, hi)).
			WithExpected("The same indentation on every line"))
	}
	if r.MinSpaces != nil && lo < *r.MinSpaces {
		out = append(out, f.message("min", domain.ErrorTypeOutOfRange, "Literal block is indented too little").
			WithActual(strconv.Itoa(lo)).
			WithExpected(fmt.Sprintf("At least %d spaces", *r.MinSpaces)))
	}
	if r.MaxSpaces != nil && hi > *r.MaxSpaces {
		out = append(out, f.message("max", domain.ErrorTypeOutOfRange, "Literal block is indented too much").
			WithActual(strconv.Itoa(hi)).
			WithExpected(fmt.Sprintf("At most %d spaces", *r.MaxSpaces)))
	}
	return out
}
