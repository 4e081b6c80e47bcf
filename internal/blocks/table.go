package blocks

import (
	"fmt"
	"strings"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// TableValidator checks table dimensions, the header row, the caption, and
// the data format and frame attributes.
type TableValidator struct{}

// Kind implements Validator.
func (TableValidator) Kind() domain.BlockKind { return domain.KindTable }

// Validate implements Validator. Dimension and header checks need the node
// to implement domain.Table and are skipped otherwise.
func (TableValidator) Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message {
	mustContext(vctx)
	cfg, ok := rule.(*ruleset.TableBlock)
	if !ok || cfg == nil || node == nil {
		return nil
	}
	vctx.TrackBlock(cfg, node)

	var msgs []domain.Message
	table, isTable := node.(domain.Table)
	if r := cfg.Columns; r != nil && isTable {
		f := newFacet(vctx, node, domain.KindTable, "columns", "columns", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.count(table.ColumnCount(), r, "columns")...)
	}
	if r := cfg.Rows; r != nil && isTable {
		f := newFacet(vctx, node, domain.KindTable, "rows", "rows", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.count(len(table.BodyRows()), r, "rows")...)
	}
	if r := cfg.Header; r != nil && isTable {
		f := newFacet(vctx, node, domain.KindTable, "header", "header row", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, checkHeader(f, table, r)...)
	}
	if r := cfg.Caption; r != nil {
		f := newFacet(vctx, node, domain.KindTable, "caption", "caption", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, f.textRule(node.Title(), r, ".Caption", contentPlaceholder)...)
	}
	if r := cfg.Format; r != nil {
		f := newFacet(vctx, node, domain.KindTable, "format", "format", domain.Resolve(r.Severity, cfg.Severity))
		msgs = append(msgs, checkTableFormat(f, node, r)...)
	}
	return msgs
}

func checkHeader(f facet, table domain.Table, r *ruleset.HeaderRule) []domain.Message {
	headers := table.HeaderRows()
	if len(headers) == 0 {
		if r.Required {
			return []domain.Message{f.missing(`options="header"`, attrPlaceholder("options"))}
		}
		return nil
	}
	if r.Pattern == nil {
		return nil
	}
	var out []domain.Message
	for _, cell := range headers[0].Cells {
		text := strings.TrimSpace(cell.Text)
		if !r.Pattern.MatchString(text) {
			out = append(out, f.mismatch(text, r.Pattern))
		}
	}
	return out
}

func checkTableFormat(f facet, node domain.Node, r *ruleset.TableFormatRule) []domain.Message {
	var out []domain.Message
	if r.Style != "" {
		style, ok := domain.AttributeOf(node, "format")
		if !ok {
			style = "psv"
		}
		if !strings.EqualFold(style, r.Style) {
			out = append(out, f.message("style", domain.ErrorTypeNotAllowed,
				fmt.Sprintf("Table format %q is not the required %q", style, r.Style)).
				WithActual(style).
				WithExpected(r.Style).
				WithSuggestion("Set the table format", "format="+r.Style))
		}
	}
	if r.Borders != nil {
		frame, ok := domain.AttributeOf(node, "frame")
		if !ok {
			frame = "all"
		}
		hasBorders := frame != "none"
		if hasBorders != *r.Borders {
			m := f.message("borders", domain.ErrorTypeInconsistent, "Table borders do not match the required format").
				WithActual("frame=" + frame)
			if *r.Borders {
				m = m.WithExpected("Borders").WithSuggestion("Draw the table frame", "frame=all")
			} else {
				m = m.WithExpected("No borders").WithSuggestion("Remove the table frame", "frame=none")
			}
			out = append(out, m)
		}
	}
	return out
}
