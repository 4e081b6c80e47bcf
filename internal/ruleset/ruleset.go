// Package ruleset defines the strongly typed linter configuration: which
// sections a document may contain, which blocks each section allows, and
// the constraints on every block. A Config is immutable once loaded.
package ruleset

import (
	"strings"

	"github.com/eykd/adoclint-go/internal/domain"
)

// Config is the root of a loaded rule set.
type Config struct {
	Document DocumentRule
	// Suppress lists rule ids to drop from results. A trailing ".*" matches
	// every id with that prefix.
	Suppress []string
}

// DocumentRule configures the document root.
type DocumentRule struct {
	// Blocks are the rules for blocks that appear before the first section.
	Blocks   []BlockRule
	Order    *OrderRule
	Sections []*SectionRule
}

// SectionRule configures sections that match it and the blocks they allow.
type SectionRule struct {
	Name string
	// Level restricts matching to sections of this level; zero matches any.
	Level       int
	Title       *TextRule
	Occurrence  *OccurrenceRule
	Severity    domain.Severity
	Blocks      []BlockRule
	Order       *OrderRule
	Subsections []*SectionRule
}

// DisplayName returns the section name, or "section" when unnamed.
func (s *SectionRule) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return "section"
}

// OrderPair names two blocks by their display names.
type OrderPair struct {
	First  string `yaml:"first" validate:"required"`
	Second string `yaml:"second" validate:"required"`
}

// OrderRule constrains the relative order of named blocks within a scope.
// The three mechanisms are independent and all optional.
type OrderRule struct {
	// Fixed lists names in the order they must appear. Blocks whose names
	// are not listed are ignored.
	Fixed []string `yaml:"fixed,omitempty"`
	// Before pairs require First to appear strictly before Second.
	Before []OrderPair `yaml:"before,omitempty" validate:"dive"`
	// After pairs require First to appear strictly after Second.
	After    []OrderPair     `yaml:"after,omitempty" validate:"dive"`
	Severity domain.Severity `yaml:"severity,omitempty"`
}

// IsSuppressed reports whether ruleID matches any suppression pattern.
func IsSuppressed(patterns []string, ruleID string) bool {
	for _, p := range patterns {
		if p == ruleID {
			return true
		}
		if prefix, ok := strings.CutSuffix(p, ".*"); ok && strings.HasPrefix(ruleID, prefix+".") {
			return true
		}
		if p == "*" {
			return true
		}
	}
	return false
}

// RuleIDs returns the identifiers every rule in the catalogue can emit,
// grouped by block kind, plus the cross-cutting identifiers under "block"
// and "section".
func RuleIDs() map[string][]string {
	text := func(prefix string) []string {
		return ids(prefix, "required", "minLength", "maxLength", "pattern")
	}
	join := func(groups ...[]string) []string {
		var out []string
		for _, g := range groups {
			out = append(out, g...)
		}
		return out
	}
	options := func(kind string) []string {
		var out []string
		for _, opt := range []string{"autoplay", "controls", "loop"} {
			out = append(out, ids(kind+".options."+opt, "notAllowed", "required")...)
		}
		return out
	}

	return map[string][]string{
		"paragraph": join(ids("paragraph.lines", "min", "max"),
			ids("paragraph.sentence", "occurrence.min", "occurrence.max", "words.min", "words.max"),
			text("paragraph.title")),
		"table": join(ids("table.columns", "min", "max"), ids("table.rows", "min", "max"),
			ids("table.header", "required", "pattern"), text("table.caption"),
			ids("table.format", "style", "borders")),
		"image": join(text("image.url"), text("image.alt"),
			ids("image.width", "required", "min", "max"), ids("image.height", "required", "min", "max"),
			text("image.caption")),
		"listing": join(ids("listing.language", "required", "allowed"), text("listing.title"),
			ids("listing.lines", "min", "max"), ids("listing.callouts", "notAllowed", "max")),
		"literal": join(text("literal.title"), ids("literal.lines", "min", "max"),
			ids("literal.indentation", "consistent", "min", "max")),
		"verse": join(text("verse.author"), text("verse.attribution"), text("verse.content")),
		"quote": join(text("quote.author"), text("quote.source"),
			ids("quote.content", "required", "minLength", "maxLength", "lines.min", "lines.max")),
		"admonition": join(ids("admonition.type", "required", "allowed"), text("admonition.title"),
			text("admonition.content"), text("admonition.icon")),
		"sidebar": join(text("sidebar.title"), text("sidebar.content"),
			ids("sidebar.position", "required", "allowed")),
		"example": join(text("example.title"), text("example.caption"),
			ids("example.collapsible", "required", "allowed")),
		"pass": join(ids("pass.type", "required", "allowed"), text("pass.content"), text("pass.reason")),
		"audio": join(text("audio.url"), options("audio"), text("audio.title")),
		"video": join(text("video.url"), ids("video.width", "required", "min", "max"),
			ids("video.height", "required", "min", "max"), text("video.poster"),
			options("video"), text("video.caption")),
		"dlist": join(ids("dlist.terms", "min", "max", "minLength", "maxLength", "pattern"),
			ids("dlist.descriptions", "required", "pattern")),
		"ulist":   join(ids("ulist.items", "min", "max"), ids("ulist.nestingLevel", "max")),
		"block":   join(ids("block.occurrence", "min", "max"), ids("block.order", "fixed", "before", "after")),
		"section": join(text("section.title"), ids("section.occurrence", "min", "max")),
	}
}

func ids(prefix string, constraints ...string) []string {
	out := make([]string, len(constraints))
	for i, c := range constraints {
		out[i] = prefix + "." + c
	}
	return out
}
