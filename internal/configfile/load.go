// Package configfile loads adoclint rules files: YAML checked against an
// embedded JSON Schema, decoded into a ruleset.Config, defaulted, and
// validated.
package configfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// DefaultFilename is the rules file looked up when none is given.
const DefaultFilename = ".adoclint.yaml"

// Load reads, decodes, defaults, and validates the rules file at path.
func Load(path string) (*ruleset.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Err: ErrConfigNotFound}
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		var se *SchemaError
		if errors.As(err, &se) {
			return nil, err
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return cfg, nil
}

// Parse decodes a rules document. The document is checked against the
// schema before decoding, so unknown keys and malformed values are reported
// together as a *SchemaError.
func Parse(data []byte) (*ruleset.Config, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if generic == nil {
		generic = map[string]any{}
	}
	if err := checkSchema(generic); err != nil {
		return nil, err
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	cfg := raw.toConfig()

	ApplyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills in unset section and order severities. Sections
// default to error, a section's order rule to the section severity, and
// the document order rule to warn. Block severities are required and never
// defaulted.
func ApplyDefaults(cfg *ruleset.Config) {
	if cfg == nil {
		return
	}
	if o := cfg.Document.Order; o != nil && o.Severity == domain.SeverityUnset {
		o.Severity = domain.SeverityWarn
	}
	for _, s := range cfg.Document.Sections {
		defaultSection(s)
	}
}

func defaultSection(s *ruleset.SectionRule) {
	if s == nil {
		return
	}
	if s.Severity == domain.SeverityUnset {
		s.Severity = domain.SeverityError
	}
	if s.Order != nil && s.Order.Severity == domain.SeverityUnset {
		s.Order.Severity = s.Severity
	}
	for _, sub := range s.Subsections {
		defaultSection(sub)
	}
}

var validate = validator.New()

// Validate checks the value constraints of every rule in cfg.
func Validate(cfg *ruleset.Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	var issues []Issue
	check := func(path string, v any) {
		err := validate.Struct(v)
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return
		}
		for _, fe := range verrs {
			issues = append(issues, Issue{Field: path + "." + fieldPath(fe), Message: describe(fe)})
		}
	}

	checkBlocks := func(path string, rules []ruleset.BlockRule) {
		for i, r := range rules {
			check(fmt.Sprintf("%s[%d].%s", path, i, r.Kind()), r)
		}
	}
	checkBlocks("document.blocks", cfg.Document.Blocks)
	if cfg.Document.Order != nil {
		check("document.blockOrder", cfg.Document.Order)
	}

	var walk func(path string, sections []*ruleset.SectionRule)
	walk = func(path string, sections []*ruleset.SectionRule) {
		for i, s := range sections {
			sp := fmt.Sprintf("%s[%d]", path, i)
			if s.Level < 0 {
				issues = append(issues, Issue{Field: sp + ".level", Message: "must be 0 or greater"})
			}
			if s.Title != nil {
				check(sp+".title", s.Title)
			}
			if s.Occurrence != nil {
				check(sp+".occurrence", s.Occurrence)
			}
			if s.Order != nil {
				check(sp+".blockOrder", s.Order)
			}
			checkBlocks(sp+".allowedBlocks", s.Blocks)
			walk(sp+".subsections", s.Subsections)
		}
	}
	walk("document.sections", cfg.Document.Sections)

	if len(issues) > 0 {
		return &SchemaError{Issues: issues}
	}
	return nil
}

// fieldPath turns a validator namespace such as "ParagraphBlock.Lines.Min"
// into "lines.min", dropping the root type and the embedded base.
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	out := parts[:0]
	for _, p := range parts {
		if p == "BlockBase" {
			continue
		}
		out = append(out, lowerFirst(p))
	}
	return strings.Join(out, ".")
}

func lowerFirst(s string) string {
	if s == "" || s == "URL" {
		return strings.ToLower(s)
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be " + fe.Param() + " or greater"
	}
	return fmt.Sprintf("failed %q", fe.Tag())
}

// KnownBlockKinds lists the keys accepted in block lists, sorted.
func KnownBlockKinds() []string {
	kinds := make([]string, 0, len(domain.AllBlockKinds()))
	for _, k := range domain.AllBlockKinds() {
		kinds = append(kinds, k.String())
	}
	sort.Strings(kinds)
	return kinds
}
