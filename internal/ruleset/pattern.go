package ruleset

import (
	"fmt"
	"regexp"
)

// Pattern is a compiled regular expression that decodes from configuration
// text. Compilation happens during decoding, so a rule set that loaded
// successfully never carries an invalid pattern.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles expr.
func NewPattern(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return &Pattern{re: re}, nil
}

// MustPattern compiles expr and panics on error. Intended for tests and
// package-level defaults.
func MustPattern(expr string) *Pattern {
	p, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// MatchString reports whether s matches. Anchoring is the pattern's
// responsibility (e.g. "^[A-Z].*$"). A nil pattern matches everything.
func (p *Pattern) MatchString(s string) bool {
	if p == nil || p.re == nil {
		return true
	}
	return p.re.MatchString(s)
}

// String returns the source expression.
func (p *Pattern) String() string {
	if p == nil || p.re == nil {
		return ""
	}
	return p.re.String()
}

// UnmarshalText compiles the pattern from configuration text.
func (p *Pattern) UnmarshalText(text []byte) error {
	re, err := regexp.Compile(string(text))
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", string(text), err)
	}
	p.re = re
	return nil
}

// MarshalText returns the source expression.
func (p Pattern) MarshalText() ([]byte, error) {
	if p.re == nil {
		return nil, nil
	}
	return []byte(p.re.String()), nil
}
