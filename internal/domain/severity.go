// Package domain holds the pure types shared by every layer of adoclint:
// severities, validation messages, source locations, block kinds, and the
// read-only contracts a parsed document must satisfy.
package domain

import (
	"fmt"
	"strings"
)

// Severity classifies how important a validation message is.
// The zero value means "not configured" and is only meaningful as the
// nested side of Resolve.
type Severity int

const (
	// SeverityUnset marks a nested rule that inherits its block's severity.
	SeverityUnset Severity = iota
	// SeverityInfo is an informational message.
	SeverityInfo
	// SeverityWarn is a message that should be reviewed.
	SeverityWarn
	// SeverityError is a message that must be resolved.
	SeverityError
)

// Resolve returns nested when it is set, otherwise blockLevel.
// The chain is exactly two levels deep: a nested rule never falls back to
// anything other than the severity of the block that owns it.
func Resolve(nested, blockLevel Severity) Severity {
	if nested != SeverityUnset {
		return nested
	}
	return blockLevel
}

// ParseSeverity parses a severity name case-insensitively.
// "warning" is accepted as a synonym for "warn".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, nil
	case "warn", "warning":
		return SeverityWarn, nil
	case "info":
		return SeverityInfo, nil
	case "":
		return SeverityUnset, nil
	}
	return SeverityUnset, fmt.Errorf("unknown severity %q", s)
}

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarn:
		return "warn"
	case SeverityInfo:
		return "info"
	default:
		return "unset"
	}
}

// AtLeast reports whether s is as severe as threshold.
func (s Severity) AtLeast(threshold Severity) bool {
	return s >= threshold
}

// MarshalText encodes the severity as its lowercase name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name. It lets YAML and JSON decoders
// read severities directly into configuration structs.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
