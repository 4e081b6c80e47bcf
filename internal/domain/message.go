package domain

import (
	"fmt"
	"strings"
)

// ErrorType classifies the shape of a violation.
type ErrorType string

const (
	// ErrorTypeMissingValue indicates a required field, attribute, or content is absent.
	ErrorTypeMissingValue ErrorType = "missing_value"
	// ErrorTypeInvalidPattern indicates a present value fails a configured pattern.
	ErrorTypeInvalidPattern ErrorType = "invalid_pattern"
	// ErrorTypeOutOfRange indicates a count or length outside configured bounds.
	ErrorTypeOutOfRange ErrorType = "out_of_range"
	// ErrorTypeNotAllowed indicates a value outside a configured allowed set.
	ErrorTypeNotAllowed ErrorType = "not_allowed"
	// ErrorTypeInconsistent indicates values that must agree with each other do not.
	ErrorTypeInconsistent ErrorType = "inconsistent"
	// ErrorTypeOrder indicates blocks appear in the wrong order.
	ErrorTypeOrder ErrorType = "order"
)

// PlaceholderType describes what kind of value a missing-value hint stands for.
type PlaceholderType string

const (
	// PlaceholderSimpleValue stands for a single scalar value.
	PlaceholderSimpleValue PlaceholderType = "simple_value"
	// PlaceholderListValue stands for one value chosen from a list.
	PlaceholderListValue PlaceholderType = "list_value"
	// PlaceholderAttribute stands for a block attribute that should be added.
	PlaceholderAttribute PlaceholderType = "attribute"
	// PlaceholderContent stands for block content or a title line.
	PlaceholderContent PlaceholderType = "content"
)

// PlaceholderContext tells a renderer how to present a missing value.
type PlaceholderContext struct {
	Type          PlaceholderType `json:"type"`
	AttributeName string          `json:"attributeName,omitempty"`
	Choices       []string        `json:"choices,omitempty"`
}

// Suggestion is a human-readable proposal for fixing a violation.
type Suggestion struct {
	Description string `json:"description"`
	Value       string `json:"value,omitempty"`
}

// Message is a single validation result. Messages are values: the With*
// methods return modified copies.
type Message struct {
	RuleID             string              `json:"ruleId"`
	Severity           Severity            `json:"severity"`
	Message            string              `json:"message"`
	ActualValue        string              `json:"actualValue,omitempty"`
	ExpectedValue      string              `json:"expectedValue,omitempty"`
	ErrorType          ErrorType           `json:"errorType,omitempty"`
	Location           SourceLocation      `json:"location"`
	MissingValueHint   string              `json:"missingValueHint,omitempty"`
	PlaceholderContext *PlaceholderContext `json:"placeholderContext,omitempty"`
	Suggestions        []Suggestion        `json:"suggestions,omitempty"`
}

// NewMessage creates a message with the mandatory fields.
func NewMessage(ruleID string, severity Severity, text string, loc SourceLocation) Message {
	return Message{
		RuleID:   ruleID,
		Severity: severity,
		Message:  text,
		Location: loc,
	}
}

// WithActual sets the observed value.
func (m Message) WithActual(actual string) Message {
	m.ActualValue = actual
	return m
}

// WithExpected sets the expected value.
func (m Message) WithExpected(expected string) Message {
	m.ExpectedValue = expected
	return m
}

// WithErrorType sets the error classification.
func (m Message) WithErrorType(t ErrorType) Message {
	m.ErrorType = t
	return m
}

// WithPlaceholder sets the missing-value hint and its context.
func (m Message) WithPlaceholder(hint string, pc PlaceholderContext) Message {
	m.MissingValueHint = hint
	m.PlaceholderContext = &pc
	return m
}

// WithSuggestion appends a suggestion.
func (m Message) WithSuggestion(description, value string) Message {
	// Copy so that messages sharing a backing array stay independent.
	m.Suggestions = append(append([]Suggestion(nil), m.Suggestions...), Suggestion{
		Description: description,
		Value:       value,
	})
	return m
}

// String formats the message for a single console line.
func (m Message) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] %s: %s", m.Location, m.Severity, m.RuleID, m.Message)
	if m.ActualValue != "" || m.ExpectedValue != "" {
		fmt.Fprintf(&sb, " (actual: %s, expected: %s)", orDash(m.ActualValue), orDash(m.ExpectedValue))
	}
	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
