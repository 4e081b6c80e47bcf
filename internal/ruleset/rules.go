package ruleset

import "github.com/eykd/adoclint-go/internal/domain"

// Nested rule groups shared by several block kinds. Every group is optional
// on its owner: a nil group means that facet is not checked. Groups that
// carry a Severity fall back to the owning block's severity when it is
// unset; the constraint types without one always use the block severity.

// CountRule bounds a count such as lines, rows, or items. Bounds are inclusive.
type CountRule struct {
	Min      *int            `yaml:"min,omitempty" validate:"omitempty,gte=0"`
	Max      *int            `yaml:"max,omitempty" validate:"omitempty,gte=0"`
	Severity domain.Severity `yaml:"severity,omitempty"`
}

// Range is an inclusive bound without its own severity.
type Range struct {
	Min *int `yaml:"min,omitempty" validate:"omitempty,gte=0"`
	Max *int `yaml:"max,omitempty" validate:"omitempty,gte=0"`
}

// OccurrenceRule bounds how many times a block or section may appear in its scope.
type OccurrenceRule struct {
	Min      *int            `yaml:"min,omitempty" validate:"omitempty,gte=0"`
	Max      *int            `yaml:"max,omitempty" validate:"omitempty,gte=0"`
	Severity domain.Severity `yaml:"severity,omitempty"`
}

// TextConstraints checks a textual value. It has no severity of its own and
// is used by block kinds whose violations all carry the block severity.
type TextConstraints struct {
	Required  bool     `yaml:"required,omitempty"`
	Pattern   *Pattern `yaml:"pattern,omitempty"`
	MinLength *int     `yaml:"minLength,omitempty" validate:"omitempty,gte=0"`
	MaxLength *int     `yaml:"maxLength,omitempty" validate:"omitempty,gte=0"`
}

// TextRule checks a textual value such as a title, caption, or content.
type TextRule struct {
	Required  bool            `yaml:"required,omitempty"`
	Pattern   *Pattern        `yaml:"pattern,omitempty"`
	MinLength *int            `yaml:"minLength,omitempty" validate:"omitempty,gte=0"`
	MaxLength *int            `yaml:"maxLength,omitempty" validate:"omitempty,gte=0"`
	Severity  domain.Severity `yaml:"severity,omitempty"`
}

// Constraints returns the rule without its severity.
func (r *TextRule) Constraints() TextConstraints {
	return TextConstraints{
		Required:  r.Required,
		Pattern:   r.Pattern,
		MinLength: r.MinLength,
		MaxLength: r.MaxLength,
	}
}

// ChoiceRule requires a value and/or restricts it to an allowed set.
// An empty Allowed list accepts any value.
type ChoiceRule struct {
	Required bool            `yaml:"required,omitempty"`
	Allowed  []string        `yaml:"allowed,omitempty"`
	Severity domain.Severity `yaml:"severity,omitempty"`
}

// DimensionConstraints checks a numeric attribute such as width or height.
type DimensionConstraints struct {
	Required bool `yaml:"required,omitempty"`
	Min      *int `yaml:"minValue,omitempty" validate:"omitempty,gte=0"`
	Max      *int `yaml:"maxValue,omitempty" validate:"omitempty,gte=0"`
}

// DimensionsRule groups width and height checks under one severity.
type DimensionsRule struct {
	Width    *DimensionConstraints `yaml:"width,omitempty"`
	Height   *DimensionConstraints `yaml:"height,omitempty"`
	Severity domain.Severity       `yaml:"severity,omitempty"`
}

// OptionRule constrains a boolean block option such as autoplay.
// Allowed=false forbids the option; Required demands it.
type OptionRule struct {
	Allowed  *bool `yaml:"allowed,omitempty"`
	Required bool  `yaml:"required,omitempty"`
}

// MediaOptionsRule constrains audio and video playback options.
type MediaOptionsRule struct {
	Autoplay *OptionRule     `yaml:"autoplay,omitempty"`
	Controls *OptionRule     `yaml:"controls,omitempty"`
	Loop     *OptionRule     `yaml:"loop,omitempty"`
	Severity domain.Severity `yaml:"severity,omitempty"`
}

// NestingRule bounds how deeply a list may nest inside lists of its kind.
type NestingRule struct {
	Max      *int            `yaml:"max,omitempty" validate:"omitempty,gte=1"`
	Severity domain.Severity `yaml:"severity,omitempty"`
}

// Bool returns a pointer to b, for building rules in code.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for building rules in code.
func Int(n int) *int { return &n }
