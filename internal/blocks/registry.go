package blocks

import (
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// Validator checks one block kind. Validate returns no messages when rule
// is not the validator's rule type or node is nil, and panics when vctx is
// nil. A validator that accepts the node records it with vctx.TrackBlock
// even when it finds nothing wrong.
type Validator interface {
	Kind() domain.BlockKind
	Validate(node domain.Node, rule ruleset.BlockRule, vctx *Context) []domain.Message
}

// Registry maps block kinds to their validators. Validators hold no state,
// so one instance per kind serves a whole run.
type Registry struct {
	validators map[domain.BlockKind]Validator
}

// NewRegistry returns a registry holding the validator of every supported kind.
func NewRegistry() *Registry {
	r := &Registry{validators: make(map[domain.BlockKind]Validator)}
	for _, v := range []Validator{
		ParagraphValidator{}, TableValidator{}, ImageValidator{}, ListingValidator{},
		LiteralValidator{}, VerseValidator{}, QuoteValidator{}, AdmonitionValidator{},
		SidebarValidator{}, ExampleValidator{}, PassValidator{}, AudioValidator{},
		VideoValidator{}, DListValidator{}, UListValidator{},
	} {
		r.validators[v.Kind()] = v
	}
	return r
}

// Validator returns the validator for kind, or nil for unknown kinds.
func (r *Registry) Validator(kind domain.BlockKind) Validator {
	if r == nil {
		return nil
	}
	return r.validators[kind]
}
