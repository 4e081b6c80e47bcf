package configfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// The raw types mirror the YAML layout; toConfig converts them into the
// typed rule set.
type rawConfig struct {
	Document rawDocument `yaml:"document"`
	Suppress []string    `yaml:"suppress"`
}

type rawDocument struct {
	Blocks     rawBlocks          `yaml:"blocks"`
	BlockOrder *ruleset.OrderRule `yaml:"blockOrder"`
	Sections   []*rawSection      `yaml:"sections"`
}

type rawSection struct {
	Name          string                  `yaml:"name"`
	Level         int                     `yaml:"level"`
	Title         *ruleset.TextRule       `yaml:"title"`
	Occurrence    *ruleset.OccurrenceRule `yaml:"occurrence"`
	Severity      domain.Severity         `yaml:"severity"`
	AllowedBlocks rawBlocks               `yaml:"allowedBlocks"`
	BlockOrder    *ruleset.OrderRule      `yaml:"blockOrder"`
	Subsections   []*rawSection           `yaml:"subsections"`
}

// rawBlocks decodes a list of single-key maps, e.g. "- paragraph: {...}",
// into block rules of the keyed kind.
type rawBlocks []ruleset.BlockRule

func (b *rawBlocks) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: block list must be a sequence", node.Line)
	}
	rules := make([]ruleset.BlockRule, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
			return fmt.Errorf("line %d: block entry must have exactly one block kind key", item.Line)
		}
		key := item.Content[0].Value
		kind, ok := domain.ParseBlockKind(key)
		if !ok {
			return fmt.Errorf("line %d: unknown block kind %q", item.Line, key)
		}
		rule := ruleset.NewBlockRule(kind)
		if err := item.Content[1].Decode(rule); err != nil {
			return fmt.Errorf("line %d: %s: %w", item.Line, key, err)
		}
		rules = append(rules, rule)
	}
	*b = rules
	return nil
}

func (r *rawConfig) toConfig() *ruleset.Config {
	return &ruleset.Config{
		Document: ruleset.DocumentRule{
			Blocks:   []ruleset.BlockRule(r.Document.Blocks),
			Order:    r.Document.BlockOrder,
			Sections: toSections(r.Document.Sections),
		},
		Suppress: r.Suppress,
	}
}

func toSections(raw []*rawSection) []*ruleset.SectionRule {
	if len(raw) == 0 {
		return nil
	}
	out := make([]*ruleset.SectionRule, 0, len(raw))
	for _, s := range raw {
		if s == nil {
			continue
		}
		out = append(out, &ruleset.SectionRule{
			Name:        s.Name,
			Level:       s.Level,
			Title:       s.Title,
			Occurrence:  s.Occurrence,
			Severity:    s.Severity,
			Blocks:      []ruleset.BlockRule(s.AllowedBlocks),
			Order:       s.BlockOrder,
			Subsections: toSections(s.Subsections),
		})
	}
	return out
}
