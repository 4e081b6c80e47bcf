// Package frontmatter reads per-document linter settings from the YAML
// front matter at the top of a raw AsciiDoc source.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SuppressKey is the front matter key listing rule ids to suppress.
const SuppressKey = "adoclint-suppress"

// Split separates a document into front matter and body components.
// Front matter is delimited by --- on its own line.
func Split(input string) (string, string, error) {
	if input == "" {
		return "", "", nil
	}
	if !strings.HasPrefix(input, "---\n") {
		return "", input, nil
	}

	rest := input[4:]
	pos := 0
	for pos < len(rest) {
		nlIdx := strings.IndexByte(rest[pos:], '\n')

		var line string
		var nextPos int
		if nlIdx < 0 {
			line = rest[pos:]
			nextPos = len(rest)
		} else {
			line = rest[pos : pos+nlIdx]
			nextPos = pos + nlIdx + 1
		}

		if strings.TrimSuffix(line, "\r") == "---" {
			if nlIdx < 0 {
				return rest[:pos], "", nil
			}
			return rest[:pos], rest[nextPos:], nil
		}

		pos = nextPos
	}

	return "", "", errors.New("unclosed front matter")
}

// findKeyIndex returns the index of a key in a YAML mapping node, or -1 if not found.
func findKeyIndex(mapping *yaml.Node, key string) int {
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == key {
			return i
		}
	}
	return -1
}

// Suppressions returns the rule ids listed under SuppressKey. The value may
// be a single string or a sequence of strings. A document without front
// matter, or without the key, yields nil.
func Suppressions(input string) ([]string, error) {
	fm, _, err := Split(input)
	if fm == "" {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(fm), &doc); err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, nil
	}

	mapping := doc.Content[0]
	idx := findKeyIndex(mapping, SuppressKey)
	if idx < 0 {
		return nil, nil
	}

	val := mapping.Content[idx+1]
	switch val.Kind {
	case yaml.ScalarNode:
		if val.Tag != "!!str" {
			return nil, fmt.Errorf("%s is not a string (line %d)", SuppressKey, val.Line)
		}
		if s := strings.TrimSpace(val.Value); s != "" {
			return []string{s}, nil
		}
		return nil, nil
	case yaml.SequenceNode:
		ids := make([]string, 0, len(val.Content))
		for _, item := range val.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return nil, fmt.Errorf("%s entries must be strings (line %d)", SuppressKey, item.Line)
			}
			if s := strings.TrimSpace(item.Value); s != "" {
				ids = append(ids, s)
			}
		}
		return ids, nil
	}
	return nil, fmt.Errorf("%s must be a string or a list (line %d)", SuppressKey, val.Line)
}
