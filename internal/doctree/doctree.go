// Package doctree reads document-tree exports, the JSON or YAML rendering
// of a parsed AsciiDoc document, and exposes them through the domain node
// contracts.
package doctree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eykd/adoclint-go/internal/domain"
)

// Extensions lists the export file suffixes this package reads.
var Extensions = []string{".adoc.json", ".adoc.yaml", ".adoc.yml"}

// IsExport reports whether path names a document-tree export.
func IsExport(path string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// rawNode mirrors one node of the export. JSON exports are read with the
// YAML decoder.
type rawNode struct {
	File       string     `yaml:"file"`
	Context    string     `yaml:"context"`
	Level      int        `yaml:"level"`
	Title      string     `yaml:"title"`
	Lineno     int        `yaml:"lineno"`
	Style      string     `yaml:"style"`
	Content    string     `yaml:"content"`
	ID         string     `yaml:"id"`
	Roles      []string   `yaml:"roles"`
	Attributes yaml.Node  `yaml:"attributes"`
	Columns    int        `yaml:"columns"`
	Header     [][]string `yaml:"header"`
	Body       [][]string `yaml:"body"`
	Entries    []rawEntry `yaml:"entries"`
	Blocks     []*rawNode `yaml:"blocks"`
}

type rawItem struct {
	Text   string `yaml:"text"`
	Lineno int    `yaml:"lineno"`
}

type rawEntry struct {
	Terms       []rawItem `yaml:"terms"`
	Description *rawItem  `yaml:"description"`
}

// Document is the root of an export.
type Document struct {
	*Block
	// Filename names the source document in messages.
	Filename string
	// SourcePath is where the raw source is expected on disk, or "" when unknown.
	SourcePath string
}

// Load reads the export at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document tree: %w", err)
	}
	doc, err := Parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes an export read from path. The source filename comes from
// the export's "file" field, or from path without its export suffix.
func Parse(data []byte, path string) (*Document, error) {
	var raw rawNode
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode document tree: %w", err)
	}
	if raw.Context == "" {
		raw.Context = "document"
	}

	doc := &Document{Block: build(&raw)}
	doc.Filename = raw.File
	if doc.Filename == "" {
		doc.Filename = trimExport(filepath.Base(path))
	}
	switch {
	case raw.File != "" && filepath.IsAbs(raw.File):
		doc.SourcePath = raw.File
	case raw.File != "":
		doc.SourcePath = filepath.Join(filepath.Dir(path), raw.File)
	case path != "":
		doc.SourcePath = trimExport(path)
	}
	return doc, nil
}

func trimExport(path string) string {
	for _, ext := range Extensions {
		if s, ok := strings.CutSuffix(path, ext); ok {
			return s + ".adoc"
		}
	}
	return path
}

// build converts a raw node and its descendants.
func build(raw *rawNode) *Block {
	b := &Block{raw: raw, attrs: attributes(&raw.Attributes)}
	for _, c := range raw.Blocks {
		if c == nil {
			continue
		}
		b.children = append(b.children, wrap(build(c)))
	}
	return b
}

// wrap returns the richest node type for b's context.
func wrap(b *Block) domain.Node {
	switch b.raw.Context {
	case "table":
		return &Table{Block: b}
	case "dlist":
		return &DescriptionList{Block: b}
	}
	return b
}

// attributes flattens a YAML mapping into strings. Null and boolean true
// values mean "set" and become empty strings, as the parser reports
// options; nested collections are ignored.
func attributes(n *yaml.Node) map[string]string {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	attrs := make(map[string]string, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			continue
		}
		switch {
		case v.Tag == "!!null":
			attrs[k.Value] = ""
		case v.Tag == "!!bool" && v.Value == "true":
			attrs[k.Value] = ""
		case v.Tag == "!!bool":
			continue
		default:
			attrs[k.Value] = v.Value
		}
	}
	return attrs
}
