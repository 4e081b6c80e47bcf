package configfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

const fullRules = `
document:
  blocks:
    - paragraph:
        name: lead
        severity: warn
        lines: {min: 1, max: 5}
  blockOrder:
    fixed: [lead]
  sections:
    - name: introduction
      level: 1
      title: {required: true, pattern: "^Intro", severity: ERROR}
      occurrence: {min: 1, max: 1}
      allowedBlocks:
        - paragraph: {name: intro, severity: warning, order: 1, occurrence: {min: 1}}
        - image:
            severity: error
            url: {required: true}
            width: {minValue: 100, maxValue: 800}
        - listing:
            severity: info
            language: {required: true, allowed: [go, python]}
            callouts: {allowed: false}
      blockOrder:
        before: [{first: intro, second: image}]
      subsections:
        - name: details
          level: 2
suppress: ["table.caption.*"]
`

func TestParse_FullDocument(t *testing.T) {
	cfg, err := Parse([]byte(fullRules))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := len(cfg.Document.Blocks); got != 1 {
		t.Fatalf("len(Document.Blocks) = %d, want 1", got)
	}
	lead, ok := cfg.Document.Blocks[0].(*ruleset.ParagraphBlock)
	if !ok {
		t.Fatalf("Document.Blocks[0] = %T, want *ruleset.ParagraphBlock", cfg.Document.Blocks[0])
	}
	if lead.Name != "lead" || lead.Severity != domain.SeverityWarn || *lead.Lines.Max != 5 {
		t.Errorf("lead = %+v", lead)
	}
	if cfg.Document.Order.Severity != domain.SeverityWarn {
		t.Errorf("document order severity = %v, want warn default", cfg.Document.Order.Severity)
	}

	intro := cfg.Document.Sections[0]
	if intro.Name != "introduction" || intro.Level != 1 {
		t.Errorf("section = %q level %d", intro.Name, intro.Level)
	}
	if intro.Severity != domain.SeverityError {
		t.Errorf("section severity = %v, want error default", intro.Severity)
	}
	if intro.Title.Severity != domain.SeverityError || !intro.Title.Pattern.MatchString("Introduction") {
		t.Errorf("section title = %+v", intro.Title)
	}
	if intro.Order.Severity != domain.SeverityError {
		t.Errorf("section order severity = %v, want the section severity", intro.Order.Severity)
	}

	kinds := []domain.BlockKind{domain.KindParagraph, domain.KindImage, domain.KindListing}
	if len(intro.Blocks) != len(kinds) {
		t.Fatalf("len(allowedBlocks) = %d, want %d", len(intro.Blocks), len(kinds))
	}
	for i, k := range kinds {
		if intro.Blocks[i].Kind() != k {
			t.Errorf("allowedBlocks[%d].Kind() = %q, want %q", i, intro.Blocks[i].Kind(), k)
		}
	}
	para := intro.Blocks[0].(*ruleset.ParagraphBlock)
	if para.Severity != domain.SeverityWarn || para.Order == nil || *para.Order != 1 {
		t.Errorf("intro paragraph = %+v", para.BlockBase)
	}
	img := intro.Blocks[1].(*ruleset.ImageBlock)
	if !img.URL.Required || *img.Width.Min != 100 || *img.Width.Max != 800 {
		t.Errorf("image = %+v", img)
	}
	lst := intro.Blocks[2].(*ruleset.ListingBlock)
	if lst.Callouts.Allowed == nil || *lst.Callouts.Allowed {
		t.Errorf("listing callouts allowed = %v, want false", lst.Callouts.Allowed)
	}
	if got := intro.Subsections[0].Name; got != "details" {
		t.Errorf("subsection name = %q, want details", got)
	}
	if got := cfg.Suppress; len(got) != 1 || got[0] != "table.caption.*" {
		t.Errorf("Suppress = %v", got)
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if len(cfg.Document.Blocks) != 0 || len(cfg.Document.Sections) != 0 {
		t.Errorf("empty config = %+v", cfg)
	}
}

func TestParse_SchemaErrors(t *testing.T) {
	tests := []struct {
		name  string
		rules string
		field string
	}{
		{"unknown top-level key", "documents: {}", "(root)"},
		{"missing block severity", "document:\n  blocks:\n    - paragraph: {name: x}", "document.blocks.0.paragraph"},
		{"unknown block kind", "document:\n  blocks:\n    - paragraf: {severity: warn}", "document.blocks.0"},
		{"two kinds in one entry", "document:\n  blocks:\n    - {paragraph: {severity: warn}, table: {severity: warn}}", "document.blocks.0"},
		{"negative bound", "document:\n  blocks:\n    - table: {severity: warn, rows: {min: -1}}", "document.blocks.0.table.rows.min"},
		{"bad severity", "document:\n  blocks:\n    - table: {severity: fatal}", "document.blocks.0.table.severity"},
		{"bad pattern", "document:\n  blocks:\n    - image: {severity: warn, url: {pattern: \"([\"}}", "document.blocks.0.image.url.pattern"},
		{"unknown nested key", "document:\n  blocks:\n    - listing: {severity: warn, langauge: {}}", "document.blocks.0.listing"},
		{"order pair missing second", "document:\n  blockOrder: {before: [{first: a}]}", "document.blockOrder.before.0"},
		{"nesting below one", "document:\n  blocks:\n    - ulist: {severity: warn, nestingLevel: {max: 0}}", "document.blocks.0.ulist.nestingLevel.max"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.rules))
			var se *SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("Parse() error = %v, want *SchemaError", err)
			}
			found := false
			for _, is := range se.Issues {
				if strings.HasPrefix(is.Field, tt.field) {
					found = true
				}
			}
			if !found {
				t.Errorf("issues = %+v, want one under %q", se.Issues, tt.field)
			}
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("document: [unclosed"))
	if err == nil || !strings.Contains(err.Error(), "parse YAML") {
		t.Errorf("Parse() error = %v, want a YAML parse error", err)
	}
}

func TestValidate_ProgrammaticConfig(t *testing.T) {
	cfg := &ruleset.Config{Document: ruleset.DocumentRule{
		Blocks: []ruleset.BlockRule{
			&ruleset.ParagraphBlock{Lines: &ruleset.CountRule{Min: ruleset.Int(-2)}},
		},
		Sections: []*ruleset.SectionRule{{Level: -1}},
	}}
	err := Validate(cfg)
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("Validate() error = %v, want *SchemaError", err)
	}
	want := map[string]bool{
		"document.blocks[0].paragraph.severity":  false,
		"document.blocks[0].paragraph.lines.min": false,
		"document.sections[0].level":             false,
	}
	for _, is := range se.Issues {
		if _, ok := want[is.Field]; ok {
			want[is.Field] = true
		}
	}
	for field, seen := range want {
		if !seen {
			t.Errorf("missing issue for %s in %+v", field, se.Issues)
		}
	}
}

func TestValidate_MinAboveMaxIsAccepted(t *testing.T) {
	cfg := &ruleset.Config{Document: ruleset.DocumentRule{Blocks: []ruleset.BlockRule{
		&ruleset.TableBlock{
			BlockBase: ruleset.BlockBase{Severity: domain.SeverityWarn,
				Occurrence: &ruleset.OccurrenceRule{Min: ruleset.Int(3), Max: ruleset.Int(1)}},
		},
	}}}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load(missing) error = %v, want ErrConfigNotFound", err)
	}
	var le *LoadError
	if !errors.As(err, &le) || le.Path == "" {
		t.Errorf("Load(missing) error = %T, want *LoadError with path", err)
	}

	path := filepath.Join(dir, DefaultFilename)
	if err := os.WriteFile(path, []byte(fullRules), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Document.Sections) != 1 {
		t.Errorf("len(Sections) = %d, want 1", len(cfg.Document.Sections))
	}
}

func TestSchemaIsEmbedded(t *testing.T) {
	if !strings.Contains(Schema(), `"allowedBlocks"`) {
		t.Errorf("Schema() does not describe allowedBlocks")
	}
}
