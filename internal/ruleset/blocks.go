package ruleset

import "github.com/eykd/adoclint-go/internal/domain"

// BlockRule is the configuration of one block kind within a scope. The
// concrete types below form a closed set, one per domain.BlockKind. Rules
// are used by pointer, so a rule's identity is its address: occurrence and
// order tracking key on it.
type BlockRule interface {
	Kind() domain.BlockKind
	Common() *BlockBase
}

// BlockBase holds the fields every block rule shares.
type BlockBase struct {
	Name       string          `yaml:"name,omitempty"`
	Severity   domain.Severity `yaml:"severity" validate:"required"`
	Occurrence *OccurrenceRule `yaml:"occurrence,omitempty"`
	Order      *int            `yaml:"order,omitempty"`
}

// Common returns the shared fields.
func (b *BlockBase) Common() *BlockBase { return b }

// DisplayName returns the configured name, or the kind when unnamed.
func DisplayName(r BlockRule) string {
	if n := r.Common().Name; n != "" {
		return n
	}
	return r.Kind().String()
}

// SentenceRule bounds the number of sentences in a paragraph and the words
// per sentence.
type SentenceRule struct {
	Occurrence *Range          `yaml:"occurrence,omitempty"`
	Words      *Range          `yaml:"words,omitempty"`
	Severity   domain.Severity `yaml:"severity,omitempty"`
}

// ParagraphBlock configures paragraphs.
type ParagraphBlock struct {
	BlockBase `yaml:",inline"`
	Lines     *CountRule    `yaml:"lines,omitempty"`
	Sentence  *SentenceRule `yaml:"sentence,omitempty"`
	Title     *TextRule     `yaml:"title,omitempty"`
}

// HeaderRule requires a header row and checks each header cell.
type HeaderRule struct {
	Required bool            `yaml:"required,omitempty"`
	Pattern  *Pattern        `yaml:"pattern,omitempty"`
	Severity domain.Severity `yaml:"severity,omitempty"`
}

// TableFormatRule checks the table style and borders.
type TableFormatRule struct {
	Style    string          `yaml:"style,omitempty"`
	Borders  *bool           `yaml:"borders,omitempty"`
	Severity domain.Severity `yaml:"severity,omitempty"`
}

// TableBlock configures tables.
type TableBlock struct {
	BlockBase `yaml:",inline"`
	Columns   *CountRule       `yaml:"columns,omitempty"`
	Rows      *CountRule       `yaml:"rows,omitempty"`
	Header    *HeaderRule      `yaml:"header,omitempty"`
	Caption   *TextRule        `yaml:"caption,omitempty"`
	Format    *TableFormatRule `yaml:"format,omitempty"`
}

// ImageBlock configures images. Image rules have no nested severities.
type ImageBlock struct {
	BlockBase `yaml:",inline"`
	URL       *TextConstraints      `yaml:"url,omitempty"`
	Alt       *TextConstraints      `yaml:"alt,omitempty"`
	Width     *DimensionConstraints `yaml:"width,omitempty"`
	Height    *DimensionConstraints `yaml:"height,omitempty"`
	Caption   *TextConstraints      `yaml:"caption,omitempty"`
}

// CalloutsRule limits callout markers such as <1> in code listings.
type CalloutsRule struct {
	Allowed  *bool           `yaml:"allowed,omitempty"`
	Max      *int            `yaml:"max,omitempty" validate:"omitempty,gte=0"`
	Severity domain.Severity `yaml:"severity,omitempty"`
}

// ListingBlock configures listing and source blocks.
type ListingBlock struct {
	BlockBase `yaml:",inline"`
	Language  *ChoiceRule   `yaml:"language,omitempty"`
	Title     *TextRule     `yaml:"title,omitempty"`
	Lines     *CountRule    `yaml:"lines,omitempty"`
	Callouts  *CalloutsRule `yaml:"callouts,omitempty"`
}

// IndentationRule checks leading spaces of literal block lines.
type IndentationRule struct {
	Consistent bool            `yaml:"consistent,omitempty"`
	MinSpaces  *int            `yaml:"minSpaces,omitempty" validate:"omitempty,gte=0"`
	MaxSpaces  *int            `yaml:"maxSpaces,omitempty" validate:"omitempty,gte=0"`
	Severity   domain.Severity `yaml:"severity,omitempty"`
}

// LiteralBlock configures literal blocks.
type LiteralBlock struct {
	BlockBase   `yaml:",inline"`
	Title       *TextRule        `yaml:"title,omitempty"`
	Lines       *CountRule       `yaml:"lines,omitempty"`
	Indentation *IndentationRule `yaml:"indentation,omitempty"`
}

// VerseBlock configures verse blocks. Verse rules have no nested severities.
type VerseBlock struct {
	BlockBase   `yaml:",inline"`
	Author      *TextConstraints `yaml:"author,omitempty"`
	Attribution *TextConstraints `yaml:"attribution,omitempty"`
	Content     *TextConstraints `yaml:"content,omitempty"`
}

// QuoteContentRule checks quote content length and line count.
type QuoteContentRule struct {
	Required  bool            `yaml:"required,omitempty"`
	MinLength *int            `yaml:"minLength,omitempty" validate:"omitempty,gte=0"`
	MaxLength *int            `yaml:"maxLength,omitempty" validate:"omitempty,gte=0"`
	Lines     *Range          `yaml:"lines,omitempty"`
	Severity  domain.Severity `yaml:"severity,omitempty"`
}

// QuoteBlock configures quote blocks.
type QuoteBlock struct {
	BlockBase `yaml:",inline"`
	Author    *TextRule         `yaml:"author,omitempty"`
	Source    *TextRule         `yaml:"source,omitempty"`
	Content   *QuoteContentRule `yaml:"content,omitempty"`
}

// AdmonitionBlock configures NOTE, TIP, IMPORTANT, CAUTION, and WARNING blocks.
type AdmonitionBlock struct {
	BlockBase `yaml:",inline"`
	Type      *ChoiceRule `yaml:"type,omitempty"`
	Title     *TextRule   `yaml:"title,omitempty"`
	Content   *TextRule   `yaml:"content,omitempty"`
	Icon      *TextRule   `yaml:"icon,omitempty"`
}

// SidebarBlock configures sidebars.
type SidebarBlock struct {
	BlockBase `yaml:",inline"`
	Title     *TextRule   `yaml:"title,omitempty"`
	Content   *TextRule   `yaml:"content,omitempty"`
	Position  *ChoiceRule `yaml:"position,omitempty"`
}

// ExampleBlock configures example blocks.
type ExampleBlock struct {
	BlockBase   `yaml:",inline"`
	Title       *TextRule   `yaml:"title,omitempty"`
	Caption     *TextRule   `yaml:"caption,omitempty"`
	Collapsible *ChoiceRule `yaml:"collapsible,omitempty"`
}

// PassBlock configures passthrough blocks.
type PassBlock struct {
	BlockBase `yaml:",inline"`
	Type      *ChoiceRule `yaml:"type,omitempty"`
	Content   *TextRule   `yaml:"content,omitempty"`
	Reason    *TextRule   `yaml:"reason,omitempty"`
}

// AudioBlock configures audio blocks.
type AudioBlock struct {
	BlockBase `yaml:",inline"`
	URL       *TextRule         `yaml:"url,omitempty"`
	Options   *MediaOptionsRule `yaml:"options,omitempty"`
	Title     *TextRule         `yaml:"title,omitempty"`
}

// VideoBlock configures video blocks.
type VideoBlock struct {
	BlockBase  `yaml:",inline"`
	URL        *TextRule         `yaml:"url,omitempty"`
	Dimensions *DimensionsRule   `yaml:"dimensions,omitempty"`
	Poster     *TextRule         `yaml:"poster,omitempty"`
	Options    *MediaOptionsRule `yaml:"options,omitempty"`
	Caption    *TextRule         `yaml:"caption,omitempty"`
}

// TermsRule checks the terms of a description list.
type TermsRule struct {
	Min       *int            `yaml:"min,omitempty" validate:"omitempty,gte=0"`
	Max       *int            `yaml:"max,omitempty" validate:"omitempty,gte=0"`
	Pattern   *Pattern        `yaml:"pattern,omitempty"`
	MinLength *int            `yaml:"minLength,omitempty" validate:"omitempty,gte=0"`
	MaxLength *int            `yaml:"maxLength,omitempty" validate:"omitempty,gte=0"`
	Severity  domain.Severity `yaml:"severity,omitempty"`
}

// DescriptionsRule checks the descriptions of a description list.
type DescriptionsRule struct {
	Required bool            `yaml:"required,omitempty"`
	Pattern  *Pattern        `yaml:"pattern,omitempty"`
	Severity domain.Severity `yaml:"severity,omitempty"`
}

// DListBlock configures description lists. NestingLevel and DelimiterStyle
// are accepted but not checked.
type DListBlock struct {
	BlockBase      `yaml:",inline"`
	Terms          *TermsRule        `yaml:"terms,omitempty"`
	Descriptions   *DescriptionsRule `yaml:"descriptions,omitempty"`
	NestingLevel   *NestingRule      `yaml:"nestingLevel,omitempty"`
	DelimiterStyle *ChoiceRule       `yaml:"delimiterStyle,omitempty"`
}

// UListBlock configures unordered lists. MarkerStyle is accepted but not checked.
type UListBlock struct {
	BlockBase    `yaml:",inline"`
	Items        *CountRule   `yaml:"items,omitempty"`
	NestingLevel *NestingRule `yaml:"nestingLevel,omitempty"`
	MarkerStyle  *ChoiceRule  `yaml:"markerStyle,omitempty"`
}

func (*ParagraphBlock) Kind() domain.BlockKind  { return domain.KindParagraph }
func (*TableBlock) Kind() domain.BlockKind      { return domain.KindTable }
func (*ImageBlock) Kind() domain.BlockKind      { return domain.KindImage }
func (*ListingBlock) Kind() domain.BlockKind    { return domain.KindListing }
func (*LiteralBlock) Kind() domain.BlockKind    { return domain.KindLiteral }
func (*VerseBlock) Kind() domain.BlockKind      { return domain.KindVerse }
func (*QuoteBlock) Kind() domain.BlockKind      { return domain.KindQuote }
func (*AdmonitionBlock) Kind() domain.BlockKind { return domain.KindAdmonition }
func (*SidebarBlock) Kind() domain.BlockKind    { return domain.KindSidebar }
func (*ExampleBlock) Kind() domain.BlockKind    { return domain.KindExample }
func (*PassBlock) Kind() domain.BlockKind       { return domain.KindPass }
func (*AudioBlock) Kind() domain.BlockKind      { return domain.KindAudio }
func (*VideoBlock) Kind() domain.BlockKind      { return domain.KindVideo }
func (*DListBlock) Kind() domain.BlockKind      { return domain.KindDList }
func (*UListBlock) Kind() domain.BlockKind      { return domain.KindUList }

// NewBlockRule returns an empty rule of the given kind, ready to be decoded
// into. It returns nil for unknown kinds.
func NewBlockRule(kind domain.BlockKind) BlockRule {
	switch kind {
	case domain.KindParagraph:
		return &ParagraphBlock{}
	case domain.KindTable:
		return &TableBlock{}
	case domain.KindImage:
		return &ImageBlock{}
	case domain.KindListing:
		return &ListingBlock{}
	case domain.KindLiteral:
		return &LiteralBlock{}
	case domain.KindVerse:
		return &VerseBlock{}
	case domain.KindQuote:
		return &QuoteBlock{}
	case domain.KindAdmonition:
		return &AdmonitionBlock{}
	case domain.KindSidebar:
		return &SidebarBlock{}
	case domain.KindExample:
		return &ExampleBlock{}
	case domain.KindPass:
		return &PassBlock{}
	case domain.KindAudio:
		return &AudioBlock{}
	case domain.KindVideo:
		return &VideoBlock{}
	case domain.KindDList:
		return &DListBlock{}
	case domain.KindUList:
		return &UListBlock{}
	}
	return nil
}
