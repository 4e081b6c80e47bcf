// Package blocks validates individual blocks of a parsed document against
// their configured rules.
//
// Detect classifies a node, the Registry supplies the validator for its
// kind, and the validator returns messages while recording the block in the
// per-document Context. When a section scope closes, ValidateOccurrences and
// ValidateOrder check what was recorded.
package blocks
