package configfile

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

// Schema returns the JSON Schema that rules files must satisfy.
func Schema() string {
	return schemaJSON
}

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// checkSchema validates a generic YAML document against the schema.
func checkSchema(doc any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	se := &SchemaError{Issues: make([]Issue, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		se.Issues = append(se.Issues, Issue{Field: field, Message: desc.Description()})
	}
	return se
}
