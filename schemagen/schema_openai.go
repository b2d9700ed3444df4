package schemagen

import (
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// OpenAISchema converts d into a go-openai JSON schema. Instruction becomes
// the description; fields with no JSON-schema meaning are dropped.
func (d *Definition) OpenAISchema() *jsonschema.Definition {
	if d == nil {
		return nil
	}
	s := &jsonschema.Definition{
		Type:        openAIType(d),
		Description: d.Instruction,
		Required:    d.Required,
	}
	if len(d.Properties) > 0 {
		s.Properties = make(map[string]jsonschema.Definition, len(d.Properties))
		for name, p := range d.Properties {
			if p == nil {
				continue
			}
			s.Properties[name] = *p.OpenAISchema()
		}
	}
	if d.Items != nil {
		s.Items = d.Items.OpenAISchema()
	}
	return s
}

func openAIType(d *Definition) jsonschema.DataType {
	switch strings.ToLower(inferType(d)) {
	case "object":
		return jsonschema.Object
	case "array":
		return jsonschema.Array
	case "string":
		return jsonschema.String
	case "number":
		return jsonschema.Number
	case "integer":
		return jsonschema.Integer
	case "boolean":
		return jsonschema.Boolean
	case "null":
		return jsonschema.Null
	}
	return jsonschema.DataType(d.Type)
}

// inferType fills in an unset type from the shape of the node.
func inferType(d *Definition) string {
	switch {
	case d.Type != "":
		return d.Type
	case len(d.Properties) > 0:
		return "object"
	case d.Items != nil:
		return "array"
	}
	return ""
}
