package schemagen

import (
	"strings"

	"google.golang.org/genai"
)

// GenAISchema converts d into a Gemini response schema. ProcessingOrder is
// carried as the property ordering.
func (d *Definition) GenAISchema() *genai.Schema {
	if d == nil {
		return nil
	}
	s := &genai.Schema{
		Type:        genaiType(inferType(d)),
		Description: d.Instruction,
		Required:    d.Required,
	}
	if len(d.Properties) > 0 {
		s.Properties = make(map[string]*genai.Schema, len(d.Properties))
		for name, p := range d.Properties {
			if p == nil {
				continue
			}
			s.Properties[name] = p.GenAISchema()
		}
	}
	if len(d.ProcessingOrder) > 0 {
		s.PropertyOrdering = d.ProcessingOrder
	}
	if d.Items != nil {
		s.Items = d.Items.GenAISchema()
	}
	return s
}

func genaiType(t string) genai.Type {
	switch strings.ToLower(t) {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	}
	return genai.TypeUnspecified
}
