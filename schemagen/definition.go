package schemagen

import "encoding/json"

// Definition is a schema/instruction tree describing the structure the
// generation service should produce.
//
// Empty strings and nil pointers mean "unset" and are left out of the wire
// form. Properties, Required and ProcessingOrder are always sent, as empty
// containers when unset. A Definition owns its children; a node must not be
// reachable from itself (see Validate).
type Definition struct {
	Type               string                 `json:"type,omitempty" yaml:"type,omitempty"`
	Instruction        string                 `json:"instruction,omitempty" yaml:"instruction,omitempty"`
	Properties         map[string]*Definition `json:"properties" yaml:"properties"`
	Required           []string               `json:"required" yaml:"required"`
	Items              *Definition            `json:"items,omitempty" yaml:"items,omitempty"`
	Model              string                 `json:"model,omitempty" yaml:"model,omitempty"`
	ProcessingOrder    []string               `json:"processingOrder" yaml:"processingOrder"`
	SystemPrompt       string                 `json:"systemPrompt,omitempty" yaml:"systemPrompt,omitempty"`
	Req                *RequestFormat         `json:"req,omitempty" yaml:"req,omitempty"`
	NarrowFocus        *Focus                 `json:"narrowFocus,omitempty" yaml:"narrowFocus,omitempty"`
	ImprovementProcess bool                   `json:"improvementProcess" yaml:"improvementProcess"`
}

// ToMap serializes the tree into the plain map sent as "definition".
func (d *Definition) ToMap() map[string]any {
	if d == nil {
		return nil
	}

	props := make(map[string]any, len(d.Properties))
	for name, p := range d.Properties {
		props[name] = p.ToMap()
	}

	m := map[string]any{
		"properties":         props,
		"required":           stringsOrEmpty(d.Required),
		"processingOrder":    stringsOrEmpty(d.ProcessingOrder),
		"improvementProcess": d.ImprovementProcess,
	}
	setString(m, "type", d.Type)
	setString(m, "instruction", d.Instruction)
	setString(m, "model", d.Model)
	setString(m, "systemPrompt", d.SystemPrompt)
	if d.Items != nil {
		m["items"] = d.Items.ToMap()
	}
	if d.Req != nil {
		m["req"] = d.Req.ToMap()
	}
	if d.NarrowFocus != nil {
		m["narrowFocus"] = d.NarrowFocus.ToMap()
	}
	return m
}

// MarshalJSON encodes the wire form produced by ToMap.
func (d *Definition) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}

func setString(m map[string]any, key, v string) {
	if v != "" {
		m[key] = v
	}
}

func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
