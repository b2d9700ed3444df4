package schemagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	shared := &Definition{Type: "string"}

	cyclic := &Definition{Type: "array"}
	cyclic.Items = &Definition{Type: "object", Properties: map[string]*Definition{"back": cyclic}}

	tests := []struct {
		name    string
		def     *Definition
		wantErr string
	}{
		{"nil tree", nil, ""},
		{"full tree", fullDefinition(), ""},
		{"nil property", &Definition{Properties: map[string]*Definition{"x": nil}}, "nil definition at $.properties.x"},
		{"self items", func() *Definition { d := &Definition{}; d.Items = d; return d }(), "already used"},
		{"cycle through properties", cyclic, "already used"},
		{"shared child", &Definition{Properties: map[string]*Definition{"a": shared, "b": shared}}, "already used"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
			assert.True(t, IsMisuse(err))
		})
	}
}
