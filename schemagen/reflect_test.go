package schemagen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Address struct {
	City string `json:"city" instruction:"City and state, e.g. San Francisco, CA"`
	Zip  string `json:"zip,omitempty"`
}

type Person struct {
	Name      string    `json:"name" instruction:"Full legal name"`
	Age       int       `json:"age"`
	Height    float64   `json:"height,omitempty"`
	Member    bool      `json:"member"`
	Nicknames []string  `json:"nicknames,omitempty"`
	Home      *Address  `json:"home"`
	Previous  []Address `json:"previous,omitempty"`
	Internal  string    `json:"-"`
	secret    string
	NoTag     string
}

func TestDefinitionOf(t *testing.T) {
	def, err := DefinitionOf(&Person{})
	require.NoError(t, err)

	assert.Equal(t, "object", def.Type)
	assert.Equal(t, []string{"name", "age", "member", "home", "NoTag"}, def.Required)
	assert.Equal(t, []string{"name", "age", "height", "member", "nicknames", "home", "previous", "NoTag"}, def.ProcessingOrder)
	assert.NotContains(t, def.Properties, "Internal")
	assert.NotContains(t, def.Properties, "secret")

	assert.Equal(t, "string", def.Properties["name"].Type)
	assert.Equal(t, "Full legal name", def.Properties["name"].Instruction)
	assert.Equal(t, "integer", def.Properties["age"].Type)
	assert.Equal(t, "number", def.Properties["height"].Type)
	assert.Equal(t, "boolean", def.Properties["member"].Type)

	nick := def.Properties["nicknames"]
	assert.Equal(t, "array", nick.Type)
	assert.Equal(t, "string", nick.Items.Type)

	home := def.Properties["home"]
	assert.Equal(t, "object", home.Type)
	assert.Equal(t, []string{"city"}, home.Required)
	assert.Equal(t, "City and state, e.g. San Francisco, CA", home.Properties["city"].Instruction)

	prev := def.Properties["previous"]
	assert.Equal(t, "array", prev.Type)
	assert.Equal(t, "object", prev.Items.Type)

	require.NoError(t, def.Validate())
}

type node struct {
	Value    string  `json:"value"`
	Children []*node `json:"children"`
}

func TestDefinitionOf_Errors(t *testing.T) {
	_, err := DefinitionOf(nil)
	require.Error(t, err)
	assert.True(t, IsMisuse(err))

	_, err = DefinitionOf(42)
	require.Error(t, err)
	assert.True(t, IsMisuse(err))

	_, err = DefinitionOf(node{})
	require.Error(t, err)
	assert.True(t, IsMisuse(err))
	assert.ErrorContains(t, err, "recursive type")
}

type Base struct {
	ID string `json:"id"`
}

type WithEmbed struct {
	Base
	Name string `json:"name"`
}

type WithPointerEmbed struct {
	*Base
	Name string `json:"name"`
}

type Shadowed struct {
	Base
	ID int `json:"id"`
}

type TaggedEmbed struct {
	Base `json:"base"`
}

func TestDefinitionOf_EmbeddedFields(t *testing.T) {
	for _, v := range []any{WithEmbed{}, WithPointerEmbed{}} {
		def, err := DefinitionOf(v)
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name"}, def.Required)
		assert.Equal(t, []string{"id", "name"}, def.ProcessingOrder)
		assert.Equal(t, "string", def.Properties["id"].Type)
		assert.NotContains(t, def.Properties, "Base")
	}

	def, err := DefinitionOf(Shadowed{})
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, def.Required)
	assert.Equal(t, []string{"id"}, def.ProcessingOrder)
	assert.Equal(t, "integer", def.Properties["id"].Type)

	def, err = DefinitionOf(TaggedEmbed{})
	require.NoError(t, err)
	assert.Equal(t, []string{"base"}, def.ProcessingOrder)
	assert.Equal(t, "object", def.Properties["base"].Type)
}

type Event struct {
	Title string     `json:"title"`
	At    time.Time  `json:"at"`
	Until *time.Time `json:"until,omitempty"`
}

func TestDefinitionOf_Time(t *testing.T) {
	def, err := DefinitionOf(Event{})
	require.NoError(t, err)
	assert.Equal(t, "string", def.Properties["at"].Type)
	assert.Equal(t, "string", def.Properties["until"].Type)
	assert.Empty(t, def.Properties["at"].Properties)
	assert.Equal(t, []string{"title", "at"}, def.Required)
}
