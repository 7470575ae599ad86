package embeds_test

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soheab/discord-ext-embeds/pkg/embeds"
)

func TestFieldFromShapes(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  embeds.Field
	}{
		{
			"field value",
			embeds.NewField("a", "b"),
			embeds.Field{Name: "a", Value: "b", Inline: true},
		},
		{
			"positional pair",
			[]any{"a", "b"},
			embeds.Field{Name: "a", Value: "b", Inline: true},
		},
		{
			"positional with inline",
			[]any{"a", "b", false},
			embeds.Field{Name: "a", Value: "b", Inline: false},
		},
		{
			"positional with index",
			[]any{"a", "b", 2},
			embeds.Field{Name: "a", Value: "b", Inline: true, Index: 2},
		},
		{
			"positional with inline and index",
			[]any{"a", "b", false, 1},
			embeds.Field{Name: "a", Value: "b", Inline: false, Index: 1},
		},
		{
			"positional index before inline",
			[]any{"a", "b", 1, false},
			embeds.Field{Name: "a", Value: "b", Inline: false, Index: 1},
		},
		{
			"string slice",
			[]string{"a", "b"},
			embeds.Field{Name: "a", Value: "b", Inline: true},
		},
		{
			"non-string positional values",
			[]any{"count", 42},
			embeds.Field{Name: "count", Value: "42", Inline: true},
		},
		{
			"map",
			map[string]any{"name": "a", "value": "b", "inline": false, "index": 3},
			embeds.Field{Name: "a", Value: "b", Inline: false, Index: 3},
		},
		{
			"string map",
			map[string]string{"name": "a", "value": "b"},
			embeds.Field{Name: "a", Value: "b", Inline: true},
		},
		{
			"wire field",
			&discordgo.MessageEmbedField{Name: "a", Value: "b", Inline: true},
			embeds.Field{Name: "a", Value: "b", Inline: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := embeds.FieldFrom(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldFromErrors(t *testing.T) {
	for name, input := range map[string]any{
		"too short slice":     []any{"only name"},
		"too long slice":      []any{"a", "b", true, 1, "extra"},
		"bad extra type":      []any{"a", "b", "not bool or int"},
		"map missing name":    map[string]any{"value": "b"},
		"map missing value":   map[string]any{"name": "a"},
		"map bad inline type": map[string]any{"name": "a", "value": "b", "inline": "yes"},
		"map bad index type":  map[string]any{"name": "a", "value": "b", "index": "first"},
		"unsupported type":    42,
		"nil field pointer":   (*embeds.Field)(nil),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := embeds.FieldFrom(input)
			assert.Error(t, err)
		})
	}
}

func TestFieldsAddAndInsert(t *testing.T) {
	var fs embeds.Fields
	fs.Add(embeds.NewField("first", "1"))
	fs.Add(embeds.NewField("second", "2"))
	fs.Add(embeds.NewField("third", "3"))

	// insert between first and second via the Index shorthand
	inserted := embeds.NewField("between", "x")
	inserted.Index = 1
	fs.Add(inserted)

	require.Len(t, fs, 4)
	assert.Equal(t, "first", fs[0].Name)
	assert.Equal(t, "between", fs[1].Name)
	assert.Equal(t, "second", fs[2].Name)

	// explicit insert at the front
	fs.Insert(0, embeds.NewField("front", "0"))
	assert.Equal(t, "front", fs[0].Name)

	// past-the-end insert appends
	fs.Insert(100, embeds.NewField("last", "z"))
	assert.Equal(t, "last", fs[len(fs)-1].Name)
}

func TestFieldsRemoveAndGet(t *testing.T) {
	fs := embeds.Fields{
		embeds.NewField("a", "1"),
		embeds.NewField("b", "2"),
	}

	field, ok := fs.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", field.Value)

	_, ok = fs.Get("missing")
	assert.False(t, ok)

	assert.True(t, fs.Remove(0))
	assert.Len(t, fs, 1)
	assert.Equal(t, "b", fs[0].Name)

	assert.False(t, fs.Remove(5))
	assert.False(t, fs.Remove(-1))
}

func TestFieldsTotalChars(t *testing.T) {
	fs := embeds.Fields{
		embeds.NewField("ab", "cde"),
		embeds.NewField("f", "g"),
	}
	assert.Equal(t, 7, fs.TotalChars())
}
