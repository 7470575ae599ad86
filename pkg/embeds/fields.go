package embeds

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// blankFieldValue is a zero-width space; it renders as an empty field on
// the client, which rejects truly empty values.
const blankFieldValue = "\u200b"

// Field is a single name/value pair on an embed.
//
// Index is an optional insert position used by Embed.AddFields and the
// loose-shape helpers; a value of 0 or less appends. Note that a zero Field
// literal is not inline; use NewField for the inline-by-default behaviour.
type Field struct {
	Name   string
	Value  string
	Inline bool
	Index  int
}

// NewField returns an inline field with no insert position.
func NewField(name, value string) Field {
	return Field{Name: name, Value: value, Inline: true}
}

// CharCount returns the number of characters the field contributes to the
// total embed size.
func (f Field) CharCount() int {
	return len([]rune(f.Name)) + len([]rune(f.Value))
}

func (f Field) wire() *discordgo.MessageEmbedField {
	value := f.Value
	if value == "" {
		value = blankFieldValue
	}
	return &discordgo.MessageEmbedField{
		Name:   f.Name,
		Value:  value,
		Inline: f.Inline,
	}
}

// FieldFrom normalizes loose field shapes into a Field. Accepted shapes:
//
//   - Field and *Field
//   - *discordgo.MessageEmbedField
//   - []string or []any positional: name, value, then optionally an inline
//     bool and/or an insert index int, in either order
//   - map[string]any with "name" and "value" keys and optional
//     "inline" and "index" keys
func FieldFrom(value any) (Field, error) {
	switch v := value.(type) {
	case Field:
		return v, nil
	case *Field:
		if v == nil {
			return Field{}, fmt.Errorf("embeds: nil *Field")
		}
		return *v, nil
	case *discordgo.MessageEmbedField:
		if v == nil {
			return Field{}, fmt.Errorf("embeds: nil *discordgo.MessageEmbedField")
		}
		return Field{Name: v.Name, Value: v.Value, Inline: v.Inline}, nil
	case []string:
		anys := make([]any, len(v))
		for i, s := range v {
			anys[i] = s
		}
		return fieldFromSlice(anys)
	case []any:
		return fieldFromSlice(v)
	case map[string]any:
		return fieldFromMap(v)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return fieldFromMap(m)
	default:
		return Field{}, fmt.Errorf("embeds: cannot build a field from %T", value)
	}
}

func fieldFromSlice(values []any) (Field, error) {
	if len(values) < 2 {
		return Field{}, fmt.Errorf("embeds: field shorthand needs at least a name and a value, got %d elements", len(values))
	}
	if len(values) > 4 {
		return Field{}, fmt.Errorf("embeds: field shorthand accepts at most 4 elements, got %d", len(values))
	}

	field := Field{
		Name:   fmt.Sprint(values[0]),
		Value:  fmt.Sprint(values[1]),
		Inline: true,
	}

	for _, extra := range values[2:] {
		switch e := extra.(type) {
		case bool:
			field.Inline = e
		case int:
			field.Index = e
		default:
			return Field{}, fmt.Errorf("embeds: field shorthand extras must be bool or int, got %T", extra)
		}
	}

	return field, nil
}

func fieldFromMap(m map[string]any) (Field, error) {
	name, ok := m["name"]
	if !ok {
		return Field{}, fmt.Errorf("embeds: field map is missing the %q key", "name")
	}
	value, ok := m["value"]
	if !ok {
		return Field{}, fmt.Errorf("embeds: field map is missing the %q key", "value")
	}

	field := Field{
		Name:   fmt.Sprint(name),
		Value:  fmt.Sprint(value),
		Inline: true,
	}

	if inline, ok := m["inline"]; ok {
		b, isBool := inline.(bool)
		if !isBool {
			return Field{}, fmt.Errorf("embeds: field map %q must be a bool, got %T", "inline", inline)
		}
		field.Inline = b
	}
	if index, ok := m["index"]; ok {
		n, isInt := index.(int)
		if !isInt {
			return Field{}, fmt.Errorf("embeds: field map %q must be an int, got %T", "index", index)
		}
		field.Index = n
	}

	return field, nil
}

// Fields is an ordered field collection.
type Fields []Field

// Add appends the field, or inserts it when the field carries a positive
// insert index. Indexes past the end append.
func (fs *Fields) Add(field Field) {
	if field.Index > 0 && field.Index < len(*fs) {
		fs.Insert(field.Index, field)
		return
	}
	field.Index = 0
	*fs = append(*fs, field)
}

// Insert places the field at the given position, shifting later fields down.
func (fs *Fields) Insert(index int, field Field) {
	if index < 0 {
		index = 0
	}
	if index >= len(*fs) {
		field.Index = 0
		*fs = append(*fs, field)
		return
	}
	field.Index = index
	*fs = append(*fs, Field{})
	copy((*fs)[index+1:], (*fs)[index:])
	(*fs)[index] = field
}

// Remove deletes the field at index. Out-of-range indexes are a no-op.
func (fs *Fields) Remove(index int) bool {
	if index < 0 || index >= len(*fs) {
		return false
	}
	*fs = append((*fs)[:index], (*fs)[index+1:]...)
	return true
}

// Get returns the first field with the given name.
func (fs Fields) Get(name string) (Field, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// TotalChars returns the character count across all field names and values.
func (fs Fields) TotalChars() int {
	total := 0
	for _, f := range fs {
		total += f.CharCount()
	}
	return total
}

func (fs Fields) wire() []*discordgo.MessageEmbedField {
	if len(fs) == 0 {
		return nil
	}
	out := make([]*discordgo.MessageEmbedField, len(fs))
	for i, f := range fs {
		out[i] = f.wire()
	}
	return out
}

func fieldsFromWire(wire []*discordgo.MessageEmbedField) Fields {
	if len(wire) == 0 {
		return nil
	}
	fs := make(Fields, 0, len(wire))
	for _, f := range wire {
		if f == nil {
			continue
		}
		fs = append(fs, Field{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	return fs
}
