package embeds

import "fmt"

// Limits holds the documented embed size and count ceilings.
// https://discord.com/developers/docs/resources/channel#embed-object-embed-limits
//
// Every Embed carries its own copy, so the table can be edited per embed
// without affecting others. A zero limit disables that particular check.
type Limits struct {
	Title       int
	Description int
	Fields      int
	FieldName   int
	FieldValue  int
	FooterText  int
	AuthorName  int
	// Embed is the combined character ceiling across title, description,
	// footer text, author name and all field names and values.
	Embed int
	// Embeds is the maximum number of embeds per message.
	Embeds int
}

// DefaultLimits returns the limits documented by the platform.
func DefaultLimits() Limits {
	return Limits{
		Title:       256,
		Description: 4096,
		Fields:      25,
		FieldName:   256,
		FieldValue:  1024,
		FooterText:  2048,
		AuthorName:  256,
		Embed:       6000,
		Embeds:      10,
	}
}

var limitAliases = map[string]string{
	"author": "author_name",
	"footer": "footer_text",
	"field":  "fields",
	"color":  "",
	"colour": "",
}

// LimitFor looks up a limit by its snake_case name. The aliases "author",
// "footer" and "field" resolve to "author_name", "footer_text" and "fields".
func (l Limits) LimitFor(name string) (int, error) {
	if alias, ok := limitAliases[name]; ok {
		name = alias
	}
	switch name {
	case "title":
		return l.Title, nil
	case "description":
		return l.Description, nil
	case "fields":
		return l.Fields, nil
	case "field_name":
		return l.FieldName, nil
	case "field_value":
		return l.FieldValue, nil
	case "footer_text":
		return l.FooterText, nil
	case "author_name":
		return l.AuthorName, nil
	case "embed":
		return l.Embed, nil
	case "embeds":
		return l.Embeds, nil
	}
	return 0, fmt.Errorf("embeds: %q is not a known embed limit", name)
}

// With returns a copy of the table with one limit replaced.
// Negative values are rejected; zero disables the check.
func (l Limits) With(name string, value int) (Limits, error) {
	if value < 0 {
		return l, fmt.Errorf("embeds: limit %q cannot be negative", name)
	}
	if alias, ok := limitAliases[name]; ok {
		name = alias
	}
	switch name {
	case "title":
		l.Title = value
	case "description":
		l.Description = value
	case "fields":
		l.Fields = value
	case "field_name":
		l.FieldName = value
	case "field_value":
		l.FieldValue = value
	case "footer_text":
		l.FooterText = value
	case "author_name":
		l.AuthorName = value
	case "embed":
		l.Embed = value
	case "embeds":
		l.Embeds = value
	default:
		return l, fmt.Errorf("embeds: %q is not a known embed limit", name)
	}
	return l, nil
}

// exceeded reports a limit violation, or nil. A zero limit never trips.
func (l Limits) exceeded(limitOf string, current, limit int) *LimitError {
	if limit > 0 && current > limit {
		return newLimitError(limitOf, limit, current)
	}
	return nil
}
