package embeds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soheab/discord-ext-embeds/pkg/embeds"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  embeds.Colour
	}{
		{"hash hex", "#ff0000", 0xff0000},
		{"hash short hex", "#fff", 0xffffff},
		{"0x prefix", "0x00ff00", 0x00ff00},
		{"0x hash prefix", "0x#7289da", 0x7289da},
		{"bare hex", "313338", 0x313338},
		{"rgb ints", "rgb(255, 170, 0)", 0xffaa00},
		{"rgb no spaces", "rgb(0,0,255)", 0x0000ff},
		{"rgb percents", "rgb(100%, 0%, 0%)", 0xff0000},
		{"surrounding space", "  #ff0000  ", 0xff0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := embeds.ParseColour(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColourErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"not a colour",
		"#ffff",
		"#gggggg",
		"rgb(1, 2)",
		"rgb(256, 0, 0)",
		"rgb(-1, 0, 0)",
		"rgb(a, b, c)",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := embeds.ParseColour(input)
			assert.Error(t, err)
		})
	}
}

func TestColourFrom(t *testing.T) {
	got, err := embeds.ColourFrom(0xff0000)
	require.NoError(t, err)
	assert.Equal(t, embeds.ColourRed, got)

	got, err = embeds.ColourFrom("rgb(0, 255, 0)")
	require.NoError(t, err)
	assert.Equal(t, embeds.ColourGreen, got)

	got, err = embeds.ColourFrom(embeds.ColourBlurple)
	require.NoError(t, err)
	assert.Equal(t, embeds.ColourBlurple, got)

	_, err = embeds.ColourFrom(0x1000000)
	assert.Error(t, err)

	_, err = embeds.ColourFrom(-1)
	assert.Error(t, err)

	_, err = embeds.ColourFrom(3.14)
	assert.Error(t, err)
}

func TestColourAccessors(t *testing.T) {
	assert.Equal(t, "#ff0000", embeds.ColourRed.Hex())
	assert.Equal(t, 0xffaa00, embeds.ColourOrange.Int())

	r, g, b := embeds.Colour(0x102030).RGB()
	assert.Equal(t, 0x10, r)
	assert.Equal(t, 0x20, g)
	assert.Equal(t, 0x30, b)
}
