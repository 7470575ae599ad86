package embeds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soheab/discord-ext-embeds/pkg/embeds"
)

func TestDefaultLimits(t *testing.T) {
	l := embeds.DefaultLimits()
	assert.Equal(t, 256, l.Title)
	assert.Equal(t, 4096, l.Description)
	assert.Equal(t, 25, l.Fields)
	assert.Equal(t, 256, l.FieldName)
	assert.Equal(t, 1024, l.FieldValue)
	assert.Equal(t, 2048, l.FooterText)
	assert.Equal(t, 256, l.AuthorName)
	assert.Equal(t, 6000, l.Embed)
	assert.Equal(t, 10, l.Embeds)
}

func TestLimitFor(t *testing.T) {
	l := embeds.DefaultLimits()

	limit, err := l.LimitFor("title")
	require.NoError(t, err)
	assert.Equal(t, 256, limit)

	// aliases
	limit, err = l.LimitFor("author")
	require.NoError(t, err)
	assert.Equal(t, 256, limit)

	limit, err = l.LimitFor("footer")
	require.NoError(t, err)
	assert.Equal(t, 2048, limit)

	limit, err = l.LimitFor("field")
	require.NoError(t, err)
	assert.Equal(t, 25, limit)

	_, err = l.LimitFor("colour")
	assert.Error(t, err)

	_, err = l.LimitFor("bogus")
	assert.Error(t, err)
}

func TestLimitsWith(t *testing.T) {
	l := embeds.DefaultLimits()

	edited, err := l.With("title", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, edited.Title)
	// original table is untouched
	assert.Equal(t, 256, l.Title)

	edited, err = l.With("footer", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, edited.FooterText)

	_, err = l.With("title", -1)
	assert.Error(t, err)

	_, err = l.With("bogus", 1)
	assert.Error(t, err)
}

func TestZeroLimitDisablesCheck(t *testing.T) {
	l, err := embeds.DefaultLimits().With("title", 0)
	require.NoError(t, err)

	e := embeds.New().
		WithLimits(l).
		SetTitle(stringOfLen(10_000))
	// title alone no longer trips, but the total embed ceiling still does
	_, err = e.Build()
	var limitErr *embeds.LimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, "embed", limitErr.LimitOf)
}
