package embeds_test

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soheab/discord-ext-embeds/pkg/embeds"
)

func TestNewMedia(t *testing.T) {
	m, err := embeds.NewMedia(embeds.MediaImage, "https://example.com/cat.png")
	require.NoError(t, err)
	assert.Equal(t, embeds.MediaImage, m.Type)
	assert.Equal(t, "https://example.com/cat.png", m.URL)

	// attachment references skip the URL shape check
	m, err = embeds.NewMedia(embeds.MediaThumbnail, "attachment://cat.png")
	require.NoError(t, err)
	assert.Equal(t, "attachment://cat.png", m.URL)
}

func TestNewMediaErrors(t *testing.T) {
	_, err := embeds.NewMedia(embeds.MediaImage, "")
	assert.ErrorIs(t, err, embeds.ErrNoMediaSource)

	_, err = embeds.NewMedia(embeds.MediaImage, "not a url")
	assert.Error(t, err)

	_, err = embeds.NewMedia(embeds.MediaImage, "ftp://example.com/cat.png")
	assert.Error(t, err)

	_, err = embeds.NewMedia("banner", "https://example.com/cat.png")
	assert.Error(t, err)
}

func TestMediaFromFile(t *testing.T) {
	file := &discordgo.File{Name: "cat.png", Reader: strings.NewReader("png bytes")}

	m, err := embeds.MediaFromFile(embeds.MediaImage, file)
	require.NoError(t, err)
	assert.Equal(t, "attachment://cat.png", m.URL)
	assert.Same(t, file, m.File)

	_, err = embeds.MediaFromFile(embeds.MediaImage, nil)
	assert.ErrorIs(t, err, embeds.ErrNoMediaSource)
}

func TestMediaFromFileGeneratesName(t *testing.T) {
	file := &discordgo.File{Reader: strings.NewReader("png bytes")}

	m, err := embeds.MediaFromFile(embeds.MediaImage, file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(file.Name, "upload-"))
	assert.Equal(t, embeds.AttachmentScheme+file.Name, m.URL)
}

func TestMediaFrom(t *testing.T) {
	m, err := embeds.MediaFrom(embeds.MediaImage, "https://example.com/cat.png")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/cat.png", m.URL)

	file := &discordgo.File{Name: "dog.png", Reader: strings.NewReader("png bytes")}
	m, err = embeds.MediaFrom(embeds.MediaThumbnail, file)
	require.NoError(t, err)
	assert.Equal(t, "attachment://dog.png", m.URL)

	existing := &embeds.Media{Type: embeds.MediaImage, URL: "https://example.com/a.png"}
	m, err = embeds.MediaFrom(embeds.MediaImage, existing)
	require.NoError(t, err)
	assert.Same(t, existing, m)

	_, err = embeds.MediaFrom(embeds.MediaImage, nil)
	assert.ErrorIs(t, err, embeds.ErrNoMediaSource)

	_, err = embeds.MediaFrom(embeds.MediaImage, 42)
	assert.Error(t, err)
}

func TestMediaIsZero(t *testing.T) {
	var m *embeds.Media
	assert.True(t, m.IsZero())
	assert.True(t, (&embeds.Media{Type: embeds.MediaImage}).IsZero())
	assert.False(t, (&embeds.Media{Type: embeds.MediaImage, URL: "https://example.com/a.png"}).IsZero())
}
