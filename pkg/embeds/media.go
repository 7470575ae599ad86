package embeds

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// MediaType tells which embed slot a Media belongs to.
type MediaType string

const (
	MediaImage      MediaType = "image"
	MediaThumbnail  MediaType = "thumbnail"
	MediaVideo      MediaType = "video"
	MediaFooterIcon MediaType = "footer_icon"
	MediaAuthorIcon MediaType = "author_icon"
)

// AttachmentScheme prefixes URLs that reference an uploaded file instead of
// a remote resource.
const AttachmentScheme = "attachment://"

var mediaURLPattern = regexp.MustCompile(`^https?://[^\s]+$`)

// Media is an image, thumbnail, video or icon on an embed.
//
// ProxyURL, Width and Height are filled in by the platform and only appear on
// embeds read back from messages.
type Media struct {
	Type     MediaType
	URL      string
	File     *discordgo.File
	ProxyURL string
	Width    int
	Height   int
}

// NewMedia builds a media from a remote or attachment URL.
func NewMedia(mediaType MediaType, url string) (*Media, error) {
	m := &Media{Type: mediaType, URL: url}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// MediaFromFile builds a media backed by a file upload. The media URL becomes
// an attachment reference; files without a name get a generated one.
func MediaFromFile(mediaType MediaType, file *discordgo.File) (*Media, error) {
	if file == nil {
		return nil, ErrNoMediaSource
	}
	if file.Name == "" {
		file.Name = "upload-" + uuid.NewString()
	}
	m := &Media{Type: mediaType, File: file, URL: AttachmentScheme + file.Name}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// MediaFrom normalizes the accepted media shapes: a URL string, a
// *discordgo.File, or an existing Media / *Media.
func MediaFrom(mediaType MediaType, value any) (*Media, error) {
	switch v := value.(type) {
	case nil:
		return nil, ErrNoMediaSource
	case *Media:
		if v == nil {
			return nil, ErrNoMediaSource
		}
		return v, nil
	case Media:
		return &v, nil
	case *discordgo.File:
		return MediaFromFile(mediaType, v)
	case string:
		return NewMedia(mediaType, v)
	case fmt.Stringer:
		return NewMedia(mediaType, v.String())
	default:
		return nil, fmt.Errorf("embeds: cannot build a %s media from %T", mediaType, value)
	}
}

func (m *Media) validate() error {
	if m.URL == "" && m.File == nil {
		return ErrNoMediaSource
	}
	switch m.Type {
	case MediaImage, MediaThumbnail, MediaVideo, MediaFooterIcon, MediaAuthorIcon:
	default:
		return fmt.Errorf("embeds: invalid media type %q", m.Type)
	}
	if m.URL != "" && !strings.HasPrefix(m.URL, AttachmentScheme) && !mediaURLPattern.MatchString(m.URL) {
		return fmt.Errorf("embeds: invalid %s URL %q", m.Type, m.URL)
	}
	return nil
}

// IsZero reports whether the media references nothing.
func (m Media) IsZero() bool {
	return m.URL == "" && m.File == nil
}

func (m *Media) clone() *Media {
	if m == nil {
		return nil
	}
	clone := *m
	return &clone
}
