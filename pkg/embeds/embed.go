// Package embeds is a convenience layer over discordgo's message embeds.
// It provides a fluent builder with loose-shape normalization for fields,
// colours and media, and enforces the platform's documented size limits
// when an embed is built or sent.
package embeds

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Embed builds a rich message embed. The zero value is not usable; use New.
//
// Setters return the embed so calls can be chained. Setters that can fail
// (colour parsing, media validation, loose field shapes) record the first
// error, which Build and the send helpers return.
type Embed struct {
	title       string
	description string
	url         string
	colour      *Colour
	timestamp   *time.Time
	author      *Author
	footer      *Footer
	image       *Media
	thumbnail   *Media
	video       *Media
	provider    *Provider
	fields      Fields

	limits      Limits
	checkLimits bool
	err         error
}

// New returns an embed with the default dark-theme colour and limit
// checking enabled.
func New() *Embed {
	colour := ColourDarkTheme
	return &Embed{
		colour:      &colour,
		limits:      DefaultLimits(),
		checkLimits: true,
	}
}

// String returns the embed title.
func (e *Embed) String() string {
	return e.title
}

// Err returns the first error recorded by a chained setter, if any.
func (e *Embed) Err() error {
	return e.err
}

func (e *Embed) fail(err error) *Embed {
	if e.err == nil {
		e.err = err
	}
	return e
}

// BASIC ATTRIBUTES

// Title returns the embed title.
func (e *Embed) Title() string { return e.title }

// Description returns the embed description.
func (e *Embed) Description() string { return e.description }

// URL returns the embed URL.
func (e *Embed) URL() string { return e.url }

// SetTitle sets the embed title. An empty string removes it.
func (e *Embed) SetTitle(title string) *Embed {
	e.title = title
	return e
}

// SetDescription sets the embed description. An empty string removes it.
func (e *Embed) SetDescription(description string) *Embed {
	e.description = description
	return e
}

// SetURL sets the embed URL. An empty string removes it.
func (e *Embed) SetURL(url string) *Embed {
	e.url = url
	return e
}

// COLOUR

// Colour returns the embed colour and whether one is set.
func (e *Embed) Colour() (Colour, bool) {
	if e.colour == nil {
		return 0, false
	}
	return *e.colour, true
}

// SetColour sets the embed colour.
func (e *Embed) SetColour(colour Colour) *Embed {
	e.colour = &colour
	return e
}

// SetColor is an alias for SetColour.
func (e *Embed) SetColor(colour Colour) *Embed {
	return e.SetColour(colour)
}

// SetColourString parses the colour with ParseColour and sets it.
// Parse failures are recorded and surface from Build.
func (e *Embed) SetColourString(value string) *Embed {
	colour, err := ParseColour(value)
	if err != nil {
		return e.fail(err)
	}
	return e.SetColour(colour)
}

// ClearColour removes the embed colour.
func (e *Embed) ClearColour() *Embed {
	e.colour = nil
	return e
}

// TIMESTAMP

// Timestamp returns the embed timestamp and whether one is set.
func (e *Embed) Timestamp() (time.Time, bool) {
	if e.timestamp == nil {
		return time.Time{}, false
	}
	return *e.timestamp, true
}

// SetTimestamp sets the embed timestamp. It is serialized in UTC.
func (e *Embed) SetTimestamp(t time.Time) *Embed {
	t = t.UTC()
	e.timestamp = &t
	return e
}

// ClearTimestamp removes the embed timestamp.
func (e *Embed) ClearTimestamp() *Embed {
	e.timestamp = nil
	return e
}

// IMAGE / THUMBNAIL

// Image returns the embed image, or a zero Media when unset.
func (e *Embed) Image() Media {
	if e.image == nil {
		return Media{Type: MediaImage}
	}
	return *e.image
}

// Thumbnail returns the embed thumbnail, or a zero Media when unset.
func (e *Embed) Thumbnail() Media {
	if e.thumbnail == nil {
		return Media{Type: MediaThumbnail}
	}
	return *e.thumbnail
}

// Video returns the embed video, or a zero Media when unset. Bots cannot
// send videos; this is only populated on embeds read back from messages.
func (e *Embed) Video() Media {
	if e.video == nil {
		return Media{Type: MediaVideo}
	}
	return *e.video
}

// SetImageURL sets the embed image from a URL. An empty string removes it.
func (e *Embed) SetImageURL(url string) *Embed {
	if url == "" {
		return e.ClearImage()
	}
	m, err := NewMedia(MediaImage, url)
	if err != nil {
		return e.fail(err)
	}
	e.image = m
	return e
}

// SetImageFile sets the embed image from a file upload. Nil removes it.
func (e *Embed) SetImageFile(file *discordgo.File) *Embed {
	if file == nil {
		return e.ClearImage()
	}
	m, err := MediaFromFile(MediaImage, file)
	if err != nil {
		return e.fail(err)
	}
	e.image = m
	return e
}

// SetImageMedia sets the embed image from a prepared Media. Nil removes it.
func (e *Embed) SetImageMedia(media *Media) *Embed {
	if media == nil || media.IsZero() {
		return e.ClearImage()
	}
	media.Type = MediaImage
	e.image = media
	return e
}

// ClearImage removes the embed image.
func (e *Embed) ClearImage() *Embed {
	e.image = nil
	return e
}

// SetThumbnailURL sets the embed thumbnail from a URL. An empty string removes it.
func (e *Embed) SetThumbnailURL(url string) *Embed {
	if url == "" {
		return e.ClearThumbnail()
	}
	m, err := NewMedia(MediaThumbnail, url)
	if err != nil {
		return e.fail(err)
	}
	e.thumbnail = m
	return e
}

// SetThumbnailFile sets the embed thumbnail from a file upload. Nil removes it.
func (e *Embed) SetThumbnailFile(file *discordgo.File) *Embed {
	if file == nil {
		return e.ClearThumbnail()
	}
	m, err := MediaFromFile(MediaThumbnail, file)
	if err != nil {
		return e.fail(err)
	}
	e.thumbnail = m
	return e
}

// SetThumbnailMedia sets the embed thumbnail from a prepared Media. Nil removes it.
func (e *Embed) SetThumbnailMedia(media *Media) *Embed {
	if media == nil || media.IsZero() {
		return e.ClearThumbnail()
	}
	media.Type = MediaThumbnail
	e.thumbnail = media
	return e
}

// ClearThumbnail removes the embed thumbnail.
func (e *Embed) ClearThumbnail() *Embed {
	e.thumbnail = nil
	return e
}

// FOOTER

// Footer returns the footer block, or a zero Footer when unset.
func (e *Embed) Footer() Footer {
	if e.footer == nil {
		return Footer{}
	}
	return *e.footer
}

// SetFooter sets the footer text and icon URL. Empty text removes the footer.
func (e *Embed) SetFooter(text, iconURL string) *Embed {
	if text == "" {
		return e.ClearFooter()
	}
	e.footer = &Footer{Text: text, IconURL: iconURL}
	return e
}

// SetFooterFile sets the footer with a file-backed icon. Empty text removes
// the footer.
func (e *Embed) SetFooterFile(text string, icon *discordgo.File) *Embed {
	if text == "" {
		return e.ClearFooter()
	}
	e.footer = &Footer{Text: text, IconFile: icon}
	return e
}

// SetFooterUser sets the footer to the user's display name and avatar.
func (e *Embed) SetFooterUser(user *discordgo.User) *Embed {
	if user == nil {
		return e.ClearFooter()
	}
	footer := FooterFromUser(user)
	e.footer = &footer
	return e
}

// WithFooter sets the footer from a prepared Footer value.
// A zero footer removes it.
func (e *Embed) WithFooter(footer Footer) *Embed {
	if footer.IsZero() {
		return e.ClearFooter()
	}
	e.footer = &footer
	return e
}

// ClearFooter removes the footer.
func (e *Embed) ClearFooter() *Embed {
	e.footer = nil
	return e
}

// AUTHOR

// Author returns the author block, or a zero Author when unset.
func (e *Embed) Author() Author {
	if e.author == nil {
		return Author{}
	}
	return *e.author
}

// SetAuthor sets the author name, URL and icon URL. An empty name removes
// the author.
func (e *Embed) SetAuthor(name, url, iconURL string) *Embed {
	if name == "" {
		return e.ClearAuthor()
	}
	e.author = &Author{Name: name, URL: url, IconURL: iconURL}
	return e
}

// SetAuthorFile sets the author with a file-backed icon. An empty name
// removes the author.
func (e *Embed) SetAuthorFile(name string, icon *discordgo.File) *Embed {
	if name == "" {
		return e.ClearAuthor()
	}
	e.author = &Author{Name: name, IconFile: icon}
	return e
}

// SetAuthorUser sets the author to the user's display name and avatar.
func (e *Embed) SetAuthorUser(user *discordgo.User) *Embed {
	if user == nil {
		return e.ClearAuthor()
	}
	author := AuthorFromUser(user)
	e.author = &author
	return e
}

// WithAuthor sets the author from a prepared Author value.
// A zero author removes it.
func (e *Embed) WithAuthor(author Author) *Embed {
	if author.IsZero() {
		return e.ClearAuthor()
	}
	e.author = &author
	return e
}

// ClearAuthor removes the author.
func (e *Embed) ClearAuthor() *Embed {
	e.author = nil
	return e
}

// PROVIDER

// Provider returns the provider block, or a zero Provider when unset.
func (e *Embed) Provider() Provider {
	if e.provider == nil {
		return Provider{}
	}
	return *e.provider
}

// FIELDS

// Fields returns a copy of the embed fields.
func (e *Embed) Fields() Fields {
	if len(e.fields) == 0 {
		return nil
	}
	out := make(Fields, len(e.fields))
	copy(out, e.fields)
	return out
}

// FieldAt returns the field at index.
func (e *Embed) FieldAt(index int) (Field, bool) {
	if index < 0 || index >= len(e.fields) {
		return Field{}, false
	}
	return e.fields[index], true
}

// FieldNamed returns the first field with the given name.
func (e *Embed) FieldNamed(name string) (Field, bool) {
	return e.fields.Get(name)
}

// AddField appends a field.
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	e.fields.Add(Field{Name: name, Value: value, Inline: inline})
	return e
}

// InsertField inserts a field at the given position. A negative index is
// recorded as an error; indexes past the end append.
func (e *Embed) InsertField(index int, field Field) *Embed {
	if index < 0 {
		return e.fail(fmt.Errorf("embeds: field index must not be negative, got %d", index))
	}
	e.fields.Insert(index, field)
	return e
}

// AddFields appends fields, honoring each field's insert index.
func (e *Embed) AddFields(fields ...Field) *Embed {
	for _, f := range fields {
		e.fields.Add(f)
	}
	return e
}

// AddRawFields appends fields given in any of the shapes FieldFrom accepts.
// Shape errors are recorded and surface from Build.
func (e *Embed) AddRawFields(values ...any) *Embed {
	for _, v := range values {
		field, err := FieldFrom(v)
		if err != nil {
			return e.fail(err)
		}
		e.fields.Add(field)
	}
	return e
}

// SetFields replaces all fields. Nil or empty clears them.
func (e *Embed) SetFields(fields []Field) *Embed {
	e.fields = nil
	return e.AddFields(fields...)
}

// RemoveField deletes the field at index. Out-of-range indexes are a no-op.
func (e *Embed) RemoveField(index int) *Embed {
	e.fields.Remove(index)
	return e
}

// EditField updates the field at index. Empty name or value keeps the
// current one; inline is always applied.
func (e *Embed) EditField(index int, name, value string, inline bool) error {
	if index < 0 || index >= len(e.fields) {
		return fmt.Errorf("embeds: field index %d out of range", index)
	}
	field := &e.fields[index]
	if name != "" {
		field.Name = name
	}
	if value != "" {
		field.Value = value
	}
	field.Inline = inline
	return nil
}

// ClearFields removes all fields.
func (e *Embed) ClearFields() *Embed {
	e.fields = nil
	return e
}

// LIMITS

// Limits returns the embed's limit table.
func (e *Embed) Limits() Limits {
	return e.limits
}

// WithLimits replaces the embed's limit table.
func (e *Embed) WithLimits(limits Limits) *Embed {
	e.limits = limits
	return e
}

// DisableLimitChecks turns off limit checking for this embed. The platform
// will still reject oversized embeds.
func (e *Embed) DisableLimitChecks() *Embed {
	e.checkLimits = false
	return e
}

// EnableLimitChecks turns limit checking back on.
func (e *Embed) EnableLimitChecks() *Embed {
	e.checkLimits = true
	return e
}

// LimitChecksEnabled reports whether limit checking is on.
func (e *Embed) LimitChecksEnabled() bool {
	return e.checkLimits
}

// INTROSPECTION

// CharCount returns the combined character count of the title, description,
// footer text, author name and all field names and values. This is the
// number the total-embed limit applies to.
func (e *Embed) CharCount() int {
	count := len([]rune(e.title)) + len([]rune(e.description))
	count += e.Footer().CharCount()
	count += e.Author().CharCount()
	count += e.fields.TotalChars()
	return count
}

// IsEmpty reports whether nothing has been set on the embed.
// The default colour does not count.
func (e *Embed) IsEmpty() bool {
	return e.title == "" &&
		e.description == "" &&
		e.url == "" &&
		e.timestamp == nil &&
		e.author == nil &&
		e.footer == nil &&
		e.Image().IsZero() &&
		e.Thumbnail().IsZero() &&
		e.Video().IsZero() &&
		e.provider == nil &&
		len(e.fields) == 0
}

// Medias returns every media on the embed: image, thumbnail, video and
// file-backed footer and author icons.
func (e *Embed) Medias() []*Media {
	var medias []*Media
	for _, m := range []*Media{e.image, e.thumbnail, e.video} {
		if m != nil && !m.IsZero() {
			medias = append(medias, m)
		}
	}
	if e.footer != nil {
		if m := e.footer.iconMedia(); m != nil {
			medias = append(medias, m)
		}
	}
	if e.author != nil {
		if m := e.author.iconMedia(); m != nil {
			medias = append(medias, m)
		}
	}
	return medias
}

// Files returns the file uploads referenced by the embed, for sending
// alongside it. The send helpers attach them automatically.
func (e *Embed) Files() []*discordgo.File {
	var files []*discordgo.File
	for _, m := range e.Medias() {
		if m.File != nil {
			files = append(files, m.File)
		}
	}
	return files
}

// COPY / CLONE

// Clone returns a deep copy of the embed. File readers are shared with the
// original since they cannot be duplicated.
func (e *Embed) Clone() *Embed {
	clone := *e
	if e.colour != nil {
		c := *e.colour
		clone.colour = &c
	}
	if e.timestamp != nil {
		t := *e.timestamp
		clone.timestamp = &t
	}
	if e.author != nil {
		a := *e.author
		clone.author = &a
	}
	if e.footer != nil {
		f := *e.footer
		clone.footer = &f
	}
	clone.image = e.image.clone()
	clone.thumbnail = e.thumbnail.clone()
	clone.video = e.video.clone()
	if e.provider != nil {
		p := *e.provider
		clone.provider = &p
	}
	if len(e.fields) > 0 {
		clone.fields = make(Fields, len(e.fields))
		copy(clone.fields, e.fields)
	}
	return &clone
}

// Copy returns a copy built by round-tripping through the wire format.
// Unlike Clone it drops file uploads, keeping only their attachment URLs.
func (e *Embed) Copy() *Embed {
	copied := FromMessageEmbed(e.wire())
	copied.limits = e.limits
	copied.checkLimits = e.checkLimits
	return copied
}

// BUILD

// Build converts the embed to the wire struct the client library sends.
// It returns any error recorded by a chained setter, then any limit
// violation when checks are enabled.
func (e *Embed) Build() (*discordgo.MessageEmbed, error) {
	if e.err != nil {
		return nil, e.err
	}
	msg := e.wire()
	if e.checkLimits {
		if err := e.validateLimits(); err != nil {
			return nil, err
		}
	}
	return msg, nil
}

// MustBuild is Build but panics on error.
func (e *Embed) MustBuild() *discordgo.MessageEmbed {
	msg, err := e.Build()
	if err != nil {
		panic(err)
	}
	return msg
}

func (e *Embed) wire() *discordgo.MessageEmbed {
	msg := &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		Title:       e.title,
		Description: e.description,
		URL:         e.url,
	}
	if e.colour != nil {
		msg.Color = e.colour.Int()
	}
	if e.timestamp != nil {
		msg.Timestamp = e.timestamp.UTC().Format(time.RFC3339)
	}
	if e.footer != nil {
		msg.Footer = e.footer.wire()
	}
	if e.author != nil {
		msg.Author = e.author.wire()
	}
	if e.image != nil && !e.image.IsZero() {
		msg.Image = &discordgo.MessageEmbedImage{
			URL:      e.image.URL,
			ProxyURL: e.image.ProxyURL,
			Width:    e.image.Width,
			Height:   e.image.Height,
		}
	}
	if e.thumbnail != nil && !e.thumbnail.IsZero() {
		msg.Thumbnail = &discordgo.MessageEmbedThumbnail{
			URL:      e.thumbnail.URL,
			ProxyURL: e.thumbnail.ProxyURL,
			Width:    e.thumbnail.Width,
			Height:   e.thumbnail.Height,
		}
	}
	if e.video != nil && !e.video.IsZero() {
		msg.Video = &discordgo.MessageEmbedVideo{
			URL:    e.video.URL,
			Width:  e.video.Width,
			Height: e.video.Height,
		}
	}
	if e.provider != nil {
		msg.Provider = e.provider.wire()
	}
	msg.Fields = e.fields.wire()
	return msg
}

func (e *Embed) validateLimits() error {
	l := e.limits
	if err := l.exceeded("title", len([]rune(e.title)), l.Title); err != nil {
		return err
	}
	if err := l.exceeded("description", len([]rune(e.description)), l.Description); err != nil {
		return err
	}
	if err := l.exceeded("footer_text", e.Footer().CharCount(), l.FooterText); err != nil {
		return err
	}
	if err := l.exceeded("author_name", e.Author().CharCount(), l.AuthorName); err != nil {
		return err
	}
	if err := l.exceeded("fields", len(e.fields), l.Fields); err != nil {
		return err
	}
	for i, field := range e.fields {
		if err := l.exceeded("field_name", len([]rune(field.Name)), l.FieldName); err != nil {
			err.FieldIndex = i
			return err
		}
		if err := l.exceeded("field_value", len([]rune(field.Value)), l.FieldValue); err != nil {
			err.FieldIndex = i
			return err
		}
	}
	if err := l.exceeded("embed", e.CharCount(), l.Embed); err != nil {
		return err
	}
	return nil
}

// FromMessageEmbed converts a wire embed back to a builder, e.g. to tweak an
// embed read from an existing message. Limit checking starts enabled with
// the default table.
func FromMessageEmbed(msg *discordgo.MessageEmbed) *Embed {
	e := New()
	e.colour = nil
	if msg == nil {
		return e
	}

	e.title = msg.Title
	e.description = msg.Description
	e.url = msg.URL

	if msg.Color != 0 {
		colour := Colour(msg.Color)
		e.colour = &colour
	}
	if msg.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, msg.Timestamp); err == nil {
			t = t.UTC()
			e.timestamp = &t
		}
	}
	if msg.Footer != nil && msg.Footer.Text != "" {
		e.footer = &Footer{
			Text:         msg.Footer.Text,
			IconURL:      msg.Footer.IconURL,
			ProxyIconURL: msg.Footer.ProxyIconURL,
		}
	}
	if msg.Author != nil && msg.Author.Name != "" {
		e.author = &Author{
			Name:         msg.Author.Name,
			URL:          msg.Author.URL,
			IconURL:      msg.Author.IconURL,
			ProxyIconURL: msg.Author.ProxyIconURL,
		}
	}
	if msg.Image != nil && msg.Image.URL != "" {
		e.image = &Media{
			Type:     MediaImage,
			URL:      msg.Image.URL,
			ProxyURL: msg.Image.ProxyURL,
			Width:    msg.Image.Width,
			Height:   msg.Image.Height,
		}
	}
	if msg.Thumbnail != nil && msg.Thumbnail.URL != "" {
		e.thumbnail = &Media{
			Type:     MediaThumbnail,
			URL:      msg.Thumbnail.URL,
			ProxyURL: msg.Thumbnail.ProxyURL,
			Width:    msg.Thumbnail.Width,
			Height:   msg.Thumbnail.Height,
		}
	}
	if msg.Video != nil && msg.Video.URL != "" {
		e.video = &Media{
			Type:   MediaVideo,
			URL:    msg.Video.URL,
			Width:  msg.Video.Width,
			Height: msg.Video.Height,
		}
	}
	if msg.Provider != nil && (msg.Provider.Name != "" || msg.Provider.URL != "") {
		e.provider = &Provider{Name: msg.Provider.Name, URL: msg.Provider.URL}
	}
	e.fields = fieldsFromWire(msg.Fields)

	return e
}

// MULTI-IMAGE

// WithMultipleImages turns the embed into a gallery: one clone per image,
// all sharing the embed URL, which makes clients render them as a single
// embed with up to four images. The receiver is not modified.
//
// The target must be MediaImage or MediaThumbnail; an empty target means
// MediaImage. Each image may be a URL string, a *discordgo.File or a Media.
// The embed URL must be set for the grouping to work.
func (e *Embed) WithMultipleImages(target MediaType, images ...any) ([]*Embed, error) {
	if e.err != nil {
		return nil, e.err
	}
	if target == "" {
		target = MediaImage
	}
	if target != MediaImage && target != MediaThumbnail {
		return nil, fmt.Errorf("embeds: multi-image target must be %q or %q, got %q", MediaImage, MediaThumbnail, target)
	}
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if e.url == "" {
		return nil, ErrMissingEmbedURL
	}
	if e.checkLimits {
		if err := e.limits.exceeded("embeds", len(images), e.limits.Embeds); err != nil {
			return nil, err
		}
	}

	group := make([]*Embed, 0, len(images))
	for i, image := range images {
		media, err := MediaFrom(target, image)
		if err != nil {
			return nil, fmt.Errorf("embeds: image %d: %w", i, err)
		}
		clone := e.Clone()
		if i > 0 {
			// Clients only render the shared URL, title and friends from
			// the first embed of the group.
			clone.title = ""
			clone.description = ""
			clone.author = nil
			clone.footer = nil
			clone.fields = nil
			clone.timestamp = nil
		}
		if target == MediaImage {
			clone.image = media
		} else {
			clone.thumbnail = media
		}
		group = append(group, clone)
	}

	return group, nil
}

// SEND DELEGATION

// Send sends the embed, and any attached files, to a channel.
func (e *Embed) Send(s *discordgo.Session, channelID string) (*discordgo.Message, error) {
	return e.SendWith(s, channelID, "")
}

// SendWith sends the embed with message content.
func (e *Embed) SendWith(s *discordgo.Session, channelID, content string) (*discordgo.Message, error) {
	msg, err := e.Build()
	if err != nil {
		return nil, err
	}
	return s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{msg},
		Files:   e.Files(),
	})
}

// SendAll sends a group of embeds, such as a WithMultipleImages gallery,
// as a single message. The first embed's limit table governs the
// embeds-per-message check.
func SendAll(s *discordgo.Session, channelID, content string, group []*Embed) (*discordgo.Message, error) {
	if len(group) == 0 {
		return nil, fmt.Errorf("embeds: no embeds to send")
	}

	first := group[0]
	if first.checkLimits {
		if err := first.limits.exceeded("embeds", len(group), first.limits.Embeds); err != nil {
			return nil, err
		}
	}

	msgs := make([]*discordgo.MessageEmbed, 0, len(group))
	var files []*discordgo.File
	for _, e := range group {
		msg, err := e.Build()
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
		files = append(files, e.Files()...)
	}

	return s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		Embeds:  msgs,
		Files:   files,
	})
}

// Respond sends the embed as the initial response to an interaction.
func (e *Embed) Respond(s *discordgo.Session, interaction *discordgo.Interaction) error {
	msg, err := e.Build()
	if err != nil {
		return err
	}
	return s.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{msg},
			Files:  e.Files(),
		},
	})
}

// Followup sends the embed as a followup message to an already-acknowledged
// interaction.
func (e *Embed) Followup(s *discordgo.Session, interaction *discordgo.Interaction) (*discordgo.Message, error) {
	msg, err := e.Build()
	if err != nil {
		return nil, err
	}
	return s.FollowupMessageCreate(interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{msg},
		Files:  e.Files(),
	})
}
