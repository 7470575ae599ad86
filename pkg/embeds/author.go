package embeds

import "github.com/bwmarrin/discordgo"

// Author is the author block at the top of an embed.
//
// IconFile takes precedence over IconURL: when set, the icon URL is rewritten
// to an attachment reference and the file is uploaded with the message.
type Author struct {
	Name         string
	URL          string
	IconURL      string
	IconFile     *discordgo.File
	ProxyIconURL string
}

// AuthorFromUser builds an author block from a user's display name and avatar.
func AuthorFromUser(user *discordgo.User) Author {
	return Author{
		Name:    displayName(user),
		IconURL: user.AvatarURL(""),
	}
}

// CharCount returns the number of characters the author name contributes to
// the total embed size.
func (a Author) CharCount() int {
	return len([]rune(a.Name))
}

// IsZero reports whether the author block is unset.
func (a Author) IsZero() bool {
	return a.Name == ""
}

// iconMedia returns the icon as a Media, or nil when there is no file-backed icon.
func (a Author) iconMedia() *Media {
	if a.IconFile == nil {
		return nil
	}
	m, err := MediaFromFile(MediaAuthorIcon, a.IconFile)
	if err != nil {
		return nil
	}
	m.ProxyURL = a.ProxyIconURL
	return m
}

// resolvedIconURL prefers the attachment reference when an icon file is set.
func (a Author) resolvedIconURL() string {
	if a.IconFile != nil {
		if a.IconFile.Name == "" {
			// MediaFromFile names the file and derives the URL
			if m, err := MediaFromFile(MediaAuthorIcon, a.IconFile); err == nil {
				return m.URL
			}
		}
		return AttachmentScheme + a.IconFile.Name
	}
	return a.IconURL
}

func (a Author) wire() *discordgo.MessageEmbedAuthor {
	if a.IsZero() {
		return nil
	}
	return &discordgo.MessageEmbedAuthor{
		Name:         a.Name,
		URL:          a.URL,
		IconURL:      a.resolvedIconURL(),
		ProxyIconURL: a.ProxyIconURL,
	}
}

func displayName(user *discordgo.User) string {
	if user == nil {
		return ""
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}
