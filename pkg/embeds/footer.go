package embeds

import "github.com/bwmarrin/discordgo"

// Footer is the footer block at the bottom of an embed.
//
// IconFile takes precedence over IconURL, same as Author.
type Footer struct {
	Text         string
	IconURL      string
	IconFile     *discordgo.File
	ProxyIconURL string
}

// FooterFromUser builds a footer from a user's display name and avatar.
func FooterFromUser(user *discordgo.User) Footer {
	return Footer{
		Text:    displayName(user),
		IconURL: user.AvatarURL(""),
	}
}

// CharCount returns the number of characters the footer text contributes to
// the total embed size.
func (f Footer) CharCount() int {
	return len([]rune(f.Text))
}

// IsZero reports whether the footer block is unset.
func (f Footer) IsZero() bool {
	return f.Text == ""
}

func (f Footer) iconMedia() *Media {
	if f.IconFile == nil {
		return nil
	}
	m, err := MediaFromFile(MediaFooterIcon, f.IconFile)
	if err != nil {
		return nil
	}
	m.ProxyURL = f.ProxyIconURL
	return m
}

func (f Footer) resolvedIconURL() string {
	if f.IconFile != nil {
		if f.IconFile.Name == "" {
			if m, err := MediaFromFile(MediaFooterIcon, f.IconFile); err == nil {
				return m.URL
			}
		}
		return AttachmentScheme + f.IconFile.Name
	}
	return f.IconURL
}

func (f Footer) wire() *discordgo.MessageEmbedFooter {
	if f.IsZero() {
		return nil
	}
	return &discordgo.MessageEmbedFooter{
		Text:         f.Text,
		IconURL:      f.resolvedIconURL(),
		ProxyIconURL: f.ProxyIconURL,
	}
}
