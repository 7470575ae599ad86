package embeds

import "github.com/bwmarrin/discordgo"

// Provider identifies the third party a link embed came from. Bots cannot
// set it; it is kept so embeds read back from messages round-trip cleanly.
type Provider struct {
	Name string
	URL  string
}

// IsZero reports whether the provider carries no information.
func (p Provider) IsZero() bool {
	return p.Name == "" && p.URL == ""
}

func (p Provider) wire() *discordgo.MessageEmbedProvider {
	if p.IsZero() {
		return nil
	}
	return &discordgo.MessageEmbedProvider{Name: p.Name, URL: p.URL}
}
