package commands

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/Soheab/discord-ext-embeds/pkg/embeds"
)

// GalleryCommand groups up to four image URLs into a single multi-image
// embed using the shared-URL trick.
func GalleryCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	logger := commandLogger("gallery")

	if len(args) == 0 {
		reply(s, m.ChannelID, "Usage: `!gallery <image url> [more urls...]`")
		return
	}

	images := make([]any, len(args))
	for i, url := range args {
		images[i] = url
	}

	base := newEmbed().
		SetTitle("Gallery").
		SetURL("https://github.com/Soheab/discord-ext-embeds").
		SetFooter(fmt.Sprintf("%d image(s)", len(args)), "")

	group, err := base.WithMultipleImages(embeds.MediaImage, images...)
	if err != nil {
		var limitErr *embeds.LimitError
		if errors.As(err, &limitErr) {
			reply(s, m.ChannelID, fmt.Sprintf("Too many images: %d allowed per message.", limitErr.Limit))
			return
		}
		reply(s, m.ChannelID, "Could not build the gallery: "+err.Error())
		return
	}

	if _, err := embeds.SendAll(s, m.ChannelID, "", group); err != nil {
		logger.Error("Failed to send gallery", err, map[string]interface{}{
			"channel_id": m.ChannelID,
			"images":     len(args),
		})
	}
}

func reply(s *discordgo.Session, channelID, content string) {
	_, _ = s.ChannelMessageSend(channelID, content)
}
