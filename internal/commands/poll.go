package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Soheab/discord-ext-embeds/pkg/embeds"
)

// PollCommand builds a quick poll embed. The first argument may be a colour
// ("#ff0000", "0x00ff00", "rgb(0, 0, 255)"); the rest is
// "question | option | option...".
func PollCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	logger := commandLogger("poll")

	if len(args) == 0 {
		reply(s, m.ChannelID, "Usage: `!poll [colour] <question> | <option> | <option>...`")
		return
	}

	colour := defaultColour
	if parsed, err := embeds.ParseColour(args[0]); err == nil {
		colour = parsed
		args = args[1:]
	}

	parts := strings.Split(strings.Join(args, " "), "|")
	if len(parts) < 3 {
		reply(s, m.ChannelID, "A poll needs a question and at least two options.")
		return
	}

	question := strings.TrimSpace(parts[0])
	options := parts[1:]

	// Loose field shapes on purpose; this is the normalization path.
	raw := make([]any, len(options))
	for i, option := range options {
		raw[i] = map[string]any{
			"name":   fmt.Sprintf("Option %d", i+1),
			"value":  strings.TrimSpace(option),
			"inline": false,
		}
	}

	embed := newEmbed().
		SetColour(colour).
		SetTitle("📊 "+question).
		SetFooterUser(m.Author).
		AddRawFields(raw...)

	if _, err := embed.Send(s, m.ChannelID); err != nil {
		logger.Error("Failed to send poll embed", err, map[string]interface{}{
			"channel_id": m.ChannelID,
			"options":    len(options),
		})
	}
}
