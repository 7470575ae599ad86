package commands

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Soheab/discord-ext-embeds/pkg/embeds"
)

// CardCommand replies with a profile card for the invoking user,
// demonstrating the author/footer/thumbnail/field surfaces of the builder.
func CardCommand(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	logger := commandLogger("card")

	user := m.Author
	created, _ := discordgo.SnowflakeTimestamp(user.ID)

	embed := newEmbed().
		SetAuthorUser(user).
		SetThumbnailURL(user.AvatarURL("256")).
		SetDescription(fmt.Sprintf("Profile card for <@%s>", user.ID)).
		SetTimestamp(time.Now()).
		SetFooter("Requested with !card", "").
		AddFields(
			embeds.NewField("Username", user.Username),
			embeds.NewField("User ID", user.ID),
			embeds.NewField("Created", created.UTC().Format("02 Jan 2006")),
		)

	if m.Member != nil && m.Member.JoinedAt.Unix() > 0 {
		embed.AddField("Joined", m.Member.JoinedAt.UTC().Format("02 Jan 2006"), true)
	}

	if _, err := embed.Send(s, m.ChannelID); err != nil {
		logger.Error("Failed to send card embed", err, map[string]interface{}{
			"channel_id": m.ChannelID,
			"user_id":    user.ID,
		})
	}
}
