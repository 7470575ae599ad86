package handlers

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Soheab/discord-ext-embeds/internal/commands"
	"github.com/Soheab/discord-ext-embeds/pkg/logging"
)

var commandPrefix = "!"

// SetCommandPrefix sets the prefix commands are dispatched on
func SetCommandPrefix(prefix string) {
	if prefix != "" {
		commandPrefix = prefix
	}
}

type commandFunc func(s *discordgo.Session, m *discordgo.MessageCreate, args []string)

var commandTable = map[string]commandFunc{
	"about":   commands.AboutCommand,
	"card":    commands.CardCommand,
	"gallery": commands.GalleryCommand,
	"poll":    commands.PollCommand,
}

// MessageHandler dispatches prefixed messages to the command table
func MessageHandler(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, commandPrefix) {
		return
	}

	parts := strings.Fields(strings.TrimPrefix(m.Content, commandPrefix))
	if len(parts) == 0 {
		return
	}

	name := strings.ToLower(parts[0])
	command, ok := commandTable[name]
	if !ok {
		return
	}

	logger := logging.GetGlobalLoggerFactory().CreateHandlerLogger("message")
	logger.Debug("Dispatching command", map[string]interface{}{
		"command":  name,
		"user_id":  m.Author.ID,
		"guild_id": m.GuildID,
	})

	command(s, m, parts[1:])
}
