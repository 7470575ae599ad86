package commands

import (
	"github.com/Soheab/discord-ext-embeds/internal/config"
	"github.com/Soheab/discord-ext-embeds/pkg/embeds"
	"github.com/Soheab/discord-ext-embeds/pkg/logging"
)

var (
	defaultColour = embeds.ColourDarkTheme
	limitChecks   = true
)

// Initialize applies the bot configuration to the command package
func Initialize(cfg *config.Config) error {
	colour, err := embeds.ParseColour(cfg.DefaultColour)
	if err != nil {
		return err
	}
	defaultColour = colour
	limitChecks = !cfg.DisableLimitChecks
	return nil
}

// newEmbed returns a builder preconfigured with the bot-wide colour and
// limit-check setting.
func newEmbed() *embeds.Embed {
	e := embeds.New().SetColour(defaultColour)
	if !limitChecks {
		e.DisableLimitChecks()
	}
	return e
}

func commandLogger(name string) logging.Logger {
	return logging.GetGlobalLoggerFactory().CreateCommandLogger(name)
}
