package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/Soheab/discord-ext-embeds/internal/commands"
	"github.com/Soheab/discord-ext-embeds/internal/config"
	"github.com/Soheab/discord-ext-embeds/internal/handlers"
	"github.com/Soheab/discord-ext-embeds/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Bot initialization failed: %v", err)
	}
}

func run() error {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		// Continue execution as .env file might not exist in production
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logging.SetGlobalLoggerFactory(logging.NewLoggerFactory(cfg.LogLevel))
	logger := logging.GetGlobalLoggerFactory().CreateLogger("main")

	if err := commands.Initialize(cfg); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}
	handlers.SetCommandPrefix(cfg.CommandPrefix)

	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
	dg.AddHandler(handlers.MessageHandler)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	logger.Info("Bot is now running", map[string]interface{}{
		"prefix": cfg.CommandPrefix,
	})

	// Wait here until CTRL-C or other term signal is received
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info("Shutting down", nil)
	return nil
}
