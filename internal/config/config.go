package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the example bot configuration
type Config struct {
	DiscordToken  string `yaml:"discord_token" toml:"discord_token" env:"DISCORD_TOKEN"`
	CommandPrefix string `yaml:"command_prefix" toml:"command_prefix" env:"COMMAND_PREFIX"`
	LogLevel      string `yaml:"log_level" toml:"log_level" env:"LOG_LEVEL"`
	// DefaultColour is the embed colour used by the commands, in any form
	// accepted by embeds.ParseColour (e.g. "#5865f2" or "rgb(88, 101, 242)").
	DefaultColour string `yaml:"default_colour" toml:"default_colour" env:"EMBED_DEFAULT_COLOUR"`
	// DisableLimitChecks turns off client-side embed limit validation.
	DisableLimitChecks bool `yaml:"disable_limit_checks" toml:"disable_limit_checks" env:"EMBED_DISABLE_LIMIT_CHECKS"`
}

// LoadConfig loads the bot configuration in order of preference:
// config/bot.yaml, then config/bot.toml, then defaults. Environment
// variables (optionally from a .env file) override file values.
func LoadConfig() (*Config, error) {
	cfg := defaults()

	if err := loadYAMLConfig(cfg); err != nil {
		// YAML missing or unreadable, try TOML; defaults remain otherwise
		_ = loadTOMLConfig(cfg)
	}

	applyEnvOverrides(cfg)

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("config: DISCORD_TOKEN is not set")
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		CommandPrefix: "!",
		LogLevel:      "info",
		DefaultColour: "#313338",
	}
}

func loadYAMLConfig(cfg *Config) error {
	yamlPath := filepath.Join("config", "bot.yaml")
	data, err := os.ReadFile(yamlPath)
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", yamlPath, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", yamlPath, err)
	}

	return nil
}

func loadTOMLConfig(cfg *Config) error {
	tomlPath := filepath.Join("config", "bot.toml")
	if _, err := os.Stat(tomlPath); err != nil {
		return fmt.Errorf("config: %s not found", tomlPath)
	}

	if _, err := toml.DecodeFile(tomlPath, cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", tomlPath, err)
	}

	return nil
}

func applyEnvOverrides(cfg *Config) {
	// .env is optional; real environments set variables directly
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	cfg.DiscordToken = getEnvString("DISCORD_TOKEN", cfg.DiscordToken)
	cfg.CommandPrefix = getEnvString("COMMAND_PREFIX", cfg.CommandPrefix)
	cfg.LogLevel = getEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.DefaultColour = getEnvString("EMBED_DEFAULT_COLOUR", cfg.DefaultColour)
	cfg.DisableLimitChecks = getEnvBool("EMBED_DISABLE_LIMIT_CHECKS", cfg.DisableLimitChecks)
}

func getEnvString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
