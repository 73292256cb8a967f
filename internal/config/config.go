package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the bot reads from the environment.
// DefaultPrefixes are the global textual prefixes used in direct messages
// and in guilds without custom prefixes. StaffIDs may see and toggle
// disabled commands.
type Config struct {
	DiscordToken    string   `env:"DISCORD_TOKEN,required"`
	StoragePath     string   `env:"STORAGE_PATH" envDefault:"datastore.json"`
	DefaultPrefixes []string `env:"DEFAULT_PREFIXES" envDefault:"!"`
	StaffIDs        []string `env:"STAFF_IDS"`
	StatusAddr      string   `env:"STATUS_ADDR" envDefault:":8787"`
}

// New loads .env if present and parses the environment into a Config.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// IsStaff reports whether a user ID is on the staff list.
func (c *Config) IsStaff(userID string) bool {
	for _, id := range c.StaffIDs {
		if id == userID {
			return true
		}
	}
	return false
}
