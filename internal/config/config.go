package config

import (
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, loaded from the environment (with an
// optional .env file for local runs).
type Config struct {
	DiscordToken string   `env:"DISCORD_TOKEN,required"`
	Prefix       string   `env:"COMMAND_PREFIX" envDefault:"."`
	OperatorIDs  []string `env:"OPERATOR_IDS" envSeparator:","`
	StoragePath  string   `env:"STORAGE_PATH" envDefault:"chronos.json"`
	LogLevel     string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFile      string   `env:"LOG_FILE"`
}

// New loads the configuration. A missing .env file is fine; a missing token
// is not.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// IsOperator reports whether the user is on the privileged allowlist.
func (c *Config) IsOperator(userID string) bool {
	return slices.Contains(c.OperatorIDs, userID)
}
