package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/tatianab/cluedo-solver/internal/models"
)

var validate = validator.New()

// Config holds the application configuration.
type Config struct {
	Players  int      `env:"CLUEDO_PLAYERS" envDefault:"4" validate:"gte=3,lte=6"`
	Names    []string `env:"CLUEDO_NAMES" envSeparator:"," validate:"max=5,dive,required"` // opponent names in turn order
	Hands    []int    `env:"CLUEDO_HANDS" envSeparator:"," validate:"omitempty,dive,gte=0"`
	DeckFile string   `env:"CLUEDO_DECK" validate:"omitempty,file"`
	LogFile  string   `env:"CLUEDO_LOG_FILE"`
	LogLevel string   `env:"CLUEDO_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	return parse(env.Options{})
}

// LoadConfigFrom loads the configuration from environ instead of the
// process environment.
func LoadConfigFrom(environ map[string]string) (*Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	for i, name := range cfg.Names {
		cfg.Names[i] = strings.TrimSpace(name)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	return cfg, nil
}

// Validate checks the bounds of every field.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if len(c.Names) > c.Players-1 {
		return fmt.Errorf("invalid config: %d names for %d opponents", len(c.Names), c.Players-1)
	}
	if len(c.Hands) > 0 && len(c.Hands) != c.Players {
		return fmt.Errorf("invalid config: %d hand sizes for %d players", len(c.Hands), c.Players)
	}
	return nil
}

// Deck loads the configured deck, or the classic one.
func (c *Config) Deck() (*models.Deck, error) {
	if c.DeckFile == "" {
		return models.ClassicDeck(), nil
	}
	return models.LoadDeck(c.DeckFile)
}

// Seating builds the players for deck d.
func (c *Config) Seating(d *models.Deck) ([]models.Player, error) {
	var hands []int
	if len(c.Hands) > 0 {
		hands = c.Hands
	}
	return models.NewPlayers(d, c.Players, c.Names, hands)
}
