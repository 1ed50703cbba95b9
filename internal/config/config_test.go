package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/cluedo-solver/internal/models"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(nil)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Players)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Names)
	assert.Empty(t, cfg.DeckFile)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	cfg, err := LoadConfigFrom(map[string]string{
		"CLUEDO_PLAYERS":   "3",
		"CLUEDO_NAMES":     "Alice, Bob",
		"CLUEDO_HANDS":     "5,6,7",
		"CLUEDO_LOG_FILE":  "/tmp/cluedo.log",
		"CLUEDO_LOG_LEVEL": "DEBUG",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Players)
	assert.Equal(t, []string{"Alice", "Bob"}, cfg.Names)
	assert.Equal(t, []int{5, 6, 7}, cfg.Hands)
	assert.Equal(t, "/tmp/cluedo.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.NoError(t, cfg.Validate())

	players, err := cfg.Seating(mustDeck(t, cfg))
	require.NoError(t, err)
	assert.Equal(t, "Bob", players[2].Name)
	assert.Equal(t, 7, players[2].Hand)
}

func TestLoadConfigParseErrors(t *testing.T) {
	_, err := LoadConfigFrom(map[string]string{"CLUEDO_PLAYERS": "four"})
	assert.ErrorContains(t, err, "Players")

	_, err = LoadConfigFrom(map[string]string{"CLUEDO_HANDS": "6,x,6"})
	assert.ErrorContains(t, err, "Hands")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"too few players", Config{Players: 2, LogLevel: "info"}},
		{"too many players", Config{Players: 7, LogLevel: "info"}},
		{"bad log level", Config{Players: 4, LogLevel: "loud"}},
		{"empty name", Config{Players: 4, LogLevel: "info", Names: []string{"Alice", ""}}},
		{"too many names", Config{Players: 3, LogLevel: "info", Names: []string{"a", "b", "c"}}},
		{"negative hand", Config{Players: 3, LogLevel: "info", Hands: []int{6, 6, -1}}},
		{"hand count", Config{Players: 4, LogLevel: "info", Hands: []int{6, 6, 6}}},
		{"missing deck", Config{Players: 4, LogLevel: "info", DeckFile: "/does/not/exist.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}

func TestDeckFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: Tiny
categories:
  - name: who
    cards: [{id: ann}, {id: bob}, {id: cat}]
  - name: what
    cards: [{id: axe}, {id: bat}, {id: cup}]
`), 0o644))

	cfg := &Config{Players: 3, LogLevel: "info", DeckFile: path}
	require.NoError(t, cfg.Validate())

	d := mustDeck(t, cfg)
	assert.Equal(t, "Tiny", d.Name)
	assert.Len(t, d.Cards, 6)

	players, err := cfg.Seating(d)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, []int{players[0].Hand, players[1].Hand, players[2].Hand})
}

func TestLoadConfigIgnoresProcessEnv(t *testing.T) {
	t.Setenv("CLUEDO_PLAYERS", "6")

	cfg, err := LoadConfigFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Players)

	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Players)
}

func mustDeck(t *testing.T, cfg *Config) *models.Deck {
	t.Helper()
	d, err := cfg.Deck()
	require.NoError(t, err)
	return d
}
