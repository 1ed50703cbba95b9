package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tatianab/cluedo-solver/internal/config"
	"github.com/tatianab/cluedo-solver/internal/engine"
	"github.com/tatianab/cluedo-solver/internal/logging"
	"github.com/tatianab/cluedo-solver/internal/tui"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cluedo",
		Short:        "Card-grid Cluedo deduction assistant",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runTUI,
	}
	addConfigFlags(cmd)
	return cmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// The terminal belongs to the TUI: without a log file logs are dropped.
	logger, closeLog, err := logging.Open(cfg.LogFile, io.Discard, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	eng, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}
	return tui.Run(eng)
}

// loadConfig reads the environment and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	f := cmd.Flags()
	if f.Changed("players") {
		if cfg.Players, err = f.GetInt("players"); err != nil {
			return nil, err
		}
	}
	if f.Changed("names") {
		if cfg.Names, err = f.GetStringSlice("names"); err != nil {
			return nil, err
		}
	}
	if f.Changed("hands") {
		if cfg.Hands, err = f.GetIntSlice("hands"); err != nil {
			return nil, err
		}
	}
	if f.Changed("deck") {
		if cfg.DeckFile, err = f.GetString("deck"); err != nil {
			return nil, err
		}
	}
	if f.Changed("log-file") {
		if cfg.LogFile, err = f.GetString("log-file"); err != nil {
			return nil, err
		}
	}
	if f.Changed("log-level") {
		if cfg.LogLevel, err = f.GetString("log-level"); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newEngine(cfg *config.Config, logger *slog.Logger) (*engine.Engine, error) {
	deck, err := cfg.Deck()
	if err != nil {
		return nil, err
	}
	players, err := cfg.Seating(deck)
	if err != nil {
		return nil, fmt.Errorf("seating players: %w", err)
	}
	logger.Info("session started",
		slog.String("deck", deck.Name),
		slog.Int("players", len(players)),
	)
	return engine.NewEngine(deck, players, logger), nil
}
