package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tatianab/cluedo-solver/internal/config"
	"github.com/tatianab/cluedo-solver/internal/logging"
	"github.com/tatianab/cluedo-solver/internal/sim"
)

func main() {
	opts := sim.Options{MaxTurns: 60}
	cmd := &cobra.Command{
		Use:          "simulate_game",
		Short:        "Play seeded random games using the CLUEDO_* environment",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.Games, "games", 20, "number of games to simulate")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 1, "random seed")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts sim.Options) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	deck, err := cfg.Deck()
	if err != nil {
		return fmt.Errorf("failed to load deck: %w", err)
	}
	players, err := cfg.Seating(deck)
	if err != nil {
		return fmt.Errorf("failed to seat players: %w", err)
	}
	logger, closeLog, err := logging.Open(cfg.LogFile, os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	out := cmd.OutOrStdout()
	sum, err := sim.Simulate(out, deck, players, logger, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nSolved %d of %d games", sum.Solved, sum.Games)
	if sum.Solved > 0 {
		fmt.Fprintf(out, ", %.1f turns on average", sum.AverageTurns())
	}
	fmt.Fprintln(out)
	return nil
}
