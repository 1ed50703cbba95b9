package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tatianab/cluedo-solver/internal/logging"
	"github.com/tatianab/cluedo-solver/internal/sim"
)

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play random dealt games against the engine and report how many get solved",
		Args:  cobra.NoArgs,
		RunE:  runSimulate,
	}
	cmd.Flags().Int("games", 20, "number of games to simulate")
	cmd.Flags().Uint64("seed", 1, "random seed")
	cmd.Flags().Int("max-turns", 60, "give up on a game after this many suggestions")
	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	var opts sim.Options
	if opts.Games, err = cmd.Flags().GetInt("games"); err != nil {
		return err
	}
	if opts.Seed, err = cmd.Flags().GetUint64("seed"); err != nil {
		return err
	}
	if opts.MaxTurns, err = cmd.Flags().GetInt("max-turns"); err != nil {
		return err
	}
	if opts.Games < 1 || opts.MaxTurns < 1 {
		return fmt.Errorf("--games and --max-turns must be positive")
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	deck, err := cfg.Deck()
	if err != nil {
		return err
	}
	players, err := cfg.Seating(deck)
	if err != nil {
		return fmt.Errorf("seating players: %w", err)
	}

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
