package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func deckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deck",
		Short: "Print the active deck as YAML, a starting point for custom decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			deck, err := cfg.Deck()
			if err != nil {
				return err
			}
			data, err := deck.Marshal()
			if err != nil {
				return fmt.Errorf("encoding deck: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
