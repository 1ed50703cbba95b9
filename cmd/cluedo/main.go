package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := app().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the root command with every subcommand attached.
func app() *cobra.Command {
	root := rootCmd()
	root.AddCommand(scriptCmd())
	root.AddCommand(deckCmd())
	root.AddCommand(simulateCmd())
	return root
}

// addConfigFlags registers the flags overriding the environment config.
func addConfigFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.Int("players", 0, "number of players including you (3-6)")
	f.StringSlice("names", nil, "opponent names in turn order, starting with the player after you")
	f.IntSlice("hands", nil, "hand size of every player, starting with you")
	f.String("deck", "", "YAML deck definition (default: classic deck)")
	f.String("log-file", "", "append logs to this file")
	f.String("log-level", "", "debug, info, warn or error")
}
