package main

import (
	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands the game understands",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		printCommands(cmd.Context(), cmd.OutOrStdout(), a.game)
		return nil
	},
}
