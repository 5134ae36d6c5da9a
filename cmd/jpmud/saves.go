package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/jp-mud/internal/orchestrators/savegame"
)

var savesLimit int

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved games",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		printSaves(cmd.Context(), cmd.OutOrStdout(), a.saves)
		return nil
	},
}

var forgetCmd = &cobra.Command{
	Use:   "forget ID",
	Short: "Remove a game from the local save index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.saves.Forget(cmd.Context(), &savegame.ForgetInput{GameID: args[0]}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Forgot %s\n", args[0])
		return nil
	},
}

func init() {
	savesCmd.Flags().IntVar(&savesLimit, "limit", 0, "maximum number of saves to list (0 for all)")
	savesCmd.AddCommand(forgetCmd)
}

func printSaves(ctx context.Context, w io.Writer, svc savegame.Service) {
	out, err := svc.List(ctx, &savegame.ListInput{Limit: savesLimit})
	if err != nil {
		fmt.Fprintf(w, "Failed to list saved games: %v\n", err)
		return
	}
	if out.Local {
		fmt.Fprintln(w, "(game server unavailable, showing local saves)")
	}
	if len(out.Saves) == 0 {
		fmt.Fprintln(w, "No saved games.")
		return
	}
	for _, save := range out.Saves {
		when := "unknown time"
		if !save.SavedAt.IsZero() {
			when = save.SavedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s  %s  %-20s moves:%d vocabulary:%d\n",
			save.GameID, when, save.Location, save.Stats.Moves, save.Stats.VocabularyLearned)
	}
}
