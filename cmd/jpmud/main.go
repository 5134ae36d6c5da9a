// Package main is the entry point for the jp-mud terminal client
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/jp-mud/internal/config"
)

var (
	cfg *config.Config

	apiURL      string
	saveStore   string
	saveDir     string
	logLevel    string
	httpTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "jpmud",
	Short: "Japanese learning MUD client",
	Long: `jpmud is a terminal client for the Japanese learning MUD. It talks to the game
server for world generation, command processing and Japanese validation, and keeps
a local index of saved games.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "game server base URL (overrides JPMUD_API_URL)")
	rootCmd.PersistentFlags().StringVar(&saveStore, "save-store", "", "local save index: file, redis or none (overrides JPMUD_SAVE_STORE)")
	rootCmd.PersistentFlags().StringVar(&saveDir, "save-dir", "", "directory for file saves (overrides JPMUD_SAVE_DIR)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().DurationVar(&httpTimeout, "timeout", 0, "HTTP request timeout (overrides JPMUD_HTTP_TIMEOUT)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(inspectCmd)
}

// loadConfig reads the environment, applies flag overrides and sets up logging
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		loaded.APIURL = apiURL
	}
	if flags.Changed("save-store") {
		loaded.SaveStore = saveStore
	}
	if flags.Changed("save-dir") {
		loaded.SaveDir = saveDir
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("timeout") {
		loaded.HTTPTimeout = httpTimeout
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: loaded.SlogLevel(),
	})))

	cfg = loaded
	return nil
}
