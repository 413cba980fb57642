// Package cli provides the command-line interface for turbomate.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jevan001/Turbomate-Ai/chat"
	"github.com/jevan001/Turbomate-Ai/config"
	"github.com/jevan001/Turbomate-Ai/tui"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	detailed bool
	logLevel string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "turbomate",
	Short: "Chat widget demo for the terminal",
	Long: `TurboMate is a chat widget demo. It renders message bubbles, answers
every message with one of two canned replies after a short delay, and keeps
a sidebar of past conversation titles. Nothing leaves the process.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("detailed") {
			cfg.Detailed = detailed
		}
		if logLevel != "" {
			cfg.LogLevel = strings.ToUpper(logLevel)
			return cfg.Validate()
		}
		return nil
	},
	RunE: runUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&detailed, "detailed", false, "start with detailed replies selected")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.AddCommand(replayCmd, versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runUI(cmd *cobra.Command, args []string) error {
	// the alternate screen owns the terminal, so logs only go to the file
	logger, cleanup := newLogger(io.Discard)
	defer func() { _ = cleanup() }()

	logger.Info("starting", "version", Version, "detailed", cfg.Detailed)

	state := chat.NewViewState(chat.WithLogger(logger), chat.WithDetailed(cfg.Detailed))
	chat.StartNewChat(state)

	m := tui.NewModel(state, tui.Options{
		UserLabel: cfg.UserLabel,
		Logger:    logger,
	})

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	logger.Info("exiting", "sessions", len(state.History))
	return nil
}

func newLogger(console io.Writer) (*slog.Logger, func() error) {
	return config.SetupLogger(cfg.LogFile, cfg.Level(), console)
}
