// Package main provides the distinctctl binary: command-line tooling around
// the distinction engine. Every command embeds a fresh engine and drives it
// through the public contract — there is no persistence in the core, so each
// run grows its universe from the primordial pair.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	version = "0.1.0"
	appName = "distinctctl"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Deterministic graph-synthesis engine tooling",
		Long: `distinctctl drives a deterministic graph-synthesis engine: atomic
distinctions combined pairwise under a fixed rule into a single append-only
universe graph. Commands grow a universe with seeded strategies, export
snapshots for external analysis, self-check the synthesis invariants, and
serve snapshots over HTTP.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace|debug|info|warn|error)")

	cmd.AddCommand(
		growCmd(&logLevel),
		statusCmd(&logLevel),
		serveCmd(&logLevel),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", appName, version)
		},
	}
}

// newLogger builds a console zerolog logger at the requested level; an
// unknown level falls back to info rather than failing the command.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}
