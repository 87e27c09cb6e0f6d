package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
}

// NewRootCommand creates the root command for the graphql-sourcegen CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "graphql-sourcegen",
		Short: "Generate typed Go models from GraphQL fragments",
		Long: `graphql-sourcegen compiles GraphQL fragment definitions into typed Go
model declarations. Field types come from a schema when one is
configured; without one every field degrades to a string-like
placeholder and generation still succeeds.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}

			// Logs go to stderr so generated output and diagnostics on
			// stdout stay machine-readable.
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "sourcegen.yaml", "path to the configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
