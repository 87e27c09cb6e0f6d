package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/config"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Init writes a configuration file populated with the defaults to the
path given by --config, refusing to overwrite an existing file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(rootOpts, cmd)
		},
	}
}

func runInit(opts *RootOptions, cmd *cobra.Command) error {
	if _, err := os.Stat(opts.ConfigPath); err == nil {
		return fmt.Errorf("configuration file %s already exists", opts.ConfigPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := config.WriteFile(config.Default(), opts.ConfigPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.ConfigPath)

	return nil
}
