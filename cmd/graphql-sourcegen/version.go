package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is stamped via -ldflags at release time.
var version = "dev"

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "graphql-sourcegen %s (%s/%s)\n",
				version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
