package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GetVersion returns the version injected at build time.
func GetVersion() string {
	return rootCmd.Version
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ado version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ado version %s\n", GetVersion())
		},
	}
}
