package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintf(cmd.OutOrStdout(), "datepick %s (%s, %s)\n", version, shortCommit(), date)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "datepick %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print build information on one line")

	return cmd
}

// shortCommit abbreviates a full SHA to the usual seven characters.
func shortCommit() string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
