package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath    string
	locale        string
	value         string
	min           string
	max           string
	verbose       bool
	humanReadable bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "datepick",
		Short:         "Pick, render, format and parse calendar dates",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the interactive picker.
			if len(args) == 0 {
				return runPickCommand(cmd, flags, pickOptions{})
			}
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a picker configuration file")
	pf.StringVarP(&flags.locale, "locale", "l", "", "Locale tag, e.g. en or es-MX")
	pf.StringVar(&flags.value, "value", "", "Initial value (YYYY-MM-DD)")
	pf.StringVar(&flags.min, "min", "", "Earliest selectable date (YYYY-MM-DD)")
	pf.StringVar(&flags.max, "max", "", "Latest selectable date (YYYY-MM-DD)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&flags.humanReadable, "human", false, "Write logs in console format instead of JSON")

	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newGridCmd(flags))
	cmd.AddCommand(newFormatCmd(flags))
	cmd.AddCommand(newParseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
