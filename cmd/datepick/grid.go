package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datepick/internal/calendar"
	"github.com/alexisbeaulieu97/datepick/internal/components"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
	apperrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

func newGridCmd(root *rootFlags) *cobra.Command {
	var nearest bool
	cmd := &cobra.Command{
		Use:   "grid [YYYY-MM]",
		Short: "Print a month grid",
		Long: "Print the month grid for YYYY-MM, or for the month of --value (today's month\n" +
			"when no value is set). The selected day is shown as [d], today as d*.\n" +
			"With --nearest a month outside --min/--max is replaced by the closest one\n" +
			"holding a selectable day.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, root, args, nearest)
		},
	}
	cmd.Flags().BoolVar(&nearest, "nearest", false, "Show the nearest month with a selectable day")

	return cmd
}

func runGrid(cmd *cobra.Command, root *rootFlags, args []string, nearest bool) error {
	s, err := loadSettings(cmd, root, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	session, err := picker.New(s.sessionOptions())
	if err != nil {
		return err
	}

	if len(args) == 1 {
		target, ok := calendar.ParseYearMonth(args[0])
		if !ok {
			return apperrors.NewValueError("month", args[0], "must be a month in YYYY-MM form")
		}
		session.Navigate(session.Month().MonthsUntil(target))
	}
	if nearest {
		session.JumpToSelectable()
	}

	fmt.Fprintln(cmd.OutOrStdout(), components.NewMonthGrid(session.Snapshot()).View())
	return nil
}
