package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datepick/internal/calendar"
	apperrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

func newFormatCmd(root *rootFlags) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "format YYYY-MM-DD",
		Short: "Render an ISO date in the locale's display form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			d, ok := calendar.ParseISO(args[0])
			if !ok {
				return apperrors.NewValueError("date", args[0], "must be an ISO calendar date (YYYY-MM-DD)")
			}

			out := calendar.Format(d, s.locale)
			if long {
				out = calendar.FormatLong(d, s.locale)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&long, "long", false, "Spell out the month name")

	return cmd
}

func newParseCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Interpret typed text as a date and print it as YYYY-MM-DD",
		Long: "Interpret typed text the way the picker's input field does: ISO dates,\n" +
			"numeric dates in the locale's field order, or spelled-out month names.\n" +
			"Dates outside --min/--max are rejected.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			text := strings.Join(args, " ")
			d, ok := calendar.ParseInputLocale(text, s.locale)
			if !ok {
				s.log.Debug("input rejected", "input", text)
				return apperrors.NewValueError("input", text, "is not a recognisable date")
			}

			bounds, err := calendar.ParseBounds(s.cfg.Min, s.cfg.Max)
			if err != nil {
				return err
			}
			if !bounds.Selectable(d) {
				return apperrors.NewValueError("input", d.String(), "is outside the allowed range")
			}

			fmt.Fprintln(cmd.OutOrStdout(), d.String())
			return nil
		},
	}

	return cmd
}
