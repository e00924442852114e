package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/datepick/internal/components"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
	"github.com/alexisbeaulieu97/datepick/internal/tui"
)

var errCancelled = errors.New("date selection cancelled")

type pickOptions struct {
	Dark bool
}

var (
	pickRunner    = runPicker
	isInteractive = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
	}
)

func newPickCmd(root *rootFlags) *cobra.Command {
	opts := pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a date interactively and print it as YYYY-MM-DD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPickCommand(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Dark, "dark", false, "Use the dark colour theme")

	return cmd
}

func runPickCommand(cmd *cobra.Command, root *rootFlags, opts pickOptions) error {
	// The TUI owns the terminal, so logs only go to a configured file.
	s, err := loadSettings(cmd, root, io.Discard)
	if err != nil {
		return err
	}
	defer s.Close()

	if !isInteractive() {
		return errors.New("pick needs an interactive terminal; use grid, format or parse instead")
	}

	if opts.Dark {
		components.SetTheme(components.DarkTheme())
	}

	value, err := pickRunner(s.sessionOptions())
	if err != nil {
		s.log.Error(err, "picker ended without a value")
		return err
	}

	s.log.Info("date picked", "value", value)
	if value != "" {
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}

// runPicker drives the TUI on stderr so stdout only carries the result.
func runPicker(opts picker.Options) (string, error) {
	model, err := tui.NewModel(opts)
	if err != nil {
		return "", err
	}

	final, err := tea.NewProgram(model, tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}

	result, ok := final.(tui.Model)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", final)
	}
	if result.Cancelled() {
		return "", errCancelled
	}
	return result.Value(), nil
}
