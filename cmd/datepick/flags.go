package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datepick/internal/config"
)

func validateConfigPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}

// applyFlags overlays explicitly set command-line flags on cfg.
func applyFlags(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("locale") {
		cfg.Locale = flags.locale
	}
	if fs.Changed("value") {
		cfg.Value = flags.value
	}
	if fs.Changed("min") {
		cfg.Min = flags.min
	}
	if fs.Changed("max") {
		cfg.Max = flags.max
	}
	if fs.Changed("human") {
		cfg.Log.HumanReadable = flags.humanReadable
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
}
