package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datepick/internal/calendar"
	"github.com/alexisbeaulieu97/datepick/internal/config"
	"github.com/alexisbeaulieu97/datepick/internal/logger"
	"github.com/alexisbeaulieu97/datepick/internal/picker"
)

// clock is the time source of every command. Tests pin it.
var clock calendar.Clock = calendar.SystemClock{}

type settings struct {
	cfg    *config.Config
	locale calendar.Locale
	log    *logger.Logger
	closer io.Closer
}

// loadSettings merges the config file, flags and defaults, then builds the
// logger. Logs go to cfg.Log.File when set, otherwise to logOut.
func loadSettings(cmd *cobra.Command, flags *rootFlags, logOut io.Writer) (*settings, error) {
	cfg := config.Default()
	if strings.TrimSpace(flags.configPath) != "" {
		if err := validateConfigPath(flags.configPath); err != nil {
			return nil, err
		}
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	applyFlags(cmd, flags, cfg)
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	locale, err := cfg.LocaleFamily()
	if err != nil {
		return nil, err
	}

	s := &settings{cfg: cfg, locale: locale}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		logOut = f
		s.closer = f
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        logOut,
		Component:     cmd.Name(),
	})
	if err != nil {
		s.Close()
		return nil, err
	}
	s.log = log
	return s, nil
}

// sessionOptions describes a picker session for the loaded settings.
func (s *settings) sessionOptions() picker.Options {
	return picker.Options{
		Value:  s.cfg.Value,
		Min:    s.cfg.Min,
		Max:    s.cfg.Max,
		Locale: s.locale,
		Clock:  clock,
		Logger: s.log,
	}
}

func (s *settings) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
