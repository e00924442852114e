package config

import (
	"github.com/alexisbeaulieu97/datepick/internal/calendar"
)

// Config is the picker configuration document.
type Config struct {
	Locale string      `yaml:"locale" validate:"required,locale"`
	Value  string      `yaml:"value,omitempty" validate:"omitempty,isodate"`
	Min    string      `yaml:"min,omitempty" validate:"omitempty,isodate"`
	Max    string      `yaml:"max,omitempty" validate:"omitempty,isodate"`
	Log    LogSettings `yaml:"log,omitempty"`
}

// LogSettings controls the zerolog output of the picker.
type LogSettings struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
	// File receives log output; empty means stderr.
	File string `yaml:"file,omitempty"`
}

// Default returns an English, unbounded configuration logging at info level.
func Default() *Config {
	return &Config{
		Locale: "en",
		Log:    LogSettings{Level: "info"},
	}
}

// LocaleFamily resolves the configured tag. Validated configs never fail.
func (c *Config) LocaleFamily() (calendar.Locale, error) {
	return calendar.ParseLocale(c.Locale)
}
