package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/datepick/internal/calendar"
	apperrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, ok := calendar.ParseISO(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
			_, err := calendar.ParseLocale(fl.Field().String())
			return err == nil
		})

		v.RegisterStructValidation(func(sl validator.StructLevel) {
			cfg := sl.Current().Interface().(Config)
			min, minOK := calendar.ParseISO(cfg.Min)
			max, maxOK := calendar.ParseISO(cfg.Max)
			if minOK && maxOK && min.After(max) {
				sl.ReportError(cfg.Max, "max", "Max", "gtefield_min", cfg.Min)
			}
		}, Config{})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig checks field formats and that min is not after max.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

var tagMessages = map[string]string{
	"required":     "is required",
	"isodate":      "must be an ISO calendar date (YYYY-MM-DD)",
	"locale":       "must be a supported locale (en, es)",
	"oneof":        "must be one of debug, info, warn, error",
	"gtefield_min": "must not be before min",
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg, known := tagMessages[ve.Tag()]
		if !known {
			msg = fmt.Sprintf("failed validation for tag '%s'", ve.Tag())
		}
		return &apperrors.ValidationError{Field: field, Value: fmt.Sprint(ve.Value()), Message: msg, Err: err}
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace: "Config.log.level" becomes "log.level".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
