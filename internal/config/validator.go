package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	correctoerrors "github.com/alexisbeaulieu97/correcto/pkg/errors"
)

const (
	minTimeout = time.Second
	maxTimeout = 10 * time.Minute
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("executable_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			if strings.TrimSpace(path) == "" {
				return false
			}
			return !strings.Contains(path, "\x00")
		})

		_ = v.RegisterValidation("timeout_range", func(fl validator.FieldLevel) bool {
			d := time.Duration(fl.Field().Int())
			return d >= minTimeout && d <= maxTimeout
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return correctoerrors.NewValidationError("config", "configuration is empty", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return correctoerrors.NewValidationError(field, describeFailure(ve), err)
	}

	return correctoerrors.NewValidationError("config", err.Error(), err)
}

func describeFailure(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "executable_path":
		return "must name an executable"
	case "timeout_range":
		return fmt.Sprintf("must be between %s and %s", minTimeout, maxTimeout)
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

// yamlishFieldName drops the root struct name, leaving e.g. "checker.timeout".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
