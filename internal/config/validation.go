package config

import (
	"strings"

	"github.com/chalee-dev/chalee/internal/core/project"
	"github.com/chalee-dev/chalee/pkg/models"
)

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks every field and reports all problems at once.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if _, err := models.ParseFramework(cfg.Framework); err != nil {
		errs = append(errs, ValidationError{
			Field:   "framework",
			Message: "must be one of: vue, react",
			Value:   cfg.Framework,
			Wrapped: ErrInvalidFramework,
		})
	}

	if _, err := project.ParsePackageManager(cfg.PackageManager); err != nil {
		errs = append(errs, ValidationError{
			Field:   "package_manager",
			Message: "must be one of: npm, yarn, pnpm",
			Value:   cfg.PackageManager,
			Wrapped: ErrInvalidPackageManager,
		})
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: "must be one of: debug, info, warn, error",
			Value:   cfg.LogLevel,
			Wrapped: ErrInvalidLogLevel,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
