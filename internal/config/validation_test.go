package config

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestValidateDefaultConfig(t *testing.T) {
	t.Parallel()

	if err := Validate(NewDefaultConfig()); err != nil {
		t.Errorf("Validate() expected no error for defaults, got: %v", err)
	}
}

func TestValidateFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
		want   error
	}{
		{"framework", func(c *Config) { c.Framework = "angular" }, "framework", ErrInvalidFramework},
		{"package_manager", func(c *Config) { c.PackageManager = "bun" }, "package_manager", ErrInvalidPackageManager},
		{"log_level", func(c *Config) { c.LogLevel = "loud" }, "log_level", ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewDefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}

			var ve *ValidationErrors
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationErrors, got %T", err)
			}
			if len(ve.Errors) != 1 || ve.Errors[0].Field != tt.field {
				t.Errorf("errors = %+v, want one for %s", ve.Errors, tt.field)
			}
		})
	}
}

func TestValidateAcceptsMenuNumbers(t *testing.T) {
	t.Parallel()

	cfg := NewDefaultConfig()
	cfg.Framework = "2"
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	e := &ValidationError{Field: "framework", Message: "bad", Value: "x", Wrapped: ErrInvalidFramework}
	if !strings.Contains(e.Error(), `field "framework"`) || !strings.Contains(e.Error(), "got: x") {
		t.Errorf("Error() = %q", e.Error())
	}
	if !errors.Is(e, ErrInvalidFramework) {
		t.Error("ValidationError must unwrap to its sentinel")
	}
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range tests {
		cfg := &Config{LogLevel: in}
		if got := cfg.SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
