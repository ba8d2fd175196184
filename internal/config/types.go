package config

import (
	"log/slog"
	"strings"
)

// Config holds the defaults applied to "chalee create" when a flag is not given.
type Config struct {
	Framework      string `yaml:"framework" mapstructure:"framework"`
	TypeScript     bool   `yaml:"typescript" mapstructure:"typescript"`
	PackageManager string `yaml:"package_manager" mapstructure:"package_manager"`
	Install        bool   `yaml:"install" mapstructure:"install"`
	Git            bool   `yaml:"git" mapstructure:"git"`
	LogLevel       string `yaml:"log_level" mapstructure:"log_level"`

	// Source is the config file that was read, empty when none existed.
	Source string `yaml:"-" mapstructure:"-"`
}

// Keys lists the configuration keys in display order.
var Keys = []string{
	"framework",
	"typescript",
	"package_manager",
	"install",
	"git",
	"log_level",
}

// SlogLevel maps LogLevel to a slog level. Unknown values map to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
