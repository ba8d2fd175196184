package config

import "github.com/chalee-dev/chalee/pkg/models"

// Default value constants.
const (
	DefaultFramework      = string(models.FrameworkVue)
	DefaultTypeScript     = false
	DefaultPackageManager = "npm"
	DefaultInstall        = true
	DefaultGit            = false
	DefaultLogLevel       = "info"
)

// NewDefaultConfig returns a Config with every default applied.
func NewDefaultConfig() *Config {
	return &Config{
		Framework:      DefaultFramework,
		TypeScript:     DefaultTypeScript,
		PackageManager: DefaultPackageManager,
		Install:        DefaultInstall,
		Git:            DefaultGit,
		LogLevel:       DefaultLogLevel,
	}
}

// defaultValues returns the defaults keyed like the config file.
func defaultValues() map[string]any {
	d := NewDefaultConfig()
	return map[string]any{
		"framework":       d.Framework,
		"typescript":      d.TypeScript,
		"package_manager": d.PackageManager,
		"install":         d.Install,
		"git":             d.Git,
		"log_level":       d.LogLevel,
	}
}
