package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/chalee-dev/chalee/internal/defs"
)

// Loader reads configuration from the config file, a dotenv file and the
// environment. Environment variables win over the file; flags are applied by
// the caller on top of the result.
type Loader struct {
	configFile string
	envFile    string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigFile overrides the config file path.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) { l.configFile = path }
}

// WithEnvFile overrides the dotenv file path. An empty path disables dotenv loading.
func WithEnvFile(path string) LoaderOption {
	return func(l *Loader) { l.envFile = path }
}

// NewLoader creates a Loader for ~/.chalee/config.yaml and ./.env.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		configFile: FilePath(),
		envFile:    defs.EnvFile,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Dir returns the configuration directory (~/.chalee).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", defs.ConfigDir)
	}
	return filepath.Join(home, defs.ConfigDir)
}

// FilePath returns the default config file path (~/.chalee/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), defs.ConfigFile)
}

// Load returns the validated configuration. A missing config or dotenv file
// is not an error.
func (l *Loader) Load() (*Config, error) {
	if l.envFile != "" {
		// Existing environment variables are never overridden.
		_ = godotenv.Load(l.envFile)
	}

	v := viper.New()
	v.SetConfigFile(l.configFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(defs.EnvPrefix)
	v.AutomaticEnv()
	for key, value := range defaultValues() {
		v.SetDefault(key, value)
	}

	source := l.configFile
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, l.configFile, err)
		}
		source = ""
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Source = source

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
