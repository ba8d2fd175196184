package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// isolate clears every CHALEE_* variable for the test and restores it afterwards.
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{"FRAMEWORK", "TYPESCRIPT", "PACKAGE_MANAGER", "INSTALL", "GIT", "LOG_LEVEL"} {
		name := "CHALEE_" + key
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatal(err)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	cfg, err := NewLoader(
		WithConfigFile(filepath.Join(dir, "missing.yaml")),
		WithEnvFile(""),
	).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := NewDefaultConfig()
	if *cfg != *want {
		t.Errorf("Load() = %+v, want %+v", *cfg, *want)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty", cfg.Source)
	}
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "framework: react\ntypescript: true\npackage_manager: pnpm\ngit: true\n")

	cfg, err := NewLoader(WithConfigFile(path), WithEnvFile("")).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Framework != "react" || !cfg.TypeScript || cfg.PackageManager != "pnpm" || !cfg.Git {
		t.Errorf("Load() = %+v", *cfg)
	}
	if !cfg.Install {
		t.Error("Install default must survive a partial file")
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "framework: react\ninstall: true\n")

	t.Setenv("CHALEE_FRAMEWORK", "vue")
	t.Setenv("CHALEE_INSTALL", "false")

	cfg, err := NewLoader(WithConfigFile(path), WithEnvFile("")).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Framework != "vue" {
		t.Errorf("Framework = %q, want vue", cfg.Framework)
	}
	if cfg.Install {
		t.Error("Install = true, want false from environment")
	}
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "CHALEE_PACKAGE_MANAGER=yarn\nCHALEE_LOG_LEVEL=debug\n")

	cfg, err := NewLoader(
		WithConfigFile(filepath.Join(dir, "none.yaml")),
		WithEnvFile(envFile),
	).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PackageManager != "yarn" {
		t.Errorf("PackageManager = %q, want yarn", cfg.PackageManager)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "CHALEE_FRAMEWORK=vue\n")
	t.Setenv("CHALEE_FRAMEWORK", "react")

	cfg, err := NewLoader(WithConfigFile(filepath.Join(dir, "none.yaml")), WithEnvFile(envFile)).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Framework != "react" {
		t.Errorf("Framework = %q, want react", cfg.Framework)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "framework: [unclosed\n")

	_, err := NewLoader(WithConfigFile(path), WithEnvFile("")).Load()
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("expected ErrInvalidYAML, got: %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "framework: svelte\npackage_manager: bun\n")

	_, err := NewLoader(WithConfigFile(path), WithEnvFile("")).Load()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got: %v", err)
	}
	if !errors.Is(err, ErrInvalidFramework) || !errors.Is(err, ErrInvalidPackageManager) {
		t.Errorf("expected both field errors, got: %v", err)
	}
}
