package cli

import (
	"strings"
	"testing"
)

func TestConfigShow(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setupTestDeps(t, "")
		out, err := runCLI(t, "config", "show")
		if err != nil {
			t.Fatalf("config show error = %v", err)
		}
		for _, want := range []string{"# source: defaults", "framework: vue", "typescript: false", "package_manager: npm", "install: true"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("file_and_env", func(t *testing.T) {
		setupTestDeps(t, "framework: react\n")
		t.Setenv("CHALEE_PACKAGE_MANAGER", "pnpm")

		out, err := runCLI(t, "config", "show")
		if err != nil {
			t.Fatalf("config show error = %v", err)
		}
		for _, want := range []string{"config.yaml", "framework: react", "package_manager: pnpm"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("invalid_config", func(t *testing.T) {
		setupTestDeps(t, "framework: svelte\n")
		if _, err := runCLI(t, "config", "show"); err == nil {
			t.Error("expected error for invalid framework in config")
		}
	})
}

func TestConfigPath(t *testing.T) {
	setupTestDeps(t, "")
	out, err := runCLI(t, "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if !strings.Contains(out, ".chalee") {
		t.Errorf("config path = %q", out)
	}
}
