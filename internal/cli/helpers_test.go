package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/chalee-dev/chalee/internal/config"
	"github.com/chalee-dev/chalee/internal/core/project"
	"github.com/chalee-dev/chalee/internal/ui"
)

// recordingRunner answers node --version with a supported version and
// records every other command.
type recordingRunner struct {
	mu           sync.Mutex
	calls        []string
	dirs         []string
	installExit  int
	installError string
}

func (r *recordingRunner) Run(_ context.Context, name string, args []string, opts project.RunOpts) (project.CmdResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cmd := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r.calls = append(r.calls, cmd)
	r.dirs = append(r.dirs, opts.Dir)

	if name == "node" {
		return project.CmdResult{Stdout: "v20.11.1\n"}, nil
	}
	return project.CmdResult{ExitCode: r.installExit, Stderr: r.installError}, nil
}

// setupTestDeps installs isolated dependencies: no config file unless
// configYAML is non-empty, headless UI, and a recording runner.
func setupTestDeps(t *testing.T, configYAML string) (*Dependencies, *recordingRunner) {
	t.Helper()

	for _, key := range config.Keys {
		t.Setenv("CHALEE_"+strings.ToUpper(key), "")
	}

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if configYAML != "" {
		if err := os.WriteFile(cfgPath, []byte(configYAML), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}

	theme := ui.NewTheme(ui.ThemeConfig{NoColor: true})
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)
	runner := &recordingRunner{}

	d := &Dependencies{
		ConfigLoader: config.NewLoader(config.WithConfigFile(cfgPath), config.WithEnvFile("")),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Theme:        theme,
		Headless:     hm,
		Progress:     ui.NewProgress(theme, hm),
		Runner:       runner,
		Git:          project.GitInitializer{},
		Filesystem:   func(dir string) billy.Filesystem { return osfs.New(dir) },
	}

	prev := GetDeps()
	SetDeps(d)
	t.Cleanup(func() { SetDeps(prev) })
	return d, runner
}

// resetFlags restores every flag of cmd and its subcommands to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// runCLI executes the root command with args and returns the combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected %s not to exist", path)
	}
}
