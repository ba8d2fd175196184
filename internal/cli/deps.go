// Package cli provides the Cobra command tree and dependency injection
// wiring for the chalee CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/chalee-dev/chalee/internal/config"
	"github.com/chalee-dev/chalee/internal/core/project"
	"github.com/chalee-dev/chalee/internal/template"
	"github.com/chalee-dev/chalee/internal/ui"
	"github.com/chalee-dev/chalee/pkg/version"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	ConfigLoader *config.Loader
	Logger       *slog.Logger
	Theme        *ui.Theme
	Headless     *ui.HeadlessManager
	Progress     ui.Progress
	Runner       project.CommandRunner
	Git          project.RepoInitializer

	// Filesystem opens the directory new projects are created in.
	Filesystem func(parentDir string) billy.Filesystem

	configOnce sync.Once
	config     *config.Config
	configErr  error

	composerOnce sync.Once
	composer     *template.Composer
	composerErr  error
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// @MX:ANCHOR: [AUTO] InitDependencies is the Composition Root that wires all domain modules
// @MX:REASON: [AUTO] fan_in=3, called from root.go, deps_test.go and the create tests
// InitDependencies creates and wires all domain dependencies.
// Config and templates are loaded lazily on first use.
func InitDependencies() {
	theme := ui.NewTheme(ui.ThemeConfig{})
	hm := ui.NewHeadlessManager()

	deps = &Dependencies{
		ConfigLoader: config.NewLoader(),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Theme:        theme,
		Headless:     hm,
		Progress:     ui.NewProgress(theme, hm),
		Runner:       project.ExecRunner{},
		Git:          project.GitInitializer{},
		Filesystem:   func(dir string) billy.Filesystem { return osfs.New(dir) },
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// EnsureConfig loads the configuration once and returns the cached result.
func (d *Dependencies) EnsureConfig() (*config.Config, error) {
	d.configOnce.Do(func() {
		d.config, d.configErr = d.ConfigLoader.Load()
		if d.configErr == nil {
			d.Logger.Debug("configuration loaded", "source", d.config.Source)
		}
	})
	return d.config, d.configErr
}

// EnsureComposer builds the composer over the embedded templates once.
func (d *Dependencies) EnsureComposer() (*template.Composer, error) {
	d.composerOnce.Do(func() {
		d.composer, d.composerErr = template.NewEmbeddedComposer()
	})
	return d.composer, d.composerErr
}

// EnableLogging replaces the discard logger with a stderr text handler at level.
func (d *Dependencies) EnableLogging(level slog.Level) {
	d.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Scaffolder wires a project.Scaffolder writing into fsys. A nil installer
// or repo initializer disables that post-generation step.
func (d *Dependencies) Scaffolder(fsys billy.Filesystem, installer project.Installer, repo project.RepoInitializer) (project.Scaffolder, error) {
	composer, err := d.EnsureComposer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	opts := []project.ScaffolderOption{project.WithLogger(d.Logger)}
	if installer != nil {
		opts = append(opts, project.WithInstaller(installer))
	}
	if repo != nil {
		opts = append(opts, project.WithRepoInitializer(repo))
	}
	return project.NewScaffolder(composer, fsys, opts...), nil
}

// Installer returns the dependency installer for pm, reporting progress
// through a spinner.
func (d *Dependencies) Installer(pm project.PackageManager) project.Installer {
	s := &spinnerInstaller{progress: d.Progress}
	s.inner = project.NewPackageManagerInstaller(pm,
		project.WithRunner(d.Runner),
		project.WithInstallLogger(d.Logger),
		project.WithRetryNotify(s.retrying),
	)
	return s
}

// generatorVersion is written into the generated webpack.config.js header.
func generatorVersion() string {
	return version.GetVersion()
}
