package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/chalee-dev/chalee/internal/resilience"
)

// PackageManager names a supported node package manager.
type PackageManager string

const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPNPM PackageManager = "pnpm"
)

// SupportedPackageManagers returns the package managers in menu order.
func SupportedPackageManagers() []PackageManager {
	return []PackageManager{PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM}
}

// ParsePackageManager resolves a package manager name case-insensitively.
func ParsePackageManager(s string) (PackageManager, error) {
	pm := PackageManager(strings.ToLower(strings.TrimSpace(s)))
	switch pm {
	case PackageManagerNPM, PackageManagerYarn, PackageManagerPNPM:
		return pm, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPackageManager, s)
}

// String returns the binary name.
func (pm PackageManager) String() string {
	return string(pm)
}

// RunScript returns the command line that runs a package.json script.
func (pm PackageManager) RunScript(script string) string {
	return string(pm) + " run " + script
}

// Installer installs the dependencies of a generated project.
type Installer interface {
	// Install runs in dir, the project root. A failure is reported to the
	// user but does not invalidate the generated tree.
	Install(ctx context.Context, dir string) error

	// Command is the command the user can run to finish a failed install.
	Command() string
}

// MinNodeVersion is the oldest node.js release the generated toolchain supports.
const MinNodeVersion = ">= 16.0.0"

// minNodeConstraint is MinNodeVersion parsed once.
var minNodeConstraint = mustConstraint(MinNodeVersion)

func mustConstraint(c string) *semver.Constraints {
	parsed, err := semver.NewConstraint(c)
	if err != nil {
		panic(fmt.Sprintf("node constraint %q: %v", c, err))
	}
	return parsed
}

// stderrTailLines bounds how much package manager output ends up in an error.
const stderrTailLines = 5

// errTransient marks an install failure caused by the network.
var errTransient = errors.New("transient network failure")

// transientMarkers are npm/yarn/pnpm error codes worth a retry.
var transientMarkers = []string{"ETIMEDOUT", "ECONNRESET", "EAI_AGAIN", "ECONNREFUSED", "socket hang up"}

// defaultInstallRetry retries a network failure once.
var defaultInstallRetry = resilience.RetryPolicy{
	MaxRetries: 1,
	BaseDelay:  2 * time.Second,
	MaxDelay:   10 * time.Second,
	Retryable:  func(err error) bool { return errors.Is(err, errTransient) },
}

// installEnv silences the funding, audit and update notices npm-compatible
// package managers print after an install.
var installEnv = map[string]string{
	"npm_config_fund":            "false",
	"npm_config_audit":           "false",
	"npm_config_update_notifier": "false",
}

// PackageManagerInstaller runs "<pm> install" after checking the node.js version.
type PackageManagerInstaller struct {
	pm      PackageManager
	runner  CommandRunner
	logger  *slog.Logger
	retry   resilience.RetryPolicy
	onRetry func(attempt int)
}

// InstallerOption configures a PackageManagerInstaller.
type InstallerOption func(*PackageManagerInstaller)

// WithRunner replaces the command runner.
func WithRunner(r CommandRunner) InstallerOption {
	return func(i *PackageManagerInstaller) { i.runner = r }
}

// WithInstallLogger sets the logger.
func WithInstallLogger(l *slog.Logger) InstallerOption {
	return func(i *PackageManagerInstaller) {
		if l != nil {
			i.logger = l
		}
	}
}

// WithRetryPolicy replaces the retry policy for transient failures.
func WithRetryPolicy(p resilience.RetryPolicy) InstallerOption {
	return func(i *PackageManagerInstaller) { i.retry = p }
}

// WithRetryNotify registers fn, called before every retry with the
// zero-based attempt number.
func WithRetryNotify(fn func(attempt int)) InstallerOption {
	return func(i *PackageManagerInstaller) { i.onRetry = fn }
}

// NewPackageManagerInstaller creates an installer for pm.
func NewPackageManagerInstaller(pm PackageManager, opts ...InstallerOption) *PackageManagerInstaller {
	i := &PackageManagerInstaller{
		pm:     pm,
		runner: ExecRunner{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		retry:  defaultInstallRetry,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Command returns "<pm> install".
func (i *PackageManagerInstaller) Command() string {
	return string(i.pm) + " install"
}

// CheckNode returns the installed node.js version, failing with ErrNodeVersion
// if it does not satisfy MinNodeVersion.
func (i *PackageManagerInstaller) CheckNode(ctx context.Context) (*semver.Version, error) {
	res, err := i.runner.Run(ctx, "node", []string{"--version"}, RunOpts{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("%w: node --version exited with %d", ErrNodeNotFound, res.ExitCode)
	}

	raw := strings.TrimSpace(res.Stdout)
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %q", ErrNodeVersion, raw)
	}
	if !minNodeConstraint.Check(v) {
		return v, fmt.Errorf("%w: found %s, need %s", ErrNodeVersion, v, MinNodeVersion)
	}
	return v, nil
}

// Install checks node.js, then runs the package manager in dir. Network
// failures are retried according to the retry policy.
func (i *PackageManagerInstaller) Install(ctx context.Context, dir string) error {
	v, err := i.CheckNode(ctx)
	if err != nil {
		return err
	}
	i.logger.Debug("node.js detected", "version", v.String())

	return resilience.Retry(ctx, i.retry, func(attempt int) error {
		if attempt > 0 {
			i.logger.Info("retrying dependency installation", "attempt", attempt+1)
			if i.onRetry != nil {
				i.onRetry(attempt)
			}
		}
		return i.runOnce(ctx, dir)
	})
}

func (i *PackageManagerInstaller) runOnce(ctx context.Context, dir string) error {
	start := time.Now()
	res, err := i.runner.Run(ctx, string(i.pm), []string{"install"}, RunOpts{Dir: dir, Env: installEnv})
	if err != nil {
		return fmt.Errorf("%w: run %s: %v", ErrInstallFailed, i.Command(), err)
	}
	if res.ExitCode == 0 {
		i.logger.Info("dependencies installed", "package_manager", i.pm, "duration", time.Since(start).Round(time.Millisecond))
		return nil
	}

	tail := lastLines(res.Stderr, stderrTailLines)
	if isTransient(res.Stderr) {
		return fmt.Errorf("%w: %w: %s exited with %d: %s", ErrInstallFailed, errTransient, i.Command(), res.ExitCode, tail)
	}
	return fmt.Errorf("%w: %s exited with %d: %s", ErrInstallFailed, i.Command(), res.ExitCode, tail)
}

func isTransient(stderr string) bool {
	for _, m := range transientMarkers {
		if strings.Contains(stderr, m) {
			return true
		}
	}
	return false
}

// lastLines returns the last n non-empty lines of s joined by " | ".
func lastLines(s string, n int) string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, " | ")
}
