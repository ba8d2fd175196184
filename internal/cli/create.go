package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/spf13/cobra"

	"github.com/chalee-dev/chalee/internal/cli/wizard"
	"github.com/chalee-dev/chalee/internal/config"
	"github.com/chalee-dev/chalee/internal/core/project"
	"github.com/chalee-dev/chalee/internal/template"
	"github.com/chalee-dev/chalee/internal/ui"
	"github.com/chalee-dev/chalee/pkg/models"
)

// errMissingName is returned when no project name is available and the
// wizard cannot run.
var errMissingName = errors.New("project name is required in non-interactive mode")

var createCmd = &cobra.Command{
	Use:     "create [project-name]",
	Aliases: []string{"new"},
	Short:   "Create a new front-end project",
	Long: `Create a new Vue or React project bundled with Webpack and styled with
Tailwind CSS, in JavaScript or TypeScript.

The project is created in a directory named after the project inside
--dir (default: the current directory). Existing files with the same
paths are overwritten.

Answers not given as flags are asked interactively when a terminal is
attached. Otherwise they fall back to the configured defaults.`,
	Example: `  chalee create shop
  chalee create shop --framework react --typescript
  chalee new admin --framework vue --dry-run
  chalee create api-ui --non-interactive --skip-install --git`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateCreateFlags,
	RunE:    runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().String("framework", "", "UI framework (vue, react)")
	createCmd.Flags().Bool("typescript", false, "Generate a TypeScript project (--typescript=false for JavaScript)")
	createCmd.Flags().String("dir", "", "Parent directory of the new project (default: current directory)")
	createCmd.Flags().String("package-manager", "", "Package manager used to install dependencies (npm, yarn, pnpm)")
	createCmd.Flags().Bool("skip-install", false, "Do not install dependencies")
	createCmd.Flags().Bool("git", false, "Initialize a git repository in the new project")
	createCmd.Flags().Bool("non-interactive", false, "Never prompt; use flags and configured defaults")
	createCmd.Flags().Bool("dry-run", false, "Generate in memory and list the files without writing them")
	createCmd.Flags().BoolP("verbose", "v", false, "Log scaffolding steps to stderr")
}

// validateCreateFlags rejects invalid flag values before anything runs.
func validateCreateFlags(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := models.ValidateProjectName(args[0]); err != nil {
			return err
		}
	}

	if fw := getStringFlag(cmd, "framework"); fw != "" {
		if _, err := models.ParseFramework(fw); err != nil {
			return err
		}
	}

	if pm := getStringFlag(cmd, "package-manager"); pm != "" {
		valid := make([]string, 0, len(project.SupportedPackageManagers()))
		for _, p := range project.SupportedPackageManagers() {
			valid = append(valid, p.String())
		}
		if !slices.Contains(valid, pm) {
			return fmt.Errorf("invalid --package-manager %q: must be one of %s", pm, strings.Join(valid, ", "))
		}
	}

	if dir := getStringFlag(cmd, "dir"); dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("invalid --dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("invalid --dir: %s is not a directory", dir)
		}
	}

	return nil
}

// createInput is the fully resolved input of one create run.
type createInput struct {
	Name      models.ProjectIdentity
	Choice    models.BuildChoice
	ParentDir string
	PM        project.PackageManager
	Install   bool
	Git       bool
	DryRun    bool
}

func runCreate(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	out := cmd.OutOrStdout()

	cfg, err := deps.EnsureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if getBoolFlag(cmd, "verbose") {
		deps.EnableLogging(slog.LevelDebug)
	} else if cfg.LogLevel == "debug" {
		deps.EnableLogging(cfg.SlogLevel())
	}

	in, err := resolveCreateInput(cmd, args, cfg)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(out, "Project creation cancelled.")
			return nil
		}
		return err
	}

	var fsys billy.Filesystem
	var installer project.Installer
	var repo project.RepoInitializer
	if in.DryRun {
		fsys = memfs.New()
	} else {
		fsys = deps.Filesystem(in.ParentDir)
		if in.Install {
			installer = deps.Installer(in.PM)
		}
		if in.Git {
			repo = deps.Git
		}
	}

	scaffolder, err := deps.Scaffolder(fsys, installer, repo)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := scaffolder.Scaffold(ctx, project.ScaffoldOptions{
		ParentDir:   in.ParentDir,
		ProjectName: in.Name,
		Choice:      in.Choice,
		SkipInstall: !in.Install,
		InitGit:     in.Git,
		Version:     generatorVersion(),
	})
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	if in.DryRun {
		printDryRun(out, in, result)
		return nil
	}
	printCreateSummary(out, in, result)
	return nil
}

// resolveCreateInput merges flags, configuration and wizard answers.
// Flags win; the wizard asks for whatever flags left open and preselects
// the configured defaults; without a terminal the defaults are taken as is.
func resolveCreateInput(cmd *cobra.Command, args []string, cfg *config.Config) (*createInput, error) {
	prefill := wizard.Prefill{
		Framework:          getStringFlag(cmd, "framework"),
		DefaultProjectName: "my-app",
		DefaultFramework:   cfg.Framework,
		DefaultTypeScript:  cfg.TypeScript,
	}
	if len(args) == 1 {
		prefill.ProjectName = args[0]
	}
	if cmd.Flags().Changed("typescript") {
		typed := getBoolFlag(cmd, "typescript")
		prefill.TypeScript = &typed
	}

	answers := prefill.Initial()
	interactive := !getBoolFlag(cmd, "non-interactive") && !deps.Headless.IsHeadless() && ui.IsTerminal(os.Stdin)
	if questions := wizard.Questions(prefill); len(questions) > 0 && interactive {
		res, err := wizard.Run(questions, answers)
		if err != nil {
			return nil, err
		}
		answers = *res
	}

	if answers.ProjectName == "" {
		return nil, errMissingName
	}
	if err := models.ValidateProjectName(answers.ProjectName); err != nil {
		return nil, err
	}
	framework, err := models.ParseFramework(answers.Framework)
	if err != nil {
		return nil, err
	}

	pmName := getStringFlag(cmd, "package-manager")
	if pmName == "" {
		pmName = cfg.PackageManager
	}
	pm, err := project.ParsePackageManager(pmName)
	if err != nil {
		return nil, err
	}

	parent := getStringFlag(cmd, "dir")
	if parent == "" {
		parent = "."
	}
	parent, err = filepath.Abs(parent)
	if err != nil {
		return nil, fmt.Errorf("resolve parent directory: %w", err)
	}

	return &createInput{
		Name:      models.ProjectIdentity(answers.ProjectName),
		Choice:    models.BuildChoice{Framework: framework, Typed: answers.TypeScript},
		ParentDir: parent,
		PM:        pm,
		Install:   !boolFlagOr(cmd, "skip-install", !cfg.Install),
		Git:       boolFlagOr(cmd, "git", cfg.Git),
		DryRun:    getBoolFlag(cmd, "dry-run"),
	}, nil
}

func languageLabel(typed bool) string {
	if typed {
		return "TypeScript"
	}
	return "JavaScript"
}

func printCreateSummary(out io.Writer, in *createInput, result *project.ScaffoldResult) {
	pairs := []kvPair{
		{"Directory", result.ProjectDir},
		{"Framework", template.FrameworkTitle(in.Choice.Framework)},
		{"Language", languageLabel(in.Choice.Typed)},
		{"Styling", "Tailwind CSS"},
		{"Bundler", "Webpack"},
		{"Files", fmt.Sprintf("%d", len(result.CreatedFiles))},
		{"Directories", fmt.Sprintf("%d", len(result.CreatedDirs))},
	}
	if result.Installed {
		pairs = append(pairs, kvPair{"Dependencies", "installed with " + in.PM.String()})
	}
	if result.GitInitialized {
		pairs = append(pairs, kvPair{"Git", "repository initialized"})
	}

	_, _ = fmt.Fprintln(out, renderSuccessCard(
		fmt.Sprintf("Project %s created", in.Name),
		renderKeyValueLines(pairs),
	))

	for _, w := range result.Warnings {
		_, _ = fmt.Fprintln(out, symWarning()+" "+cliWarn.Render("Warning: "+w))
	}
	if result.FollowUp != "" {
		_, _ = fmt.Fprintln(out, cliMuted.Render("Retry with: "+result.FollowUp))
	}

	_, _ = fmt.Fprint(out, renderMarkdown(nextStepsMarkdown(in, result), 0))
}

// nextStepsMarkdown lists the commands to run after generation.
func nextStepsMarkdown(in *createInput, result *project.ScaffoldResult) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	if result.FollowUp != "" {
		fmt.Fprintf(&b, "- `%s`\n", result.FollowUp)
	} else {
		fmt.Fprintf(&b, "- `cd %s`\n", in.Name)
		if !result.Installed {
			fmt.Fprintf(&b, "- `%s install`\n", in.PM)
		}
	}
	fmt.Fprintf(&b, "- `%s` starts the dev server\n", in.PM.RunScript("dev"))
	fmt.Fprintf(&b, "- `%s` writes a production bundle to `dist/`\n", in.PM.RunScript("build"))
	if in.Choice.Typed {
		fmt.Fprintf(&b, "- `%s` checks types without emitting\n", in.PM.RunScript("type-check"))
	}
	return b.String()
}

// printDryRun lists what would be generated.
func printDryRun(out io.Writer, in *createInput, result *project.ScaffoldResult) {
	_, _ = fmt.Fprintln(out, renderCard(
		fmt.Sprintf("Dry run: %s (%s)", in.Name, in.Choice),
		cliMuted.Render("Nothing was written to "+result.ProjectDir),
	))
	for _, d := range result.CreatedDirs {
		_, _ = fmt.Fprintln(out, d+"/")
	}
	for _, f := range result.CreatedFiles {
		_, _ = fmt.Fprintln(out, f)
	}
}

// spinnerInstaller shows a spinner while the wrapped installer runs.
type spinnerInstaller struct {
	inner    project.Installer
	progress ui.Progress
	current  ui.Spinner // set while Install runs
}

func (s *spinnerInstaller) Install(ctx context.Context, dir string) error {
	s.current = s.progress.Spinner("Installing dependencies (" + s.inner.Command() + ")")
	defer func() {
		s.current.Stop()
		s.current = nil
	}()
	return s.inner.Install(ctx, dir)
}

// retrying retitles the running spinner before a retry.
func (s *spinnerInstaller) retrying(attempt int) {
	if s.current != nil {
		s.current.SetTitle(fmt.Sprintf("Retrying dependency installation (attempt %d)", attempt+1))
	}
}

func (s *spinnerInstaller) Command() string {
	return s.inner.Command()
}

// boolFlagOr returns the flag value when it was set on the command line,
// otherwise fallback.
func boolFlagOr(cmd *cobra.Command, name string, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		return getBoolFlag(cmd, name)
	}
	return fallback
}

// getStringFlag returns a string flag value, or "" if the flag is unknown.
func getStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return v
}

// getBoolFlag returns a bool flag value, or false if the flag is unknown.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return v
}
