package template

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chalee-dev/chalee/pkg/models"
)

// TemplateContext provides data for template rendering.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	// Identity
	ProjectName string

	// Build choice
	Framework models.Framework
	Typed     bool

	// Derived from the build choice
	FrameworkTitle string // "Vue", "React"
	RuntimeLabel   string // "Vue 3", "React 18"
	EntryFile      string // "index.js", "index.ts", "index.tsx"
	ComponentExt   string // "vue", "jsx", "tsx"

	// Meta
	Version string // chalee version that generated the project
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// runtimeMajor is the major version of each framework runtime pinned in package.json.
var runtimeMajor = map[models.Framework]string{
	models.FrameworkVue:   "3",
	models.FrameworkReact: "18",
}

// NewTemplateContext creates a TemplateContext with defaults, applies the
// options, then fills in the fields derived from the build choice.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		Framework: models.FrameworkVue,
		Version:   "dev",
	}

	for _, opt := range opts {
		opt(ctx)
	}

	ctx.FrameworkTitle = FrameworkTitle(ctx.Framework)
	ctx.RuntimeLabel = ctx.FrameworkTitle + " " + runtimeMajor[ctx.Framework]
	ctx.EntryFile = entryFile(ctx.Framework, ctx.Typed)
	ctx.ComponentExt = componentExt(ctx.Framework, ctx.Typed)

	return ctx
}

// WithProject sets the project name.
func WithProject(name models.ProjectIdentity) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = name.String()
	}
}

// WithBuildChoice sets the framework and language mode.
func WithBuildChoice(choice models.BuildChoice) ContextOption {
	return func(c *TemplateContext) {
		c.Framework = choice.Framework
		c.Typed = choice.Typed
	}
}

// WithVersion sets the generator version.
func WithVersion(version string) ContextOption {
	return func(c *TemplateContext) {
		if version != "" {
			c.Version = version
		}
	}
}

// Choice returns the build choice the context was created from.
func (c *TemplateContext) Choice() models.BuildChoice {
	return models.BuildChoice{Framework: c.Framework, Typed: c.Typed}
}

// FrameworkTitle returns the display name of a framework, e.g. "React".
func FrameworkTitle(f models.Framework) string {
	return cases.Title(language.English).String(string(f))
}

// entryFile returns the entry point file name inside src/.
func entryFile(f models.Framework, typed bool) string {
	switch {
	case !typed:
		return "index.js"
	case f == models.FrameworkReact:
		return "index.tsx"
	default:
		return "index.ts"
	}
}

// componentExt returns the extension shared by all component files.
func componentExt(f models.Framework, typed bool) string {
	switch {
	case f == models.FrameworkVue:
		return "vue"
	case typed:
		return "tsx"
	default:
		return "jsx"
	}
}
