package wizard

import (
	"github.com/chalee-dev/chalee/internal/template"
	"github.com/chalee-dev/chalee/pkg/models"
)

// Prefill describes what is already known before the wizard runs.
// Only the missing answers are asked.
type Prefill struct {
	ProjectName string // asked when empty
	Framework   string // asked when empty
	TypeScript  *bool  // asked when nil

	DefaultProjectName string
	DefaultFramework   string
	DefaultTypeScript  bool
}

// Initial returns the result the wizard starts from.
func (p Prefill) Initial() Result {
	r := Result{
		ProjectName: p.ProjectName,
		Framework:   p.Framework,
		TypeScript:  p.DefaultTypeScript,
	}
	if r.Framework == "" {
		r.Framework = p.DefaultFramework
	}
	if p.TypeScript != nil {
		r.TypeScript = *p.TypeScript
	}
	return r
}

// Questions returns the questions still open for p, in the order
// project name, framework, language.
func Questions(p Prefill) []Question {
	var qs []Question

	if p.ProjectName == "" {
		qs = append(qs, Question{
			ID:          IDProjectName,
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Also the name of the directory the project is created in.",
			Default:     p.DefaultProjectName,
			Required:    true,
			Validate:    models.ValidateProjectName,
		})
	}

	if p.Framework == "" {
		// The default option goes first; see orderDefaultFirst.
		opts := make([]Option, 0, len(models.SupportedFrameworks()))
		for _, f := range models.SupportedFrameworks() {
			opts = append(opts, Option{Label: template.FrameworkTitle(f), Value: f.String()})
		}
		qs = append(qs, Question{
			ID:          IDFramework,
			Type:        QuestionTypeSelect,
			Title:       "Framework",
			Description: "UI framework of the generated application.",
			Options:     orderDefaultFirst(opts, p.DefaultFramework),
			Default:     p.DefaultFramework,
			Required:    true,
		})
	}

	if p.TypeScript == nil {
		def := LanguageJavaScript
		if p.DefaultTypeScript {
			def = LanguageTypeScript
		}
		qs = append(qs, Question{
			ID:          IDLanguage,
			Type:        QuestionTypeSelect,
			Title:       "Language",
			Description: "TypeScript adds tsconfig.json, ts-loader and a type-check script.",
			Options: orderDefaultFirst([]Option{
				{Label: "JavaScript", Value: LanguageJavaScript},
				{Label: "TypeScript", Value: LanguageTypeScript},
			}, def),
			Default:  def,
			Required: true,
		})
	}

	return qs
}

// orderDefaultFirst moves the option whose value is def to the front.
// huh scrolls the select viewport to the initial selection, hiding the
// options above it.
func orderDefaultFirst(opts []Option, def string) []Option {
	for i, o := range opts {
		if o.Value == def && i > 0 {
			out := append([]Option{o}, opts[:i]...)
			return append(out, opts[i+1:]...)
		}
	}
	return opts
}
