package template

import (
	"testing"

	"github.com/chalee-dev/chalee/pkg/models"
)

func TestNewTemplateContext_Defaults(t *testing.T) {
	ctx := NewTemplateContext()

	if ctx.Framework != models.FrameworkVue {
		t.Errorf("Framework = %q, want %q", ctx.Framework, models.FrameworkVue)
	}
	if ctx.Typed {
		t.Error("Typed = true, want false")
	}
	if ctx.Version != "dev" {
		t.Errorf("Version = %q, want %q", ctx.Version, "dev")
	}
	if ctx.EntryFile != "index.js" {
		t.Errorf("EntryFile = %q, want %q", ctx.EntryFile, "index.js")
	}
	if ctx.ComponentExt != "vue" {
		t.Errorf("ComponentExt = %q, want %q", ctx.ComponentExt, "vue")
	}
}

func TestNewTemplateContext_Derived(t *testing.T) {
	tests := []struct {
		name      string
		choice    models.BuildChoice
		title     string
		runtime   string
		entry     string
		component string
	}{
		{"vue_js", models.BuildChoice{Framework: models.FrameworkVue}, "Vue", "Vue 3", "index.js", "vue"},
		{"vue_ts", models.BuildChoice{Framework: models.FrameworkVue, Typed: true}, "Vue", "Vue 3", "index.ts", "vue"},
		{"react_js", models.BuildChoice{Framework: models.FrameworkReact}, "React", "React 18", "index.js", "jsx"},
		{"react_ts", models.BuildChoice{Framework: models.FrameworkReact, Typed: true}, "React", "React 18", "index.tsx", "tsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewTemplateContext(
				WithProject("demo"),
				WithBuildChoice(tt.choice),
			)
			if ctx.ProjectName != "demo" {
				t.Errorf("ProjectName = %q, want %q", ctx.ProjectName, "demo")
			}
			if ctx.FrameworkTitle != tt.title {
				t.Errorf("FrameworkTitle = %q, want %q", ctx.FrameworkTitle, tt.title)
			}
			if ctx.RuntimeLabel != tt.runtime {
				t.Errorf("RuntimeLabel = %q, want %q", ctx.RuntimeLabel, tt.runtime)
			}
			if ctx.EntryFile != tt.entry {
				t.Errorf("EntryFile = %q, want %q", ctx.EntryFile, tt.entry)
			}
			if ctx.ComponentExt != tt.component {
				t.Errorf("ComponentExt = %q, want %q", ctx.ComponentExt, tt.component)
			}
			if ctx.Choice() != tt.choice {
				t.Errorf("Choice() = %v, want %v", ctx.Choice(), tt.choice)
			}
		})
	}
}

func TestWithVersion_EmptyKeepsDefault(t *testing.T) {
	ctx := NewTemplateContext(WithVersion(""))
	if ctx.Version != "dev" {
		t.Errorf("Version = %q, want %q", ctx.Version, "dev")
	}

	ctx = NewTemplateContext(WithVersion("1.2.3"))
	if ctx.Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", ctx.Version, "1.2.3")
	}
}
