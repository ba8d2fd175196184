package template

import (
	"bytes"
	"testing"

	"github.com/chalee-dev/chalee/pkg/models"
)

func TestConfigSet_TypedGate(t *testing.T) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates error: %v", err)
	}
	s := NewConfigSet(NewRenderer(fsys))

	for _, choice := range allChoices() {
		t.Run(choice.String(), func(t *testing.T) {
			artifacts, err := s.Artifacts(NewTemplateContext(WithProject("demo"), WithBuildChoice(choice)))
			if err != nil {
				t.Fatalf("Artifacts error: %v", err)
			}
			want := 6
			if choice.Typed {
				want = 8
			}
			if len(artifacts) != want {
				t.Errorf("len = %d, want %d", len(artifacts), want)
			}
			for _, a := range artifacts {
				if a.Group != GroupConfig {
					t.Errorf("%s: Group = %s, want %s", a.Path, a.Group, GroupConfig)
				}
			}
		})
	}
}

func TestConfigSet_AmbientDeclarations(t *testing.T) {
	fsys, _ := EmbeddedTemplates()
	s := NewConfigSet(NewRenderer(fsys))

	react, err := s.AmbientDeclarations(NewTemplateContext(
		WithBuildChoice(models.BuildChoice{Framework: models.FrameworkReact, Typed: true})))
	if err != nil {
		t.Fatalf("AmbientDeclarations error: %v", err)
	}
	if string(react.Content) != "declare module '*.css';\n" {
		t.Errorf("react shims = %q", react.Content)
	}

	vue, err := s.AmbientDeclarations(NewTemplateContext(
		WithBuildChoice(models.BuildChoice{Framework: models.FrameworkVue, Typed: true})))
	if err != nil {
		t.Fatalf("AmbientDeclarations error: %v", err)
	}
	if !bytes.Contains(vue.Content, []byte("declare module '*.vue' {")) {
		t.Errorf("vue shims missing component declaration:\n%s", vue.Content)
	}
}

func TestConfigSet_TypeCheckerConfig(t *testing.T) {
	s := NewConfigSet(nil)
	tests := []struct {
		framework models.Framework
		jsx       string
	}{
		{models.FrameworkVue, `"jsx": "preserve"`},
		{models.FrameworkReact, `"jsx": "react-jsx"`},
	}
	for _, tt := range tests {
		t.Run(string(tt.framework), func(t *testing.T) {
			a, err := s.TypeCheckerConfig(NewTemplateContext(
				WithBuildChoice(models.BuildChoice{Framework: tt.framework, Typed: true})))
			if err != nil {
				t.Fatalf("TypeCheckerConfig error: %v", err)
			}
			if a.Path != "tsconfig.json" {
				t.Errorf("Path = %q", a.Path)
			}
			for _, want := range []string{tt.jsx, `"strict": true`, `"@/*": [`} {
				if !bytes.Contains(a.Content, []byte(want)) {
					t.Errorf("tsconfig.json missing %s:\n%s", want, a.Content)
				}
			}
		})
	}
}
