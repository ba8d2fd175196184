package template

import (
	"fmt"

	"github.com/chalee-dev/chalee/pkg/models"
)

// frameworkTemplates names the template directory of each framework.
var frameworkTemplates = map[models.Framework]string{
	models.FrameworkVue:   "vue",
	models.FrameworkReact: "react",
}

// FrameworkSet produces the application source stubs of one framework.
// Paths and extensions come from the TemplateContext; only the template
// directory differs between frameworks.
type FrameworkSet struct {
	framework models.Framework
	dir       string
	renderer  Renderer
}

// FrameworkSetFor returns the template set registered for f.
func FrameworkSetFor(f models.Framework, r Renderer) (*FrameworkSet, error) {
	dir, ok := frameworkTemplates[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFramework, string(f))
	}
	return &FrameworkSet{framework: f, dir: dir, renderer: r}, nil
}

// Framework returns the framework the set renders.
func (s *FrameworkSet) Framework() models.Framework {
	return s.framework
}

// Artifacts returns the entry point, root, header and welcome components in that order.
func (s *FrameworkSet) Artifacts(tc *TemplateContext) ([]Artifact, error) {
	if tc.Framework != s.framework {
		return nil, fmt.Errorf("%w: set is %s, context is %s", ErrUnsupportedFramework, s.framework, tc.Framework)
	}
	ops := []func(*TemplateContext) (Artifact, error){
		s.EntryPoint,
		s.RootComponent,
		s.Header,
		s.Welcome,
	}
	out := make([]Artifact, 0, len(ops))
	for _, op := range ops {
		a, err := op(tc)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// EntryPoint returns src/index.{js,ts,tsx}, which mounts the root component on #app.
func (s *FrameworkSet) EntryPoint(tc *TemplateContext) (Artifact, error) {
	return s.render("src/"+tc.EntryFile, "entry.tmpl", tc)
}

// RootComponent returns src/App.<ext>.
func (s *FrameworkSet) RootComponent(tc *TemplateContext) (Artifact, error) {
	return s.render("src/App."+tc.ComponentExt, "App.tmpl", tc)
}

// Header returns src/components/Header.<ext>.
func (s *FrameworkSet) Header(tc *TemplateContext) (Artifact, error) {
	return s.render("src/components/Header."+tc.ComponentExt, "Header.tmpl", tc)
}

// Welcome returns src/components/Welcome.<ext>.
func (s *FrameworkSet) Welcome(tc *TemplateContext) (Artifact, error) {
	return s.render("src/components/Welcome."+tc.ComponentExt, "Welcome.tmpl", tc)
}

func (s *FrameworkSet) render(path, name string, tc *TemplateContext) (Artifact, error) {
	content, err := s.renderer.Render(s.dir+"/"+name, tc)
	if err != nil {
		return Artifact{}, fmt.Errorf("render %s: %w", path, err)
	}
	return Artifact{Path: path, Content: content, Group: GroupFramework}, nil
}
