package template

import "fmt"

// Paths of the configuration artifacts.
const (
	PackageJSONPath   = "package.json"
	WebpackConfigPath = "webpack.config.js"
	TailwindPath      = "tailwind.config.js"
	PostCSSPath       = "postcss.config.js"
	HTMLPath          = "public/index.html"
	StylesheetPath    = "src/styles/main.css"
	TSConfigPath      = "tsconfig.json"
	ShimsPath         = "src/types/shims.d.ts"
)

// ConfigSet produces the build-tooling artifacts shared by both frameworks.
type ConfigSet struct {
	renderer Renderer
}

// NewConfigSet creates a ConfigSet that renders text templates with r.
func NewConfigSet(r Renderer) *ConfigSet {
	return &ConfigSet{renderer: r}
}

// configOp is one configuration template operation.
type configOp struct {
	when  func(*TemplateContext) bool
	build func(*ConfigSet, *TemplateContext) (Artifact, error)
}

func always(*TemplateContext) bool      { return true }
func typedOnly(tc *TemplateContext) bool { return tc.Typed }

// configOps lists the operations in emission order.
var configOps = []configOp{
	{always, (*ConfigSet).Manifest},
	{always, (*ConfigSet).BundlerConfig},
	{always, (*ConfigSet).TailwindConfig},
	{always, (*ConfigSet).PostCSSConfig},
	{always, (*ConfigSet).HTMLTemplate},
	{always, (*ConfigSet).GlobalStylesheet},
	{typedOnly, (*ConfigSet).TypeCheckerConfig},
	{typedOnly, (*ConfigSet).AmbientDeclarations},
}

// Artifacts runs every operation that applies to tc, in order.
func (s *ConfigSet) Artifacts(tc *TemplateContext) ([]Artifact, error) {
	var out []Artifact
	for _, op := range configOps {
		if !op.when(tc) {
			continue
		}
		a, err := op.build(s, tc)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Manifest returns package.json.
func (s *ConfigSet) Manifest(tc *TemplateContext) (Artifact, error) {
	data, err := encodeJSON(BuildManifest(tc))
	if err != nil {
		return Artifact{}, fmt.Errorf("package.json: %w", err)
	}
	return configArtifact(PackageJSONPath, data), nil
}

// BundlerConfig returns webpack.config.js.
func (s *ConfigSet) BundlerConfig(tc *TemplateContext) (Artifact, error) {
	cfg, err := BuildBundlerConfig(tc)
	if err != nil {
		return Artifact{}, err
	}
	return s.render(WebpackConfigPath, "config/webpack.config.js.tmpl", cfg)
}

// TailwindConfig returns tailwind.config.js.
func (s *ConfigSet) TailwindConfig(tc *TemplateContext) (Artifact, error) {
	return s.render(TailwindPath, "config/tailwind.config.js.tmpl", tc)
}

// PostCSSConfig returns postcss.config.js.
func (s *ConfigSet) PostCSSConfig(tc *TemplateContext) (Artifact, error) {
	return s.render(PostCSSPath, "config/postcss.config.js.tmpl", tc)
}

// HTMLTemplate returns public/index.html with the project name as the page title.
func (s *ConfigSet) HTMLTemplate(tc *TemplateContext) (Artifact, error) {
	return s.render(HTMLPath, "config/index.html.tmpl", tc)
}

// GlobalStylesheet returns src/styles/main.css.
func (s *ConfigSet) GlobalStylesheet(tc *TemplateContext) (Artifact, error) {
	return s.render(StylesheetPath, "config/main.css.tmpl", tc)
}

// TypeCheckerConfig returns tsconfig.json.
func (s *ConfigSet) TypeCheckerConfig(tc *TemplateContext) (Artifact, error) {
	data, err := encodeJSON(BuildTSConfig(tc))
	if err != nil {
		return Artifact{}, fmt.Errorf("tsconfig.json: %w", err)
	}
	return configArtifact(TSConfigPath, data), nil
}

// AmbientDeclarations returns the module shims for stylesheet and single-file-component imports.
func (s *ConfigSet) AmbientDeclarations(tc *TemplateContext) (Artifact, error) {
	return s.render(ShimsPath, "config/shims.d.ts.tmpl", tc)
}

func (s *ConfigSet) render(path, name string, data any) (Artifact, error) {
	content, err := s.renderer.Render(name, data)
	if err != nil {
		return Artifact{}, fmt.Errorf("render %s: %w", path, err)
	}
	return configArtifact(path, content), nil
}

func configArtifact(path string, content []byte) Artifact {
	return Artifact{Path: path, Content: content, Group: GroupConfig}
}
