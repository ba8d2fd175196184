package template

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/chalee-dev/chalee/pkg/models"
)

func ruleNames(rules []Rule) []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}

func TestSelectRules(t *testing.T) {
	tests := []struct {
		choice models.BuildChoice
		want   []string
	}{
		{models.BuildChoice{Framework: models.FrameworkVue}, []string{"css", "vue"}},
		{models.BuildChoice{Framework: models.FrameworkVue, Typed: true}, []string{"css", "vue", "typescript"}},
		{models.BuildChoice{Framework: models.FrameworkReact}, []string{"css", "babel"}},
		{models.BuildChoice{Framework: models.FrameworkReact, Typed: true}, []string{"css", "typescript"}},
	}

	for _, tt := range tests {
		t.Run(tt.choice.String(), func(t *testing.T) {
			got := ruleNames(SelectRules(tt.choice))
			if !slices.Equal(got, tt.want) {
				t.Errorf("rules = %v, want %v", got, tt.want)
			}
			if err := checkTransformOverlap(SelectRules(tt.choice)); err != nil {
				t.Errorf("unexpected overlap: %v", err)
			}
		})
	}
}

func TestCheckTransformOverlap(t *testing.T) {
	rules := []Rule{
		{Name: "typescript", Kind: RuleTypeTransform, Extensions: []string{".ts", ".tsx"}},
		{Name: "babel", Kind: RuleCompatibility, Extensions: []string{".tsx"}},
	}
	err := checkTransformOverlap(rules)
	if !errors.Is(err, ErrConflictingTransforms) {
		t.Errorf("expected ErrConflictingTransforms, got: %v", err)
	}

	// Base and framework rules may share extensions with anything.
	rules = []Rule{
		{Name: "css", Kind: RuleBase, Extensions: []string{".js"}},
		{Name: "babel", Kind: RuleCompatibility, Extensions: []string{".js"}},
	}
	if err := checkTransformOverlap(rules); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBuildBundlerConfig(t *testing.T) {
	tests := []struct {
		choice     models.BuildChoice
		entry      string
		extensions []string
		plugins    int
	}{
		{models.BuildChoice{Framework: models.FrameworkVue}, "./src/index.js", []string{".js", ".vue"}, 2},
		{models.BuildChoice{Framework: models.FrameworkVue, Typed: true}, "./src/index.ts", []string{".js", ".vue", ".ts"}, 2},
		{models.BuildChoice{Framework: models.FrameworkReact}, "./src/index.js", []string{".js", ".jsx"}, 1},
		{models.BuildChoice{Framework: models.FrameworkReact, Typed: true}, "./src/index.tsx", []string{".js", ".ts", ".tsx"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.choice.String(), func(t *testing.T) {
			cfg, err := BuildBundlerConfig(NewTemplateContext(WithBuildChoice(tt.choice)))
			if err != nil {
				t.Fatalf("BuildBundlerConfig error: %v", err)
			}
			if cfg.Entry != tt.entry {
				t.Errorf("Entry = %q, want %q", cfg.Entry, tt.entry)
			}
			if !slices.Equal(cfg.Extensions, tt.extensions) {
				t.Errorf("Extensions = %v, want %v", cfg.Extensions, tt.extensions)
			}
			if len(cfg.Plugins) != tt.plugins {
				t.Errorf("len(Plugins) = %d, want %d", len(cfg.Plugins), tt.plugins)
			}
			if cfg.Plugins[0] != htmlPlugin {
				t.Error("HtmlWebpackPlugin must come first")
			}
		})
	}
}

func renderWebpack(t *testing.T, choice models.BuildChoice) string {
	t.Helper()
	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates error: %v", err)
	}
	a, err := NewConfigSet(NewRenderer(fsys)).BundlerConfig(
		NewTemplateContext(WithProject("demo"), WithBuildChoice(choice)))
	if err != nil {
		t.Fatalf("BundlerConfig error: %v", err)
	}
	return string(a.Content)
}

func TestWebpackConfig_GeneratorHeader(t *testing.T) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates error: %v", err)
	}
	set := NewConfigSet(NewRenderer(fsys))

	a, err := set.BundlerConfig(NewTemplateContext(WithProject("demo"), WithVersion("v1.4.0")))
	if err != nil {
		t.Fatalf("BundlerConfig error: %v", err)
	}
	if !strings.HasPrefix(string(a.Content), "// Generated by chalee v1.4.0\n") {
		t.Errorf("webpack.config.js header:\n%s", a.Content)
	}

	a, err = set.BundlerConfig(NewTemplateContext(WithProject("demo")))
	if err != nil {
		t.Fatalf("BundlerConfig error: %v", err)
	}
	if !strings.HasPrefix(string(a.Content), "// Generated by chalee dev\n") {
		t.Errorf("default version header:\n%s", a.Content)
	}
}

func TestWebpackConfig_ReactUntyped(t *testing.T) {
	out := renderWebpack(t, models.BuildChoice{Framework: models.FrameworkReact})

	for _, want := range []string{
		"entry: './src/index.js'",
		`test: /\.(js|jsx)$/`,
		"loader: 'babel-loader'",
		"presets: ['@babel/preset-env', '@babel/preset-react']",
		"extensions: ['.js', '.jsx']",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("webpack.config.js missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ts-loader") {
		t.Error("untyped config must not contain ts-loader")
	}
}

func TestWebpackConfig_ReactTyped(t *testing.T) {
	out := renderWebpack(t, models.BuildChoice{Framework: models.FrameworkReact, Typed: true})

	for _, want := range []string{
		"entry: './src/index.tsx'",
		`test: /\.tsx?$/`,
		"loader: 'ts-loader'",
		"extensions: ['.js', '.ts', '.tsx']",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("webpack.config.js missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "babel-loader") {
		t.Error("typed config must not contain babel-loader")
	}
}

func TestWebpackConfig_VueTyped(t *testing.T) {
	out := renderWebpack(t, models.BuildChoice{Framework: models.FrameworkVue, Typed: true})

	for _, want := range []string{
		"const { VueLoaderPlugin } = require('vue-loader');",
		"new VueLoaderPlugin(),",
		"loader: 'vue-loader'",
		`options: { appendTsSuffixTo: [/\.vue$/] },`,
		"use: ['style-loader', 'css-loader', 'postcss-loader'],",
		"      template: './public/index.html',",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("webpack.config.js missing %q:\n%s", want, out)
		}
	}
}
