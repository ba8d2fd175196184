package template

import (
	"fmt"
	"slices"

	"github.com/chalee-dev/chalee/pkg/models"
)

// RuleKind classifies a bundler rule fragment.
type RuleKind string

const (
	RuleBase          RuleKind = "base"
	RuleFramework     RuleKind = "framework"
	RuleTypeTransform RuleKind = "type-transform"
	RuleCompatibility RuleKind = "compatibility"
)

// Plugin is a webpack plugin contributed by a rule fragment.
type Plugin struct {
	Require string // require statement placed at the top of the config
	Expr    string // expression placed in the plugins array
}

// Rule is one module rule of the webpack configuration.
type Rule struct {
	Name       string
	Kind       RuleKind
	Test       string   // JS regex literal
	Exclude    string   // JS regex literal, optional
	Loader     string   // single loader, used when Use is empty
	Use        []string // loader chain
	Options    string   // JS object literal passed to Loader, optional
	Extensions []string // module resolution extensions claimed by the rule
	Plugin     *Plugin
}

// fragment pairs a rule builder with the predicate that selects it.
type fragment struct {
	when  func(models.BuildChoice) bool
	build func(models.BuildChoice) Rule
}

// bundlerFragments is evaluated in order; selected rules keep this order.
var bundlerFragments = []fragment{
	{
		when: func(models.BuildChoice) bool { return true },
		build: func(models.BuildChoice) Rule {
			return Rule{
				Name:       "css",
				Kind:       RuleBase,
				Test:       `/\.css$/i`,
				Use:        []string{"style-loader", "css-loader", "postcss-loader"},
				Extensions: []string{".js"},
			}
		},
	},
	{
		when: func(c models.BuildChoice) bool { return c.Framework == models.FrameworkVue },
		build: func(models.BuildChoice) Rule {
			return Rule{
				Name:       "vue",
				Kind:       RuleFramework,
				Test:       `/\.vue$/`,
				Loader:     "vue-loader",
				Extensions: []string{".vue"},
				Plugin: &Plugin{
					Require: "const { VueLoaderPlugin } = require('vue-loader');",
					Expr:    "new VueLoaderPlugin()",
				},
			}
		},
	},
	{
		when: func(c models.BuildChoice) bool { return c.Typed },
		build: func(c models.BuildChoice) Rule {
			if c.Framework == models.FrameworkVue {
				return Rule{
					Name:       "typescript",
					Kind:       RuleTypeTransform,
					Test:       `/\.ts$/`,
					Exclude:    `/node_modules/`,
					Loader:     "ts-loader",
					Options:    `{ appendTsSuffixTo: [/\.vue$/] }`,
					Extensions: []string{".ts"},
				}
			}
			return Rule{
				Name:       "typescript",
				Kind:       RuleTypeTransform,
				Test:       `/\.tsx?$/`,
				Exclude:    `/node_modules/`,
				Loader:     "ts-loader",
				Extensions: []string{".ts", ".tsx"},
			}
		},
	},
	{
		when: func(c models.BuildChoice) bool { return !c.Typed && RequiresCompatCompiler(c.Framework) },
		build: func(models.BuildChoice) Rule {
			return Rule{
				Name:       "babel",
				Kind:       RuleCompatibility,
				Test:       `/\.(js|jsx)$/`,
				Exclude:    `/node_modules/`,
				Loader:     "babel-loader",
				Options:    `{ presets: ['@babel/preset-env', '@babel/preset-react'] }`,
				Extensions: []string{".jsx"},
			}
		},
	},
}

// SelectRules returns the rule fragments that apply to choice, in order.
func SelectRules(choice models.BuildChoice) []Rule {
	var rules []Rule
	for _, f := range bundlerFragments {
		if f.when(choice) {
			rules = append(rules, f.build(choice))
		}
	}
	return rules
}

// checkTransformOverlap fails if a type-transform and a compatibility rule
// claim the same extension.
func checkTransformOverlap(rules []Rule) error {
	claimed := make(map[string]string)
	for _, r := range rules {
		if r.Kind != RuleTypeTransform && r.Kind != RuleCompatibility {
			continue
		}
		for _, ext := range r.Extensions {
			if other, ok := claimed[ext]; ok && other != r.Name {
				return fmt.Errorf("%w: %s claimed by %s and %s", ErrConflictingTransforms, ext, other, r.Name)
			}
			claimed[ext] = r.Name
		}
	}
	return nil
}

// BundlerConfig is the data rendered into webpack.config.js.
type BundlerConfig struct {
	Generator  string // "chalee <version>", written as a header comment
	Entry      string
	Rules      []Rule
	Extensions []string
	Plugins    []Plugin
}

// htmlPlugin is always first in the plugins array.
var htmlPlugin = Plugin{
	Require: "const HtmlWebpackPlugin = require('html-webpack-plugin');",
	Expr:    "new HtmlWebpackPlugin({\n  template: './public/index.html',\n})",
}

// BuildBundlerConfig selects the rule fragments for tc and derives the entry,
// resolve extensions and plugins from them.
func BuildBundlerConfig(tc *TemplateContext) (BundlerConfig, error) {
	rules := SelectRules(tc.Choice())
	if err := checkTransformOverlap(rules); err != nil {
		return BundlerConfig{}, err
	}

	cfg := BundlerConfig{
		Generator: "chalee " + tc.Version,
		Entry:     "./src/" + tc.EntryFile,
		Rules:     rules,
		Plugins:   []Plugin{htmlPlugin},
	}
	for _, r := range rules {
		for _, ext := range r.Extensions {
			if !slices.Contains(cfg.Extensions, ext) {
				cfg.Extensions = append(cfg.Extensions, ext)
			}
		}
		if r.Plugin != nil {
			cfg.Plugins = append(cfg.Plugins, *r.Plugin)
		}
	}
	return cfg, nil
}
