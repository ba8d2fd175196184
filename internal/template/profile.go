package template

import (
	"bytes"
	"encoding/json"

	"github.com/chalee-dev/chalee/pkg/models"
)

// KeyValue is one entry of an ordered JSON object.
type KeyValue struct {
	Key   string
	Value string
}

// KeyValues is a JSON object whose keys keep their insertion order when marshaled.
type KeyValues []KeyValue

// MarshalJSON encodes the entries as an object in slice order.
func (kv KeyValues) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range kv {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := marshalNoEscape(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value stored under key.
func (kv KeyValues) Get(key string) (string, bool) {
	for _, e := range kv {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Keys returns the keys in order.
func (kv KeyValues) Keys() []string {
	keys := make([]string, len(kv))
	for i, e := range kv {
		keys[i] = e.Key
	}
	return keys
}

// union appends the entries of other whose keys are not present yet.
func (kv KeyValues) union(other KeyValues) KeyValues {
	out := make(KeyValues, len(kv), len(kv)+len(other))
	copy(out, kv)
	for _, e := range other {
		if _, ok := out.Get(e.Key); !ok {
			out = append(out, e)
		}
	}
	return out
}

// marshalNoEscape marshals v without HTML escaping so names such as "a&b" stay verbatim.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// DependencySet is a named group of runtime and development dependencies.
type DependencySet struct {
	Name    string
	Runtime KeyValues
	Dev     KeyValues
}

// frameworkProfile holds everything about a framework that the configuration
// templates branch on.
type frameworkProfile struct {
	deps         DependencySet
	typeBindings DependencySet
	// compat is the compiler needed to build untyped sources; nil when the
	// framework's own loader handles them.
	compat       *DependencySet
	typeCheckCmd string
	jsxMode      string
}

// baselineDeps is the build tooling every project gets.
var baselineDeps = DependencySet{
	Name: "baseline",
	Dev: KeyValues{
		{"webpack", "^5.88.0"},
		{"webpack-cli", "^5.1.4"},
		{"webpack-dev-server", "^4.15.1"},
		{"html-webpack-plugin", "^5.5.3"},
		{"css-loader", "^6.8.1"},
		{"style-loader", "^3.3.3"},
		{"postcss", "^8.4.24"},
		{"postcss-loader", "^7.3.3"},
		{"tailwindcss", "^3.3.0"},
		{"autoprefixer", "^10.4.14"},
	},
}

// typedDeps is the TypeScript toolchain shared by both frameworks.
var typedDeps = DependencySet{
	Name: "typescript",
	Dev: KeyValues{
		{"typescript", "^5.1.6"},
		{"ts-loader", "^9.4.4"},
	},
}

var profiles = map[models.Framework]frameworkProfile{
	models.FrameworkVue: {
		deps: DependencySet{
			Name:    "vue",
			Runtime: KeyValues{{"vue", "^3.3.4"}},
			Dev: KeyValues{
				{"vue-loader", "^17.2.2"},
				{"@vue/compiler-sfc", "^3.3.4"},
			},
		},
		typeBindings: DependencySet{
			Name: "vue-types",
			Dev:  KeyValues{{"vue-tsc", "^1.8.5"}},
		},
		typeCheckCmd: "vue-tsc --noEmit",
		jsxMode:      "preserve",
	},
	models.FrameworkReact: {
		deps: DependencySet{
			Name: "react",
			Runtime: KeyValues{
				{"react", "^18.2.0"},
				{"react-dom", "^18.2.0"},
			},
		},
		typeBindings: DependencySet{
			Name: "react-types",
			Dev: KeyValues{
				{"@types/react", "^18.2.15"},
				{"@types/react-dom", "^18.2.7"},
			},
		},
		compat: &DependencySet{
			Name: "babel",
			Dev: KeyValues{
				{"babel-loader", "^9.1.2"},
				{"@babel/core", "^7.22.5"},
				{"@babel/preset-env", "^7.22.5"},
				{"@babel/preset-react", "^7.22.5"},
			},
		},
		typeCheckCmd: "tsc --noEmit",
		jsxMode:      "react-jsx",
	},
}

// RequiresCompatCompiler reports whether untyped sources of f need a separate
// compatibility compiler (babel for JSX).
func RequiresCompatCompiler(f models.Framework) bool {
	return profiles[f].compat != nil
}

// SelectDependencySets returns the dependency sets for a build choice in union order:
// baseline, framework, then either the typed toolchain with type bindings or
// the compatibility compiler.
func SelectDependencySets(choice models.BuildChoice) []DependencySet {
	p := profiles[choice.Framework]
	sets := []DependencySet{baselineDeps, p.deps}
	switch {
	case choice.Typed:
		sets = append(sets, typedDeps, p.typeBindings)
	case p.compat != nil:
		sets = append(sets, *p.compat)
	}
	return sets
}
