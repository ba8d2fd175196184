package template

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PackageManifest is the package.json record. Field order matches the JSON output.
type PackageManifest struct {
	Name            string    `json:"name"`
	Version         string    `json:"version"`
	Description     string    `json:"description"`
	Main            string    `json:"main"`
	Scripts         KeyValues `json:"scripts"`
	Keywords        []string  `json:"keywords"`
	Author          string    `json:"author"`
	License         string    `json:"license"`
	DevDependencies KeyValues `json:"devDependencies"`
	Dependencies    KeyValues `json:"dependencies"`
}

// baseScripts are the webpack scripts every project gets.
var baseScripts = KeyValues{
	{"dev", "webpack serve --mode development"},
	{"build", "webpack --mode production"},
	{"build:dev", "webpack --mode development"},
}

// BuildManifest assembles the package.json record for tc.
func BuildManifest(tc *TemplateContext) PackageManifest {
	m := PackageManifest{
		Name:            tc.ProjectName,
		Version:         "1.0.0",
		Main:            "index.js",
		Scripts:         baseScripts.union(nil),
		Keywords:        []string{},
		License:         "ISC",
		DevDependencies: KeyValues{},
		Dependencies:    KeyValues{},
	}

	if tc.Typed {
		m.Main = "index.ts"
		m.Scripts = m.Scripts.union(KeyValues{{"type-check", profiles[tc.Framework].typeCheckCmd}})
	}

	for _, set := range SelectDependencySets(tc.Choice()) {
		m.Dependencies = m.Dependencies.union(set.Runtime)
		m.DevDependencies = m.DevDependencies.union(set.Dev)
	}

	return m
}

// encodeJSON renders v with two-space indentation, no HTML escaping and a trailing newline.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}
