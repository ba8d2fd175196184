package template

// CompilerOptions is the compilerOptions block of tsconfig.json.
type CompilerOptions struct {
	Target                           string              `json:"target"`
	Module                           string              `json:"module"`
	ModuleResolution                 string              `json:"moduleResolution"`
	Lib                              []string            `json:"lib"`
	JSX                              string              `json:"jsx"`
	Strict                           bool                `json:"strict"`
	EsModuleInterop                  bool                `json:"esModuleInterop"`
	SkipLibCheck                     bool                `json:"skipLibCheck"`
	ForceConsistentCasingInFileNames bool                `json:"forceConsistentCasingInFileNames"`
	ResolveJSONModule                bool                `json:"resolveJsonModule"`
	BaseURL                          string              `json:"baseUrl"`
	Paths                            map[string][]string `json:"paths"`
}

// TSConfig is the tsconfig.json record.
type TSConfig struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
	Exclude         []string        `json:"exclude"`
}

// BuildTSConfig returns the compiler configuration for tc. Only the jsx mode
// depends on the framework.
func BuildTSConfig(tc *TemplateContext) TSConfig {
	return TSConfig{
		CompilerOptions: CompilerOptions{
			Target:                           "ES2020",
			Module:                           "ESNext",
			ModuleResolution:                 "node",
			Lib:                              []string{"ES2020", "DOM", "DOM.Iterable"},
			JSX:                              profiles[tc.Framework].jsxMode,
			Strict:                           true,
			EsModuleInterop:                  true,
			SkipLibCheck:                     true,
			ForceConsistentCasingInFileNames: true,
			ResolveJSONModule:                true,
			BaseURL:                          ".",
			Paths:                            map[string][]string{"@/*": {"src/*"}},
		},
		Include: []string{"src/**/*"},
		Exclude: []string{"node_modules", "dist"},
	}
}
