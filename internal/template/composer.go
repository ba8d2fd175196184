package template

import (
	"fmt"
)

// @MX:ANCHOR: [AUTO] Composer is the single entry point from build inputs to the artifact set.
// @MX:REASON: [AUTO] fan_in=3, used by the scaffolder, the dry-run path and the engine tests
// Composer turns a TemplateContext into the complete, ordered artifact set.
type Composer struct {
	config   *ConfigSet
	renderer Renderer
}

// NewComposer creates a Composer whose template sets render with r.
func NewComposer(r Renderer) *Composer {
	return &Composer{config: NewConfigSet(r), renderer: r}
}

// NewEmbeddedComposer creates a Composer backed by the embedded templates.
func NewEmbeddedComposer() (*Composer, error) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		return nil, err
	}
	return NewComposer(NewRenderer(fsys)), nil
}

// Compose runs the configuration set and then the framework set selected by
// tc.Framework. All artifacts are collected before anything is written, so a
// path collision or schema violation fails before any I/O.
func (c *Composer) Compose(tc *TemplateContext) (*ArtifactSet, error) {
	set := NewArtifactSet()

	configArtifacts, err := c.config.Artifacts(tc)
	if err != nil {
		return nil, fmt.Errorf("configuration templates: %w", err)
	}
	if err := set.AddAll(configArtifacts); err != nil {
		return nil, err
	}

	fw, err := FrameworkSetFor(tc.Framework, c.renderer)
	if err != nil {
		return nil, err
	}
	frameworkArtifacts, err := fw.Artifacts(tc)
	if err != nil {
		return nil, fmt.Errorf("%s templates: %w", tc.Framework, err)
	}
	if err := set.AddAll(frameworkArtifacts); err != nil {
		return nil, err
	}

	if err := ValidateStructured(set); err != nil {
		return nil, err
	}
	return set, nil
}
