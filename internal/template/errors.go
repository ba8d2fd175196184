// Package template implements the template composition engine: it turns a
// project name and a build choice into the ordered set of files that make up
// a new front-end project.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named template does not exist in the template FS.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates a template referenced a field the context does not have.
	ErrMissingTemplateKey = errors.New("template references missing key")

	// ErrUnexpandedToken indicates a template source emits a template token literally.
	ErrUnexpandedToken = errors.New("unexpanded template token in template")

	// ErrDuplicateArtifact indicates two templates targeted the same output path.
	ErrDuplicateArtifact = errors.New("duplicate artifact path")

	// ErrInvalidArtifactPath indicates an artifact path that is empty, absolute or escapes the root.
	ErrInvalidArtifactPath = errors.New("invalid artifact path")

	// ErrUnsupportedFramework indicates no framework template set is registered for the choice.
	ErrUnsupportedFramework = errors.New("no template set for framework")

	// ErrSchemaViolation indicates a generated structured file failed its schema check.
	ErrSchemaViolation = errors.New("generated file violates schema")
)

// ErrConflictingTransforms indicates two transform rules claim the same file extension.
var ErrConflictingTransforms = errors.New("conflicting transform rules")
