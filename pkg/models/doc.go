// Package models provides the shared data types used across chalee.
//
// # Build Choices
//
// A scaffold run is fully determined by two values:
//   - [ProjectIdentity]: the project name, used verbatim in generated files
//   - [BuildChoice]: the UI framework and whether TypeScript is enabled
//
// Both are validated once, at the input boundary, and never mutated afterwards:
//
//	fw, err := models.ParseFramework("react")
//	if err != nil {
//	    return err
//	}
//	choice := models.BuildChoice{Framework: fw, Typed: true}
//
// # Frameworks
//
// The supported frameworks form a closed set, see [SupportedFrameworks].
package models
