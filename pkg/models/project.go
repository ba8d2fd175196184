package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Sentinel errors for input validation.
var (
	// ErrEmptyProjectName indicates a blank project name.
	ErrEmptyProjectName = errors.New("project name must not be empty")

	// ErrInvalidProjectName indicates a name that is not a single well-formed path segment.
	ErrInvalidProjectName = errors.New("project name must be a single path segment")

	// ErrUnknownFramework indicates an unrecognized framework selector.
	ErrUnknownFramework = errors.New("unknown framework: must be vue or react")
)

// Framework identifies a supported UI framework.
type Framework string

const (
	FrameworkVue   Framework = "vue"
	FrameworkReact Framework = "react"
)

// SupportedFrameworks returns the frameworks in menu order.
func SupportedFrameworks() []Framework {
	return []Framework{FrameworkVue, FrameworkReact}
}

// IsValid reports whether f is one of the supported frameworks.
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkVue, FrameworkReact:
		return true
	}
	return false
}

// String returns the framework identifier.
func (f Framework) String() string {
	return string(f)
}

// ParseFramework resolves a user supplied selector. Names are matched
// case-insensitively; the menu numbers "1" (vue) and "2" (react) are also accepted.
func ParseFramework(s string) (Framework, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vue", "1":
		return FrameworkVue, nil
	case "react", "2":
		return FrameworkReact, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFramework, s)
}

// ProjectIdentity is the project name. It is interpolated without escaping.
type ProjectIdentity string

// String returns the raw project name.
func (p ProjectIdentity) String() string {
	return string(p)
}

// Validate checks the identity with ValidateProjectName.
func (p ProjectIdentity) Validate() error {
	return ValidateProjectName(string(p))
}

// ValidateProjectName rejects names that are empty or that would not form a
// single directory under the parent path.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyProjectName
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidProjectName, name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains a control character", ErrInvalidProjectName, name)
		}
	}
	return nil
}

// BuildChoice selects every conditional branch of the generated project.
type BuildChoice struct {
	Framework Framework `yaml:"framework" json:"framework"`
	Typed     bool      `yaml:"typescript" json:"typescript"`
}

// Validate checks that the framework is supported.
func (c BuildChoice) Validate() error {
	if !c.Framework.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownFramework, string(c.Framework))
	}
	return nil
}

// String renders the choice for logs, e.g. "react+ts" or "vue+js".
func (c BuildChoice) String() string {
	if c.Typed {
		return string(c.Framework) + "+ts"
	}
	return string(c.Framework) + "+js"
}
