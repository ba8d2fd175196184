// Package wizard provides the interactive huh-based prompt that collects
// the project name, framework and language mode for a new project.
package wizard

import "errors"

// Result holds the answers collected by the wizard.
type Result struct {
	ProjectName string // Project name (required)
	Framework   string // "vue" or "react"
	TypeScript  bool   // Whether the project is typed
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string             // Unique identifier
	Type        QuestionType       // Select or Input
	Title       string             // Question title
	Description string             // Additional description
	Options     []Option           // Options for select questions
	Default     string             // Default value
	Required    bool               // Whether the field is required
	Validate    func(string) error // Extra validation for input questions
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Question IDs.
const (
	IDProjectName = "project_name"
	IDFramework   = "framework"
	IDLanguage    = "language"
)

// Language option values.
const (
	LanguageTypeScript = "typescript"
	LanguageJavaScript = "javascript"
)

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
