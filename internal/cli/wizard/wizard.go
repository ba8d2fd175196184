package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Run executes the questions and returns the answers merged into initial.
// Each question runs as its own huh.Form so a group never shares a
// viewport with another one.
func Run(questions []Question, initial Result) (*Result, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := initial
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]

		form := huh.NewForm(huh.NewGroup(buildField(q, &result))).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return &result, nil
}

func buildField(q *Question, result *Result) huh.Field {
	switch q.Type {
	case QuestionTypeSelect:
		return buildSelectField(q, result)
	default:
		return buildInputField(q, result)
	}
}

// buildSelectField creates a huh.Select field for a select-type question.
func buildSelectField(q *Question, result *Result) *huh.Select[string] {
	selected := q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	id := q.ID
	sel.Validate(func(val string) error {
		saveAnswer(id, val, result)
		return nil
	})

	return sel
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, result *Result) *huh.Input {
	value := q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	id := q.ID
	inp = inp.Validate(func(val string) error {
		v, err := checkInput(q, val)
		if err != nil {
			return err
		}
		saveAnswer(id, v, result)
		return nil
	})

	return inp
}

// checkInput trims val, falls back to the default and applies the
// question's validation.
func checkInput(q *Question, val string) (string, error) {
	v := strings.TrimSpace(val)
	if v == "" {
		v = q.Default
	}
	if q.Required && v == "" {
		return "", errors.New("this field is required")
	}
	if q.Validate != nil && v != "" {
		if err := q.Validate(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *Result) {
	switch id {
	case IDProjectName:
		result.ProjectName = value
	case IDFramework:
		result.Framework = value
	case IDLanguage:
		result.TypeScript = value == LanguageTypeScript
	}
}

// newWizardTheme creates a huh.Theme matching the CLI palette.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#A78BFA"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
