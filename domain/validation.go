package domain

import "strings"

type (
	// Violation is a single field constraint failure.
	Violation struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}

	// ValidationError carries every violation found in a request so the
	// caller sees the full list at once instead of failing one field at
	// a time.
	ValidationError struct {
		Violations []Violation `json:"violations"`
	}
)

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Append(field, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Message: message})
}

func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}
