package config

import (
	"fmt"
	"strings"
)

// NotFoundError reports that the intent file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("intent configuration file not found: %s", e.Path)
}

// ValidationError aggregates every structural problem found in the intent
// document. It is produced by Validate in a single pass so the user sees the
// complete list rather than one problem per run.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("intent configuration invalid (%d problem(s)):", len(e.Issues)))
	for _, issue := range e.Issues {
		sb.WriteString("\n  - ")
		sb.WriteString(issue)
	}
	return sb.String()
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
