package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a spell check failure.
type Kind int

const (
	KindUnexpected Kind = iota
	KindInputEmpty
	KindProcessFailed
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindInputEmpty:
		return "input_empty"
	case KindProcessFailed:
		return "process_failed"
	case KindTimeout:
		return "timeout"
	default:
		return "unexpected"
	}
}

// CheckError describes why a spell check did not produce suggestions.
type CheckError struct {
	Kind    Kind
	Message string
	Err     error
}

// NewInputEmptyError reports that there was no text to check.
func NewInputEmptyError() error {
	return &CheckError{Kind: KindInputEmpty, Message: "Please enter some text to check."}
}

// NewProcessFailedError wraps the checker's stderr after a non-zero exit.
func NewProcessFailedError(exitCode int, stderr string) error {
	return &CheckError{
		Kind:    KindProcessFailed,
		Message: fmt.Sprintf("Error: %s", stderr),
		Err:     fmt.Errorf("checker exited with code %d", exitCode),
	}
}

// NewTimeoutError reports that the checker exceeded its deadline.
func NewTimeoutError(err error) error {
	return &CheckError{Kind: KindTimeout, Message: "The spell checker took too long to respond.", Err: err}
}

// NewUnexpectedError wraps any other failure.
func NewUnexpectedError(err error) error {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}
	return &CheckError{
		Kind:    KindUnexpected,
		Message: fmt.Sprintf("An unexpected error occurred: %s", message),
		Err:     err,
	}
}

func (e *CheckError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Title(), e.Message)
}

// Title returns the heading shown above the message in a notice.
func (e *CheckError) Title() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindInputEmpty:
		return "Input Error"
	case KindProcessFailed:
		return "Spell Checker Error"
	case KindTimeout:
		return "Timeout Error"
	default:
		return "Error"
	}
}

// Unwrap exposes the underlying error.
func (e *CheckError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf classifies err. Errors that are not a CheckError are unexpected.
func KindOf(err error) Kind {
	var checkErr *CheckError
	if errors.As(err, &checkErr) {
		return checkErr.Kind
	}
	return KindUnexpected
}

// AsCheckError returns err as a CheckError, wrapping it as unexpected when needed.
func AsCheckError(err error) *CheckError {
	var checkErr *CheckError
	if errors.As(err, &checkErr) {
		return checkErr
	}
	wrapped, _ := NewUnexpectedError(err).(*CheckError)
	return wrapped
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
