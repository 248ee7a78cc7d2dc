// Package freezeerr defines the errors reported by freezevet.
package freezeerr

import (
	"fmt"
	"strings"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeMutation ErrorType = "MutationError"
	TypeLoad     ErrorType = "LoadError"
)

// FreezeError is the interface for all freezevet errors.
type FreezeError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for freezevet errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// MutationError is a write through a frozen value found by the analyzer.
type MutationError struct {
	BaseError
	FilePath string
	Line     int
	Column   int
}

// Position returns the finding in the file:line:col form used by go vet.
func (e *MutationError) Position() string {
	if e.FilePath == "" {
		return fmt.Sprintf("line %d:%d", e.Line, e.Column)
	}
	return fmt.Sprintf("%s:%d:%d", e.FilePath, e.Line, e.Column)
}

func (e *MutationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] %s %s", e.ErrType, e.Position(), e.Msg)
	}
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

// LoadError reports packages that could not be loaded or type-checked.
type LoadError struct {
	BaseError
	Cause error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.ErrType, e.Msg, e.Cause)
	}
	return e.BaseError.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// MultiError collects multiple freezevet errors.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Type() ErrorType {
	if len(m.Errors) > 0 {
		if fe, ok := m.Errors[0].(FreezeError); ok {
			return fe.Type()
		}
	}
	return "MultiError"
}

func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// NewMutationErrorInFile creates a MutationError with file path, line, and column position.
func NewMutationErrorInFile(filePath string, line, column int, msg string) *MutationError {
	return &MutationError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeMutation,
		},
		FilePath: filePath,
		Line:     line,
		Column:   column,
	}
}

// NewLoadError creates a LoadError wrapping cause.
func NewLoadError(msg string, cause error) *LoadError {
	return &LoadError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeLoad,
		},
		Cause: cause,
	}
}
