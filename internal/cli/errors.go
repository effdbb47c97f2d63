// Package cli provides shared configuration and utilities for the pergen CLI.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/syssam/pergen/compiler/gen"
	"github.com/syssam/pergen/compiler/load"
	"github.com/syssam/pergen/dialect/sql"
)

// Exit codes of the pergen command.
const (
	ExitSuccess  = 0
	ExitGeneral  = 1
	ExitConfig   = 2
	ExitSchema   = 3
	ExitDatabase = 4
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code of err. Errors that are not an ExitError
// are classified by their kind.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case gen.IsConfigError(err):
		return ExitConfig
	case isSchemaError(err):
		return ExitSchema
	case sql.IsApplyError(err):
		return ExitDatabase
	default:
		return ExitGeneral
	}
}

// PrintError writes the error to w and returns its exit code.
func PrintError(w io.Writer, err error) int {
	fmt.Fprintln(w, color.RedString("Error:"), err)
	return ExitCode(err)
}

// ConfigError creates an ExitError with ExitConfig code.
func ConfigError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

// SchemaError creates an ExitError with ExitSchema code.
func SchemaError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitSchema, Message: msg, Err: err}
}

// DatabaseError creates an ExitError with ExitDatabase code.
func DatabaseError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitDatabase, Message: msg, Err: err}
}

// GeneralError creates an ExitError with ExitGeneral code.
func GeneralError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitGeneral, Message: msg, Err: err}
}

// isSchemaError reports whether err comes from parsing or analyzing a schema.
func isSchemaError(err error) bool {
	return load.IsSyntaxError(err) ||
		gen.IsDefinitionError(err) ||
		gen.IsReferenceError(err) ||
		gen.IsConsistencyError(err) ||
		gen.IsNamingError(err)
}

// wrapSchemaError classifies an error of the load or analysis phase.
func wrapSchemaError(msg string, err error) error {
	switch {
	case isSchemaError(err):
		return SchemaError(msg, err)
	case gen.IsConfigError(err):
		return ConfigError(msg, err)
	default:
		return GeneralError(msg, err)
	}
}
