// Package gen builds the domain model of a pergen schema and generates the
// SQL script and the Go value objects and DAOs from it.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per failure category. Every typed error below
// matches exactly one of them with errors.Is.
var (
	// ErrDefinition indicates an entity or field declared twice.
	ErrDefinition = errors.New("pergen: definition error")
	// ErrReference indicates a reference to an undefined entity or field.
	ErrReference = errors.New("pergen: reference error")
	// ErrConsistency indicates relations that cannot be paired or are not supported.
	ErrConsistency = errors.New("pergen: consistency error")
	// ErrNaming indicates two identifiers that collide once transformed.
	ErrNaming = errors.New("pergen: naming error")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("pergen: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("pergen: code generation failed")
)

// EntityAlreadyDefinedError is returned when an entity name is declared twice.
type EntityAlreadyDefinedError struct {
	Entity string
}

// Error implements the error interface.
func (e *EntityAlreadyDefinedError) Error() string {
	return fmt.Sprintf("pergen: entity %q is already defined", e.Entity)
}

// Is reports whether the target matches ErrDefinition.
func (e *EntityAlreadyDefinedError) Is(target error) bool {
	return target == ErrDefinition
}

// NewEntityAlreadyDefinedError creates a new EntityAlreadyDefinedError.
func NewEntityAlreadyDefinedError(entity string) *EntityAlreadyDefinedError {
	return &EntityAlreadyDefinedError{Entity: entity}
}

// FieldAlreadyDefinedError is returned when a field name is declared twice
// in the same entity.
type FieldAlreadyDefinedError struct {
	Entity string
	Field  string
}

// Error implements the error interface.
func (e *FieldAlreadyDefinedError) Error() string {
	return fmt.Sprintf("pergen: field %q is already defined in entity %q", e.Field, e.Entity)
}

// Is reports whether the target matches ErrDefinition.
func (e *FieldAlreadyDefinedError) Is(target error) bool {
	return target == ErrDefinition
}

// NewFieldAlreadyDefinedError creates a new FieldAlreadyDefinedError.
func NewFieldAlreadyDefinedError(entity, field string) *FieldAlreadyDefinedError {
	return &FieldAlreadyDefinedError{Entity: entity, Field: field}
}

// EntityNotDefinedError is returned when a relation targets an unknown entity.
type EntityNotDefinedError struct {
	From string
	To   string
}

// Error implements the error interface.
func (e *EntityNotDefinedError) Error() string {
	return fmt.Sprintf("pergen: entity %q referenced by a relation in %q is not defined", e.To, e.From)
}

// Is reports whether the target matches ErrReference.
func (e *EntityNotDefinedError) Is(target error) bool {
	return target == ErrReference
}

// NewEntityNotDefinedError creates a new EntityNotDefinedError.
func NewEntityNotDefinedError(from, to string) *EntityNotDefinedError {
	return &EntityNotDefinedError{From: from, To: to}
}

// FieldNotDefinedError is returned when a uniqueness rule names a field the
// entity does not have.
type FieldNotDefinedError struct {
	Entity string
	Field  string
}

// Error implements the error interface.
func (e *FieldNotDefinedError) Error() string {
	return fmt.Sprintf("pergen: field %q is not defined in entity %q", e.Field, e.Entity)
}

// Is reports whether the target matches ErrReference.
func (e *FieldNotDefinedError) Is(target error) bool {
	return target == ErrReference
}

// NewFieldNotDefinedError creates a new FieldNotDefinedError.
func NewFieldNotDefinedError(entity, field string) *FieldNotDefinedError {
	return &FieldNotDefinedError{Entity: entity, Field: field}
}

// BidirectionalRelationError is returned when a relation is declared on one
// side only.
type BidirectionalRelationError struct {
	From string
	To   string
}

// Error implements the error interface.
func (e *BidirectionalRelationError) Error() string {
	return fmt.Sprintf("pergen: relation %s -> %s has no reverse declaration in %q", e.From, e.To, e.To)
}

// Is reports whether the target matches ErrConsistency.
func (e *BidirectionalRelationError) Is(target error) bool {
	return target == ErrConsistency
}

// NewBidirectionalRelationError creates a new BidirectionalRelationError.
func NewBidirectionalRelationError(from, to string) *BidirectionalRelationError {
	return &BidirectionalRelationError{From: from, To: to}
}

// MultipleRelationError is returned when an entity declares two relations to
// the same target.
type MultipleRelationError struct {
	From string
	To   string
}

// Error implements the error interface.
func (e *MultipleRelationError) Error() string {
	return fmt.Sprintf("pergen: entity %q declares more than one relation to %q", e.From, e.To)
}

// Is reports whether the target matches ErrConsistency.
func (e *MultipleRelationError) Is(target error) bool {
	return target == ErrConsistency
}

// NewMultipleRelationError creates a new MultipleRelationError.
func NewMultipleRelationError(from, to string) *MultipleRelationError {
	return &MultipleRelationError{From: from, To: to}
}

// NotSupportedError is returned for relations the model cannot represent.
type NotSupportedError struct {
	From    string
	To      string
	Message string
}

// Error implements the error interface.
func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("pergen: relation %s <-> %s is not supported: %s", e.From, e.To, e.Message)
}

// Is reports whether the target matches ErrConsistency.
func (e *NotSupportedError) Is(target error) bool {
	return target == ErrConsistency
}

// NewNotSupportedError creates a new NotSupportedError.
func NewNotSupportedError(from, to, message string) *NotSupportedError {
	return &NotSupportedError{From: from, To: to, Message: message}
}

// Naming schemes reported by ambiguity errors.
const (
	SchemeSQL  = "SQL"
	SchemeCode = "code"
)

// AmbiguousEntityNameError is returned when two entity names produce the
// same derived name.
type AmbiguousEntityNameError struct {
	First  string // first original name.
	Second string // second original name.
	Scheme string // SchemeSQL or SchemeCode.
	Name   string // produced name.
}

// Error implements the error interface.
func (e *AmbiguousEntityNameError) Error() string {
	return fmt.Sprintf("pergen: entities %q and %q both produce the %s name %q", e.First, e.Second, e.Scheme, e.Name)
}

// Is reports whether the target matches ErrNaming.
func (e *AmbiguousEntityNameError) Is(target error) bool {
	return target == ErrNaming
}

// NewAmbiguousEntityNameError creates a new AmbiguousEntityNameError.
func NewAmbiguousEntityNameError(first, second, scheme, name string) *AmbiguousEntityNameError {
	return &AmbiguousEntityNameError{First: first, Second: second, Scheme: scheme, Name: name}
}

// AmbiguousFieldNameError is returned when two members of an entity produce
// the same derived name.
type AmbiguousFieldNameError struct {
	Entity string
	First  string
	Second string
	Scheme string
	Name   string
}

// Error implements the error interface.
func (e *AmbiguousFieldNameError) Error() string {
	return fmt.Sprintf("pergen: %q and %q in entity %q both produce the %s name %q", e.First, e.Second, e.Entity, e.Scheme, e.Name)
}

// Is reports whether the target matches ErrNaming.
func (e *AmbiguousFieldNameError) Is(target error) bool {
	return target == ErrNaming
}

// NewAmbiguousFieldNameError creates a new AmbiguousFieldNameError.
func NewAmbiguousFieldNameError(entity, first, second, scheme, name string) *AmbiguousFieldNameError {
	return &AmbiguousFieldNameError{Entity: entity, First: first, Second: second, Scheme: scheme, Name: name}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("pergen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("pergen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches ErrMissingConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "sql", "entity", "dao", "write", etc.
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("pergen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches ErrGenerationFailed.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsDefinitionError reports whether the error is an entity or field
// declared twice.
func IsDefinitionError(err error) bool {
	return errors.Is(err, ErrDefinition)
}

// IsReferenceError reports whether the error is a reference to an undefined
// entity or field.
func IsReferenceError(err error) bool {
	return errors.Is(err, ErrReference)
}

// IsConsistencyError reports whether the error is a relation consistency error.
func IsConsistencyError(err error) bool {
	return errors.Is(err, ErrConsistency)
}

// IsNamingError reports whether the error is an ambiguous derived name.
func IsNamingError(err error) bool {
	return errors.Is(err, ErrNaming)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
