package gen

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/dave/jennifer/jen"
)

// EntityGenerator generates per-entity code.
// Each method is called once per entity of the schema.
type EntityGenerator interface {
	// GenEntity generates the value object ({entity}.go).
	GenEntity(t *Type) *jen.File
	// GenDAO generates the data-access object ({entity}_dao.go).
	GenDAO(t *Type) *jen.File
}

// DialectGenerator defines the interface of a code dialect. Methods return
// *jen.File values holding the generated code; the JenniferGenerator
// orchestrates the calls and stages the files.
//
//	┌──────────────────────────────────────┐
//	│          JenniferGenerator           │
//	│  (orchestration, staged file writes) │
//	└──────────────────┬───────────────────┘
//	                   │ uses
//	                   ▼
//	┌──────────────────────────────────────┐
//	│          DialectGenerator            │
//	│   (value objects and DAOs, gen/sql)  │
//	└──────────────────────────────────────┘
type DialectGenerator interface {
	// Name returns the dialect name (e.g., "sql").
	Name() string
	EntityGenerator
}

// GeneratorHelper provides helper methods for dialect implementations.
// JenniferGenerator implements this interface, allowing dialect packages
// to use helper methods without importing the full generator.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file with the standard header comment.
	NewFile(pkg string) *jen.File

	// GoType returns the Jennifer code for a field's member type (a pointer).
	GoType(f *Field) jen.Code

	// BaseType returns the Jennifer code for a field's base type.
	BaseType(f *Field) jen.Code

	// RuntimePkg returns the import path of the runtime package.
	RuntimePkg() string

	// Statement returns query with its placeholders in the dialect format.
	Statement(query string) string

	// Builder returns a statement builder using the dialect placeholders.
	Builder() sq.StatementBuilderType

	// Graph returns the schema graph.
	Graph() *Graph

	// Pkg returns the output package name.
	Pkg() string
}
