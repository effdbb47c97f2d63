// Package sql provides the SQL dialect code generation for the Jennifer
// generator: a value object and a DAO per entity of the graph.
//
// This package implements the gen.DialectGenerator interface. The DAO
// statements are written with "?" placeholders and rewritten for the
// configured dialect (mysql, postgres or sqlite).
//
// Usage:
//
//	import (
//	    "github.com/syssam/pergen/compiler/gen"
//	    "github.com/syssam/pergen/compiler/gen/sql"
//	)
//
//	generator := gen.NewJenniferGenerator(graph, outDir)
//	dialect := sql.NewDialect(generator)
//	generator.WithDialect(dialect)
//	generator.Generate(ctx)
//
// Generated code structure:
//
//	{output}/
//	├── script.sql        # DDL script
//	├── {entity}.go       # Value object and accessors
//	└── {entity}_dao.go   # Statements and DAO methods
package sql

import (
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/pergen/compiler/gen"
)

// Generate is a convenience function to generate SQL-dialect code using the
// Jennifer generator. This is the recommended entry point for code
// generation.
//
// The hooks registered in g.Config.Hooks wrap the generation, which allows
// extensions to run before or after it.
//
// Example:
//
//	import "github.com/syssam/pergen/compiler/gen/sql"
//	err := sql.Generate(graph)
func Generate(g *gen.Graph) error {
	return GenerateContext(context.Background(), g)
}

// GenerateContext is like Generate with a context checked between entities.
func GenerateContext(ctx context.Context, g *gen.Graph) error {
	if g.Config == nil || g.Target == "" {
		return gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	return g.Gen(gen.GenerateFunc(func(g *gen.Graph) error {
		generator := gen.NewJenniferGenerator(g, g.Target)
		return generator.WithDialect(NewDialect(generator)).Generate(ctx)
	}))
}

// Dialect implements gen.DialectGenerator for SQL databases.
type Dialect struct {
	helper gen.GeneratorHelper
}

// NewDialect creates a new SQL dialect generator.
// The helper parameter should be a *gen.JenniferGenerator.
func NewDialect(helper gen.GeneratorHelper) *Dialect {
	return &Dialect{helper: helper}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "sql"
}

// GenEntity generates the value object file ({entity}.go).
func (d *Dialect) GenEntity(t *gen.Type) *jen.File {
	return genEntity(d.helper, t)
}

// GenDAO generates the data-access file ({entity}_dao.go).
func (d *Dialect) GenDAO(t *gen.Type) *jen.File {
	return genDAO(d.helper, t)
}

// Compile-time check that Dialect implements gen.DialectGenerator.
var _ gen.DialectGenerator = (*Dialect)(nil)
