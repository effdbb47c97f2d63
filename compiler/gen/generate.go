package gen

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/dave/jennifer/jen"

	"github.com/syssam/pergen/schema/field"
)

// RuntimePkg is the import path of the package imported by generated code.
const RuntimePkg = "github.com/syssam/pergen"

// DefaultHeader is written at the top of generated Go files.
const DefaultHeader = "Code generated by pergen. DO NOT EDIT."

// ScriptFile is the name of the generated DDL script.
const ScriptFile = "script.sql"

// JenniferGenerator generates the artifacts of a graph: the DDL script,
// the value objects and DAOs through its dialect, the enabled features and
// the user templates. Files are rendered in memory one after the other and
// written at the end of a successful run.
type JenniferGenerator struct {
	graph   *Graph
	outDir  string
	pkg     string
	dialect DialectGenerator
	storage *Storage
}

// NewJenniferGenerator creates a new Jennifer-based generator.
// You must call WithDialect() to set a dialect before calling Generate().
//
// Example:
//
//	import "github.com/syssam/pergen/compiler/gen/sql"
//
//	gen := gen.NewJenniferGenerator(graph, outDir)
//	gen.WithDialect(sql.NewDialect(gen))
//	gen.Generate(ctx)
func NewJenniferGenerator(g *Graph, outDir string) *JenniferGenerator {
	return &JenniferGenerator{
		graph:  g,
		outDir: outDir,
		pkg:    g.PackageName(),
	}
}

// WithPackage sets the output package name.
func (g *JenniferGenerator) WithPackage(pkg string) *JenniferGenerator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// WithDialect sets the dialect generator.
func (g *JenniferGenerator) WithDialect(d DialectGenerator) *JenniferGenerator {
	if d != nil {
		g.dialect = d
	}
	return g
}

// Generate renders every artifact and writes them to the output directory.
// It returns an error if no dialect has been set via WithDialect(). Nothing
// is written unless every artifact rendered.
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if g.dialect == nil {
		return NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before Generate()")
	}
	if g.outDir == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	storage, err := g.graph.Storage()
	if err != nil {
		return err
	}
	g.storage = storage
	log := g.graph.logger()
	w := newWriter(g.outDir, log)

	script, err := g.graph.Script()
	if err != nil {
		return NewGenerationError("sql", ScriptFile, "render script", err)
	}
	if err := w.add(&Artifact{Path: ScriptFile, Content: []byte(script)}); err != nil {
		return err
	}
	for _, t := range g.graph.Nodes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.addFile("entity", t.FileName()+".go", g.dialect.GenEntity(t)); err != nil {
			return err
		}
		if err := w.addFile("dao", t.FileName()+"_dao.go", g.dialect.GenDAO(t)); err != nil {
			return err
		}
	}
	for _, f := range g.graph.Features {
		if f.Artifacts == nil {
			continue
		}
		arts, err := f.Artifacts(g.graph)
		if err != nil {
			return NewGenerationError(f.Name, "", "render feature", err)
		}
		for _, a := range arts {
			if err := w.add(a); err != nil {
				return err
			}
		}
	}
	for _, t := range g.graph.Templates {
		if err := w.addTemplate(t, g.graph); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Debug("generation rendered", "dialect", storage.Name, "package", g.pkg, "entities", len(g.graph.Nodes))
	return w.flush()
}

// =============================================================================
// GeneratorHelper interface implementation
// =============================================================================

// NewFile creates a new Jennifer file with the header comment.
func (g *JenniferGenerator) NewFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	header := g.graph.Header
	if header == "" {
		header = DefaultHeader
	}
	f.HeaderComment(header)
	return f
}

// GoType returns the member type of a field: a pointer to its base type,
// nil meaning unset.
func (g *JenniferGenerator) GoType(f *Field) jen.Code {
	return jen.Op("*").Add(g.BaseType(f))
}

// BaseType returns the Go type of a field value.
func (g *JenniferGenerator) BaseType(f *Field) jen.Code {
	switch f.Type {
	case field.TypeDate:
		return jen.Qual("time", "Time")
	case field.TypeInteger:
		return jen.Int64()
	case field.TypeReal:
		return jen.Float64()
	default:
		return jen.String()
	}
}

// RuntimePkg returns the import path of the runtime package.
func (g *JenniferGenerator) RuntimePkg() string { return RuntimePkg }

// Statement rewrites the placeholders of query for the configured dialect.
func (g *JenniferGenerator) Statement(query string) string {
	if s := g.dialectStorage(); s != nil {
		return s.Statement(query)
	}
	return query
}

// Builder returns a statement builder rendering the placeholders of the
// configured dialect.
func (g *JenniferGenerator) Builder() sq.StatementBuilderType {
	if s := g.dialectStorage(); s != nil {
		return s.Builder()
	}
	return sq.StatementBuilder
}

// dialectStorage returns the storage of the graph, nil for an unsupported
// dialect.
func (g *JenniferGenerator) dialectStorage() *Storage {
	if g.storage == nil {
		s, err := g.graph.Storage()
		if err != nil {
			return nil
		}
		g.storage = s
	}
	return g.storage
}

// Graph returns the schema graph.
func (g *JenniferGenerator) Graph() *Graph { return g.graph }

// Pkg returns the output package name.
func (g *JenniferGenerator) Pkg() string { return g.pkg }

// Verify JenniferGenerator implements GeneratorHelper at compile time.
var _ GeneratorHelper = (*JenniferGenerator)(nil)

// Gen runs next on the graph, wrapped by the configured hooks. The first
// hook is the outermost.
func (g *Graph) Gen(next Generator) error {
	for i := len(g.Hooks) - 1; i >= 0; i-- {
		next = g.Hooks[i](next)
	}
	return next.Generate(g)
}
