package gen

import (
	"fmt"
	"go/token"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"

	"github.com/syssam/pergen/dialect"
	"github.com/syssam/pergen/dialect/sql/schema"
)

// Storage describes how a dialect is rendered: its script renderer and
// the placeholder format of the generated statements.
type Storage struct {
	Name        string               // dialect name.
	Renderer    schema.Dialect       // DDL renderer.
	Placeholder sq.PlaceholderFormat // statement placeholders.
}

// placeholders maps the supported dialects to the placeholder format of
// their statements.
var placeholders = map[string]sq.PlaceholderFormat{
	dialect.MySQL:    sq.Question,
	dialect.Postgres: sq.Dollar,
	dialect.SQLite:   sq.Question,
}

// NewStorage returns the storage of the given dialect name. It fails if
// the name is not a supported dialect.
func NewStorage(name string) (*Storage, error) {
	ph, ok := placeholders[name]
	if !ok {
		return nil, NewConfigError("Dialect", name, fmt.Sprintf("unsupported dialect; use one of %v", dialect.Dialects))
	}
	r, err := schema.ForDialect(name)
	if err != nil {
		return nil, NewConfigError("Dialect", name, err.Error())
	}
	return &Storage{Name: name, Renderer: r, Placeholder: ph}, nil
}

// String implements the fmt.Stringer interface for template usage.
func (s *Storage) String() string { return s.Name }

// Builder returns a statement builder rendering the placeholders of the
// storage.
func (s *Storage) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(s.Placeholder)
}

// Statement rewrites the "?" placeholders of query in the storage format.
func (s *Storage) Statement(query string) string {
	out, err := s.Placeholder.ReplacePlaceholders(query)
	if err != nil {
		return query
	}
	return out
}

// Storage returns the storage of the configured dialect.
func (g *Graph) Storage() (*Storage, error) {
	return NewStorage(g.SQLDialect())
}

// Tables returns the relational model of the graph: entity tables in
// declaration order, then the junction tables in order of first
// appearance.
func (g *Graph) Tables() []*schema.Table {
	tables := make([]*schema.Table, 0, len(g.Nodes))
	byName := make(map[string]*schema.Table, len(g.Nodes))
	for _, n := range g.Nodes {
		t := schema.NewTable(n.Table()).AddPrimary(schema.KeyColumn(n.IDColumn()))
		for _, f := range n.Fields {
			t.AddColumn(schema.DataColumn(f.Column(), f.Type, f.Size))
		}
		for _, e := range n.OneEdges() {
			t.AddColumn(schema.KeyColumn(e.Column()))
		}
		for _, idx := range n.Indexes {
			t.AddIndex(idx.Name(), true, idx.Columns())
		}
		tables = append(tables, t)
		byName[t.Name] = t
	}
	for _, n := range g.Nodes {
		t := byName[n.Table()]
		for _, e := range n.OneEdges() {
			t.AddForeignKey(schema.NewForeignKey(t, byName[e.Type.Table()]))
		}
	}
	for _, e := range g.M2MTables() {
		id := schema.KeyColumn(e.Table + "_ID")
		id.Increment = true
		owner, target := byName[e.Owner.Table()], byName[e.Type.Table()]
		t := schema.NewTable(e.Table).
			SetJunction().
			AddPrimary(id).
			AddColumn(schema.KeyColumn(e.Owner.IDColumn())).
			AddColumn(schema.KeyColumn(e.Type.IDColumn()))
		t.AddForeignKey(schema.NewForeignKey(t, owner))
		t.AddForeignKey(schema.NewForeignKey(t, target))
		tables = append(tables, t)
	}
	return tables
}

// Script renders the DDL script of the graph in the configured dialect.
func (g *Graph) Script() (string, error) {
	s, err := g.Storage()
	if err != nil {
		return "", err
	}
	tables, err := g.checkedTables()
	if err != nil {
		return "", err
	}
	return schema.Script(s.Renderer, tables), nil
}

// checkedTables returns the tables of the graph once schema.Check found
// no error in them.
func (g *Graph) checkedTables() ([]*schema.Table, error) {
	tables := g.Tables()
	report := schema.Check(tables)
	for _, w := range report.Warnings {
		g.logger().Warn("schema table warning", "table", w.Table, "message", w.Message)
	}
	if err := report.Err(); err != nil {
		return nil, NewGenerationError("sql", ScriptFile, "inconsistent tables", err)
	}
	return tables, nil
}

// AtlasHCL renders the Atlas HCL schema of the graph. The schema is named
// after the package of the generated code.
func (g *Graph) AtlasHCL() ([]byte, error) {
	if _, err := g.Storage(); err != nil {
		return nil, err
	}
	tables, err := g.checkedTables()
	if err != nil {
		return nil, err
	}
	return schema.MarshalHCL(g.PackageName(), g.SQLDialect(), tables)
}

// PackageName returns the Go package name of the generated files: the
// configured package, or the base name of the target directory.
func (g *Graph) PackageName() string {
	switch {
	case g.Package != "":
		return g.Package
	case g.Target != "":
		if base := filepath.Base(filepath.Clean(g.Target)); token.IsIdentifier(base) {
			return base
		}
	}
	return "model"
}
