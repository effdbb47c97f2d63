package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/pergen/dialect"
	"github.com/syssam/pergen/schema/field"
)

// Dialect renders the statements of a script. Every statement it returns
// ends with ";" and a blank line.
type Dialect interface {
	// Name returns the dialect name.
	Name() string
	// CreateTable renders the CREATE TABLE statement of t.
	CreateTable(t *Table) string
	// AddForeignKey renders the statement adding fk to t, or "" if foreign
	// keys are declared inline.
	AddForeignKey(t *Table, fk *ForeignKey) string
	// CreateIndex renders the CREATE INDEX statement of idx.
	CreateIndex(t *Table, idx *Index) string
}

// ForDialect returns the renderer of the named dialect.
func ForDialect(name string) (Dialect, error) {
	switch name {
	case dialect.MySQL:
		return MySQL{}, nil
	case dialect.Postgres:
		return Postgres{}, nil
	case dialect.SQLite:
		return SQLite{}, nil
	default:
		return nil, fmt.Errorf("schema: unsupported dialect %q", name)
	}
}

// MySQL renders MySQL 5 scripts.
type MySQL struct{}

// Name implements Dialect.
func (MySQL) Name() string { return dialect.MySQL }

// CreateTable implements Dialect.
func (d MySQL) CreateTable(t *Table) string {
	return createTable(t, columnDef(d.columnType, "auto_increment"), true, false)
}

// AddForeignKey implements Dialect.
func (MySQL) AddForeignKey(t *Table, fk *ForeignKey) string {
	return fmt.Sprintf("ALTER TABLE %s ADD (%s);\n\n", t.Name, constraint(fk))
}

// CreateIndex implements Dialect.
func (MySQL) CreateIndex(t *Table, idx *Index) string { return createIndex(t, idx) }

func (MySQL) columnType(c *Column) string {
	return typeName(c, "DOUBLE")
}

// Postgres renders PostgreSQL scripts.
type Postgres struct{}

// Name implements Dialect.
func (Postgres) Name() string { return dialect.Postgres }

// CreateTable implements Dialect.
func (d Postgres) CreateTable(t *Table) string {
	def := func(c *Column) string {
		if c.Increment {
			return c.Name + " SERIAL NOT NULL"
		}
		return columnDef(d.columnType, "")(c)
	}
	return createTable(t, def, true, false)
}

// AddForeignKey implements Dialect.
func (Postgres) AddForeignKey(t *Table, fk *ForeignKey) string {
	return fmt.Sprintf("ALTER TABLE %s ADD %s;\n\n", t.Name, constraint(fk))
}

// CreateIndex implements Dialect.
func (Postgres) CreateIndex(t *Table, idx *Index) string { return createIndex(t, idx) }

func (Postgres) columnType(c *Column) string {
	return typeName(c, "DOUBLE PRECISION")
}

// SQLite renders SQLite scripts. SQLite cannot add constraints to an
// existing table, so foreign keys are part of CREATE TABLE.
type SQLite struct{}

// Name implements Dialect.
func (SQLite) Name() string { return dialect.SQLite }

// CreateTable implements Dialect.
func (d SQLite) CreateTable(t *Table) string {
	def := func(c *Column) string {
		if c.Increment {
			return c.Name + " INTEGER PRIMARY KEY AUTOINCREMENT"
		}
		return columnDef(d.columnType, "")(c)
	}
	return createTable(t, def, !hasIncrement(t), true)
}

// AddForeignKey implements Dialect.
func (SQLite) AddForeignKey(*Table, *ForeignKey) string { return "" }

// CreateIndex implements Dialect.
func (SQLite) CreateIndex(t *Table, idx *Index) string { return createIndex(t, idx) }

func (SQLite) columnType(c *Column) string {
	return typeName(c, "REAL")
}

// typeName returns the SQL type of c, real being the dialect name of REAL.
func typeName(c *Column, real string) string {
	switch c.Type {
	case field.TypeDate:
		return "DATE"
	case field.TypeReal:
		return real
	case field.TypeString:
		size := c.Size
		if size <= 0 {
			size = field.DefaultStringSize
		}
		return "VARCHAR(" + strconv.Itoa(size) + ")"
	default:
		return "INTEGER"
	}
}

// columnDef returns a column renderer: name, type, NOT NULL for
// non-nullable columns and the increment keyword for surrogate keys.
func columnDef(typ func(*Column) string, increment string) func(*Column) string {
	return func(c *Column) string {
		var b strings.Builder
		b.WriteString(c.Name)
		b.WriteByte(' ')
		b.WriteString(typ(c))
		if !c.Nullable {
			b.WriteString(" NOT NULL")
		}
		if c.Increment && increment != "" {
			b.WriteByte(' ')
			b.WriteString(increment)
		}
		return b.String()
	}
}

func createTable(t *Table, def func(*Column) string, pk, fks bool) string {
	lines := make([]string, 0, len(t.Columns)+1+len(t.ForeignKeys))
	for _, c := range t.Columns {
		lines = append(lines, def(c))
	}
	if pk && len(t.PrimaryKey) > 0 {
		lines = append(lines, fmt.Sprintf("CONSTRAINT PK_%s PRIMARY KEY (%s)", t.Name, columnNames(t.PrimaryKey)))
	}
	if fks {
		for _, fk := range t.ForeignKeys {
			lines = append(lines, constraint(fk))
		}
	}
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(t.Name)
	b.WriteString(" (\n")
	for i, l := range lines {
		b.WriteString("  ")
		b.WriteString(l)
		if i < len(lines)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(");\n\n")
	return b.String()
}

func constraint(fk *ForeignKey) string {
	return fmt.Sprintf("CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s)",
		fk.Symbol, columnNames(fk.Columns), fk.RefTable.Name, columnNames(fk.RefColumns))
}

func createIndex(t *Table, idx *Index) string {
	kind := "INDEX"
	if idx.Unique {
		kind = "UNIQUE INDEX"
	}
	return fmt.Sprintf("CREATE %s %s ON %s(%s);\n\n", kind, idx.Name, t.Name, columnNames(idx.Columns))
}

func columnNames(columns []*Column) string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

func hasIncrement(t *Table) bool {
	for _, c := range t.PrimaryKey {
		if c.Increment {
			return true
		}
	}
	return false
}
