// Package schema holds the relational model of a generated schema and
// renders it as a DDL script in one of the supported dialects.
package schema

import (
	"github.com/syssam/pergen/schema/field"
)

// Table schema definition for SQL dialects.
type Table struct {
	Name        string
	Columns     []*Column
	columns     map[string]*Column
	PrimaryKey  []*Column
	ForeignKeys []*ForeignKey
	Indexes     []*Index
	// Junction marks the join table of a many-to-many relation.
	Junction bool
}

// NewTable returns a new table with the given name.
func NewTable(name string) *Table {
	return &Table{
		Name:    name,
		columns: make(map[string]*Column),
	}
}

// SetJunction marks the table as a junction table.
func (t *Table) SetJunction() *Table {
	t.Junction = true
	return t
}

// AddPrimary adds a new primary key to the table.
func (t *Table) AddPrimary(c *Column) *Table {
	t.PrimaryKey = append(t.PrimaryKey, c)
	return t.AddColumn(c)
}

// AddColumn adds a new column to the table.
func (t *Table) AddColumn(c *Column) *Table {
	t.columns[c.Name] = c
	t.Columns = append(t.Columns, c)
	return t
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	c, ok := t.columns[name]
	return c, ok
}

// AddForeignKey adds a foreign key to the table.
func (t *Table) AddForeignKey(fk *ForeignKey) *Table {
	t.ForeignKeys = append(t.ForeignKeys, fk)
	return t
}

// AddIndex creates and adds a new index to the table from the given column
// names. Unknown names are skipped.
func (t *Table) AddIndex(name string, unique bool, columns []string) *Table {
	idx := &Index{Name: name, Unique: unique}
	for _, n := range columns {
		if c, ok := t.columns[n]; ok {
			idx.Columns = append(idx.Columns, c)
		}
	}
	t.Indexes = append(t.Indexes, idx)
	return t
}

// Column schema definition for SQL dialects.
type Column struct {
	Name string
	// Type is the data type of the column. Key columns are INTEGER.
	Type field.Type
	// Size is the length of VARCHAR columns.
	Size int
	// Nullable columns are rendered without NOT NULL.
	Nullable bool
	// Increment marks an auto-incremented surrogate key.
	Increment bool
}

// KeyColumn returns a non-nullable INTEGER column, used for identifiers
// and foreign keys.
func KeyColumn(name string) *Column {
	return &Column{Name: name, Type: field.TypeInteger}
}

// DataColumn returns a nullable column of the given type.
func DataColumn(name string, t field.Type, size int) *Column {
	return &Column{Name: name, Type: t, Size: size, Nullable: true}
}

// ForeignKey definition for creation.
type ForeignKey struct {
	Symbol     string
	Columns    []*Column
	RefTable   *Table
	RefColumns []*Column
}

// NewForeignKey returns the foreign key of table t referencing the
// identifier column of ref: FK_<T>_<REF> on <REF>_ID.
func NewForeignKey(t, ref *Table) *ForeignKey {
	column := ref.Name + "_ID"
	fk := &ForeignKey{
		Symbol:   "FK_" + t.Name + "_" + ref.Name,
		RefTable: ref,
	}
	if c, ok := t.Column(column); ok {
		fk.Columns = []*Column{c}
	}
	if c, ok := ref.Column(column); ok {
		fk.RefColumns = []*Column{c}
	}
	return fk
}

// Index definition for table index.
type Index struct {
	Name    string
	Unique  bool
	Columns []*Column
}
