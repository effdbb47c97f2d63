package schema

import (
	"fmt"

	"ariga.io/atlas/sql/mysql"
	"ariga.io/atlas/sql/postgres"
	"ariga.io/atlas/sql/schema"
	"ariga.io/atlas/sql/sqlite"

	"github.com/syssam/pergen/dialect"
	"github.com/syssam/pergen/schema/field"
)

// Atlas converts the tables to an Atlas schema named name, typed for the
// given dialect.
func Atlas(name, dialectName string, tables []*Table) (*schema.Schema, error) {
	if err := dialect.Validate(dialectName); err != nil {
		return nil, err
	}
	s := schema.New(name)
	ats := make(map[string]*schema.Table, len(tables))
	for _, t := range tables {
		at := schema.NewTable(t.Name)
		for _, c := range t.Columns {
			at.AddColumns(atlasColumn(dialectName, c))
		}
		pk := make([]*schema.Column, 0, len(t.PrimaryKey))
		for _, c := range t.PrimaryKey {
			ac, _ := at.Column(c.Name)
			pk = append(pk, ac)
		}
		at.SetPrimaryKey(schema.NewPrimaryKey(pk...))
		ats[t.Name] = at
		s.AddTables(at)
	}
	for _, t := range tables {
		at := ats[t.Name]
		for _, fk := range t.ForeignKeys {
			ref, ok := ats[fk.RefTable.Name]
			if !ok {
				return nil, fmt.Errorf("schema: foreign key %s references unknown table %q", fk.Symbol, fk.RefTable.Name)
			}
			afk := schema.NewForeignKey(fk.Symbol).SetRefTable(ref)
			for _, c := range fk.Columns {
				ac, _ := at.Column(c.Name)
				afk.AddColumns(ac)
			}
			for _, c := range fk.RefColumns {
				ac, _ := ref.Column(c.Name)
				afk.AddRefColumns(ac)
			}
			at.AddForeignKeys(afk)
		}
		for _, idx := range t.Indexes {
			ai := schema.NewIndex(idx.Name)
			if idx.Unique {
				ai = schema.NewUniqueIndex(idx.Name)
			}
			for _, c := range idx.Columns {
				ac, _ := at.Column(c.Name)
				ai.AddColumns(ac)
			}
			at.AddIndexes(ai)
		}
	}
	return s, nil
}

// MarshalHCL returns the Atlas HCL document of the tables for the given
// dialect.
func MarshalHCL(name, dialectName string, tables []*Table) ([]byte, error) {
	s, err := Atlas(name, dialectName, tables)
	if err != nil {
		return nil, err
	}
	switch dialectName {
	case dialect.Postgres:
		return postgres.MarshalHCL(s)
	case dialect.SQLite:
		return sqlite.MarshalHCL(s)
	default:
		return mysql.MarshalHCL(s)
	}
}

func atlasColumn(dialectName string, c *Column) *schema.Column {
	if c.Increment {
		switch dialectName {
		case dialect.Postgres:
			return schema.NewColumn(c.Name).SetType(&postgres.SerialType{T: postgres.TypeSerial})
		case dialect.SQLite:
			return schema.NewIntColumn(c.Name, "integer").AddAttrs(&sqlite.AutoIncrement{})
		default:
			return schema.NewIntColumn(c.Name, "int").AddAttrs(&mysql.AutoIncrement{})
		}
	}
	switch c.Type {
	case field.TypeDate:
		if c.Nullable {
			return schema.NewNullTimeColumn(c.Name, "date")
		}
		return schema.NewTimeColumn(c.Name, "date")
	case field.TypeReal:
		typ := "double"
		switch dialectName {
		case dialect.Postgres:
			typ = "double precision"
		case dialect.SQLite:
			typ = "real"
		}
		if c.Nullable {
			return schema.NewNullFloatColumn(c.Name, typ)
		}
		return schema.NewFloatColumn(c.Name, typ)
	case field.TypeString:
		size := c.Size
		if size <= 0 {
			size = field.DefaultStringSize
		}
		if c.Nullable {
			return schema.NewNullStringColumn(c.Name, "varchar", schema.StringSize(size))
		}
		return schema.NewStringColumn(c.Name, "varchar", schema.StringSize(size))
	default:
		typ := "int"
		if dialectName != dialect.MySQL {
			typ = "integer"
		}
		if c.Nullable {
			return schema.NewNullIntColumn(c.Name, typ)
		}
		return schema.NewIntColumn(c.Name, typ)
	}
}
