package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/pergen/schema/field"
)

func TestCheck(t *testing.T) {
	r := Check(kennelTables())
	assert.Empty(t, r.Errors)
	assert.Empty(t, r.Warnings)
	assert.NoError(t, r.Err())
	assert.Equal(t, "No issues found", r.String())
}

func TestCheck_Problems(t *testing.T) {
	tests := []struct {
		name   string
		tables func() []*Table
		want   string
	}{
		{
			name: "duplicate_table",
			tables: func() []*Table {
				return append(kennelTables(), NewTable("DOG").AddPrimary(KeyColumn("DOG_ID")))
			},
			want: "DOG: duplicate table",
		},
		{
			name: "duplicate_column",
			tables: func() []*Table {
				a := NewTable("A").
					AddPrimary(KeyColumn("A_ID")).
					AddColumn(DataColumn("X", field.TypeInteger, 0)).
					AddColumn(DataColumn("X", field.TypeString, 0))
				return []*Table{a}
			},
			want: "A.X: duplicate column",
		},
		{
			name: "missing_key",
			tables: func() []*Table {
				return []*Table{NewTable("A").AddColumn(DataColumn("X", field.TypeInteger, 0))}
			},
			want: "A: primary key must be the single column A_ID",
		},
		{
			name: "misnamed_key",
			tables: func() []*Table {
				return []*Table{NewTable("A").AddPrimary(KeyColumn("ID"))}
			},
			want: "A.ID: primary key must be named A_ID",
		},
		{
			name: "generated_entity_key",
			tables: func() []*Table {
				id := KeyColumn("A_ID")
				id.Increment = true
				return []*Table{NewTable("A").AddPrimary(id).AddColumn(DataColumn("X", field.TypeDate, 0))}
			},
			want: "A.A_ID: only junction tables have a generated key",
		},
		{
			name: "duplicate_index",
			tables: func() []*Table {
				tables := kennelTables()
				tables[0].AddIndex("INDEX_DOG1", true, []string{"AGE"})
				return tables
			},
			want: "DOG: duplicate index INDEX_DOG1",
		},
		{
			name: "empty_index",
			tables: func() []*Table {
				tables := kennelTables()
				tables[1].AddIndex("INDEX_MASTER1", true, []string{"MISSING"})
				return tables
			},
			want: "MASTER: index INDEX_MASTER1 has no columns",
		},
		{
			name: "unknown_reference",
			tables: func() []*Table {
				tables := kennelTables()
				ghost := NewTable("GHOST").AddPrimary(KeyColumn("GHOST_ID"))
				tables[1].AddColumn(KeyColumn("GHOST_ID"))
				tables[1].AddForeignKey(NewForeignKey(tables[1], ghost))
				return tables
			},
			want: "MASTER: foreign key FK_MASTER_GHOST references unknown table GHOST",
		},
		{
			name: "unlinked_reference",
			tables: func() []*Table {
				tables := kennelTables()
				tables[1].AddForeignKey(NewForeignKey(tables[1], tables[2]))
				return tables
			},
			want: "MASTER: foreign key FK_MASTER_KENNEL must link one column to one column",
		},
		{
			name: "junction_arity",
			tables: func() []*Table {
				tables := kennelTables()
				tables[3].ForeignKeys = tables[3].ForeignKeys[:1]
				return tables
			},
			want: "DOG_MASTER: junction table has 1 foreign keys, want 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Check(tt.tables())
			require.Error(t, r.Err())
			var messages []string
			for _, p := range r.Errors {
				messages = append(messages, p.Error())
			}
			assert.Contains(t, messages, tt.want)
			assert.Contains(t, r.String(), "Errors:\n  - ")
		})
	}
}

func TestCheck_Warnings(t *testing.T) {
	tables := append(kennelTables(), NewTable("EMPTY").AddPrimary(KeyColumn("EMPTY_ID")))
	r := Check(tables)
	assert.NoError(t, r.Err())
	require.Len(t, r.Warnings, 1)
	assert.Equal(t, "EMPTY: table has no column besides its key", r.Warnings[0].Error())
	assert.Equal(t, "Warnings:\n  - EMPTY: table has no column besides its key\n", r.String())
}
