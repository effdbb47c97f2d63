package sql

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/syssam/pergen/compiler/gen"
)

// Statement texts of a DAO. Columns are the identifier, the fields in
// declaration order, then the ONE foreign keys. The builders render the
// placeholders of their dialect; INSERT texts use "?" and are rewritten by
// the generator helper.

func selectColumns(b sq.StatementBuilderType, t *gen.Type) sq.SelectBuilder {
	return b.Select(append([]string{t.IDColumn()}, t.Columns()...)...).From(t.Table())
}

func selectStmt(b sq.StatementBuilderType, t *gen.Type) string {
	return toSQL(selectColumns(b, t))
}

func selectByIDStmt(b sq.StatementBuilderType, t *gen.Type) string {
	return toSQL(selectColumns(b, t).Where(sq.Eq{t.IDColumn(): 0}))
}

func nextIDStmt(b sq.StatementBuilderType, t *gen.Type) string {
	return toSQL(b.Select(fmt.Sprintf("MAX(%s) AS NEWID", t.IDColumn())).From(t.Table()))
}

// insertStmt keeps the "INSERT INTO T(A, B) VALUES(?, ?)" layout, which
// squirrel's InsertBuilder renders as "INSERT INTO T (A,B) VALUES (?,?)".
func insertStmt(t *gen.Type) string {
	columns := append([]string{t.IDColumn()}, t.Columns()...)
	return insertInto(t.Table(), columns...)
}

// updateStmt returns "" for a type without data columns.
func updateStmt(b sq.StatementBuilderType, t *gen.Type) string {
	columns := t.Columns()
	if len(columns) == 0 {
		return ""
	}
	u := b.Update(t.Table())
	for _, c := range columns {
		u = u.Set(c, 0)
	}
	return toSQL(u.Where(sq.Eq{t.IDColumn(): 0}))
}

func deleteStmt(b sq.StatementBuilderType, t *gen.Type) string {
	return toSQL(b.Delete(t.Table()).Where(sq.Eq{t.IDColumn(): 0}))
}

// listStmt selects the identifiers of a MANY edge: from the junction table
// for M2M edges, from the target table by foreign key otherwise.
func listStmt(b sq.StatementBuilderType, e *gen.Edge) string {
	return toSQL(b.Select(e.Column()).From(e.ListTable()).Where(sq.Eq{e.Owner.IDColumn(): 0}))
}

func unlinkStmt(b sq.StatementBuilderType, e *gen.Edge) string {
	return toSQL(b.Delete(e.Table).Where(sq.Eq{e.Owner.IDColumn(): 0}))
}

func linkStmt(e *gen.Edge) string {
	return insertInto(e.Table, e.Owner.IDColumn(), e.Column())
}

func insertInto(table string, columns ...string) string {
	values := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s(%s) VALUES(%s)", table, strings.Join(columns, ", "), values)
}

// toSQL renders a statement. The builders only fail on an empty table
// name or column list, which a resolved graph never has.
func toSQL(s sq.Sqlizer) string {
	query, _, err := s.ToSql()
	if err != nil {
		panic(fmt.Sprintf("pergen/gen: render statement: %v", err))
	}
	return query
}
