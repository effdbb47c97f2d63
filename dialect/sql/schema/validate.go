package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Problem is an inconsistency of the relational model, located by table
// and, when it concerns one, column.
type Problem struct {
	Table   string
	Column  string
	Message string
}

func (p *Problem) Error() string {
	if p.Column != "" {
		return fmt.Sprintf("%s.%s: %s", p.Table, p.Column, p.Message)
	}
	return fmt.Sprintf("%s: %s", p.Table, p.Message)
}

// Report lists the problems found by Check. Errors make the script
// unusable; warnings do not.
type Report struct {
	Errors   []*Problem
	Warnings []*Problem
}

func (r *Report) errorf(t *Table, column, format string, args ...any) {
	r.Errors = append(r.Errors, &Problem{Table: t.Name, Column: column, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) warnf(t *Table, format string, args ...any) {
	r.Warnings = append(r.Warnings, &Problem{Table: t.Name, Message: fmt.Sprintf(format, args...)})
}

// Err joins the errors of the report, nil if there are none.
func (r *Report) Err() error {
	errs := make([]error, len(r.Errors))
	for i, p := range r.Errors {
		errs[i] = p
	}
	return errors.Join(errs...)
}

// String lists the errors then the warnings, one per line.
func (r *Report) String() string {
	if len(r.Errors) == 0 && len(r.Warnings) == 0 {
		return "No issues found"
	}
	var b strings.Builder
	for _, section := range []struct {
		title    string
		problems []*Problem
	}{{"Errors", r.Errors}, {"Warnings", r.Warnings}} {
		if len(section.problems) == 0 {
			continue
		}
		b.WriteString(section.title + ":\n")
		for _, p := range section.problems {
			b.WriteString("  - " + p.Error() + "\n")
		}
	}
	return b.String()
}

// Check verifies the tables of a script before it is rendered: unique
// table, column and index names, a single <TABLE>_ID primary key,
// foreign keys referencing the primary key of a table of the script, and
// junction tables linking exactly two tables.
func Check(tables []*Table) *Report {
	r := &Report{}
	byName := make(map[string]*Table, len(tables))
	for _, t := range tables {
		if _, ok := byName[t.Name]; ok {
			r.errorf(t, "", "duplicate table")
			continue
		}
		byName[t.Name] = t
	}
	for _, t := range tables {
		checkKey(r, t)
		checkColumns(r, t)
		checkIndexes(r, t)
		checkForeignKeys(r, t, byName)
	}
	return r
}

func checkKey(r *Report, t *Table) {
	id := t.Name + "_ID"
	switch {
	case len(t.PrimaryKey) != 1:
		r.errorf(t, "", "primary key must be the single column %s", id)
	case t.PrimaryKey[0].Name != id:
		r.errorf(t, t.PrimaryKey[0].Name, "primary key must be named %s", id)
	case t.PrimaryKey[0].Nullable:
		r.errorf(t, id, "primary key is nullable")
	case t.Junction != t.PrimaryKey[0].Increment:
		r.errorf(t, id, "only junction tables have a generated key")
	}
}

func checkColumns(r *Report, t *Table) {
	seen := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		if seen[c.Name] {
			r.errorf(t, c.Name, "duplicate column")
		}
		seen[c.Name] = true
	}
	if !t.Junction && len(t.Columns) <= len(t.PrimaryKey) {
		r.warnf(t, "table has no column besides its key")
	}
}

func checkIndexes(r *Report, t *Table) {
	seen := make(map[string]bool, len(t.Indexes))
	for _, idx := range t.Indexes {
		if seen[idx.Name] {
			r.errorf(t, "", "duplicate index %s", idx.Name)
		}
		seen[idx.Name] = true
		if len(idx.Columns) == 0 {
			r.errorf(t, "", "index %s has no columns", idx.Name)
		}
		for _, c := range idx.Columns {
			if tc, ok := t.Column(c.Name); !ok || tc != c {
				r.errorf(t, c.Name, "index %s names a column of another table", idx.Name)
			}
		}
	}
}

func checkForeignKeys(r *Report, t *Table, tables map[string]*Table) {
	for _, fk := range t.ForeignKeys {
		if len(fk.Columns) != 1 || len(fk.RefColumns) != 1 {
			r.errorf(t, "", "foreign key %s must link one column to one column", fk.Symbol)
			continue
		}
		ref, ok := tables[fk.RefTable.Name]
		if !ok {
			r.errorf(t, "", "foreign key %s references unknown table %s", fk.Symbol, fk.RefTable.Name)
			continue
		}
		if c := fk.Columns[0]; c.Nullable {
			r.errorf(t, c.Name, "foreign key %s is nullable", fk.Symbol)
		}
		if len(ref.PrimaryKey) != 1 || ref.PrimaryKey[0].Name != fk.RefColumns[0].Name {
			r.errorf(t, "", "foreign key %s does not reference the primary key of %s", fk.Symbol, ref.Name)
		}
	}
	if t.Junction && len(t.ForeignKeys) != 2 {
		r.errorf(t, "", "junction table has %d foreign keys, want 2", len(t.ForeignKeys))
	}
}
