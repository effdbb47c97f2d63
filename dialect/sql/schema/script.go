package schema

import (
	"strings"
)

// Script renders the DDL script of the given tables. Statements come in a
// fixed order: entity tables, junction tables, foreign keys of entity
// tables, foreign keys of junction tables, then indexes. Within a section,
// tables keep their order in the slice.
func Script(d Dialect, tables []*Table) string {
	primaries, junctions := split(tables)
	var b strings.Builder
	for _, t := range primaries {
		b.WriteString(d.CreateTable(t))
	}
	for _, t := range junctions {
		b.WriteString(d.CreateTable(t))
	}
	for _, group := range [][]*Table{primaries, junctions} {
		for _, t := range group {
			for _, fk := range t.ForeignKeys {
				b.WriteString(d.AddForeignKey(t, fk))
			}
		}
	}
	for _, t := range tables {
		for _, idx := range t.Indexes {
			b.WriteString(d.CreateIndex(t, idx))
		}
	}
	return b.String()
}

func split(tables []*Table) (primaries, junctions []*Table) {
	for _, t := range tables {
		if t.Junction {
			junctions = append(junctions, t)
		} else {
			primaries = append(primaries, t)
		}
	}
	return primaries, junctions
}

// Statements splits a script into its statements, without the trailing
// semicolons. Empty statements are dropped.
func Statements(script string) []string {
	var stmts []string
	for _, s := range strings.Split(script, ";") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
