package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/pergen/compiler/gen"
)

// Receiver name of the DAO methods.
const daoRecv = "dao"

// genDAO generates the data-access file ({entity}_dao.go).
func genDAO(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := h.NewFile(h.Pkg())
	genStatements(h, f, t)

	rt := h.RuntimePkg()
	f.Line()
	f.Commentf("%s reads and writes %s values in the %s table.", t.DAOName(), t.StructName(), t.Table())
	f.Type().Id(t.DAOName()).Struct(
		jen.Id("conn").Qual(rt, "Conn"),
	)
	f.Line()
	f.Commentf("New%s returns a %s running its statements on conn.", t.DAOName(), t.DAOName())
	f.Func().Id("New"+t.DAOName()).Params(jen.Id("conn").Qual(rt, "Conn")).Op("*").Id(t.DAOName()).Block(
		jen.Return(jen.Op("&").Id(t.DAOName()).Values(jen.Dict{jen.Id("conn"): jen.Id("conn")})),
	)

	genGetByID(h, f, t)
	genGetAll(h, f, t)
	genDelete(h, f, t)
	genSave(h, f, t)
	genScan(h, f, t)
	genLoad(h, f, t)
	return f
}

// stmt names the package-level constants of a type.
type stmt struct{ t *gen.Type }

func (s stmt) name(suffix string) string { return gen.CamelCase(s.t.StructName()) + suffix }

func (s stmt) edge(e *gen.Edge, suffix string) string {
	return gen.CamelCase(s.t.StructName()) + e.Type.StructName() + suffix
}

// genStatements generates the statement constants of the DAO.
func genStatements(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	s := stmt{t}
	b := h.Builder()
	f.Const().DefsFunc(func(group *jen.Group) {
		def := func(name, query string) {
			group.Id(name).Op("=").Lit(query)
		}
		def(s.name("Select"), selectStmt(b, t))
		def(s.name("SelectByID"), selectByIDStmt(b, t))
		def(s.name("NextID"), nextIDStmt(b, t))
		def(s.name("Insert"), h.Statement(insertStmt(t)))
		if q := updateStmt(b, t); q != "" {
			def(s.name("Update"), q)
		}
		def(s.name("Delete"), deleteStmt(b, t))
		for _, e := range t.ManyEdges() {
			def(s.edge(e, "IDs"), listStmt(b, e))
		}
		for _, e := range t.M2MEdges() {
			def(s.edge(e, "Unlink"), unlinkStmt(b, e))
			def(s.edge(e, "Link"), h.Statement(linkStmt(e)))
		}
	})
}

func daoReceiver(t *gen.Type) *jen.Statement {
	return jen.Id(daoRecv).Op("*").Id(t.DAOName())
}

func conn() *jen.Statement { return jen.Id(daoRecv).Dot("conn") }

// daoErr returns the wrapped error of an operation.
func daoErr(h gen.GeneratorHelper, t *gen.Type, op string) *jen.Statement {
	return jen.Qual(h.RuntimePkg(), "NewDAOError").Call(jen.Lit(t.StructName()), jen.Lit(op), jen.Err())
}

// genGetByID generates the GetByID method: one row, then the identifier
// lists of the MANY relations.
func genGetByID(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	s := stmt{t}
	f.Line()
	f.Commentf("GetByID returns the %s with the given identifier, with the identifiers", t.StructName())
	f.Comment("of its relations. It returns a *pergen.NotFoundError if there is no such row.")
	f.Func().Params(daoReceiver(t)).Id("GetByID").
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("id").Int64()).
		Params(jen.Op("*").Id(t.StructName()), jen.Error()).
		Block(
			jen.List(jen.Id("rows"), jen.Err()).Op(":=").Add(conn()).Dot("QueryContext").Call(jen.Id("ctx"), jen.Id(s.name("SelectByID")), jen.Id("id")),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), daoErr(h, t, "get"))),
			jen.Defer().Id("rows").Dot("Close").Call(),
			jen.If(jen.Op("!").Id("rows").Dot("Next").Call()).Block(
				jen.If(jen.Err().Op(":=").Id("rows").Dot("Err").Call(), jen.Err().Op("!=").Nil()).Block(
					jen.Return(jen.Nil(), daoErr(h, t, "get")),
				),
				jen.Return(jen.Nil(), jen.Qual(h.RuntimePkg(), "NewNotFoundError").Call(jen.Lit(t.StructName()), jen.Id("id"))),
			),
			jen.List(jen.Id("m"), jen.Err()).Op(":=").Id(daoRecv).Dot("scan").Call(jen.Id("rows")),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), daoErr(h, t, "get"))),
			jen.Comment("Release the connection before the relation queries."),
			jen.If(jen.Err().Op(":=").Id("rows").Dot("Close").Call(), jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Nil(), daoErr(h, t, "get")),
			),
			jen.If(jen.Err().Op(":=").Id(daoRecv).Dot("load").Call(jen.Id("ctx"), jen.Id("m")), jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Nil(), daoErr(h, t, "get")),
			),
			jen.Return(jen.Id("m"), jen.Nil()),
		)
}

// genGetAll generates the GetAll method.
func genGetAll(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	s := stmt{t}
	list := t.Label()
	if list == "rows" {
		list = "all"
	}
	f.Line()
	f.Commentf("GetAll returns every %s of the table in result-set order.", t.StructName())
	f.Func().Params(daoReceiver(t)).Id("GetAll").
		Params(jen.Id("ctx").Qual("context", "Context")).
		Params(jen.Index().Op("*").Id(t.StructName()), jen.Error()).
		Block(
			jen.List(jen.Id("rows"), jen.Err()).Op(":=").Add(conn()).Dot("QueryContext").Call(jen.Id("ctx"), jen.Id(s.name("Select"))),
			jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), daoErr(h, t, "list"))),
			jen.Defer().Id("rows").Dot("Close").Call(),
			jen.Var().Id(list).Index().Op("*").Id(t.StructName()),
			jen.For(jen.Id("rows").Dot("Next").Call()).Block(
				jen.List(jen.Id("m"), jen.Err()).Op(":=").Id(daoRecv).Dot("scan").Call(jen.Id("rows")),
				jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), daoErr(h, t, "list"))),
				jen.Id(list).Op("=").Append(jen.Id(list), jen.Id("m")),
			),
			jen.If(jen.Err().Op(":=").Id("rows").Dot("Err").Call(), jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Nil(), daoErr(h, t, "list")),
			),
			jen.If(jen.Err().Op(":=").Id("rows").Dot("Close").Call(), jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Nil(), daoErr(h, t, "list")),
			),
			jen.For(jen.List(jen.Id("_"), jen.Id("m")).Op(":=").Range().Id(list)).Block(
				jen.If(jen.Err().Op(":=").Id(daoRecv).Dot("load").Call(jen.Id("ctx"), jen.Id("m")), jen.Err().Op("!=").Nil()).Block(
					jen.Return(jen.Nil(), daoErr(h, t, "list")),
				),
			),
			jen.Return(jen.Id(list), jen.Nil()),
		)
}

// genDelete generates the Delete method: the junction rows first, then
// the row itself.
func genDelete(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	s := stmt{t}
	f.Line()
	f.Commentf("Delete deletes the %s with the given identifier and its many-to-many links.", t.StructName())
	f.Func().Params(daoReceiver(t)).Id("Delete").
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("id").Int64()).
		Error().
		BlockFunc(func(group *jen.Group) {
			for _, e := range t.M2MEdges() {
				group.Add(execOrReturn(h, t, "delete", jen.Id(s.edge(e, "Unlink")), jen.Id("id")))
			}
			group.Add(execOrReturn(h, t, "delete", jen.Id(s.name("Delete")), jen.Id("id")))
			group.Return(jen.Nil())
		})
}

// genSave generates the Save method.
func genSave(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	s := stmt{t}
	rt := h.RuntimePkg()
	values := func() []jen.Code {
		var args []jen.Code
		for _, fd := range t.Fields {
			args = append(args, jen.Qual(rt, "Value").Call(jen.Id("m").Dot(fd.Member())))
		}
		for _, e := range t.OneEdges() {
			args = append(args, jen.Qual(rt, "Value").Call(jen.Id("m").Dot(e.StructField())))
		}
		return args
	}
	f.Line()
	f.Comment("Save inserts m if it has no identifier, and updates it otherwise. On insert,")
	f.Comment("the next identifier is stored on m. The many-to-many links of m are replaced")
	f.Comment("by its lists. A *pergen.NullityError is returned before any statement if a")
	f.Comment("required member is unset.")
	f.Func().Params(daoReceiver(t)).Id("Save").
		Params(jen.Id("ctx").Qual("context", "Context"), jen.Id("m").Op("*").Id(t.StructName())).
		Error().
		BlockFunc(func(group *jen.Group) {
			nullity := func(cond *jen.Statement, member string) {
				group.If(cond).Block(
					jen.Return(jen.Qual(rt, "NewNullityError").Call(jen.Lit(t.StructName()), jen.Lit(member))),
				)
			}
			for _, fd := range t.Fields {
				if fd.Required {
					nullity(jen.Id("m").Dot(fd.Member()).Op("==").Nil(), fd.Name)
				}
			}
			for _, e := range t.OneEdges() {
				nullity(jen.Id("m").Dot(e.StructField()).Op("==").Nil(), e.StructField())
			}
			for _, e := range t.ManyEdges() {
				if !e.MayBeZero {
					nullity(jen.Len(jen.Id("m").Dot(e.StructField())).Op("==").Lit(0), e.StructField())
				}
			}

			insert := []jen.Code{
				jen.List(jen.Id("id"), jen.Err()).Op(":=").Qual(rt, "NextID").Call(jen.Id("ctx"), conn(), jen.Id(s.name("NextID"))),
				jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(daoErr(h, t, "save"))),
				execOrReturn(h, t, "save", jen.Id(s.name("Insert")), append([]jen.Code{jen.Id("id")}, values()...)...),
				jen.Id("m").Dot("id").Op("=").Op("&").Id("id"),
			}
			var update []jen.Code
			if updateStmt(h.Builder(), t) != "" {
				update = append(update, execOrReturn(h, t, "save", jen.Id(s.name("Update")), append(values(), jen.Op("*").Id("m").Dot("id"))...))
			}
			for _, e := range t.M2MEdges() {
				update = append(update, execOrReturn(h, t, "save", jen.Id(s.edge(e, "Unlink")), jen.Op("*").Id("m").Dot("id")))
			}
			if len(update) == 0 {
				group.If(jen.Id("m").Dot("id").Op("==").Nil()).Block(insert...)
			} else {
				group.If(jen.Id("m").Dot("id").Op("==").Nil()).Block(insert...).Else().Block(update...)
			}
			for _, e := range t.M2MEdges() {
				id := gen.CamelCase(e.Type.StructName()) + "ID"
				group.For(jen.List(jen.Id("_"), jen.Id(id)).Op(":=").Range().Id("m").Dot(e.StructField())).Block(
					execOrReturn(h, t, "save", jen.Id(s.edge(e, "Link")), jen.Op("*").Id("m").Dot("id"), jen.Id(id)),
				)
			}
			group.Return(jen.Nil())
		})
}

// genScan generates the scan method reading the current row.
func genScan(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	rt := h.RuntimePkg()
	local := func(name string) string { return "v" + name }
	f.Line()
	f.Func().Params(daoReceiver(t)).Id("scan").
		Params(jen.Id("rows").Op("*").Qual("database/sql", "Rows")).
		Params(jen.Op("*").Id(t.StructName()), jen.Error()).
		BlockFunc(func(group *jen.Group) {
			dests := []jen.Code{jen.Op("&").Id(local("ID"))}
			fields := jen.Dict{jen.Id("id"): jen.Op("&").Id(local("ID"))}
			group.Var().DefsFunc(func(defs *jen.Group) {
				defs.Id(local("ID")).Int64()
				for _, fd := range t.Fields {
					defs.Id(local(fd.Getter())).Qual("database/sql", "Null").Types(h.BaseType(fd))
					dests = append(dests, jen.Op("&").Id(local(fd.Getter())))
					fields[jen.Id(fd.Member())] = jen.Qual(rt, "Ptr").Call(jen.Id(local(fd.Getter())))
				}
				for _, e := range t.OneEdges() {
					defs.Id(local(e.Getter())).Qual("database/sql", "Null").Types(jen.Int64())
					dests = append(dests, jen.Op("&").Id(local(e.Getter())))
					fields[jen.Id(e.StructField())] = jen.Qual(rt, "Ptr").Call(jen.Id(local(e.Getter())))
				}
			})
			group.If(jen.Err().Op(":=").Id("rows").Dot("Scan").Call(dests...), jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Nil(), jen.Err()),
			)
			group.Return(jen.Op("&").Id(t.StructName()).Values(fields), jen.Nil())
		})
}

// genLoad generates the load method filling the identifier lists of the
// MANY relations.
func genLoad(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	s := stmt{t}
	many := t.ManyEdges()
	params := []jen.Code{jen.Id("ctx").Qual("context", "Context"), jen.Id("m").Op("*").Id(t.StructName())}
	if len(many) == 0 {
		params[0], params[1] = jen.Id("_").Qual("context", "Context"), jen.Id("_").Op("*").Id(t.StructName())
	}
	f.Line()
	f.Func().Params(daoReceiver(t)).Id("load").Params(params...).Error().BlockFunc(func(group *jen.Group) {
		if len(many) > 0 {
			group.Var().Err().Error()
		}
		for _, e := range many {
			group.If(
				jen.List(jen.Id("m").Dot(e.StructField()), jen.Err()).Op("=").Qual(h.RuntimePkg(), "SelectIDs").
					Call(jen.Id("ctx"), conn(), jen.Id(s.edge(e, "IDs")), jen.Op("*").Id("m").Dot("id")),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Err()))
		}
		group.Return(jen.Nil())
	})
}

// execOrReturn runs a statement and returns its wrapped error.
func execOrReturn(h gen.GeneratorHelper, t *gen.Type, op string, query jen.Code, args ...jen.Code) *jen.Statement {
	call := append([]jen.Code{jen.Id("ctx"), query}, args...)
	return jen.If(
		jen.List(jen.Id("_"), jen.Err()).Op(":=").Add(conn()).Dot("ExecContext").Call(call...),
		jen.Err().Op("!=").Nil(),
	).Block(jen.Return(daoErr(h, t, op)))
}
