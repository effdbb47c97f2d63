package sql

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/pergen/compiler/gen"
)

// genEntity generates the value object file ({entity}.go).
func genEntity(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := h.NewFile(h.Pkg())
	genEntityStruct(h, f, t)

	r := t.Receiver()
	recv := func() *jen.Statement { return jen.Id(r).Op("*").Id(t.StructName()) }

	f.Line()
	f.Commentf("ID returns the identifier of the %s, nil until it is saved.", t.StructName())
	f.Func().Params(recv()).Id("ID").Params().Op("*").Int64().Block(
		jen.Return(jen.Id(r).Dot("id")),
	)
	f.Line()
	f.Comment("SetID sets the identifier. Save inserts a value without identifier and updates the others.")
	f.Func().Params(recv()).Id("SetID").Params(jen.Id(param("id", r)).Op("*").Int64()).Block(
		jen.Id(r).Dot("id").Op("=").Id(param("id", r)),
	)

	for _, fd := range t.Fields {
		genAccessors(f, recv, r, fd.Getter(), fd.Setter(), fd.Member(), h.GoType(fd))
	}
	for _, e := range t.OneEdges() {
		genAccessors(f, recv, r, e.Getter(), e.Setter(), e.StructField(), jen.Op("*").Int64())
	}
	for _, e := range t.ManyEdges() {
		genListAccessors(f, recv, r, e)
	}
	return f
}

// genEntityStruct generates the value object struct. Every member is
// unexported and nil when unset.
func genEntityStruct(h gen.GeneratorHelper, f *jen.File, t *gen.Type) {
	f.Commentf("%s is the value object of the %s table.", t.StructName(), t.Table())
	f.Type().Id(t.StructName()).StructFunc(func(group *jen.Group) {
		group.Id("id").Op("*").Int64()
		for _, fd := range t.Fields {
			group.Id(fd.Member()).Add(h.GoType(fd))
		}
		// Foreign keys of ONE relations.
		for _, e := range t.OneEdges() {
			group.Id(e.StructField()).Op("*").Int64()
		}
		// Identifiers of MANY relations.
		for _, e := range t.ManyEdges() {
			group.Id(e.StructField()).Index().Int64()
		}
	})
}

// genAccessors generates the getter and setter of a pointer member.
func genAccessors(f *jen.File, recv func() *jen.Statement, r, getter, setter, member string, typ jen.Code) {
	p := param(member, r)
	f.Line()
	f.Func().Params(recv()).Id(getter).Params().Add(typ).Block(
		jen.Return(jen.Id(r).Dot(member)),
	)
	f.Line()
	f.Func().Params(recv()).Id(setter).Params(jen.Id(p).Add(typ)).Block(
		jen.Id(r).Dot(member).Op("=").Id(p),
	)
}

// genListAccessors generates the accessors of a MANY relation: the list
// getter, the adder and the remover.
func genListAccessors(f *jen.File, recv func() *jen.Statement, r string, e *gen.Edge) {
	member := jen.Id(r).Dot(e.StructField())
	f.Line()
	f.Commentf("%s returns the identifiers of the related %s values.", e.Lister(), e.Type.StructName())
	f.Func().Params(recv()).Id(e.Lister()).Params().Index().Int64().Block(
		jen.Return(member.Clone()),
	)
	id, i := param("id", r), "i"
	if r == i {
		i = "j"
	}
	f.Line()
	f.Commentf("%s adds the identifier of a %s.", e.Adder(), e.Type.StructName())
	f.Func().Params(recv()).Id(e.Adder()).Params(jen.Id(id).Int64()).Block(
		member.Clone().Op("=").Append(member.Clone(), jen.Id(id)),
	)
	f.Line()
	f.Commentf("%s removes the first occurrence of the identifier of a %s.", e.Remover(), e.Type.StructName())
	f.Func().Params(recv()).Id(e.Remover()).Params(jen.Id(id).Int64()).Block(
		jen.If(
			jen.Id(i).Op(":=").Qual("slices", "Index").Call(member.Clone(), jen.Id(id)),
			jen.Id(i).Op(">=").Lit(0),
		).Block(
			member.Clone().Op("=").Qual("slices", "Delete").Call(member.Clone(), jen.Id(i), jen.Id(i).Op("+").Lit(1)),
		),
	)
}

// param returns a parameter name that does not shadow the receiver.
func param(name, receiver string) string {
	if name == receiver {
		return name + "_"
	}
	return name
}
