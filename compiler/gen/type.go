package gen

import (
	"fmt"
	"strings"

	"github.com/syssam/pergen/schema/edge"
	"github.com/syssam/pergen/schema/field"
	"github.com/syssam/pergen/schema/index"
)

// The following types and their exported methods are used by the emitters
// to generate the assets.
type (
	// Type represents one entity of the graph, its fields, uniqueness rules
	// and relations.
	Type struct {
		// Name holds the original entity name, as declared.
		Name string
		// Fields holds the fields of the entity in declaration order.
		Fields []*Field
		fields map[string]*Field
		// Indexes holds the uniqueness rules in declaration order.
		Indexes []*Index
		// Edges holds the resolved relations of the entity.
		Edges []*Edge
		// derived names.
		table      string
		structName string
	}

	// Field holds the information of an entity field.
	Field struct {
		// Name is the original field name.
		Name string
		// Type is the data type of the field.
		Type field.Type
		// Required indicates the field must be set before saving.
		Required bool
		// Size is the declared string length, 0 if none.
		Size int
		// derived names.
		column      string
		structField string
		getter      string
	}

	// Index is a composite uniqueness rule of an entity.
	Index struct {
		// Seq is the 1-based position of the rule within its entity.
		Seq int
		// Fields are the fields of the rule in declaration order.
		Fields []*Field
		owner  *Type
	}

	// Edge is one side of a resolved relation.
	Edge struct {
		// Type holds a reference to the type this edge is directed to.
		Type *Type
		// Owner holds the type that declares the edge.
		Owner *Type
		// Cardinality of the owner side.
		Cardinality edge.Cardinality
		// MayBeZero allows an empty id list on a MANY side.
		MayBeZero bool
		// M2M indicates a many-to-many relation.
		M2M bool
		// Table holds the junction table name of M2M edges.
		Table string
		// Ref points to the other side of the relation.
		Ref *Edge
	}
)

// NewType creates a type and computes its derived names.
func NewType(name string) *Type {
	return &Type{
		Name:       name,
		fields:     make(map[string]*Field),
		table:      SQLName(name),
		structName: PascalCase(name),
	}
}

// Table returns the SQL name of the type.
func (t *Type) Table() string { return t.table }

// StructName returns the code name of the type.
func (t *Type) StructName() string { return t.structName }

// IDColumn returns the identifier column of the type table.
func (t *Type) IDColumn() string { return t.table + "_ID" }

// Receiver returns the receiver name of the value object methods.
func (t *Type) Receiver() string { return receiver(t.structName) }

// DAOName returns the name of the data-access type.
func (t *Type) DAOName() string { return t.structName + "DAO" }

// FileName returns the base name of the generated files, without extension.
func (t *Type) FileName() string { return strings.ToLower(t.table) }

// Label returns the plural, lower-case name used for local slices.
func (t *Type) Label() string { return lowerFirst(plural(t.structName)) }

// AddField adds a field. It fails if a field with the same original name
// already exists.
func (t *Type) AddField(f *Field) error {
	if _, ok := t.fields[f.Name]; ok {
		return NewFieldAlreadyDefinedError(t.Name, f.Name)
	}
	t.fields[f.Name] = f
	t.Fields = append(t.Fields, f)
	return nil
}

// Field returns the field with the given original name.
func (t *Type) Field(name string) (*Field, bool) {
	f, ok := t.fields[name]
	return f, ok
}

// AddIndex adds a uniqueness rule. Every field of the rule must already be
// defined.
func (t *Type) AddIndex(d *index.Descriptor) (*Index, error) {
	idx := &Index{Seq: len(t.Indexes) + 1, owner: t}
	for _, name := range d.Fields {
		f, ok := t.fields[name]
		if !ok {
			return nil, NewFieldNotDefinedError(t.Name, name)
		}
		idx.Fields = append(idx.Fields, f)
	}
	t.Indexes = append(t.Indexes, idx)
	return idx, nil
}

// OneEdges returns the ONE side edges. Each holds a foreign key column.
func (t *Type) OneEdges() []*Edge {
	return t.edges(func(e *Edge) bool { return e.Unique() })
}

// ManyEdges returns the MANY side edges, one-to-many and many-to-many.
func (t *Type) ManyEdges() []*Edge {
	return t.edges(func(e *Edge) bool { return !e.Unique() })
}

// M2MEdges returns the many-to-many edges.
func (t *Type) M2MEdges() []*Edge {
	return t.edges(func(e *Edge) bool { return e.M2M })
}

func (t *Type) edges(keep func(*Edge) bool) []*Edge {
	var edges []*Edge
	for _, e := range t.Edges {
		if keep(e) {
			edges = append(edges, e)
		}
	}
	return edges
}

// HasDate reports whether one of the fields is a DATE.
func (t *Type) HasDate() bool {
	for _, f := range t.Fields {
		if f.Type == field.TypeDate {
			return true
		}
	}
	return false
}

// Columns returns the data columns of the type table: fields in declaration
// order, then foreign keys of ONE edges in declaration order. The identifier
// column is not included.
func (t *Type) Columns() []string {
	columns := make([]string, 0, len(t.Fields)+len(t.Edges))
	for _, f := range t.Fields {
		columns = append(columns, f.Column())
	}
	for _, e := range t.OneEdges() {
		columns = append(columns, e.Column())
	}
	return columns
}

// String implements fmt.Stringer.
func (t *Type) String() string { return t.Name }

// NewField creates a field from its descriptor and computes its derived names.
func NewField(d *field.Descriptor) *Field {
	return &Field{
		Name:        d.Name,
		Type:        d.Type,
		Required:    d.Required,
		Size:        d.Size,
		column:      SQLName(d.Name),
		structField: CamelCase(d.Name),
		getter:      PascalCase(d.Name),
	}
}

// Column returns the SQL name of the field.
func (f *Field) Column() string { return f.column }

// StructField returns the code name of the field.
func (f *Field) StructField() string { return f.structField }

// Member returns the struct member name, safe to use as a Go identifier.
func (f *Field) Member() string { return goIdent(f.structField) }

// Getter returns the name of the read accessor.
func (f *Field) Getter() string { return f.getter }

// Setter returns the name of the write accessor.
func (f *Field) Setter() string { return "Set" + f.getter }

// StringSize returns the declared length or field.DefaultStringSize.
func (f *Field) StringSize() int {
	if f.Size > 0 {
		return f.Size
	}
	return field.DefaultStringSize
}

// Name returns the name of the unique index: INDEX_<TABLE><Seq>.
func (i *Index) Name() string {
	return fmt.Sprintf("INDEX_%s%d", i.owner.Table(), i.Seq)
}

// Columns returns the indexed columns in declaration order.
func (i *Index) Columns() []string {
	columns := make([]string, len(i.Fields))
	for j, f := range i.Fields {
		columns[j] = f.Column()
	}
	return columns
}

// Unique reports whether the owner side is ONE.
func (e *Edge) Unique() bool { return e.Cardinality == edge.One }

// Rel returns the relation type seen from the owner: M2O, O2M or M2M.
func (e *Edge) Rel() string {
	switch {
	case e.M2M:
		return "M2M"
	case e.Unique():
		return "M2O"
	default:
		return "O2M"
	}
}

// Column returns the column holding the target identifier: the foreign key
// column for ONE edges, and the target column selected for MANY edges.
func (e *Edge) Column() string { return e.Type.IDColumn() }

// StructField returns the code name of the edge member:
// kennelID for ONE edges, masterList for MANY edges.
func (e *Edge) StructField() string {
	if e.Unique() {
		return lowerFirst(e.Type.StructName()) + "ID"
	}
	return lowerFirst(e.Type.StructName()) + "List"
}

// Getter returns the read accessor: KennelID or MasterList.
func (e *Edge) Getter() string { return upperFirst(e.StructField()) }

// Setter returns the write accessor of ONE edges.
func (e *Edge) Setter() string { return "Set" + e.Getter() }

// Lister returns the read accessor of MANY edges: MasterList.
func (e *Edge) Lister() string { return e.Getter() }

// Adder returns the method adding an id to a MANY edge.
func (e *Edge) Adder() string { return "Add" + e.Type.StructName() }

// Remover returns the method removing an id from a MANY edge.
func (e *Edge) Remover() string { return "Remove" + e.Type.StructName() }

// ListTable returns the table MANY edge ids are selected from: the junction
// table for M2M edges, the target table otherwise.
func (e *Edge) ListTable() string {
	if e.M2M {
		return e.Table
	}
	return e.Type.Table()
}

// JunctionTable returns the junction table name of a many-to-many relation
// between two tables: both names sorted and joined by an underscore.
func JunctionTable(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "_" + b
}
