package load

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/syssam/pergen/schema/edge"
	"github.com/syssam/pergen/schema/field"
	"github.com/syssam/pergen/schema/index"
)

// File is the root of a parsed schema file.
type File struct {
	Pos      lexer.Position
	Entities []*Entity `parser:"@@*"`
}

// Entity is an entity definition block.
type Entity struct {
	Pos     lexer.Position
	Name    string    `parser:"'entity' @Ident '{'"`
	Members []*Member `parser:"@@* '}'"`
}

// Member is one clause of an entity block. Exactly one of its
// fields is set.
type Member struct {
	Pos      lexer.Position
	Unique   *Unique   `parser:"  @@"`
	Relation *Relation `parser:"| @@"`
	Field    *Field    `parser:"| @@"`
}

// Unique is a composite uniqueness clause.
type Unique struct {
	Pos    lexer.Position
	Fields []string `parser:"'unique' '(' @Ident (',' @Ident)* ')' ';'"`
}

// Relation is a one-sided relation clause.
type Relation struct {
	Pos         lexer.Position
	Cardinality string `parser:"@('one' | 'many')"`
	Target      string `parser:"@Ident"`
	Zero        bool   `parser:"@'zero'? ';'"`
}

// Field is a field definition clause.
type Field struct {
	Pos      lexer.Position
	Name     string `parser:"@Ident ':'"`
	Type     string `parser:"@('string' | 'integer' | 'real' | 'date')"`
	Size     *int   `parser:"('(' @Int ')')?"`
	Required bool   `parser:"@'required'? ';'"`
}

// Descriptor converts the clause to a field descriptor.
func (f *Field) Descriptor() (*field.Descriptor, error) {
	t, err := field.ParseType(f.Type)
	if err != nil {
		return nil, err
	}
	d := &field.Descriptor{Name: f.Name, Type: t, Required: f.Required}
	if f.Size != nil {
		d.Size = *f.Size
	}
	return d, nil
}

// validate checks the constraints the grammar cannot express.
func (f *Field) validate() error {
	if f.Size == nil {
		return nil
	}
	if f.Type != "string" {
		return newSyntaxError(f.Pos, fmt.Sprintf("field %q: length is only allowed on string fields", f.Name))
	}
	if *f.Size <= 0 {
		return newSyntaxError(f.Pos, fmt.Sprintf("field %q: string length must be positive", f.Name))
	}
	return nil
}

// Descriptor converts the clause to a raw relation declared by from.
func (r *Relation) Descriptor(from string) *edge.Descriptor {
	d := &edge.Descriptor{From: from, To: r.Target, MayBeZero: r.Zero}
	if r.Cardinality == "one" {
		d.Cardinality = edge.One
	} else {
		d.Cardinality = edge.Many
	}
	return d
}

// Descriptor converts the clause to a uniqueness descriptor.
func (u *Unique) Descriptor() *index.Descriptor {
	return index.Fields(u.Fields...).Descriptor()
}
