// Package field provides the field data types of the schema language and
// fluent builders for field descriptors.
//
//	field.String("name").Size(40).Required()  // NAME VARCHAR(40)
//	field.Real("age").Required()              // AGE DOUBLE
//	field.Date("death")                       // DEATH DATE
package field

import (
	"fmt"
	"strings"
)

// DefaultStringSize is the VARCHAR length used when a string field
// declares no explicit length.
const DefaultStringSize = 255

// Type is the data type of a field.
type Type uint8

// Field types supported by the schema language.
const (
	TypeInvalid Type = iota
	TypeDate
	TypeInteger
	TypeReal
	TypeString
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeDate:    "DATE",
	TypeInteger: "INTEGER",
	TypeReal:    "REAL",
	TypeString:  "STRING",
}

// String returns the upper-case name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports whether the type is one of the known field types.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// ParseType returns the Type for its schema-language keyword.
// Matching is case-insensitive.
func ParseType(s string) (Type, error) {
	for t := TypeDate; t < endTypes; t++ {
		if strings.EqualFold(typeNames[t], s) {
			return t, nil
		}
	}
	return TypeInvalid, fmt.Errorf("field: unknown type %q", s)
}

// Descriptor holds the declaration of a field, as written in the schema.
type Descriptor struct {
	Name     string // original field name.
	Type     Type   // data type.
	Required bool   // value must be set before saving.
	Size     int    // string length, 0 means DefaultStringSize.
}

// StringSize returns the declared string length or DefaultStringSize.
// It is meaningful only for TypeString.
func (d *Descriptor) StringSize() int {
	if d.Size > 0 {
		return d.Size
	}
	return DefaultStringSize
}

// Builder builds a field Descriptor.
type Builder struct {
	desc *Descriptor
}

// Date returns a builder for a DATE field.
func Date(name string) *Builder { return newBuilder(name, TypeDate) }

// Integer returns a builder for an INTEGER field.
func Integer(name string) *Builder { return newBuilder(name, TypeInteger) }

// Real returns a builder for a REAL field.
func Real(name string) *Builder { return newBuilder(name, TypeReal) }

// String returns a builder for a STRING field.
func String(name string) *Builder { return newBuilder(name, TypeString) }

// New returns a builder for a field of the given type.
func New(name string, t Type) *Builder { return newBuilder(name, t) }

func newBuilder(name string, t Type) *Builder {
	return &Builder{desc: &Descriptor{Name: name, Type: t}}
}

// Required marks the field as mandatory on save.
func (b *Builder) Required() *Builder {
	b.desc.Required = true
	return b
}

// Size sets the string length of the field.
func (b *Builder) Size(n int) *Builder {
	b.desc.Size = n
	return b
}

// Descriptor returns the built descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
