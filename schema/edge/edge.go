// Package edge provides relation cardinalities and the descriptor of a
// one-sided relation declaration.
//
// A relation is always declared on both sides:
//
//	// in Dog
//	edge.ManyTo("Master")
//	// in Master
//	edge.ManyTo("Dog").Zero()
//
// Each declaration produces one Descriptor. The generator pairs them into
// bidirectional relations.
package edge

import "fmt"

// Cardinality is the number of target entities on one side of a relation.
type Cardinality uint8

// Cardinalities of a relation side.
const (
	One Cardinality = iota + 1
	Many
)

// String returns "ONE" or "MANY".
func (c Cardinality) String() string {
	switch c {
	case One:
		return "ONE"
	case Many:
		return "MANY"
	default:
		return fmt.Sprintf("Cardinality(%d)", uint8(c))
	}
}

// Descriptor is a one-sided relation declaration that has not been paired
// with its reverse side yet.
type Descriptor struct {
	From        string // name of the declaring entity.
	To          string // name of the target entity.
	Cardinality Cardinality
	MayBeZero   bool // a MANY side may hold an empty id list.
}

// String formats the descriptor as "From -> To (CARDINALITY)".
func (d *Descriptor) String() string {
	s := fmt.Sprintf("%s -> %s (%s", d.From, d.To, d.Cardinality)
	if d.MayBeZero {
		s += ", zero"
	}
	return s + ")"
}

// Reverse reports whether o declares the other side of d.
func (d *Descriptor) Reverse(o *Descriptor) bool {
	return d.From == o.To && d.To == o.From
}

// Builder builds an edge Descriptor.
type Builder struct {
	desc *Descriptor
}

// OneTo returns a builder for a ONE side targeting the named entity.
func OneTo(to string) *Builder {
	return &Builder{desc: &Descriptor{To: to, Cardinality: One}}
}

// ManyTo returns a builder for a MANY side targeting the named entity.
func ManyTo(to string) *Builder {
	return &Builder{desc: &Descriptor{To: to, Cardinality: Many}}
}

// From sets the declaring entity.
func (b *Builder) From(name string) *Builder {
	b.desc.From = name
	return b
}

// Zero allows the side to hold no target.
func (b *Builder) Zero() *Builder {
	b.desc.MayBeZero = true
	return b
}

// Descriptor returns the built descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
