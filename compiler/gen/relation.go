package gen

import (
	"github.com/syssam/pergen/schema/edge"
)

// resolveRelations pairs the one-sided relation declarations into
// bidirectional edges and attaches them to their owners.
//
// Every declaration must target a defined entity, an entity may declare at
// most one relation per target, and every declaration must have its reverse
// declared in the target. ONE/ONE pairs are rejected; MANY/MANY pairs become
// many-to-many relations backed by a junction table.
//
// Pairing always takes the first pending declaration and removes its reverse
// from the rest of the list. This is quadratic in the number of relations,
// and the first-remaining tie-break fixes the order edges are attached in.
func resolveRelations(g *Graph, raws []*edge.Descriptor) error {
	for _, r := range raws {
		if !g.IsDefined(r.To) {
			return NewEntityNotDefinedError(r.From, r.To)
		}
	}
	targets := make(map[string]map[string]struct{})
	for _, r := range raws {
		seen, ok := targets[r.From]
		if !ok {
			seen = make(map[string]struct{})
			targets[r.From] = seen
		}
		if _, ok := seen[r.To]; ok {
			return NewMultipleRelationError(r.From, r.To)
		}
		seen[r.To] = struct{}{}
	}
	pending := make([]*edge.Descriptor, len(raws))
	copy(pending, raws)
	for len(pending) > 0 {
		first := pending[0]
		j := reverseOf(first, pending[1:])
		if j < 0 {
			return NewBidirectionalRelationError(first.From, first.To)
		}
		second := pending[j+1]
		pending = append(pending[1:j+1], pending[j+2:]...)
		if err := materialize(g, first, second); err != nil {
			return err
		}
	}
	return nil
}

// reverseOf returns the position in rest of the declaration reversing r,
// or -1.
func reverseOf(r *edge.Descriptor, rest []*edge.Descriptor) int {
	for i, o := range rest {
		if r.Reverse(o) {
			return i
		}
	}
	return -1
}

// materialize creates the two edges of a paired relation.
func materialize(g *Graph, first, second *edge.Descriptor) error {
	if first.Cardinality == edge.One && second.Cardinality == edge.One {
		return NewNotSupportedError(first.From, first.To, "one-to-one relations are not supported")
	}
	a, _ := g.Type(first.From)
	b, _ := g.Type(first.To)
	m2m := first.Cardinality == edge.Many && second.Cardinality == edge.Many
	var table string
	if m2m {
		table = JunctionTable(a.Table(), b.Table())
	}
	ab := &Edge{
		Type:        b,
		Owner:       a,
		Cardinality: first.Cardinality,
		MayBeZero:   first.MayBeZero,
		M2M:         m2m,
		Table:       table,
	}
	ba := &Edge{
		Type:        a,
		Owner:       b,
		Cardinality: second.Cardinality,
		MayBeZero:   second.MayBeZero,
		M2M:         m2m,
		Table:       table,
	}
	ab.Ref, ba.Ref = ba, ab
	a.Edges = append(a.Edges, ab)
	b.Edges = append(b.Edges, ba)
	return nil
}
