// Package index provides the descriptor of a composite uniqueness rule.
//
//	index.Fields("name", "legs")  // CREATE UNIQUE INDEX INDEX_DOG1 ON DOG(NAME, LEGS)
package index

// Descriptor lists the fields of a uniqueness rule in declaration order.
type Descriptor struct {
	Fields []string
}

// Builder builds an index Descriptor.
type Builder struct {
	desc *Descriptor
}

// Fields returns a builder for a uniqueness rule over the given fields.
func Fields(names ...string) *Builder {
	return &Builder{desc: &Descriptor{Fields: names}}
}

// Descriptor returns the built descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
