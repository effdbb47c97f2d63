package gen

import (
	"github.com/syssam/pergen/compiler/load"
	"github.com/syssam/pergen/schema/edge"
)

// entityCollector registers entities, fields and uniqueness rules in the
// graph while walking a schema file.
type entityCollector struct {
	load.BaseVisitor
	g   *Graph
	cur *Type
}

func (c *entityCollector) VisitEntity(e *load.Entity) error {
	t, err := c.g.AddType(e.Name)
	if err != nil {
		return err
	}
	c.cur = t
	return nil
}

func (c *entityCollector) VisitField(_ *load.Entity, f *load.Field) error {
	d, err := f.Descriptor()
	if err != nil {
		return err
	}
	return c.cur.AddField(NewField(d))
}

func (c *entityCollector) VisitUnique(_ *load.Entity, u *load.Unique) error {
	_, err := c.cur.AddIndex(u.Descriptor())
	return err
}

// relationCollector gathers the one-sided relation declarations in source
// order.
type relationCollector struct {
	load.BaseVisitor
	raws []*edge.Descriptor
}

func (c *relationCollector) VisitRelation(e *load.Entity, r *load.Relation) error {
	c.raws = append(c.raws, r.Descriptor(e.Name))
	return nil
}
