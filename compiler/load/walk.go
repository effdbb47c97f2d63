package load

// Visitor is called by Walk for every node of a schema file. Returning an
// error stops the walk.
type Visitor interface {
	VisitEntity(e *Entity) error
	VisitField(e *Entity, f *Field) error
	VisitUnique(e *Entity, u *Unique) error
	VisitRelation(e *Entity, r *Relation) error
}

// BaseVisitor implements Visitor with no-op methods. Embed it to handle
// only some of the nodes.
type BaseVisitor struct{}

// VisitEntity implements Visitor.
func (BaseVisitor) VisitEntity(*Entity) error { return nil }

// VisitField implements Visitor.
func (BaseVisitor) VisitField(*Entity, *Field) error { return nil }

// VisitUnique implements Visitor.
func (BaseVisitor) VisitUnique(*Entity, *Unique) error { return nil }

// VisitRelation implements Visitor.
func (BaseVisitor) VisitRelation(*Entity, *Relation) error { return nil }

// Walk visits the entities of f and their members in source order.
func Walk(v Visitor, f *File) error {
	for _, e := range f.Entities {
		if err := v.VisitEntity(e); err != nil {
			return err
		}
		for _, m := range e.Members {
			var err error
			switch {
			case m.Field != nil:
				err = v.VisitField(e, m.Field)
			case m.Unique != nil:
				err = v.VisitUnique(e, m.Unique)
			case m.Relation != nil:
				err = v.VisitRelation(e, m.Relation)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
