package gen

// checkNames verifies that no two identifiers of the same scope produce the
// same derived name. Entities are checked first, SQL names before code names,
// then the members of every entity in declaration order. Only the first
// collision is reported.
func checkNames(g *Graph) error {
	if err := checkEntityNames(g); err != nil {
		return err
	}
	for _, t := range g.Nodes {
		if err := checkFieldNames(t); err != nil {
			return err
		}
	}
	for _, t := range g.Nodes {
		if err := checkMemberNames(t); err != nil {
			return err
		}
	}
	return checkJunctionNames(g)
}

func checkEntityNames(g *Graph) error {
	for _, scheme := range []struct {
		name    string
		derived func(*Type) string
	}{
		{SchemeSQL, (*Type).Table},
		{SchemeCode, (*Type).StructName},
	} {
		seen := make(map[string]string, len(g.Nodes))
		for _, t := range g.Nodes {
			name := scheme.derived(t)
			if name == "" {
				return NewAmbiguousEntityNameError(t.Name, t.Name, scheme.name, name)
			}
			if prev, ok := seen[name]; ok {
				return NewAmbiguousEntityNameError(prev, t.Name, scheme.name, name)
			}
			seen[name] = t.Name
		}
	}
	return nil
}

func checkFieldNames(t *Type) error {
	for _, scheme := range []struct {
		name    string
		derived func(*Field) string
	}{
		{SchemeSQL, (*Field).Column},
		{SchemeCode, (*Field).StructField},
	} {
		seen := make(map[string]string, len(t.Fields))
		for _, f := range t.Fields {
			name := scheme.derived(f)
			if name == "" {
				return NewAmbiguousFieldNameError(t.Name, f.Name, f.Name, scheme.name, name)
			}
			if prev, ok := seen[name]; ok {
				return NewAmbiguousFieldNameError(t.Name, prev, f.Name, scheme.name, name)
			}
			seen[name] = f.Name
		}
	}
	return nil
}

// checkMemberNames checks the names fields share with the identifier and the
// relations once relations are resolved: table columns and value object
// methods.
func checkMemberNames(t *Type) error {
	columns := map[string]string{t.IDColumn(): "id"}
	for _, e := range t.OneEdges() {
		columns[e.Column()] = e.Type.Name
	}
	for _, f := range t.Fields {
		if owner, ok := columns[f.Column()]; ok {
			return NewAmbiguousFieldNameError(t.Name, owner, f.Name, SchemeSQL, f.Column())
		}
	}
	members := map[string]string{"id": "id"}
	for _, e := range t.Edges {
		members[e.StructField()] = e.Type.Name
	}
	for _, f := range t.Fields {
		if owner, ok := members[f.Member()]; ok {
			return NewAmbiguousFieldNameError(t.Name, owner, f.Name, SchemeCode, f.Member())
		}
	}
	methods := map[string]string{"ID": "id", "SetID": "id"}
	for _, e := range t.Edges {
		methods[e.Getter()] = e.Type.Name
		if e.Unique() {
			methods[e.Setter()] = e.Type.Name
		} else {
			methods[e.Adder()] = e.Type.Name
			methods[e.Remover()] = e.Type.Name
		}
	}
	for _, f := range t.Fields {
		for _, m := range []string{f.Getter(), f.Setter()} {
			if owner, ok := methods[m]; ok {
				return NewAmbiguousFieldNameError(t.Name, owner, f.Name, SchemeCode, m)
			}
		}
	}
	return nil
}

// checkJunctionNames rejects junction tables named like an entity table.
func checkJunctionNames(g *Graph) error {
	tables := make(map[string]string, len(g.Nodes))
	for _, t := range g.Nodes {
		tables[t.Table()] = t.Name
	}
	for _, e := range g.M2MTables() {
		if name, ok := tables[e.Table]; ok {
			return NewAmbiguousEntityNameError(name, e.Owner.Name+"/"+e.Type.Name, SchemeSQL, e.Table)
		}
	}
	return nil
}
