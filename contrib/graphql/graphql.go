// Package graphql exports the entities of a pergen schema as a GraphQL
// schema document (SDL): one object type per entity, its relations as
// object fields, and a Query type reading entities by identifier.
//
// The export is enabled with the "graphql" feature:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./model"),
//	    gen.WithFeatures(graphql.Feature),
//	)
//
// which writes schema.graphql next to the generated code. Only the schema
// is produced; resolvers are left to the GraphQL server of the application.
package graphql

import (
	"bytes"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/syssam/pergen/compiler/gen"
	"github.com/syssam/pergen/schema/field"
)

// SchemaFile is the name of the exported schema, relative to the target.
const SchemaFile = "schema.graphql"

// Feature writes the GraphQL schema of the graph (schema.graphql).
var Feature = gen.Feature{
	Name:        "graphql",
	Description: "GraphQL writes schema.graphql, the GraphQL object types of the entities",
	Artifacts: func(g *gen.Graph) ([]*gen.Artifact, error) {
		doc, err := MarshalSchema(g)
		if err != nil {
			return nil, err
		}
		return []*gen.Artifact{{Path: SchemaFile, Content: doc}}, nil
	},
}

// Scalar names of the GraphQL schema.
const (
	scalarID     = "ID"
	scalarInt    = "Int"
	scalarFloat  = "Float"
	scalarString = "String"
	// scalarTime is declared in the document when a DATE field exists.
	scalarTime = "Time"
)

// Schema builds the schema document of the graph.
func Schema(g *gen.Graph) (*ast.SchemaDocument, error) {
	doc := &ast.SchemaDocument{}
	if hasDate(g) {
		doc.Definitions = append(doc.Definitions, &ast.Definition{
			Kind:        ast.Scalar,
			Name:        scalarTime,
			Description: "Time is a DATE value, in RFC 3339 format.",
		})
	}
	query := &ast.Definition{Kind: ast.Object, Name: "Query"}
	for _, t := range g.Nodes {
		def, err := object(t)
		if err != nil {
			return nil, err
		}
		doc.Definitions = append(doc.Definitions, def)
		query.Fields = append(query.Fields,
			&ast.FieldDefinition{
				Name:        gen.CamelCase(t.StructName()),
				Description: fmt.Sprintf("The %s with the given identifier.", t.StructName()),
				Arguments: ast.ArgumentDefinitionList{
					{Name: "id", Type: ast.NonNullNamedType(scalarID, nil)},
				},
				Type: ast.NamedType(t.StructName(), nil),
			},
			&ast.FieldDefinition{
				Name: t.Label(),
				Type: listOf(t.StructName()),
			},
		)
	}
	if len(query.Fields) > 0 {
		doc.Definitions = append(doc.Definitions, query)
	}
	return doc, nil
}

// MarshalSchema renders the schema document of the graph.
func MarshalSchema(g *gen.Graph) ([]byte, error) {
	doc, err := Schema(g)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(doc)
	return buf.Bytes(), nil
}

// object returns the object type of an entity. Required fields, ONE
// relations and MANY relations are non-null.
func object(t *gen.Type) (*ast.Definition, error) {
	def := &ast.Definition{
		Kind:        ast.Object,
		Name:        t.StructName(),
		Description: fmt.Sprintf("%s is a row of the %s table.", t.StructName(), t.Table()),
	}
	seen := make(map[string]bool)
	add := func(f *ast.FieldDefinition) error {
		if seen[f.Name] {
			return fmt.Errorf("graphql: %s has two fields named %q", t.StructName(), f.Name)
		}
		seen[f.Name] = true
		def.Fields = append(def.Fields, f)
		return nil
	}
	if err := add(&ast.FieldDefinition{Name: "id", Type: ast.NonNullNamedType(scalarID, nil)}); err != nil {
		return nil, err
	}
	for _, f := range t.Fields {
		typ := ast.NamedType(scalar(f.Type), nil)
		typ.NonNull = f.Required
		if err := add(&ast.FieldDefinition{Name: f.StructField(), Type: typ}); err != nil {
			return nil, err
		}
	}
	for _, e := range t.Edges {
		fd := &ast.FieldDefinition{
			Name: gen.CamelCase(e.Type.StructName()),
			Type: ast.NonNullNamedType(e.Type.StructName(), nil),
		}
		if !e.Unique() {
			fd.Name = e.Type.Label()
			fd.Type = listOf(e.Type.StructName())
		}
		if err := add(fd); err != nil {
			return nil, err
		}
	}
	return def, nil
}

func scalar(t field.Type) string {
	switch t {
	case field.TypeDate:
		return scalarTime
	case field.TypeInteger:
		return scalarInt
	case field.TypeReal:
		return scalarFloat
	default:
		return scalarString
	}
}

// listOf returns the [T!]! type.
func listOf(name string) *ast.Type {
	return ast.NonNullListType(ast.NonNullNamedType(name, nil), nil)
}

func hasDate(g *gen.Graph) bool {
	for _, t := range g.Nodes {
		if t.HasDate() {
			return true
		}
	}
	return false
}
