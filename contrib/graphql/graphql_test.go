package graphql

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/pergen/compiler/gen"
	"github.com/syssam/pergen/compiler/gen/sql"
	"github.com/syssam/pergen/compiler/load"
)

const kennelSchema = `
entity Dog {
  death: date;
  name: string(40) required;
  age: real required;
  legs: integer required;
  one Kennel;
  many Master;
}
entity Master {
  first_name: string required;
  many Dog zero;
}
entity Kennel {
  name: string(80);
  many Dog zero;
}
`

func newGraph(t *testing.T, src string) *gen.Graph {
	t.Helper()
	f, err := load.Parse("kennel.pergen", []byte(src))
	require.NoError(t, err)
	g, err := gen.NewGraph(&gen.Config{}, f)
	require.NoError(t, err)
	return g
}

func loadSchema(t *testing.T, doc []byte) *ast.Schema {
	t.Helper()
	s, err := gqlparser.LoadSchema(&ast.Source{Name: SchemaFile, Input: string(doc)})
	require.Nil(t, err)
	return s
}

func TestMarshalSchema(t *testing.T) {
	doc, err := MarshalSchema(newGraph(t, kennelSchema))
	require.NoError(t, err)
	s := loadSchema(t, doc)

	dog := s.Types["Dog"]
	require.NotNil(t, dog)
	assert.Equal(t, ast.Object, dog.Kind)
	tests := []struct {
		field string
		typ   string
	}{
		{"id", "ID!"},
		{"death", "Time"},
		{"name", "String!"},
		{"age", "Float!"},
		{"legs", "Int!"},
		{"kennel", "Kennel!"},
		{"masters", "[Master!]!"},
	}
	for _, tt := range tests {
		f := dog.Fields.ForName(tt.field)
		require.NotNil(t, f, tt.field)
		assert.Equal(t, tt.typ, f.Type.String(), tt.field)
	}
	assert.Len(t, dog.Fields, len(tests))

	assert.Equal(t, "String", s.Types["Kennel"].Fields.ForName("name").Type.String())
	assert.Equal(t, "[Dog!]!", s.Types["Kennel"].Fields.ForName("dogs").Type.String())
	assert.Equal(t, "String!", s.Types["Master"].Fields.ForName("firstName").Type.String())
	assert.Equal(t, ast.Scalar, s.Types["Time"].Kind)

	require.NotNil(t, s.Query)
	byID := s.Query.Fields.ForName("dog")
	require.NotNil(t, byID)
	assert.Equal(t, "Dog", byID.Type.String())
	require.Len(t, byID.Arguments, 1)
	assert.Equal(t, "ID!", byID.Arguments[0].Type.String())
	assert.Equal(t, "[Kennel!]!", s.Query.Fields.ForName("kennels").Type.String())
}

func TestMarshalSchema_NoDate(t *testing.T) {
	doc, err := MarshalSchema(newGraph(t, `entity Tag { label: string; }`))
	require.NoError(t, err)
	assert.NotContains(t, string(doc), "scalar Time")
	s := loadSchema(t, doc)
	assert.NotNil(t, s.Types["Tag"])
}

func TestMarshalSchema_Clash(t *testing.T) {
	_, err := MarshalSchema(newGraph(t, `
		entity Dog {
		  kennel: string;
		  one Kennel;
		}
		entity Kennel {
		  many Dog zero;
		}
	`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Dog has two fields named "kennel"`)
}

func TestFeature(t *testing.T) {
	g := newGraph(t, kennelSchema)
	g.Target = filepath.Join(t.TempDir(), "model")
	require.NoError(t, gen.WithFeatures(Feature)(g.Config))
	require.NoError(t, sql.GenerateContext(context.Background(), g))

	doc, err := os.ReadFile(filepath.Join(g.Target, SchemaFile))
	require.NoError(t, err)
	assert.Contains(t, string(doc), "type Dog")

	f, err := gen.FeatureByName("graphql", Feature)
	require.NoError(t, err)
	assert.Equal(t, Feature.Name, f.Name)
}
