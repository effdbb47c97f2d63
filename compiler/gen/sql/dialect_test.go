package sql

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/pergen/compiler/gen"
	"github.com/syssam/pergen/compiler/load"
)

const kennelSchema = `
entity Dog {
  death: date;
  name: string(40) required;
  age: real required;
  legs: integer required;
  unique(name, legs);
  one Kennel;
  many Master;
}

entity Master {
  first_name: string required;
  last_name: string required;
  many Dog zero;
}

entity Kennel {
  name: string(80) required;
  many Dog zero;
}
`

// newGraph parses src and builds its graph for the given dialect.
func newGraph(t *testing.T, src, dialect string) *gen.Graph {
	t.Helper()
	f, err := load.Parse("kennel.pergen", []byte(src))
	require.NoError(t, err)
	g, err := gen.NewGraph(&gen.Config{Dialect: dialect, Package: "model"}, f)
	require.NoError(t, err)
	return g
}

// newHelper returns the generator helper of a graph.
func newHelper(t *testing.T, src, dialect string) (*gen.JenniferGenerator, *gen.Graph) {
	t.Helper()
	g := newGraph(t, src, dialect)
	return gen.NewJenniferGenerator(g, t.TempDir()), g
}

func mustType(t *testing.T, g *gen.Graph, name string) *gen.Type {
	t.Helper()
	typ, ok := g.Type(name)
	require.True(t, ok, "type %s", name)
	return typ
}

func TestDialect_Name(t *testing.T) {
	h, _ := newHelper(t, kennelSchema, "")
	d := NewDialect(h)
	assert.Equal(t, "sql", d.Name())
}

func TestGenerate(t *testing.T) {
	g := newGraph(t, `
		entity Dog {
		  death: date;
		  name: string(40) required;
		  age: real required;
		  legs: integer required;
		  many Master;
		}
		entity Master {
		  first_name: string;
		  many Dog zero;
		}
	`, "")
	g.Target = filepath.Join(t.TempDir(), "model")
	require.NoError(t, Generate(g))

	for _, name := range []string{"script.sql", "dog.go", "dog_dao.go", "master.go", "master_dao.go"} {
		assert.FileExists(t, filepath.Join(g.Target, name))
	}
	script, err := os.ReadFile(filepath.Join(g.Target, "script.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(script), "CREATE TABLE DOG (")
	assert.Contains(t, string(script), "DOG_MASTER")

	dao, err := os.ReadFile(filepath.Join(g.Target, "dog_dao.go"))
	require.NoError(t, err)
	assert.Contains(t, string(dao), `"INSERT INTO DOG(DOG_ID, DEATH, NAME, AGE, LEGS) VALUES(?, ?, ?, ?, ?)"`)
	assert.Contains(t, string(dao), `"INSERT INTO DOG_MASTER(DOG_ID, MASTER_ID) VALUES(?, ?)"`)
}

func TestGenerate_Errors(t *testing.T) {
	g := newGraph(t, kennelSchema, "")
	err := Generate(g)
	require.Error(t, err)
	assert.True(t, gen.IsConfigError(err))

	g.Target = filepath.Join(t.TempDir(), "model")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = GenerateContext(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoDirExists(t, g.Target)
}

func TestGenerate_Hooks(t *testing.T) {
	g := newGraph(t, kennelSchema, "sqlite")
	g.Target = filepath.Join(t.TempDir(), "model")
	var written bool
	g.Hooks = append(g.Hooks, func(next gen.Generator) gen.Generator {
		return gen.GenerateFunc(func(g *gen.Graph) error {
			if err := next.Generate(g); err != nil {
				return err
			}
			_, err := os.Stat(filepath.Join(g.Target, "kennel_dao.go"))
			written = err == nil
			return nil
		})
	})
	require.NoError(t, Generate(g))
	assert.True(t, written, "hook runs after the files are written")
}
