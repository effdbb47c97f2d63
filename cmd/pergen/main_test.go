package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/pergen/internal/cli"
)

const kennelSchema = `
entity Dog {
  name: string(40) required;
  many Master;
}

entity Master {
  first_name: string;
  many Dog zero;
}
`

// execute runs the root command with args in a fresh repository directory
// and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	t.Chdir(root)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeSchema(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kennel.pergen")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestGenerateCmd(t *testing.T) {
	schema := writeSchema(t, kennelSchema)
	target := filepath.Join(t.TempDir(), "model")

	out, err := execute(t, "generate", schema, "--target", target, "--dialect", "sqlite", "--feature", "graphql")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 2 entities from "+schema)
	for _, name := range []string{"script.sql", "dog.go", "dog_dao.go", "master.go", "master_dao.go", "schema.graphql"} {
		assert.FileExists(t, filepath.Join(target, name))
	}
}

func TestValidateCmd(t *testing.T) {
	out, err := execute(t, "validate", writeSchema(t, kennelSchema))
	require.NoError(t, err)
	assert.Contains(t, out, "Schema is valid. Found 2 entities:")
	assert.Contains(t, out, "  - Dog (table DOG, 1 fields, 1 relations)")
	assert.Contains(t, out, "  - DOG_MASTER")

	out, err = execute(t, "validate", writeSchema(t, kennelSchema+"entity Kennel {}\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "Warning: KENNEL: table has no column besides its key")

	_, err = execute(t, "validate", writeSchema(t, "entity Dog { one Kennel; }"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitSchema, cli.ExitCode(err))
}

func TestApplyCmd(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "kennel.db")
	out, err := execute(t, "apply", writeSchema(t, kennelSchema), "--dialect", "sqlite", "--dsn", dsn, "-q")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.FileExists(t, dsn)
}

func TestConfigCmd(t *testing.T) {
	t.Setenv("PERGEN_DIALECT", "postgres")
	out, err := execute(t, "config", "--source")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file: (none, using defaults)")
	assert.Contains(t, out, "schema: schema.pergen")
	assert.Contains(t, out, "dialect: postgres")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pergen "+version)
}

func TestUnknownCommand(t *testing.T) {
	_, err := execute(t, "migrate")
	require.Error(t, err)
	assert.Equal(t, cli.ExitGeneral, cli.ExitCode(err))
}
