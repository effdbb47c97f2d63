package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRepo creates a directory holding a .git marker and moves into it.
func newRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	t.Chdir(root)
	return root
}

func TestFindConfigFile_ExplicitPath(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("schema: test.pergen"), 0o644))

	path, err := findConfigFile(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, tmpFile, path)
}

func TestFindConfigFile_ExplicitPathNotFound(t *testing.T) {
	_, err := findConfigFile("/nonexistent/path/pergen.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestFindConfigFile_AutoDiscovery(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	configPath := filepath.Join(root, "pergen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("schema: test.pergen"), 0o644))
	nested := filepath.Join(root, "deep", "nested")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	path, err := findConfigFile("")
	require.NoError(t, err)

	// Resolve symlinks for comparison (macOS /var -> /private/var)
	expectedPath, _ := filepath.EvalSymlinks(configPath)
	actualPath, _ := filepath.EvalSymlinks(path)
	assert.Equal(t, expectedPath, actualPath)
}

func TestFindConfigFile_PrefersYamlOverYml(t *testing.T) {
	root := newRepo(t)
	yamlPath := filepath.Join(root, "pergen.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("schema: yaml.pergen"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pergen.yml"), []byte("schema: yml.pergen"), 0o644))

	path, err := findConfigFile("")
	require.NoError(t, err)
	expectedPath, _ := filepath.EvalSymlinks(yamlPath)
	actualPath, _ := filepath.EvalSymlinks(path)
	assert.Equal(t, expectedPath, actualPath)
}

func TestFindConfigFile_StopsAtGitRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "pergen.yaml"), []byte("schema: above.pergen"), 0o644))
	project := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".git"), 0o755))
	t.Chdir(project)

	path, err := findConfigFile("")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestLoadConfig_Defaults(t *testing.T) {
	newRepo(t)

	cfg, configPath, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, configPath)

	assert.Equal(t, "schema.pergen", cfg.Schema)
	assert.Equal(t, "mysql", cfg.Dialect)
	assert.Empty(t, cfg.Target)
	assert.Empty(t, cfg.Features)
	assert.Equal(t, 100*time.Millisecond, cfg.Database.SlowThreshold)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_FromFile(t *testing.T) {
	root := newRepo(t)
	configPath := filepath.Join(root, "pergen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
schema: db/kennel.pergen
target: internal/model
package: model
dialect: postgres
features:
  - atlas
  - graphql
database:
  dsn: postgres://localhost/kennel
  slow_threshold: 2s
log:
  level: debug
`), 0o644))

	cfg, foundPath, err := LoadConfig("")
	require.NoError(t, err)
	expectedPath, _ := filepath.EvalSymlinks(configPath)
	actualPath, _ := filepath.EvalSymlinks(foundPath)
	assert.Equal(t, expectedPath, actualPath)

	assert.Equal(t, "db/kennel.pergen", cfg.Schema)
	assert.Equal(t, "internal/model", cfg.Target)
	assert.Equal(t, "model", cfg.Package)
	assert.Equal(t, "postgres", cfg.Dialect)
	assert.Equal(t, []string{"atlas", "graphql"}, cfg.Features)
	assert.Equal(t, "postgres://localhost/kennel", cfg.Database.DSN)
	assert.Equal(t, 2*time.Second, cfg.Database.SlowThreshold)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	root := newRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "pergen.yaml"), []byte("schema: file.pergen\ndialect: postgres"), 0o644))
	t.Setenv("PERGEN_SCHEMA", "env.pergen")
	t.Setenv("PERGEN_DATABASE_DSN", "file:env.db")

	cfg, _, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env.pergen", cfg.Schema)
	assert.Equal(t, "postgres", cfg.Dialect)
	assert.Equal(t, "file:env.db", cfg.Database.DSN)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	root := newRepo(t)
	path := filepath.Join(root, "pergen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schema: [unterminated"), 0o644))

	_, _, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestConfig_OutputDir(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"target", Config{Schema: "db/kennel.pergen", Target: "model"}, "model"},
		{"schema dir", Config{Schema: filepath.Join("db", "kennel.pergen")}, "db"},
		{"cwd", Config{Schema: "kennel.pergen"}, "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.OutputDir())
		})
	}
}
