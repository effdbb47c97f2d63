package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/syssam/pergen/compiler/gen"
	gensql "github.com/syssam/pergen/compiler/gen/sql"
	"github.com/syssam/pergen/compiler/load"
	"github.com/syssam/pergen/contrib/graphql"
	"github.com/syssam/pergen/dialect/sql"
)

// Options returns the generator options of the configuration.
func (c *Config) Options(logger *slog.Logger) ([]gen.Option, error) {
	opts := []gen.Option{gen.WithTarget(c.OutputDir())}
	if c.Dialect != "" {
		opts = append(opts, gen.WithDialect(c.Dialect))
	}
	if c.Package != "" {
		opts = append(opts, gen.WithPackage(c.Package))
	}
	if c.Header != "" {
		opts = append(opts, gen.WithHeader(c.Header))
	}
	if logger != nil {
		opts = append(opts, gen.WithLogger(logger))
	}
	for _, name := range c.Features {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		f, err := gen.FeatureByName(name, graphql.Feature)
		if err != nil {
			return nil, ConfigError("resolving features", err)
		}
		opts = append(opts, gen.WithFeatures(f))
	}
	for _, path := range c.Templates {
		t, err := parseTemplate(path)
		if err != nil {
			return nil, ConfigError(fmt.Sprintf("parsing template %s", path), err)
		}
		opts = append(opts, gen.WithTemplates(t))
	}
	return opts, nil
}

// parseTemplate parses a template file. The output of the template is the
// file name without its ".tmpl" extension.
func parseTemplate(path string) (*gen.Template, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), ".tmpl")
	return gen.NewTemplate(name).Parse(string(text))
}

// LoadGraph parses the schema of the configuration and builds its graph.
func LoadGraph(c *Config, logger *slog.Logger) (*gen.Graph, error) {
	opts, err := c.Options(logger)
	if err != nil {
		return nil, err
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, ConfigError("invalid configuration", err)
	}
	f, err := load.ParseFile(c.Schema)
	if err != nil {
		return nil, SchemaError(fmt.Sprintf("loading %s", c.Schema), err)
	}
	g, err := gen.NewGraph(cfg, f)
	if err != nil {
		return nil, wrapSchemaError(fmt.Sprintf("analyzing %s", c.Schema), err)
	}
	return g, nil
}

// Generate writes the script and the Go code of the schema.
func Generate(ctx context.Context, c *Config, logger *slog.Logger) (*gen.Graph, error) {
	g, err := LoadGraph(c, logger)
	if err != nil {
		return nil, err
	}
	if err := gensql.GenerateContext(ctx, g); err != nil {
		return nil, GeneralError("generating code", err)
	}
	return g, nil
}

// Apply renders the script of the schema for the configured dialect and
// executes it on the database of the configuration.
func Apply(ctx context.Context, c *Config, logger *slog.Logger) (sql.StatsSnapshot, error) {
	var stats sql.StatsSnapshot
	if c.Database.DSN == "" {
		return stats, ConfigError("database dsn is required (--dsn or PERGEN_DATABASE_DSN)", nil)
	}
	g, err := LoadGraph(c, logger)
	if err != nil {
		return stats, err
	}
	script, err := g.Script()
	if err != nil {
		return stats, ConfigError("rendering script", err)
	}
	drv, err := sql.Open(g.SQLDialect(), c.Database.DSN)
	if err != nil {
		return stats, DatabaseError("opening database", err)
	}
	defer drv.Close()

	var opts []sql.StatsOption
	if c.Database.SlowThreshold > 0 {
		opts = append(opts, sql.WithSlowThreshold(c.Database.SlowThreshold))
	}
	if logger != nil {
		opts = append(opts, sql.WithLogger(logger))
	}
	stats, err = sql.Apply(ctx, drv, script, opts...)
	if err != nil {
		return stats, DatabaseError("applying script", err)
	}
	return stats, nil
}
