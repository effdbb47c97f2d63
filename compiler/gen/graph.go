package gen

import (
	"log/slog"

	"github.com/syssam/pergen/compiler/load"
	"github.com/syssam/pergen/dialect"
)

type (
	// Config holds the global codegen configuration to be
	// shared between all generated nodes.
	Config struct {
		// Target defines the filepath for the target directory that
		// holds the generated code.
		Target string
		// Package defines the Go package name of the generated files.
		// Defaults to the base name of Target.
		Package string
		// Dialect selects the SQL dialect of the script and the DAO
		// placeholders. Defaults to dialect.MySQL.
		Dialect string
		// Header is written at the top of every generated Go file.
		Header string
		// Features lists the optional features enabled.
		Features []Feature
		// Templates are user templates executed after the built-in assets.
		Templates []*Template
		// Hooks wrap the generator.
		Hooks []Hook
		// Logger receives generation progress. Defaults to slog.Default.
		Logger *slog.Logger
	}

	// Graph holds the nodes/entities of the loaded schema, with their
	// resolved relations. It is the domain model of a generation run.
	Graph struct {
		*Config
		// Nodes are the types of the graph in declaration order.
		Nodes []*Type
		nodes map[string]*Type
	}

	// Generator is the interface that wraps the Generate method.
	Generator interface {
		// Generate generates the assets of the graph.
		Generate(*Graph) error
	}

	// GenerateFunc is an adapter to allow the use of ordinary
	// functions as Generator.
	GenerateFunc func(*Graph) error

	// Hook defines the "generate middleware". A function that gets a Generator
	// and returns a Generator.
	Hook func(Generator) Generator
)

// Generate calls f(g).
func (f GenerateFunc) Generate(g *Graph) error {
	return f(g)
}

// NewGraph builds the graph of a parsed schema file: it collects the
// entities and fields, resolves the relations and checks the derived names.
// The first error aborts the build.
func NewGraph(c *Config, f *load.File) (*Graph, error) {
	g := newGraph(c)
	if err := load.Walk(&entityCollector{g: g}, f); err != nil {
		return nil, err
	}
	rc := &relationCollector{}
	if err := load.Walk(rc, f); err != nil {
		return nil, err
	}
	if err := resolveRelations(g, rc.raws); err != nil {
		return nil, err
	}
	if err := checkNames(g); err != nil {
		return nil, err
	}
	g.logger().Debug("graph built", "entities", len(g.Nodes), "relations", len(rc.raws))
	return g, nil
}

// newGraph returns an empty graph.
func newGraph(c *Config) *Graph {
	if c == nil {
		c = &Config{}
	}
	return &Graph{Config: c, nodes: make(map[string]*Type)}
}

// AddType registers a new entity. It fails if the name is already taken.
func (g *Graph) AddType(name string) (*Type, error) {
	if _, ok := g.nodes[name]; ok {
		return nil, NewEntityAlreadyDefinedError(name)
	}
	t := NewType(name)
	g.nodes[name] = t
	g.Nodes = append(g.Nodes, t)
	return t, nil
}

// IsDefined reports whether an entity with the given original name exists.
func (g *Graph) IsDefined(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Type returns the entity with the given original name.
func (g *Graph) Type(name string) (*Type, bool) {
	t, ok := g.nodes[name]
	return t, ok
}

// M2MTables returns the junction tables of the graph, deduplicated, in
// order of first appearance.
func (g *Graph) M2MTables() []*Edge {
	var (
		edges []*Edge
		seen  = make(map[string]struct{})
	)
	for _, t := range g.Nodes {
		for _, e := range t.M2MEdges() {
			if _, ok := seen[e.Table]; ok {
				continue
			}
			seen[e.Table] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// SQLDialect returns the configured dialect or dialect.MySQL.
func (c *Config) SQLDialect() string {
	if c.Dialect == "" {
		return dialect.MySQL
	}
	return c.Dialect
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
