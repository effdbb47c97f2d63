// Package gen turns a parsed pergen schema into its generated artifacts:
// a DDL script and, per entity, a Go value object and a DAO.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Schema file (*.pergen)
//	        ↓
//	   compiler/load (AST)
//	        ↓
//	   entity and relation collectors
//	        ↓
//	   Graph (relations resolved, names checked)
//	        ↓
//	   script.sql (dialect/sql/schema) + DialectGenerator (compiler/gen/sql)
//	        ↓
//	   staged writer (target directory)
//
// # Key Types
//
//   - Graph: the entities of a schema, in declaration order
//   - Type: an entity with its fields, uniqueness rules and relations
//   - Field: a typed entity field with its SQL and Go names
//   - Index: a composite uniqueness rule
//   - Edge: one side of a bidirectional relation (M2O, O2M or M2M)
//   - Config: global configuration for code generation
//
// # Naming
//
// Every declared identifier has two derived names: the SQL name (upper
// case, see SQLName) and the code name (camel or Pascal case, see CamelCase
// and PascalCase). Two entities, or two fields of an entity, may not share
// a derived name:
//
//	entity book { }
//	entity BOOK { }   // AmbiguousEntityNameError: both are BOOK in SQL
//
// # Error Handling
//
// Errors are typed and grouped by category sentinels:
//
//   - ErrDefinition: an entity or field declared twice
//   - ErrReference: a relation or uniqueness rule naming something undefined
//   - ErrConsistency: relations that cannot be paired or are unsupported
//   - ErrNaming: ambiguous derived names
//   - ErrMissingConfig: invalid configuration
//   - ErrGenerationFailed: rendering or writing failures
//
// Example error handling:
//
//	g, err := gen.NewGraph(cfg, file)
//	if gen.IsConsistencyError(err) {
//	    var bidi *gen.BidirectionalRelationError
//	    if errors.As(err, &bidi) {
//	        log.Printf("%s declares %s, add the reverse relation", bidi.From, bidi.To)
//	    }
//	}
//
// # Usage
//
//	f, err := load.ParseFile("schema.pergen")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./model"),
//	    gen.WithDialect("sqlite"),
//	    gen.WithFeatures(gen.FeatureAtlasHCL),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, err := gen.NewGraph(cfg, f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := sql.Generate(g); err != nil {
//	    log.Fatal(err)
//	}
//
// # Files
//
//   - graph.go: Graph, Config and the generator interfaces
//   - type.go: Type, Field, Index and Edge
//   - collect.go: schema walkers filling the graph
//   - relation.go: relation pairing
//   - ambiguity.go: derived name checks
//   - storage.go: relational model and dialect storage
//   - generate.go: JenniferGenerator
//   - writer.go: staged artifact writer
//   - option.go, feature.go, template.go: configuration
//   - func.go: identifier transformer and template functions
//   - errors.go: error types
package gen
