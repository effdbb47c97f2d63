package gen

import (
	"fmt"
	"strings"
)

var (
	// FeatureAtlasHCL writes the schema as an Atlas HCL document
	// (schema.hcl), typed for the configured dialect.
	FeatureAtlasHCL = Feature{
		Name:        "atlas",
		Description: "AtlasHCL writes schema.hcl, the Atlas HCL description of the generated tables",
		Artifacts: func(g *Graph) ([]*Artifact, error) {
			doc, err := g.AtlasHCL()
			if err != nil {
				return nil, err
			}
			return []*Artifact{{Path: "schema.hcl", Content: doc}}, nil
		},
	}

	// AllFeatures holds the features defined in this package. Extensions
	// define their own, e.g. contrib/graphql.
	AllFeatures = []Feature{
		FeatureAtlasHCL,
	}
)

// A Feature of the pergen codegen: an optional set of artifacts rendered
// from the graph next to the script and the Go files.
type Feature struct {
	// Name of the feature.
	Name string

	// A Description of this feature.
	Description string

	// Artifacts renders the files of the feature.
	Artifacts func(*Graph) ([]*Artifact, error)
}

// FeatureEnabled reports if the given feature name is enabled.
func (c *Config) FeatureEnabled(name string) bool {
	for _, f := range c.Features {
		if f.Name == name {
			return true
		}
	}
	return false
}

// FeatureByName returns the feature with the given name among the
// features of this package and the extra ones.
func FeatureByName(name string, extra ...Feature) (Feature, error) {
	known := append(append([]Feature(nil), AllFeatures...), extra...)
	names := make([]string, 0, len(known))
	for _, f := range known {
		if f.Name == name {
			return f, nil
		}
		names = append(names, f.Name)
	}
	return Feature{}, NewConfigError("Features", name, fmt.Sprintf("unknown feature; use one of %s", strings.Join(names, ", ")))
}
