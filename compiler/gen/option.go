package gen

import (
	"errors"
	"go/token"
	"log/slog"

	"github.com/syssam/pergen/dialect"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated Go file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the Go package name of the generated files.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if !token.IsIdentifier(pkg) {
			return NewConfigError("Package", pkg, "package must be a valid Go identifier")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where the script and the generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithDialect sets the SQL dialect of the script and the DAO statements.
// Supported dialects: "mysql", "postgres", "sqlite".
func WithDialect(name string) Option {
	return func(c *Config) error {
		if err := dialect.Validate(name); err != nil {
			return NewConfigError("Dialect", name, "unsupported dialect; use mysql, postgres, or sqlite")
		}
		c.Dialect = name
		return nil
	}
}

// WithFeatures enables specific features.
// Features control optional generated artifacts.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		for _, f := range features {
			if f.Name == "" {
				return NewConfigError("Features", nil, "feature name cannot be empty")
			}
			if !c.FeatureEnabled(f.Name) {
				c.Features = append(c.Features, f)
			}
		}
		return nil
	}
}

// WithHooks adds generation hooks.
// Hooks wrap the generator and run around the generation.
func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// WithTemplates adds user templates executed on the graph.
func WithTemplates(templates ...*Template) Option {
	return func(c *Config) error {
		for _, t := range templates {
			if t == nil {
				return NewConfigError("Templates", nil, "template cannot be nil")
			}
		}
		c.Templates = append(c.Templates, templates...)
		return nil
	}
}

// WithLogger sets the logger receiving generation progress.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
