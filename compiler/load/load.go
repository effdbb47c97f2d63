// Package load parses schema files written in the pergen schema language.
//
// A schema file is a list of entity blocks:
//
//	// kennel.pergen
//	entity Dog {
//	    death: date;
//	    name: string(40) required;
//	    age: real required;
//	    legs: integer required;
//	    unique(name, legs);
//	    one Kennel;
//	    many Master;
//	}
//
// Parse returns the syntax tree; Walk visits it depth-first in source order.
package load

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	schemaLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `(?://|#)[^\n]*`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Punct", Pattern: `[{}();:,]`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	})

	parser = participle.MustBuild[File](
		participle.Lexer(schemaLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(4),
	)
)

// SyntaxError reports malformed schema input.
type SyntaxError struct {
	Pos lexer.Position
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pergen: syntax error at %s: %s", e.Pos, e.Msg)
}

func newSyntaxError(pos lexer.Position, msg string) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: msg}
}

// IsSyntaxError reports whether err is a *SyntaxError.
func IsSyntaxError(err error) bool {
	var e *SyntaxError
	return errors.As(err, &e)
}

// Parse parses the schema source. The filename is used in positions only.
func Parse(filename string, src []byte) (*File, error) {
	f, err := parser.ParseBytes(filename, src)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, newSyntaxError(perr.Position(), perr.Message())
		}
		return nil, err
	}
	for _, e := range f.Entities {
		for _, m := range e.Members {
			if m.Field == nil {
				continue
			}
			if err := m.Field.validate(); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// ParseFile reads and parses the schema file at path.
func ParseFile(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pergen: read schema: %w", err)
	}
	return Parse(path, src)
}
