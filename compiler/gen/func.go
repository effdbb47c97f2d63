package gen

import (
	"go/token"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Funcs are the helpers available to user templates.
var Funcs = template.FuncMap{
	"camel":    CamelCase,
	"pascal":   PascalCase,
	"sql":      SQLName,
	"lower":    strings.ToLower,
	"upper":    strings.ToUpper,
	"plural":   plural,
	"receiver": receiver,
}

// CamelCase converts a snake_case identifier to camelCase.
//
//	CamelCase("TEST__WORD")       // testWord
//	CamelCase("_this_is_testing") // thisIsTesting
//	CamelCase("masterList")       // masterList
//
// An identifier without underscores that already mixes upper and lower case
// letters is kept as is, apart from its first letter, so "bOOK" stays
// "bOOK" and its PascalCase form is "BOOK".
func CamelCase(s string) string {
	if s == "" {
		return ""
	}
	if isCamel(s) {
		return lowerFirst(s)
	}
	s = cases.Lower(language.Und).String(s)
	var (
		b     strings.Builder
		seen  bool
		upper bool
	)
	b.Grow(len(s))
	for _, r := range s {
		if r == '_' {
			upper = seen
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
		seen = true
	}
	return b.String()
}

// PascalCase converts a snake_case identifier to PascalCase. It is the
// camel-case form with its first letter capitalized.
func PascalCase(s string) string {
	return upperFirst(CamelCase(s))
}

// SQLName converts an identifier to its SQL form: upper case, with
// underscores kept as word separators.
func SQLName(s string) string {
	return cases.Upper(language.Und).String(s)
}

// isCamel reports whether s has no underscore and mixes upper and lower
// case letters.
func isCamel(s string) bool {
	var hasUpper, hasLower bool
	for _, r := range s {
		switch {
		case r == '_':
			return false
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	return hasUpper && hasLower
}

func lowerFirst(s string) string {
	if s == "" {
		return ""
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}

func upperFirst(s string) string {
	if s == "" {
		return ""
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

// receiver returns the receiver name of a Go type name, made of the
// initials of its words.
//
//	receiver("Dog")        // d
//	receiver("DogDAO")     // dd
//	receiver("HTTPClient") // hc
func receiver(s string) string {
	s = strings.TrimLeft(s, "[]*0123456789")
	rs := []rune(s)
	var b strings.Builder
	for i, r := range rs {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToLower(r))
		case !unicode.IsUpper(r):
		case unicode.IsLower(rs[i-1]):
			b.WriteRune(unicode.ToLower(r))
		case i+1 < len(rs) && unicode.IsLower(rs[i+1]):
			b.WriteRune(unicode.ToLower(r))
		}
	}
	name := b.String()
	if token.IsKeyword(name) {
		name = "_" + name
	}
	return name
}

// plural returns the plural form of a name. Uncountable names get a
// "Slice" suffix so the plural never equals the singular.
func plural(name string) string {
	p := inflect.Pluralize(name)
	if p == name {
		p += "Slice"
	}
	return p
}

// goIdent makes a camel-case name safe to use as a Go identifier.
func goIdent(name string) string {
	if token.IsKeyword(name) {
		return name + "_"
	}
	return name
}
