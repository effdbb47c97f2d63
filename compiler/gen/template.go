package gen

import (
	"path/filepath"
	"text/template"
)

// Template wraps the standard template.Template to provide the helper
// functions of Funcs. It is executed with the *Graph as data, and its output
// is written to the target directory under the template name. Outputs
// without an extension get ".go", and Go outputs are formatted with their
// imports fixed.
type Template struct {
	*template.Template
	FuncMap template.FuncMap
}

// NewTemplate creates an empty template with the standard functions.
func NewTemplate(name string) *Template {
	t := &Template{Template: template.New(name)}
	return t.Funcs(Funcs)
}

// Funcs merges the given functions with the existing ones.
func (t *Template) Funcs(funcMap template.FuncMap) *Template {
	t.Template.Funcs(funcMap)
	if t.FuncMap == nil {
		t.FuncMap = template.FuncMap{}
	}
	for name, f := range funcMap {
		t.FuncMap[name] = f
	}
	return t
}

// Parse parses text as a template body for t.
func (t *Template) Parse(text string) (*Template, error) {
	if _, err := t.Template.Parse(text); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseFiles parses the named files and associates the resulting templates
// with t.
func (t *Template) ParseFiles(filenames ...string) (*Template, error) {
	if _, err := t.Template.ParseFiles(filenames...); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseGlob parses the files matched by pattern and associates them with t.
func (t *Template) ParseGlob(pattern string) (*Template, error) {
	if _, err := t.Template.ParseGlob(pattern); err != nil {
		return nil, err
	}
	return t, nil
}

// Output returns the path of the rendered file, relative to the target.
func (t *Template) Output() string {
	name := t.Name()
	if filepath.Ext(name) == "" {
		name += ".go"
	}
	return name
}

// MustParse is a helper that wraps a call to a function returning
// (*Template, error) and panics if the error is non-nil.
func MustParse(t *Template, err error) *Template {
	if err != nil {
		panic(err)
	}
	return t
}
