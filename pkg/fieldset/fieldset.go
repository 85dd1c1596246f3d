// Package fieldset groups form fields into the blocks an admin panel shows.
package fieldset

import (
	"github.com/goliatone/go-frontend/pkg/form"
)

// ClassCollapse marks a fieldset rendered collapsed by default.
const ClassCollapse = "collapse"

// Fieldset is a named block of field rows. Each row lists fields rendered
// side by side.
type Fieldset struct {
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	Classes     []string   `json:"classes,omitempty"`
	Rows        [][]string `json:"rows"`
}

// Fields flattens the rows in display order.
func (f Fieldset) Fields() []string {
	var out []string
	for _, row := range f.Rows {
		out = append(out, row...)
	}
	return out
}

// Clone returns a deep copy.
func (f Fieldset) Clone() Fieldset {
	out := f
	out.Classes = append([]string(nil), f.Classes...)
	out.Rows = make([][]string, len(f.Rows))
	for i, row := range f.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

// Default returns a single unnamed fieldset with one row per form field.
func Default(f *form.Form) []Fieldset {
	names := f.Names()
	rows := make([][]string, len(names))
	for i, name := range names {
		rows[i] = []string{name}
	}
	return []Fieldset{{Rows: rows}}
}

// Fields flattens every fieldset.
func Fields(sets []Fieldset) []string {
	var out []string
	for _, set := range sets {
		out = append(out, set.Fields()...)
	}
	return out
}
