package entangle

import (
	"github.com/goliatone/go-frontend/pkg/form"
)

// Untangled holds cleaned values for fields stored as regular model
// attributes rather than inside a JSON store.
type Untangled map[string]any

// Entangle routes cleaned values into their stores. Fields entangled into the
// "config" store land in the returned Config; untangled fields are returned
// separately. Values for fields the form does not declare are dropped.
func Entangle(f *form.Form, cleaned map[string]any) (Config, Untangled) {
	config := Config{}
	untangled := Untangled{}
	if f == nil {
		return config, untangled
	}
	for _, name := range f.Entangled[form.StoreConfig] {
		if value, ok := cleaned[name]; ok {
			config[name] = value
		}
	}
	for _, name := range f.Untangled {
		if value, ok := cleaned[name]; ok {
			untangled[name] = value
		}
	}
	return config, untangled
}

// Merge applies update on top of base, returning a new config. Keys present in
// update overwrite base even when the new value is nil.
func Merge(base, update Config) Config {
	out := base.Clone()
	if out == nil {
		out = Config{}
	}
	for key, value := range update {
		out[key] = value
	}
	return out
}

// Untangle builds initial form values from a stored config and model
// attributes. Missing values fall back to each field's Initial.
func Untangle(f *form.Form, config Config, untangled Untangled) map[string]any {
	out := make(map[string]any)
	if f == nil {
		return out
	}
	for _, field := range f.Fields {
		if f.StoreOf(field.Name) == form.StoreConfig {
			if value, ok := config[field.Name]; ok {
				out[field.Name] = value
				continue
			}
		} else if value, ok := untangled[field.Name]; ok {
			out[field.Name] = value
			continue
		}
		if field.Initial != nil {
			out[field.Name] = field.Initial
		}
	}
	return out
}
