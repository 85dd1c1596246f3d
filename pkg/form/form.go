// Package form declares the configuration fields of page-builder plugins.
//
// Forms are static tables: a plugin lists its fields once, per-breakpoint
// fields are expanded from DeviceField templates, and submitted values are
// cleaned into typed Go values before they are entangled into the generic
// configuration store.
package form

import (
	"fmt"
	"strings"
)

// Kind enumerates the supported field kinds.
type Kind string

const (
	KindText        Kind = "text"
	KindChoice      Kind = "choice"
	KindMultiChoice Kind = "multichoice"
	KindInteger     Kind = "integer"
	KindBoolean     Kind = "boolean"
	KindAttributes  Kind = "attributes"
	KindImage       Kind = "image"
)

// StoreConfig is the entangled JSON store most plugin fields live in.
const StoreConfig = "config"

// Choice is a selectable value with its display label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// EmptyChoice is prepended to optional select fields.
var EmptyChoice = Choice{Value: "", Label: "---------"}

// Field declares one form input.
type Field struct {
	Name        string            `json:"name"`
	Label       string            `json:"label,omitempty"`
	Kind        Kind              `json:"kind"`
	Required    bool              `json:"required"`
	Choices     []Choice          `json:"choices,omitempty"`
	Initial     any               `json:"initial,omitempty"`
	Min         *int              `json:"min,omitempty"`
	Max         *int              `json:"max,omitempty"`
	HelpText    string            `json:"helpText,omitempty"`
	Widget      string            `json:"widget,omitempty"`
	WidgetAttrs map[string]string `json:"widgetAttrs,omitempty"`
}

// HasChoice reports whether value is one of the field's choices.
func (f Field) HasChoice(value string) bool {
	for _, choice := range f.Choices {
		if choice.Value == value {
			return true
		}
	}
	return false
}

// DisplayLabel returns the explicit label or one derived from the name.
func (f Field) DisplayLabel() string {
	if strings.TrimSpace(f.Label) != "" {
		return f.Label
	}
	return DefaultLabeler(f.Name)
}

// Form is an ordered set of fields plus the mapping of fields to stores.
// Entangled maps a store name (usually "config") to the fields persisted
// inside it; Untangled lists fields stored as regular model attributes.
type Form struct {
	Name      string
	Fields    []Field
	Entangled map[string][]string
	Untangled []string
}

// New constructs an empty form.
func New(name string) *Form {
	return &Form{
		Name:      name,
		Entangled: make(map[string][]string),
	}
}

// Add appends fields and entangles them into store. An empty store marks the
// fields as untangled.
func (f *Form) Add(store string, fields ...Field) error {
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("form %s: field name is required", f.Name)
		}
		if _, exists := f.Field(name); exists {
			return fmt.Errorf("form %s: duplicate field %q", f.Name, name)
		}
		field.Name = name
		f.Fields = append(f.Fields, field)
		if store == "" {
			f.Untangled = append(f.Untangled, name)
			continue
		}
		if f.Entangled == nil {
			f.Entangled = make(map[string][]string)
		}
		f.Entangled[store] = append(f.Entangled[store], name)
	}
	return nil
}

// MustAdd panics when Add fails; intended for package-level declarations.
func (f *Form) MustAdd(store string, fields ...Field) *Form {
	if err := f.Add(store, fields...); err != nil {
		panic(err)
	}
	return f
}

// Field returns the field registered under name.
func (f *Form) Field(name string) (Field, bool) {
	if f == nil {
		return Field{}, false
	}
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Names returns field names in declaration order.
func (f *Form) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		names[i] = field.Name
	}
	return names
}

// StoreOf returns the store a field is entangled into, or "" when the field is
// untangled or unknown.
func (f *Form) StoreOf(name string) string {
	if f == nil {
		return ""
	}
	for store, fields := range f.Entangled {
		for _, candidate := range fields {
			if candidate == name {
				return store
			}
		}
	}
	return ""
}

// Clone returns a deep copy so wrappers can extend a form without mutating
// the original declaration.
func (f *Form) Clone() *Form {
	if f == nil {
		return nil
	}
	out := &Form{
		Name:      f.Name,
		Fields:    append([]Field(nil), f.Fields...),
		Entangled: make(map[string][]string, len(f.Entangled)),
		Untangled: append([]string(nil), f.Untangled...),
	}
	for store, fields := range f.Entangled {
		out.Entangled[store] = append([]string(nil), fields...)
	}
	return out
}

// IntPtr is a small helper for Min/Max declarations.
func IntPtr(v int) *int {
	return &v
}
