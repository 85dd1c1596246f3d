// Package schema exports plugin configuration forms as OpenAPI schemas and
// validates stored configs against them.
package schema

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-frontend/pkg/entangle"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/plugin"
)

// ExtensionWidget carries the widget name a field requests.
const ExtensionWidget = "x-widget"

// FromForm describes the config store of f: one property per entangled field.
// Untangled fields live on the item itself and are left out.
func FromForm(f *form.Form) *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	if f == nil {
		return s
	}
	s.Title = f.Name
	for _, field := range f.Fields {
		if f.StoreOf(field.Name) != form.StoreConfig {
			continue
		}
		s.WithProperty(field.Name, fieldSchema(field))
		if field.Required {
			s.Required = append(s.Required, field.Name)
		}
	}
	return s
}

func fieldSchema(field form.Field) *openapi3.Schema {
	var s *openapi3.Schema
	switch field.Kind {
	case form.KindBoolean:
		s = openapi3.NewBoolSchema()
	case form.KindInteger:
		s = openapi3.NewIntegerSchema()
		if field.Min != nil {
			s.WithMin(float64(*field.Min))
		}
		if field.Max != nil {
			s.WithMax(float64(*field.Max))
		}
		s.Nullable = true
	case form.KindChoice:
		s = openapi3.NewStringSchema()
		if len(field.Choices) > 0 {
			s.WithEnum(choiceValues(field.Choices)...)
		}
	case form.KindMultiChoice:
		items := openapi3.NewStringSchema()
		if len(field.Choices) > 0 {
			items.WithEnum(choiceValues(field.Choices)...)
		}
		s = openapi3.NewArraySchema().WithItems(items)
		s.UniqueItems = true
	case form.KindAttributes:
		s = openapi3.NewObjectSchema().WithAdditionalProperties(openapi3.NewStringSchema())
	default:
		s = openapi3.NewStringSchema()
	}

	s.Title = field.DisplayLabel()
	s.Description = form.PlainHelp(field.HelpText)
	if def, ok := jsonValue(field.Initial); ok {
		s.Default = def
	}
	if field.Widget != "" {
		s.Extensions = map[string]any{ExtensionWidget: field.Widget}
	}
	return s
}

func choiceValues(choices []form.Choice) []any {
	out := make([]any, len(choices))
	for i, choice := range choices {
		out[i] = choice.Value
	}
	return out
}

// jsonValue converts v to the shape encoding/json decodes into, which is what
// schema validation expects.
func jsonValue(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

// Components returns one schema per registered plugin, keyed by plugin name.
func Components(reg *plugin.Registry) openapi3.Schemas {
	out := make(openapi3.Schemas)
	if reg == nil {
		return out
	}
	for _, name := range reg.List() {
		p, err := reg.Get(name)
		if err != nil {
			continue
		}
		out[name] = openapi3.NewSchemaRef("", FromForm(p.Form()))
	}
	return out
}

// ValidateConfig checks a stored config against the schema of f, reporting
// every violation.
func ValidateConfig(ctx context.Context, f *form.Form, config entangle.Config) error {
	s := FromForm(f)
	if err := s.Validate(ctx); err != nil {
		return fmt.Errorf("schema: invalid schema for %s: %w", s.Title, err)
	}
	normalized, err := config.Normalize()
	if err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	if err := s.VisitJSON(map[string]any(normalized), openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("schema: config for %s: %w", s.Title, err)
	}
	return nil
}
