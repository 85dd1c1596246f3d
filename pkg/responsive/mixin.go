package responsive

import (
	"context"

	"github.com/goliatone/go-frontend/pkg/device"
	"github.com/goliatone/go-frontend/pkg/fieldset"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/plugin"
)

const (
	// FieldName is the config key holding the selected breakpoints.
	FieldName = "responsive_visibility"
	// BlockName titles the fieldset the field is placed in.
	BlockName = "Visibility"
	// WidgetIconMultiselect renders breakpoints as toggleable device icons.
	WidgetIconMultiselect = "icon-multiselect"
	// DataThemeTokens is the plugin.Data key carrying theme tokens.
	DataThemeTokens = "theme_tokens"
)

// Field declares the visibility selector for scale. Every breakpoint is
// selected initially, so untouched items stay visible everywhere.
func Field(scale device.Scale) form.Field {
	choices := make([]form.Choice, 0, scale.Len())
	for _, c := range scale.Choices() {
		choices = append(choices, form.Choice{Value: c.Value, Label: c.Label})
	}
	return form.Field{
		Name:     FieldName,
		Label:    "Show element on device",
		Kind:     form.KindMultiChoice,
		Choices:  choices,
		Initial:  scale.Names(),
		HelpText: "Select only devices on which this element should be shown.",
		Widget:   WidgetIconMultiselect,
	}
}

// Option configures a Mixin.
type Option func(*Mixin)

// WithScale overrides the breakpoint scale.
func WithScale(scale device.Scale) Option {
	return func(m *Mixin) {
		if scale.Len() > 0 {
			m.scale = scale
		}
	}
}

// WithDisplayTokens overrides display modes per UI item.
func WithDisplayTokens(tokens map[string]string) Option {
	return func(m *Mixin) {
		if len(tokens) == 0 {
			return
		}
		m.tokens = make(map[string]string, len(tokens))
		for k, v := range tokens {
			m.tokens[k] = v
		}
	}
}

// Mixin adds per-device visibility to a plugin: the visibility field and
// fieldset on the form side and display classes on the render side.
type Mixin struct {
	plugin.Plugin

	scale  device.Scale
	tokens map[string]string
	form   *form.Form
}

// Wrap decorates p with responsive visibility.
func Wrap(p plugin.Plugin, options ...Option) *Mixin {
	m := &Mixin{Plugin: p, scale: device.DefaultScale()}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	m.form = p.Form().Clone()
	if m.form == nil {
		m.form = form.New(p.Name())
	}
	if _, exists := m.form.Field(FieldName); !exists {
		m.form.MustAdd(form.StoreConfig, Field(m.scale))
	}
	return m
}

// Form returns the wrapped form extended with the visibility field.
func (m *Mixin) Form() *form.Form {
	return m.form
}

// Fieldsets appends a "Visibility" block after the wrapped plugin's blocks.
func (m *Mixin) Fieldsets() []fieldset.Fieldset {
	return fieldset.Insert(m.Plugin.Fieldsets(), []string{FieldName}, fieldset.InsertOptions{
		Position:  -1,
		BlockName: BlockName,
	})
}

// Render delegates to the wrapped plugin, then appends display classes when
// the item stores a visibility selection. An absent selection adds nothing; an
// empty one hides the item on every breakpoint.
func (m *Mixin) Render(ctx context.Context, item *plugin.Item, data plugin.Data) (plugin.Data, error) {
	out, err := m.Plugin.Render(ctx, item, data)
	if err != nil {
		return nil, err
	}
	if item.Config.Has(FieldName) && item.Config[FieldName] != nil {
		token := DisplayToken(item.UIItem, themeTokens(data), m.tokens)
		item.AddClasses(DisplayClasses(m.scale, item.Config.Strings(FieldName), token)...)
	}
	return out, nil
}

// AfterSave forwards to the wrapped plugin when it is a plugin.Saver.
func (m *Mixin) AfterSave(ctx context.Context, item *plugin.Item) ([]*plugin.Item, error) {
	if saver, ok := m.Plugin.(plugin.Saver); ok {
		return saver.AfterSave(ctx, item)
	}
	return nil, nil
}

// Unwrap returns the decorated plugin.
func (m *Mixin) Unwrap() plugin.Plugin {
	return m.Plugin
}

func themeTokens(data plugin.Data) map[string]string {
	tokens, _ := data[DataThemeTokens].(map[string]string)
	return ThemeOverrides(tokens)
}
