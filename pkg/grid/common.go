package grid

import (
	"context"
	"strconv"

	"github.com/goliatone/go-frontend/pkg/fieldset"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/plugin"
	"github.com/goliatone/go-frontend/pkg/responsive"
)

// ImageResolver turns a stored image reference into a public URL.
type ImageResolver interface {
	ImageURL(ctx context.Context, ref string) (string, error)
}

// ImageResolverFunc adapts a function to ImageResolver.
type ImageResolverFunc func(ctx context.Context, ref string) (string, error)

func (f ImageResolverFunc) ImageURL(ctx context.Context, ref string) (string, error) {
	return f(ctx, ref)
}

func attributesField() form.Field {
	return form.Field{
		Name:   plugin.ConfigAttributes,
		Label:  "Attributes",
		Kind:   form.KindAttributes,
		Widget: "attributes",
	}
}

func tagTypeField() form.Field {
	return form.Field{
		Name:    "tag_type",
		Label:   "Tag type",
		Kind:    form.KindChoice,
		Choices: TagChoices,
		Initial: plugin.DefaultTagType,
	}
}

func advancedFieldset() fieldset.Fieldset {
	return fieldset.Fieldset{
		Name:    "Advanced settings",
		Classes: []string{fieldset.ClassCollapse},
		Rows:    [][]string{{"tag_type"}, {plugin.ConfigAttributes}},
	}
}

func ensureData(data plugin.Data) plugin.Data {
	if data == nil {
		return plugin.Data{}
	}
	return data
}

// deviceClass formats "<prefix><infix>-<n>", e.g. "col-md-6".
func deviceClass(prefix, infix string, n int) string {
	return prefix + infix + "-" + strconv.Itoa(n)
}

// Register wraps the container, row and column plugins with responsive
// visibility and adds them to reg.
func Register(reg *plugin.Registry, options ...Option) error {
	cfg := newConfig(options...)
	wrapOpts := []responsive.Option{
		responsive.WithScale(cfg.scale),
		responsive.WithDisplayTokens(cfg.tokens),
	}
	for _, p := range []plugin.Plugin{
		newContainer(cfg),
		newRow(cfg),
		newColumn(cfg),
	} {
		if err := reg.Register(responsive.Wrap(p, wrapOpts...)); err != nil {
			return err
		}
	}
	return nil
}
