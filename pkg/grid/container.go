package grid

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goliatone/go-frontend/pkg/fieldset"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/plugin"
)

// Container wraps page content in a fixed or fluid width container with an
// optional background colour and cover image.
type Container struct {
	plugin.Base
	images ImageResolver
}

// NewContainer builds the container plugin.
func NewContainer(options ...Option) *Container {
	return newContainer(newConfig(options...))
}

func newContainer(cfg config) *Container {
	f := form.New(ContainerName)
	f.MustAdd(form.StoreConfig,
		form.Field{
			Name:     "container_type",
			Label:    "Container type",
			Kind:     form.KindChoice,
			Required: true,
			Choices:  ContainerChoices,
			Initial:  ContainerChoices[0].Value,
			HelpText: "Defines if the grid should use fixed width (<code>.container</code>) " +
				"or fluid width (<code>.container-fluid</code>).",
		},
		form.Field{
			Name:    "container_context",
			Label:   "Background",
			Kind:    form.KindChoice,
			Choices: withEmpty(cfg.colors),
			Initial: "",
		},
		form.Field{
			Name:        "container_transparency",
			Label:       "Transparency",
			Kind:        form.KindInteger,
			Initial:     0,
			Min:         form.IntPtr(0),
			Max:         form.IntPtr(100),
			HelpText:    "Transparency of the container. Only affects the background.",
			Widget:      "range",
			WidgetAttrs: map[string]string{"type": "range", "min": "0", "max": "100"},
		},
		form.Field{
			Name:     "container_image",
			Label:    "Image",
			Kind:     form.KindImage,
			HelpText: "If provided used as a cover for container.",
			Widget:   "image",
		},
		attributesField(),
	)
	f.MustAdd("", tagTypeField())

	return &Container{
		Base: plugin.Base{
			PluginName:     ContainerName,
			PluginTemplate: "grid_container",
			PluginForm:     f,
			PluginSets: []fieldset.Fieldset{
				{Rows: [][]string{
					{"container_type"},
					{"container_context", "container_transparency"},
					{"container_image"},
				}},
				advancedFieldset(),
			},
		},
		images: cfg.images,
	}
}

// Render adds the container class, background colour and opacity, and the
// cover image when a resolver is configured.
func (c *Container) Render(ctx context.Context, item *plugin.Item, data plugin.Data) (plugin.Data, error) {
	data = ensureData(data)

	kind := item.Config.String("container_type")
	if kind == "" {
		kind = ContainerChoices[0].Value
	}
	if kind != ContainerFull {
		item.AddClasses(kind)
	}

	if color := item.Config.String("container_context"); color != "" {
		item.AddClasses("bg-" + color)
		if t, ok := item.Config.Int("container_transparency"); ok && t > 0 && t <= 100 {
			opacity := strconv.FormatFloat(float64(100-t)/100, 'f', -1, 64)
			item.AddStyle("--bs-bg-opacity: " + opacity)
		}
	}

	if ref := item.Config.String("container_image"); ref != "" && c.images != nil {
		url, err := c.images.ImageURL(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("grid: resolve container image %q: %w", ref, err)
		}
		if url != "" {
			item.AddStyle(fmt.Sprintf("background-image: url(%q)", url))
			data["image_url"] = url
		}
	}
	return data, nil
}
