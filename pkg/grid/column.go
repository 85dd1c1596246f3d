package grid

import (
	"context"

	"github.com/goliatone/go-frontend/pkg/device"
	"github.com/goliatone/go-frontend/pkg/fieldset"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/plugin"
)

// columnDeviceFields declares the per-breakpoint column settings.
func columnDeviceFields(size int) []form.DeviceField {
	return []form.DeviceField{
		{NameFormat: "{device}_col", LabelFormat: "col{infix}", Kind: form.KindInteger, Min: form.IntPtr(1), Max: form.IntPtr(size)},
		{NameFormat: "{device}_order", LabelFormat: "order{infix}", Kind: form.KindInteger, Min: form.IntPtr(0), Max: form.IntPtr(size)},
		{NameFormat: "{device}_offset", LabelFormat: "offset{infix}", Kind: form.KindInteger, Min: form.IntPtr(0), Max: form.IntPtr(size)},
		{NameFormat: "{device}_ml", LabelFormat: "ms{infix}-auto", Kind: form.KindBoolean},
		{NameFormat: "{device}_mr", LabelFormat: "me{infix}-auto", Kind: form.KindBoolean},
	}
}

// Column is a single grid column with per-breakpoint width, order, offset and
// auto margins.
type Column struct {
	plugin.Base
	scale device.Scale
}

// NewColumn builds the column plugin.
func NewColumn(options ...Option) *Column {
	return newColumn(newConfig(options...))
}

func newColumn(cfg config) *Column {
	f := form.New(ColumnName)
	f.MustAdd(form.StoreConfig,
		form.Field{
			Name:    "column_type",
			Label:   "Column type",
			Kind:    form.KindChoice,
			Choices: withEmpty(ColumnChoices),
			Initial: ColumnTypeCol,
		},
		form.Field{
			Name:    "column_alignment",
			Label:   "Alignment",
			Kind:    form.KindChoice,
			Choices: withEmpty(ColumnAlignmentChoices),
		},
		attributesField(),
	)
	templates := columnDeviceFields(cfg.size)
	f.MustAdd(form.StoreConfig, form.Expand(cfg.scale, templates...)...)
	f.MustAdd("", tagTypeField())

	responsiveRows := make([][]string, 0, cfg.scale.Len())
	for _, name := range cfg.scale.Names() {
		row := make([]string, len(templates))
		for i, tpl := range templates {
			row[i] = form.DeviceFieldName(tpl.NameFormat, name)
		}
		responsiveRows = append(responsiveRows, row)
	}

	return &Column{
		Base: plugin.Base{
			PluginName:     ColumnName,
			PluginTemplate: "grid_column",
			PluginForm:     f,
			PluginSets: []fieldset.Fieldset{
				{Rows: [][]string{{"column_type", "column_alignment"}}},
				{Name: "Responsive settings", Classes: []string{fieldset.ClassCollapse}, Rows: responsiveRows},
				advancedFieldset(),
			},
		},
		scale: cfg.scale,
	}
}

// Render adds the column type and the per-breakpoint classes. The bare "col"
// type is dropped when an explicit width is set on the smallest breakpoint.
func (c *Column) Render(_ context.Context, item *plugin.Item, data plugin.Data) (plugin.Data, error) {
	smallest := c.scale.Smallest()
	kind := item.Config.String("column_type")
	width, ok := item.Config.Int(smallest + "_col")
	if !(kind == ColumnTypeCol && ok && width > 0) {
		item.AddClasses(kind)
	}

	for _, name := range c.scale.Names() {
		infix := c.scale.Infix(name)
		if n, ok := item.Config.Int(name + "_col"); ok && n > 0 {
			item.AddClasses(deviceClass("col", infix, n))
		}
		if n, ok := item.Config.Int(name + "_order"); ok && n >= 0 {
			item.AddClasses(deviceClass("order", infix, n))
		}
		if n, ok := item.Config.Int(name + "_offset"); ok && n >= 0 {
			item.AddClasses(deviceClass("offset", infix, n))
		}
		if item.Config.Bool(name + "_ml") {
			item.AddClasses("ms" + infix + "-auto")
		}
		if item.Config.Bool(name + "_mr") {
			item.AddClasses("me" + infix + "-auto")
		}
	}

	item.AddClasses(item.Config.String("column_alignment"))
	return ensureData(data), nil
}
