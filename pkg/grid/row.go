package grid

import (
	"context"

	"github.com/google/uuid"

	"github.com/goliatone/go-frontend/pkg/device"
	"github.com/goliatone/go-frontend/pkg/entangle"
	"github.com/goliatone/go-frontend/pkg/fieldset"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/plugin"
)

// rowDeviceFields declares the per-breakpoint row settings.
func rowDeviceFields(size int) []form.DeviceField {
	return []form.DeviceField{
		{NameFormat: "row_cols_{device}", LabelFormat: "row-cols{infix}", Kind: form.KindInteger, Min: form.IntPtr(1), Max: form.IntPtr(size)},
	}
}

// Row lays out columns and can create them in bulk on save.
type Row struct {
	plugin.Base
	scale    device.Scale
	idSource func() string
}

// NewRow builds the row plugin.
func NewRow(options ...Option) *Row {
	return newRow(newConfig(options...))
}

func newRow(cfg config) *Row {
	f := form.New(RowName)
	f.MustAdd(form.StoreConfig,
		form.Field{
			Name:     "create",
			Label:    "Create columns",
			Kind:     form.KindInteger,
			Min:      form.IntPtr(0),
			Max:      form.IntPtr(cfg.size),
			HelpText: "Number of columns to create when saving.",
		},
		form.Field{
			Name:     "vertical_alignment",
			Label:    "Vertical alignment",
			Kind:     form.KindChoice,
			Choices:  withEmpty(RowVerticalAlignmentChoices),
			HelpText: `Read more in the <a href="` + docsVerticalAlignment + `" target="_blank">documentation</a>.`,
		},
		form.Field{
			Name:     "horizontal_alignment",
			Label:    "Horizontal alignment",
			Kind:     form.KindChoice,
			Choices:  withEmpty(RowHorizontalAlignmentChoices),
			HelpText: `Read more in the <a href="` + docsHorizontalAlignment + `" target="_blank">documentation</a>.`,
		},
		form.Field{
			Name:     "gutters",
			Label:    "Remove gutters",
			Kind:     form.KindBoolean,
			Initial:  false,
			HelpText: "Removes the marginal gutters from the grid.",
		},
		attributesField(),
	)
	deviceFields := form.Expand(cfg.scale, rowDeviceFields(cfg.size)...)
	f.MustAdd(form.StoreConfig, deviceFields...)
	f.MustAdd("", tagTypeField())

	colsRow := make([]string, len(deviceFields))
	for i, field := range deviceFields {
		colsRow[i] = field.Name
	}

	idSource := cfg.idSource
	if idSource == nil {
		idSource = uuid.NewString
	}

	return &Row{
		Base: plugin.Base{
			PluginName:     RowName,
			PluginTemplate: "grid_row",
			PluginForm:     f,
			PluginSets: []fieldset.Fieldset{
				{Rows: [][]string{{"create"}}},
				{Name: "Row columns", Rows: [][]string{colsRow}},
				{Name: "Alignment", Rows: [][]string{{"vertical_alignment", "horizontal_alignment"}, {"gutters"}}},
				advancedFieldset(),
			},
		},
		scale:    cfg.scale,
		idSource: idSource,
	}
}

// Render adds the row, alignment, gutter and row-cols classes.
func (r *Row) Render(_ context.Context, item *plugin.Item, data plugin.Data) (plugin.Data, error) {
	item.AddClasses("row")
	item.AddClasses(item.Config.String("vertical_alignment"), item.Config.String("horizontal_alignment"))
	if item.Config.Bool("gutters") {
		item.AddClasses("g-0")
	}
	for _, name := range r.scale.Names() {
		n, ok := item.Config.Int(form.DeviceFieldName("row_cols_{device}", name))
		if ok && n > 0 {
			item.AddClasses(deviceClass("row-cols", r.scale.Infix(name), n))
		}
	}
	return ensureData(data), nil
}

// AfterSave creates the requested number of columns and clears the request so
// the next save does not repeat it.
func (r *Row) AfterSave(_ context.Context, item *plugin.Item) ([]*plugin.Item, error) {
	n, ok := item.Config.Int("create")
	delete(item.Config, "create")
	if !ok || n <= 0 {
		return nil, nil
	}
	created := make([]*plugin.Item, n)
	for i := range created {
		created[i] = &plugin.Item{
			ID:     r.idSource(),
			UIItem: ColumnName,
			Config: entangle.Config{"column_type": ColumnTypeCol},
		}
	}
	return created, nil
}
