package responsive_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-frontend/pkg/entangle"
	"github.com/goliatone/go-frontend/pkg/fieldset"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/plugin"
	"github.com/goliatone/go-frontend/pkg/responsive"
)

type rowPlugin struct {
	plugin.Base
	saved bool
}

func (p *rowPlugin) Render(_ context.Context, item *plugin.Item, data plugin.Data) (plugin.Data, error) {
	item.AddClasses("row")
	return data, nil
}

func (p *rowPlugin) AfterSave(context.Context, *plugin.Item) ([]*plugin.Item, error) {
	p.saved = true
	return nil, nil
}

func newRowPlugin() *rowPlugin {
	f := form.New("GridRow").MustAdd(form.StoreConfig, form.Field{Name: "gutters", Kind: form.KindBoolean})
	return &rowPlugin{Base: plugin.Base{
		PluginName:     "GridRow",
		PluginTemplate: "grid_row",
		PluginForm:     f,
		PluginSets:     []fieldset.Fieldset{{Rows: [][]string{{"gutters"}}}},
	}}
}

func TestMixinExtendsFormAndFieldsets(t *testing.T) {
	inner := newRowPlugin()
	wrapped := responsive.Wrap(inner, responsive.WithScale(fiveScale()))

	field, ok := wrapped.Form().Field(responsive.FieldName)
	if !ok {
		t.Fatalf("expected visibility field on wrapped form")
	}
	if field.Kind != form.KindMultiChoice || field.Widget != responsive.WidgetIconMultiselect {
		t.Fatalf("unexpected field declaration: %+v", field)
	}
	if diff := cmp.Diff([]string{"xs", "sm", "md", "lg", "xl"}, field.Initial); diff != "" {
		t.Fatalf("initial mismatch (-want +got):\n%s", diff)
	}
	if wrapped.Form().StoreOf(responsive.FieldName) != form.StoreConfig {
		t.Fatalf("visibility field must be entangled into config")
	}
	if _, ok := inner.Form().Field(responsive.FieldName); ok {
		t.Fatalf("wrapping mutated the inner form")
	}

	sets := wrapped.Fieldsets()
	if len(sets) != 2 {
		t.Fatalf("expected 2 fieldsets, got %d", len(sets))
	}
	want := fieldset.Fieldset{
		Name:    responsive.BlockName,
		Classes: []string{fieldset.ClassCollapse},
		Rows:    [][]string{{responsive.FieldName}},
	}
	if diff := cmp.Diff(want, sets[1]); diff != "" {
		t.Fatalf("visibility fieldset mismatch (-want +got):\n%s", diff)
	}
}

func TestMixinRenderAddsClasses(t *testing.T) {
	wrapped := responsive.Wrap(newRowPlugin(), responsive.WithScale(fiveScale()))

	cases := []struct {
		name   string
		config entangle.Config
		data   plugin.Data
		want   []string
	}{
		{name: "no selection stored", config: entangle.Config{}, want: []string{"row"}},
		{name: "nil selection", config: entangle.Config{responsive.FieldName: nil}, want: []string{"row"}},
		{name: "empty selection hides", config: entangle.Config{responsive.FieldName: []any{}}, want: []string{"row", "d-none"}},
		{
			name:   "row uses flex",
			config: entangle.Config{responsive.FieldName: []any{"sm", "md", "lg", "xl"}},
			want:   []string{"row", "d-none", "d-sm-flex"},
		},
		{
			name:   "theme override",
			config: entangle.Config{responsive.FieldName: []string{"md"}},
			data:   plugin.Data{responsive.DataThemeTokens: map[string]string{"display.GridRow": "grid"}},
			want:   []string{"row", "d-none", "d-md-grid", "d-lg-none"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := &plugin.Item{UIItem: "GridRow", Config: tc.config}
			if _, err := wrapped.Render(context.Background(), item, tc.data); err != nil {
				t.Fatalf("render: %v", err)
			}
			if diff := cmp.Diff(tc.want, item.Classes()); diff != "" {
				t.Fatalf("classes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMixinDisplayTokenOption(t *testing.T) {
	wrapped := responsive.Wrap(newRowPlugin(),
		responsive.WithScale(fiveScale()),
		responsive.WithDisplayTokens(map[string]string{"GridRow": "inline-flex"}),
	)
	item := &plugin.Item{UIItem: "GridRow", Config: entangle.Config{responsive.FieldName: []string{"sm", "md", "lg", "xl"}}}
	if _, err := wrapped.Render(context.Background(), item, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"row", "d-none", "d-sm-inline-flex"}, item.Classes()); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
}

func TestMixinForwardsAfterSave(t *testing.T) {
	inner := newRowPlugin()
	wrapped := responsive.Wrap(inner)
	if _, err := wrapped.AfterSave(context.Background(), &plugin.Item{}); err != nil {
		t.Fatalf("after save: %v", err)
	}
	if !inner.saved {
		t.Fatalf("expected inner AfterSave to run")
	}
}
