package render_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-frontend/pkg/entangle"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/grid"
	"github.com/goliatone/go-frontend/pkg/plugin"
	"github.com/goliatone/go-frontend/pkg/render"
)

func newRenderer(t *testing.T, options ...render.Option) *render.Renderer {
	t.Helper()
	reg := plugin.NewRegistry()
	if err := grid.Register(reg); err != nil {
		t.Fatalf("register grid: %v", err)
	}
	r, err := render.New(reg, options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func sampleTree() *plugin.Item {
	return &plugin.Item{
		ID:     "c1",
		UIItem: grid.ContainerName,
		Config: entangle.Config{
			"container_type": "container",
			"attributes":     map[string]any{"id": "hero"},
		},
		Children: []*plugin.Item{{
			ID:     "r1",
			UIItem: grid.RowName,
			Config: entangle.Config{
				"responsive_visibility": []any{"md", "lg", "xl", "xxl"},
			},
			Children: []*plugin.Item{
				{ID: "col2", UIItem: grid.ColumnName, Position: 1, Config: entangle.Config{"column_type": "col", "md_col": 6}},
				{ID: "col1", UIItem: grid.ColumnName, Position: 0, Config: entangle.Config{"column_type": "w-100"}},
			},
		}},
	}
}

func TestRenderItemTree(t *testing.T) {
	r := newRenderer(t)
	tree := sampleTree()

	got, err := r.RenderItem(context.Background(), tree, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<div class="container" id="hero">` +
		`<div class="row d-none d-md-flex">` +
		`<div class="w-100"></div>` +
		`<div class="col col-md-6"></div>` +
		`</div></div>`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	if classes := tree.Classes(); len(classes) != 0 {
		t.Fatalf("stored item gained classes: %v", classes)
	}
}

func TestRenderItemThemeDisplayToken(t *testing.T) {
	r := newRenderer(t)
	row := &plugin.Item{
		UIItem: grid.RowName,
		Config: entangle.Config{"responsive_visibility": []string{"md"}},
	}

	got, err := r.RenderItem(context.Background(), row, render.RenderOptions{
		Theme: &theme.RendererConfig{
			Theme:  "acme",
			Tokens: map[string]string{"display.GridRow": "grid"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<div class="row d-none d-md-grid d-lg-none"></div>`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderItemTagAndAttributeSafety(t *testing.T) {
	r := newRenderer(t)

	tests := []struct {
		name string
		item *plugin.Item
		want string
	}{
		{
			name: "custom tag",
			item: &plugin.Item{UIItem: grid.ColumnName, TagType: "section", Config: entangle.Config{"column_type": "col"}},
			want: `<section class="col"></section>`,
		},
		{
			name: "invalid tag falls back to div",
			item: &plugin.Item{UIItem: grid.ColumnName, TagType: "script><b", Config: entangle.Config{"column_type": "col"}},
			want: `<div class="col"></div>`,
		},
		{
			name: "event handlers dropped and values escaped",
			item: &plugin.Item{UIItem: grid.ColumnName, Config: entangle.Config{
				"column_type": "col",
				"attributes":  map[string]string{"onclick": "alert(1)", "title": `a "quoted" <b>`},
			}},
			want: `<div class="col" title="a &#34;quoted&#34; &lt;b&gt;"></div>`,
		},
		{
			name: "hidden everywhere",
			item: &plugin.Item{UIItem: grid.ColumnName, Config: entangle.Config{
				"column_type":           "col",
				"responsive_visibility": []string{},
			}},
			want: `<div class="col d-none"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.RenderItem(context.Background(), tt.item, render.RenderOptions{})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderItemThemePartialOverride(t *testing.T) {
	files := fstest.MapFS{
		"templates/plugins/grid_row.tmpl": {Data: []byte(`<div{{ attributes|html_attrs }}></div>`)},
		"custom/row.tmpl":                 {Data: []byte(`<section data-theme="{{ theme.name }}"{{ attributes|html_attrs }}></section>`)},
	}
	r := newRenderer(t, render.WithTemplatesFS(files))

	got, err := r.RenderItem(context.Background(), &plugin.Item{UIItem: grid.RowName}, render.RenderOptions{
		Theme: &theme.RendererConfig{
			Theme:    "acme",
			Partials: map[string]string{"plugins.grid_row": "custom/row"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<section data-theme="acme" class="row"></section>`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderItemsOrdersSiblings(t *testing.T) {
	r := newRenderer(t)
	items := []*plugin.Item{
		{UIItem: grid.ColumnName, Position: 2, Config: entangle.Config{"column_type": "w-100"}},
		{UIItem: grid.ColumnName, Position: 1, Config: entangle.Config{"column_type": "col"}},
	}

	got, err := r.RenderItems(context.Background(), items, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<div class="col"></div><div class="w-100"></div>`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderItemUnknownPlugin(t *testing.T) {
	r := newRenderer(t)
	_, err := r.RenderItem(context.Background(), &plugin.Item{ID: "x", UIItem: "Carousel"}, render.RenderOptions{})
	if err == nil || !strings.Contains(err.Error(), `plugin "Carousel" not found`) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestRenderItemHonoursCancelledContext(t *testing.T) {
	r := newRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.RenderItem(ctx, sampleTree(), render.RenderOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderForm(t *testing.T) {
	r := newRenderer(t)
	item := &plugin.Item{
		UIItem: grid.RowName,
		Config: entangle.Config{
			"responsive_visibility": []any{"xs", "sm"},
			"gutters":               true,
			"row_cols_md":           3,
		},
	}

	got, err := r.RenderForm(context.Background(), grid.RowName, item, render.RenderOptions{
		Action: "/plugins/GridRow/preview",
		Errors: form.Errors{
			"":            {"Please correct the errors below."},
			"row_cols_lg": {"Ensure this value is less than or equal to 12."},
		},
		Hidden: []render.HiddenField{render.CSRFToken("csrfmiddlewaretoken", "tok")},
	})
	if err != nil {
		t.Fatalf("render form: %v", err)
	}
	out := string(got)

	for _, fragment := range []string{
		`data-plugin="GridRow" action="/plugins/GridRow/preview"`,
		`<input type="hidden" name="csrfmiddlewaretoken" value="tok">`,
		`<li>Please correct the errors below.</li>`,
		`<legend>Visibility</legend>`,
		`<fieldset class="collapse">`,
		`<input type="checkbox" name="responsive_visibility" value="xs" checked>`,
		`<input type="checkbox" name="responsive_visibility" value="md">`,
		`<input type="checkbox" id="id_gutters" name="gutters" value="1" checked>`,
		`<input type="number" id="id_row_cols_md" name="row_cols_md" value="3" min="1" max="12">`,
		`<span class="error">Ensure this value is less than or equal to 12.</span>`,
		`<option value="div" selected>`,
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("form output missing %q\n%s", fragment, out)
		}
	}
}

func TestRenderFormHiddenFields(t *testing.T) {
	r := newRenderer(t)

	got, err := r.RenderForm(context.Background(), grid.ColumnName, nil, render.RenderOptions{
		Hidden: []render.HiddenField{
			render.Hidden("position", 1),
			render.CSRFToken("_csrf", "tok"),
			render.Hidden(" ", "skipped"),
			render.Hidden("position", 2),
		},
	})
	if err != nil {
		t.Fatalf("render form: %v", err)
	}
	want := "<input type=\"hidden\" name=\"_csrf\" value=\"tok\">\n<input type=\"hidden\" name=\"position\" value=\"2\">\n"
	if !strings.Contains(string(got), want) {
		t.Fatalf("hidden inputs missing or out of order:\n%s", got)
	}
	if strings.Contains(string(got), "skipped") {
		t.Fatalf("unnamed hidden field rendered:\n%s", got)
	}
}

func TestRenderFormDefaultsForNewItem(t *testing.T) {
	r := newRenderer(t)
	got, err := r.RenderForm(context.Background(), grid.ContainerName, nil, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render form: %v", err)
	}
	out := string(got)

	for _, fragment := range []string{
		`<option value="container" selected>`,
		`<input type="range" id="id_container_transparency" name="container_transparency" value="0" min="0" max="100">`,
		`<input type="checkbox" name="responsive_visibility" value="xxl" checked>`,
		`<code>.container</code>`,
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("form output missing %q\n%s", fragment, out)
		}
	}
}

func TestRenderFormUnknownPlugin(t *testing.T) {
	r := newRenderer(t)
	if _, err := r.RenderForm(context.Background(), "Carousel", nil, render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for unknown plugin")
	}
}
