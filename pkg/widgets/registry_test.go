package widgets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/widgets"
)

func TestRegistryResolvesBuiltins(t *testing.T) {
	reg := widgets.NewRegistry()

	cases := []struct {
		field form.Field
		want  string
	}{
		{field: form.Field{Kind: form.KindBoolean}, want: widgets.WidgetToggle},
		{field: form.Field{Kind: form.KindMultiChoice}, want: widgets.WidgetCheckboxes},
		{field: form.Field{Kind: form.KindChoice, Choices: []form.Choice{{Value: "a"}}}, want: widgets.WidgetSelect},
		{field: form.Field{Kind: form.KindChoice}, want: widgets.WidgetText},
		{field: form.Field{Kind: form.KindInteger}, want: widgets.WidgetNumber},
		{field: form.Field{Kind: form.KindAttributes}, want: widgets.WidgetAttributes},
		{field: form.Field{Kind: form.KindImage}, want: widgets.WidgetImage},
		{field: form.Field{Kind: form.KindText}, want: widgets.WidgetText},
		{field: form.Field{Kind: form.KindInteger, Widget: widgets.WidgetRange}, want: widgets.WidgetRange},
	}
	for _, tc := range cases {
		got, ok := reg.Resolve(tc.field)
		if !ok || got != tc.want {
			t.Fatalf("field %+v: want %s, got %s (%v)", tc.field, tc.want, got, ok)
		}
	}
}

func TestRegistryPriority(t *testing.T) {
	reg := widgets.NewRegistry()
	reg.Register("slider", 100, func(field form.Field) bool {
		return field.Kind == form.KindInteger && field.Max != nil && *field.Max == 100
	})

	got, _ := reg.Resolve(form.Field{Kind: form.KindInteger, Max: form.IntPtr(100)})
	if got != "slider" {
		t.Fatalf("expected slider, got %s", got)
	}
	got, _ = reg.Resolve(form.Field{Kind: form.KindInteger, Max: form.IntPtr(12)})
	if got != widgets.WidgetNumber {
		t.Fatalf("expected number, got %s", got)
	}
}

func TestRegistryDecorate(t *testing.T) {
	f := form.New("X").MustAdd(form.StoreConfig,
		form.Field{Name: "a", Kind: form.KindBoolean},
		form.Field{Name: "b", Kind: form.KindMultiChoice, Widget: "icon-multiselect"},
	)
	fields := widgets.NewRegistry().Decorate(f)

	got := []string{fields[0].Widget, fields[1].Widget}
	if diff := cmp.Diff([]string{widgets.WidgetToggle, "icon-multiselect"}, got); diff != "" {
		t.Fatalf("widgets mismatch (-want +got):\n%s", diff)
	}
	if f.Fields[0].Widget != "" {
		t.Fatalf("decorate mutated the form")
	}
}
