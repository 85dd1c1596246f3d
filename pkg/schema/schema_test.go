package schema_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-frontend/pkg/device"
	"github.com/goliatone/go-frontend/pkg/entangle"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/grid"
	"github.com/goliatone/go-frontend/pkg/plugin"
	"github.com/goliatone/go-frontend/pkg/responsive"
	"github.com/goliatone/go-frontend/pkg/schema"
)

func gridRegistry(t *testing.T) *plugin.Registry {
	t.Helper()
	reg := plugin.NewRegistry()
	if err := grid.Register(reg); err != nil {
		t.Fatalf("register grid: %v", err)
	}
	return reg
}

func TestFromFormVisibilityField(t *testing.T) {
	f := form.New("Sample").MustAdd(form.StoreConfig, responsive.Field(device.DefaultScale()))
	f.MustAdd("", form.Field{Name: "tag_type", Kind: form.KindText})

	s := schema.FromForm(f)

	if _, ok := s.Properties["tag_type"]; ok {
		t.Fatalf("untangled field exported as config property")
	}
	prop, ok := s.Properties[responsive.FieldName]
	if !ok || prop.Value == nil {
		t.Fatalf("missing %s property", responsive.FieldName)
	}
	if !prop.Value.Type.Is("array") {
		t.Fatalf("expected array type, got %v", prop.Value.Type)
	}
	if diff := cmp.Diff([]any{"xs", "sm", "md", "lg", "xl", "xxl"}, prop.Value.Items.Value.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"xs", "sm", "md", "lg", "xl", "xxl"}, prop.Value.Default); diff != "" {
		t.Fatalf("default mismatch (-want +got):\n%s", diff)
	}
	if got := prop.Value.Extensions[schema.ExtensionWidget]; got != responsive.WidgetIconMultiselect {
		t.Fatalf("widget extension = %v", got)
	}
}

func TestFromFormIntegerBounds(t *testing.T) {
	f := form.New("Sample").MustAdd(form.StoreConfig, form.Field{
		Name: "width", Kind: form.KindInteger, Min: form.IntPtr(1), Max: form.IntPtr(12), Required: true,
	})

	s := schema.FromForm(f)
	width := s.Properties["width"].Value
	if width.Min == nil || *width.Min != 1 || width.Max == nil || *width.Max != 12 {
		t.Fatalf("unexpected bounds: min=%v max=%v", width.Min, width.Max)
	}
	if diff := cmp.Diff([]string{"width"}, s.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}

func TestComponentsCoverRegistry(t *testing.T) {
	components := schema.Components(gridRegistry(t))

	var names []string
	for name := range components {
		names = append(names, name)
	}
	want := map[string]bool{grid.ContainerName: true, grid.RowName: true, grid.ColumnName: true}
	if len(names) != len(want) {
		t.Fatalf("unexpected components: %v", names)
	}
	for _, name := range names {
		if !want[name] {
			t.Fatalf("unexpected component %q", name)
		}
	}

	raw, err := json.Marshal(components)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"row_cols_md"`) {
		t.Fatalf("row schema missing per-device field: %s", raw)
	}
}

func TestValidateConfig(t *testing.T) {
	reg := gridRegistry(t)
	row := reg.MustGet(grid.RowName).Form()
	ctx := context.Background()

	tests := []struct {
		name    string
		config  entangle.Config
		wantErr string
	}{
		{
			name: "valid",
			config: entangle.Config{
				"responsive_visibility": []string{"md", "lg"},
				"row_cols_md":           3,
				"row_cols_lg":           nil,
				"gutters":               true,
				"attributes":            map[string]string{"id": "hero"},
			},
		},
		{
			name:    "out of range",
			config:  entangle.Config{"row_cols_md": 13},
			wantErr: "row_cols_md",
		},
		{
			name:    "unknown breakpoint",
			config:  entangle.Config{"responsive_visibility": []string{"phone"}},
			wantErr: "responsive_visibility",
		},
		{
			name:    "wrong type",
			config:  entangle.Config{"gutters": "yes"},
			wantErr: "gutters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.ValidateConfig(ctx, row, tt.config)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}
