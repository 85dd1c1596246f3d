package entangle_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-frontend/pkg/entangle"
	"github.com/goliatone/go-frontend/pkg/form"
)

func gridForm() *form.Form {
	f := form.New("GridRow")
	f.MustAdd(form.StoreConfig,
		form.Field{Name: "gutters", Kind: form.KindBoolean, Initial: false},
		form.Field{Name: "row_cols_xs", Kind: form.KindInteger},
		form.Field{Name: "vertical_alignment", Kind: form.KindChoice, Initial: ""},
	)
	f.MustAdd("", form.Field{Name: "tag_type", Kind: form.KindText, Initial: "div"})
	return f
}

func TestEntangleSplitsStores(t *testing.T) {
	config, untangled := entangle.Entangle(gridForm(), map[string]any{
		"gutters":     true,
		"row_cols_xs": 3,
		"tag_type":    "section",
		"unknown":     "dropped",
	})

	if diff := cmp.Diff(entangle.Config{"gutters": true, "row_cols_xs": 3}, config); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(entangle.Untangled{"tag_type": "section"}, untangled); diff != "" {
		t.Fatalf("untangled mismatch (-want +got):\n%s", diff)
	}
}

func TestUntangleFallsBackToInitial(t *testing.T) {
	got := entangle.Untangle(gridForm(), entangle.Config{"row_cols_xs": 2.0}, nil)

	want := map[string]any{
		"gutters":            false,
		"row_cols_xs":        2.0,
		"vertical_alignment": "",
		"tag_type":           "div",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("initial mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigAccessors(t *testing.T) {
	config := entangle.Config{
		"n":       float64(4),
		"s":       " text ",
		"b":       true,
		"list":    []any{"xs", 3, "md"},
		"attrs":   map[string]any{"id": "hero", "data-x": 1.0},
		"nothing": nil,
	}

	if n, ok := config.Int("n"); !ok || n != 4 {
		t.Fatalf("int: got %d %v", n, ok)
	}
	if _, ok := config.Int("s"); ok {
		t.Fatalf("expected non-numeric string to fail")
	}
	if config.String("s") != "text" {
		t.Fatalf("string: got %q", config.String("s"))
	}
	if !config.Bool("b") || config.Bool("missing") {
		t.Fatalf("bool accessors incorrect")
	}
	if diff := cmp.Diff([]string{"xs", "md"}, config.Strings("list")); diff != "" {
		t.Fatalf("strings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"id": "hero", "data-x": "1"}, config.Map("attrs")); diff != "" {
		t.Fatalf("map mismatch (-want +got):\n%s", diff)
	}
	if !config.Has("nothing") || config.Has("missing") {
		t.Fatalf("has accessor incorrect")
	}
}

func TestConfigCloneAndMerge(t *testing.T) {
	base := entangle.Config{"list": []string{"xs"}, "a": 1}
	merged := entangle.Merge(base, entangle.Config{"a": 2, "b": nil})

	if base["a"] != 1 {
		t.Fatalf("merge mutated base")
	}
	if diff := cmp.Diff(entangle.Config{"list": []string{"xs"}, "a": 2, "b": nil}, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}

	normalized, err := merged.Normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if diff := cmp.Diff(entangle.Config{"list": []any{"xs"}, "a": 2.0, "b": nil}, normalized); diff != "" {
		t.Fatalf("normalize mismatch (-want +got):\n%s", diff)
	}
}
