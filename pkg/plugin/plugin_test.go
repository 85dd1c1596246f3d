package plugin_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-frontend/pkg/entangle"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/plugin"
)

type stubPlugin struct {
	plugin.Base
	created []*plugin.Item
}

func (s *stubPlugin) AfterSave(_ context.Context, item *plugin.Item) ([]*plugin.Item, error) {
	delete(item.Config, "create")
	return s.created, nil
}

func newStub() *stubPlugin {
	f := form.New("Stub")
	f.MustAdd(form.StoreConfig,
		form.Field{Name: "create", Kind: form.KindInteger, Min: form.IntPtr(0)},
		form.Field{Name: "attributes", Kind: form.KindAttributes},
	)
	f.MustAdd("", form.Field{Name: "tag_type", Kind: form.KindText})
	return &stubPlugin{
		Base: plugin.Base{PluginName: "Stub", PluginTemplate: "stub", PluginForm: f},
		created: []*plugin.Item{
			{UIItem: "Child"},
			{UIItem: "Child"},
		},
	}
}

func TestItemAttributesMergeOrder(t *testing.T) {
	item := &plugin.Item{
		UIItem: "GridRow",
		Config: entangle.Config{
			plugin.ConfigAttributes: map[string]any{
				"class":   "custom row",
				"style":   "color: red;",
				"id":      "hero",
				"data-ab": "1",
			},
		},
	}
	item.AddClasses("row", "g-0  d-none", "row")
	item.AddStyle("--bs-bg-opacity: 0.5;")

	want := []plugin.Attribute{
		{Name: "class", Value: "row g-0 d-none custom"},
		{Name: "style", Value: "--bs-bg-opacity: 0.5; color: red"},
		{Name: "data-ab", Value: "1"},
		{Name: "id", Value: "hero"},
	}
	if diff := cmp.Diff(want, item.Attributes()); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
	if item.Tag() != "div" {
		t.Fatalf("expected default tag div, got %s", item.Tag())
	}
}

func TestItemCloneIsolatesClasses(t *testing.T) {
	item := &plugin.Item{UIItem: "GridColumn", Children: []*plugin.Item{{UIItem: "GridColumn"}}}
	clone := item.Clone()
	clone.AddClasses("col")
	clone.Children[0].AddClasses("col-6")

	if len(item.Classes()) != 0 || len(item.Children[0].Classes()) != 0 {
		t.Fatalf("clone leaked classes into original")
	}
}

func TestRegistry(t *testing.T) {
	reg := plugin.NewRegistry()
	stub := newStub()
	if err := reg.Register(stub); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(stub); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if _, err := reg.Get("Missing"); err == nil {
		t.Fatalf("expected missing plugin error")
	}
	if !reg.Has("Stub") {
		t.Fatalf("expected Stub registered")
	}
	if diff := cmp.Diff([]string{"Stub"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveEntanglesAndRunsHook(t *testing.T) {
	stub := newStub()
	item := &plugin.Item{Config: entangle.Config{"kept": true}}

	created, err := plugin.Save(context.Background(), stub, item, url.Values{
		"create":     {"2"},
		"attributes": {`{"id":"x"}`},
		"tag_type":   {"section"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(created) != 2 || len(item.Children) != 2 {
		t.Fatalf("expected 2 created children, got %d/%d", len(created), len(item.Children))
	}
	if item.Children[1].Position != 1 {
		t.Fatalf("expected positions assigned, got %d", item.Children[1].Position)
	}
	if item.UIItem != "Stub" || item.TagType != "section" {
		t.Fatalf("unexpected item identity: %+v", item)
	}
	want := entangle.Config{"kept": true, "attributes": map[string]string{"id": "x"}}
	if diff := cmp.Diff(want, item.Config); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveReturnsFormErrors(t *testing.T) {
	item := &plugin.Item{}
	_, err := plugin.Save(context.Background(), newStub(), item, url.Values{"create": {"-1"}})

	var errs form.Errors
	if !errors.As(err, &errs) || len(errs["create"]) == 0 {
		t.Fatalf("expected create error, got %v", err)
	}
	if item.Config != nil {
		t.Fatalf("item modified on failure")
	}
}
