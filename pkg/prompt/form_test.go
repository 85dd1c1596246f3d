package prompt_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-frontend/pkg/device"
	"github.com/goliatone/go-frontend/pkg/fieldset"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/prompt"
)

// scriptedDriver answers prompts from queues and records what was asked.
type scriptedDriver struct {
	inputs   []string
	confirms []bool
	selects  []int
	multis   [][]int

	asked       []string
	multiConfig []prompt.SelectConfig
	inputConfig []prompt.InputConfig
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	d.inputConfig = append(d.inputConfig, cfg)
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	d.asked = append(d.asked, cfg.Message)
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	d.asked = append(d.asked, cfg.Message)
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func (d *scriptedDriver) MultiSelect(_ context.Context, cfg prompt.SelectConfig) ([]int, error) {
	d.asked = append(d.asked, cfg.Message)
	d.multiConfig = append(d.multiConfig, cfg)
	out := d.multis[0]
	d.multis = d.multis[1:]
	return out, nil
}

func TestBreakpoints(t *testing.T) {
	d := &scriptedDriver{multis: [][]int{{0, 3, 4}}}

	got, err := prompt.Breakpoints(context.Background(), d, device.DefaultScale(), []string{"md"})
	if err != nil {
		t.Fatalf("breakpoints: %v", err)
	}
	if diff := cmp.Diff([]string{"xs", "lg", "xl"}, got); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2}, d.multiConfig[0].Defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestFormFollowsFieldsetOrder(t *testing.T) {
	f := form.New("Sample").MustAdd(form.StoreConfig,
		form.Field{Name: "title", Kind: form.KindText},
		form.Field{Name: "width", Kind: form.KindInteger, Min: form.IntPtr(1), Max: form.IntPtr(12)},
		form.Field{Name: "align", Kind: form.KindChoice, Choices: []form.Choice{form.EmptyChoice, {Value: "start", Label: "Start"}}},
		form.Field{Name: "flush", Kind: form.KindBoolean},
		form.Field{Name: "devices", Kind: form.KindMultiChoice, Choices: []form.Choice{{Value: "xs"}, {Value: "md"}}},
		form.Field{Name: "attributes", Kind: form.KindAttributes},
	)
	sets := []fieldset.Fieldset{
		{Rows: [][]string{{"width"}, {"align", "flush"}}},
		{Name: "More", Rows: [][]string{{"devices"}, {"attributes"}}},
	}
	d := &scriptedDriver{
		inputs:   []string{"6", `{"id": "hero"}`, "Hello"},
		confirms: []bool{true},
		selects:  []int{1},
		multis:   [][]int{{1}},
	}

	got, err := prompt.Form(context.Background(), d, f, sets, map[string]any{"width": float64(4)})
	if err != nil {
		t.Fatalf("form: %v", err)
	}

	want := url.Values{
		"width":      {"6"},
		"align":      {"start"},
		"flush":      {"on"},
		"devices":    {"md"},
		"attributes": {`{"id": "hero"}`},
		"title":      {"Hello"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	wantOrder := []string{"Width", "Align", "Flush", "Devices", "Attributes (JSON object)", "Title"}
	if diff := cmp.Diff(wantOrder, d.asked); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
	if d.inputConfig[0].Default != "4" {
		t.Fatalf("width default = %q", d.inputConfig[0].Default)
	}

	cleaned, err := f.Clean(got)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if cleaned["width"] != 6 || cleaned["flush"] != true {
		t.Fatalf("unexpected cleaned values: %v", cleaned)
	}
}

func TestIntegerValidator(t *testing.T) {
	f := form.New("Sample").MustAdd(form.StoreConfig,
		form.Field{Name: "width", Kind: form.KindInteger, Min: form.IntPtr(1), Max: form.IntPtr(12)},
	)
	d := &scriptedDriver{inputs: []string{""}}
	if _, err := prompt.Form(context.Background(), d, f, nil, nil); err != nil {
		t.Fatalf("form: %v", err)
	}

	validate := d.inputConfig[0].Validator
	for _, tc := range []struct {
		in    string
		valid bool
	}{
		{"", true}, {"1", true}, {"12", true}, {"0", false}, {"13", false}, {"abc", false},
	} {
		if err := validate(tc.in); (err == nil) != tc.valid {
			t.Errorf("validate(%q) = %v, want valid=%v", tc.in, err, tc.valid)
		}
	}
}
