package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-frontend/pkg/entangle"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/plugin"
	"github.com/goliatone/go-frontend/pkg/widgets"
)

type formView struct {
	Name      string         `json:"name"`
	Action    string         `json:"action,omitempty"`
	Hidden    []HiddenField  `json:"hidden,omitempty"`
	Errors    []string       `json:"errors,omitempty"`
	Fieldsets []fieldsetView `json:"fieldsets"`
}

type fieldsetView struct {
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	Classes     string        `json:"classes,omitempty"`
	Rows        [][]fieldView `json:"rows"`
}

type fieldView struct {
	Name     string       `json:"name"`
	Label    string       `json:"label"`
	Widget   string       `json:"widget"`
	Required bool         `json:"required,omitempty"`
	Value    string       `json:"value,omitempty"`
	Checked  bool         `json:"checked,omitempty"`
	Options  []optionView `json:"options,omitempty"`
	Min      string       `json:"min,omitempty"`
	Max      string       `json:"max,omitempty"`
	Help     string       `json:"help,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

type optionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`
}

func buildFormView(p plugin.Plugin, item *plugin.Item, reg *widgets.Registry, opts RenderOptions) formView {
	f := p.Form()

	var (
		config    entangle.Config
		untangled entangle.Untangled
	)
	if item != nil {
		config = item.Config
		untangled = entangle.Untangled{"tag_type": item.TagType}
		if item.TagType == "" {
			delete(untangled, "tag_type")
		}
	}
	values := entangle.Untangle(f, config, untangled)
	for key, value := range opts.Values {
		values[key] = value
	}

	fields := make(map[string]form.Field)
	for _, field := range reg.Decorate(f) {
		fields[field.Name] = field
	}

	view := formView{
		Name:   p.Name(),
		Action: opts.Action,
		Hidden: sortedHidden(opts.Hidden),
		Errors: opts.Errors[""],
	}
	for _, set := range p.Fieldsets() {
		setView := fieldsetView{
			Name:        set.Name,
			Description: set.Description,
			Classes:     strings.Join(set.Classes, " "),
		}
		for _, row := range set.Rows {
			var rowView []fieldView
			for _, name := range row {
				field, ok := fields[name]
				if !ok {
					continue
				}
				rowView = append(rowView, buildFieldView(field, values[name], opts.Errors[name]))
			}
			if len(rowView) > 0 {
				setView.Rows = append(setView.Rows, rowView)
			}
		}
		if len(setView.Rows) > 0 {
			view.Fieldsets = append(view.Fieldsets, setView)
		}
	}
	return view
}

func buildFieldView(field form.Field, value any, errs []string) fieldView {
	view := fieldView{
		Name:     field.Name,
		Label:    field.DisplayLabel(),
		Widget:   field.Widget,
		Required: field.Required,
		Help:     form.SanitizeHelp(field.HelpText),
		Errors:   errs,
	}
	if field.Min != nil {
		view.Min = strconv.Itoa(*field.Min)
	}
	if field.Max != nil {
		view.Max = strconv.Itoa(*field.Max)
	}

	switch field.Kind {
	case form.KindBoolean:
		view.Checked = truthy(value)
	case form.KindMultiChoice:
		selected := make(map[string]bool)
		for _, v := range stringList(value) {
			selected[v] = true
		}
		for _, choice := range field.Choices {
			view.Options = append(view.Options, optionView{
				Value:    choice.Value,
				Label:    choice.Label,
				Selected: selected[choice.Value],
			})
		}
	case form.KindChoice:
		current := stringValue(value)
		for _, choice := range field.Choices {
			view.Options = append(view.Options, optionView{
				Value:    choice.Value,
				Label:    choice.Label,
				Selected: choice.Value == current,
			})
		}
		view.Value = current
	case form.KindAttributes:
		view.Value = attributesValue(value)
	default:
		view.Value = stringValue(value)
	}
	return view
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "on", "yes":
			return true
		}
	}
	return false
}

func stringList(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func attributesValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		if string(raw) == "{}" || string(raw) == "null" {
			return ""
		}
		return string(raw)
	}
}
