package prompt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-frontend/pkg/device"
	"github.com/goliatone/go-frontend/pkg/fieldset"
	"github.com/goliatone/go-frontend/pkg/form"
)

// Breakpoints asks which breakpoints an element is visible on, starting from
// initial (every breakpoint when nil).
func Breakpoints(ctx context.Context, d Driver, scale device.Scale, initial []string) ([]string, error) {
	names := scale.Names()
	options := make([]string, len(names))
	for i, choice := range scale.Choices() {
		options[i] = choice.Label
	}
	if initial == nil {
		initial = names
	}
	var defaults []int
	for _, name := range initial {
		if idx := scale.Index(name); idx >= 0 {
			defaults = append(defaults, idx)
		}
	}

	picked, err := d.MultiSelect(ctx, SelectConfig{
		Message:  "Show element on device",
		Options:  options,
		Defaults: defaults,
		PageSize: len(options),
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(names) {
			out = append(out, names[idx])
		}
	}
	return out, nil
}

// Form asks for every field of f in fieldset order and returns the answers
// as submitted form values, ready for form.Clean. initial seeds defaults.
func Form(ctx context.Context, d Driver, f *form.Form, sets []fieldset.Fieldset, initial map[string]any) (url.Values, error) {
	values := url.Values{}
	asked := make(map[string]bool)
	order := fieldset.Fields(sets)
	order = append(order, f.Names()...)

	for _, name := range order {
		if asked[name] {
			continue
		}
		field, ok := f.Field(name)
		if !ok {
			continue
		}
		asked[name] = true
		answers, err := askField(ctx, d, field, initial[name])
		if err != nil {
			return nil, fmt.Errorf("prompt: %s: %w", name, err)
		}
		if len(answers) > 0 {
			values[name] = answers
		}
	}
	return values, nil
}

func askField(ctx context.Context, d Driver, field form.Field, current any) ([]string, error) {
	message := field.DisplayLabel()
	help := form.PlainHelp(field.HelpText)

	switch field.Kind {
	case form.KindBoolean:
		yes, err := d.Confirm(ctx, ConfirmConfig{Message: message, Default: current == true, Help: help})
		if err != nil || !yes {
			return nil, err
		}
		return []string{"on"}, nil

	case form.KindChoice:
		options := make([]string, len(field.Choices))
		defaultIndex := 0
		for i, choice := range field.Choices {
			options[i] = choiceLabel(choice)
			if choice.Value == fmt.Sprint(valueOrEmpty(current)) {
				defaultIndex = i
			}
		}
		idx, err := d.Select(ctx, SelectConfig{Message: message, Options: options, DefaultIndex: defaultIndex, Help: help})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(field.Choices) {
			return nil, nil
		}
		return []string{field.Choices[idx].Value}, nil

	case form.KindMultiChoice:
		options := make([]string, len(field.Choices))
		selected := make(map[string]bool)
		for _, v := range toStrings(current) {
			selected[v] = true
		}
		var defaults []int
		for i, choice := range field.Choices {
			options[i] = choiceLabel(choice)
			if selected[choice.Value] {
				defaults = append(defaults, i)
			}
		}
		picked, err := d.MultiSelect(ctx, SelectConfig{Message: message, Options: options, Defaults: defaults, Help: help})
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(picked))
		for _, idx := range picked {
			if idx >= 0 && idx < len(field.Choices) {
				out = append(out, field.Choices[idx].Value)
			}
		}
		return out, nil

	case form.KindInteger:
		answer, err := d.Input(ctx, InputConfig{
			Message:   message,
			Default:   fmt.Sprint(valueOrEmpty(current)),
			Help:      help,
			Validator: integerValidator(field),
		})
		if err != nil || strings.TrimSpace(answer) == "" {
			return nil, err
		}
		return []string{strings.TrimSpace(answer)}, nil

	case form.KindAttributes:
		answer, err := d.Input(ctx, InputConfig{
			Message:   message + " (JSON object)",
			Default:   attributesDefault(current),
			Help:      help,
			Validator: jsonObjectValidator,
		})
		if err != nil || strings.TrimSpace(answer) == "" {
			return nil, err
		}
		return []string{answer}, nil

	default:
		answer, err := d.Input(ctx, InputConfig{Message: message, Default: fmt.Sprint(valueOrEmpty(current)), Help: help})
		if err != nil || strings.TrimSpace(answer) == "" {
			return nil, err
		}
		return []string{answer}, nil
	}
}

func choiceLabel(choice form.Choice) string {
	if choice.Value == "" {
		return choice.Label
	}
	if choice.Label == "" || choice.Label == choice.Value {
		return choice.Value
	}
	return choice.Label + " (" + choice.Value + ")"
}

func integerValidator(field form.Field) func(string) error {
	return func(raw string) error {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			if field.Required {
				return fmt.Errorf("this field is required")
			}
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if field.Min != nil && n < *field.Min {
			return fmt.Errorf("must be at least %d", *field.Min)
		}
		if field.Max != nil && n > *field.Max {
			return fmt.Errorf("must be at most %d", *field.Max)
		}
		return nil
	}
}

func jsonObjectValidator(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return fmt.Errorf("enter a JSON object: %w", err)
	}
	return nil
}

func attributesDefault(current any) string {
	if current == nil {
		return ""
	}
	raw, err := json.Marshal(current)
	if err != nil || string(raw) == "{}" || string(raw) == "null" {
		return ""
	}
	return string(raw)
}

func valueOrEmpty(v any) any {
	if v == nil {
		return ""
	}
	return v
}

func toStrings(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
