package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-frontend/pkg/entangle"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/plugin"
	"github.com/goliatone/go-frontend/pkg/prompt"
)

func (a *App) edit(ctx context.Context, args []string) error {
	fs := a.flagSet("edit")
	name := fs.String("plugin", "", "plugin name (defaults to the item's ui_item)")
	itemPath := fs.String("item", "", "existing item JSON file, - for stdin (new item if empty)")
	settingsPath := fs.String("settings", "", "settings file (YAML or JSON)")
	output := fs.String("output", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	item := &plugin.Item{UIItem: *name}
	if *itemPath != "" {
		var err error
		if item, err = a.readItem(*itemPath); err != nil {
			return err
		}
		if *name != "" && item.UIItem != *name {
			return fmt.Errorf("item is a %s, not a %s", item.UIItem, *name)
		}
	}
	if item.UIItem == "" {
		return fmt.Errorf("%w: -plugin is required for new items", ErrUsage)
	}

	reg, err := registry(*settingsPath)
	if err != nil {
		return err
	}
	p, err := reg.Get(item.UIItem)
	if err != nil {
		return err
	}

	var untangled entangle.Untangled
	if item.TagType != "" {
		untangled = entangle.Untangled{"tag_type": item.TagType}
	}
	initial := entangle.Untangle(p.Form(), item.Config, untangled)

	values, err := prompt.Form(ctx, a.driver(), p.Form(), p.Fieldsets(), initial)
	if err != nil {
		return err
	}
	created, err := plugin.Save(ctx, p, item, values)
	if err != nil {
		var errs form.Errors
		if errors.As(err, &errs) {
			return fmt.Errorf("invalid settings: %w", errs)
		}
		return err
	}
	if len(created) > 0 {
		fmt.Fprintf(a.Stderr, "created %d %s item(s)\n", len(created), created[0].UIItem)
	}

	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}
	return a.write(*output, append(data, '\n'))
}
