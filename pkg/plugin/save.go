package plugin

import (
	"context"
	"fmt"
	"net/url"

	"github.com/goliatone/go-frontend/pkg/entangle"
)

// Save cleans submitted values with the plugin form, stores them on item and
// runs the plugin's AfterSave hook. Created items are appended to the item's
// children and also returned. Validation failures are returned as form.Errors
// and leave item untouched.
func Save(ctx context.Context, p Plugin, item *Item, values url.Values) ([]*Item, error) {
	if p == nil || item == nil {
		return nil, fmt.Errorf("plugin: plugin and item are required")
	}
	cleaned, err := p.Form().Clean(values)
	if err != nil {
		return nil, err
	}

	config, untangled := entangle.Entangle(p.Form(), cleaned)
	item.UIItem = p.Name()
	item.Config = entangle.Merge(item.Config, config)
	if tag, ok := untangled["tag_type"].(string); ok && tag != "" {
		item.TagType = tag
	}

	saver, ok := p.(Saver)
	if !ok {
		return nil, nil
	}
	created, err := saver.AfterSave(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("plugin: %s after save: %w", p.Name(), err)
	}
	for _, child := range created {
		child.Position = len(item.Children)
		item.Children = append(item.Children, child)
	}
	return created, nil
}
