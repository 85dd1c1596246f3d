package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/xlab/treeprint"

	"github.com/goliatone/go-frontend/pkg/grid"
	"github.com/goliatone/go-frontend/pkg/plugin"
	"github.com/goliatone/go-frontend/pkg/render"
	"github.com/goliatone/go-frontend/pkg/responsive"
	"github.com/goliatone/go-frontend/pkg/settings"
)

func (a *App) render(ctx context.Context, args []string) error {
	fs := a.flagSet("render")
	itemPath := fs.String("item", "", "item tree JSON file, - for stdin")
	settingsPath := fs.String("settings", "", "settings file (YAML or JSON)")
	themePath := fs.String("theme", "", "theme manifest JSON file")
	variant := fs.String("variant", "", "theme variant")
	templatesDir := fs.String("templates", "", "directory overriding the bundled templates")
	output := fs.String("output", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	item, err := a.readItem(*itemPath)
	if err != nil {
		return err
	}
	reg, err := registry(*settingsPath)
	if err != nil {
		return err
	}

	var options []render.Option
	if *templatesDir != "" {
		options = append(options, render.WithTemplatesDir(*templatesDir))
	}
	r, err := render.New(reg, options...)
	if err != nil {
		return err
	}

	opts := render.RenderOptions{}
	if *themePath != "" {
		manifest, err := loadManifest(*themePath)
		if err != nil {
			return err
		}
		opts.Theme, err = render.ResolveTheme(render.NewStaticThemes(manifest), manifest.Name, *variant)
		if err != nil {
			return err
		}
	}

	html, err := r.RenderItem(ctx, item, opts)
	if err != nil {
		return err
	}
	return a.write(*output, append(html, '\n'))
}

func (a *App) tree(ctx context.Context, args []string) error {
	fs := a.flagSet("tree")
	itemPath := fs.String("item", "", "item tree JSON file, - for stdin")
	settingsPath := fs.String("settings", "", "settings file (YAML or JSON)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	item, err := a.readItem(*itemPath)
	if err != nil {
		return err
	}
	reg, err := registry(*settingsPath)
	if err != nil {
		return err
	}

	root := treeprint.New()
	if err := addTreeNode(ctx, reg, root, item); err != nil {
		return err
	}
	_, err = fmt.Fprint(a.Stdout, root.String())
	return err
}

// addTreeNode renders a clone of item to learn its classes and adds it below
// parent.
func addTreeNode(ctx context.Context, reg *plugin.Registry, parent treeprint.Tree, item *plugin.Item) error {
	p, err := reg.Get(item.UIItem)
	if err != nil {
		return err
	}
	clone := item.Clone()
	clone.Children = nil
	if _, err := p.Render(ctx, clone, plugin.Data{}); err != nil {
		return err
	}

	label := fmt.Sprintf("%s <%s>", item.UIItem, clone.Tag())
	if item.ID != "" {
		label += " #" + item.ID
	}
	if classes := clone.Classes(); len(classes) > 0 {
		label += " ." + strings.Join(classes, " .")
	}
	if visible, ok := item.Config[responsive.FieldName]; ok && visible != nil {
		label += fmt.Sprintf(" (visible: %s)", strings.Join(item.Config.Strings(responsive.FieldName), ","))
	}

	if len(item.Children) == 0 {
		parent.AddNode(label)
		return nil
	}
	branch := parent.AddBranch(label)
	for _, child := range item.Children {
		if err := addTreeNode(ctx, reg, branch, child); err != nil {
			return err
		}
	}
	return nil
}

func registry(settingsPath string) (*plugin.Registry, error) {
	s, err := loadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	return registryFrom(s)
}

func registryFrom(s settings.Settings) (*plugin.Registry, error) {
	options, err := s.GridOptions()
	if err != nil {
		return nil, err
	}
	reg := plugin.NewRegistry()
	if err := grid.Register(reg, options...); err != nil {
		return nil, err
	}
	return reg, nil
}

func loadManifest(path string) (*theme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	var manifest theme.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("decode theme %s: %w", path, err)
	}
	return &manifest, nil
}
