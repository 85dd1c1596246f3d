package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-frontend/pkg/schema"
)

func (a *App) schema(_ context.Context, args []string) error {
	fs := a.flagSet("schema")
	settingsPath := fs.String("settings", "", "settings file (YAML or JSON)")
	name := fs.String("plugin", "", "only print this plugin's schema")
	output := fs.String("output", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	reg, err := registry(*settingsPath)
	if err != nil {
		return err
	}

	var payload any = schema.Components(reg)
	if *name != "" {
		p, err := reg.Get(*name)
		if err != nil {
			return err
		}
		payload = schema.FromForm(p.Form())
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	return a.write(*output, append(data, '\n'))
}
