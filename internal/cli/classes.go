package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/goliatone/go-frontend/pkg/prompt"
	"github.com/goliatone/go-frontend/pkg/responsive"
)

func (a *App) classes(ctx context.Context, args []string) error {
	fs := a.flagSet("classes")
	visible := fs.String("visible", "", "comma separated breakpoints the element is visible on")
	token := fs.String("token", responsive.DefaultDisplayToken, "display mode used for visible breakpoints")
	item := fs.String("item", "", "UI item type; picks its display token (e.g. GridRow)")
	settingsPath := fs.String("settings", "", "settings file (YAML or JSON)")
	interactive := fs.Bool("interactive", false, "pick breakpoints interactively")
	explain := fs.Bool("explain", false, "print the resulting visibility per breakpoint")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	s, err := loadSettings(*settingsPath)
	if err != nil {
		return err
	}
	scale, err := s.Scale()
	if err != nil {
		return err
	}

	selected := splitList(*visible)
	if *interactive {
		var initial []string
		if *visible != "" {
			initial = selected
		}
		selected, err = prompt.Breakpoints(ctx, a.driver(), scale, initial)
		if err != nil {
			return err
		}
	}

	mode := *token
	if *item != "" {
		mode = responsive.DisplayToken(*item, s.DisplayTokens)
	}

	classes := responsive.DisplayClasses(scale, selected, mode)
	fmt.Fprintln(a.Stdout, strings.Join(classes, " "))

	if *explain {
		state := responsive.Cascade(scale, classes, mode)
		w := tabwriter.NewWriter(a.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "BREAKPOINT\tLABEL\tVISIBLE")
		for _, bp := range scale.Breakpoints() {
			fmt.Fprintf(w, "%s\t%s\t%t\n", bp.Name, bp.Label, state[bp.Name])
		}
		return w.Flush()
	}
	return nil
}
