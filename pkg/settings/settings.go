// Package settings loads the site-wide grid configuration: the breakpoint
// table, display tokens, colour styles and grid size.
package settings

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-frontend/pkg/device"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/grid"
	"github.com/goliatone/go-frontend/pkg/responsive"
)

// Device is one breakpoint entry. Icon is either a CSS class or inline SVG
// markup; markup is sanitised on load.
type Device struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// ColorStyle is a contextual colour offered for container backgrounds.
type ColorStyle struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Settings is the resolved configuration. Zero values from a file keep the
// defaults; displayTokens entries are merged over the defaults.
type Settings struct {
	Devices       []Device          `json:"devices" yaml:"devices"`
	DisplayTokens map[string]string `json:"displayTokens" yaml:"displayTokens"`
	ColorStyles   []ColorStyle      `json:"colorStyles" yaml:"colorStyles"`
	GridSize      int               `json:"gridSize" yaml:"gridSize"`
}

// Default returns the Bootstrap 5 configuration.
func Default() Settings {
	points := device.DefaultBreakpoints()
	devices := make([]Device, len(points))
	for i, bp := range points {
		devices[i] = Device{Name: bp.Name, Label: bp.Label, Icon: bp.Icon}
	}
	tokens := make(map[string]string, len(responsive.DefaultDisplayTokens))
	for k, v := range responsive.DefaultDisplayTokens {
		tokens[k] = v
	}
	colors := make([]ColorStyle, len(grid.ColorStyleChoices))
	for i, c := range grid.ColorStyleChoices {
		colors[i] = ColorStyle{Value: c.Value, Label: c.Label}
	}
	return Settings{
		Devices:       devices,
		DisplayTokens: tokens,
		ColorStyles:   colors,
		GridSize:      grid.Size,
	}
}

// Scale builds the breakpoint scale from Devices.
func (s Settings) Scale() (device.Scale, error) {
	scale, err := device.NewScale(s.breakpoints()...)
	if err != nil {
		return device.Scale{}, fmt.Errorf("settings: devices: %w", err)
	}
	return scale, nil
}

func (s Settings) breakpoints() []device.Breakpoint {
	points := make([]device.Breakpoint, len(s.Devices))
	for i, d := range s.Devices {
		points[i] = device.Breakpoint{Name: d.Name, Label: d.Label, Icon: d.Icon}
	}
	return points
}

// GridOptions translates the settings into grid plugin options.
func (s Settings) GridOptions() ([]grid.Option, error) {
	scale, err := s.Scale()
	if err != nil {
		return nil, err
	}
	colors := make([]form.Choice, len(s.ColorStyles))
	for i, c := range s.ColorStyles {
		colors[i] = form.Choice{Value: c.Value, Label: c.Label}
	}
	return []grid.Option{
		grid.WithScale(scale),
		grid.WithColorStyles(colors),
		grid.WithGridSize(s.GridSize),
		grid.WithDisplayTokens(s.DisplayTokens),
	}, nil
}

func (s Settings) validate(source string) error {
	if _, err := device.NewScale(s.breakpoints()...); err != nil {
		return fmt.Errorf("settings: %s: devices: %w", source, err)
	}
	if s.GridSize < 1 {
		return fmt.Errorf("settings: %s: gridSize must be positive, got %d", source, s.GridSize)
	}
	for idx, c := range s.ColorStyles {
		if strings.TrimSpace(c.Value) == "" {
			return fmt.Errorf("settings: %s: colorStyles entry %d has an empty value", source, idx)
		}
	}
	for item, token := range s.DisplayTokens {
		if strings.TrimSpace(item) == "" || strings.ContainsAny(token, " \t") {
			return fmt.Errorf("settings: %s: invalid display token %q for %q", source, token, item)
		}
	}
	return nil
}
