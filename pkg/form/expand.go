package form

import (
	"strings"

	"github.com/goliatone/go-frontend/pkg/device"
)

// DeviceField is a template for a field repeated once per breakpoint.
// NameFormat must contain "{device}"; LabelFormat may contain "{infix}",
// which expands to "" on the smallest breakpoint and "-<name>" elsewhere.
type DeviceField struct {
	NameFormat  string
	LabelFormat string
	Kind        Kind
	Min         *int
	Max         *int
	HelpText    string
	Widget      string
}

// Expand instantiates the templates for every breakpoint of scale. Fields are
// grouped by breakpoint (all templates for xs, then sm, ...).
func Expand(scale device.Scale, templates ...DeviceField) []Field {
	out := make([]Field, 0, scale.Len()*len(templates))
	for _, name := range scale.Names() {
		infix := scale.Infix(name)
		for _, tpl := range templates {
			out = append(out, Field{
				Name:     DeviceFieldName(tpl.NameFormat, name),
				Label:    strings.ReplaceAll(tpl.LabelFormat, "{infix}", infix),
				Kind:     tpl.Kind,
				Min:      tpl.Min,
				Max:      tpl.Max,
				HelpText: tpl.HelpText,
				Widget:   tpl.Widget,
			})
		}
	}
	return out
}

// DeviceFieldName resolves a NameFormat for one breakpoint.
func DeviceFieldName(format, breakpoint string) string {
	return strings.ReplaceAll(format, "{device}", breakpoint)
}
