// Package device describes the ordered breakpoint scale used by the
// mobile-first utility classes. Every breakpoint-scoped class in the module
// (display toggles, column widths, row columns) derives its infix from here.
package device

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Breakpoint is a named screen-size threshold.
type Breakpoint struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Choice is a value/label pair suitable for select and multi-select fields.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Scale is an ordered set of breakpoints, smallest first. The zero value is
// an empty scale; use NewScale or DefaultScale to build one.
type Scale struct {
	points []Breakpoint
	index  map[string]int
}

// ErrEmptyScale is returned when a scale is built without breakpoints.
var ErrEmptyScale = errors.New("device: scale requires at least one breakpoint")

// namePattern keeps breakpoint names usable inside a single class token.
var namePattern = regexp.MustCompile(`^[a-z0-9]+$`)

// NewScale validates and freezes the supplied breakpoints.
func NewScale(points ...Breakpoint) (Scale, error) {
	if len(points) == 0 {
		return Scale{}, ErrEmptyScale
	}
	scale := Scale{
		points: make([]Breakpoint, 0, len(points)),
		index:  make(map[string]int, len(points)),
	}
	for idx, point := range points {
		name := strings.TrimSpace(point.Name)
		if name == "" {
			return Scale{}, fmt.Errorf("device: breakpoint %d has an empty name", idx)
		}
		if !namePattern.MatchString(name) {
			return Scale{}, fmt.Errorf("device: breakpoint name %q must be lowercase letters and digits", name)
		}
		if _, exists := scale.index[name]; exists {
			return Scale{}, fmt.Errorf("device: duplicate breakpoint %q", name)
		}
		point.Name = name
		if strings.TrimSpace(point.Label) == "" {
			point.Label = name
		}
		scale.index[name] = len(scale.points)
		scale.points = append(scale.points, point)
	}
	return scale, nil
}

// MustScale panics when NewScale fails. Useful for package-level tables.
func MustScale(points ...Breakpoint) Scale {
	scale, err := NewScale(points...)
	if err != nil {
		panic(err)
	}
	return scale
}

var defaultBreakpoints = []Breakpoint{
	{Name: "xs", Label: "Extra small", Icon: "phone"},
	{Name: "sm", Label: "Small", Icon: "phone-landscape"},
	{Name: "md", Label: "Medium", Icon: "tablet"},
	{Name: "lg", Label: "Large", Icon: "laptop"},
	{Name: "xl", Label: "Extra large", Icon: "display"},
	{Name: "xxl", Label: "Extra extra large", Icon: "tv"},
}

// DefaultBreakpoints returns a copy of the Bootstrap 5 breakpoint table.
func DefaultBreakpoints() []Breakpoint {
	return append([]Breakpoint(nil), defaultBreakpoints...)
}

// DefaultScale returns the Bootstrap 5 scale: xs, sm, md, lg, xl, xxl.
func DefaultScale() Scale {
	return MustScale(defaultBreakpoints...)
}

// Len reports the number of breakpoints.
func (s Scale) Len() int {
	return len(s.points)
}

// Breakpoints returns a copy of the ordered breakpoints.
func (s Scale) Breakpoints() []Breakpoint {
	return append([]Breakpoint(nil), s.points...)
}

// Names returns breakpoint names in canonical order.
func (s Scale) Names() []string {
	names := make([]string, len(s.points))
	for i, point := range s.points {
		names[i] = point.Name
	}
	return names
}

// Smallest returns the first breakpoint name, or "" for an empty scale.
func (s Scale) Smallest() string {
	if len(s.points) == 0 {
		return ""
	}
	return s.points[0].Name
}

// Index returns the position of name in the scale, or -1.
func (s Scale) Index(name string) int {
	if idx, ok := s.index[name]; ok {
		return idx
	}
	return -1
}

// Contains reports whether name is part of the scale.
func (s Scale) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Lookup returns the breakpoint registered under name.
func (s Scale) Lookup(name string) (Breakpoint, bool) {
	idx, ok := s.index[name]
	if !ok {
		return Breakpoint{}, false
	}
	return s.points[idx], true
}

// Infix returns the class infix for a breakpoint: "" for the smallest one and
// "-<name>" for every other, so "col"+Infix("md")+"-6" yields "col-md-6".
func (s Scale) Infix(name string) string {
	if name == s.Smallest() {
		return ""
	}
	return "-" + name
}

// Choices returns value/label pairs in canonical order.
func (s Scale) Choices() []Choice {
	out := make([]Choice, len(s.points))
	for i, point := range s.points {
		out[i] = Choice{Value: point.Name, Label: point.Label}
	}
	return out
}
