// Package responsive computes the display utility classes that reproduce a
// per-device visibility selection in a mobile-first cascade, and wraps
// plugins so every item can be shown or hidden per breakpoint.
package responsive

import (
	"strings"

	"github.com/goliatone/go-frontend/pkg/device"
)

const (
	// DefaultDisplayToken is the display mode used when an element is shown.
	DefaultDisplayToken = "block"
	// HiddenToken is the display mode used when an element is hidden.
	HiddenToken = "none"
)

// DisplayClasses returns the minimal ordered list of display classes that
// makes an element visible exactly on the breakpoints in visibleOn.
//
// The element starts out visible before the smallest breakpoint is
// considered, so a selection that omits the smallest breakpoint always begins
// with a hide class. A class is emitted only where visibility changes. Names
// in visibleOn that are not part of scale are ignored.
func DisplayClasses(scale device.Scale, visibleOn []string, token string) []string {
	token = strings.TrimSpace(token)
	if token == "" {
		token = DefaultDisplayToken
	}
	selected := make(map[string]struct{}, len(visibleOn))
	for _, name := range visibleOn {
		selected[name] = struct{}{}
	}

	var classes []string
	visible := true
	for _, name := range scale.Names() {
		_, show := selected[name]
		if show == visible {
			continue
		}
		visible = show
		mode := HiddenToken
		if visible {
			mode = token
		}
		classes = append(classes, "d"+scale.Infix(name)+"-"+mode)
	}
	return classes
}

// Cascade applies classes left to right the way the CSS framework does and
// reports the resulting visibility per breakpoint. A class scoped to a
// breakpoint holds for that breakpoint and every larger one until overridden.
// Classes that are not display classes for scale are ignored.
func Cascade(scale device.Scale, classes []string, token string) map[string]bool {
	token = strings.TrimSpace(token)
	if token == "" {
		token = DefaultDisplayToken
	}
	// Per-breakpoint override, indexed by scale position.
	overrides := make([]*bool, scale.Len())
	for _, class := range classes {
		idx, visible, ok := parseDisplayClass(scale, class, token)
		if !ok {
			continue
		}
		v := visible
		overrides[idx] = &v
	}

	out := make(map[string]bool, scale.Len())
	visible := true
	for idx, name := range scale.Names() {
		if overrides[idx] != nil {
			visible = *overrides[idx]
		}
		out[name] = visible
	}
	return out
}

func parseDisplayClass(scale device.Scale, class, token string) (int, bool, bool) {
	rest, ok := strings.CutPrefix(class, "d-")
	if !ok {
		return 0, false, false
	}
	breakpoint := scale.Smallest()
	mode := rest
	if name, m, found := strings.Cut(rest, "-"); found && scale.Contains(name) && name != scale.Smallest() {
		breakpoint, mode = name, m
	}
	switch mode {
	case HiddenToken:
		return scale.Index(breakpoint), false, true
	case token:
		return scale.Index(breakpoint), true, true
	default:
		return 0, false, false
	}
}
