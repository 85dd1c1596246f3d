package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-frontend/pkg/form"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetText            = "text"
	WidgetNumber          = "number"
	WidgetToggle          = "toggle"
	WidgetSelect          = "select"
	WidgetCheckboxes      = "checkbox-multiple"
	WidgetIconMultiselect = "icon-multiselect"
	WidgetAttributes      = "attributes"
	WidgetImage           = "image"
	WidgetRange           = "range"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field form.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
}

// Registry picks a widget per field: the field's own Widget first, then the
// highest-priority matching rule. Rules with equal priority are tried in the
// order they were registered.
type Registry struct {
	mu    sync.RWMutex
	rules []rule // kept sorted by descending priority
}

// NewRegistry returns a registry preloaded with the built-in rules.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a rule. Blank names and nil matchers are ignored.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	name = strings.TrimSpace(name)
	if r == nil || matcher == nil || name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	at := sort.Search(len(r.rules), func(i int) bool {
		return r.rules[i].priority < priority
	})
	r.rules = append(r.rules, rule{})
	copy(r.rules[at+1:], r.rules[at:])
	r.rules[at] = rule{name: name, priority: priority, match: matcher}
}

// Resolve returns the widget for field and whether one was found.
func (r *Registry) Resolve(field form.Field) (string, bool) {
	if widget := strings.TrimSpace(field.Widget); widget != "" {
		return widget, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, candidate := range r.rules {
		if candidate.match(field) {
			return candidate.name, true
		}
	}
	return "", false
}

// Decorate returns a copy of the form's fields with Widget filled in where a
// widget resolves.
func (r *Registry) Decorate(f *form.Form) []form.Field {
	if f == nil {
		return nil
	}
	out := make([]form.Field, len(f.Fields))
	for i, field := range f.Fields {
		if widget, ok := r.Resolve(field); ok {
			field.Widget = widget
		}
		out[i] = field
	}
	return out
}

func kindIs(kind form.Kind) Matcher {
	return func(field form.Field) bool {
		return field.Kind == kind
	}
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetToggle, 90, kindIs(form.KindBoolean))
	r.Register(WidgetCheckboxes, 80, kindIs(form.KindMultiChoice))
	r.Register(WidgetSelect, 70, func(field form.Field) bool {
		return field.Kind == form.KindChoice && len(field.Choices) > 0
	})
	r.Register(WidgetNumber, 60, kindIs(form.KindInteger))
	r.Register(WidgetAttributes, 50, kindIs(form.KindAttributes))
	r.Register(WidgetImage, 40, kindIs(form.KindImage))
	r.Register(WidgetText, 0, func(form.Field) bool { return true })
}
