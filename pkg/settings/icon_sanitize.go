package settings

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// device icons are small single-colour glyphs; anything beyond basic shapes
// is dropped.
var iconShapes = []string{"path", "circle", "rect", "line", "polyline", "polygon"}

func sanitizeIconMarkup(raw string) string {
	iconPolicyOnce.Do(func() {
		p := bluemonday.StrictPolicy()
		p.AllowElements(append([]string{"svg", "g", "title"}, iconShapes...)...)
		p.AllowAttrs("xmlns", "viewBox", "width", "height", "fill", "class", "aria-hidden", "role").OnElements("svg")
		p.AllowAttrs("fill", "transform").OnElements("g")
		p.AllowAttrs(
			"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2", "rx", "ry",
			"width", "height", "points", "fill", "stroke", "stroke-width",
		).OnElements(iconShapes...)
		iconPolicy = p
	})
	return strings.TrimSpace(iconPolicy.Sanitize(raw))
}
