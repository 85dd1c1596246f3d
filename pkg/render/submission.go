package render

import (
	"fmt"
	"sort"
	"strings"
)

// HiddenField is a hidden input emitted before the visible form fields.
type HiddenField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Hidden builds a hidden input, formatting value with fmt.
func Hidden(name string, value any) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: fmt.Sprint(value)}
}

// CSRFToken carries a CSRF token under the input name the backend expects,
// e.g. "csrfmiddlewaretoken" or "_csrf".
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// sortedHidden drops unnamed fields, keeps the last value per name and
// orders the result by name.
func sortedHidden(fields []HiddenField) []HiddenField {
	var out []HiddenField
	for _, field := range fields {
		field.Name = strings.TrimSpace(field.Name)
		if field.Name == "" {
			continue
		}
		i := sort.Search(len(out), func(i int) bool { return out[i].Name >= field.Name })
		switch {
		case i < len(out) && out[i].Name == field.Name:
			out[i].Value = field.Value
		default:
			out = append(out, HiddenField{})
			copy(out[i+1:], out[i:])
			out[i] = field
		}
	}
	return out
}
