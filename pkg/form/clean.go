package form

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Errors maps field names to validation messages. The "" key holds
// form-level messages.
type Errors map[string][]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "form: no errors"
	}
	keys := make([]string, 0, len(e))
	for key := range e {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		label := key
		if label == "" {
			label = "form"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", label, strings.Join(e[key], "; ")))
	}
	return "form: invalid input (" + strings.Join(parts, ", ") + ")"
}

// Add records a message for field, skipping blanks and duplicates.
func (e Errors) Add(field, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	for _, existing := range e[field] {
		if existing == message {
			return
		}
	}
	e[field] = append(e[field], message)
}

var attributeNamePattern = regexp.MustCompile(`^[a-zA-Z_:][-a-zA-Z0-9_:.]*$`)

// ValidAttributeName reports whether name is usable as an HTML attribute.
func ValidAttributeName(name string) bool {
	if !attributeNamePattern.MatchString(name) {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(name), "on")
}

// Clean coerces submitted values into typed values keyed by field name.
// Returned types: string (text/choice/image), []string (multichoice), int or
// nil (integer), bool (boolean), map[string]string (attributes). When any
// field fails validation the cleaned map is nil and the error is Errors.
func (f *Form) Clean(values url.Values) (map[string]any, error) {
	cleaned := make(map[string]any, len(f.Fields))
	errs := Errors{}
	for _, field := range f.Fields {
		value, msg := cleanField(field, values)
		if msg != "" {
			errs.Add(field.Name, msg)
			continue
		}
		cleaned[field.Name] = value
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return cleaned, nil
}

func cleanField(field Field, values url.Values) (any, string) {
	raw := strings.TrimSpace(values.Get(field.Name))
	switch field.Kind {
	case KindBoolean:
		b := parseBool(raw)
		if field.Required && !b {
			return nil, "This field is required."
		}
		return b, ""
	case KindMultiChoice:
		return cleanMultiChoice(field, values[field.Name])
	case KindInteger:
		return cleanInteger(field, raw)
	case KindChoice:
		if raw == "" {
			if field.Required {
				return nil, "This field is required."
			}
			return "", ""
		}
		if len(field.Choices) > 0 && !field.HasChoice(raw) {
			return nil, fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", raw)
		}
		return raw, ""
	case KindAttributes:
		return cleanAttributes(field, raw)
	default:
		if raw == "" && field.Required {
			return nil, "This field is required."
		}
		return raw, ""
	}
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

func cleanMultiChoice(field Field, submitted []string) (any, string) {
	selected := make(map[string]struct{}, len(submitted))
	for _, value := range submitted {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if !field.HasChoice(value) {
			return nil, fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", value)
		}
		selected[value] = struct{}{}
	}
	if len(selected) == 0 && field.Required {
		return nil, "This field is required."
	}
	out := make([]string, 0, len(selected))
	for _, choice := range field.Choices {
		if _, ok := selected[choice.Value]; ok {
			out = append(out, choice.Value)
		}
	}
	return out, ""
}

func cleanInteger(field Field, raw string) (any, string) {
	if raw == "" {
		if field.Required {
			return nil, "This field is required."
		}
		return nil, ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, "Enter a whole number."
	}
	if field.Min != nil && n < *field.Min {
		return nil, fmt.Sprintf("Ensure this value is greater than or equal to %d.", *field.Min)
	}
	if field.Max != nil && n > *field.Max {
		return nil, fmt.Sprintf("Ensure this value is less than or equal to %d.", *field.Max)
	}
	return n, ""
}

func cleanAttributes(field Field, raw string) (any, string) {
	attrs := map[string]string{}
	if raw == "" {
		if field.Required {
			return nil, "This field is required."
		}
		return attrs, ""
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, "Enter a JSON object of attribute names and values."
	}
	for key, value := range decoded {
		name := strings.TrimSpace(key)
		if !ValidAttributeName(name) {
			return nil, fmt.Sprintf("%q is not a valid attribute name.", key)
		}
		switch v := value.(type) {
		case nil:
			attrs[name] = ""
		case string:
			attrs[name] = v
		case bool, float64:
			attrs[name] = fmt.Sprint(v)
		default:
			return nil, fmt.Sprintf("Attribute %q must be a scalar value.", name)
		}
	}
	return attrs, ""
}
