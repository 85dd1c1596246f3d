// Package entangle maps cleaned form values into the generic JSON
// configuration store plugins persist, and back into initial form values.
package entangle

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Config is the JSON-like key/value store attached to every plugin item.
type Config map[string]any

// Has reports whether key is present, even when its value is nil or empty.
func (c Config) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// String returns the value under key as a trimmed string.
func (c Config) String(key string) string {
	switch v := c[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// Int returns the integer stored under key. JSON numbers decode as float64,
// so those are accepted alongside native ints and numeric strings.
func (c Config) Int(key string) (int, bool) {
	switch v := c[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	default:
		return 0, false
	}
}

// Bool returns the boolean stored under key.
func (c Config) Bool(key string) bool {
	switch v := c[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	default:
		return false
	}
}

// Strings returns the list stored under key, accepting []string and the
// []any shape produced by JSON decoding.
func (c Config) Strings(key string) []string {
	switch v := c[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Map returns the string map stored under key.
func (c Config) Map(key string) map[string]string {
	switch v := c[key].(type) {
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, val := range v {
			out[k] = val
		}
		return out
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, val := range v {
			if val == nil {
				out[k] = ""
				continue
			}
			out[k] = fmt.Sprint(val)
		}
		return out
	default:
		return nil
	}
}

// Clone returns a copy whose top-level keys can be modified independently.
// Slice and map values are copied one level deep.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	out := make(Config, len(c))
	for key, value := range c {
		switch v := value.(type) {
		case []string:
			out[key] = append([]string(nil), v...)
		case []any:
			out[key] = append([]any(nil), v...)
		case map[string]string:
			cp := make(map[string]string, len(v))
			for k, val := range v {
				cp[k] = val
			}
			out[key] = cp
		case map[string]any:
			cp := make(map[string]any, len(v))
			for k, val := range v {
				cp[k] = val
			}
			out[key] = cp
		default:
			out[key] = value
		}
	}
	return out
}

// Normalize round-trips the config through JSON so values take the shapes a
// persisted record would have (float64 numbers, []any lists).
func (c Config) Normalize() (Config, error) {
	if c == nil {
		return Config{}, nil
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("entangle: marshal config: %w", err)
	}
	out := Config{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("entangle: unmarshal config: %w", err)
	}
	return out, nil
}
