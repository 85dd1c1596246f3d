package render

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

type themeContext struct {
	Name         string            `json:"name,omitempty"`
	Variant      string            `json:"variant,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVars      map[string]string `json:"css_vars,omitempty"`
	CSSVarsStyle string            `json:"css_vars_style,omitempty"`
}

func buildThemeContext(cfg *theme.RendererConfig) themeContext {
	if cfg == nil {
		return themeContext{}
	}
	ctx := themeContext{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Tokens:  copyStringMap(cfg.Tokens),
		CSSVars: copyStringMap(cfg.CSSVars),
	}
	ctx.CSSVarsStyle = cssVarsStyle(ctx.CSSVars)
	return ctx
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		name := strings.TrimSpace(key)
		value := strings.TrimSpace(vars[key])
		if name == "" || value == "" {
			continue
		}
		parts = append(parts, name+": "+value)
	}
	return strings.Join(parts, "; ")
}

// ThemeConfig flattens a theme selection into renderer config: manifest
// tokens and templates with the selected variant's entries layered on top.
// Every token is also exposed as a CSS variable ("brand" -> "--brand").
func ThemeConfig(sel *theme.Selection) *theme.RendererConfig {
	if sel == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:   sel.Theme,
		Variant: sel.Variant,
	}
	manifest := sel.Manifest
	if manifest == nil {
		return cfg
	}

	tokens := copyStringMap(manifest.Tokens)
	partials := copyStringMap(manifest.Templates)
	assets := copyStringMap(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix
	if variant, ok := manifest.Variants[sel.Variant]; ok {
		tokens = mergeStringMaps(tokens, variant.Tokens)
		partials = mergeStringMaps(partials, variant.Templates)
		assets = mergeStringMaps(assets, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
	}

	cfg.Tokens = tokens
	cfg.Partials = partials
	if len(tokens) > 0 {
		cfg.CSSVars = make(map[string]string, len(tokens))
		for key, value := range tokens {
			cfg.CSSVars["--"+strings.ReplaceAll(key, ".", "-")] = value
		}
	}
	cfg.AssetURL = func(key string) string {
		file := assets[key]
		if file == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
	}
	return cfg
}

// ResolveTheme selects a theme and variant and returns its renderer config.
// A nil selector yields a nil config so callers render unthemed.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, nil
	}
	sel, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q: %w", name, err)
	}
	return ThemeConfig(sel), nil
}

// StaticThemes selects among a fixed set of manifests. An empty name picks
// the first manifest.
type StaticThemes struct {
	manifests []*theme.Manifest
}

var _ theme.ThemeSelector = (*StaticThemes)(nil)

// NewStaticThemes returns a selector over manifests.
func NewStaticThemes(manifests ...*theme.Manifest) *StaticThemes {
	out := &StaticThemes{}
	for _, m := range manifests {
		if m != nil {
			out.manifests = append(out.manifests, m)
		}
	}
	return out
}

func (s *StaticThemes) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	for _, m := range s.manifests {
		if name == "" || m.Name == name {
			if variant != "" {
				if _, ok := m.Variants[variant]; !ok {
					return nil, fmt.Errorf("theme %q has no variant %q", m.Name, variant)
				}
			}
			return &theme.Selection{Theme: m.Name, Variant: variant, Manifest: m}, nil
		}
	}
	return nil, fmt.Errorf("theme %q not found", name)
}

func mergeStringMaps(base, extra map[string]string) map[string]string {
	if len(extra) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(extra))
	}
	for key, value := range extra {
		base[key] = value
	}
	return base
}
