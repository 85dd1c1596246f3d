package grid

import (
	"github.com/goliatone/go-frontend/pkg/device"
	"github.com/goliatone/go-frontend/pkg/form"
)

// Option configures the grid plugins.
type Option func(*config)

type config struct {
	scale    device.Scale
	colors   []form.Choice
	size     int
	images   ImageResolver
	idSource func() string
	tokens   map[string]string
}

func newConfig(options ...Option) config {
	cfg := config{
		scale:  device.DefaultScale(),
		colors: ColorStyleChoices,
		size:   Size,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithScale overrides the breakpoint scale used to expand per-device fields.
func WithScale(scale device.Scale) Option {
	return func(cfg *config) {
		if scale.Len() > 0 {
			cfg.scale = scale
		}
	}
}

// WithColorStyles overrides the contextual colour choices.
func WithColorStyles(choices []form.Choice) Option {
	return func(cfg *config) {
		if len(choices) > 0 {
			cfg.colors = append([]form.Choice(nil), choices...)
		}
	}
}

// WithGridSize overrides the number of grid columns.
func WithGridSize(size int) Option {
	return func(cfg *config) {
		if size > 0 {
			cfg.size = size
		}
	}
}

// WithImageResolver supplies container background image lookups.
func WithImageResolver(resolver ImageResolver) Option {
	return func(cfg *config) {
		cfg.images = resolver
	}
}

// WithIDSource overrides how ids of generated columns are minted.
func WithIDSource(fn func() string) Option {
	return func(cfg *config) {
		cfg.idSource = fn
	}
}

// WithDisplayTokens overrides the display mode used by the visibility
// classes per UI item.
func WithDisplayTokens(tokens map[string]string) Option {
	return func(cfg *config) {
		cfg.tokens = tokens
	}
}
