package template

import "io"

// Filter transforms a template value. param is nil when the filter is used
// without an argument.
type Filter func(input, param any) (any, error)

// TemplateRenderer executes named templates or inline template content. The
// rendered output is returned and also copied to every writer in out.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
}

// FilterRegistrar is implemented by engines that accept custom filters.
type FilterRegistrar interface {
	RegisterFilter(name string, fn Filter) error
}
