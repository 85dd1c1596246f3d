package render

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl templates/plugins/*.tmpl
var embeddedTemplates embed.FS

// FormTemplate is the template used by RenderForm.
const FormTemplate = "templates/form.tmpl"

// TemplatesFS exposes the embedded template bundle so callers can layer their
// own templates over it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// PluginTemplatePath maps a plugin template name to its path in the bundle.
func PluginTemplatePath(name string) string {
	return "templates/plugins/" + name + ".tmpl"
}
