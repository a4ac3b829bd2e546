package email

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that
// want the built-in signature markup out of the box.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
