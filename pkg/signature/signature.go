package signature

import "github.com/wellboundhc/go-siggen/pkg/format"

// Signature is the fully-resolved input a renderer consumes: employee
// fields, the resolved image source, and the format bundle supplying
// every visual decision. Renderers treat it as read-only.
type Signature struct {
	Fields Fields
	Image  ImageSource
	Format format.Bundle
}

// New resolves fields against their defaults and sanitizes them,
// producing a render-ready signature.
func New(fields Fields, image ImageSource, bundle format.Bundle) Signature {
	return Signature{
		Fields: ResolveFields(SanitizeFields(fields)),
		Image:  image,
		Format: bundle,
	}
}
