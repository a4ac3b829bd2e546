package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data renderers can use without
// mutating the signature itself.
type RenderOptions struct {
	// Theme carries the resolved format tokens, derived CSS custom
	// properties, and asset resolver for the active bundle. When nil,
	// renderers derive their own config from the signature's bundle.
	Theme *theme.RendererConfig
}
