package render

import (
	"context"

	"github.com/wellboundhc/go-siggen/pkg/signature"
)

// Renderer converts a resolved Signature into a byte representation
// (HTML markup, plain text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, sig signature.Signature, options RenderOptions) ([]byte, error)
}
