// Package siggen generates self-contained HTML email signatures for
// employee records: a format registry supplies per-brand styling, an
// image pipeline turns a selected photo into a circular preview and a
// bounded upload artifact, and renderers produce the HTML plus a
// plain-text clipboard fallback.
package siggen

import (
	"context"
	"fmt"

	"github.com/wellboundhc/go-siggen/pkg/format"
	"github.com/wellboundhc/go-siggen/pkg/render"
	"github.com/wellboundhc/go-siggen/pkg/renderers/email"
	"github.com/wellboundhc/go-siggen/pkg/signature"
)

// Clip holds both clipboard representations of a rendered signature.
// Email composers paste the HTML; plain-text surfaces fall back to
// Text.
type Clip struct {
	HTML []byte
	Text []byte
}

// Generator bundles a format registry with the HTML and plain-text
// renderers behind one entry point.
type Generator struct {
	formats   *format.Registry
	renderers *render.Registry
}

// Option customises a Generator.
type Option func(*Generator)

// WithFormats replaces the default format registry.
func WithFormats(formats *format.Registry) Option {
	return func(g *Generator) {
		if formats != nil {
			g.formats = formats
		}
	}
}

// New builds a Generator over the default formats and renderers.
func New(options ...Option) (*Generator, error) {
	htmlRenderer, err := email.New()
	if err != nil {
		return nil, fmt.Errorf("siggen: build renderer: %w", err)
	}

	renderers := render.NewRegistry()
	renderers.MustRegister(htmlRenderer)
	renderers.MustRegister(email.NewText())

	g := &Generator{
		formats:   format.NewDefaultRegistry(),
		renderers: renderers,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g, nil
}

// Formats exposes the generator's format registry.
func (g *Generator) Formats() *format.Registry {
	return g.formats
}

// Renderers exposes the underlying renderer registry.
func (g *Generator) Renderers() *render.Registry {
	return g.renderers
}

// Generate renders the signature for the given fields, image source,
// and format identifier. Unknown format identifiers fall back to the
// default bundle; blank fields fall back to their fixed placeholders.
func (g *Generator) Generate(ctx context.Context, fields signature.Fields, image signature.ImageSource, formatID string) (Clip, error) {
	sig := signature.New(fields, image, g.formats.Resolve(formatID))

	htmlRenderer, err := g.renderers.Get("email")
	if err != nil {
		return Clip{}, err
	}
	textRenderer, err := g.renderers.Get("plaintext")
	if err != nil {
		return Clip{}, err
	}

	html, err := htmlRenderer.Render(ctx, sig, render.RenderOptions{})
	if err != nil {
		return Clip{}, fmt.Errorf("siggen: render html: %w", err)
	}
	text, err := textRenderer.Render(ctx, sig, render.RenderOptions{})
	if err != nil {
		return Clip{}, fmt.Errorf("siggen: render text: %w", err)
	}

	return Clip{HTML: html, Text: text}, nil
}

// Generate is a convenience over a default Generator for one-shot
// renders.
func Generate(ctx context.Context, fields signature.Fields, image signature.ImageSource, formatID string) (Clip, error) {
	g, err := New()
	if err != nil {
		return Clip{}, err
	}
	return g.Generate(ctx, fields, image, formatID)
}
