package email

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"

	"github.com/wellboundhc/go-siggen/pkg/format"
	"github.com/wellboundhc/go-siggen/pkg/render"
	rendertemplate "github.com/wellboundhc/go-siggen/pkg/render/template"
	gotemplate "github.com/wellboundhc/go-siggen/pkg/render/template/gotemplate"
	"github.com/wellboundhc/go-siggen/pkg/signature"
)

// ImageSize is the rendered diameter of the profile image in pixels,
// matching the circular preview canvas produced by the image pipeline.
const ImageSize = 102

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer turns a Signature into self-contained HTML markup suitable
// for pasting into an email client: inline styles only, an MSO
// conditional block emitted unconditionally, no external stylesheets.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the email renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("email renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "email"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render is pure and synchronous: no side effects, no network access.
// Blank fields fall back to their literal defaults so incomplete input
// still renders.
func (r *Renderer) Render(_ context.Context, sig signature.Signature, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("email renderer: template renderer is nil")
	}

	cfg := options.Theme
	if cfg == nil {
		cfg = format.RendererConfig(sig.Format)
	}

	fields := signature.ResolveFields(sig.Fields)

	result, err := r.templates.RenderTemplate("templates/signature.tmpl", map[string]any{
		"fields":        fields,
		"fmt":           sig.Format,
		"tokens":        cfg.Tokens,
		"profile_image": profileImageHTML(sig.Image, fields.Name, sig.Format),
		"address":       signature.SuperscriptOrdinals(html.EscapeString(fields.Address)),
		"logo_src":      assetURL(cfg, "logo", sig.Format.Logo.Src),
		"icons":         footerIcons(cfg, sig.Format),
		"spacing":       sig.Format.Spacing(),
	})
	if err != nil {
		return nil, fmt.Errorf("email renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// profileImageHTML applies the image precedence chain: stored URL, then
// local preview (current entry only), then the "No Photo" placeholder.
func profileImageHTML(src signature.ImageSource, name string, bundle format.Bundle) string {
	alt := html.EscapeString(name)

	switch src.Kind() {
	case signature.SourceURL:
		return fmt.Sprintf(`<img src="%s" width="%d" height="%d" style="width:%dpx;height:%dpx;border-radius:50%%;border:2.25pt solid %s;object-fit:cover;display:block;" alt="%s">`,
			html.EscapeString(src.URL), ImageSize, ImageSize, ImageSize, ImageSize, bundle.BorderColor, alt)
	case signature.SourcePreview:
		// The preview bitmap already carries its ring; no border here.
		return fmt.Sprintf(`<img src="%s" width="%d" height="%d" style="width:%dpx;height:%dpx;display:block;" alt="%s">`,
			src.Preview, ImageSize, ImageSize, ImageSize, ImageSize, alt)
	default:
		return fmt.Sprintf(`<div style="width:96px;height:96px;border-radius:50%%;border:2.25pt solid %s;background:#f0f0f0;display:flex;align-items:center;justify-content:center;color:%s;font-size:10pt;">No Photo</div>`,
			bundle.BorderColor, bundle.TitleColor)
	}
}

func footerIcons(cfg *theme.RendererConfig, bundle format.Bundle) []format.SocialIcon {
	icons := make([]format.SocialIcon, len(bundle.SocialIcons))
	for i, icon := range bundle.SocialIcons {
		icon.Src = assetURL(cfg, fmt.Sprintf("social.%d", i), icon.Src)
		icons[i] = icon
	}
	return icons
}

func assetURL(cfg *theme.RendererConfig, key, fallback string) string {
	if cfg == nil || cfg.AssetURL == nil {
		return fallback
	}
	if resolved := cfg.AssetURL(key); resolved != "" {
		return resolved
	}
	return fallback
}
