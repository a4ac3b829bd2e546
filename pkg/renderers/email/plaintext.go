package email

import (
	"context"
	"strings"

	"github.com/wellboundhc/go-siggen/pkg/render"
	"github.com/wellboundhc/go-siggen/pkg/signature"
)

// TextRenderer produces the plain-text fallback that accompanies the
// HTML markup on the clipboard, for composers that strip rich content.
type TextRenderer struct{}

// NewText constructs the plain-text renderer.
func NewText() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Name() string {
	return "plaintext"
}

func (r *TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *TextRenderer) Render(_ context.Context, sig signature.Signature, _ render.RenderOptions) ([]byte, error) {
	fields := signature.ResolveFields(sig.Fields)

	var b strings.Builder
	b.WriteString(fields.Name + "\n")
	b.WriteString(fields.Title + "\n")
	b.WriteString("Phone | " + fields.Phone + " Ext. " + fields.Extension + "\n")
	b.WriteString("Fax | " + fields.Fax + "\n")
	b.WriteString("Email | " + fields.Email + "\n")
	b.WriteString(fields.Address + "\n")
	b.WriteString(sig.Format.Logo.Alt + " - " + sig.Format.Logo.Href + "\n")
	return []byte(b.String()), nil
}
