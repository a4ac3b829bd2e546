package format

import (
	"sort"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Token keys exposed to templates. Colors, fonts, and sizes travel as
// a flat go-theme token map so the signature template stays decoupled
// from the Bundle struct shape.
const (
	TokenBorderColor  = "border_color"
	TokenNameFont     = "name_font"
	TokenNameSize     = "name_size"
	TokenNameColor    = "name_color"
	TokenTitleFont    = "title_font"
	TokenTitleSize    = "title_size"
	TokenTitleColor   = "title_color"
	TokenContactFont  = "contact_font"
	TokenContactSize  = "contact_size"
	TokenContactColor = "contact_color"
	TokenAddressFont  = "address_font"
	TokenAddressSize  = "address_size"
	TokenAddressColor = "address_color"
	TokenLineColor    = "line_color"
	TokenLineWeight   = "line_weight"
)

// Tokens flattens the bundle typography and palette into a token map.
func (b Bundle) Tokens() map[string]string {
	return map[string]string{
		TokenBorderColor:  b.BorderColor,
		TokenNameFont:     b.NameFont,
		TokenNameSize:     b.NameSize,
		TokenNameColor:    b.NameColor,
		TokenTitleFont:    b.TitleFont,
		TokenTitleSize:    b.TitleSize,
		TokenTitleColor:   b.TitleColor,
		TokenContactFont:  b.ContactFont,
		TokenContactSize:  b.ContactSize,
		TokenContactColor: b.ContactColor,
		TokenAddressFont:  b.AddressFont,
		TokenAddressSize:  b.AddressSize,
		TokenAddressColor: b.AddressColor,
		TokenLineColor:    b.LineColor,
		TokenLineWeight:   b.LineWeight,
	}
}

// Manifest projects the bundle into a go-theme manifest. Logo and
// social icon sources are published as theme assets keyed "logo" and
// "social.<n>".
func (b Bundle) Manifest() *theme.Manifest {
	files := map[string]string{
		"logo": b.Logo.Src,
	}
	for i, icon := range b.SocialIcons {
		files["social."+strconv.Itoa(i)] = icon.Src
	}

	return &theme.Manifest{
		Name:    b.ID,
		Version: "1.0.0",
		Tokens:  b.Tokens(),
		Assets: theme.Assets{
			Files: files,
		},
	}
}

// RendererConfig builds the go-theme renderer payload templates
// consume: resolved tokens, derived CSS custom properties, and an
// asset resolver over the manifest files.
func RendererConfig(b Bundle) *theme.RendererConfig {
	manifest := b.Manifest()

	cssVars := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		cssVars["--sig-"+strings.ReplaceAll(key, "_", "-")] = value
	}

	files := manifest.Assets.Files
	prefix := manifest.Assets.Prefix

	return &theme.RendererConfig{
		Theme:   b.ID,
		Tokens:  manifest.Tokens,
		CSSVars: cssVars,
		AssetURL: func(key string) string {
			path, ok := files[key]
			if !ok {
				return ""
			}
			if prefix == "" {
				return path
			}
			return strings.TrimRight(prefix, "/") + "/" + path
		},
	}
}

// CSSVarsStyle renders the CSS custom properties of cfg as a :root
// block, usable by preview pages that wrap a rendered signature.
func CSSVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}

	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
