package format

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_ResolveFallsBackToDefault(t *testing.T) {
	registry := NewDefaultRegistry()

	for _, id := range []string{"", "unknown", "WELLBOUND", "acme-hospice"} {
		got := registry.Resolve(id)
		if diff := cmp.Diff(Wellbound(), got); diff != "" {
			t.Fatalf("Resolve(%q) mismatch (-want +got):\n%s", id, diff)
		}
	}
}

func TestRegistry_ResolveKnownBundle(t *testing.T) {
	registry := NewDefaultRegistry()

	got := registry.Resolve("special-needs")
	if diff := cmp.Diff(SpecialNeeds(), got); diff != "" {
		t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
	}
	if !got.AddressBold {
		t.Fatalf("special-needs bundle should bold the address")
	}
	if got.Spacing() != "&nbsp;" {
		t.Fatalf("icon spacing override lost: %q", got.Spacing())
	}
}

func TestRegistry_RegisterRejectsDuplicates(t *testing.T) {
	registry := NewDefaultRegistry()

	err := registry.Register(Wellbound())
	if err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegistry_ResolveReturnsCopies(t *testing.T) {
	registry := NewDefaultRegistry()

	first := registry.Resolve("wellbound")
	first.SocialIcons[0].Href = "https://example.com/mutated"
	first.NameColor = "#000000"

	second := registry.Resolve("wellbound")
	if second.SocialIcons[0].Href != Wellbound().SocialIcons[0].Href {
		t.Fatalf("registry state mutated through resolved bundle")
	}
}

func TestLoadBundles(t *testing.T) {
	doc := `
default: acme
bundles:
  - id: acme
    label: Acme Care
    borderColor: "#101010"
    nameFont: "'Verdana',sans-serif"
    nameSize: 12pt
    nameColor: "#101010"
    lineColor: "#101010"
    lineWeight: 1.5pt
    logo:
      src: imgs/acme.png
      href: https://acme.example/
      width: 137
      height: 39
      alt: Acme Care
    socialIcons:
      - href: https://acme.example/fb
        src: imgs/fb.png
        alt: Facebook
        size: 22
`
	registry := NewDefaultRegistry()
	if err := LoadBundles(registry, strings.NewReader(doc)); err != nil {
		t.Fatalf("load bundles: %v", err)
	}

	if !registry.Has("acme") {
		t.Fatalf("acme bundle not registered")
	}
	// The document repoints the fallback.
	got := registry.Resolve("nope")
	if got.ID != "acme" {
		t.Fatalf("fallback not repointed, got %q", got.ID)
	}
}

func TestBundle_RendererConfig(t *testing.T) {
	cfg := RendererConfig(Wellbound())

	if cfg.Theme != "wellbound" {
		t.Fatalf("theme name: %q", cfg.Theme)
	}
	if cfg.Tokens[TokenBorderColor] != "#561640" {
		t.Fatalf("border token: %q", cfg.Tokens[TokenBorderColor])
	}
	if cfg.CSSVars["--sig-border-color"] != "#561640" {
		t.Fatalf("css var: %q", cfg.CSSVars["--sig-border-color"])
	}
	if got := cfg.AssetURL("logo"); got != "imgs/logo.png" {
		t.Fatalf("logo asset: %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("missing asset should resolve empty, got %q", got)
	}

	style := CSSVarsStyle(cfg)
	if !strings.HasPrefix(style, ":root {") || !strings.Contains(style, "--sig-name-color: #561640;") {
		t.Fatalf("unexpected css vars block:\n%s", style)
	}
}
