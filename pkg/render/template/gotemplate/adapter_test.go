package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestRenderString_IntDimensionsStayIntegral(t *testing.T) {
	type logo struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}

	out, err := newTestEngine(t).RenderString(
		`<img width="{{ logo.width }}" height="{{ logo.height }}">`,
		map[string]any{"logo": logo{Width: 137, Height: 39}},
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != `<img width="137" height="39">` {
		t.Fatalf("rendered markup = %q", out)
	}
}

func TestRenderString_IntsInSlicesStayIntegral(t *testing.T) {
	type icon struct {
		Size int `json:"size"`
	}

	out, err := newTestEngine(t).RenderString(
		`{% for icon in icons %}{{ icon.size }}pt {% endfor %}`,
		map[string]any{"icons": []icon{{Size: 22}, {Size: 22}}},
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "22pt 22pt " {
		t.Fatalf("rendered sizes = %q", out)
	}
}

func TestRenderString_FloatsKeepFractions(t *testing.T) {
	type box struct {
		Scale float64 `json:"scale"`
	}

	out, err := newTestEngine(t).RenderString(
		`{{ box.scale }}`,
		map[string]any{"box": box{Scale: 1.5}},
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "1.5") {
		t.Fatalf("fractional value mangled: %q", out)
	}
}
