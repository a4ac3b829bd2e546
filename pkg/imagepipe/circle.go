package imagepipe

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
)

// Fixed preview geometry: a 96px content disc inside a 3px ring, so the
// finished canvas is 102px square.
const (
	ContentDiameter = 96
	RingThickness   = 3
	CanvasDiameter  = ContentDiameter + 2*RingThickness
)

// PreviewBitmap is the UI-only circular rendering of a selected image.
// It is recomputed whenever the source image or the active format's
// border color changes, and is never sent over the network.
type PreviewBitmap struct {
	Image *image.NRGBA
	PNG   []byte
}

// DataURI returns the bitmap as an inline data URI for embedding in a
// live preview render.
func (p *PreviewBitmap) DataURI() string {
	if p == nil || len(p.PNG) == 0 {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(p.PNG)
}

// CircularPreview composites src onto a ring-colored disc: the full
// canvas is filled with a disc of ringColor, then the source is
// cover-fit (scaled by the larger axis ratio, centered, cropped) and
// drawn through a clip disc of the content diameter. A nil src yields
// a nil preview, not an error; callers treat nil as "no preview
// available".
func CircularPreview(src image.Image, ringColor color.Color) (*PreviewBitmap, error) {
	if src == nil {
		return nil, nil
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, CanvasDiameter, CanvasDiameter))
	center := float64(CanvasDiameter) / 2

	// Ring disc across the full canvas.
	draw.DrawMask(canvas, canvas.Bounds(), &image.Uniform{C: ringColor}, image.Point{},
		&discMask{cx: center, cy: center, r: center}, image.Point{}, draw.Over)

	// Cover-fit the source into the content square; Fill crops rather
	// than letterboxing, matching max-scale + center semantics.
	content := imaging.Fill(src, ContentDiameter, ContentDiameter, imaging.Center, imaging.Lanczos)

	contentRect := image.Rect(RingThickness, RingThickness,
		RingThickness+ContentDiameter, RingThickness+ContentDiameter)
	draw.DrawMask(canvas, contentRect, content, image.Point{},
		&discMask{cx: center, cy: center, r: float64(ContentDiameter) / 2}, contentRect.Min, draw.Over)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("imagepipe: encode preview: %w", err)
	}

	return &PreviewBitmap{Image: canvas, PNG: buf.Bytes()}, nil
}

// discMask is an alpha mask for a filled circle with a one-pixel soft
// edge.
type discMask struct {
	cx, cy, r float64
}

func (m *discMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *discMask) Bounds() image.Rectangle {
	return image.Rect(int(m.cx-m.r), int(m.cy-m.r), int(m.cx+m.r)+1, int(m.cy+m.r)+1)
}

func (m *discMask) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - m.cx
	dy := float64(y) + 0.5 - m.cy
	d := math.Sqrt(dx*dx + dy*dy)

	switch {
	case d <= m.r-0.5:
		return color.Alpha{A: 255}
	case d >= m.r+0.5:
		return color.Alpha{A: 0}
	default:
		return color.Alpha{A: uint8(255 * (m.r + 0.5 - d))}
	}
}
