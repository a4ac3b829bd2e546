package imagepipe

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Upload-artifact constants: the longest side is clamped to
// MaxUploadDimension (never upscaled), encoded as JPEG at UploadQuality
// under the fixed container name.
const (
	MaxUploadDimension = 400
	UploadQuality      = 85
	ArtifactName       = "profile.jpg"
)

// Artifact is the in-memory, upload-ready image. It is created on every
// image selection, replaces any prior uncommitted artifact, and is
// consumed exactly once by a successful upload.
type Artifact struct {
	Name   string
	Data   []byte
	Width  int
	Height int
}

// UploadArtifact produces the bounded, recompressed upload image:
// downscale-only clamp of the longest side, an opaque white matte under
// the source so transparency cannot leak into the lossy output, JPEG at
// the fixed quality. Re-running the transform on its own output changes
// nothing materially.
func UploadArtifact(src image.Image) (*Artifact, error) {
	if src == nil {
		return nil, fmt.Errorf("imagepipe: no source image")
	}

	bounds := src.Bounds()
	if bounds.Dx() > MaxUploadDimension || bounds.Dy() > MaxUploadDimension {
		src = imaging.Fit(src, MaxUploadDimension, MaxUploadDimension, imaging.Lanczos)
		bounds = src.Bounds()
	}

	matte := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(matte, matte.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(matte, matte.Bounds(), src, bounds.Min, draw.Over)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, matte, imaging.JPEG, imaging.JPEGQuality(UploadQuality)); err != nil {
		return nil, fmt.Errorf("imagepipe: encode artifact: %w", err)
	}

	return &Artifact{
		Name:   ArtifactName,
		Data:   buf.Bytes(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
