package imagepipe

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Decode reads a user-selected image. Decode failure is expected input
// (arbitrary user files) and resolves downstream to "no preview
// available" rather than a fatal condition.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("imagepipe: decode image: %w", err)
	}
	return img, nil
}
