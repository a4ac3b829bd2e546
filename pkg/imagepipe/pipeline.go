package imagepipe

import (
	"context"
	"image/color"
	"io"
	"sync"
)

// Result carries the independent outcomes of the two transforms. A nil
// Preview means "no preview available" (decode or encode failure) and
// is not fatal; the artifact error is reported separately because the
// upload path needs to distinguish "nothing to upload" from "failed".
type Result struct {
	Preview     *PreviewBitmap
	Artifact    *Artifact
	PreviewErr  error
	ArtifactErr error
}

// Process decodes the selected image once and fans out to the circular
// preview and upload-artifact transforms concurrently. The transforms
// are independent: they may complete in either order and either may
// fail without affecting the other. The preview feeds only the live
// on-screen render; the artifact feeds only the upload client.
func Process(ctx context.Context, r io.Reader, ringColor color.Color) Result {
	src, err := Decode(r)
	if err != nil {
		return Result{PreviewErr: err, ArtifactErr: err}
	}

	var result Result
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		if ctx.Err() != nil {
			result.PreviewErr = ctx.Err()
			return
		}
		result.Preview, result.PreviewErr = CircularPreview(src, ringColor)
	}()
	go func() {
		defer wg.Done()
		if ctx.Err() != nil {
			result.ArtifactErr = ctx.Err()
			return
		}
		result.Artifact, result.ArtifactErr = UploadArtifact(src)
	}()
	wg.Wait()

	return result
}
