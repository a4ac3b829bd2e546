// Package testsupport carries shared fixtures for package tests: solid
// test images in the formats the pipeline accepts and a populated
// employee record.
package testsupport

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wellboundhc/go-siggen/pkg/signature"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// Image builds a solid-color bitmap.
func Image(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// PNG builds a solid-color bitmap and returns its PNG encoding.
func PNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, Image(w, h, c)); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

// SampleFields returns a fully populated employee record.
func SampleFields() signature.Fields {
	return signature.Fields{
		Name:      "Jane Doe",
		Title:     "Nurse",
		Phone:     "555-0100",
		Extension: "42",
		Email:     "jane@x.com",
	}
}

// Diff returns a human-readable diff when the values differ.
func Diff(want, got any) string {
	return cmp.Diff(want, got)
}
