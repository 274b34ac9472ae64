// Package image reads single pixels from image files for the CLI.
package image

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/mmuldo/colorpick/colorspace"
)

// Load decodes the image at path. JPEG, PNG, GIF, BMP and TIFF are
// supported.
func Load(path string) (image.Image, error) {
	i, e := imaging.Open(path)
	if e != nil {
		return nil, e
	}

	return i, nil
}

// Fit scales img to exactly w by h pixels so that coordinates picked on a
// fixed-size view address the same pixel. Non-positive sizes return img
// unchanged.
func Fit(img image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// Sample returns the color of the pixel at (x, y), relative to the top-left
// corner of the image. Alpha is ignored.
func Sample(img image.Image, x, y int) (colorspace.RGB, error) {
	b := img.Bounds()
	px, py := b.Min.X+x, b.Min.Y+y
	if x < 0 || y < 0 || px >= b.Max.X || py >= b.Max.Y {
		return colorspace.RGB{}, fmt.Errorf("coordinates (%d,%d) outside %dx%d image", x, y, b.Dx(), b.Dy())
	}

	r, g, bl, _ := img.At(px, py).RGBA()
	return colorspace.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}, nil
}
