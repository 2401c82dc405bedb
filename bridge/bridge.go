// Package bridge connects pixelconv's plane-based Image to the standard
// library's image.Image/image.RGBA, the way webp.go registers itself with
// image.RegisterFormat - stdlib only, no golang.org/x/image dependency.
package bridge

import (
	"fmt"
	"image"

	"github.com/deepteams/pixelconv"
)

// FromStdImage wraps a stdlib image.Image as a pixelconv.Image in the RGBA
// format, graded as DefaultColorInfo(pixelconv.RGBA) (Linear transfer,
// BT.709 primaries, full range). If img is an *image.RGBA whose bounds start
// at the origin, its pixel buffer is reused directly (no copy); otherwise
// each pixel is read through the image.Image interface and re-packed.
func FromStdImage(img image.Image) (*pixelconv.Image, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width%2 != 0 || height%2 != 0 {
		return nil, fmt.Errorf("bridge: dimensions %dx%d must be even", width, height)
	}

	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return &pixelconv.Image{
			Format:           pixelconv.RGBA,
			Planes:           []pixelconv.Plane{{Data: rgba.Pix, Stride: rgba.Stride}},
			Width:            width,
			Height:           height,
			Color:            pixelconv.DefaultColorInfo(pixelconv.RGBA),
			BitsPerComponent: 8,
		}, nil
	}

	pix := make([]byte, width*height*4)
	stride := width * 4
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			off := y*stride + x*4
			pix[off] = byte(r >> 8)
			pix[off+1] = byte(g >> 8)
			pix[off+2] = byte(bl >> 8)
			pix[off+3] = byte(a >> 8)
		}
	}
	return &pixelconv.Image{
		Format:           pixelconv.RGBA,
		Planes:           []pixelconv.Plane{{Data: pix, Stride: stride}},
		Width:            width,
		Height:           height,
		Color:            pixelconv.DefaultColorInfo(pixelconv.RGBA),
		BitsPerComponent: 8,
	}, nil
}

// ToStdImage converts an RGBA-format pixelconv.Image into a stdlib
// *image.RGBA, reusing its plane's byte buffer directly. src must already
// be in pixelconv.RGBA format with no grading conversion pending; convert
// with pixelconv.Convert first if it isn't.
func ToStdImage(src *pixelconv.Image) (*image.RGBA, error) {
	if src.Format != pixelconv.RGBA {
		return nil, fmt.Errorf("bridge: source format %s is not RGBA", src.Format)
	}
	return &image.RGBA{
		Pix:    src.Planes[0].Data,
		Stride: src.Planes[0].Stride,
		Rect:   image.Rect(0, 0, src.Width, src.Height),
	}, nil
}
