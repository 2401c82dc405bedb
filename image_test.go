package pixelconv

import "testing"

func makeI420(w, h int) *Image {
	y := make([]byte, w*h)
	u := make([]byte, w*h/4)
	v := make([]byte, w*h/4)
	return &Image{
		Format: I420,
		Planes: []Plane{
			{Data: y, Stride: w},
			{Data: u, Stride: w / 2},
			{Data: v, Stride: w / 2},
		},
		Width: w, Height: h,
		Color:            DefaultColorInfo(I420),
		BitsPerComponent: 8,
	}
}

func TestValidateRejectsOddDimensions(t *testing.T) {
	img := makeI420(4, 4)
	img.Width = 3
	if err := img.validate(); err == nil {
		t.Fatal("expected error for odd width")
	}
}

func TestValidateRejectsShortPlane(t *testing.T) {
	img := makeI420(4, 4)
	img.Planes[0].Data = img.Planes[0].Data[:4]
	if err := img.validate(); err == nil {
		t.Fatal("expected error for short plane")
	}
}

func TestValidateRejectsBadWindow(t *testing.T) {
	img := makeI420(4, 4)
	img.Window = &Window{X: 0, Y: 0, Width: 3, Height: 4}
	if err := img.validate(); err == nil {
		t.Fatal("expected error for odd window width")
	}
	img.Window = &Window{X: 2, Y: 2, Width: 4, Height: 4}
	if err := img.validate(); err == nil {
		t.Fatal("expected error for out-of-bounds window")
	}
}

func TestValidatePairRejectsMismatchedWindowSize(t *testing.T) {
	src := makeI420(4, 4)
	dst := makeI420(4, 4)
	dst.Window = &Window{X: 0, Y: 0, Width: 2, Height: 2}
	if err := validatePair(src, dst); err == nil {
		t.Fatal("expected mismatched window size error")
	}
}
