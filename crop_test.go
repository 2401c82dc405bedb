package pixelconv

import "testing"

func TestCropNarrowsWindow(t *testing.T) {
	img := makeI420(8, 8)
	for i := range img.Planes[0].Data {
		img.Planes[0].Data[i] = byte(i)
	}

	cropped, err := Crop(img, Window{X: 2, Y: 2, Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if cropped.Width != 4 || cropped.Height != 4 {
		t.Fatalf("cropped dims = %dx%d, want 4x4", cropped.Width, cropped.Height)
	}
	wantFirstY := img.Planes[0].Data[2*img.Planes[0].Stride+2]
	if cropped.Planes[0].Data[0] != wantFirstY {
		t.Errorf("cropped Y[0] = %d, want %d", cropped.Planes[0].Data[0], wantFirstY)
	}
}

func TestCropComposes(t *testing.T) {
	img := makeI420(8, 8)
	first, err := Crop(img, Window{X: 2, Y: 0, Width: 6, Height: 8})
	if err != nil {
		t.Fatalf("first crop: %v", err)
	}
	second, err := Crop(first, Window{X: 2, Y: 0, Width: 4, Height: 8})
	if err != nil {
		t.Fatalf("second crop: %v", err)
	}
	// second is offset (2+2)=4 from the original image's column 0.
	directOff := 0*img.Planes[0].Stride + 4
	if &second.Planes[0].Data[0] != &img.Planes[0].Data[directOff] {
		t.Errorf("composed crop did not land at absolute column 4")
	}
}

func TestCropRejectsOutOfBounds(t *testing.T) {
	img := makeI420(4, 4)
	if _, err := Crop(img, Window{X: 2, Y: 2, Width: 4, Height: 4}); err == nil {
		t.Fatal("expected out-of-bounds error")
	}
}

func TestCropRejectsOddDimensions(t *testing.T) {
	img := makeI420(4, 4)
	if _, err := Crop(img, Window{X: 0, Y: 0, Width: 3, Height: 4}); err == nil {
		t.Fatal("expected odd-dimension error")
	}
}
