package pixelconv

import "testing"

func makeRGBA(w, h int) *Image {
	data := make([]byte, w*h*4)
	return &Image{
		Format:           RGBA,
		Planes:           []Plane{{Data: data, Stride: w * 4}},
		Width:            w,
		Height:           h,
		Color:            DefaultColorInfo(RGBA),
		BitsPerComponent: 8,
	}
}

func TestConvertI420ToRGBAWhiteIsWhite(t *testing.T) {
	w, h := 4, 4
	src := makeI420(w, h)
	for i := range src.Planes[0].Data {
		src.Planes[0].Data[i] = 255
	}
	for i := range src.Planes[1].Data {
		src.Planes[1].Data[i] = 128
		src.Planes[2].Data[i] = 128
	}
	src.Color.FullRange = true

	dst := makeRGBA(w, h)
	dst.Color.FullRange = true

	if err := Convert(src, dst); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	for i := 0; i < w*h; i++ {
		off := i * 4
		r, g, b, a := dst.Planes[0].Data[off], dst.Planes[0].Data[off+1], dst.Planes[0].Data[off+2], dst.Planes[0].Data[off+3]
		if r < 250 || g < 250 || b < 250 || a != 255 {
			t.Errorf("pixel %d = (%d,%d,%d,%d), want ~white opaque", i, r, g, b, a)
		}
	}
}

func TestConvertSameFormatSameGradingIsCopy(t *testing.T) {
	src := makeI420(4, 4)
	for i := range src.Planes[0].Data {
		src.Planes[0].Data[i] = byte(i * 7)
	}
	dst := makeI420(4, 4)

	if err := Convert(src, dst); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	for i := range src.Planes[0].Data {
		if src.Planes[0].Data[i] != dst.Planes[0].Data[i] {
			t.Fatalf("same-format convert did not behave as copy at %d", i)
		}
	}
}

func TestConvertRejectsMismatchedWindowSize(t *testing.T) {
	src := makeI420(4, 4)
	dst := makeRGBA(4, 4)
	dst.Window = &Window{X: 0, Y: 0, Width: 2, Height: 2}
	if err := Convert(src, dst); err == nil {
		t.Fatal("expected mismatched window size error")
	}
}

func TestConvertParallelMatchesConvert(t *testing.T) {
	w, h := 16, 16
	src := makeI420(w, h)
	for i := range src.Planes[0].Data {
		src.Planes[0].Data[i] = byte(i * 3)
	}
	for i := range src.Planes[1].Data {
		src.Planes[1].Data[i] = byte(100 + i)
		src.Planes[2].Data[i] = byte(140 + i)
	}

	dst1 := makeRGBA(w, h)
	dst2 := makeRGBA(w, h)

	if err := Convert(src, dst1); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if err := ConvertParallel(src, dst2); err != nil {
		t.Fatalf("ConvertParallel: %v", err)
	}
	for i := range dst1.Planes[0].Data {
		a, b := dst1.Planes[0].Data[i], dst2.Planes[0].Data[i]
		d := int(a) - int(b)
		if d < 0 {
			d = -d
		}
		if d > 1 {
			t.Fatalf("byte %d: Convert=%d ConvertParallel=%d", i, a, b)
		}
	}
}
