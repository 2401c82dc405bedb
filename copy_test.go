package pixelconv

import "testing"

func TestCopyRoundTrip(t *testing.T) {
	src := makeI420(4, 4)
	for i := range src.Planes[0].Data {
		src.Planes[0].Data[i] = byte(10 + i)
	}
	for i := range src.Planes[1].Data {
		src.Planes[1].Data[i] = byte(100 + i)
		src.Planes[2].Data[i] = byte(150 + i)
	}
	dst := makeI420(4, 4)

	if err := Copy(src, dst); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	for i := range src.Planes[0].Data {
		if src.Planes[0].Data[i] != dst.Planes[0].Data[i] {
			t.Errorf("Y[%d] = %d, want %d", i, dst.Planes[0].Data[i], src.Planes[0].Data[i])
		}
	}
}

func TestCopyRejectsFormatMismatch(t *testing.T) {
	src := makeI420(4, 4)
	dst := makeI420(4, 4)
	dst.Format = I444
	dst.Planes = []Plane{
		{Data: make([]byte, 16), Stride: 4},
		{Data: make([]byte, 16), Stride: 4},
		{Data: make([]byte, 16), Stride: 4},
	}
	if err := Copy(src, dst); err == nil {
		t.Fatal("expected format mismatch error")
	}
}

func TestCopyRespectsStrideAndWindow(t *testing.T) {
	src := makeI420(4, 4)
	for i := range src.Planes[0].Data {
		src.Planes[0].Data[i] = byte(1)
	}
	srcWin := &Window{X: 0, Y: 0, Width: 2, Height: 2}
	src.Window = srcWin

	dst := makeI420(4, 4)
	dst.Window = &Window{X: 2, Y: 2, Width: 2, Height: 2}

	if err := Copy(src, dst); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	off := 2*dst.Planes[0].Stride + 2
	if dst.Planes[0].Data[off] != 1 {
		t.Errorf("dst windowed Y = %d, want 1", dst.Planes[0].Data[off])
	}
}
