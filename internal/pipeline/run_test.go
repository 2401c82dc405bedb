package pipeline

import (
	"testing"

	"github.com/deepteams/pixelconv/internal/lane"
)

func TestRunI420ToI420Identity(t *testing.T) {
	w, h := 4, 4
	y := make([]byte, w*h)
	u := make([]byte, w*h/4)
	v := make([]byte, w*h/4)
	for i := range y {
		y[i] = byte(30 + i*5)
	}
	for i := range u {
		u[i] = byte(120 + i*3)
		v[i] = byte(130 + i*2)
	}

	src := Descriptor{
		Format: I420, BitsPerComponent: 8, Space: SpaceBT709, FullRange: true,
		Planes: PlaneSet{Data: [][]byte{y, u, v}, Stride: []int{w, w / 2, w / 2}},
	}

	y2 := make([]byte, w*h)
	u2 := make([]byte, w*h/4)
	v2 := make([]byte, w*h/4)
	dst := Descriptor{
		Format: I420, BitsPerComponent: 8, Space: SpaceBT709, FullRange: true,
		Planes: PlaneSet{Data: [][]byte{y2, u2, v2}, Stride: []int{w, w / 2, w / 2}},
	}

	reader := BuildReader(src)
	writer := BuildWriter(dst)
	grading := Grading{Transfer: TransferLinear, Primaries: PrimariesBT709}
	Run(reader, writer, w, h, grading, grading, lane.Width1)

	for i := range y {
		if diff(y[i], y2[i]) > 2 {
			t.Errorf("y[%d] = %d, got %d", i, y[i], y2[i])
		}
	}
}

func diff(a, b byte) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}
