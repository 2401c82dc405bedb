package codec

import (
	"testing"

	"github.com/deepteams/pixelconv/internal/colormatrix"
	"github.com/deepteams/pixelconv/internal/lane"
)

func approxByte(a, b byte) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= 2
}

func TestSemiPlanarRoundTrip(t *testing.T) {
	w, h := 4, 2
	y := make([]byte, w*h)
	uv := make([]byte, w*h/2)
	for i := range y {
		y[i] = byte(40 + i*10)
	}
	for i := range uv {
		uv[i] = byte(120 + i*5)
	}

	cfg := SemiPlanarConfig{
		BitsPerComponent: 8,
		Endian:           lane.LittleEndian,
		ColorKind:        colormatrix.BT709,
		FullRange:        true,
		Y:                y, UV: uv,
		YStride: w, UVStride: w,
	}
	reader := NewSemiPlanarReader(cfg)

	y2 := make([]byte, w*h)
	uv2 := make([]byte, w*h/2)
	cfg2 := cfg
	cfg2.Y, cfg2.UV = y2, uv2
	writer := NewSemiPlanarWriter(cfg2)

	for x := 0; x < w; x += 2 {
		blk := reader.Read(x, 0, lane.Width1)
		writer.Write(x, 0, lane.Width1, blk)
	}

	for i := range y {
		if !approxByte(y[i], y2[i]) {
			t.Errorf("y[%d] = %d, round-tripped to %d", i, y[i], y2[i])
		}
	}
}

func TestPackedYUYVRoundTrip(t *testing.T) {
	w, h := 4, 2
	data := make([]byte, w*h*2)
	for i := range data {
		data[i] = byte(60 + i*7)
	}
	cfg := PackedConfig{ColorKind: colormatrix.BT601, FullRange: true, Data: data, Stride: w * 2}
	reader := NewPackedReader(cfg)

	data2 := make([]byte, len(data))
	cfg2 := cfg
	cfg2.Data = data2
	writer := NewPackedWriter(cfg2)

	for x := 0; x < w; x += 2 {
		blk := reader.Read(x, 0, lane.Width1)
		writer.Write(x, 0, lane.Width1, blk)
	}

	for i := range data {
		if !approxByte(data[i], data2[i]) {
			t.Errorf("data[%d] = %d, round-tripped to %d", i, data[i], data2[i])
		}
	}
}

func TestInterleavedRGBARoundTrip(t *testing.T) {
	w, h := 2, 2
	data := make([]byte, w*h*4)
	for i := range data {
		data[i] = byte(10 + i*9)
	}
	cfg := InterleavedConfig{HasAlpha: true, Data: data, Stride: w * 4}
	reader := NewInterleavedReader(cfg)

	data2 := make([]byte, len(data))
	cfg2 := cfg
	cfg2.Data = data2
	writer := NewInterleavedWriter(cfg2)

	blk := reader.Read(0, 0, lane.Width1)
	writer.Write(0, 0, lane.Width1, blk)

	for i := range data {
		if data[i] != data2[i] {
			t.Errorf("data[%d] = %d, round-tripped to %d", i, data[i], data2[i])
		}
	}
}

func TestInterleavedSwizzleBGR(t *testing.T) {
	// One 2x2 block of identical BGR pixels: Read always loads a full block.
	data := []byte{10, 20, 30, 10, 20, 30, 10, 20, 30, 10, 20, 30}
	cfg := InterleavedConfig{HasAlpha: false, Swizzle: true, Data: data, Stride: 6}
	reader := NewInterleavedReader(cfg)
	blk := reader.Read(0, 0, lane.Width1)
	if blk.R[0].X[0] != 30.0/255 || blk.B[0].X[0] != 10.0/255 {
		t.Errorf("BGR swizzle not applied: r=%v b=%v", blk.R[0].X[0], blk.B[0].X[0])
	}
}
