package pipeline

import (
	"github.com/deepteams/pixelconv/internal/block"
	"github.com/deepteams/pixelconv/internal/codec"
	"github.com/deepteams/pixelconv/internal/lane"
)

// FormatKind mirrors the root package's Format enum ordinal-for-ordinal, so
// the two never need a lookup table to translate between them.
type FormatKind int

const (
	I420 FormatKind = iota
	I422
	I444
	I010
	I012
	I210
	I212
	I410
	I412
	NV12
	P010
	P012
	YUYV
	RGB
	BGR
	RGBA
	BGRA
)

// PlaneSet describes the concrete byte planes and strides a Descriptor is
// built from; plane count and meaning depend on Format.
type PlaneSet struct {
	Data   [][]byte
	Stride []int
}

// Descriptor is everything the factory needs to build a reader or writer
// for one image side: its format, color grading, and an origin offset
// (pixel coordinates of the window's top-left corner within the plane
// data - callers pass 0,0 when there is no crop).
type Descriptor struct {
	Format           FormatKind
	Planes           PlaneSet
	BitsPerComponent int
	Endian           EndianKind
	Space            SpaceKind
	FullRange        bool
	OriginX, OriginY int
}

func bitDepthOf(f FormatKind) int {
	switch f {
	case I012, I212, I412, P012:
		return 12
	case I010, I210, I410, P010:
		return 10
	default:
		return 8
	}
}

func chromaLayoutOf(f FormatKind) codec.ChromaLayout {
	switch f {
	case I420, I010, I012:
		return codec.Chroma420
	case I422, I210, I212:
		return codec.Chroma422
	default:
		return codec.Chroma444
	}
}

func isPlanarYUV(f FormatKind) bool {
	switch f {
	case I420, I422, I444, I010, I012, I210, I212, I410, I412:
		return true
	default:
		return false
	}
}

func isSemiPlanar(f FormatKind) bool {
	return f == NV12 || f == P010 || f == P012
}

func isInterleavedRGB(f FormatKind) bool {
	switch f {
	case RGB, BGR, RGBA, BGRA:
		return true
	default:
		return false
	}
}

// BuildReader constructs the block.Reader for d's format and color grading.
func BuildReader(d Descriptor) block.Reader {
	colorKind := d.Space.ToColorMatrix()
	switch {
	case isPlanarYUV(d.Format):
		return codec.NewPlanarReader(codec.PlanarConfig{
			Layout:           chromaLayoutOf(d.Format),
			BitsPerComponent: d.BitsPerComponent,
			Endian:           d.Endian.ToLaneEndian(),
			ColorKind:        colorKind,
			FullRange:        d.FullRange,
			Y:                d.Planes.Data[0], U: d.Planes.Data[1], V: d.Planes.Data[2],
			YStride: d.Planes.Stride[0], UStride: d.Planes.Stride[1], VStride: d.Planes.Stride[2],
			OriginX: d.OriginX, OriginY: d.OriginY,
		})
	case isSemiPlanar(d.Format):
		return codec.NewSemiPlanarReader(codec.SemiPlanarConfig{
			BitsPerComponent: d.BitsPerComponent,
			Endian:           d.Endian.ToLaneEndian(),
			ColorKind:        colorKind,
			FullRange:        d.FullRange,
			Y:                d.Planes.Data[0], UV: d.Planes.Data[1],
			YStride: d.Planes.Stride[0], UVStride: d.Planes.Stride[1],
			OriginX: d.OriginX, OriginY: d.OriginY,
		})
	case d.Format == YUYV:
		return codec.NewPackedReader(codec.PackedConfig{
			ColorKind: colorKind,
			FullRange: d.FullRange,
			Data:      d.Planes.Data[0],
			Stride:    d.Planes.Stride[0],
			OriginX:   d.OriginX, OriginY: d.OriginY,
		})
	case isInterleavedRGB(d.Format):
		return codec.NewInterleavedReader(codec.InterleavedConfig{
			HasAlpha: d.Format == RGBA || d.Format == BGRA,
			Swizzle:  d.Format == BGR || d.Format == BGRA,
			Data:     d.Planes.Data[0],
			Stride:   d.Planes.Stride[0],
			OriginX:  d.OriginX, OriginY: d.OriginY,
		})
	default:
		panic("pipeline: unhandled format in BuildReader")
	}
}

// BuildWriter constructs the block.Writer for d's format and color grading.
func BuildWriter(d Descriptor) block.Writer {
	colorKind := d.Space.ToColorMatrix()
	switch {
	case isPlanarYUV(d.Format):
		return codec.NewPlanarWriter(codec.PlanarConfig{
			Layout:           chromaLayoutOf(d.Format),
			BitsPerComponent: d.BitsPerComponent,
			Endian:           d.Endian.ToLaneEndian(),
			ColorKind:        colorKind,
			FullRange:        d.FullRange,
			Y:                d.Planes.Data[0], U: d.Planes.Data[1], V: d.Planes.Data[2],
			YStride: d.Planes.Stride[0], UStride: d.Planes.Stride[1], VStride: d.Planes.Stride[2],
			OriginX: d.OriginX, OriginY: d.OriginY,
		})
	case isSemiPlanar(d.Format):
		return codec.NewSemiPlanarWriter(codec.SemiPlanarConfig{
			BitsPerComponent: d.BitsPerComponent,
			Endian:           d.Endian.ToLaneEndian(),
			ColorKind:        colorKind,
			FullRange:        d.FullRange,
			Y:                d.Planes.Data[0], UV: d.Planes.Data[1],
			YStride: d.Planes.Stride[0], UVStride: d.Planes.Stride[1],
			OriginX: d.OriginX, OriginY: d.OriginY,
		})
	case d.Format == YUYV:
		return codec.NewPackedWriter(codec.PackedConfig{
			ColorKind: colorKind,
			FullRange: d.FullRange,
			Data:      d.Planes.Data[0],
			Stride:    d.Planes.Stride[0],
			OriginX:   d.OriginX, OriginY: d.OriginY,
		})
	case isInterleavedRGB(d.Format):
		return codec.NewInterleavedWriter(codec.InterleavedConfig{
			HasAlpha: d.Format == RGBA || d.Format == BGRA,
			Swizzle:  d.Format == BGR || d.Format == BGRA,
			Data:     d.Planes.Data[0],
			Stride:   d.Planes.Stride[0],
			OriginX:  d.OriginX, OriginY: d.OriginY,
		})
	default:
		panic("pipeline: unhandled format in BuildWriter")
	}
}

// bestWidth picks the widest lane width, up to max, that does not exceed the
// number of 2x2 tile columns remaining, falling back to narrower widths (and finally
// scalar) for the row's remainder - the same width-then-remainder strategy
// the teacher's internal/dsp dispatch uses for SIMD vs. scalar fallback.
func bestWidth(tilesLeft int, max lane.Width) lane.Width {
	for _, w := range []lane.Width{lane.Width16, lane.Width8, lane.Width4, lane.Width1} {
		if w <= max && tilesLeft >= int(w) {
			return w
		}
	}
	return lane.Width1
}
