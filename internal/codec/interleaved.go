package codec

import (
	"github.com/deepteams/pixelconv/internal/block"
	"github.com/deepteams/pixelconv/internal/lane"
)

// InterleavedConfig describes a packed RGB/BGR/RGBA/BGRA source or
// destination: one plane of 3 or 4 byte-interleaved channels per pixel, no
// color-matrix conversion (these formats carry RGB(A) directly).
type InterleavedConfig struct {
	HasAlpha         bool
	Swizzle          bool // true selects BGR(A) byte order instead of RGB(A)
	Data             []byte
	Stride           int
	OriginX, OriginY int
}

func (cfg InterleavedConfig) bytesPerPixel() int {
	if cfg.HasAlpha {
		return 4
	}
	return 3
}

type interleavedReader struct{ cfg InterleavedConfig }

// NewInterleavedReader builds a block.Reader over an RGB/BGR/RGBA/BGRA
// source.
func NewInterleavedReader(cfg InterleavedConfig) block.Reader {
	return &interleavedReader{cfg: cfg}
}

func (r *interleavedReader) pixelOffset(px, py int) int {
	return py*r.cfg.Stride + px*r.cfg.bytesPerPixel()
}

func (r *interleavedReader) load(px, py int, w lane.Width) (rr, gg, bb, aa lane.Vec) {
	off := r.pixelOffset(px, py)
	buf := r.cfg.Data[off:]
	if r.cfg.HasAlpha {
		c0, c1, c2, c3 := lane.LoadInterleaved4U8(buf, w, 255)
		if r.cfg.Swizzle {
			bb, gg, rr, aa = c0, c1, c2, c3
		} else {
			rr, gg, bb, aa = c0, c1, c2, c3
		}
		return
	}
	c0, c1, c2 := lane.LoadInterleaved3U8(buf, w, 255)
	if r.cfg.Swizzle {
		bb, gg, rr = c0, c1, c2
	} else {
		rr, gg, bb = c0, c1, c2
	}
	aa = lane.Splat(w, 1.0)
	return
}

func (r *interleavedReader) Read(x, y int, w lane.Width) block.RGBA {
	px, py := r.cfg.OriginX+x, r.cfg.OriginY+y
	n := int(w)

	out := block.RGBA{}
	coords := [4][2]int{{px, py}, {px + n, py}, {px, py + 1}, {px + n, py + 1}}
	for i, c := range coords {
		rr, gg, bb, aa := r.load(c[0], c[1], w)
		out.R[i], out.G[i], out.B[i], out.A[i] = rr, gg, bb, aa
	}
	return out
}

type interleavedWriter struct{ cfg InterleavedConfig }

// NewInterleavedWriter builds a block.Writer over an RGB/BGR/RGBA/BGRA
// destination.
func NewInterleavedWriter(cfg InterleavedConfig) block.Writer {
	return &interleavedWriter{cfg: cfg}
}

func (wtr *interleavedWriter) pixelOffset(px, py int) int {
	return py*wtr.cfg.Stride + px*wtr.cfg.bytesPerPixel()
}

func (wtr *interleavedWriter) store(px, py int, rr, gg, bb, aa lane.Vec) {
	off := wtr.pixelOffset(px, py)
	buf := wtr.cfg.Data[off:]
	if wtr.cfg.HasAlpha {
		if wtr.cfg.Swizzle {
			lane.StoreInterleaved4U8(bb, gg, rr, aa, buf)
		} else {
			lane.StoreInterleaved4U8(rr, gg, bb, aa, buf)
		}
		return
	}
	if wtr.cfg.Swizzle {
		lane.StoreInterleaved3U8(bb, gg, rr, buf)
	} else {
		lane.StoreInterleaved3U8(rr, gg, bb, buf)
	}
}

func (wtr *interleavedWriter) Write(x, y int, w lane.Width, blk block.RGBA) {
	px, py := wtr.cfg.OriginX+x, wtr.cfg.OriginY+y
	n := int(w)

	coords := [4][2]int{{px, py}, {px + n, py}, {px, py + 1}, {px + n, py + 1}}
	for i, c := range coords {
		wtr.store(c[0], c[1], blk.R[i], blk.G[i], blk.B[i], blk.A[i])
	}
}
