package codec

import (
	"github.com/deepteams/pixelconv/internal/block"
	"github.com/deepteams/pixelconv/internal/colormatrix"
	"github.com/deepteams/pixelconv/internal/lane"
)

// ChromaLayout is the chroma sub-sampling topology of a planar YUV format.
type ChromaLayout int

const (
	Chroma420 ChromaLayout = iota
	Chroma422
	Chroma444
)

// PlanarConfig is the shared construction parameters for the I4{2,4,2}0/2/4
// family (8-bit) and their 10/12-bit I01X/I21X/I41X counterparts.
type PlanarConfig struct {
	Layout           ChromaLayout
	BitsPerComponent int
	Endian           lane.Endian
	ColorKind        colormatrix.Kind
	FullRange        bool
	SrcWidth         int // full (unwindowed) plane-space image width
	Y, U, V          []byte
	YStride          int
	UStride          int
	VStride          int
	OriginX, OriginY int // window origin, in pixel coordinates
}

type planarReader struct {
	cfg    PlanarConfig
	sample sampleCodec
}

// NewPlanarReader builds a block.Reader over an I420/I422/I444 (or 10/12-bit
// equivalent) triple-plane source.
func NewPlanarReader(cfg PlanarConfig) block.Reader {
	return &planarReader{cfg: cfg, sample: newSampleCodec(cfg.BitsPerComponent, cfg.Endian)}
}

func (r *planarReader) chromaOffset(px, py int) (rowOff, colOff int) {
	cx, cy := px, py
	switch r.cfg.Layout {
	case Chroma420:
		cx, cy = px/2, py/2
	case Chroma422:
		cx = px / 2
	case Chroma444:
	}
	return cy * r.cfg.UStride, cx * r.sample.bytesPerSample
}

func (r *planarReader) lumaOffset(px, py int) int {
	return py*r.cfg.YStride + px*r.sample.bytesPerSample
}

func (r *planarReader) Read(x, y int, w lane.Width) block.RGBA {
	px, py := r.cfg.OriginX+x, r.cfg.OriginY+y
	n := int(w)

	y00off := r.lumaOffset(px, py)
	y01off := r.lumaOffset(px+n, py)
	y10off := r.lumaOffset(px, py+1)
	y11off := r.lumaOffset(px+n, py+1)

	y00 := r.sample.load(r.cfg.Y[y00off:], w)
	y01 := r.sample.load(r.cfg.Y[y01off:], w)
	y10 := r.sample.load(r.cfg.Y[y10off:], w)
	y11 := r.sample.load(r.cfg.Y[y11off:], w)

	if r.cfg.FullRange {
		// nothing to undo
	} else {
		y00 = fromStudioY(y00)
		y01 = fromStudioY(y01)
		y10 = fromStudioY(y10)
		y11 = fromStudioY(y11)
	}

	var quads [4][3]lane.Vec

	switch r.cfg.Layout {
	case Chroma420:
		uOff := r.chromaRowColOffset(px, py)
		u := r.sample.load(r.cfg.U[uOff:], w)
		v := r.sample.load(r.cfg.V[uOff:], w)
		if !r.cfg.FullRange {
			u, v = fromStudioC(u), fromStudioC(v)
		}
		u, v = u.SubF(0.5), v.SubF(0.5)
		quads = colormatrix.YX4UVToRGB(r.cfg.ColorKind, y00, y01, y10, y11, u, v)
	case Chroma422:
		uOff0 := r.chromaRowColOffset(px, py)
		uOff1 := r.chromaRowColOffset(px, py+1)
		u0 := r.sample.load(r.cfg.U[uOff0:], w)
		v0 := r.sample.load(r.cfg.V[uOff0:], w)
		u1 := r.sample.load(r.cfg.U[uOff1:], w)
		v1 := r.sample.load(r.cfg.V[uOff1:], w)
		if !r.cfg.FullRange {
			u0, v0 = fromStudioC(u0), fromStudioC(v0)
			u1, v1 = fromStudioC(u1), fromStudioC(v1)
		}
		u0, v0 = u0.SubF(0.5), v0.SubF(0.5)
		u1, v1 = u1.SubF(0.5), v1.SubF(0.5)
		top0, top1 := colormatrix.RowUVToRGB(r.cfg.ColorKind, y00, y01, u0, v0)
		bot0, bot1 := colormatrix.RowUVToRGB(r.cfg.ColorKind, y10, y11, u1, v1)
		quads = [4][3]lane.Vec{top0, top1, bot0, bot1}
	case Chroma444:
		ys := [4]lane.Vec{y00, y01, y10, y11}
		coords := [4][2]int{{px, py}, {px + n, py}, {px, py + 1}, {px + n, py + 1}}
		for i, c := range coords {
			off := r.chromaRowColOffset(c[0], c[1])
			u := r.sample.load(r.cfg.U[off:], w)
			v := r.sample.load(r.cfg.V[off:], w)
			if !r.cfg.FullRange {
				u, v = fromStudioC(u), fromStudioC(v)
			}
			u, v = u.SubF(0.5), v.SubF(0.5)
			rr, gg, bb := colormatrix.YUVToRGB(r.cfg.ColorKind, ys[i], u, v)
			quads[i] = [3]lane.Vec{rr, gg, bb}
		}
	}

	out := block.RGBA{}
	one := lane.Splat(w, 1.0)
	for i := 0; i < 4; i++ {
		out.R[i], out.G[i], out.B[i] = quads[i][0], quads[i][1], quads[i][2]
		out.A[i] = one
	}
	return out
}

// chromaRowColOffset computes the byte offset into the U/V plane for pixel
// coordinate (px,py), honoring the layout's sub-sampling.
func (r *planarReader) chromaRowColOffset(px, py int) int {
	rowOff, colOff := r.chromaOffset(px, py)
	return rowOff + colOff
}

type planarWriter struct {
	cfg    PlanarConfig
	sample sampleCodec
}

// NewPlanarWriter builds a block.Writer over an I420/I422/I444 (or 10/12-bit
// equivalent) triple-plane destination.
func NewPlanarWriter(cfg PlanarConfig) block.Writer {
	return &planarWriter{cfg: cfg, sample: newSampleCodec(cfg.BitsPerComponent, cfg.Endian)}
}

func (wtr *planarWriter) lumaOffset(px, py int) int {
	return py*wtr.cfg.YStride + px*wtr.sample.bytesPerSample
}

func (wtr *planarWriter) chromaOffset(px, py int) int {
	cx, cy := px, py
	switch wtr.cfg.Layout {
	case Chroma420:
		cx, cy = px/2, py/2
	case Chroma422:
		cx = px / 2
	case Chroma444:
	}
	return cy*wtr.cfg.UStride + cx*wtr.sample.bytesPerSample
}

func (wtr *planarWriter) Write(x, y int, w lane.Width, blk block.RGBA) {
	px, py := wtr.cfg.OriginX+x, wtr.cfg.OriginY+y
	n := int(w)

	storeY := func(v lane.Vec, px2, py2 int) {
		if !wtr.cfg.FullRange {
			v = toStudioY(v)
		}
		wtr.sample.store(v, wtr.cfg.Y[wtr.lumaOffset(px2, py2):])
	}
	storeUV := func(u, v lane.Vec, px2, py2 int) {
		if !wtr.cfg.FullRange {
			u, v = toStudioC(u), toStudioC(v)
		}
		off := wtr.chromaOffset(px2, py2)
		wtr.sample.store(u, wtr.cfg.U[off:])
		wtr.sample.store(v, wtr.cfg.V[off:])
	}

	switch wtr.cfg.Layout {
	case Chroma420:
		ys, u, v := colormatrix.RGBX4ToYX4UV(wtr.cfg.ColorKind,
			[4]lane.Vec{blk.R[0], blk.R[1], blk.R[2], blk.R[3]},
			[4]lane.Vec{blk.G[0], blk.G[1], blk.G[2], blk.G[3]},
			[4]lane.Vec{blk.B[0], blk.B[1], blk.B[2], blk.B[3]},
		)
		storeY(ys[0], px, py)
		storeY(ys[1], px+n, py)
		storeY(ys[2], px, py+1)
		storeY(ys[3], px+n, py+1)
		storeUV(u, v, px, py)
	case Chroma422:
		yTop0, yTop1, uTop, vTop := colormatrix.RowRGBToYUV(wtr.cfg.ColorKind,
			blk.R[0], blk.G[0], blk.B[0], blk.R[1], blk.G[1], blk.B[1])
		yBot0, yBot1, uBot, vBot := colormatrix.RowRGBToYUV(wtr.cfg.ColorKind,
			blk.R[2], blk.G[2], blk.B[2], blk.R[3], blk.G[3], blk.B[3])
		storeY(yTop0, px, py)
		storeY(yTop1, px+n, py)
		storeY(yBot0, px, py+1)
		storeY(yBot1, px+n, py+1)
		storeUV(uTop, vTop, px, py)
		storeUV(uBot, vBot, px, py+1)
	case Chroma444:
		coords := [4][2]int{{px, py}, {px + n, py}, {px, py + 1}, {px + n, py + 1}}
		rs := [4]lane.Vec{blk.R[0], blk.R[1], blk.R[2], blk.R[3]}
		gs := [4]lane.Vec{blk.G[0], blk.G[1], blk.G[2], blk.G[3]}
		bs := [4]lane.Vec{blk.B[0], blk.B[1], blk.B[2], blk.B[3]}
		for i, c := range coords {
			yy, u, v := colormatrix.RGBToYUV(wtr.cfg.ColorKind, rs[i], gs[i], bs[i])
			u, v = u.AddF(0.5), v.AddF(0.5)
			storeY(yy, c[0], c[1])
			storeUV(u, v, c[0], c[1])
		}
	}
}
