package codec

import (
	"github.com/deepteams/pixelconv/internal/block"
	"github.com/deepteams/pixelconv/internal/colormatrix"
	"github.com/deepteams/pixelconv/internal/lane"
)

// PackedConfig describes a YUYV (YUY2) source/destination: one plane, 4
// bytes per pixel pair, byte order Y0,U,Y1,V - 4:2:2 topology with chroma
// shared across each horizontal pixel pair.
type PackedConfig struct {
	ColorKind        colormatrix.Kind
	FullRange        bool
	Data             []byte
	Stride           int
	OriginX, OriginY int
}

type packedReader struct{ cfg PackedConfig }

// NewPackedReader builds a block.Reader over a YUYV source. Only 8-bit
// samples exist in the packed family, so there is no sampleCodec here.
func NewPackedReader(cfg PackedConfig) block.Reader {
	return &packedReader{cfg: cfg}
}

func (r *packedReader) rowBase(py int) int { return py * r.cfg.Stride }

// loadY reads w contiguous luma samples starting at column col on row py.
// Each Y byte sits 2 apart in the Y0,U,Y1,V quadruplet stream.
func (r *packedReader) loadY(col, py int, w lane.Width) lane.Vec {
	base := r.rowBase(py)
	out := lane.New(w)
	for i := range out.X {
		out.X[i] = float32(r.cfg.Data[base+2*(col+i)]) / 255
	}
	return out
}

// loadUV reads w chroma pairs for the w pixel-pairs starting at pair index
// pairCol on row py.
func (r *packedReader) loadUV(pairCol, py int, w lane.Width) (u, v lane.Vec) {
	base := r.rowBase(py)
	u, v = lane.New(w), lane.New(w)
	for i := range u.X {
		off := base + 4*(pairCol+i)
		u.X[i] = float32(r.cfg.Data[off+1]) / 255
		v.X[i] = float32(r.cfg.Data[off+3]) / 255
	}
	return
}

func (r *packedReader) Read(x, y int, w lane.Width) block.RGBA {
	px, py := r.cfg.OriginX+x, r.cfg.OriginY+y
	n := int(w)

	y00 := r.loadY(px, py, w)
	y01 := r.loadY(px+n, py, w)
	y10 := r.loadY(px, py+1, w)
	y11 := r.loadY(px+n, py+1, w)

	u0, v0 := r.loadUV(px/2, py, w)
	u1, v1 := r.loadUV(px/2, py+1, w)

	if !r.cfg.FullRange {
		y00, y01 = fromStudioY(y00), fromStudioY(y01)
		y10, y11 = fromStudioY(y10), fromStudioY(y11)
		u0, v0 = fromStudioC(u0), fromStudioC(v0)
		u1, v1 = fromStudioC(u1), fromStudioC(v1)
	}
	u0, v0 = u0.SubF(0.5), v0.SubF(0.5)
	u1, v1 = u1.SubF(0.5), v1.SubF(0.5)

	top0, top1 := colormatrix.RowUVToRGB(r.cfg.ColorKind, y00, y01, u0, v0)
	bot0, bot1 := colormatrix.RowUVToRGB(r.cfg.ColorKind, y10, y11, u1, v1)
	quads := [4][3]lane.Vec{top0, top1, bot0, bot1}

	out := block.RGBA{}
	one := lane.Splat(w, 1.0)
	for i := 0; i < 4; i++ {
		out.R[i], out.G[i], out.B[i] = quads[i][0], quads[i][1], quads[i][2]
		out.A[i] = one
	}
	return out
}

type packedWriter struct{ cfg PackedConfig }

// NewPackedWriter builds a block.Writer over a YUYV destination.
func NewPackedWriter(cfg PackedConfig) block.Writer {
	return &packedWriter{cfg: cfg}
}

func (wtr *packedWriter) rowBase(py int) int { return py * wtr.cfg.Stride }

func (wtr *packedWriter) storeY(col, py int, v lane.Vec) {
	base := wtr.rowBase(py)
	for i, x := range v.X {
		wtr.cfg.Data[base+2*(col+i)] = byte(clampRound8(x))
	}
}

func (wtr *packedWriter) storeUV(pairCol, py int, u, v lane.Vec) {
	base := wtr.rowBase(py)
	for i := range u.X {
		off := base + 4*(pairCol+i)
		wtr.cfg.Data[off+1] = byte(clampRound8(u.X[i]))
		wtr.cfg.Data[off+3] = byte(clampRound8(v.X[i]))
	}
}

func clampRound8(x float32) int {
	v := x*255 + 0.5
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return int(v)
}

func (wtr *packedWriter) Write(x, y int, w lane.Width, blk block.RGBA) {
	px, py := wtr.cfg.OriginX+x, wtr.cfg.OriginY+y
	n := int(w)

	yTop0, yTop1, uTop, vTop := colormatrix.RowRGBToYUV(wtr.cfg.ColorKind,
		blk.R[0], blk.G[0], blk.B[0], blk.R[1], blk.G[1], blk.B[1])
	yBot0, yBot1, uBot, vBot := colormatrix.RowRGBToYUV(wtr.cfg.ColorKind,
		blk.R[2], blk.G[2], blk.B[2], blk.R[3], blk.G[3], blk.B[3])

	if !wtr.cfg.FullRange {
		yTop0, yTop1 = toStudioY(yTop0), toStudioY(yTop1)
		yBot0, yBot1 = toStudioY(yBot0), toStudioY(yBot1)
		uTop, vTop = toStudioC(uTop), toStudioC(vTop)
		uBot, vBot = toStudioC(uBot), toStudioC(vBot)
	}

	wtr.storeY(px, py, yTop0)
	wtr.storeY(px+n, py, yTop1)
	wtr.storeY(px, py+1, yBot0)
	wtr.storeY(px+n, py+1, yBot1)

	wtr.storeUV(px/2, py, uTop, vTop)
	wtr.storeUV(px/2, py+1, uBot, vBot)
}
