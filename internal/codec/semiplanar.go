package codec

import (
	"github.com/deepteams/pixelconv/internal/block"
	"github.com/deepteams/pixelconv/internal/colormatrix"
	"github.com/deepteams/pixelconv/internal/lane"
)

// SemiPlanarConfig describes an NV12 (8-bit) or P010/P012 (10/12-bit)
// source/destination: one luma plane plus one interleaved U,V,U,V... plane
// at half vertical (and, since the pairs carry both channels, full
// horizontal byte) resolution - 4:2:0 topology.
type SemiPlanarConfig struct {
	BitsPerComponent int
	Endian           lane.Endian
	ColorKind        colormatrix.Kind
	FullRange        bool
	Y, UV            []byte
	YStride          int
	UVStride         int
	OriginX, OriginY int
}

type semiPlanarReader struct {
	cfg    SemiPlanarConfig
	sample sampleCodec
}

// NewSemiPlanarReader builds a block.Reader over an NV12/P01X source.
func NewSemiPlanarReader(cfg SemiPlanarConfig) block.Reader {
	return &semiPlanarReader{cfg: cfg, sample: newSampleCodec(cfg.BitsPerComponent, cfg.Endian)}
}

func (r *semiPlanarReader) lumaOffset(px, py int) int {
	return py*r.cfg.YStride + px*r.sample.bytesPerSample
}

func (r *semiPlanarReader) uvOffset(px, py int) int {
	return (py/2)*r.cfg.UVStride + (px/2)*2*r.sample.bytesPerSample
}

func (r *semiPlanarReader) Read(x, y int, w lane.Width) block.RGBA {
	px, py := r.cfg.OriginX+x, r.cfg.OriginY+y
	n := int(w)

	y00 := r.sample.load(r.cfg.Y[r.lumaOffset(px, py):], w)
	y01 := r.sample.load(r.cfg.Y[r.lumaOffset(px+n, py):], w)
	y10 := r.sample.load(r.cfg.Y[r.lumaOffset(px, py+1):], w)
	y11 := r.sample.load(r.cfg.Y[r.lumaOffset(px+n, py+1):], w)

	uvOff := r.uvOffset(px, py)
	var u, v lane.Vec
	maxValue := float32((int(1) << uint(r.cfg.BitsPerComponent)) - 1)
	if r.sample.bytesPerSample == 1 {
		u, v = lane.LoadInterleaved2U8(r.cfg.UV[uvOff:], w, maxValue)
	} else {
		u, v = lane.LoadInterleaved2U16(r.cfg.UV[uvOff:], w, r.cfg.Endian, maxValue)
	}

	if !r.cfg.FullRange {
		y00, y01, y10, y11 = fromStudioY(y00), fromStudioY(y01), fromStudioY(y10), fromStudioY(y11)
		u, v = fromStudioC(u), fromStudioC(v)
	}
	u, v = u.SubF(0.5), v.SubF(0.5)

	quads := colormatrix.YX4UVToRGB(r.cfg.ColorKind, y00, y01, y10, y11, u, v)

	out := block.RGBA{}
	one := lane.Splat(w, 1.0)
	for i := 0; i < 4; i++ {
		out.R[i], out.G[i], out.B[i] = quads[i][0], quads[i][1], quads[i][2]
		out.A[i] = one
	}
	return out
}

type semiPlanarWriter struct {
	cfg    SemiPlanarConfig
	sample sampleCodec
}

// NewSemiPlanarWriter builds a block.Writer over an NV12/P01X destination.
func NewSemiPlanarWriter(cfg SemiPlanarConfig) block.Writer {
	return &semiPlanarWriter{cfg: cfg, sample: newSampleCodec(cfg.BitsPerComponent, cfg.Endian)}
}

func (wtr *semiPlanarWriter) lumaOffset(px, py int) int {
	return py*wtr.cfg.YStride + px*wtr.sample.bytesPerSample
}

func (wtr *semiPlanarWriter) uvOffset(px, py int) int {
	return (py/2)*wtr.cfg.UVStride + (px/2)*2*wtr.sample.bytesPerSample
}

func (wtr *semiPlanarWriter) Write(x, y int, w lane.Width, blk block.RGBA) {
	px, py := wtr.cfg.OriginX+x, wtr.cfg.OriginY+y
	n := int(w)

	ys, u, v := colormatrix.RGBX4ToYX4UV(wtr.cfg.ColorKind,
		[4]lane.Vec{blk.R[0], blk.R[1], blk.R[2], blk.R[3]},
		[4]lane.Vec{blk.G[0], blk.G[1], blk.G[2], blk.G[3]},
		[4]lane.Vec{blk.B[0], blk.B[1], blk.B[2], blk.B[3]},
	)

	if !wtr.cfg.FullRange {
		for i := range ys {
			ys[i] = toStudioY(ys[i])
		}
		u, v = toStudioC(u), toStudioC(v)
	}

	wtr.sample.store(ys[0], wtr.cfg.Y[wtr.lumaOffset(px, py):])
	wtr.sample.store(ys[1], wtr.cfg.Y[wtr.lumaOffset(px+n, py):])
	wtr.sample.store(ys[2], wtr.cfg.Y[wtr.lumaOffset(px, py+1):])
	wtr.sample.store(ys[3], wtr.cfg.Y[wtr.lumaOffset(px+n, py+1):])

	uvOff := wtr.uvOffset(px, py)
	if wtr.sample.bytesPerSample == 1 {
		lane.StoreInterleaved2U8(u, v, wtr.cfg.UV[uvOff:])
	} else {
		lane.StoreInterleaved2U16(u, v, wtr.cfg.UV[uvOff:], wtr.cfg.BitsPerComponent, wtr.cfg.Endian)
	}
}
