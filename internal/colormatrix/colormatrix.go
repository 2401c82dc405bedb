// Package colormatrix implements the YUV<->RGB conversions for BT.601,
// BT.709 and BT.2020 (closed-form 3x3 matrices derived from Kr/Kg/Kb) and
// for BT.2100 PQ/HLG (via an RGB->LMS->YUV' path), lane-wise and in 2x2
// block form.
package colormatrix

import "github.com/deepteams/pixelconv/internal/lane"

// Kind identifies a YUV color space.
type Kind int

const (
	BT601 Kind = iota
	BT709
	BT2020
	BT2100PQ
	BT2100HLG
)

// mat3 is a row-major 3x3 matrix; rows are indexed by output channel.
type mat3 [3][3]float32

// yuvToRGB[k]: rows R,G,B; cols Y,U,V.
// rgbToYUV[k]: rows Y,U,V; cols R,G,B.
var (
	yuvToRGBMat [3]mat3
	rgbToYUVMat [3]mat3
)

func init() {
	// Kr, Kg, Kb per space. BT.2020's Kg is 1-Kr-Kb = 0.6780 (not the 0.322
	// literal some BT.2100-derived references carry - that value belongs to
	// a different constant and does not satisfy Kr+Kg+Kb=1).
	coeffs := [3][3]float32{
		{0.299, 0.587, 0.114},     // BT.601
		{0.2126, 0.7152, 0.0722},  // BT.709
		{0.2627, 0.6780, 0.0593},  // BT.2020
	}
	for i, c := range coeffs {
		kr, kg, kb := c[0], c[1], c[2]
		yuvToRGBMat[i] = mat3{
			{1.0, 0.0, 2.0 - 2.0*kr},
			{1.0, (-(kb / kg)) * (2.0 - 2.0*kb), (-(kr / kg)) * (2.0 - 2.0*kr)},
			{1.0, 2.0 - 2.0*kb, 0.0},
		}
		rgbToYUVMat[i] = mat3{
			{kr, kg, kb},
			{-0.5 * (kr / (1.0 - kb)), -0.5 * (kg / (1.0 - kb)), 0.5},
			{0.5, -0.5 * (kg / (1.0 - kr)), -0.5 * (kb / (1.0 - kr))},
		}
	}
}

func sdrMatIndex(k Kind) int {
	switch k {
	case BT601:
		return 0
	case BT709:
		return 1
	case BT2020:
		return 2
	default:
		return 1
	}
}

// YUVToRGB converts one lane-wide sample of y,u,v (u,v signed about 0) to r,g,b.
func YUVToRGB(k Kind, y, u, v lane.Vec) (r, g, b lane.Vec) {
	if k == BT2100PQ || k == BT2100HLG {
		return bt2100YUVToRGB(k, y, u, v)
	}
	m := yuvToRGBMat[sdrMatIndex(k)]
	r = y.Add(v.MulF(m[0][2]))
	g = y.Add(v.MulF(m[1][2]).Add(u.MulF(m[1][1])))
	b = y.Add(u.MulF(m[2][1]))
	return
}

// RGBToYUV converts one lane-wide sample of r,g,b to y,u,v.
func RGBToYUV(k Kind, r, g, b lane.Vec) (y, u, v lane.Vec) {
	if k == BT2100PQ || k == BT2100HLG {
		return bt2100RGBToYUV(k, r, g, b)
	}
	m := rgbToYUVMat[sdrMatIndex(k)]
	y = r.MulF(m[0][0]).Add(g.MulF(m[0][1])).Add(b.MulF(m[0][2]))
	u = r.MulF(m[1][0]).Add(g.MulF(m[1][1])).Add(b.MulF(m[1][2]))
	v = r.MulF(m[2][0]).Add(g.MulF(m[2][1])).Add(b.MulF(m[2][2]))
	return
}

// RowUVToRGB converts one luma row (yLeft holds the row's first LEN
// columns, yRight the next LEN) whose chroma u,v carry one sample per
// adjacent 2-column pair to left/right (r,g,b) triples.
// This is the per-row primitive shared by 4:2:0 (same u,v fed to both
// rows, see YX4UVToRGB) and 4:2:2 (each row has its own u,v).
func RowUVToRGB(k Kind, yLeft, yRight, u, v lane.Vec) (left, right [3]lane.Vec) {
	if k == BT2100PQ || k == BT2100HLG {
		return bt2100RowUVToRGB(k, yLeft, yRight, u, v)
	}
	m := yuvToRGBMat[sdrMatIndex(k)]

	prepare := func(u, v lane.Vec) (r, g, b lane.Vec) {
		r = v.MulF(m[0][2])
		g = v.MulF(m[1][2]).Add(u.MulF(m[1][1]))
		b = u.MulF(m[2][1])
		return
	}

	leftU, rightU := u.Zip(u)
	leftV, rightV := v.Zip(v)

	rLeft, gLeft, bLeft := prepare(leftU, leftV)
	rRight, gRight, bRight := prepare(rightU, rightV)

	left = [3]lane.Vec{yLeft.Add(rLeft), yLeft.Add(gLeft), yLeft.Add(bLeft)}
	right = [3]lane.Vec{yRight.Add(rRight), yRight.Add(gRight), yRight.Add(bRight)}
	return
}

// YX4UVToRGB converts one 2x2 luma block (y00,y01 top row; y10,y11 bottom
// row) sharing one chroma sample pair (u,v) to four (r,g,b) triples, in
// row-major block order [00,01,10,11].
func YX4UVToRGB(k Kind, y00, y01, y10, y11, u, v lane.Vec) [4][3]lane.Vec {
	top0, top1 := RowUVToRGB(k, y00, y01, u, v)
	bot0, bot1 := RowUVToRGB(k, y10, y11, u, v)
	return [4][3]lane.Vec{top0, top1, bot0, bot1}
}

// RGBX4ToYX4UV is the inverse of YX4UVToRGB: it averages a 2x2 RGB block
// down to one chroma sample pair while keeping one luma sample per pixel.
func RGBX4ToYX4UV(k Kind, r, g, b [4]lane.Vec) (y [4]lane.Vec, u, v lane.Vec) {
	if k == BT2100PQ || k == BT2100HLG {
		return bt2100RGBX4ToYX4UV(k, r, g, b)
	}
	m := rgbToYUVMat[sdrMatIndex(k)]

	calcY := func(r, g, b lane.Vec) lane.Vec {
		return r.MulF(m[0][0]).Add(g.MulF(m[0][1])).Add(b.MulF(m[0][2]))
	}
	for i := 0; i < 4; i++ {
		y[i] = calcY(r[i], g[i], b[i])
	}

	rgb0R := r[0].Add(r[2])
	rgb0G := g[0].Add(g[2])
	rgb0B := b[0].Add(b[2])
	rgb1R := r[1].Add(r[3])
	rgb1G := g[1].Add(g[3])
	rgb1B := b[1].Add(b[3])

	rgb0R, rgb1R = rgb0R.Unzip(rgb1R)
	rgb0G, rgb1G = rgb0G.Unzip(rgb1G)
	rgb0B, rgb1B = rgb0B.Unzip(rgb1B)

	avgR := rgb0R.Add(rgb1R).MulF(0.25)
	avgG := rgb0G.Add(rgb1G).MulF(0.25)
	avgB := rgb0B.Add(rgb1B).MulF(0.25)

	u = avgR.MulF(m[1][0]).Add(avgG.MulF(m[1][1])).Add(avgB.MulF(m[1][2])).AddF(0.5)
	v = avgR.MulF(m[2][0]).Add(avgG.MulF(m[2][1])).Add(avgB.MulF(m[2][2])).AddF(0.5)
	return
}

// RowRGBToYUV is the 4:2:2 counterpart of RGBX4ToYX4UV: it keeps one luma
// per pixel but averages chroma across only the two columns of a single
// row (4:2:2 sub-samples horizontally, not vertically).
func RowRGBToYUV(k Kind, rLeft, gLeft, bLeft, rRight, gRight, bRight lane.Vec) (yLeft, yRight, u, v lane.Vec) {
	if k == BT2100PQ || k == BT2100HLG {
		return bt2100RowRGBToYUV(k, rLeft, gLeft, bLeft, rRight, gRight, bRight)
	}
	m := rgbToYUVMat[sdrMatIndex(k)]
	calcY := func(r, g, b lane.Vec) lane.Vec {
		return r.MulF(m[0][0]).Add(g.MulF(m[0][1])).Add(b.MulF(m[0][2]))
	}
	yLeft = calcY(rLeft, gLeft, bLeft)
	yRight = calcY(rRight, gRight, bRight)

	rEven, rOdd := rLeft.Unzip(rRight)
	gEven, gOdd := gLeft.Unzip(gRight)
	bEven, bOdd := bLeft.Unzip(bRight)

	avgR := rEven.Add(rOdd).MulF(0.5)
	avgG := gEven.Add(gOdd).MulF(0.5)
	avgB := bEven.Add(bOdd).MulF(0.5)

	u = avgR.MulF(m[1][0]).Add(avgG.MulF(m[1][1])).Add(avgB.MulF(m[1][2])).AddF(0.5)
	v = avgR.MulF(m[2][0]).Add(avgG.MulF(m[2][1])).Add(avgB.MulF(m[2][2])).AddF(0.5)
	return
}
