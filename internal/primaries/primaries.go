// Package primaries implements RGB<->CIE 1931 XYZ conversion for the
// gamuts this engine supports, and RGB-to-RGB conversion through XYZ for
// image data as it crosses from one gamut to another (e.g. BT.2020 HDR
// source composited with a BT.709 SDR target).
package primaries

import (
	"sync"

	"github.com/deepteams/pixelconv/internal/lane"
)

// Kind identifies a color gamut (set of RGB primaries) with a D65 white point.
type Kind int

const (
	BT601NTSC Kind = iota
	BT709
	BT2020
)

// mat3 rows are output components, columns are input components.
type mat3 [3][3]float32

// RGB->XYZ matrices, precomputed from each gamut's chromaticity coordinates
// and the D65 white point (Y normalized to 1); columns are R, G, B.
var rgbToXYZ = [3]mat3{
	{ // BT601NTSC (SMPTE-C primaries)
		{0.3935209, 0.36525807, 0.19167694},
		{0.21237636, 0.70105986, 0.08656378},
		{0.01873909, 0.11193393, 0.95838473},
	},
	{ // BT709
		{0.41239083, 0.35758436, 0.1804808},
		{0.21263903, 0.7151687, 0.07219231},
		{0.01933082, 0.11919474, 0.95053214},
	},
	{ // BT2020
		{0.63695806, 0.14461692, 0.16888095},
		{0.2627002, 0.6779981, 0.05930171},
		{0.0, 0.028072689, 1.060985},
	},
}

// xyzToRGB is the matrix inverse of rgbToXYZ, computed once on first use
// rather than transcribed as separate literals, so the two tables can never
// drift apart.
var (
	xyzToRGB     [3]mat3
	xyzToRGBOnce sync.Once
)

func initXYZToRGB() {
	xyzToRGBOnce.Do(func() {
		for i, m := range rgbToXYZ {
			xyzToRGB[i] = invert3(m)
		}
	})
}

func invert3(m mat3) mat3 {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	invDet := 1.0 / det
	var out mat3
	out[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	out[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	out[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	out[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	out[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	out[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	out[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	out[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	out[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	return out
}

func apply(m mat3, a, b, c lane.Vec) (x, y, z lane.Vec) {
	x = a.MulF(m[0][0]).Add(b.MulF(m[0][1])).Add(c.MulF(m[0][2]))
	y = a.MulF(m[1][0]).Add(b.MulF(m[1][1])).Add(c.MulF(m[1][2]))
	z = a.MulF(m[2][0]).Add(b.MulF(m[2][1])).Add(c.MulF(m[2][2]))
	return
}

// RGBToXYZ converts r,g,b (gamut k, linear light) to CIE 1931 XYZ.
func RGBToXYZ(k Kind, r, g, b lane.Vec) (x, y, z lane.Vec) {
	return apply(rgbToXYZ[k], r, g, b)
}

// XYZToRGB converts CIE 1931 XYZ to r,g,b in gamut k (linear light).
func XYZToRGB(k Kind, x, y, z lane.Vec) (r, g, b lane.Vec) {
	initXYZToRGB()
	return apply(xyzToRGB[k], x, y, z)
}

// Convert maps linear-light r,g,b from one gamut to another via XYZ. It is
// a no-op (same values returned) when from == to.
func Convert(from, to Kind, r, g, b lane.Vec) (lane.Vec, lane.Vec, lane.Vec) {
	if from == to {
		return r, g, b
	}
	x, y, z := RGBToXYZ(from, r, g, b)
	return XYZToRGB(to, x, y, z)
}
