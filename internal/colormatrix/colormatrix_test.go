package colormatrix

import (
	"math"
	"testing"

	"github.com/deepteams/pixelconv/internal/lane"
)

func v1(x float32) lane.Vec { return lane.Vec{X: []float32{x}} }

func approx(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestYUVRoundTripSDR(t *testing.T) {
	kinds := []Kind{BT601, BT709, BT2020}
	rgbs := [][3]float32{{0, 0, 0}, {1, 1, 1}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.25, 0.5, 0.75}}

	for _, k := range kinds {
		for _, c := range rgbs {
			y, u, v := RGBToYUV(k, v1(c[0]), v1(c[1]), v1(c[2]))
			r, g, b := YUVToRGB(k, y, u, v)
			if !approx(r.X[0], c[0], 1e-4) || !approx(g.X[0], c[1], 1e-4) || !approx(b.X[0], c[2], 1e-4) {
				t.Errorf("kind %d: round trip %v -> (y=%v u=%v v=%v) -> (%v,%v,%v)",
					k, c, y.X[0], u.X[0], v.X[0], r.X[0], g.X[0], b.X[0])
			}
		}
	}
}

func TestWhiteIsLumaOne(t *testing.T) {
	for _, k := range []Kind{BT601, BT709, BT2020} {
		y, u, v := RGBToYUV(k, v1(1), v1(1), v1(1))
		if !approx(y.X[0], 1.0, 1e-5) {
			t.Errorf("kind %d: white luma = %v, want 1.0", k, y.X[0])
		}
		if !approx(u.X[0], 0.0, 1e-5) || !approx(v.X[0], 0.0, 1e-5) {
			t.Errorf("kind %d: white chroma = (%v,%v), want (0,0)", k, u.X[0], v.X[0])
		}
	}
}

func TestBT2100RoundTrip(t *testing.T) {
	for _, k := range []Kind{BT2100PQ, BT2100HLG} {
		rgbs := [][3]float32{{0.2, 0.2, 0.2}, {0.8, 0.1, 0.3}, {0.0, 0.0, 0.0}}
		for _, c := range rgbs {
			y, u, v := RGBToYUV(k, v1(c[0]), v1(c[1]), v1(c[2]))
			r, g, b := YUVToRGB(k, y, u, v)
			if !approx(r.X[0], c[0], 1e-3) || !approx(g.X[0], c[1], 1e-3) || !approx(b.X[0], c[2], 1e-3) {
				t.Errorf("kind %d: round trip %v -> (%v,%v,%v)", k, c, r.X[0], g.X[0], b.X[0])
			}
		}
	}
}

func TestYX4BlockMatchesPerPixel(t *testing.T) {
	k := BT709
	y00, y01, y10, y11 := v1(0.5), v1(0.6), v1(0.4), v1(0.55)
	u, v := v1(0.1), v1(-0.2)

	block := YX4UVToRGB(k, y00, y01, y10, y11, u, v)
	want00r, want00g, want00b := YUVToRGB(k, y00, u, v)

	if !approx(block[0][0].X[0], want00r.X[0], 1e-5) ||
		!approx(block[0][1].X[0], want00g.X[0], 1e-5) ||
		!approx(block[0][2].X[0], want00b.X[0], 1e-5) {
		t.Errorf("block[0] = %v, want (%v,%v,%v)", block[0], want00r.X[0], want00g.X[0], want00b.X[0])
	}
}
