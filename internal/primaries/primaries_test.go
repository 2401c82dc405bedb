package primaries

import (
	"math"
	"testing"

	"github.com/deepteams/pixelconv/internal/lane"
)

func v1(x float32) lane.Vec { return lane.Vec{X: []float32{x}} }

func approx(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestXYZRoundTrip(t *testing.T) {
	for _, k := range []Kind{BT601NTSC, BT709, BT2020} {
		samples := [][3]float32{{1, 1, 1}, {0.2, 0.5, 0.8}, {0, 0, 0}, {1, 0, 0}}
		for _, c := range samples {
			x, y, z := RGBToXYZ(k, v1(c[0]), v1(c[1]), v1(c[2]))
			r, g, b := XYZToRGB(k, x, y, z)
			if !approx(r.X[0], c[0], 1e-3) || !approx(g.X[0], c[1], 1e-3) || !approx(b.X[0], c[2], 1e-3) {
				t.Errorf("kind %d: round trip %v -> (%v,%v,%v)", k, c, r.X[0], g.X[0], b.X[0])
			}
		}
	}
}

func TestWhiteMapsToWhite(t *testing.T) {
	_, y, _ := RGBToXYZ(BT709, v1(1), v1(1), v1(1))
	if !approx(y.X[0], 1.0, 1e-3) {
		t.Errorf("white Y = %v, want ~1.0", y.X[0])
	}
}

func TestConvertSameGamutIdentity(t *testing.T) {
	r, g, b := Convert(BT709, BT709, v1(0.3), v1(0.4), v1(0.5))
	if r.X[0] != 0.3 || g.X[0] != 0.4 || b.X[0] != 0.5 {
		t.Errorf("same-gamut convert changed values: (%v,%v,%v)", r.X[0], g.X[0], b.X[0])
	}
}

func TestCrossGamutChangesValues(t *testing.T) {
	r, g, b := Convert(BT709, BT2020, v1(0.9), v1(0.1), v1(0.1))
	if approx(r.X[0], 0.9, 1e-4) && approx(g.X[0], 0.1, 1e-4) && approx(b.X[0], 0.1, 1e-4) {
		t.Errorf("expected cross-gamut conversion to change saturated red, got (%v,%v,%v)", r.X[0], g.X[0], b.X[0])
	}
}
