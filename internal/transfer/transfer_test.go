package transfer

import (
	"math"
	"testing"

	"github.com/deepteams/pixelconv/internal/lane"
)

func scalar(k Kind, fwd bool, x float32) float32 {
	v := lane.Vec{X: []float32{x}}
	var out lane.Vec
	if fwd {
		out = LinearToScaled(k, v)
	} else {
		out = ScaledToLinear(k, v)
	}
	return out.X[0]
}

func almostEqual(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestRoundTrip(t *testing.T) {
	kinds := []Kind{Linear, Gamma22, Gamma28, SRGB, SDR, BT2100PQ, BT2100HLG}
	samples := []float32{0.0, 0.001, 0.018, 0.05, 0.25, 0.5, 0.75, 1.0}

	for _, k := range kinds {
		for _, s := range samples {
			scaled := scalar(k, true, s)
			back := scalar(k, false, scaled)
			if !almostEqual(back, s, 1e-3) {
				t.Errorf("kind %d: round trip %v -> %v -> %v, want ~%v", k, s, scaled, back, s)
			}
		}
	}
}

func TestSRGBKnownPoints(t *testing.T) {
	// Linear 1.0 maps to scaled 1.0 for sRGB.
	if got := scalar(SRGB, true, 1.0); !almostEqual(got, 1.0, 1e-5) {
		t.Errorf("sRGB linear_to_scaled(1.0) = %v, want 1.0", got)
	}
	// Below the linear segment threshold, the linear segment applies.
	if got := scalar(SRGB, true, 0.001); !almostEqual(got, 0.001*12.92, 1e-5) {
		t.Errorf("sRGB linear_to_scaled(0.001) = %v, want %v", got, 0.001*12.92)
	}
}

func TestLaneWidthIndependence(t *testing.T) {
	x := float32(0.4)
	v4 := lane.Splat(lane.Width4, x)
	out := LinearToScaled(SDR, v4)
	want := scalar(SDR, true, x)
	for i, got := range out.X {
		if !almostEqual(got, want, 1e-6) {
			t.Errorf("lane %d: got %v, want %v", i, got, want)
		}
	}
}
