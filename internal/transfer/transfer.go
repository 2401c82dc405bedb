// Package transfer implements the opto-electronic transfer functions used to
// move pixel samples between their stored ("scaled") representation and
// scene-linear light, lane-wise.
package transfer

import "github.com/deepteams/pixelconv/internal/lane"

// Kind identifies a transfer function.
type Kind int

const (
	Linear Kind = iota
	Gamma22
	Gamma28
	SRGB
	SDR
	BT2100PQ
	BT2100HLG
)

// LinearToScaled converts scene-linear samples in v to the curve's scaled
// (stored) representation.
func LinearToScaled(k Kind, v lane.Vec) lane.Vec {
	switch k {
	case Linear:
		return v
	case Gamma22:
		return gammaLinearToScaled(v, 2.2)
	case Gamma28:
		return gammaLinearToScaled(v, 2.8)
	case SRGB:
		return srgbLinearToScaled(v)
	case SDR:
		return sdrLinearToScaled(v)
	case BT2100PQ:
		return pqLinearToScaled(v)
	case BT2100HLG:
		return hlgLinearToScaled(v)
	default:
		return v
	}
}

// ScaledToLinear converts stored samples in v back to scene-linear light.
func ScaledToLinear(k Kind, v lane.Vec) lane.Vec {
	switch k {
	case Linear:
		return v
	case Gamma22:
		return gammaScaledToLinear(v, 2.2)
	case Gamma28:
		return gammaScaledToLinear(v, 2.8)
	case SRGB:
		return srgbScaledToLinear(v)
	case SDR:
		return sdrScaledToLinear(v)
	case BT2100PQ:
		return pqScaledToLinear(v)
	case BT2100HLG:
		return hlgScaledToLinear(v)
	default:
		return v
	}
}

func gammaLinearToScaled(i lane.Vec, gamma float32) lane.Vec {
	i = i.MaxF(0.0)
	return i.PowF(1.0 / gamma)
}

func gammaScaledToLinear(i lane.Vec, gamma float32) lane.Vec {
	i = i.MaxF(0.0)
	return i.PowF(gamma)
}

func srgbLinearToScaled(i lane.Vec) lane.Vec {
	mask := i.LeF(0.0031308)
	a := i.MulF(12.92)
	b := lane.Splat(i.Width(), 1.055).Mul(i.PowF(1.0 / 2.4)).SubF(0.055)
	return lane.Select(a, b, mask)
}

func srgbScaledToLinear(i lane.Vec) lane.Vec {
	mask := i.LeF(0.04045)
	a := i.DivF(12.92)
	b := i.AddF(0.055).DivF(1.055).PowF(2.4)
	return lane.Select(a, b, mask)
}

func sdrLinearToScaled(i lane.Vec) lane.Vec {
	mask := i.LtF(0.01805397)
	a := lane.Splat(i.Width(), 4.5).Mul(i)
	b := lane.Splat(i.Width(), 1.099).Mul(i.PowF(0.45)).SubF(0.099)
	return lane.Select(a, b, mask)
}

func sdrScaledToLinear(i lane.Vec) lane.Vec {
	mask := i.LtF(0.081490956)
	a := i.DivF(4.5)
	b := i.AddF(0.0993).DivF(1.099).PowF(1.0 / 0.45)
	return lane.Select(a, b, mask)
}

// BT.2100 PQ constants (ITU-R BT.2100).
const (
	pqM1 float32 = 0.15930176
	pqM2 float32 = 78.84375
	pqC1 float32 = 0.8359375
	pqC2 float32 = 18.851563
	pqC3 float32 = 18.6875
	pqL  float32 = 10000.0
)

// pqLinearToScaled is the PQ inverse EOTF.
func pqLinearToScaled(i lane.Vec) lane.Vec {
	i = i.MaxF(0.0)
	i = i.DivF(pqL)
	ym1 := i.PowF(pqM1)
	a := ym1.MulF(pqC2).AddF(pqC1)
	b := ym1.MulF(pqC3).AddF(1.0)
	return a.Div(b).PowF(pqM2)
}

// pqScaledToLinear is the PQ EOTF.
func pqScaledToLinear(i lane.Vec) lane.Vec {
	i = i.MaxF(0.0)
	epow1dm2 := i.PowF(1.0 / pqM2)
	a := epow1dm2.SubF(pqC1).MaxF(0.0)
	b := lane.Splat(i.Width(), pqC2).Sub(epow1dm2.MulF(pqC3))
	return a.Div(b).PowF(1.0 / pqM1).MulF(pqL)
}

// BT.2100 HLG constants (ITU-R BT.2100).
const (
	hlgA float32 = 0.17883277
	hlgB float32 = 0.28466892
	hlgC float32 = 0.5599107
)

const hlgE float32 = 2.718281828459045

func hlgLinearToScaled(i lane.Vec) lane.Vec {
	i = i.MaxF(0.0)
	mask := i.LeF(1.0 / 12.0)
	a := i.MulF(3.0).Sqrt()
	b := lane.Splat(i.Width(), hlgA).Mul(lane.Splat(i.Width(), 12.0).Mul(i).SubF(hlgB).Ln()).AddF(hlgC)
	return lane.Select(a, b, mask)
}

func hlgScaledToLinear(i lane.Vec) lane.Vec {
	i = i.MaxF(0.0)
	mask := i.LeF(0.5)
	a := i.PowF(2.0).DivF(3.0)
	b := lane.Splat(i.Width(), hlgE).Pow(i.SubF(hlgC).DivF(hlgA)).AddF(hlgB).DivF(12.0)
	return lane.Select(a, b, mask)
}
