// Package lane implements the portable SIMD-width abstraction the pixel
// pipeline is built on: uniform float32 arithmetic over a logical vector of
// Width elements, plus the packed load/store and channel
// interleave/deinterleave helpers the block model needs.
//
// Go has no portable way to address 256/512-bit registers without per-arch
// assembly, so "lane width" here is a logical batch size processed by a
// plain unrolled loop rather than a hardware vector register. This mirrors
// how the teacher package's internal/dsp dispatches pure-Go vs. assembly
// implementations by detected CPU feature (see Best in dispatch.go):
// the dispatch decision is real, the inner loop is portable Go.
package lane

import "math"

// Width is the number of float32 lanes processed per pipeline iteration.
type Width int

const (
	Width1  Width = 1
	Width4  Width = 4
	Width8  Width = 8
	Width16 Width = 16
)

// Vec is a fixed-width vector of float32 lanes.
type Vec struct {
	X []float32
}

// New allocates a zeroed vector of the given width.
func New(w Width) Vec {
	return Vec{X: make([]float32, w)}
}

// Splat returns a vector with every lane set to v.
func Splat(w Width, v float32) Vec {
	out := New(w)
	for i := range out.X {
		out.X[i] = v
	}
	return out
}

// Width reports the number of lanes in v.
func (v Vec) Width() Width { return Width(len(v.X)) }

// Mask is a per-lane boolean comparison result.
type Mask []bool

func (v Vec) binOp(o Vec, f func(a, b float32) float32) Vec {
	out := New(v.Width())
	for i := range v.X {
		out.X[i] = f(v.X[i], o.X[i])
	}
	return out
}

func (v Vec) Add(o Vec) Vec { return v.binOp(o, func(a, b float32) float32 { return a + b }) }
func (v Vec) Sub(o Vec) Vec { return v.binOp(o, func(a, b float32) float32 { return a - b }) }
func (v Vec) Mul(o Vec) Vec { return v.binOp(o, func(a, b float32) float32 { return a * b }) }
func (v Vec) Div(o Vec) Vec { return v.binOp(o, func(a, b float32) float32 { return a / b }) }
func (v Vec) Max(o Vec) Vec {
	return v.binOp(o, func(a, b float32) float32 {
		if a > b {
			return a
		}
		return b
	})
}

func (v Vec) AddF(f float32) Vec { return v.Add(Splat(v.Width(), f)) }
func (v Vec) SubF(f float32) Vec { return v.Sub(Splat(v.Width(), f)) }
func (v Vec) MulF(f float32) Vec { return v.Mul(Splat(v.Width(), f)) }
func (v Vec) DivF(f float32) Vec { return v.Div(Splat(v.Width(), f)) }
func (v Vec) MaxF(f float32) Vec { return v.Max(Splat(v.Width(), f)) }

// Lt returns a mask of v[i] < o[i].
func (v Vec) Lt(o Vec) Mask {
	m := make(Mask, len(v.X))
	for i := range v.X {
		m[i] = v.X[i] < o.X[i]
	}
	return m
}

func (v Vec) LtF(f float32) Mask { return v.Lt(Splat(v.Width(), f)) }

// Le returns a mask of v[i] <= o[i].
func (v Vec) Le(o Vec) Mask {
	m := make(Mask, len(v.X))
	for i := range v.X {
		m[i] = v.X[i] <= o.X[i]
	}
	return m
}

func (v Vec) LeF(f float32) Mask { return v.Le(Splat(v.Width(), f)) }

// Select returns a[i] where mask[i] is true, otherwise b[i].
func Select(a, b Vec, mask Mask) Vec {
	out := New(a.Width())
	for i := range out.X {
		if mask[i] {
			out.X[i] = a.X[i]
		} else {
			out.X[i] = b.X[i]
		}
	}
	return out
}

// Sqrt computes the elementwise square root. Negative lanes are clamped to
// zero before the computation so callers never observe a NaN.
func (v Vec) Sqrt() Vec {
	out := New(v.Width())
	for i, x := range v.X {
		if x < 0 {
			x = 0
		}
		out.X[i] = float32(math.Sqrt(float64(x)))
	}
	return out
}

// Ln computes the elementwise natural log. Negative inputs produce NaN,
// matching the reference semantics (no clamping here - callers that need
// NaN-safety clamp before calling, as the transfer functions do).
func (v Vec) Ln() Vec {
	out := New(v.Width())
	for i, x := range v.X {
		out.X[i] = float32(math.Log(float64(x)))
	}
	return out
}

// Pow computes the elementwise v[i] ^ p[i]. Negative bases produce NaN
// except where the exponent is an integer, matching math.Pow/Rust's powf.
func (v Vec) Pow(p Vec) Vec {
	out := New(v.Width())
	for i := range v.X {
		out.X[i] = float32(math.Pow(float64(v.X[i]), float64(p.X[i])))
	}
	return out
}

func (v Vec) PowF(p float32) Vec { return v.Pow(Splat(v.Width(), p)) }

// Zip interleaves v and o. Each is split into a low and high half (of
// Width/2 lanes); the low half of the result alternates v's and o's low
// halves, the high half alternates v's and o's high halves. For Width==1
// it degenerates to the identity pair (v, o) - there is nothing to
// interleave with a single lane.
//
// Example (Width==4): v=[v0,v1,v2,v3], o=[o0,o1,o2,o3]
//
//	lo = [v0,o0,v1,o1]
//	hi = [v2,o2,v3,o3]
func (v Vec) Zip(o Vec) (lo, hi Vec) {
	n := len(v.X)
	if n == 1 {
		return v, o
	}
	half := n / 2
	lo = New(v.Width())
	hi = New(v.Width())
	for i := 0; i < half; i++ {
		lo.X[2*i] = v.X[i]
		lo.X[2*i+1] = o.X[i]
	}
	for i := 0; i < half; i++ {
		hi.X[2*i] = v.X[half+i]
		hi.X[2*i+1] = o.X[half+i]
	}
	return lo, hi
}

// Unzip is the inverse of Zip: treating v++o as one interleaved sequence of
// 2*Width elements, it returns the even-indexed and odd-indexed elements.
// For Width==1 it degenerates to the identity pair (v, o).
func (v Vec) Unzip(o Vec) (even, odd Vec) {
	n := len(v.X)
	if n == 1 {
		return v, o
	}
	cat := make([]float32, 0, 2*n)
	cat = append(cat, v.X...)
	cat = append(cat, o.X...)
	even = New(v.Width())
	odd = New(v.Width())
	for i := 0; i < n; i++ {
		even.X[i] = cat[2*i]
		odd.X[i] = cat[2*i+1]
	}
	return even, odd
}
