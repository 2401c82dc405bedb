package colormatrix

import "github.com/deepteams/pixelconv/internal/lane"

// BT.2100 conversions route RGB through the LMS cone-response space shared
// by both the PQ and HLG transfer curves before projecting to Y'Cb'Cr'-like
// coordinates. rgbToLMS uses integer coefficients in units of 1/4096 (each
// row sums to 4096, the S row using 99); lmsToRGB applies the inverse of that
// integer matrix by plain multiplication, after scaling L, M, S back up by
// 4096. No transfer curve is applied between the LMS and YUV matrices.

func rgbToLMS(r, g, b lane.Vec) (l, m, s lane.Vec) {
	l = r.MulF(1688.0).Add(g.MulF(2146.0)).Add(b.MulF(262.0)).DivF(4096.0)
	m = r.MulF(683.0).Add(g.MulF(2951.0)).Add(b.MulF(462.0)).DivF(4096.0)
	s = r.MulF(99.0).Add(g.MulF(309.0)).Add(b.MulF(3688.0)).DivF(4096.0)
	return
}

func lmsToRGB(l, m, s lane.Vec) (r, g, b lane.Vec) {
	l, m, s = l.MulF(4096.0), m.MulF(4096.0), s.MulF(4096.0)
	r = l.MulF(0.00083901535).Add(m.MulF(-0.00061192684)).Add(s.MulF(1.7052107e-5))
	g = l.MulF(-0.00019319571).Add(m.MulF(0.0004842775)).Add(s.MulF(-4.694114e-5))
	b = l.MulF(-6.335425e-6).Add(m.MulF(-2.4148858e-5)).Add(s.MulF(0.00027462494))
	return
}

func bt2100RGBToYUVPrimitives(k Kind, r, g, b lane.Vec) (y, u, v lane.Vec) {
	l, m, s := rgbToLMS(r, g, b)
	y = l.Add(m).MulF(0.5)
	if k == BT2100PQ {
		u = l.MulF(1.6137695).Sub(m.MulF(3.3234863)).Add(s.MulF(1.7097168))
		v = l.MulF(4.378174).Sub(m.MulF(4.2456055)).Sub(s.MulF(0.13256836))
	} else {
		u = l.MulF(0.88500977).Sub(m.MulF(1.8225098)).Add(s.MulF(0.9375))
		v = l.MulF(2.319336).Sub(m.MulF(2.2490234)).Sub(s.MulF(0.0703125))
	}
	return
}

func bt2100YUVToRGBPrimitives(k Kind, y, u, v lane.Vec) (r, g, b lane.Vec) {
	var l, m, s lane.Vec
	if k == BT2100PQ {
		l = y.Add(u.MulF(0.008609037)).Add(v.MulF(0.111029625))
		m = y.Add(u.MulF(-0.008609037)).Add(v.MulF(-0.111029625))
		s = y.Add(u.MulF(0.5600313)).Add(v.MulF(-0.32062715))
	} else {
		l = y.Add(u.MulF(0.01571858)).Add(v.MulF(0.20958106))
		m = y.Add(u.MulF(-0.01571858)).Add(v.MulF(-0.20958106))
		s = y.Add(u.MulF(1.0212711)).Add(v.MulF(-0.6052745))
	}
	return lmsToRGB(l, m, s)
}

func bt2100YUVToRGB(k Kind, y, u, v lane.Vec) (r, g, b lane.Vec) {
	return bt2100YUVToRGBPrimitives(k, y, u, v)
}

func bt2100RGBToYUV(k Kind, r, g, b lane.Vec) (y, u, v lane.Vec) {
	return bt2100RGBToYUVPrimitives(k, r, g, b)
}

func bt2100RowUVToRGB(k Kind, yLeft, yRight, u, v lane.Vec) (left, right [3]lane.Vec) {
	leftU, rightU := u.Zip(u)
	leftV, rightV := v.Zip(v)

	r0, g0, b0 := bt2100YUVToRGBPrimitives(k, yLeft, leftU, leftV)
	r1, g1, b1 := bt2100YUVToRGBPrimitives(k, yRight, rightU, rightV)

	left = [3]lane.Vec{r0, g0, b0}
	right = [3]lane.Vec{r1, g1, b1}
	return
}

func bt2100YX4UVToRGB(k Kind, y00, y01, y10, y11, u, v lane.Vec) [4][3]lane.Vec {
	top0, top1 := bt2100RowUVToRGB(k, y00, y01, u, v)
	bot0, bot1 := bt2100RowUVToRGB(k, y10, y11, u, v)
	return [4][3]lane.Vec{top0, top1, bot0, bot1}
}

// bt2100RGBX4ToYX4UV averages the chroma of all four block pixels (not just
// the top-left sample repeated) before projecting to u,v.
func bt2100RGBX4ToYX4UV(k Kind, r, g, b [4]lane.Vec) (y [4]lane.Vec, u, v lane.Vec) {
	var ys, us, vs [4]lane.Vec
	for i := 0; i < 4; i++ {
		ys[i], us[i], vs[i] = bt2100RGBToYUVPrimitives(k, r[i], g[i], b[i])
	}
	y = ys
	// Sum the two rows, then pair adjacent columns across the first and
	// second w-column runs (the same Unzip RGBX4ToYX4UV uses).
	uEven, uOdd := us[0].Add(us[2]).Unzip(us[1].Add(us[3]))
	vEven, vOdd := vs[0].Add(vs[2]).Unzip(vs[1].Add(vs[3]))
	u = uEven.Add(uOdd).MulF(0.25).AddF(0.5)
	v = vEven.Add(vOdd).MulF(0.25).AddF(0.5)
	return
}

func bt2100RowRGBToYUV(k Kind, rLeft, gLeft, bLeft, rRight, gRight, bRight lane.Vec) (yLeft, yRight, u, v lane.Vec) {
	yLeft, uLeft, vLeft := bt2100RGBToYUVPrimitives(k, rLeft, gLeft, bLeft)
	yRight, uRight, vRight := bt2100RGBToYUVPrimitives(k, rRight, gRight, bRight)
	uEven, uOdd := uLeft.Unzip(uRight)
	vEven, vOdd := vLeft.Unzip(vRight)
	u = uEven.Add(uOdd).MulF(0.5).AddF(0.5)
	v = vEven.Add(vOdd).MulF(0.5).AddF(0.5)
	return yLeft, yRight, u, v
}
