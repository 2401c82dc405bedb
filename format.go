package pixelconv

// Format is the closed set of pixel formats the engine reads and writes.
type Format int

const (
	I420 Format = iota
	I422
	I444
	I010
	I012
	I210
	I212
	I410
	I412
	NV12
	P010
	P012
	YUYV
	RGB
	BGR
	RGBA
	BGRA
)

func (f Format) String() string {
	switch f {
	case I420:
		return "I420"
	case I422:
		return "I422"
	case I444:
		return "I444"
	case I010:
		return "I010"
	case I012:
		return "I012"
	case I210:
		return "I210"
	case I212:
		return "I212"
	case I410:
		return "I410"
	case I412:
		return "I412"
	case NV12:
		return "NV12"
	case P010:
		return "P010"
	case P012:
		return "P012"
	case YUYV:
		return "YUYV"
	case RGB:
		return "RGB"
	case BGR:
		return "BGR"
	case RGBA:
		return "RGBA"
	case BGRA:
		return "BGRA"
	default:
		return "unknown"
	}
}

// HasAlpha reports whether the format carries a native alpha channel.
func (f Format) HasAlpha() bool {
	return f == RGBA || f == BGRA
}

// IsYUV reports whether the format's native samples are luma/chroma rather
// than RGB.
func (f Format) IsYUV() bool {
	switch f {
	case RGB, BGR, RGBA, BGRA:
		return false
	default:
		return true
	}
}

// BitDepth returns the format's nominal bits per component.
func (f Format) BitDepth() int {
	switch f {
	case I010, I012, I210, I212, I410, I412, P010, P012:
		switch f {
		case I012, I212, I412, P012:
			return 12
		default:
			return 10
		}
	default:
		return 8
	}
}

// op is a plane-dimension scaling operator: either multiplication or integer
// division (division truncates, so it is exact only for even n; validate
// requires even window dimensions, which are the image dimensions when no
// window is set).
type op struct {
	mul bool
	n   int
}

func mulOp(n int) op { return op{mul: true, n: n} }
func divOp(n int) op { return op{mul: false, n: n} }

func (o op) apply(n int) (int, error) {
	if o.mul {
		return mulChecked(n, o.n)
	}
	return n / o.n, nil
}

// planeDesc describes one plane of a format: how its byte-width and
// row-count scale from the image's pixel width/height, and how many bytes
// each primitive sample occupies (1 for u8, 2 for u16).
type planeDesc struct {
	widthOp        op
	heightOp       op
	bytesPerSample int
}

// formatDesc is the fixed plane layout of a format, indexed by plane number.
type formatDesc struct {
	planes []planeDesc
}

var formatDescs = map[Format]formatDesc{
	I420: {[]planeDesc{
		{mulOp(1), mulOp(1), 1},
		{divOp(2), divOp(2), 1},
		{divOp(2), divOp(2), 1},
	}},
	I422: {[]planeDesc{
		{mulOp(1), mulOp(1), 1},
		{divOp(2), mulOp(1), 1},
		{divOp(2), mulOp(1), 1},
	}},
	I444: {[]planeDesc{
		{mulOp(1), mulOp(1), 1},
		{mulOp(1), mulOp(1), 1},
		{mulOp(1), mulOp(1), 1},
	}},
	I010: {[]planeDesc{
		{mulOp(1), mulOp(1), 2},
		{divOp(2), divOp(2), 2},
		{divOp(2), divOp(2), 2},
	}},
	I012: {[]planeDesc{
		{mulOp(1), mulOp(1), 2},
		{divOp(2), divOp(2), 2},
		{divOp(2), divOp(2), 2},
	}},
	I210: {[]planeDesc{
		{mulOp(1), mulOp(1), 2},
		{divOp(2), mulOp(1), 2},
		{divOp(2), mulOp(1), 2},
	}},
	I212: {[]planeDesc{
		{mulOp(1), mulOp(1), 2},
		{divOp(2), mulOp(1), 2},
		{divOp(2), mulOp(1), 2},
	}},
	I410: {[]planeDesc{
		{mulOp(1), mulOp(1), 2},
		{mulOp(1), mulOp(1), 2},
		{mulOp(1), mulOp(1), 2},
	}},
	I412: {[]planeDesc{
		{mulOp(1), mulOp(1), 2},
		{mulOp(1), mulOp(1), 2},
		{mulOp(1), mulOp(1), 2},
	}},
	NV12: {[]planeDesc{
		{mulOp(1), mulOp(1), 1},
		{mulOp(1), divOp(2), 1}, // interleaved U,V - byte width equals pixel width
	}},
	P010: {[]planeDesc{
		{mulOp(1), mulOp(1), 2},
		{mulOp(1), divOp(2), 2},
	}},
	P012: {[]planeDesc{
		{mulOp(1), mulOp(1), 2},
		{mulOp(1), divOp(2), 2},
	}},
	YUYV: {[]planeDesc{
		{mulOp(2), mulOp(1), 1},
	}},
	RGB: {[]planeDesc{
		{mulOp(3), mulOp(1), 1},
	}},
	BGR: {[]planeDesc{
		{mulOp(3), mulOp(1), 1},
	}},
	RGBA: {[]planeDesc{
		{mulOp(4), mulOp(1), 1},
	}},
	BGRA: {[]planeDesc{
		{mulOp(4), mulOp(1), 1},
	}},
}

// PlaneCount returns how many planes f requires.
func (f Format) PlaneCount() int {
	return len(formatDescs[f].planes)
}

// minStride returns the minimum valid byte stride for plane p at the given
// image width.
func (f Format) minStride(p, width int) (int, error) {
	d := formatDescs[f].planes[p]
	w, err := d.widthOp.apply(width)
	if err != nil {
		return 0, err
	}
	return mulChecked(w, d.bytesPerSample)
}

// minPlaneLen returns the minimum valid plane byte length given a stride
// and image height.
func (f Format) minPlaneLen(p, stride, height int) (int, error) {
	d := formatDescs[f].planes[p]
	h, err := d.heightOp.apply(height)
	if err != nil {
		return 0, err
	}
	return mulChecked(stride, h)
}

// Endian selects the byte order used for multi-byte (u16) samples.
type Endian int

const (
	LittleEndian Endian = iota
	BigEndian
)
