package codec

import "github.com/deepteams/pixelconv/internal/lane"

// sampleCodec bundles the load/store pair for one plane's primitive width
// (u8 or u16) and byte order, chosen once when a reader/writer is built.
// This plays the role the teacher's internal/dsp package fills with a
// function-pointer chosen once by CPU feature at init time: one dispatch
// decision up front, then a branch-free hot path.
type sampleCodec struct {
	bytesPerSample int
	load           func(buf []byte, w lane.Width) lane.Vec
	store          func(v lane.Vec, buf []byte)
}

func newSampleCodec(bitsPerComponent int, e lane.Endian) sampleCodec {
	maxValue := float32((int(1) << uint(bitsPerComponent)) - 1)
	if bitsPerComponent <= 8 {
		return sampleCodec{
			bytesPerSample: 1,
			load:           func(buf []byte, w lane.Width) lane.Vec { return lane.LoadU8(buf, w, maxValue) },
			store:          func(v lane.Vec, buf []byte) { lane.StoreU8(v, buf) },
		}
	}
	return sampleCodec{
		bytesPerSample: 2,
		load:           func(buf []byte, w lane.Width) lane.Vec { return lane.LoadU16(buf, w, e, maxValue) },
		store:          func(v lane.Vec, buf []byte) { lane.StoreU16(v, buf, bitsPerComponent, e) },
	}
}
