// Package pixelconv is a CPU pixel-format and color conversion engine.
//
// It converts image buffers between planar/semi-planar/packed YUV formats
// (I420/I422/I444 and their 10/12-bit counterparts, NV12, P010/P012, YUYV)
// and interleaved RGB formats (RGB/BGR/RGBA/BGRA), and between color
// gradings (BT.601/709/2020/2100 matrices, Linear/Gamma/sRGB/SDR/PQ/HLG
// transfer functions, BT.601 NTSC/BT.709/BT.2020 primaries).
//
// The core abstraction is a 2x2 pixel block read from a source format and
// written to a destination format, processed LEN blocks at a time across a
// portable lane (logical SIMD-width) abstraction whose width is chosen once
// per Convert call from the host CPU's detected feature set.
//
// Basic usage:
//
//	err := pixelconv.Convert(src, dst)
//
// ConvertParallel splits the same conversion across GOMAXPROCS goroutines
// by horizontal strip for larger images.
package pixelconv
