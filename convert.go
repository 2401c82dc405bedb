package pixelconv

import (
	"github.com/deepteams/pixelconv/internal/lane"
	"github.com/deepteams/pixelconv/internal/pipeline"
)

// Convert reads src's window, converts pixel format and color grading, and
// writes dst's (equally-sized) window. It uses the widest lane width the
// current CPU supports and runs single-threaded; see ConvertParallel for a
// multi-core version.
func Convert(src, dst *Image) error {
	if err := validatePair(src, dst); err != nil {
		return err
	}
	if src.Format == dst.Format && sameGrading(src.Color, dst.Color) {
		return Copy(src, dst)
	}

	srcDesc, srcGrading := toDescriptor(src)
	dstDesc, dstGrading := toDescriptor(dst)

	reader := pipeline.BuildReader(srcDesc)
	writer := pipeline.BuildWriter(dstDesc)

	w := src.effectiveWindow()
	pipeline.Run(reader, writer, w.Width, w.Height, srcGrading, dstGrading, lane.Best())
	return nil
}

// toDescriptor translates an Image's format/plane/color fields into the
// pipeline package's Descriptor and Grading, honoring the image's window
// origin.
func toDescriptor(img *Image) (pipeline.Descriptor, pipeline.Grading) {
	w := img.effectiveWindow()

	data := make([][]byte, len(img.Planes))
	strides := make([]int, len(img.Planes))
	for i, p := range img.Planes {
		data[i] = p.Data
		strides[i] = p.Stride
	}

	desc := pipeline.Descriptor{
		Format:           pipeline.FormatKind(img.Format),
		Planes:           pipeline.PlaneSet{Data: data, Stride: strides},
		BitsPerComponent: img.BitsPerComponent,
		Endian:           pipeline.EndianKind(img.Endian),
		Space:            pipeline.SpaceKind(img.Color.Space),
		FullRange:        img.Color.FullRange,
		OriginX:          w.X,
		OriginY:          w.Y,
	}
	grading := pipeline.Grading{
		Transfer:  pipeline.TransferKind(img.Color.Transfer),
		Primaries: pipeline.PrimariesKind(img.Color.Primaries),
	}
	return desc, grading
}
