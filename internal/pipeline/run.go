package pipeline

import (
	"github.com/deepteams/pixelconv/internal/block"
	"github.com/deepteams/pixelconv/internal/lane"
	"github.com/deepteams/pixelconv/internal/primaries"
	"github.com/deepteams/pixelconv/internal/transfer"
)

// Grading is the transfer/primaries half of a Descriptor's color
// interpretation - kept separate from Descriptor because it is only needed
// when src and dst disagree (see needsRegrade).
type Grading struct {
	Transfer  TransferKind
	Primaries PrimariesKind
}

// needsRegrade reports whether converting from src to dst requires the
// linearize -> convert-primaries -> re-encode stage, or whether the
// reader's YUV/RGB matrix alone already produces the destination's
// intended samples.
func needsRegrade(src, dst Grading) bool {
	return src.Transfer != dst.Transfer || src.Primaries != dst.Primaries
}

// regrade applies src's inverse transfer function, converts primaries if
// they differ, then applies dst's transfer function, in place on blk.
func regrade(blk *block.RGBA, w lane.Width, src, dst Grading) {
	srcT, dstT := src.Transfer.ToTransfer(), dst.Transfer.ToTransfer()
	srcP, dstP := src.Primaries.ToPrimaries(), dst.Primaries.ToPrimaries()

	for i := 0; i < 4; i++ {
		r := transfer.ScaledToLinear(srcT, blk.R[i])
		g := transfer.ScaledToLinear(srcT, blk.G[i])
		b := transfer.ScaledToLinear(srcT, blk.B[i])

		r, g, b = primaries.Convert(srcP, dstP, r, g, b)

		blk.R[i] = transfer.LinearToScaled(dstT, r)
		blk.G[i] = transfer.LinearToScaled(dstT, g)
		blk.B[i] = transfer.LinearToScaled(dstT, b)
	}
}

// Run drives the 2x2-tile traversal of one window: reads src, optionally
// regrades, and writes dst. width/height are the window's pixel dimensions
// (both guaranteed even by the caller); maxLane bounds the lane width used
// (tests pin this to force scalar/narrow paths; production callers pass
// lane.Best()).
func Run(reader block.Reader, writer block.Writer, width, height int, srcGrading, dstGrading Grading, maxLane lane.Width) {
	regradeNeeded := needsRegrade(srcGrading, dstGrading)
	tileCols := width / 2

	for y := 0; y < height; y += 2 {
		col := 0
		for col < tileCols {
			w := bestWidth(tileCols-col, maxLane)
			x := col * 2
			blk := reader.Read(x, y, w)
			if regradeNeeded {
				regrade(&blk, w, srcGrading, dstGrading)
			}
			writer.Write(x, y, w, blk)
			col += int(w)
		}
	}
}
