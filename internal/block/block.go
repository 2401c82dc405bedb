// Package block defines the 2x2 pixel block types that flow between
// readers and writers, and the Reader/Writer interfaces the pipeline
// dispatches across. A block covers LEN 2x2 tiles at once (2*LEN columns,
// 2 rows): each field is a lane vector of LEN samples, so processing them is
// a handful of lane ops rather than a per-pixel loop.
package block

import "github.com/deepteams/pixelconv/internal/lane"

// RGBA is the universal interchange block: every reader converts its
// native samples to this shape, and every writer consumes it. For a block
// of w tiles at (x,y), index 0 holds the top row's first w columns
// (x..x+w-1), index 1 its next w columns (x+w..x+2w-1), and indices 2 and 3
// the same two runs of the bottom row; for w == 1 this is [top-left,
// top-right, bottom-left, bottom-right] of a single tile.
type RGBA struct {
	R, G, B, A [4]lane.Vec
}

// Reader produces one RGBA block per 2x2-tile-group call. x,y are the
// top-left pixel coordinates of the first tile in the group; w is the
// number of tiles read (i.e. 2*w columns, 2 rows).
type Reader interface {
	Read(x, y int, w lane.Width) RGBA
}

// Writer consumes one RGBA block per 2x2-tile-group call, performing any
// chroma down-sampling and packing its format needs.
type Writer interface {
	Write(x, y int, w lane.Width, blk RGBA)
}
