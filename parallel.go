package pixelconv

import (
	"runtime"
	"sync"

	"github.com/deepteams/pixelconv/internal/lane"
	"github.com/deepteams/pixelconv/internal/pipeline"
)

// ConvertParallel is Convert split across GOMAXPROCS goroutines, each
// converting an independent horizontal strip of the window. Strips are
// always an even number of rows (2x2 block traversal never straddles a
// strip boundary), and any remainder section is distributed one extra
// 2-row section at a time starting from the first worker.
func ConvertParallel(src, dst *Image) error {
	if err := validatePair(src, dst); err != nil {
		return err
	}
	if src.Format == dst.Format && sameGrading(src.Color, dst.Color) {
		return Copy(src, dst)
	}

	threads := runtime.GOMAXPROCS(0)
	w := src.effectiveWindow()
	sections := w.Height / 2
	if threads > sections {
		threads = sections
	}
	if threads <= 1 {
		return Convert(src, dst)
	}

	srcDesc, srcGrading := toDescriptor(src)
	dstDesc, dstGrading := toDescriptor(dst)
	maxLane := lane.Best()

	partsPerSection := sections / threads
	remainder := sections % threads

	var wg sync.WaitGroup
	y := 0
	for t := 0; t < threads; t++ {
		extra := 0
		if remainder > 0 {
			remainder--
			extra = 1
		}
		stripHeight := (partsPerSection + extra) * 2
		if stripHeight == 0 {
			continue
		}
		stripY := y
		y += stripHeight

		wg.Add(1)
		go func(originY, height int) {
			defer wg.Done()
			strip := srcDesc
			strip.OriginY = srcDesc.OriginY + originY
			dstStrip := dstDesc
			dstStrip.OriginY = dstDesc.OriginY + originY

			reader := pipeline.BuildReader(strip)
			writer := pipeline.BuildWriter(dstStrip)
			pipeline.Run(reader, writer, w.Width, height, srcGrading, dstGrading, maxLane)
		}(stripY, stripHeight)
	}
	wg.Wait()
	return nil
}
