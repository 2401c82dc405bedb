package pixelconv

import "fmt"

// Copy copies src's (possibly windowed) pixel data into dst. src and dst
// must share the same format and color info; planes are copied row by row
// so that differing strides between src and dst are respected.
func Copy(src, dst *Image) error {
	if src.Format != dst.Format {
		return fmt.Errorf("pixelconv: copy: format mismatch (%s vs %s): %w", src.Format, dst.Format, ErrInvalidColorInfoForFormat)
	}
	if !sameGrading(src.Color, dst.Color) {
		return fmt.Errorf("pixelconv: copy: color info mismatch: %w", ErrInvalidColorInfoForFormat)
	}
	if err := validatePair(src, dst); err != nil {
		return err
	}

	sw := src.effectiveWindow()
	dwin := dst.effectiveWindow()
	desc := formatDescs[src.Format]

	for p := range src.Planes {
		d := desc.planes[p]
		rowBytes, err := planeByteOffset(d, sw.Width)
		if err != nil {
			return err
		}
		rows, err := d.heightOp.apply(sw.Height)
		if err != nil {
			return err
		}
		sx, err := planeByteOffset(d, sw.X)
		if err != nil {
			return err
		}
		sy, err := d.heightOp.apply(sw.Y)
		if err != nil {
			return err
		}
		dx, err := planeByteOffset(d, dwin.X)
		if err != nil {
			return err
		}
		dy, err := d.heightOp.apply(dwin.Y)
		if err != nil {
			return err
		}

		sPlane, dPlane := src.Planes[p], dst.Planes[p]
		for row := 0; row < rows; row++ {
			sRow, err := addChecked(sy, row)
			if err != nil {
				return err
			}
			dRow, err := addChecked(dy, row)
			if err != nil {
				return err
			}
			sRowOff, err := mulChecked(sRow, sPlane.Stride)
			if err != nil {
				return err
			}
			dRowOff, err := mulChecked(dRow, dPlane.Stride)
			if err != nil {
				return err
			}
			sOff, err := addChecked(sRowOff, sx)
			if err != nil {
				return err
			}
			dOff, err := addChecked(dRowOff, dx)
			if err != nil {
				return err
			}
			copy(dPlane.Data[dOff:dOff+rowBytes], sPlane.Data[sOff:sOff+rowBytes])
		}
	}
	return nil
}

// planeByteOffset applies d's width operator to n and converts the result
// to a byte offset, with overflow checking at each step.
func planeByteOffset(d planeDesc, n int) (int, error) {
	w, err := d.widthOp.apply(n)
	if err != nil {
		return 0, err
	}
	return mulChecked(w, d.bytesPerSample)
}
