package pixelconv

import "fmt"

// Crop produces a new Image view whose planes start at w's origin (offset
// per-plane via the format's plane descriptor) and whose dimensions are
// w's, sharing the parent's strides and underlying byte buffers. If img is
// itself already windowed, w is interpreted relative to that existing
// window, so crops compose (cropping a crop narrows further rather than
// resetting to the full image).
func Crop(img *Image, w Window) (*Image, error) {
	if w.Width%2 != 0 || w.Height%2 != 0 {
		return nil, ErrOddWindowDimensions
	}
	base := img.effectiveWindow()
	if w.X < 0 || w.Y < 0 {
		return nil, ErrWindowOutOfBounds
	}
	endX, err := addChecked(w.X, w.Width)
	if err != nil {
		return nil, err
	}
	endY, err := addChecked(w.Y, w.Height)
	if err != nil {
		return nil, err
	}
	if endX > base.Width || endY > base.Height {
		return nil, ErrWindowOutOfBounds
	}
	absX, err := addChecked(base.X, w.X)
	if err != nil {
		return nil, err
	}
	absY, err := addChecked(base.Y, w.Y)
	if err != nil {
		return nil, err
	}

	desc := formatDescs[img.Format]
	planes := make([]Plane, len(img.Planes))
	for p, src := range img.Planes {
		d := desc.planes[p]
		hOff, err := d.heightOp.apply(absY)
		if err != nil {
			return nil, err
		}
		rowOffset, err := mulChecked(hOff, src.Stride)
		if err != nil {
			return nil, err
		}
		colOffset, err := planeByteOffset(d, absX)
		if err != nil {
			return nil, err
		}
		off, err := addChecked(rowOffset, colOffset)
		if err != nil {
			return nil, err
		}
		if off > len(src.Data) {
			return nil, fmt.Errorf("pixelconv: crop: plane %d offset %d exceeds length %d", p, off, len(src.Data))
		}
		planes[p] = Plane{Data: src.Data[off:], Stride: src.Stride}
	}

	out := &Image{
		Format:           img.Format,
		Planes:           planes,
		Width:            w.Width,
		Height:           w.Height,
		Color:            img.Color,
		BitsPerComponent: img.BitsPerComponent,
		Endian:           img.Endian,
	}
	return out, nil
}
