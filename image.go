package pixelconv

// Plane is one contiguous byte buffer of a multi-plane (or single-plane)
// image, together with its row stride in bytes. Stride may exceed the
// format's minimum row width to allow padded rows.
type Plane struct {
	Data   []byte
	Stride int
}

// Window is a rectangular sub-region of an image, in pixel coordinates of
// the top-left-aligned full image. Both dimensions must be even so that
// 2x2 block traversal never straddles a boundary.
type Window struct {
	X, Y          int
	Width, Height int
}

// Image is a view over pixel data: a format tag, one byte plane per the
// format's plane count, overall pixel dimensions, color interpretation,
// bit depth, byte order for multi-byte samples, and an optional crop
// window. Image values are borrowed for the duration of one Convert/Copy
// call; nothing here retains state across calls.
type Image struct {
	Format           Format
	Planes           []Plane
	Width, Height    int
	Color            Info
	BitsPerComponent int
	Endian           Endian
	Window           *Window
}

// effectiveWindow returns img.Window if set, otherwise the full image as a
// window.
func (img *Image) effectiveWindow() Window {
	if img.Window != nil {
		return *img.Window
	}
	return Window{X: 0, Y: 0, Width: img.Width, Height: img.Height}
}

// validate checks the invariants from spec.md §3: dimensions, plane count,
// per-plane stride/length bounds, bit depth, and window bounds/parity. It
// does not check two images against each other; see validatePair.
func (img *Image) validate() error {
	if img.Width <= 0 || img.Height <= 0 {
		return ErrInvalidDimensions
	}
	want := img.Format.PlaneCount()
	if len(img.Planes) != want {
		return &PlaneCountError{Format: img.Format, Want: want, Got: len(img.Planes)}
	}
	if img.BitsPerComponent != img.Format.BitDepth() {
		return ErrInvalidColorInfoForFormat
	}
	for p, plane := range img.Planes {
		minStride, err := img.Format.minStride(p, img.Width)
		if err != nil {
			return err
		}
		if plane.Stride < minStride {
			return &StrideError{Plane: p, Min: minStride, Got: plane.Stride}
		}
		minLen, err := img.Format.minPlaneLen(p, plane.Stride, img.Height)
		if err != nil {
			return err
		}
		if len(plane.Data) < minLen {
			return &PlaneSizeError{Plane: p, Min: minLen, Got: len(plane.Data)}
		}
	}
	w := img.effectiveWindow()
	if w.Width%2 != 0 || w.Height%2 != 0 {
		return ErrOddWindowDimensions
	}
	if w.X < 0 || w.Y < 0 {
		return ErrWindowOutOfBounds
	}
	endX, err := addChecked(w.X, w.Width)
	if err != nil {
		return err
	}
	endY, err := addChecked(w.Y, w.Height)
	if err != nil {
		return err
	}
	if endX > img.Width || endY > img.Height {
		return ErrWindowOutOfBounds
	}
	return nil
}

// validatePair checks that src and dst are each individually valid and
// that their (effective) windows match in size.
func validatePair(src, dst *Image) error {
	if err := src.validate(); err != nil {
		return err
	}
	if err := dst.validate(); err != nil {
		return err
	}
	sw, dw := src.effectiveWindow(), dst.effectiveWindow()
	if sw.Width != dw.Width || sw.Height != dw.Height {
		return ErrMismatchedWindowSize
	}
	return nil
}
