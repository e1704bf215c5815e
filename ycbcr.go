package resample

import (
	"fmt"
	"image"
)

// Layout holds decoded component planes and their geometry.
type Layout struct {
	Components    []Component
	Planes        [][]byte
	Width, Height int // Dimensions of the final image.
}

// NewResampler creates a Resampler for the layout's components.
func (l *Layout) NewResampler() (*Resampler, error) {
	return New(l.Components)
}

// FromYCbCr describes the Y, Cb and Cr planes of m as components.
// Sampling factors are derived from the subsample ratio, with chroma always sampled 1x1.
// The 4:1:1 and 4:1:0 ratios are reported as such, but New rejects them.
// Sub-images whose origin does not fall on a chroma sample boundary are not supported.
func FromYCbCr(m *image.YCbCr) (*Layout, error) {
	var ssX, ssY int
	switch m.SubsampleRatio {
	case image.YCbCrSubsampleRatio444:
		ssX, ssY = 1, 1
	case image.YCbCrSubsampleRatio422:
		ssX, ssY = 2, 1
	case image.YCbCrSubsampleRatio420:
		ssX, ssY = 2, 2
	case image.YCbCrSubsampleRatio440:
		ssX, ssY = 1, 2
	case image.YCbCrSubsampleRatio411:
		ssX, ssY = 4, 1
	case image.YCbCrSubsampleRatio410:
		ssX, ssY = 4, 2
	default:
		return nil, fmt.Errorf("YCbCr subsample ratio %v: %w", m.SubsampleRatio, ErrUnsupported)
	}

	r := m.Rect
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty image: %w", ErrInvalidArgument)
	}

	// Chroma samples must start on the image origin.
	if r.Min.X%ssX != 0 || r.Min.Y%ssY != 0 {
		return nil, fmt.Errorf("origin %v not aligned to %dx%d chroma grid: %w", r.Min, ssX, ssY, ErrUnsupported)
	}

	// Chroma dimensions, rounded up like the image package does.
	cw := (r.Max.X+ssX-1)/ssX - r.Min.X/ssX
	ch := (r.Max.Y+ssY-1)/ssY - r.Min.Y/ssY

	yOff := m.YOffset(r.Min.X, r.Min.Y)
	cOff := m.COffset(r.Min.X, r.Min.Y)

	l := &Layout{Width: w, Height: h}
	l.add(ssX, ssY, w, h, m.Y[yOff:], m.YStride)
	l.add(1, 1, cw, ch, m.Cb[cOff:], m.CStride)
	l.add(1, 1, cw, ch, m.Cr[cOff:], m.CStride)

	return l, nil
}

// FromGray describes the single plane of m as a component.
func FromGray(m *image.Gray) (*Layout, error) {
	r := m.Rect
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty image: %w", ErrInvalidArgument)
	}

	l := &Layout{Width: w, Height: h}
	l.add(1, 1, w, h, m.Pix[m.PixOffset(r.Min.X, r.Min.Y):], m.Stride)

	return l, nil
}

// add appends a component, repacking the plane if its stride is not a whole number of blocks.
func (l *Layout) add(ssX, ssY, width, height int, pixels []byte, stride int) {
	if stride&7 != 0 {
		newStride := (width + 7) &^ 7
		out := make([]byte, newStride*height)

		for y := 0; y < height; y++ {
			copy(out[y*newStride:y*newStride+width], pixels[y*stride:y*stride+width])
		}

		pixels = out
		stride = newStride
	}

	l.Components = append(l.Components, Component{
		H:          ssX,
		V:          ssY,
		Width:      width,
		Height:     height,
		BlockWidth: stride >> 3,
	})
	l.Planes = append(l.Planes, pixels)
}
