// Package resample reconstructs full-resolution rows from chroma-subsampled component planes
// and interleaves them into a single multi-component output row.
//
// A [Resampler] is built once per image from the component geometry. It selects a bilinear
// row resampling strategy for every component from the ratio of the component's sampling factors
// to the maximum sampling factors across all components, and is read-only afterwards, so
// different rows may be produced concurrently by the caller.
package resample

import (
	"errors"
	"fmt"
	"image"
	"sync"
)

// Standard error types.
var (
	ErrUnsupported               = errors.New("unsupported format")
	ErrUnsupportedSamplingLayout = fmt.Errorf("unsupported sampling layout: %w", ErrUnsupported)
	ErrInvalidArgument           = errors.New("invalid argument")
)

// Component describes the geometry of a single decoded component plane (e.g., Y, Cb, or Cr).
type Component struct {
	H, V          int // Horizontal and vertical sampling factors.
	Width, Height int // Dimensions of the component plane in samples.
	BlockWidth    int // Width of the stored plane in 8x8 blocks.
}

// Stride returns the number of bytes from one row of the component plane to the next.
func (c Component) Stride() int {
	return c.BlockWidth << 3
}

// Resampler holds the per-component resampling strategy and plane geometry.
// All slices are indexed by component position and have the same length.
type Resampler struct {
	strategies []Strategy
	sizes      []image.Point
	strides    []int
}

// New creates a Resampler for the given components.
// It fails with ErrUnsupportedSamplingLayout if any component cannot be resampled
// with a supported ratio of 1 or 2 in each direction.
func New(components []Component) (*Resampler, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("no components: %w", ErrUnsupportedSamplingLayout)
	}

	hMax, vMax := 0, 0
	for i, c := range components {
		if c.H <= 0 || c.V <= 0 {
			return nil, fmt.Errorf("component %d has sampling factors %dx%d: %w", i, c.H, c.V, ErrUnsupportedSamplingLayout)
		}

		hMax = max(hMax, c.H)
		vMax = max(vMax, c.V)
	}

	r := &Resampler{
		strategies: make([]Strategy, len(components)),
		sizes:      make([]image.Point, len(components)),
		strides:    make([]int, len(components)),
	}

	for i, c := range components {
		s, ok := chooseStrategy(c.H, c.V, hMax, vMax)
		if !ok {
			return nil, fmt.Errorf("component %d (%dx%d, max %dx%d): %w", i, c.H, c.V, hMax, vMax, ErrUnsupportedSamplingLayout)
		}

		r.strategies[i] = s
		r.sizes[i] = image.Pt(c.Width, c.Height)
		r.strides[i] = c.Stride()
	}

	return r, nil
}

// Len returns the number of components.
func (r *Resampler) Len() int {
	return len(r.strategies)
}

// Strategy returns the resampling strategy chosen for component i.
func (r *Resampler) Strategy(i int) Strategy {
	return r.strategies[i]
}

// A pool for scratch rows to reduce allocations in ResampleAndInterleaveRow.
var linePool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 4096)

		return &b
	},
}

// ResampleAndInterleaveRow produces output row `row` of every component and interleaves the
// samples into dst, so that dst[x*n+i] holds sample x of component i, where n is the number of components.
//
// planes must hold one decoded plane per component, in construction order, and dst must be at least
// outputWidth*n bytes long. Only that region of dst is written.
func (r *Resampler) ResampleAndInterleaveRow(planes [][]byte, row, outputWidth int, dst []byte) {
	n := len(r.strategies)
	if n == 0 || outputWidth <= 0 {
		return
	}

	bufPtr := linePool.Get().(*[]byte)
	defer linePool.Put(bufPtr)

	if cap(*bufPtr) < outputWidth+1 {
		*bufPtr = make([]byte, outputWidth+1)
	}
	line := (*bufPtr)[:outputWidth+1]

	// Ensure bounds checks are eliminated in the interleave loop.
	_ = planes[n-1]
	_ = dst[outputWidth*n-1]

	for i, s := range r.strategies {
		// Samples a component does not produce are written as zero.
		clear(line)
		s.resampleRow(planes[i], r.sizes[i], r.strides[i], row, outputWidth, line)

		k := i
		for _, v := range line[:outputWidth] {
			dst[k] = v
			k += n
		}
	}
}
