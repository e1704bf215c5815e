package resample

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options specifies parameters for ResampleImage.
type Options struct {
	// Workers is the number of goroutines producing rows concurrently.
	// If zero or negative, runtime.GOMAXPROCS(0) is used.
	Workers int
}

// ResampleImage produces all rows of a width x height image and interleaves them into dst,
// row after row, with n samples per pixel where n is the number of components.
// Rows are split into contiguous bands that are processed concurrently.
// Unlike ResampleAndInterleaveRow, the plane geometry is validated up front.
func (r *Resampler) ResampleImage(ctx context.Context, planes [][]byte, width, height int, dst []byte, opts ...*Options) error {
	if err := r.validate(planes, width, height, dst); err != nil {
		return err
	}

	workers := runtime.GOMAXPROCS(0)
	if len(opts) > 0 && opts[0] != nil && opts[0].Workers > 0 {
		workers = opts[0].Workers
	}

	workers = min(workers, height)
	band := (height + workers - 1) / workers
	rowSize := width * len(r.strategies)

	g, ctx := errgroup.WithContext(ctx)

	for y0 := 0; y0 < height; y0 += band {
		y0 := y0
		y1 := min(y0+band, height)

		g.Go(func() error {
			for y := y0; y < y1; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				r.ResampleAndInterleaveRow(planes, y, width, dst[y*rowSize:(y+1)*rowSize])
			}

			return nil
		})
	}

	return g.Wait()
}

// validate checks that planes and dst are large enough to produce a width x height image.
func (r *Resampler) validate(planes [][]byte, width, height int, dst []byte) error {
	n := len(r.strategies)

	if width <= 0 || height <= 0 {
		return fmt.Errorf("image size %dx%d: %w", width, height, ErrInvalidArgument)
	}

	if len(planes) != n {
		return fmt.Errorf("got %d planes for %d components: %w", len(planes), n, ErrInvalidArgument)
	}

	if len(dst) < width*height*n {
		return fmt.Errorf("destination holds %d bytes, need %d: %w", len(dst), width*height*n, ErrInvalidArgument)
	}

	for i, s := range r.strategies {
		size := r.sizes[i]
		sx, sy := s.scale()

		// The component must cover the image, and a horizontally doubled row must fit the scratch row.
		if size.X <= 0 || size.Y <= 0 || size.X*sx < width || (sx == 2 && size.X*sx > width+1) || size.Y*sy < height {
			return fmt.Errorf("component %d (%s) has size %dx%d for image %dx%d: %w",
				i, s, size.X, size.Y, width, height, ErrInvalidArgument)
		}

		readWidth := s.readWidth(size, width)
		if readWidth > r.strides[i] {
			return fmt.Errorf("component %d row of %d samples exceeds stride %d: %w", i, readWidth, r.strides[i], ErrInvalidArgument)
		}

		need := (size.Y-1)*r.strides[i] + readWidth
		if len(planes[i]) < need {
			return fmt.Errorf("component %d plane holds %d bytes, need %d: %w", i, len(planes[i]), need, ErrInvalidArgument)
		}
	}

	return nil
}
