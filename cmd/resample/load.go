package main

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"

	errorsGo "github.com/go-errors/errors"

	"github.com/gen2brain/resample"
)

// loadLayout decodes a JPEG file and describes its decoded planes.
func loadLayout(path string) (*resample.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorsGo.Wrap(err, 0)
	}

	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errorsGo.WrapPrefix(err, path, 0)
	}

	return layoutOf(img)
}

// layoutOf returns the component layout of a decoded image.
// Only images that keep their planes separate can be resampled.
func layoutOf(img image.Image) (*resample.Layout, error) {
	var (
		l   *resample.Layout
		err error
	)

	switch m := img.(type) {
	case *image.YCbCr:
		l, err = resample.FromYCbCr(m)
	case *image.Gray:
		l, err = resample.FromGray(m)
	default:
		return nil, errorsGo.Errorf("%T: %w", img, resample.ErrUnsupported)
	}

	if err != nil {
		return nil, errorsGo.Wrap(err, 0)
	}

	return l, nil
}
