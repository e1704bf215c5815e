package main

import (
	"image/png"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	errorsGo "github.com/go-errors/errors"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gen2brain/resample"
)

type outputFormat string

const (
	formatPNG  outputFormat = `png`
	formatBMP  outputFormat = `bmp`
	formatTIFF outputFormat = `tiff`
	formatRaw  outputFormat = `raw`
	formatZstd outputFormat = `zst`
)

type outputOptions struct {
	rgb   bool // convert raw output to RGBA
	level int  // zstd compression level
}

func outputFormatOf(path string) (outputFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case `.png`:
		return formatPNG, nil
	case `.bmp`:
		return formatBMP, nil
	case `.tif`, `.tiff`:
		return formatTIFF, nil
	case `.raw`:
		return formatRaw, nil
	case `.zst`:
		return formatZstd, nil
	case ``:
		return ``, errorsGo.New(`missing output file extension`)
	}

	return ``, errorsGo.Errorf(`unknown output file extension %q`, filepath.Ext(path))
}

// writeOutput encodes interleaved samples with ncomp components per pixel.
func writeOutput(w io.Writer, format outputFormat, samples []byte, ncomp, width, height int, opts outputOptions) error {
	switch format {
	case formatRaw, formatZstd:
		if opts.rgb {
			img, err := resample.ToRGBA(samples, ncomp, width, height, false)
			if err != nil {
				return errorsGo.Wrap(err, 0)
			}
			samples = img.Pix
		}

		if format == formatRaw {
			if _, err := w.Write(samples); err != nil {
				return errorsGo.Wrap(err, 0)
			}

			return nil
		}

		return writeZstd(w, samples, opts.level)
	}

	img, err := resample.ToRGBA(samples, ncomp, width, height, false)
	if err != nil {
		return errorsGo.Wrap(err, 0)
	}

	switch format {
	case formatPNG:
		err = png.Encode(w, img)
	case formatBMP:
		err = bmp.Encode(w, img)
	case formatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return errorsGo.Errorf(`unknown output format %q`, format)
	}

	if err != nil {
		return errorsGo.Wrap(err, 0)
	}

	return nil
}

func writeZstd(w io.Writer, b []byte, level int) error {
	enc, err := zstd.NewWriter(w,
		zstd.WithEncoderConcurrency(runtime.NumCPU()),
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
	)
	if err != nil {
		return errorsGo.Wrap(err, 0)
	}

	if _, err := enc.Write(b); err != nil {
		_ = enc.Close()

		return errorsGo.Wrap(err, 0)
	}

	if err := enc.Close(); err != nil {
		return errorsGo.Wrap(err, 0)
	}

	return nil
}
