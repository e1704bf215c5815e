package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/gen2brain/resample"
)

// encodeJPEG returns a JPEG encoding of a w x h gradient.
// The standard library encodes color images with 4:2:0 subsampling.
func encodeJPEG(t *testing.T, w, h int, gray bool) []byte {
	t.Helper()

	var img image.Image
	if gray {
		m := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				m.SetGray(x, y, color.Gray{Y: uint8(x * 255 / w)})
			}
		}
		img = m
	} else {
		m := image.NewRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				m.SetRGBA(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 100, A: 255})
			}
		}
		img = m
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))

	return buf.Bytes()
}

func writeJPEG(t *testing.T, w, h int, gray bool) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "in.jpg")
	require.NoError(t, os.WriteFile(path, encodeJPEG(t, w, h, gray), 0o644))

	return path
}

func TestOutputFormatOf(t *testing.T) {
	tests := map[string]outputFormat{
		"a.png":  formatPNG,
		"a.BMP":  formatBMP,
		"a.tif":  formatTIFF,
		"a.tiff": formatTIFF,
		"a.raw":  formatRaw,
		"a.zst":  formatZstd,
	}

	for path, want := range tests {
		got, err := outputFormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := outputFormatOf("a")
	assert.Error(t, err)

	_, err = outputFormatOf("a.gif")
	assert.Error(t, err)
}

func TestLayoutOf(t *testing.T) {
	img, err := jpeg.Decode(bytes.NewReader(encodeJPEG(t, 33, 17, false)))
	require.NoError(t, err)

	l, err := layoutOf(img)
	require.NoError(t, err)
	require.Len(t, l.Components, 3)
	assert.Equal(t, 2, l.Components[0].H)
	assert.Equal(t, 2, l.Components[0].V)

	rs, err := newResampler(l)
	require.NoError(t, err)
	assert.Equal(t, resample.HorizontalVerticalDouble, rs.Strategy(1))

	_, err = layoutOf(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, resample.ErrUnsupported)
}

func TestInfoFunc(t *testing.T) {
	path := writeJPEG(t, 32, 16, false)

	var buf bytes.Buffer
	require.NoError(t, infoFunc(&buf, path))

	out := buf.String()
	assert.Contains(t, out, "32x16, 3 components")
	assert.Contains(t, out, "strategy identity")
	assert.Contains(t, out, "strategy h2v2")
}

func TestWriteOutputZstd(t *testing.T) {
	samples := make([]byte, 6*4*3)
	for i := range samples {
		samples[i] = byte(i)
	}

	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, formatZstd, samples, 3, 6, 4, outputOptions{level: 3}))

	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()

	got, err := dec.DecodeAll(buf.Bytes(), nil)
	require.NoError(t, err)
	assert.Equal(t, samples, got)
}

func TestWriteOutputRawRGBA(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, formatRaw, []byte{10, 20}, 1, 2, 1, outputOptions{rgb: true}))
	assert.Equal(t, []byte{10, 10, 10, 255, 20, 20, 20, 255}, buf.Bytes())
}

func TestConvertFunc(t *testing.T) {
	in := writeJPEG(t, 21, 13, false)
	dir := t.TempDir()

	defer func(o string, w int) { convertOutput, convertWorkers = o, w }(convertOutput, convertWorkers)

	convertOutput = filepath.Join(dir, "out.png")
	convertWorkers = 3
	require.NoError(t, convertFunc(context.Background(), in))

	f, err := os.Open(convertOutput)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 21, 13), img.Bounds())

	convertOutput = filepath.Join(dir, "out.bmp")
	require.NoError(t, convertFunc(context.Background(), writeJPEG(t, 9, 9, true)))

	data, err := os.ReadFile(convertOutput)
	require.NoError(t, err)

	img, err = bmp.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 9, 9), img.Bounds())
}
