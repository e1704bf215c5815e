package resample

import (
	"fmt"
	"image"
)

// clip clamps an int32 value to the valid 8-bit pixel range [0, 255].
func clip(x int32) byte {
	if x < 0 {
		return 0
	}

	if x > 255 {
		return 255
	}

	return byte(x)
}

// ToRGBA converts interleaved rows, as produced by ResampleImage, to an RGBA image.
// Images with one component are treated as grayscale, images with three components as YCbCr,
// or as RGB if isRGB is set.
func ToRGBA(src []byte, ncomp, width, height int, isRGB bool) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(src) < width*height*ncomp {
		return nil, fmt.Errorf("source holds %d bytes for %dx%dx%d: %w", len(src), width, height, ncomp, ErrInvalidArgument)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	n := width * height

	switch {
	case ncomp == 1:
		grayToRGBA(img.Pix, src[:n])
	case ncomp == 3 && isRGB:
		rgbToRGBA(img.Pix, src[:n*3])
	case ncomp == 3:
		yCbCrToRGBA(img.Pix, src[:n*3])
	default:
		return nil, fmt.Errorf("%d components: %w", ncomp, ErrUnsupported)
	}

	return img, nil
}

// yCbCrToRGBA converts interleaved YCbCr samples to RGBA using JFIF fixed-point coefficients.
func yCbCrToRGBA(dst, src []byte) {
	for i, j := 0, 0; i+2 < len(src); i, j = i+3, j+4 {
		y := int32(src[i]) << 8
		cb := int32(src[i+1]) - 128
		cr := int32(src[i+2]) - 128

		r := (y + 359*cr + 128) >> 8
		g := (y - 88*cb - 183*cr + 128) >> 8
		b := (y + 454*cb + 128) >> 8

		dst[j] = clip(r)   // R
		dst[j+1] = clip(g) // G
		dst[j+2] = clip(b) // B
		dst[j+3] = 255     // A
	}
}

// rgbToRGBA adds an opaque alpha channel to interleaved RGB samples.
func rgbToRGBA(dst, src []byte) {
	for i, j := 0, 0; i+2 < len(src); i, j = i+3, j+4 {
		dst[j] = src[i]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
		dst[j+3] = 255
	}
}

// grayToRGBA expands grayscale samples to RGBA.
func grayToRGBA(dst, src []byte) {
	for i, lum := range src {
		j := i << 2
		dst[j] = lum
		dst[j+1] = lum
		dst[j+2] = lum
		dst[j+3] = 255
	}
}
