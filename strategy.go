package resample

import (
	"image"
	"strconv"
)

// Strategy identifies the row resampling algorithm used for a component.
type Strategy int

const (
	// Identity copies rows of a component that is not subsampled.
	Identity Strategy = iota
	// HorizontalDouble doubles the width of a row with bilinear interpolation.
	HorizontalDouble
	// VerticalDouble doubles the number of rows by blending each row with its nearest neighbor.
	VerticalDouble
	// HorizontalVerticalDouble doubles both dimensions in a single pass.
	HorizontalVerticalDouble
)

func (s Strategy) String() string {
	switch s {
	case Identity:
		return "identity"
	case HorizontalDouble:
		return "h2"
	case VerticalDouble:
		return "v2"
	case HorizontalVerticalDouble:
		return "h2v2"
	}

	return "Strategy(" + strconv.Itoa(int(s)) + ")"
}

// chooseStrategy maps the scale-up ratios of a component to a strategy.
// Both ratios must be integers and each must be 1 or 2.
func chooseStrategy(h, v, hMax, vMax int) (Strategy, bool) {
	if hMax%h != 0 || vMax%v != 0 {
		return 0, false
	}

	switch [2]int{hMax / h, vMax / v} {
	case [2]int{1, 1}:
		return Identity, true
	case [2]int{2, 1}:
		return HorizontalDouble, true
	case [2]int{1, 2}:
		return VerticalDouble, true
	case [2]int{2, 2}:
		return HorizontalVerticalDouble, true
	}

	return 0, false
}

// resampleRow writes output row `row` of the component stored in `in` to out.
func (s Strategy) resampleRow(in []byte, size image.Point, stride, row, outputWidth int, out []byte) {
	switch s {
	case Identity:
		resampleRow1(in, stride, row, outputWidth, out)
	case HorizontalDouble:
		resampleRowH2(in, size, stride, row, out)
	case VerticalDouble:
		resampleRowV2(in, size, stride, row, outputWidth, out)
	case HorizontalVerticalDouble:
		resampleRowHV2(in, size, stride, row, out)
	}
}

// readWidth returns the number of samples read from each source row.
func (s Strategy) readWidth(size image.Point, outputWidth int) int {
	switch s {
	case HorizontalDouble, HorizontalVerticalDouble:
		return size.X
	}

	return outputWidth
}

// scale returns the scale-up factors of the strategy.
func (s Strategy) scale() (sx, sy int) {
	switch s {
	case HorizontalDouble:
		return 2, 1
	case VerticalDouble:
		return 1, 2
	case HorizontalVerticalDouble:
		return 2, 2
	}

	return 1, 1
}
