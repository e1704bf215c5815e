package resample

import "image"

// Upsampling

// Bilinear weights are 3:1 toward the nearer sample. Results round half up in fixed point:
// +2 before >>2, and +8 before >>4 where the vertical blend is kept unshifted.

// resampleRow1 copies a row of a component that is not subsampled.
func resampleRow1(in []byte, stride, row, outputWidth int, out []byte) {
	copy(out[:outputWidth], in[row*stride:row*stride+outputWidth])
}

// resampleRowH2 performs a 2x horizontal upsampling of a single row.
func resampleRowH2(in []byte, size image.Point, stride, row int, out []byte) {
	w := size.X
	lin := in[row*stride : row*stride+w]
	lout := out[:2*w]

	if w == 1 {
		lout[0] = lin[0]
		lout[1] = lin[0]

		return
	}

	// Left edge.
	lout[0] = lin[0]
	lout[1] = byte((uint32(lin[0])*3 + uint32(lin[1]) + 2) >> 2)

	for i := 1; i < w-1; i++ {
		sample := 3*uint32(lin[i]) + 2
		lout[2*i] = byte((sample + uint32(lin[i-1])) >> 2)
		lout[2*i+1] = byte((sample + uint32(lin[i+1])) >> 2)
	}

	// Right edge mirrors the left edge.
	lout[2*w-2] = byte((uint32(lin[w-1])*3 + uint32(lin[w-2]) + 2) >> 2)
	lout[2*w-1] = lin[w-1]
}

// verticalRows returns the two source rows blended into output row `row` of a 2x vertically
// upsampled component: the nearest source row and the previous (even rows) or next (odd rows) one,
// clamped to the plane.
func verticalRows(row, height int) (near, far int) {
	near = row >> 1
	if row&1 == 0 {
		far = near - 1
	} else {
		far = near + 1
	}

	far = max(0, min(far, height-1))

	return near, far
}

// resampleRowV2 performs a 2x vertical upsampling for a single output row.
func resampleRowV2(in []byte, size image.Point, stride, row, outputWidth int, out []byte) {
	near, far := verticalRows(row, size.Y)
	pNear := in[near*stride : near*stride+outputWidth]
	pFar := in[far*stride : far*stride+outputWidth]
	lout := out[:outputWidth]

	for i := range lout {
		lout[i] = byte((3*uint32(pNear[i]) + uint32(pFar[i]) + 2) >> 2)
	}
}

// resampleRowHV2 performs a combined 2x horizontal and 2x vertical upsampling for a single output row.
// The vertical blend is kept at full precision (x4) so that rounding happens once per output sample.
func resampleRowHV2(in []byte, size image.Point, stride, row int, out []byte) {
	w := size.X
	near, far := verticalRows(row, size.Y)
	pNear := in[near*stride : near*stride+w]
	pFar := in[far*stride : far*stride+w]
	lout := out[:2*w]

	if w == 1 {
		v := byte((3*uint32(pNear[0]) + uint32(pFar[0]) + 2) >> 2)
		lout[0] = v
		lout[1] = v

		return
	}

	t1 := 3*uint32(pNear[0]) + uint32(pFar[0])
	lout[0] = byte((t1 + 2) >> 2)

	for i := 1; i < w; i++ {
		t0 := t1
		t1 = 3*uint32(pNear[i]) + uint32(pFar[i])

		lout[2*i-1] = byte((3*t0 + t1 + 8) >> 4)
		lout[2*i] = byte((3*t1 + t0 + 8) >> 4)
	}

	lout[2*w-1] = byte((t1 + 2) >> 2)
}
