package resample

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTest420 returns a 4:2:0 resampler and random planes for a 7x5 image.
func newTest420(t testing.TB) (*Resampler, [][]byte) {
	t.Helper()

	r, err := New([]Component{
		{H: 2, V: 2, Width: 7, Height: 5, BlockWidth: 1},
		{H: 1, V: 1, Width: 4, Height: 3, BlockWidth: 1},
		{H: 1, V: 1, Width: 4, Height: 3, BlockWidth: 1},
	})
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(1))
	planes := [][]byte{make([]byte, 8*5), make([]byte, 8*3), make([]byte, 8*3)}
	for _, p := range planes {
		rnd.Read(p)
	}

	return r, planes
}

func TestResampleImage(t *testing.T) {
	const w, h = 7, 5
	r, planes := newTest420(t)

	want := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		r.ResampleAndInterleaveRow(planes, y, w, want[y*w*3:])
	}

	for _, workers := range []int{0, 1, 2, 3, 16} {
		got := make([]byte, w*h*3)
		err := r.ResampleImage(context.Background(), planes, w, h, got, &Options{Workers: workers})
		require.NoError(t, err, "workers %d", workers)
		isEqual(t, got, want, "ResampleImage")
	}
}

func TestResampleImageInvalid(t *testing.T) {
	const w, h = 7, 5
	r, planes := newTest420(t)
	dst := make([]byte, w*h*3)

	tests := []struct {
		name   string
		planes [][]byte
		w, h   int
		dst    []byte
	}{
		{"Empty size", planes, 0, h, dst},
		{"Missing plane", planes[:2], w, h, dst},
		{"Short destination", planes, w, h, dst[:w*h*3-1]},
		{"Short plane", [][]byte{planes[0], planes[1][:19], planes[2]}, w, h, dst},
		{"Image taller than chroma", planes, w, 7, make([]byte, w*7*3)},
		{"Image narrower than doubled chroma", planes, 6, h, dst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.ResampleImage(context.Background(), tt.planes, tt.w, tt.h, tt.dst)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestResampleImageCanceled(t *testing.T) {
	const w, h = 7, 5
	r, planes := newTest420(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.ResampleImage(ctx, planes, w, h, make([]byte, w*h*3))
	assert.ErrorIs(t, err, context.Canceled)
}

func BenchmarkResampleImage(b *testing.B) {
	const w, h = 1920, 1080
	r, err := New([]Component{
		{H: 2, V: 2, Width: w, Height: h, BlockWidth: w / 8},
		{H: 1, V: 1, Width: w / 2, Height: h / 2, BlockWidth: w / 16},
		{H: 1, V: 1, Width: w / 2, Height: h / 2, BlockWidth: w / 16},
	})
	require.NoError(b, err)

	planes := [][]byte{
		make([]byte, w*h),
		make([]byte, w*h/4),
		make([]byte, w*h/4),
	}
	out := make([]byte, w*h*3)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := r.ResampleImage(context.Background(), planes, w, h, out); err != nil {
			b.Fatal(err)
		}
	}
}
