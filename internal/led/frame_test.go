package led

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-ledring/internal/segment"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func TestFillSegment(t *testing.T) {
	f := NewFrame(segment.StripLen)
	flower2, err := segment.Default().Segment(segment.Flower, "flower2")
	require.NoError(t, err)

	require.NoError(t, f.FillSegment(flower2, white))
	assert.Equal(t, 8, f.Lit())
	for _, p := range []int{41, 42, 44, 45, 47, 48, 50, 51} {
		assert.Equal(t, white, f.At(p), "pixel %d", p)
	}
	assert.Equal(t, color.NRGBA{}, f.At(43))

	f.Clear()
	assert.Zero(t, f.Lit())
}

func TestSetLogical(t *testing.T) {
	f := NewFrame(segment.StripLen)
	half1, err := segment.Default().Segment(segment.Halves, "half1")
	require.NoError(t, err)

	require.NoError(t, f.SetLogical(half1, 12, white))
	assert.Equal(t, white, f.At(32))
	assert.ErrorIs(t, f.SetLogical(half1, half1.Len(), white), segment.ErrIndexOutOfRange)
}

func TestFrameOutOfRange(t *testing.T) {
	f := NewFrame(10)
	ring4, _ := segment.Default().Segment(segment.Rings, "ring4")
	assert.ErrorIs(t, f.Set(10, white), ErrPixelOutOfRange)
	assert.ErrorIs(t, f.FillSegment(ring4, white), ErrPixelOutOfRange)
	assert.Equal(t, color.NRGBA{}, f.At(-1))
}

func TestBytesBrightness(t *testing.T) {
	f := NewFrame(2)
	require.NoError(t, f.Set(0, color.NRGBA{R: 200, G: 100, B: 50, A: 255}))
	require.NoError(t, f.Set(1, color.NRGBA{R: 200, G: 100, B: 50, A: 0}))

	assert.Equal(t, []byte{200, 100, 50, 0, 0, 0}, f.Bytes(1))
	assert.Equal(t, []byte{100, 50, 25, 0, 0, 0}, f.Bytes(0.5))
	assert.Equal(t, []byte{200, 100, 50, 0, 0, 0}, f.Bytes(3))
	assert.Equal(t, make([]byte, 6), f.Bytes(-1))
}
