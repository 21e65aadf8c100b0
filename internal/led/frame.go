package led

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/coreman2200/funtimes-ledring/internal/segment"
)

var ErrPixelOutOfRange = errors.New("led: pixel out of range")

// Frame is one RGB value per physical pixel, in strip order.
type Frame struct {
	px []color.NRGBA
}

func NewFrame(n int) *Frame {
	return &Frame{px: make([]color.NRGBA, n)}
}

func (f *Frame) Len() int { return len(f.px) }

func (f *Frame) Clear() {
	for i := range f.px {
		f.px[i] = color.NRGBA{}
	}
}

func (f *Frame) At(pixel int) color.NRGBA {
	if pixel < 0 || pixel >= len(f.px) {
		return color.NRGBA{}
	}
	return f.px[pixel]
}

func (f *Frame) Set(pixel int, c color.NRGBA) error {
	if pixel < 0 || pixel >= len(f.px) {
		return fmt.Errorf("%w: %d of %d", ErrPixelOutOfRange, pixel, len(f.px))
	}
	f.px[pixel] = c
	return nil
}

// FillSegment paints every pixel of s.
func (f *Frame) FillSegment(s segment.Segment, c color.NRGBA) error {
	for _, p := range s.Pixels() {
		if err := f.Set(p, c); err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
	}
	return nil
}

// SetLogical paints the i-th pixel of s, counted in the segment's own order.
func (f *Frame) SetLogical(s segment.Segment, i int, c color.NRGBA) error {
	p, err := s.Physical(i)
	if err != nil {
		return err
	}
	return f.Set(p, c)
}

// Bytes flattens the frame to R,G,B triplets with alpha and brightness
// (0..1) applied.
func (f *Frame) Bytes(brightness float64) []byte {
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 1 {
		brightness = 1
	}
	out := make([]byte, len(f.px)*3)
	for i, c := range f.px {
		k := brightness * float64(c.A) / 255.0
		out[i*3+0] = byte(float64(c.R) * k)
		out[i*3+1] = byte(float64(c.G) * k)
		out[i*3+2] = byte(float64(c.B) * k)
	}
	return out
}

// Lit counts pixels that are not fully dark.
func (f *Frame) Lit() int {
	n := 0
	for _, c := range f.px {
		if c.A > 0 && (c.R|c.G|c.B) > 0 {
			n++
		}
	}
	return n
}
