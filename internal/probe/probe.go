// Package probe walks a segment set on the strip so the wiring and the
// segment table can be checked by eye.
package probe

import (
	"fmt"
	"image/color"

	"github.com/coreman2200/funtimes-ledring/internal/led"
	"github.com/coreman2200/funtimes-ledring/internal/segment"
)

type Kind string

const (
	None Kind = ""
	// SegmentSweep lights one whole segment per step.
	SegmentSweep Kind = "segment_sweep"
	// OrderWalk lights one pixel per step, in each segment's logical order.
	OrderWalk Kind = "order_walk"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case SegmentSweep, OrderWalk:
		return Kind(s), nil
	}
	return None, fmt.Errorf("unknown probe kind: %q", s)
}

// Marker colours cycle per segment so neighbours are told apart.
var palette = []color.NRGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 255, A: 255},
	{G: 255, B: 255, A: 255},
	{R: 255, B: 255, A: 255},
}

// Position is where a runner currently is.
type Position struct {
	Segment string
	Logical int
	Pixel   int
}

type Runner struct {
	kind Kind
	set  segment.SegmentSet
	segs []segment.Segment

	seg  int
	step int
}

func NewRunner(kind Kind, set segment.SegmentSet) *Runner {
	return &Runner{kind: kind, set: set, segs: set.Segments()}
}

func (r *Runner) Kind() Kind { return r.kind }

// Steps is the total number of steps the runner will take.
func (r *Runner) Steps() int {
	switch r.kind {
	case SegmentSweep:
		return len(r.segs)
	case OrderWalk:
		return r.set.PixelCount()
	}
	return 0
}

// Step draws the next marker into f; returns false when complete.
func (r *Runner) Step(f *led.Frame) (Position, bool) {
	f.Clear()
	if r.seg >= len(r.segs) {
		return Position{}, false
	}
	s := r.segs[r.seg]
	c := palette[r.seg%len(palette)]

	switch r.kind {
	case SegmentSweep:
		if err := f.FillSegment(s, c); err != nil {
			return Position{}, false
		}
		r.seg++
		return Position{Segment: s.Name(), Logical: -1, Pixel: -1}, true

	case OrderWalk:
		p, err := s.Physical(r.step)
		if err != nil {
			return Position{}, false
		}
		// keep the head of the segment visible so direction reads at a glance
		if r.step > 0 {
			first, _ := s.Physical(0)
			_ = f.Set(first, color.NRGBA{R: c.R / 4, G: c.G / 4, B: c.B / 4, A: 255})
		}
		if err := f.Set(p, c); err != nil {
			return Position{}, false
		}
		pos := Position{Segment: s.Name(), Logical: r.step, Pixel: p}
		r.step++
		if r.step >= s.Len() {
			r.seg++
			r.step = 0
		}
		return pos, true
	}
	return Position{}, false
}
