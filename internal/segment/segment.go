package segment

import (
	"fmt"
	"sort"
)

const (
	// StripLen is the number of addressable pixels on the ornament.
	StripLen = 61
	// ApexPixel is the centre pixel shared by every set.
	ApexPixel = StripLen - 1
)

// PixelRange is the half-open interval [Start, Start+Length) of physical pixels.
type PixelRange struct {
	Start  int `json:"start" yaml:"start"`
	Length int `json:"length" yaml:"length"`
}

func (r PixelRange) End() int { return r.Start + r.Length }

func (r PixelRange) Contains(pixel int) bool {
	return pixel >= r.Start && pixel < r.End()
}

// Validate checks the range against a strip of stripLen pixels.
func (r PixelRange) Validate(stripLen int) error {
	if r.Length <= 0 {
		return fmt.Errorf("%w: (%d,%d)", ErrEmptyRange, r.Start, r.Length)
	}
	if r.Start < 0 || r.End() > stripLen {
		return fmt.Errorf("%w: (%d,%d) on %d pixels", ErrRangeOutOfBounds, r.Start, r.Length, stripLen)
	}
	return nil
}

func (r PixelRange) String() string {
	return fmt.Sprintf("(%d,%d)", r.Start, r.Length)
}

// Segment is one logical rendering unit: ranges are walked in declaration
// order to map logical indices onto the strip.
type Segment struct {
	name    string
	ranges  []PixelRange
	forward bool
}

func newSegment(name string, forward bool, ranges ...PixelRange) Segment {
	return Segment{name: name, ranges: ranges, forward: forward}
}

func (s Segment) Name() string { return s.name }

// Forward reports whether logical 0 is the first pixel of the first range.
// When false, logical 0 is the last pixel of the last range.
func (s Segment) Forward() bool { return s.forward }

// Ranges returns a copy of the ranges in declaration order.
func (s Segment) Ranges() []PixelRange {
	out := make([]PixelRange, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Len is the logical pixel count, the sum of the range lengths.
func (s Segment) Len() int {
	n := 0
	for _, r := range s.ranges {
		n += r.Length
	}
	return n
}

// Physical maps a logical index onto a physical pixel index.
func (s Segment) Physical(logical int) (int, error) {
	n := s.Len()
	if logical < 0 || logical >= n {
		return 0, fmt.Errorf("%w: %d not in [0,%d) of %s", ErrIndexOutOfRange, logical, n, s.name)
	}
	if !s.forward {
		logical = n - 1 - logical
	}
	for _, r := range s.ranges {
		if logical < r.Length {
			return r.Start + logical, nil
		}
		logical -= r.Length
	}
	// unreachable while Len matches the ranges
	return 0, fmt.Errorf("%w: %d in %s", ErrIndexOutOfRange, logical, s.name)
}

// Pixels lists the physical indices in logical order.
func (s Segment) Pixels() []int {
	out := make([]int, 0, s.Len())
	for _, r := range s.ranges {
		for p := r.Start; p < r.End(); p++ {
			out = append(out, p)
		}
	}
	if !s.forward {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func (s Segment) Contains(pixel int) bool {
	for _, r := range s.ranges {
		if r.Contains(pixel) {
			return true
		}
	}
	return false
}

// SegmentSet groups segments under one naming scheme.
type SegmentSet struct {
	name     string
	segments []Segment
}

func newSet(name string, segments ...Segment) SegmentSet {
	return SegmentSet{name: name, segments: segments}
}

func (ss SegmentSet) Name() string { return ss.name }

// Segments returns a copy of the segments in declaration order.
func (ss SegmentSet) Segments() []Segment {
	out := make([]Segment, len(ss.segments))
	copy(out, ss.segments)
	return out
}

// Len is the number of segments.
func (ss SegmentSet) Len() int { return len(ss.segments) }

func (ss SegmentSet) Segment(name string) (Segment, error) {
	for _, s := range ss.segments {
		if s.name == name {
			return s, nil
		}
	}
	return Segment{}, fmt.Errorf("%w: segment %q in set %q", ErrNotFound, name, ss.name)
}

// PixelCount sums the lengths of every segment. Shared pixels count once per
// segment that references them.
func (ss SegmentSet) PixelCount() int {
	n := 0
	for _, s := range ss.segments {
		n += s.Len()
	}
	return n
}

// Pixels returns the distinct physical pixels covered by the set, ascending.
func (ss SegmentSet) Pixels() []int {
	seen := map[int]bool{}
	for _, s := range ss.segments {
		for _, r := range s.ranges {
			for p := r.Start; p < r.End(); p++ {
				seen[p] = true
			}
		}
	}
	out := make([]int, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}
