package segment

import "fmt"

// Topology is an ordered, read-only collection of segment sets.
type Topology struct {
	sets []SegmentSet
}

type Option func(*options)

type options struct {
	star bool
}

// WithStar exposes the disabled star set alongside the active ones.
func WithStar() Option {
	return func(o *options) { o.star = true }
}

// New returns the active topology: rings, halves and flower, in that order.
func New(opts ...Option) *Topology {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	t := &Topology{sets: []SegmentSet{ringSegments, halfSegments, flowerSegments}}
	if o.star {
		t.sets = append(t.sets, starSegments)
	}
	return t
}

var defaultTopology = New()

// Default returns the shared active topology.
func Default() *Topology { return defaultTopology }

// Lookup finds an active set on the default topology.
func Lookup(name string) (SegmentSet, error) {
	return defaultTopology.Set(name)
}

// Set returns the named set. Source identifiers such as "ringSegments" are
// accepted as aliases.
func (t *Topology) Set(name string) (SegmentSet, error) {
	if canon, ok := aliases[name]; ok {
		name = canon
	}
	for _, ss := range t.sets {
		if ss.name == name {
			return ss, nil
		}
	}
	return SegmentSet{}, fmt.Errorf("%w: set %q", ErrNotFound, name)
}

func (t *Topology) Segment(set, name string) (Segment, error) {
	ss, err := t.Set(set)
	if err != nil {
		return Segment{}, err
	}
	return ss.Segment(name)
}

func (t *Topology) Names() []string {
	out := make([]string, 0, len(t.sets))
	for _, ss := range t.sets {
		out = append(out, ss.name)
	}
	return out
}

func (t *Topology) Sets() []SegmentSet {
	out := make([]SegmentSet, len(t.sets))
	copy(out, t.sets)
	return out
}

// Validate checks every range of every set against a strip of stripLen pixels.
func Validate(t *Topology, stripLen int) error {
	for _, ss := range t.sets {
		for _, s := range ss.segments {
			if len(s.ranges) == 0 {
				return fmt.Errorf("%s/%s: %w", ss.name, s.name, ErrEmptyRange)
			}
			for i, r := range s.ranges {
				if err := r.Validate(stripLen); err != nil {
					return fmt.Errorf("%s/%s range %d: %w", ss.name, s.name, i, err)
				}
			}
		}
	}
	return nil
}
