package segment

// SegmentView is the exported, serialisable form of a Segment.
type SegmentView struct {
	Name    string       `json:"name" yaml:"name"`
	Forward bool         `json:"forward" yaml:"forward"`
	Length  int          `json:"length" yaml:"length"`
	Ranges  []PixelRange `json:"ranges" yaml:"ranges,flow"`
	Pixels  []int        `json:"pixels,omitempty" yaml:"pixels,omitempty,flow"`
}

// SetView is the exported, serialisable form of a SegmentSet.
type SetView struct {
	Name     string        `json:"name" yaml:"name"`
	Segments []SegmentView `json:"segments" yaml:"segments"`
}

// View snapshots the segment. withPixels adds the logical-order pixel list.
func (s Segment) View(withPixels bool) SegmentView {
	v := SegmentView{
		Name:    s.name,
		Forward: s.forward,
		Length:  s.Len(),
		Ranges:  s.Ranges(),
	}
	if withPixels {
		v.Pixels = s.Pixels()
	}
	return v
}

func (ss SegmentSet) View(withPixels bool) SetView {
	v := SetView{Name: ss.name, Segments: make([]SegmentView, 0, len(ss.segments))}
	for _, s := range ss.segments {
		v.Segments = append(v.Segments, s.View(withPixels))
	}
	return v
}

// View snapshots every set in order.
func (t *Topology) View(withPixels bool) []SetView {
	out := make([]SetView, 0, len(t.sets))
	for _, ss := range t.sets {
		out = append(out, ss.View(withPixels))
	}
	return out
}
