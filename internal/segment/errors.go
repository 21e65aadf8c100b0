package segment

import "errors"

var (
	// ErrNotFound is returned when a set or segment name is unknown.
	ErrNotFound = errors.New("segment: not found")
	// ErrIndexOutOfRange is returned for a logical index outside a segment.
	ErrIndexOutOfRange = errors.New("segment: logical index out of range")
	// ErrRangeOutOfBounds marks a range that leaves the physical strip.
	ErrRangeOutOfBounds = errors.New("segment: range outside strip")
	// ErrEmptyRange marks a range with no pixels.
	ErrEmptyRange = errors.New("segment: empty range")
)
