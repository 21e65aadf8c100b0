// Package segment describes how the 61 pixels of the ring ornament are grouped
// into named segments and segment sets.
//
// The physical strip runs from the outer ring inwards, clockwise, ending on the
// single centre pixel (ApexPixel). Each Segment is an ordered list of pixel
// ranges plus a forward flag; each SegmentSet is one way of carving up the
// strip (rings, halves, flower petals). Sets are independent views and may
// share pixels.
//
// Everything here is built once at init and never mutated. Accessors hand out
// copies, so values can be shared freely between goroutines.
package segment
