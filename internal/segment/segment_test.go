package segment_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-ledring/internal/segment"
)

type r = segment.PixelRange

var ExpectedTable = []struct {
	Set     string
	Segment string
	Ranges  []r
}{
	{"rings", "ring0", []r{{0, 24}}},
	{"rings", "ring1", []r{{24, 16}}},
	{"rings", "ring2", []r{{40, 12}}},
	{"rings", "ring3", []r{{52, 8}}},
	{"rings", "ring4", []r{{60, 1}}},
	{"halves", "half0", []r{{0, 12}, {24, 8}, {40, 6}, {52, 4}, {60, 1}}},
	{"halves", "half1", []r{{12, 12}, {32, 8}, {46, 6}, {56, 4}, {60, 1}}},
	{"flower", "flower0", []r{{1, 5}, {7, 5}, {13, 5}, {19, 5}}},
	{"flower", "flower1", []r{{25, 3}, {29, 3}, {33, 3}, {37, 3}}},
	{"flower", "flower2", []r{{41, 2}, {44, 2}, {47, 2}, {50, 2}}},
	{"flower", "flower3", []r{{53, 1}, {55, 1}, {57, 1}, {59, 1}}},
	{"flower", "flower4", []r{{60, 1}}},
}

func TestTableMatches(t *testing.T) {
	for _, v := range ExpectedTable {
		t.Run(v.Set+"/"+v.Segment, func(t *testing.T) {
			s, err := segment.Default().Segment(v.Set, v.Segment)
			require.NoError(t, err)
			assert.Equal(t, v.Ranges, s.Ranges())
			assert.True(t, s.Forward())
		})
	}
}

func TestSegmentOrder(t *testing.T) {
	want := map[string][]string{
		"rings":  {"ring0", "ring1", "ring2", "ring3", "ring4"},
		"halves": {"half0", "half1"},
		"flower": {"flower0", "flower1", "flower2", "flower3", "flower4"},
	}
	assert.Equal(t, []string{"rings", "halves", "flower"}, segment.Default().Names())
	for set, names := range want {
		ss, err := segment.Lookup(set)
		require.NoError(t, err)
		got := []string{}
		for _, s := range ss.Segments() {
			got = append(got, s.Name())
		}
		assert.Equal(t, names, got, set)
	}
}

func TestRangesInsideStrip(t *testing.T) {
	for _, ss := range segment.New(segment.WithStar()).Sets() {
		for _, s := range ss.Segments() {
			for _, rr := range s.Ranges() {
				assert.GreaterOrEqual(t, rr.Start, 0, "%s/%s %s", ss.Name(), s.Name(), rr)
				assert.LessOrEqual(t, rr.End(), segment.StripLen, "%s/%s %s", ss.Name(), s.Name(), rr)
			}
		}
	}
	assert.NoError(t, segment.Validate(segment.New(segment.WithStar()), segment.StripLen))
}

func TestRingsCoverStrip(t *testing.T) {
	rings, err := segment.Lookup(segment.Rings)
	require.NoError(t, err)
	assert.Equal(t, 61, rings.PixelCount())
	assert.Len(t, rings.Pixels(), segment.StripLen)
}

func TestHalvesShareApex(t *testing.T) {
	halves, err := segment.Lookup(segment.Halves)
	require.NoError(t, err)
	h0, err := halves.Segment("half0")
	require.NoError(t, err)
	h1, err := halves.Segment("half1")
	require.NoError(t, err)

	assert.Equal(t, 31, h0.Len())
	assert.Equal(t, 31, h1.Len())
	// 62 references over 61 pixels: the apex sits in both halves.
	assert.Equal(t, 62, halves.PixelCount())
	assert.Len(t, halves.Pixels(), segment.StripLen)

	shared := []int{}
	for _, p := range h0.Pixels() {
		if h1.Contains(p) {
			shared = append(shared, p)
		}
	}
	assert.Equal(t, []int{segment.ApexPixel}, shared)
}

func TestApexConsistentAcrossSets(t *testing.T) {
	apex := []r{{segment.ApexPixel, 1}}

	ring4, err := segment.Default().Segment(segment.Rings, "ring4")
	require.NoError(t, err)
	flower4, err := segment.Default().Segment(segment.Flower, "flower4")
	require.NoError(t, err)
	assert.Equal(t, apex, ring4.Ranges())
	assert.Equal(t, apex, flower4.Ranges())

	halves, _ := segment.Lookup(segment.Halves)
	for _, h := range halves.Segments() {
		rs := h.Ranges()
		assert.Equal(t, apex[0], rs[len(rs)-1], h.Name())
	}
}

func TestFlowerSkipsAxes(t *testing.T) {
	flower, err := segment.Lookup(segment.Flower)
	require.NoError(t, err)
	for _, p := range []int{0, 6, 12, 18, 24, 28, 32, 36, 40, 43, 46, 49, 52, 54, 56, 58} {
		for _, s := range flower.Segments() {
			assert.False(t, s.Contains(p), "pixel %d in %s", p, s.Name())
		}
	}
	assert.Equal(t, 20+12+8+4+1, flower.PixelCount())
}

func TestLookupNotFound(t *testing.T) {
	_, err := segment.Lookup("stars")
	assert.ErrorIs(t, err, segment.ErrNotFound)

	_, err = segment.Lookup(segment.Star)
	assert.ErrorIs(t, err, segment.ErrNotFound, "star set must stay disabled by default")

	_, err = segment.Default().Segment(segment.Rings, "ring9")
	assert.ErrorIs(t, err, segment.ErrNotFound)

	_, err = segment.Default().Segment("petals", "ring0")
	assert.ErrorIs(t, err, segment.ErrNotFound)
}

func TestLookupAliases(t *testing.T) {
	for alias, name := range map[string]string{
		"ringSegments":   segment.Rings,
		"halfSegments":   segment.Halves,
		"flowerSegments": segment.Flower,
	} {
		a, err := segment.Lookup(alias)
		require.NoError(t, err)
		b, err := segment.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, b, a)
	}
}

func TestLookupIdempotent(t *testing.T) {
	for _, name := range segment.Default().Names() {
		a, err := segment.Lookup(name)
		require.NoError(t, err)
		b, err := segment.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestCopiesDoNotLeak(t *testing.T) {
	rings, _ := segment.Lookup(segment.Rings)
	segs := rings.Segments()
	rs := segs[0].Ranges()
	rs[0].Start = 5
	segs[0] = segs[1]

	again, _ := segment.Lookup(segment.Rings)
	ring0, err := again.Segment("ring0")
	require.NoError(t, err)
	assert.Equal(t, []r{{0, 24}}, ring0.Ranges())
	assert.Equal(t, "ring0", again.Segments()[0].Name())
}

func TestStarOption(t *testing.T) {
	top := segment.New(segment.WithStar())
	assert.Equal(t, []string{"rings", "halves", "flower", "star"}, top.Names())

	star, err := top.Set("starSegments")
	require.NoError(t, err)
	assert.Equal(t, 5, star.Len())
	s3, err := star.Segment("star3")
	require.NoError(t, err)
	assert.Equal(t, []r{{52, 8}}, s3.Ranges())
}

func TestPhysicalForward(t *testing.T) {
	h0, err := segment.Default().Segment(segment.Halves, "half0")
	require.NoError(t, err)

	cases := []struct{ Logical, Physical int }{
		{0, 0}, {11, 11}, {12, 24}, {19, 31}, {20, 40}, {26, 52}, {29, 55}, {30, 60},
	}
	for _, c := range cases {
		t.Run(strconv.Itoa(c.Logical), func(t *testing.T) {
			p, err := h0.Physical(c.Logical)
			require.NoError(t, err)
			assert.Equal(t, c.Physical, p)
		})
	}
	assert.Equal(t, h0.Len(), len(h0.Pixels()))
	for i, p := range h0.Pixels() {
		got, _ := h0.Physical(i)
		assert.Equal(t, p, got)
	}
}

func TestPhysicalOutOfRange(t *testing.T) {
	ring4, _ := segment.Default().Segment(segment.Rings, "ring4")
	_, err := ring4.Physical(1)
	assert.ErrorIs(t, err, segment.ErrIndexOutOfRange)
	_, err = ring4.Physical(-1)
	assert.ErrorIs(t, err, segment.ErrIndexOutOfRange)
}

func TestRangeValidate(t *testing.T) {
	assert.NoError(t, r{60, 1}.Validate(61))
	assert.ErrorIs(t, r{60, 2}.Validate(61), segment.ErrRangeOutOfBounds)
	assert.ErrorIs(t, r{-1, 2}.Validate(61), segment.ErrRangeOutOfBounds)
	assert.ErrorIs(t, r{3, 0}.Validate(61), segment.ErrEmptyRange)
}

func TestValidateShortStrip(t *testing.T) {
	err := segment.Validate(segment.Default(), 60)
	require.Error(t, err)
	assert.ErrorIs(t, err, segment.ErrRangeOutOfBounds)
	assert.Contains(t, err.Error(), "rings/ring4")
}
