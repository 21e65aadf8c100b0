package segment

// Set names.
const (
	Rings  = "rings"
	Halves = "halves"
	Flower = "flower"
	Star   = "star"
)

// Main rings, outermost first, going clockwise.
var ringSegments = newSet(Rings,
	newSegment("ring0", true, PixelRange{0, 24}),
	newSegment("ring1", true, PixelRange{24, 16}),
	newSegment("ring2", true, PixelRange{40, 12}),
	newSegment("ring3", true, PixelRange{52, 8}),
	newSegment("ring4", true, PixelRange{60, 1}),
)

// Every ring split in two; both halves end on the apex.
var halfSegments = newSet(Halves,
	newSegment("half0", true,
		PixelRange{0, 12}, PixelRange{24, 8}, PixelRange{40, 6}, PixelRange{52, 4}, PixelRange{60, 1}),
	newSegment("half1", true,
		PixelRange{12, 12}, PixelRange{32, 8}, PixelRange{46, 6}, PixelRange{56, 4}, PixelRange{60, 1}),
)

// Rings with the vertical and horizontal lines left out, giving petals.
var flowerSegments = newSet(Flower,
	newSegment("flower0", true, PixelRange{1, 5}, PixelRange{7, 5}, PixelRange{13, 5}, PixelRange{19, 5}),
	newSegment("flower1", true, PixelRange{25, 3}, PixelRange{29, 3}, PixelRange{33, 3}, PixelRange{37, 3}),
	newSegment("flower2", true, PixelRange{41, 2}, PixelRange{44, 2}, PixelRange{47, 2}, PixelRange{50, 2}),
	newSegment("flower3", true, PixelRange{53, 1}, PixelRange{55, 1}, PixelRange{57, 1}, PixelRange{59, 1}),
	newSegment("flower4", true, PixelRange{60, 1}),
)

// Disabled on the ornament. Only reachable through WithStar.
var starSegments = newSet(Star,
	newSegment("star0", true,
		PixelRange{0, 1}, PixelRange{3, 1}, PixelRange{6, 1}, PixelRange{9, 1},
		PixelRange{12, 1}, PixelRange{15, 1}, PixelRange{18, 1}, PixelRange{21, 1}),
	newSegment("star1", true,
		PixelRange{24, 1}, PixelRange{26, 1}, PixelRange{28, 1}, PixelRange{30, 1},
		PixelRange{32, 1}, PixelRange{34, 1}, PixelRange{36, 1}, PixelRange{38, 1}),
	newSegment("star2", true, PixelRange{40, 1}, PixelRange{43, 1}, PixelRange{46, 1}, PixelRange{49, 1}),
	newSegment("star3", true, PixelRange{52, 8}),
	newSegment("star4", true, PixelRange{60, 1}),
)

var aliases = map[string]string{
	"ringSegments":   Rings,
	"halfSegments":   Halves,
	"flowerSegments": Flower,
	"starSegments":   Star,
}
