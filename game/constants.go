package game

const (
	// Pixel is the size of one texture pixel in block units.
	Pixel = float32(0.0625)

	// CreativeReach is the distance a creative player can interact with blocks from.
	CreativeReach = float32(5)

	DefaultPlayerHeightOffset = float32(1.62)

	TicksPerSecond = 20
)
