package book

import (
	"github.com/chewxy/math32"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/omath"
)

const (
	// PageWidth and PageHeight are the size of a page in page pixels.
	PageWidth  = 94
	PageHeight = 125

	// pixelSize is the size of a page pixel in block units.
	pixelSize = 0.004
)

// Side is one of the two pages of an open book.
type Side bool

const (
	Left  Side = false
	Right Side = true
)

// String ...
func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// pageQuad is a page of the book model, before being transformed.
var pageQuad = omath.Quad{
	{0, 0, 0},
	{6 * game.Pixel, 0, 0},
	{6 * game.Pixel, 8 * game.Pixel, 0},
	{0, 8 * game.Pixel, 0},
}

// Hit is a ray hitting a page of a book.
type Hit struct {
	Pos  df_cube.Pos
	Side Side
	// X and Y are the coordinates of the hit in page pixels.
	X, Y float32
	// Position is the world position that was hit, Distance the distance to it from the origin of the ray.
	Position mgl32.Vec3
	Distance float32
}

// PageTransform returns the transform placing a page of the book in block-local space, the same way it is
// rendered with the partial ticks passed.
func PageTransform(s AnimationState, partialTicks float32, side Side) omath.Transform {
	hover := float32(s.Ticks) + partialTicks
	yaw := s.PrevRotation + game.WrapRadians(s.Rotation-s.PrevRotation)*partialTicks

	flip := game.Lerp(s.PrevFlip, s.Flip, partialTicks) + 0.25
	flip = game.ClampFloat((flip-float32(int32(flip)))*1.6-0.3, 0, 1)

	spread := game.Lerp(s.PrevSpread, s.Spread, partialTicks)
	breath := (game.MCSin(hover*0.02)*0.1 + 1.25) * spread
	rotation := breath - breath*2*flip
	if side == Left {
		rotation = -rotation
	}

	return omath.Identity().
		Translate(0.5, 0.75+1.6*game.Pixel+0.0001+game.MCSin(hover*0.1)*0.01, 0.5).
		RotateY(-yaw).
		RotateZ(80*math32.Pi/180).
		Translate(game.MCSin(breath)/16, 0, 0).
		RotateY(rotation).
		Translate(0, -0.25, 0)
}

// PagePixels maps a point local to a page to page pixels. The two pages use different reference corners.
func PagePixels(local mgl32.Vec3, side Side) (x, y float32) {
	if side == Right {
		return local.X() / pixelSize, PageHeight - local.Y()/pixelSize
	}
	return PageWidth - local.X()/pixelSize, PageHeight - local.Y()/pixelSize
}

// InPage checks if the page pixel passed lies on a page.
func InPage(x, y float32) bool {
	return x >= 0 && x <= PageWidth && y >= 0 && y <= PageHeight
}

// IntersectPage intersects the ray passed, in world space, with a page of the book of the enchanting table
// at pos. The page is placed from the current animation state, so the result must not be reused across
// frames.
func IntersectPage(ray omath.Ray, s AnimationState, pos df_cube.Pos, partialTicks float32, side Side) (Hit, bool) {
	transform := PageTransform(s, partialTicks, side)
	origin := mgl32.Vec3{float32(pos.X()), float32(pos.Y()), float32(pos.Z())}

	dist, hit, ok := omath.IntersectQuad(ray, pageQuad.Transform(transform).Translate(origin))
	if !ok {
		return Hit{}, false
	}
	inverse, ok := transform.Inverse()
	if !ok {
		return Hit{}, false
	}
	x, y := PagePixels(inverse.Apply(hit.Sub(origin)), side)
	if !InPage(x, y) {
		return Hit{}, false
	}
	return Hit{Pos: pos, Side: side, X: x, Y: y, Position: hit, Distance: dist}, true
}
