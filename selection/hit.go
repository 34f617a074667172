package selection

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/omath"
)

// ClickKind is the kind of query made against a set of boxes.
type ClickKind int

const (
	// ClickAny is used for hover queries. No box is filtered out.
	ClickAny ClickKind = iota
	ClickLeft
	ClickRight
)

// Hit is the result of a successful HitTest.
type Hit struct {
	// Index is the index of the box that was hit in the slice passed to HitTest.
	Index int
	Slot  int
	// Distance is the distance from the origin of the ray to the point where it enters the box.
	Distance float32
	Position mgl32.Vec3
	Face     df_cube.Face
}

// HitTest resolves the ray passed against the boxes, returning the box with the smallest entry distance.
// Boxes that do not allow clicks of the kind passed are ignored. If two boxes are entered at exactly
// the same distance, the one declared first wins. False is returned if no box is hit within the length
// of the ray.
func HitTest(ray omath.Ray, boxes []Box, kind ClickKind) (Hit, bool) {
	var (
		best  Hit
		found bool
	)
	start, end := ray.Origin, ray.End()
	for i, b := range boxes {
		if !b.Allows(kind) {
			continue
		}
		res, ok := trace.BBoxIntercept(b.BBox, start, end)
		if !ok {
			continue
		}
		dist := res.Position().Sub(start).Len()
		if !ray.Within(dist) {
			continue
		}
		if !found || dist < best.Distance {
			best = Hit{
				Index:    i,
				Slot:     b.Slot,
				Distance: dist,
				Position: res.Position(),
				Face:     df_cube.Face(res.Face()),
			}
			found = true
		}
	}
	return best, found
}

// HitTestAt resolves the ray passed, in world space, against the boxes of a block at pos with the facing
// passed. The position in the Hit returned is in world space.
func HitTestAt(ray omath.Ray, pos df_cube.Pos, boxes []Box, facing df_cube.Direction, kind ClickKind) (Hit, bool) {
	return HitTest(ray, Translated(Rotated(boxes, facing), pos), kind)
}

// Local returns the position of the hit relative to the block position passed.
func (h Hit) Local(pos df_cube.Pos) mgl32.Vec3 {
	return h.Position.Sub(mgl32.Vec3{float32(pos.X()), float32(pos.Y()), float32(pos.Z())})
}
