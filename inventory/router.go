package inventory

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/immersion/omath"
)

// Router maps the face of a block that is accessed, together with the facing of that block, to the region
// of its inventory exposed on that face. Table holds the regions of the horizontal faces of a block
// facing north. Up and Down are the same for every facing. A nil Up or Down means nothing is exposed.
type Router struct {
	Table    map[df_cube.Direction]Region
	Up, Down *Region
}

// RegionFor returns the region exposed on the face passed of a block with the facing passed. False is
// returned if nothing is exposed on that face, which callers treat as the capability being absent.
func (r Router) RegionFor(face df_cube.Face, facing df_cube.Direction) (Region, bool) {
	switch face {
	case df_cube.FaceUp:
		return optional(r.Up)
	case df_cube.FaceDown:
		return optional(r.Down)
	}
	canonical := omath.RotateDirection(face.Direction(), -omath.QuarterTurns(facing))
	region, ok := r.Table[canonical]
	return region, ok
}

// View returns the part of the inventory passed that is exposed on the face of a block with the facing
// passed.
func (r Router) View(inv *Inventory, face df_cube.Face, facing df_cube.Direction) (RegionView, bool) {
	region, ok := r.RegionFor(face, facing)
	if !ok {
		return RegionView{}, false
	}
	return inv.View(region), true
}

// Horizontal returns a table exposing the same region on all four horizontal faces.
func Horizontal(region Region) map[df_cube.Direction]Region {
	return map[df_cube.Direction]Region{
		df_cube.North: region,
		df_cube.East:  region,
		df_cube.South: region,
		df_cube.West:  region,
	}
}

// Ptr returns a pointer to the region passed, for use as Router.Up or Router.Down.
func Ptr(region Region) *Region {
	return &region
}

func optional(r *Region) (Region, bool) {
	if r == nil {
		return Region{}, false
	}
	return *r, true
}
