package book

import (
	"sort"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/omath"
)

// Candidate is an enchanting table that may be clicked.
type Candidate struct {
	Pos   df_cube.Pos
	State AnimationState
}

// Pick resolves a click of a player at the position passed against the books of all candidates. Candidates
// are tried from nearest to furthest, the left page before the right one, and closed books are skipped.
// The first hit closer to the origin of the ray than maxDistSq (squared) is returned, which is usually
// the distance to the block the player is looking at.
func Pick(ray omath.Ray, player mgl32.Vec3, candidates []Candidate, partialTicks, maxDistSq float32) (Hit, bool) {
	for _, c := range nearestOpen(player, candidates) {
		for _, side := range [...]Side{Left, Right} {
			hit, ok := IntersectPage(ray, c.State, c.Pos, partialTicks, side)
			if ok && hit.Position.Sub(ray.Origin).LenSqr() < maxDistSq {
				return hit, true
			}
		}
	}
	return Hit{}, false
}

// nearestOpen returns the candidates with an open book, sorted by the distance of their block position to
// the player. The block position is the lower corner of the block, not its centre.
func nearestOpen(player mgl32.Vec3, candidates []Candidate) []Candidate {
	sorted := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.State.IsOpen() {
			sorted = append(sorted, c)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return distSq(player, sorted[i].Pos) < distSq(player, sorted[j].Pos)
	})
	return sorted
}

func distSq(player mgl32.Vec3, pos df_cube.Pos) float32 {
	return mgl32.Vec3{float32(pos.X()), float32(pos.Y()), float32(pos.Z())}.Sub(player).LenSqr()
}
