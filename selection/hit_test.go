package selection

import (
	"testing"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/omath"
)

func down(x, z float32) omath.Ray {
	return omath.NewRay(mgl32.Vec3{x, 2, z}, mgl32.Vec3{0, -1, 0}, 4.5)
}

func TestHitTestNearest(t *testing.T) {
	boxes := []Box{
		NewBox(cube.Box(0, 0, 0, 1, 0.5, 1), 0, WithRightClicks()),
		NewBox(cube.Box(0.25, 0, 0.25, 0.75, 0.9, 0.75), 1, WithRightClicks()),
	}
	hit, ok := HitTest(down(0.5, 0.5), boxes, ClickRight)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if hit.Index != 1 || hit.Slot != 1 {
		t.Fatalf("expected the taller box to be hit first, got box %d", hit.Index)
	}
	if hit.Face != df_cube.FaceUp {
		t.Fatalf("expected the top face to be hit, got %v", hit.Face)
	}
	if d := hit.Distance; d < 1.0999 || d > 1.1001 {
		t.Fatalf("expected distance 1.1, got %v", d)
	}

	hit, ok = HitTest(down(0.1, 0.1), boxes, ClickRight)
	if !ok || hit.Index != 0 {
		t.Fatalf("expected the lower box to be hit outside the taller one")
	}
}

func TestHitTestMiss(t *testing.T) {
	boxes := []Box{NewBox(cube.Box(0, 0, 0, 1, 1, 1), 0)}
	if _, ok := HitTest(down(1.5, 0.5), boxes, ClickAny); ok {
		t.Fatalf("expected a ray beside the box to miss")
	}
	short := omath.NewRay(mgl32.Vec3{0.5, 3, 0.5}, mgl32.Vec3{0, -1, 0}, 1)
	if _, ok := HitTest(short, boxes, ClickAny); ok {
		t.Fatalf("expected a ray that is too short to miss")
	}
	if _, ok := HitTest(down(0.5, 0.5), nil, ClickAny); ok {
		t.Fatalf("expected no hit without boxes")
	}
}

func TestHitTestClickFilter(t *testing.T) {
	boxes := []Box{
		NewBox(cube.Box(0, 0.5, 0, 1, 1, 1), 3, WithLeftClicks()),
		NewBox(cube.Box(0, 0, 0, 1, 0.5, 1), 7, WithRightClicks()),
	}
	if hit, ok := HitTest(down(0.5, 0.5), boxes, ClickRight); !ok || hit.Slot != 7 {
		t.Fatalf("expected right click to skip the left-only box, got %+v", hit)
	}
	if hit, ok := HitTest(down(0.5, 0.5), boxes, ClickLeft); !ok || hit.Slot != 3 {
		t.Fatalf("expected left click to hit the left-only box, got %+v", hit)
	}
	if hit, ok := HitTest(down(0.5, 0.5), boxes, ClickAny); !ok || hit.Slot != 3 {
		t.Fatalf("expected hover to hit the nearest box, got %+v", hit)
	}
	hover := []Box{NewBox(cube.Box(0, 0, 0, 1, 1, 1), 0)}
	if _, ok := HitTest(down(0.5, 0.5), hover, ClickRight); ok {
		t.Fatalf("expected a hover-only box to ignore clicks")
	}
}

func TestHitTestSharedEdge(t *testing.T) {
	boxes := []Box{
		NewBox(cube.Box(0, 0, 0, 0.5, 1, 1), 4),
		NewBox(cube.Box(0.5, 0, 0, 1, 1, 1), 9),
	}
	for i := 0; i < 10; i++ {
		hit, ok := HitTest(down(0.5, 0.5), boxes, ClickAny)
		if !ok {
			t.Fatalf("expected a hit on the shared edge")
		}
		if hit.Index != 0 || hit.Slot != 4 {
			t.Fatalf("expected the box declared first to win, got box %d", hit.Index)
		}
	}

	// Reversing the declaration order must reverse the winner.
	boxes[0], boxes[1] = boxes[1], boxes[0]
	if hit, _ := HitTest(down(0.5, 0.5), boxes, ClickAny); hit.Slot != 9 {
		t.Fatalf("expected slot 9 to win after reordering, got %d", hit.Slot)
	}
}

func TestHitTestAtFacing(t *testing.T) {
	// A box covering the north half of the block.
	boxes := []Box{NewBox(cube.Box(0, 0, 0, 1, 1, 0.5), 2)}
	pos := df_cube.Pos{10, 64, -3}
	north := omath.NewRay(mgl32.Vec3{10.5, 66, -2.75}, mgl32.Vec3{0, -1, 0}, 4.5)
	east := omath.NewRay(mgl32.Vec3{10.75, 66, -2.75}, mgl32.Vec3{0, -1, 0}, 4.5)

	if _, ok := HitTestAt(north, pos, boxes, df_cube.North, ClickAny); !ok {
		t.Fatalf("expected the north half to be hit for a north facing block")
	}
	if _, ok := HitTestAt(east, pos, boxes, df_cube.North, ClickAny); !ok {
		t.Fatalf("expected the north-east quarter to be inside the box")
	}
	hit, ok := HitTestAt(east, pos, boxes, df_cube.East, ClickAny)
	if !ok {
		t.Fatalf("expected the east half to be hit for an east facing block")
	}
	if local := hit.Local(pos); local[1] < 0.999 || local[1] > 1.001 {
		t.Fatalf("expected the hit to be on top of the block, got %v", local)
	}
	west := omath.NewRay(mgl32.Vec3{10.25, 66, -2.25}, mgl32.Vec3{0, -1, 0}, 4.5)
	if _, ok := HitTestAt(west, pos, boxes, df_cube.East, ClickAny); ok {
		t.Fatalf("expected the south-west quarter to miss for an east facing block")
	}
}

func TestRotatedLeavesInput(t *testing.T) {
	boxes := []Box{NewBox(cube.Box(0, 0, 0, 1, 1, 0.5), 2)}
	_ = Rotated(boxes, df_cube.South)
	if boxes[0].BBox.Max()[2] != 0.5 {
		t.Fatalf("expected Rotated not to modify its input")
	}
}
