package tile

import (
	"testing"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/omath"
	"github.com/oomph-ac/immersion/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrewingBoxesHit(t *testing.T) {
	b := NewBrewingStand(df_cube.Pos{2, 3, 4}, df_cube.North)
	// Straight down onto the ingredient at the top of the stand.
	ray := omath.NewRay(mgl32.Vec3{2.5, 5, 4.5}, mgl32.Vec3{0, -1, 0}, 4.5)
	hit, ok := selection.HitTestAt(ray, b.Pos(), b.Boxes(), b.Facing(), selection.ClickRight)
	require.True(t, ok)
	assert.Equal(t, BrewingIngredient, hit.Slot)

	ray = omath.NewRay(mgl32.Vec3{2 + 12*0.0625, 5, 4.5}, mgl32.Vec3{0, -1, 0}, 4.5)
	hit, ok = selection.HitTestAt(ray, b.Pos(), b.Boxes(), b.Facing(), selection.ClickRight)
	require.True(t, ok)
	assert.Equal(t, BrewingBottle1, hit.Slot)
}

func TestCanInsertFuel(t *testing.T) {
	b := NewBrewingStand(df_cube.Pos{}, df_cube.North)
	powder := item.NewStack(item.BlazePowder{}, 1)

	assert.False(t, b.CanInsertFuel(powder), "blaze powder goes into an empty ingredient slot first")
	assert.False(t, b.CanInsertFuel(item.NewStack(item.Sugar{}, 1)), "sugar is no fuel")
	assert.False(t, b.CanInsertFuel(item.Stack{}))

	b.Inventory().SetSlot(BrewingIngredient, item.NewStack(item.Sugar{}, 1))
	assert.True(t, b.CanInsertFuel(powder))

	b.Inventory().SetSlot(BrewingIngredient, item.NewStack(item.BlazePowder{}, 10))
	assert.False(t, b.CanInsertFuel(powder), "the ingredient is preferred while it has space")
	b.Inventory().SetSlot(BrewingIngredient, item.NewStack(item.BlazePowder{}, 64))
	assert.True(t, b.CanInsertFuel(powder))

	b.Inventory().SetSlot(BrewingIngredient, item.NewStack(item.Sugar{}, 1))
	b.Inventory().SetSlot(BrewingPowder, item.NewStack(item.BlazePowder{}, 64))
	assert.False(t, b.CanInsertFuel(powder), "the powder slot is full")
}

func TestBrewingActivate(t *testing.T) {
	b := NewBrewingStand(df_cube.Pos{}, df_cube.North)
	b.Inventory().SetSlot(BrewingIngredient, item.NewStack(item.Sugar{}, 1))

	held, ok := b.Activate(selection.Hit{Slot: BrewingIngredient}, mgl32.Vec3{}, item.NewStack(item.BlazePowder{}, 5))
	require.True(t, ok)
	assert.True(t, held.Empty())
	assert.Equal(t, 5, b.Inventory().Slot(BrewingPowder).Count(), "powder is rerouted to the powder slot")

	held, ok = b.Activate(selection.Hit{Slot: BrewingBottle2}, mgl32.Vec3{}, item.NewStack(item.GlassBottle{}, 3))
	require.True(t, ok)
	assert.Equal(t, 2, held.Count(), "bottles are placed one at a time")
	assert.Equal(t, 1, b.Inventory().Slot(BrewingBottle2).Count())

	_, ok = b.Activate(selection.Hit{Slot: BrewingBottle2}, mgl32.Vec3{}, item.NewStack(item.GlassBottle{}, 1))
	assert.False(t, ok, "an occupied bottle slot takes no more bottles")
	_, ok = b.Activate(selection.Hit{Slot: BrewingBottle3}, mgl32.Vec3{}, item.NewStack(item.Apple{}, 1))
	assert.False(t, ok, "apples are no bottles")

	held, ok = b.Activate(selection.Hit{Slot: BrewingBottle2}, mgl32.Vec3{}, item.Stack{})
	require.True(t, ok)
	assert.Equal(t, 1, held.Count())
	assert.True(t, b.Inventory().Slot(BrewingBottle2).Empty())
}
