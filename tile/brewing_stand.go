package tile

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/inventory"
	"github.com/oomph-ac/immersion/selection"
)

const (
	BrewingBottle1 = iota
	BrewingBottle2
	BrewingBottle3
	BrewingIngredient
	BrewingPowder
)

var (
	brewingBoxes = []selection.Box{
		selection.PixelBox(10, 0, 6, 14, 12, 10, BrewingBottle1, selection.WithRightClicks()),
		selection.PixelBox(3, 0, 2, 7, 12, 6, BrewingBottle2, selection.WithRightClicks()),
		selection.PixelBox(3, 0, 10, 7, 12, 14, BrewingBottle3, selection.WithRightClicks()),
		selection.PixelBox(5, 13.5, 5, 11, 15.5, 11, BrewingIngredient, selection.WithRightClicks()),
	}

	brewingRouter = inventory.Router{
		Table: inventory.Horizontal(inventory.SingleSlot(BrewingPowder)),
		Up:    inventory.Ptr(inventory.SingleSlot(BrewingIngredient)),
		Down:  inventory.Ptr(inventory.Region{Start: BrewingBottle1, Count: 3}),
	}

	// brewingReagents holds all items that may be brewed into a potion.
	brewingReagents = map[string]struct{}{
		"minecraft:nether_wart":            {},
		"minecraft:redstone":               {},
		"minecraft:glowstone_dust":         {},
		"minecraft:fermented_spider_eye":   {},
		"minecraft:gunpowder":              {},
		"minecraft:dragon_breath":          {},
		"minecraft:sugar":                  {},
		"minecraft:rabbit_foot":            {},
		"minecraft:glistering_melon_slice": {},
		"minecraft:magma_cream":            {},
		"minecraft:golden_carrot":          {},
		"minecraft:pufferfish":             {},
		"minecraft:blaze_powder":           {},
		"minecraft:ghast_tear":             {},
		"minecraft:spider_eye":             {},
		"minecraft:phantom_membrane":       {},
		"minecraft:turtle_helmet":          {},
	}

	// brewingBottles holds all items that may be put in the bottle slots.
	brewingBottles = map[string]struct{}{
		"minecraft:potion":           {},
		"minecraft:splash_potion":    {},
		"minecraft:lingering_potion": {},
		"minecraft:glass_bottle":     {},
	}
)

const brewingFuel = "minecraft:blaze_powder"

// BrewingStand is a brewing stand whose bottles and ingredient are clicked directly.
type BrewingStand struct {
	base
}

// NewBrewingStand ...
func NewBrewingStand(pos df_cube.Pos, facing df_cube.Direction) *BrewingStand {
	return &BrewingStand{base: newBase(pos, facing, 5)}
}

// Name ...
func (*BrewingStand) Name() string {
	return "minecraft:brewing_stand"
}

// Router ...
func (*BrewingStand) Router() inventory.Router {
	return brewingRouter
}

// Boxes ...
func (*BrewingStand) Boxes() []selection.Box {
	return brewingBoxes
}

// Activate inserts the held stack into, or takes the stack out of, the slot of the box that was hit.
// Blaze powder held over the ingredient goes into the powder slot when CanInsertFuel allows it.
func (b *BrewingStand) Activate(hit selection.Hit, _ mgl32.Vec3, held item.Stack) (item.Stack, bool) {
	slot := hit.Slot
	if slot == BrewingIngredient && b.CanInsertFuel(held) {
		slot = BrewingPowder
	}
	if slot <= BrewingBottle3 && !held.Empty() {
		// Bottles are placed one at a time.
		if !b.inv.Slot(slot).Empty() || !b.ValidFor(slot, held) {
			return held, false
		}
		b.inv.SetSlot(slot, held.Grow(1-held.Count()))
		return held.Grow(-1), true
	}
	return swapWithHand(b.inv, slot, held, func(s item.Stack) bool {
		return b.ValidFor(slot, s)
	})
}

// CanInsertFuel checks if the stack passed should go into the powder slot rather than the ingredient slot.
func (b *BrewingStand) CanInsertFuel(s item.Stack) bool {
	if s.Empty() || !b.ValidFor(BrewingPowder, s) {
		return false
	}
	ingredient, fuel := b.inv.Slot(BrewingIngredient), b.inv.Slot(BrewingPowder)
	if ingredient.Empty() && b.ValidFor(BrewingIngredient, s) {
		return false
	}
	if !ingredient.Empty() && ingredient.Comparable(s) {
		// The ingredient is preferred as long as it has space left.
		return ingredient.Count() == ingredient.MaxCount()
	}
	return fuel.Empty() || (fuel.Comparable(s) && fuel.Count() != fuel.MaxCount())
}

// ValidFor checks if the stack passed may be put into the slot passed.
func (*BrewingStand) ValidFor(slot int, s item.Stack) bool {
	name := itemName(s)
	switch slot {
	case BrewingIngredient:
		_, ok := brewingReagents[name]
		return ok
	case BrewingPowder:
		return name == brewingFuel
	}
	_, ok := brewingBottles[name]
	return ok
}
