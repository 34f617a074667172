package tile

import (
	"unicode/utf8"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/inventory"
	"github.com/oomph-ac/immersion/oerror"
	"github.com/oomph-ac/immersion/selection"
)

const (
	AnvilInput = iota
	AnvilMaterial
	AnvilOutput
)

// MaxNameLength is the maximum amount of characters in a name given to an item on an anvil.
const MaxNameLength = 30

var (
	anvilBoxes = []selection.Box{
		selection.NewBox(cube.Box(0, 0, 0, 1, 1, 1), inventory.Invalid, selection.WithRightClicks()),
	}

	// anvilRouter never exposes the output: it is a renamed copy of the input until it is taken.
	anvilRouter = inventory.Router{
		Table: map[df_cube.Direction]inventory.Region{},
		Up:    inventory.Ptr(inventory.Region{Start: AnvilInput, Count: 2}),
	}
)

// Anvil is an anvil whose item is renamed through a text field shown to a single player at a time. While
// that player is typing, the anvil is locked for everyone else.
type Anvil struct {
	base
	name     string
	lockedBy uuid.UUID
}

// NewAnvil ...
func NewAnvil(pos df_cube.Pos, facing df_cube.Direction) *Anvil {
	a := &Anvil{base: newBase(pos, facing, 3)}
	a.inv.Observe(func(slot int, _, _ item.Stack) {
		if slot == AnvilInput {
			a.updateOutput()
		}
	})
	return a
}

// Name ...
func (*Anvil) Name() string {
	return "minecraft:anvil"
}

// Router ...
func (*Anvil) Router() inventory.Router {
	return anvilRouter
}

// Boxes ...
func (*Anvil) Boxes() []selection.Box {
	return anvilBoxes
}

// Activate handles a right click on the top of the anvil. An empty hand takes the renamed output if there
// is one, and the input otherwise. A held stack is put on the anvil, as input or, if the input cannot take
// it, as material.
func (a *Anvil) Activate(hit selection.Hit, _ mgl32.Vec3, held item.Stack) (item.Stack, bool) {
	if hit.Face != df_cube.FaceUp {
		return held, false
	}
	if held.Empty() {
		if out := a.TakeOutput(); !out.Empty() {
			return out, true
		}
		return swapWithHand(a.inv, AnvilInput, held, nil)
	}
	if rest, ok := swapWithHand(a.inv, AnvilInput, held, nil); ok {
		return rest, true
	}
	return swapWithHand(a.inv, AnvilMaterial, held, nil)
}

// TakeOutput takes the renamed item out of the anvil. The input it was made from is consumed and the name
// is reset. An empty stack is returned if there is no output.
func (a *Anvil) TakeOutput() item.Stack {
	out := a.inv.Slot(AnvilOutput)
	if out.Empty() {
		return out
	}
	a.name = ""
	input := a.inv.Slot(AnvilInput)
	a.inv.SetSlot(AnvilInput, input.Grow(-min(out.Count(), input.Count())))
	a.inv.SetSlot(AnvilOutput, item.Stack{})
	return out
}

// ItemName returns the name last given to the item on the anvil.
func (a *Anvil) ItemName() string {
	return a.name
}

// Locked checks if a player is currently editing the name on the anvil.
func (a *Anvil) Locked() bool {
	return a.lockedBy != uuid.Nil
}

// LockedBy returns the player editing the name on the anvil, or uuid.Nil.
func (a *Anvil) LockedBy() uuid.UUID {
	return a.lockedBy
}

// Lock locks the anvil for the player passed. False is returned if another player holds the lock.
func (a *Anvil) Lock(owner uuid.UUID) bool {
	if a.Locked() && a.lockedBy != owner {
		return false
	}
	a.lockedBy = owner
	return true
}

// Unlock releases the lock held by the player passed. False is returned if the player did not hold it.
func (a *Anvil) Unlock(owner uuid.UUID) bool {
	if a.lockedBy != owner {
		return false
	}
	a.lockedBy = uuid.Nil
	return true
}

// Rename sets the name given to the item on the anvil and releases the lock of the player renaming it.
// The output slot is updated to hold the renamed input.
func (a *Anvil) Rename(owner uuid.UUID, text string) error {
	if a.Locked() && a.lockedBy != owner {
		return oerror.New(game.ErrorAnvilLocked, a.pos)
	}
	if n := utf8.RuneCountInString(text); n > MaxNameLength {
		return oerror.New(game.ErrorTextTooLong, n, MaxNameLength)
	}
	a.name = text
	a.lockedBy = uuid.Nil
	a.updateOutput()
	return nil
}

// updateOutput puts a copy of the input with the current name in the output slot. It runs every time the
// input changes.
func (a *Anvil) updateOutput() {
	input := a.inv.Slot(AnvilInput)
	if input.Empty() || a.name == "" || a.name == input.CustomName() {
		a.inv.SetSlot(AnvilOutput, item.Stack{})
		return
	}
	a.inv.SetSlot(AnvilOutput, input.WithCustomName(a.name))
}
