package tile

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/entity/effect"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/inventory"
	"github.com/oomph-ac/immersion/oerror"
	"github.com/oomph-ac/immersion/selection"
)

// BeaconPayment is the slot holding the item that pays for the selected effects.
const BeaconPayment = 0

// MaxBeaconLevels is the amount of pyramid levels needed for a secondary effect.
const MaxBeaconLevels = 4

var (
	beaconBoxes = []selection.Box{
		selection.NewBox(cube.Box(0, 0, 0, 1, 1, 1), BeaconPayment, selection.WithRightClicks()),
	}

	// beaconPrimaries holds the primary effects and the levels needed for each.
	beaconPrimaries = []struct {
		effect effect.LastingType
		levels int
	}{
		{effect: effect.Speed, levels: 1},
		{effect: effect.Haste, levels: 1},
		{effect: effect.Resistance, levels: 2},
		{effect: effect.JumpBoost, levels: 2},
		{effect: effect.Strength, levels: 3},
	}
)

// Beacon is a beacon whose effects are chosen by scrolling while looking at it, and bought by putting a
// payment into it and clicking it with an empty hand.
type Beacon struct {
	base
	levels int
	// Primary and Secondary are the effects bought, or nil. A secondary effect equal to the primary one
	// raises the level of the primary effect.
	Primary, Secondary effect.LastingType
	// selectedPrimary and selectedSecondary are the effects the next payment buys.
	selectedPrimary, selectedSecondary effect.LastingType
}

// NewBeacon ...
func NewBeacon(pos df_cube.Pos, facing df_cube.Direction) *Beacon {
	return &Beacon{base: newBase(pos, facing, 1)}
}

// Name ...
func (*Beacon) Name() string {
	return "minecraft:beacon"
}

// Router returns a router exposing nothing. The payment is only put in by hand.
func (*Beacon) Router() inventory.Router {
	return inventory.Router{}
}

// Boxes ...
func (*Beacon) Boxes() []selection.Box {
	return beaconBoxes
}

// Levels returns the amount of pyramid levels below the beacon.
func (b *Beacon) Levels() int {
	return b.levels
}

// SetLevels sets the amount of pyramid levels below the beacon. Selected effects that are no longer
// available are dropped.
func (b *Beacon) SetLevels(levels int) {
	b.levels = max(0, min(levels, MaxBeaconLevels))
	if !b.primaryAllowed(b.selectedPrimary) {
		b.selectedPrimary = nil
	}
	if b.levels < MaxBeaconLevels || (b.selectedPrimary == nil && b.selectedSecondary != effect.Regeneration) {
		b.selectedSecondary = nil
	}
}

// Selected returns the effects the next payment buys.
func (b *Beacon) Selected() (primary, secondary effect.LastingType) {
	return b.selectedPrimary, b.selectedSecondary
}

// Scroll moves the selection of the primary or secondary effect by delta steps, wrapping around, and returns
// the effect now selected. The secondary effect is either regeneration or the selected primary effect at a
// higher level.
func (b *Beacon) Scroll(secondary bool, delta int) (effect.LastingType, error) {
	if b.levels == 0 {
		return nil, oerror.New(game.ErrorBeaconInactive, b.pos)
	}
	if !secondary {
		b.selectedPrimary = step(b.primaryOptions(), b.selectedPrimary, delta)
		if b.selectedSecondary != nil && b.selectedSecondary != effect.Regeneration {
			b.selectedSecondary = b.selectedPrimary
		}
		return b.selectedPrimary, nil
	}
	if b.levels < MaxBeaconLevels {
		return nil, oerror.New(game.ErrorBeaconSecondary, b.pos, MaxBeaconLevels, b.levels)
	}
	options := []effect.LastingType{effect.Regeneration}
	if b.selectedPrimary != nil {
		options = append(options, b.selectedPrimary)
	}
	b.selectedSecondary = step(options, b.selectedSecondary, delta)
	return b.selectedSecondary, nil
}

// Activate puts a single payment item held into the beacon. With an empty hand, the selected effects are
// bought if there is a payment, or the payment is taken back if nothing is selected.
func (b *Beacon) Activate(_ selection.Hit, _ mgl32.Vec3, held item.Stack) (item.Stack, bool) {
	payment := b.inv.Slot(BeaconPayment)
	if !held.Empty() {
		if !payment.Empty() || !b.ValidFor(BeaconPayment, held) {
			return held, false
		}
		b.inv.SetSlot(BeaconPayment, held.Grow(1-held.Count()))
		return held.Grow(-1), true
	}
	if payment.Empty() {
		return held, false
	}
	if b.selectedPrimary == nil {
		b.inv.SetSlot(BeaconPayment, item.Stack{})
		return payment, true
	}
	b.Primary, b.Secondary = b.selectedPrimary, b.selectedSecondary
	b.inv.SetSlot(BeaconPayment, item.Stack{})
	return held, true
}

// ValidFor checks if the stack passed may be put into the slot passed.
func (*Beacon) ValidFor(_ int, s item.Stack) bool {
	payable, ok := s.Item().(item.BeaconPayment)
	return ok && payable.PayableForBeacon()
}

func (b *Beacon) primaryOptions() []effect.LastingType {
	options := make([]effect.LastingType, 0, len(beaconPrimaries))
	for _, p := range beaconPrimaries {
		if p.levels <= b.levels {
			options = append(options, p.effect)
		}
	}
	return options
}

func (b *Beacon) primaryAllowed(e effect.LastingType) bool {
	for _, p := range beaconPrimaries {
		if p.effect == e {
			return p.levels <= b.levels
		}
	}
	return false
}

// step returns the option delta steps away from the current one. Starting without a current option, a
// positive delta starts at the first option and a negative one at the last.
func step(options []effect.LastingType, current effect.LastingType, delta int) effect.LastingType {
	i := -1
	for j, o := range options {
		if o == current {
			i = j
		}
	}
	if i < 0 {
		if delta > 0 {
			delta--
		}
		i = 0
	}
	n := len(options)
	return options[((i+delta)%n+n)%n]
}
