package interaction

import (
	"github.com/oomph-ac/immersion/book"
	"github.com/oomph-ac/immersion/message"
	"github.com/oomph-ac/immersion/tile"
	"github.com/oomph-ac/immersion/util"
)

// Interact handles a click of the use key with the input passed. The click is resolved against the
// books of the enchanting tables passed, and a PageHit is returned if one of their pages was hit before
// the hovered block. Clicks are ignored while dragging.
func (m *Machine) Interact(in TickInput, candidates []book.Candidate) []message.Message {
	if m.state == StateDragging || !in.WorldLoaded || in.ScreenOpen {
		return nil
	}
	maxDistSq := in.Ray.MaxLength() * in.Ray.MaxLength()
	if in.Hovered != nil {
		maxDistSq = in.Hovered.Point.Sub(in.Ray.Origin).LenSqr()
	}
	hit, ok := book.Pick(in.Ray, in.Ray.Origin, candidates, in.PartialTicks, maxDistSq)
	if !ok {
		return nil
	}
	m.log.Debugf("clicked %v page of book at %v (%.1f, %.1f)", hit.Side, hit.Pos, hit.X, hit.Y)
	return []message.Message{&message.PageHit{
		Position: util.ProtocolBlockPosFromCubePos(hit.Pos),
		Right:    hit.Side == book.Right,
		X:        hit.X,
		Y:        hit.Y,
	}}
}

// OpenRecipes requests the recipe book of the crafting table targeted. Nothing is returned if the
// Machine is not targeting a crafting table, or while dragging.
func (m *Machine) OpenRecipes() []message.Message {
	if m.state != StateTargeting {
		return nil
	}
	if _, ok := m.target.(*tile.CraftingTable); !ok {
		return nil
	}
	return []message.Message{&message.OpenGui{
		Position: util.ProtocolBlockPosFromCubePos(m.target.Pos()),
		Mode:     message.GuiRecipes,
	}}
}

// OpenAnvilText requests the rename field of the anvil hovered. Nothing is returned while dragging.
func (m *Machine) OpenAnvilText(in TickInput) []message.Message {
	if m.state == StateDragging || in.Hovered == nil {
		return nil
	}
	if _, ok := in.Hovered.Tile.(*tile.Anvil); !ok {
		return nil
	}
	return []message.Message{&message.OpenGui{
		Position: util.ProtocolBlockPosFromCubePos(in.Hovered.Pos),
		Mode:     message.GuiAnvilText,
	}}
}

// ScrollBeacon requests a change of the effect selected on the beacon hovered. Looking at the lower half of
// the beacon changes the secondary effect. Nothing is returned while dragging.
func (m *Machine) ScrollBeacon(in TickInput, delta int32) []message.Message {
	if m.state == StateDragging || in.Hovered == nil || delta == 0 {
		return nil
	}
	if _, ok := in.Hovered.Tile.(*tile.Beacon); !ok {
		return nil
	}
	return []message.Message{&message.BeaconScroll{
		Position:  util.ProtocolBlockPosFromCubePos(in.Hovered.Pos),
		Secondary: in.Hovered.Point.Y()-float32(in.Hovered.Pos.Y()) < 0.5,
		Delta:     delta,
	}}
}
