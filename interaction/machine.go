package interaction

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/immersion/inventory"
	"github.com/oomph-ac/immersion/message"
	"github.com/oomph-ac/immersion/omath"
	"github.com/oomph-ac/immersion/selection"
	"github.com/oomph-ac/immersion/tile"
	"github.com/oomph-ac/immersion/util"
	"github.com/sirupsen/logrus"
)

// State is the state of a Machine.
type State int

const (
	// StateIdle is the state of a Machine not looking at anything it can drag over.
	StateIdle State = iota
	// StateTargeting is the state of a Machine looking at the top of a Draggable tile.
	StateTargeting
	// StateDragging is the state of a Machine while the use key is held over a Draggable tile.
	StateDragging
)

// String ...
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTargeting:
		return "targeting"
	case StateDragging:
		return "dragging"
	}
	return "unknown"
}

// Hovered is the block the player is looking at.
type Hovered struct {
	Pos df_cube.Pos
	// Tile is the tile at Pos, or nil if the block has none.
	Tile tile.Tile
	// Point is the point on the block the player is looking at, in world space.
	Point mgl32.Vec3
}

// TickInput is everything a Machine needs to know about a single client tick.
type TickInput struct {
	// Ray is the ray from the eyes of the player, limited to its reach.
	Ray     omath.Ray
	Hovered *Hovered
	// UseDown is true while the use key is held.
	UseDown bool
	Held    item.Stack
	// ScreenOpen is true if any screen is open on the client.
	ScreenOpen  bool
	WorldLoaded bool
	// PartialTicks is the fraction of the tick passed since the last one, used for animations.
	PartialTicks float32
}

// surface is the box of a full block. A Draggable is targeted if the top face of it is hit.
var surface = []selection.Box{selection.NewBox(cube.Box(0, 0, 0, 1, 1, 1), inventory.Invalid)}

// Machine follows the input of a client every tick and produces the messages sent to the server as a
// result of it. A Machine is not safe for concurrent use and is owned by the tick loop of the client.
type Machine struct {
	log *logrus.Logger

	state   State
	tick    int64
	target  tile.Draggable
	session *DragSession
	// awaitRelease is set when a drag is cancelled. No drag starts until the use key was released.
	awaitRelease bool
}

// NewMachine returns an idle Machine. Transitions are logged at the debug level to the logger passed.
func NewMachine(log *logrus.Logger) *Machine {
	return &Machine{log: log}
}

// State returns the current state of the Machine.
func (m *Machine) State() State {
	return m.state
}

// Session returns the drag session in progress, or nil if the Machine is not dragging.
func (m *Machine) Session() *DragSession {
	return m.session
}

// Tick advances the Machine by one tick and returns the messages that should be sent to the server.
func (m *Machine) Tick(in TickInput) []message.Message {
	m.tick++
	if m.state == StateDragging {
		return m.tickDragging(in)
	}
	if !in.UseDown {
		m.awaitRelease = false
	}

	target, hit, ok := m.resolve(in)
	if !ok {
		m.setState(StateIdle)
		m.target = nil
		return nil
	}
	m.target = target
	m.setState(StateTargeting)

	slot, ok := target.DragSlot(hit.Local(target.Pos()))
	if !in.UseDown || m.awaitRelease || !ok || in.Held.Empty() {
		return nil
	}
	m.session = newDragSession(target.Pos(), in.Held, m.tick)
	m.session.Touch(slot)
	m.session.Amounts(target.Inventory().Contents())
	m.setState(StateDragging)
	m.log.Debugf("started drag session %v at %v", m.session.ID, target.Pos())
	return nil
}

// tickDragging handles a tick while dragging and returns the messages to send if the drag ended.
func (m *Machine) tickDragging(in TickInput) []message.Message {
	s := m.session
	switch {
	case !in.WorldLoaded, in.ScreenOpen:
		m.cancel("screen or world changed")
		return nil
	case in.Hovered == nil || in.Hovered.Pos != s.Target || in.Hovered.Tile != m.target:
		m.cancel("target lost")
		return nil
	case !inventory.SameStack(in.Held, s.Held):
		m.cancel("held stack changed")
		return nil
	case !in.UseDown:
		return m.release()
	}

	hit, ok := selection.HitTestAt(in.Ray, s.Target, surface, df_cube.North, selection.ClickAny)
	if !ok || hit.Face != df_cube.FaceUp {
		return nil
	}
	if slot, ok := m.target.DragSlot(hit.Local(s.Target)); ok && s.Touch(slot) {
		s.Amounts(m.target.Inventory().Contents())
	}
	return nil
}

// release ends the drag session on release of the use key and returns the DragCommit for it.
func (m *Machine) release() []message.Message {
	s, start := m.session, m.target.DragSlots().Start
	m.end()
	if len(s.slots) == 0 || s.Held.Empty() {
		return nil
	}
	cells := make([]int32, 0, len(s.slots))
	for _, slot := range s.slots {
		cells = append(cells, int32(slot-start))
	}
	m.log.Debugf("committed drag session %v over %d slots", s.ID, len(cells))
	return []message.Message{&message.DragCommit{
		Position: util.ProtocolBlockPosFromCubePos(s.Target),
		Slots:    cells,
	}}
}

// cancel ends the drag session without committing it.
func (m *Machine) cancel(reason string) {
	m.log.Debugf("cancelled drag session %v: %v", m.session.ID, reason)
	m.end()
	m.awaitRelease = true
}

func (m *Machine) end() {
	m.session = nil
	m.target = nil
	m.setState(StateIdle)
}

// resolve returns the Draggable tile the input targets and the hit on the top of it.
func (m *Machine) resolve(in TickInput) (tile.Draggable, selection.Hit, bool) {
	if !in.WorldLoaded || in.ScreenOpen || in.Hovered == nil {
		return nil, selection.Hit{}, false
	}
	target, ok := in.Hovered.Tile.(tile.Draggable)
	if !ok || target.Pos() != in.Hovered.Pos {
		return nil, selection.Hit{}, false
	}
	hit, ok := selection.HitTestAt(in.Ray, target.Pos(), surface, df_cube.North, selection.ClickAny)
	if !ok || hit.Face != df_cube.FaceUp {
		return nil, selection.Hit{}, false
	}
	return target, hit, true
}

func (m *Machine) setState(s State) {
	if m.state != s {
		m.log.Tracef("interaction state %v -> %v", m.state, s)
		m.state = s
	}
}

// Preview returns the amount delivered to every slot dragged over so far, in the order the slots were
// touched. Nil is returned if the Machine is not dragging.
func (m *Machine) Preview() []inventory.Delivery {
	if m.session == nil {
		return nil
	}
	return m.session.Amounts(m.target.Inventory().Contents())
}
