package handler

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/immersion/game"
	"github.com/oomph-ac/immersion/message"
	"github.com/oomph-ac/immersion/oerror"
	"github.com/oomph-ac/immersion/omath"
	"github.com/oomph-ac/immersion/settings"
	"github.com/oomph-ac/immersion/util"
	"github.com/oomph-ac/immersion/worker"
	"github.com/oomph-ac/immersion/world"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Player is a player connected to the server that interacts with blocks.
type Player interface {
	UUID() uuid.UUID
	Name() string
	// Held returns the stack the server knows the player holds.
	Held() item.Stack
	SetHeld(s item.Stack)
	// EyeRay returns the ray from the eyes of the player along their look direction.
	EyeRay() omath.Ray
	// Send sends a message to the client of the player.
	Send(msg message.Message)
}

// Handler handles the messages clients send about their interactions with the blocks of a world. All
// changes to the world are made on a single queue, so that messages are handled in the order they were
// received.
type Handler struct {
	world    *world.World
	log      *logrus.Logger
	settings settings.Settings
	metrics  *Metrics
	queue    *worker.Queue

	mu      deadlock.Mutex
	tick    int64
	players map[uuid.UUID]Player
	limits  map[uuid.UUID]*RateLimit
}

// New creates a Handler for the world passed.
func New(w *world.World, log *logrus.Logger, s settings.Settings, metrics *Metrics) *Handler {
	return &Handler{
		world:    w,
		log:      log,
		settings: s,
		metrics:  metrics,
		queue:    worker.NewQueue(s.Server.QueueSize),
		players:  make(map[uuid.UUID]Player),
		limits:   make(map[uuid.UUID]*RateLimit),
	}
}

// Join adds a player that may send messages to the handler and receives notices about shared blocks.
func (h *Handler) Join(p Player) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.players[p.UUID()] = p
	h.limits[p.UUID()] = &RateLimit{LastReset: h.tick}
}

// Quit removes a player. Anvils locked by the player are released.
func (h *Handler) Quit(p Player) {
	h.mu.Lock()
	delete(h.players, p.UUID())
	delete(h.limits, p.UUID())
	h.mu.Unlock()

	h.queue.Submit(func() {
		h.releaseAnvils(p)
	})
}

// HandleRaw decodes a message sent by the client of a player and queues it to be handled.
func (h *Handler) HandleRaw(p Player, b []byte) {
	msg, err := message.Decode(b)
	if err != nil {
		h.log.Debugf("dropped message from %v: %v", p.Name(), err)
		h.metrics.rejected.WithLabelValues("malformed").Inc()
		return
	}
	h.Handle(p, msg)
}

// Handle queues a message sent by the client of a player to be handled. Messages over the rate limit of
// the player are dropped.
func (h *Handler) Handle(p Player, msg message.Message) {
	if !h.allow(p) {
		h.metrics.rejected.WithLabelValues(messageName(msg)).Inc()
		return
	}
	h.queue.Submit(func() {
		_ = h.HandleNow(p, msg)
	})
}

// HandleNow handles a message sent by the client of a player immediately. It must only be called by the
// goroutine owning the world, or by functions running on the queue of the handler. Any error returned
// has already been logged, and means the message was ignored.
func (h *Handler) HandleNow(p Player, msg message.Message) error {
	var err error
	switch msg := msg.(type) {
	case *message.DragCommit:
		err = h.handleDragCommit(p, msg)
	case *message.PageHit:
		err = h.handlePageHit(p, msg)
	case *message.OpenGui:
		err = h.handleOpenGui(p, msg)
	case *message.TextUpdate:
		err = h.handleTextUpdate(p, msg)
	case *message.AnvilLock:
		err = h.handleAnvilLock(p, msg)
	case *message.BeaconScroll:
		err = h.handleBeaconScroll(p, msg)
	default:
		err = oerror.New(game.ErrorUnexpectedMessage, msg)
	}
	name := messageName(msg)
	if err != nil {
		h.log.Debugf("ignored %v from %v: %v", name, p.Name(), err)
		h.metrics.rejected.WithLabelValues(name).Inc()
		return err
	}
	h.metrics.handled.WithLabelValues(name).Inc()
	return nil
}

// Tick queues a tick of the world, animating the books of enchanting tables for the players online.
func (h *Handler) Tick() {
	h.mu.Lock()
	h.tick++
	tick := h.tick
	online := make([]Player, 0, len(h.players))
	for _, p := range h.players {
		online = append(online, p)
	}
	for _, l := range h.limits {
		l.Tick(tick)
	}
	h.mu.Unlock()

	h.queue.Submit(func() {
		positions := make([]mgl32.Vec3, 0, len(online))
		for _, p := range online {
			positions = append(positions, p.EyeRay().Origin)
		}
		h.world.Tick(positions, float32(h.settings.Interaction.ScanRadius))
	})
}

// Flush blocks until everything queued so far was handled.
func (h *Handler) Flush() {
	h.queue.Wait()
}

// Close handles everything still queued and stops the handler.
func (h *Handler) Close() {
	h.queue.Close()
}

// allow counts a message against the rate limit of the player passed.
func (h *Handler) allow(p Player) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	l, ok := h.limits[p.UUID()]
	if !ok {
		return false
	}
	if l.Allow(h.settings.Server.MaxMessagesPerSecond) {
		return true
	}
	if !l.DidWarn {
		l.DidWarn = true
		h.log.Warnf("%v: %v", p.Name(), oerror.New(game.ErrorRateLimited))
	}
	return false
}

// broadcast sends a message to all players except the one passed.
func (h *Handler) broadcast(except Player, msg message.Message) {
	h.mu.Lock()
	players := make([]Player, 0, len(h.players))
	for id, p := range h.players {
		if id != except.UUID() {
			players = append(players, p)
		}
	}
	h.mu.Unlock()

	for _, p := range players {
		p.Send(msg)
	}
}

// checkReach returns an error if the block at the position passed is out of reach of the player.
func (h *Handler) checkReach(p Player, pos df_cube.Pos) error {
	// The centre of a block is at most half a diagonal away from the point that was clicked.
	const halfDiagonal = 0.8661
	dist := p.EyeRay().Origin.Sub(util.BlockCentre(pos)).Len()
	if reach := h.settings.Interaction.Reach; dist > reach+halfDiagonal {
		return oerror.New(game.ErrorOutOfReach, pos, dist, reach)
	}
	return nil
}

func messageName(msg message.Message) string {
	switch msg.(type) {
	case *message.DragCommit:
		return "drag_commit"
	case *message.PageHit:
		return "page_hit"
	case *message.OpenGui:
		return "open_gui"
	case *message.TextUpdate:
		return "text_update"
	case *message.AnvilLock:
		return "anvil_lock"
	case *message.BeaconScroll:
		return "beacon_scroll"
	}
	return "unknown"
}
