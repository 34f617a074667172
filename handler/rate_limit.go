package handler

import (
	"github.com/oomph-ac/immersion/game"
)

// ResetInterval is the amount of seconds after which the message count of a player is reset.
const ResetInterval = 8

// RateLimit counts the messages a single player sent since the last reset.
type RateLimit struct {
	NumMessages int
	LastReset   int64
	// DidWarn is true once the player exceeded the limit and was logged for it, until the next reset.
	DidWarn bool
}

// Allow counts a message and checks if the limit passed, per second, still allows it.
func (r *RateLimit) Allow(perSecond int) bool {
	r.NumMessages++
	return r.NumMessages <= perSecond*ResetInterval
}

// Tick resets the count once the reset interval passed since the last reset.
func (r *RateLimit) Tick(tick int64) {
	if tick > r.LastReset+ResetInterval*game.TicksPerSecond {
		r.LastReset = tick
		r.NumMessages = 0
		r.DidWarn = false
	}
}
