// Package sfx plays the game's fire-and-forget sound effects.
package sfx

import (
	"sync"

	"github.com/rs/zerolog"
)

// Effect names one of the fixed sound effects.
type Effect int

const (
	Shoot Effect = iota
	Hit
	Bomb
	PowerUp
	Win
	Lose
	numEffects
)

var effectNames = [numEffects]string{"shoot", "hit", "bomb", "powerup", "win", "lose"}

func (e Effect) String() string {
	if e < 0 || e >= numEffects {
		return "unknown"
	}
	return effectNames[e]
}

// Player triggers effects. Play must not block the caller.
type Player interface {
	Play(e Effect)
}

// Nop discards every effect.
type Nop struct{}

func (Nop) Play(Effect) {}

// Recorder counts triggered effects. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	counts [numEffects]int
	order  []Effect
}

func (r *Recorder) Play(e Effect) {
	if e < 0 || e >= numEffects {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[e]++
	r.order = append(r.order, e)
}

// Count returns how many times e has fired.
func (r *Recorder) Count(e Effect) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e < 0 || e >= numEffects {
		return 0
	}
	return r.counts[e]
}

// Total returns the number of effects fired.
func (r *Recorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Played returns the effects in firing order.
func (r *Recorder) Played() []Effect {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Effect(nil), r.order...)
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.counts[:])
	r.order = r.order[:0]
}

// Logger writes each effect as a debug event. Used where no audio device
// exists, e.g. remote sessions.
type Logger struct {
	Log zerolog.Logger
}

func (l Logger) Play(e Effect) {
	l.Log.Debug().Stringer("effect", e).Msg("sfx")
}
