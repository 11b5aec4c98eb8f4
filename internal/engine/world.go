// Package engine implements the fixed-tick Breakout simulation: an arena of
// actors, ball integration, the paddle controller, collision and scoring, and
// the run/pause state machine. It performs no I/O.
package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// EntityID identifies an actor. IDs are never recycled; 0 is "nil".
type EntityID uint64

// Kind is the actor discriminant.
type Kind int

const (
	KindWall Kind = iota
	KindBrick
	KindPaddle
	KindBall
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindBrick:
		return "brick"
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	default:
		return "unknown"
	}
}

// IsCollider reports whether actors of this kind are tested against the ball.
func (k Kind) IsCollider() bool {
	return k == KindWall || k == KindBrick || k == KindPaddle
}

// Actor is the uniform record stored for every entity.
type Actor struct {
	ID       EntityID
	Kind     Kind
	Box      core.AABB
	Velocity core.Vec2 // Only the ball moves by velocity
	Row, Col int       // Brick grid cell, -1 for other kinds
}

var (
	// ErrBallCount is returned when the arena does not hold exactly one ball.
	ErrBallCount = errors.New("engine: expected exactly one ball")

	// ErrPaddleCount is returned when the arena does not hold exactly one paddle.
	ErrPaddleCount = errors.New("engine: expected exactly one paddle")
)

// World is an indexed arena of actors kept in spawn order.
type World struct {
	nextID EntityID
	actors []Actor
	index  map[EntityID]int
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		nextID: 1,
		index:  make(map[EntityID]int),
	}
}

// Spawn adds an actor and returns its new ID. Any ID on a is ignored.
func (w *World) Spawn(a Actor) EntityID {
	a.ID = w.nextID
	w.nextID++
	w.index[a.ID] = len(w.actors)
	w.actors = append(w.actors, a)
	return a.ID
}

// Despawn removes an actor, keeping the remaining actors in spawn order.
// Returns false if the ID is unknown.
func (w *World) Despawn(id EntityID) bool {
	i, ok := w.index[id]
	if !ok {
		return false
	}
	w.actors = append(w.actors[:i], w.actors[i+1:]...)
	delete(w.index, id)
	for j := i; j < len(w.actors); j++ {
		w.index[w.actors[j].ID] = j
	}
	return true
}

// Get returns a pointer to the actor with the given ID.
// The pointer is invalidated by the next Spawn or Despawn.
func (w *World) Get(id EntityID) (*Actor, bool) {
	i, ok := w.index[id]
	if !ok {
		return nil, false
	}
	return &w.actors[i], true
}

// Actors returns the live actors in spawn order. Callers must not retain
// the slice across Spawn or Despawn.
func (w *World) Actors() []Actor {
	return w.actors
}

// Len returns the number of live actors.
func (w *World) Len() int {
	return len(w.actors)
}

// Count returns the number of live actors of a kind.
func (w *World) Count(kind Kind) int {
	n := 0
	for i := range w.actors {
		if w.actors[i].Kind == kind {
			n++
		}
	}
	return n
}

// Ball returns the single ball actor.
func (w *World) Ball() (*Actor, error) {
	return w.single(KindBall, ErrBallCount)
}

// Paddle returns the single paddle actor.
func (w *World) Paddle() (*Actor, error) {
	return w.single(KindPaddle, ErrPaddleCount)
}

func (w *World) single(kind Kind, sentinel error) (*Actor, error) {
	var found *Actor
	n := 0
	for i := range w.actors {
		if w.actors[i].Kind != kind {
			continue
		}
		n++
		if found == nil {
			found = &w.actors[i]
		}
	}
	if n != 1 {
		return nil, fmt.Errorf("%w, found %d", sentinel, n)
	}
	return found, nil
}
