package engine

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a compact, comparable view of the simulation used for
// determinism checks and replay verification.
type Snapshot struct {
	Frames  uint64
	Tick    uint64
	Score   int
	Phase   Phase
	Overlay Overlay
	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64
	Bricks  []EntityID // Live bricks in spawn order
	Dropped uint64     // Events discarded by the bounded queue
}

// Snapshot captures the current state.
func (ctx *Context) Snapshot() Snapshot {
	s := Snapshot{
		Frames:  ctx.Frames,
		Tick:    ctx.Tick,
		Score:   ctx.Score,
		Phase:   ctx.Phase,
		Overlay: ctx.Overlay,
		Dropped: ctx.Events.Dropped(),
	}
	for _, a := range ctx.World.Actors() {
		switch a.Kind {
		case KindBrick:
			s.Bricks = append(s.Bricks, a.ID)
		case KindPaddle:
			s.PaddleX = a.Box.Center.X
		case KindBall:
			s.BallX, s.BallY = a.Box.Center.X, a.Box.Center.Y
			s.BallVX, s.BallVY = a.Velocity.X, a.Velocity.Y
		}
	}
	return s
}

// Hash returns an xxhash digest of the snapshot. Equal states hash equal.
func (s Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}

	put(s.Frames)
	put(s.Tick)
	put(uint64(s.Score))
	put(uint64(s.Phase))
	put(uint64(s.Overlay))
	for _, f := range []float64{s.PaddleX, s.BallX, s.BallY, s.BallVX, s.BallVY} {
		put(math.Float64bits(f))
	}
	put(uint64(len(s.Bricks)))
	for _, id := range s.Bricks {
		put(uint64(id))
	}
	put(s.Dropped)
	return d.Sum64()
}
