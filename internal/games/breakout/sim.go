package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Summary reports a headless run.
type Summary struct {
	Game       string
	Ticks      uint64
	Frames     int
	Score      int
	Bricks     int
	Collisions int
	Explosions int
	Dropped    uint64
	Hash       uint64
}

// Simulate resets g and drives it with the autopilot for at most frames
// steps, stopping early once every brick is gone.
func Simulate(g *Game, runtime core.RuntimeConfig, frames int) (Summary, error) {
	g.Reset(runtime)

	var pilot Autopilot
	sum := Summary{Game: g.ID()}
	for sum.Frames < frames {
		res := g.Step(pilot.Next(g.ctx))
		sum.Frames++
		if res.Err != nil {
			return sum, res.Err
		}
		for _, ev := range res.Events {
			switch ev.Kind {
			case core.EventCollision:
				sum.Collisions++
			case core.EventExplosion:
				sum.Explosions++
			}
		}
		if res.State.Bricks == 0 {
			break
		}
	}

	snap := g.Snapshot()
	st := g.State()
	sum.Ticks = st.Tick
	sum.Score = st.Score
	sum.Bricks = st.Bricks
	sum.Dropped = snap.Dropped
	sum.Hash = snap.Hash()
	return sum, nil
}
