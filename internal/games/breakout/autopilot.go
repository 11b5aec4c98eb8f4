package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
)

// Autopilot produces input that keeps the paddle under the ball.
// It releases confirm once to leave the start overlay and never pauses.
type Autopilot struct {
	started bool
}

// Next returns the input for the coming tick.
func (a *Autopilot) Next(ctx *engine.Context) core.InputFrame {
	in := core.NewInputFrame()
	if ctx == nil {
		return in
	}

	if ctx.Overlay == engine.OverlayStart && !a.started {
		a.started = true
		in.Set(core.ActionConfirm)
		return in
	}

	ball, err := ctx.World.Ball()
	if err != nil {
		return in
	}
	paddle, err := ctx.World.Paddle()
	if err != nil {
		return in
	}

	// Only chase when the gap is bigger than one step, otherwise the paddle jitters
	diff := ball.Box.Center.X - paddle.Box.Center.X
	if math.Abs(diff) > ctx.Config.Paddle.Speed {
		if diff > 0 {
			in.Set(core.ActionRight)
		} else {
			in.Set(core.ActionLeft)
		}
	}
	return in
}
