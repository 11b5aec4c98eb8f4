package engine

import "github.com/vovakirdan/tui-breakout/internal/core"

// MovePaddle moves the paddle by at most one speed step and clamps its center
// to the configured travel bounds. When both directions are held, right wins.
func MovePaddle(ctx *Context, left, right bool) error {
	paddle, err := ctx.World.Paddle()
	if err != nil {
		return err
	}

	dir := 0.0
	if left {
		dir = -1
	}
	if right {
		dir = 1
	}

	x := paddle.Box.Center.X + dir*ctx.Config.Paddle.Speed
	paddle.Box.Center.X = core.ClampF(x, ctx.Config.PaddleLeftBound(), ctx.Config.PaddleRightBound())
	return nil
}
