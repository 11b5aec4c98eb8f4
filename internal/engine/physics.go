package engine

// ApplyVelocity advances the ball by velocity times the fixed tick duration.
func ApplyVelocity(ctx *Context) error {
	ball, err := ctx.World.Ball()
	if err != nil {
		return err
	}
	ball.Box.Center = ball.Box.Center.Add(ball.Velocity.Scale(ctx.Config.TickSeconds()))
	return nil
}
