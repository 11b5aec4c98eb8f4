package engine

import "golang.org/x/sync/errgroup"

// Input is the per-tick control state. Left and Right are held this tick,
// Confirm was released this tick.
type Input struct {
	Left    bool
	Right   bool
	Confirm bool
}

// beginTick runs the state machine and reports whether the simulation
// advances this tick.
func beginTick(ctx *Context, in Input) bool {
	ctx.Frames++
	UpdatePhase(ctx, in.Confirm)
	if !ctx.Running() {
		return false
	}
	ctx.Tick++
	return true
}

// Step advances the simulation by one fixed tick: state machine, ball
// integration, paddle movement, then collisions. Physics and paddle movement
// are skipped entirely while paused.
func Step(ctx *Context, in Input) error {
	if !beginTick(ctx, in) {
		return nil
	}
	if err := ApplyVelocity(ctx); err != nil {
		return err
	}
	if err := MovePaddle(ctx, in.Left, in.Right); err != nil {
		return err
	}
	return CheckCollisions(ctx)
}

// StepConcurrent is Step with ball integration and paddle movement run in
// parallel. They touch disjoint actors, and collisions wait for both, so the
// result is identical to Step.
func StepConcurrent(ctx *Context, in Input) error {
	if !beginTick(ctx, in) {
		return nil
	}

	var g errgroup.Group
	g.Go(func() error { return ApplyVelocity(ctx) })
	g.Go(func() error { return MovePaddle(ctx, in.Left, in.Right) })
	if err := g.Wait(); err != nil {
		return err
	}
	return CheckCollisions(ctx)
}
