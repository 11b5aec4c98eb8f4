package engine

import "github.com/vovakirdan/tui-breakout/internal/core"

// Reflect flips the velocity component that opposes the struck edge.
// A component already moving away from the collider is left alone, so a ball
// that lingers inside a collider is not flipped back and forth.
func Reflect(v core.Vec2, edge core.Edge) core.Vec2 {
	switch edge {
	case core.EdgeLeft:
		if v.X > 0 {
			v.X = -v.X
		}
	case core.EdgeRight:
		if v.X < 0 {
			v.X = -v.X
		}
	case core.EdgeTop:
		if v.Y < 0 {
			v.Y = -v.Y
		}
	case core.EdgeBottom:
		if v.Y > 0 {
			v.Y = -v.Y
		}
	}
	return v
}

// CheckCollisions tests the ball against every collider in spawn order.
// Each hit raises a collision event and reflects the ball; velocity changes
// accumulate across colliders within the tick. Struck bricks are removed
// after the pass and, when scoring is on, count toward the score.
func CheckCollisions(ctx *Context) error {
	ball, err := ctx.World.Ball()
	if err != nil {
		return err
	}

	var destroyed []EntityID
	actors := ctx.World.Actors()
	for i := range actors {
		c := &actors[i]
		if !c.Kind.IsCollider() {
			continue
		}

		edge := core.Collide(ball.Box, c.Box)
		if edge == core.EdgeNone {
			continue
		}

		ctx.emit(core.EventCollision, c.ID)
		if c.Kind == KindBrick {
			destroyed = append(destroyed, c.ID)
			if ctx.Config.Rules.Scoring {
				ctx.Score++
				ctx.emit(core.EventExplosion, c.ID)
			}
		}
		ball.Velocity = Reflect(ball.Velocity, edge)
	}

	for _, id := range destroyed {
		ctx.World.Despawn(id)
	}
	return nil
}
