package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Context is the explicit simulation context threaded through every step.
// It owns the world, the scoreboard, the phase and the event queue.
type Context struct {
	Config  config.BreakoutConfig
	World   *World
	Score   int
	Phase   Phase
	Overlay Overlay
	Events  *EventQueue

	Tick   uint64 // Ticks simulated while running
	Frames uint64 // All Step calls, paused or not
}

// NewContext validates cfg and spawns the initial arena: four walls, the
// brick grid, the paddle and the ball, in that order.
func NewContext(cfg config.BreakoutConfig) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx := &Context{
		Config: cfg,
		World:  NewWorld(),
		Events: NewEventQueue(cfg.Rules.MaxEvents),
	}
	ctx.Phase, ctx.Overlay = initialPhase(cfg.Rules.Pause, cfg.Rules.StartPaused)

	spawnWalls(ctx.World, cfg.Arena)
	spawnBricks(ctx.World, cfg.Grid)
	spawnPaddle(ctx.World, cfg)
	spawnBall(ctx.World, cfg.Ball)

	if _, err := ctx.World.Ball(); err != nil {
		return nil, fmt.Errorf("spawn arena: %w", err)
	}
	return ctx, nil
}

func spawnWalls(w *World, a config.BreakoutArena) {
	side := core.V(a.WallThickness, a.WallLength)
	span := core.V(a.WallSpan, a.WallThickness)

	walls := []core.AABB{
		core.BoxFromSize(core.V(a.LeftWall, 0), side),
		core.BoxFromSize(core.V(a.RightWall, 0), side),
		core.BoxFromSize(core.V(a.HorizontalOffset, a.TopWall), span),
		core.BoxFromSize(core.V(a.HorizontalOffset, a.BottomWall), span),
	}
	for _, box := range walls {
		w.Spawn(Actor{Kind: KindWall, Box: box, Row: -1, Col: -1})
	}
}

// BrickCenter returns the world center of the brick at (row, col).
func BrickCenter(g config.BreakoutGrid, row, col int) core.Vec2 {
	return core.V(
		g.Left+float64(col)*(g.CellWidth+g.Spacing),
		g.Top-float64(row)*(g.CellHeight+g.Spacing),
	)
}

func spawnBricks(w *World, g config.BreakoutGrid) {
	size := core.V(g.CellWidth, g.CellHeight)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			w.Spawn(Actor{
				Kind: KindBrick,
				Box:  core.BoxFromSize(BrickCenter(g, row, col), size),
				Row:  row,
				Col:  col,
			})
		}
	}
}

func spawnPaddle(w *World, cfg config.BreakoutConfig) {
	w.Spawn(Actor{
		Kind: KindPaddle,
		Box:  core.BoxFromSize(core.V(0, cfg.PaddleY()), core.V(cfg.Paddle.Width, cfg.Paddle.Height)),
		Row:  -1,
		Col:  -1,
	})
}

func spawnBall(w *World, b config.BreakoutBall) {
	dir := core.V(b.DirectionX, b.DirectionY).Normalize()
	w.Spawn(Actor{
		Kind:     KindBall,
		Box:      core.BoxFromSize(core.V(b.StartX, b.StartY), core.V(b.Size, b.Size)),
		Velocity: dir.Scale(b.Speed),
		Row:      -1,
		Col:      -1,
	})
}

func (ctx *Context) emit(kind core.EventKind, id EntityID) {
	ctx.Events.Push(core.Event{Kind: kind, Entity: uint64(id), Tick: ctx.Tick})
}

// Running reports whether the simulation advances this tick.
func (ctx *Context) Running() bool {
	return ctx.Phase == PhaseRunning
}

// BricksLeft returns the number of bricks still in the arena.
func (ctx *Context) BricksLeft() int {
	return ctx.World.Count(KindBrick)
}
