package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// bareContext returns a running context with an empty world.
func bareContext(t *testing.T) *Context {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	config.ApplyPreset(&cfg, config.PresetScored)
	return &Context{
		Config: cfg,
		World:  NewWorld(),
		Events: NewEventQueue(cfg.Rules.MaxEvents),
	}
}

func spawnTestBall(ctx *Context, pos, vel core.Vec2) EntityID {
	return ctx.World.Spawn(Actor{
		Kind:     KindBall,
		Box:      core.BoxFromSize(pos, core.V(30, 30)),
		Velocity: vel,
	})
}

func spawnTestBrick(ctx *Context, pos core.Vec2) EntityID {
	return ctx.World.Spawn(Actor{
		Kind: KindBrick,
		Box:  core.BoxFromSize(pos, core.V(80, 30)),
	})
}

func spawnTestPaddle(ctx *Context, x float64) EntityID {
	return ctx.World.Spawn(Actor{
		Kind: KindPaddle,
		Box:  core.BoxFromSize(core.V(x, ctx.Config.PaddleY()), core.V(120, 20)),
	})
}

func TestNewContextLayout(t *testing.T) {
	ctx, err := NewContext(config.DefaultBreakoutConfig())
	require.NoError(t, err)

	assert.Equal(t, 4, ctx.World.Count(KindWall))
	assert.Equal(t, 50, ctx.BricksLeft())
	assert.Equal(t, 1, ctx.World.Count(KindPaddle))
	assert.Equal(t, 1, ctx.World.Count(KindBall))
	assert.Equal(t, PhasePaused, ctx.Phase)
	assert.Equal(t, OverlayStart, ctx.Overlay)

	ball, err := ctx.World.Ball()
	require.NoError(t, err)
	assert.InDelta(t, 0, ball.Box.Center.X, 1e-9)
	assert.InDelta(t, -50, ball.Box.Center.Y, 1e-9)
	assert.InDelta(t, 200, ball.Velocity.Len(), 1e-9)
	assert.Greater(t, ball.Velocity.X, 0.0)
	assert.Less(t, ball.Velocity.Y, 0.0)

	paddle, err := ctx.World.Paddle()
	require.NoError(t, err)
	assert.InDelta(t, -305, paddle.Box.Center.Y, 1e-9)

	first := BrickCenter(ctx.Config.Grid, 0, 0)
	last := BrickCenter(ctx.Config.Grid, 4, 9)
	assert.Equal(t, core.V(-350, 300), first)
	assert.Equal(t, core.V(415, 160), last)
}

func TestNewContextRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.TickRate = 0
	_, err := NewContext(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewContextPresets(t *testing.T) {
	for _, p := range []config.Preset{config.PresetClassic, config.PresetScored} {
		cfg := config.DefaultBreakoutConfig()
		config.ApplyPreset(&cfg, p)
		ctx, err := NewContext(cfg)
		require.NoError(t, err)
		assert.Equal(t, PhaseRunning, ctx.Phase, p)
		assert.Equal(t, OverlayNone, ctx.Overlay, p)
	}
}

func TestApplyVelocity(t *testing.T) {
	ctx := bareContext(t)
	spawnTestBall(ctx, core.V(0, 0), core.V(60, -120))

	require.NoError(t, ApplyVelocity(ctx))
	ball, _ := ctx.World.Ball()
	assert.InDelta(t, 1, ball.Box.Center.X, 1e-9)
	assert.InDelta(t, -2, ball.Box.Center.Y, 1e-9)
}

func TestOneTickBrickHit(t *testing.T) {
	ctx := bareContext(t)
	spawnTestPaddle(ctx, 0)
	spawnTestBall(ctx, core.V(0, 0), core.V(100, -100))
	brick := spawnTestBrick(ctx, core.V(0, -30))

	require.NoError(t, Step(ctx, Input{}))

	ball, err := ctx.World.Ball()
	require.NoError(t, err)
	assert.InDelta(t, 100.0/60.0, ball.Box.Center.X, 1e-9)
	assert.InDelta(t, -100.0/60.0, ball.Box.Center.Y, 1e-9)
	assert.Equal(t, 100.0, ball.Velocity.Y, "y velocity flips")
	assert.Equal(t, 100.0, ball.Velocity.X, "x velocity untouched")

	_, alive := ctx.World.Get(brick)
	assert.False(t, alive)
	assert.Equal(t, 1, ctx.Score)

	events := ctx.Events.Drain()
	require.Len(t, events, 2)
	assert.Equal(t, core.EventCollision, events[0].Kind)
	assert.Equal(t, core.EventExplosion, events[1].Kind)
	assert.Equal(t, uint64(brick), events[0].Entity)
	assert.Equal(t, uint64(1), events[0].Tick)

	// Removed brick stays gone on later ticks
	require.NoError(t, Step(ctx, Input{}))
	assert.Equal(t, 1, ctx.Score)
	assert.Zero(t, ctx.BricksLeft())
}

func TestClassicPresetDoesNotScore(t *testing.T) {
	ctx := bareContext(t)
	config.ApplyPreset(&ctx.Config, config.PresetClassic)
	spawnTestBall(ctx, core.V(0, -2), core.V(100, -100))
	brick := spawnTestBrick(ctx, core.V(0, -30))

	require.NoError(t, CheckCollisions(ctx))

	_, alive := ctx.World.Get(brick)
	assert.False(t, alive, "bricks still break")
	assert.Zero(t, ctx.Score)

	events := ctx.Events.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, core.EventCollision, events[0].Kind)
}

func TestSimultaneousBricksFlipOnce(t *testing.T) {
	ctx := bareContext(t)
	spawnTestBall(ctx, core.V(0, -25), core.V(0, 100))
	spawnTestBrick(ctx, core.V(-42.5, 0))
	spawnTestBrick(ctx, core.V(42.5, 0))

	require.NoError(t, CheckCollisions(ctx))

	ball, _ := ctx.World.Ball()
	assert.Equal(t, -100.0, ball.Velocity.Y, "second hit on the same edge does not flip back")
	assert.Equal(t, 2, ctx.Score)
	assert.Zero(t, ctx.BricksLeft())
	assert.Len(t, ctx.Events.Drain(), 4)
}

func TestReflectOnlyFlipsOpposingComponent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 2000; i++ {
		v := core.V(rng.Float64()*400-200, rng.Float64()*400-200)
		edge := core.Edge(rng.Intn(6))
		got := Reflect(v, edge)

		switch edge {
		case core.EdgeLeft:
			assert.LessOrEqual(t, got.X, 0.0)
			assert.Equal(t, v.Y, got.Y)
		case core.EdgeRight:
			assert.GreaterOrEqual(t, got.X, 0.0)
			assert.Equal(t, v.Y, got.Y)
		case core.EdgeTop:
			assert.GreaterOrEqual(t, got.Y, 0.0)
			assert.Equal(t, v.X, got.X)
		case core.EdgeBottom:
			assert.LessOrEqual(t, got.Y, 0.0)
			assert.Equal(t, v.X, got.X)
		default:
			assert.Equal(t, v, got)
		}
		assert.InDelta(t, v.Len(), got.Len(), 1e-9, "speed is preserved")
	}
}

func TestPaddleHeldLeftStaysAtBound(t *testing.T) {
	ctx := bareContext(t)
	left := ctx.Config.PaddleLeftBound()
	id := spawnTestPaddle(ctx, left)

	for i := 0; i < 100; i++ {
		require.NoError(t, MovePaddle(ctx, true, false))
		p, _ := ctx.World.Get(id)
		require.Equal(t, left, p.Box.Center.X, "tick %d", i)
	}
}

func TestPaddleStaysInBounds(t *testing.T) {
	ctx := bareContext(t)
	id := spawnTestPaddle(ctx, 0)
	lo, hi := ctx.Config.PaddleLeftBound(), ctx.Config.PaddleRightBound()

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		require.NoError(t, MovePaddle(ctx, rng.Intn(2) == 0, rng.Intn(3) == 0))
		p, _ := ctx.World.Get(id)
		require.GreaterOrEqual(t, p.Box.Center.X, lo)
		require.LessOrEqual(t, p.Box.Center.X, hi)
	}
}

func TestPaddleRightWinsWhenBothHeld(t *testing.T) {
	ctx := bareContext(t)
	id := spawnTestPaddle(ctx, 0)

	require.NoError(t, MovePaddle(ctx, true, true))
	p, _ := ctx.World.Get(id)
	assert.Equal(t, 10.0, p.Box.Center.X)

	require.NoError(t, MovePaddle(ctx, true, false))
	p, _ = ctx.World.Get(id)
	assert.Equal(t, 0.0, p.Box.Center.X)

	require.NoError(t, MovePaddle(ctx, false, false))
	p, _ = ctx.World.Get(id)
	assert.Equal(t, 0.0, p.Box.Center.X)
}

func TestPauseStateMachine(t *testing.T) {
	ctx, err := NewContext(config.DefaultBreakoutConfig())
	require.NoError(t, err)
	require.Equal(t, PhasePaused, ctx.Phase)

	frozen := func() (core.Vec2, core.Vec2) {
		b, err := ctx.World.Ball()
		require.NoError(t, err)
		return b.Box.Center, b.Velocity
	}
	pos, vel := frozen()

	for i := 0; i < 30; i++ {
		require.NoError(t, Step(ctx, Input{Left: true}))
	}
	p, v := frozen()
	assert.Equal(t, pos, p)
	assert.Equal(t, vel, v)
	assert.Equal(t, OverlayStart, ctx.Overlay)
	assert.Zero(t, ctx.Tick)
	assert.Equal(t, uint64(30), ctx.Frames)

	// First release starts the game and clears the start prompt
	require.NoError(t, Step(ctx, Input{Confirm: true}))
	assert.Equal(t, PhaseRunning, ctx.Phase)
	assert.Equal(t, OverlayNone, ctx.Overlay)
	assert.Equal(t, uint64(1), ctx.Tick)
	p, _ = frozen()
	assert.NotEqual(t, pos, p)

	// Second release pauses
	require.NoError(t, Step(ctx, Input{Confirm: true}))
	assert.Equal(t, PhasePaused, ctx.Phase)
	assert.Equal(t, OverlayPause, ctx.Overlay)

	pos, vel = frozen()
	snap := ctx.Snapshot()
	for i := 0; i < 200; i++ {
		require.NoError(t, Step(ctx, Input{Right: true}))
	}
	p, v = frozen()
	assert.Equal(t, pos, p)
	assert.Equal(t, vel, v)
	assert.Equal(t, OverlayPause, ctx.Overlay)
	assert.Equal(t, snap.PaddleX, ctx.Snapshot().PaddleX)
	assert.Equal(t, snap.Tick, ctx.Tick)
}

func TestPauseDisabledIgnoresConfirm(t *testing.T) {
	ctx := bareContext(t)
	spawnTestPaddle(ctx, 0)
	spawnTestBall(ctx, core.V(0, 0), core.V(0, 60))

	require.NoError(t, Step(ctx, Input{Confirm: true}))
	assert.Equal(t, PhaseRunning, ctx.Phase)
	assert.Equal(t, OverlayNone, ctx.Overlay)
	assert.Equal(t, uint64(1), ctx.Tick)
}

func TestStepFailsFastWithoutSingleBall(t *testing.T) {
	ctx := bareContext(t)
	spawnTestPaddle(ctx, 0)

	assert.ErrorIs(t, Step(ctx, Input{}), ErrBallCount)

	spawnTestBall(ctx, core.V(0, 0), core.V(1, 1))
	spawnTestBall(ctx, core.V(100, 0), core.V(1, 1))
	assert.ErrorIs(t, Step(ctx, Input{}), ErrBallCount)
	assert.ErrorIs(t, StepConcurrent(ctx, Input{}), ErrBallCount)
}

func TestStepFailsWithoutPaddle(t *testing.T) {
	ctx := bareContext(t)
	spawnTestBall(ctx, core.V(0, 0), core.V(1, 1))
	assert.ErrorIs(t, Step(ctx, Input{}), ErrPaddleCount)
}

func TestEventOverflowIsCounted(t *testing.T) {
	ctx := bareContext(t)
	ctx.Events = NewEventQueue(1)
	spawnTestBall(ctx, core.V(0, -25), core.V(0, 100))
	spawnTestBrick(ctx, core.V(-42.5, 0))
	spawnTestBrick(ctx, core.V(42.5, 0))

	require.NoError(t, CheckCollisions(ctx))
	assert.Equal(t, 1, ctx.Events.Len())
	assert.Equal(t, uint64(3), ctx.Events.Dropped())
	assert.Equal(t, 2, ctx.Score, "dropped events do not affect scoring")
}

// scriptedInput returns a deterministic input stream that starts the game
// and wanders the paddle.
func scriptedInput(i int) Input {
	return Input{
		Left:    (i/90)%2 == 0,
		Right:   (i/45)%3 == 0,
		Confirm: i == 0 || i == 1500 || i == 1520,
	}
}

func TestLongRunInvariants(t *testing.T) {
	ctx, err := NewContext(config.DefaultBreakoutConfig())
	require.NoError(t, err)
	lo, hi := ctx.Config.PaddleLeftBound(), ctx.Config.PaddleRightBound()

	for i := 0; i < 4000; i++ {
		require.NoError(t, Step(ctx, scriptedInput(i)))
		ctx.Events.Drain()

		assert.Equal(t, 1, ctx.World.Count(KindBall))
		assert.Equal(t, 50-ctx.BricksLeft(), ctx.Score)

		s := ctx.Snapshot()
		require.GreaterOrEqual(t, s.PaddleX, lo)
		require.LessOrEqual(t, s.PaddleX, hi)
		require.InDelta(t, 200, core.V(s.BallVX, s.BallVY).Len(), 1e-9)
	}
}

func TestStepConcurrentMatchesStep(t *testing.T) {
	seq, err := NewContext(config.DefaultBreakoutConfig())
	require.NoError(t, err)
	par, err := NewContext(config.DefaultBreakoutConfig())
	require.NoError(t, err)

	for i := 0; i < 3000; i++ {
		in := scriptedInput(i)
		require.NoError(t, Step(seq, in))
		require.NoError(t, StepConcurrent(par, in))
		assert.Equal(t, seq.Events.Drain(), par.Events.Drain())
		require.Equal(t, seq.Snapshot().Hash(), par.Snapshot().Hash(), "diverged at tick %d", i)
	}
	assert.Equal(t, seq.Snapshot(), par.Snapshot())
}

func TestSnapshotHashChanges(t *testing.T) {
	ctx, err := NewContext(config.DefaultBreakoutConfig())
	require.NoError(t, err)

	before := ctx.Snapshot()
	assert.Equal(t, before.Hash(), ctx.Snapshot().Hash())

	require.NoError(t, Step(ctx, Input{Confirm: true}))
	after := ctx.Snapshot()
	assert.NotEqual(t, before.Hash(), after.Hash())
	assert.Len(t, after.Bricks, 50)
}

func TestPhaseAndOverlayStrings(t *testing.T) {
	assert.Equal(t, "Running", PhaseRunning.String())
	assert.Equal(t, "Paused", PhasePaused.String())
	assert.Equal(t, "", OverlayNone.String())
	assert.Equal(t, "start", OverlayStart.String())
	assert.Equal(t, "pause", OverlayPause.String())
}
