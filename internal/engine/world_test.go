package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestWorldSpawnDespawnKeepsOrder(t *testing.T) {
	w := NewWorld()
	box := core.BoxFromSize(core.V(0, 0), core.V(10, 10))

	a := w.Spawn(Actor{Kind: KindWall, Box: box})
	b := w.Spawn(Actor{Kind: KindBrick, Box: box})
	c := w.Spawn(Actor{Kind: KindBall, Box: box})
	assert.Equal(t, 3, w.Len())

	require.True(t, w.Despawn(b))
	assert.False(t, w.Despawn(b), "second despawn is a no-op")

	ids := []EntityID{}
	for _, actor := range w.Actors() {
		ids = append(ids, actor.ID)
	}
	assert.Equal(t, []EntityID{a, c}, ids)

	got, ok := w.Get(c)
	require.True(t, ok)
	assert.Equal(t, KindBall, got.Kind)

	_, ok = w.Get(b)
	assert.False(t, ok)

	d := w.Spawn(Actor{Kind: KindBrick, Box: box})
	assert.Greater(t, d, c, "IDs are not recycled")
}

func TestWorldSingleBall(t *testing.T) {
	w := NewWorld()
	box := core.BoxFromSize(core.V(0, 0), core.V(10, 10))

	_, err := w.Ball()
	assert.ErrorIs(t, err, ErrBallCount)

	w.Spawn(Actor{Kind: KindBall, Box: box})
	ball, err := w.Ball()
	require.NoError(t, err)
	assert.Equal(t, KindBall, ball.Kind)

	w.Spawn(Actor{Kind: KindBall, Box: box})
	_, err = w.Ball()
	assert.ErrorIs(t, err, ErrBallCount)

	_, err = w.Paddle()
	assert.ErrorIs(t, err, ErrPaddleCount)
}

func TestKindIsCollider(t *testing.T) {
	assert.True(t, KindWall.IsCollider())
	assert.True(t, KindBrick.IsCollider())
	assert.True(t, KindPaddle.IsCollider())
	assert.False(t, KindBall.IsCollider())
	assert.Equal(t, "brick", KindBrick.String())
}

func TestEventQueueBounded(t *testing.T) {
	q := NewEventQueue(2)
	assert.Nil(t, q.Drain())

	assert.True(t, q.Push(core.Event{Kind: core.EventCollision, Entity: 1}))
	assert.True(t, q.Push(core.Event{Kind: core.EventExplosion, Entity: 1}))
	assert.False(t, q.Push(core.Event{Kind: core.EventCollision, Entity: 2}))
	assert.Equal(t, uint64(1), q.Dropped())
	assert.Equal(t, 2, q.Len())

	events := q.Drain()
	require.Len(t, events, 2)
	assert.Equal(t, core.EventCollision, events[0].Kind)
	assert.Equal(t, core.EventExplosion, events[1].Kind)
	assert.Zero(t, q.Len())
	assert.Nil(t, q.Drain())
}
