package engine

import "github.com/vovakirdan/tui-breakout/internal/core"

// EventQueue is a bounded per-tick output list. The simulation appends to it
// and the frontend drains it once per tick.
type EventQueue struct {
	items   []core.Event
	limit   int
	dropped uint64
}

// NewEventQueue creates a queue holding at most limit events.
func NewEventQueue(limit int) *EventQueue {
	if limit <= 0 {
		limit = 1
	}
	return &EventQueue{
		items: make([]core.Event, 0, limit),
		limit: limit,
	}
}

// Push appends an event. When the queue is full the event is dropped and
// counted; Push then returns false.
func (q *EventQueue) Push(e core.Event) bool {
	if len(q.items) >= q.limit {
		q.dropped++
		return false
	}
	q.items = append(q.items, e)
	return true
}

// Drain returns all queued events and leaves the queue empty.
// Draining an empty queue returns nil.
func (q *EventQueue) Drain() []core.Event {
	if len(q.items) == 0 {
		return nil
	}
	out := make([]core.Event, len(q.items))
	copy(out, q.items)
	q.items = q.items[:0]
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.items)
}

// Dropped returns how many events were discarded because the queue was full.
func (q *EventQueue) Dropped() uint64 {
	return q.dropped
}
