package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, reserved for randomized layouts
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// EventKind identifies a transient simulation signal.
type EventKind int

const (
	EventCollision EventKind = iota // Ball touched any collider
	EventExplosion                  // A brick was destroyed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCollision:
		return "collision"
	case EventExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Event is raised by a simulation tick and consumed once by collaborators
// such as the audio player.
type Event struct {
	Kind   EventKind
	Entity uint64 // Collider involved
	Tick   uint64
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int    // Bricks destroyed so far
	Paused  bool   // Whether the simulation is gated
	Overlay string // Overlay to draw, empty when none
	Tick    uint64 // Ticks simulated while running
	Bricks  int    // Bricks still standing
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event // Drained events of this tick
	Err    error   // Fatal simulation error; the platform must stop
}
