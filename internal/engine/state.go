package engine

// Phase is the game state gating input and simulation.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Overlay is the full-screen prompt shown while paused.
type Overlay int

const (
	OverlayNone  Overlay = iota
	OverlayStart         // "press confirm to start", shown before the first run
	OverlayPause         // "paused", shown after a pause toggle
)

// String returns the overlay name used by renderers. OverlayNone is empty.
func (o Overlay) String() string {
	switch o {
	case OverlayStart:
		return "start"
	case OverlayPause:
		return "pause"
	default:
		return ""
	}
}

// initialPhase returns the phase and overlay a fresh context starts in.
func initialPhase(pauseEnabled, startPaused bool) (Phase, Overlay) {
	if pauseEnabled && startPaused {
		return PhasePaused, OverlayStart
	}
	return PhaseRunning, OverlayNone
}

// UpdatePhase runs the state machine for one tick. It toggles the phase on a
// confirm release and does nothing when the rules disable pausing.
//
// The overlay is set once per transition; staying paused leaves it alone.
func UpdatePhase(ctx *Context, confirmReleased bool) {
	if !ctx.Config.Rules.Pause || !confirmReleased {
		return
	}

	switch ctx.Phase {
	case PhaseRunning:
		ctx.Phase = PhasePaused
		ctx.Overlay = OverlayPause
	case PhasePaused:
		ctx.Phase = PhaseRunning
		ctx.Overlay = OverlayNone
	}
}
