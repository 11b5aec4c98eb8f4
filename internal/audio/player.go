// Package audio plays short cues for simulation events through beep.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sink consumes the events drained from one tick.
type Sink interface {
	Play(events []core.Event)
	Close()
}

// Nop discards events. Used for remote sessions and headless runs.
type Nop struct{}

func (Nop) Play([]core.Event) {}
func (Nop) Close() {}

// Synthesized fallbacks when no sound file is configured or it fails to load.
var fallbackTones = map[core.EventKind]struct {
	freq float64
	dur  time.Duration
}{
	core.EventCollision: {freq: 880, dur: 40 * time.Millisecond},
	core.EventExplosion: {freq: 220, dur: 120 * time.Millisecond},
}

// Player mixes one cue per event kind per tick into the speaker.
type Player struct {
	mu     sync.Mutex
	logger *log.Logger
	mixer  *beep.Mixer
	sounds map[core.EventKind]*beep.Buffer
	volume float64
	output bool
	played map[core.EventKind]int
}

// New loads the configured sounds and opens the speaker. Missing files fall
// back to synthesized tones; an unavailable output device leaves the player
// silent. Neither is an error.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	p := newPlayer(cfg, logger)
	if !cfg.Enabled {
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio output unavailable, running silent", "err", err)
		return p
	}
	speaker.Play(p.mixer)
	p.output = true
	return p
}

func newPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	p := &Player{
		logger: logger,
		mixer:  &beep.Mixer{},
		sounds: make(map[core.EventKind]*beep.Buffer),
		volume: cfg.Volume,
		played: make(map[core.EventKind]int),
	}

	files := map[core.EventKind]string{
		core.EventCollision: cfg.CollisionFile,
		core.EventExplosion: cfg.ExplosionFile,
	}
	for kind, path := range files {
		if path != "" {
			buf, err := loadWAV(path)
			if err == nil {
				p.sounds[kind] = buf
				continue
			}
			p.logger.Warn("sound asset missing, using tone", "event", kind, "path", path, "err", err)
		}
		p.sounds[kind] = synthTone(fallbackTones[kind].freq, fallbackTones[kind].dur)
	}
	return p
}

func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path) //#nosec G304 -- path comes from user config
	if err != nil {
		return nil, err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("decode %s: no samples", path)
	}
	return buf, nil
}

func synthTone(freq float64, dur time.Duration) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return buf
	}
	buf.Append(beep.Take(sampleRate.N(dur), tone))
	return buf
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Play queues one cue per distinct event kind. Several collisions in the same
// tick produce a single sound.
func (p *Player) Play(events []core.Event) {
	if len(events) == 0 {
		return
	}

	seen := make(map[core.EventKind]bool, 2)
	for _, ev := range events {
		if seen[ev.Kind] {
			continue
		}
		seen[ev.Kind] = true
		p.cue(ev.Kind)
	}
}

func (p *Player) cue(kind core.EventKind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf, ok := p.sounds[kind]
	if !ok {
		return
	}
	p.played[kind]++
	if !p.output {
		return
	}

	speaker.Lock()
	p.mixer.Add(withVolume(buf.Streamer(0, buf.Len()), p.volume))
	speaker.Unlock()
}

// Played returns how many cues of a kind were triggered.
func (p *Player) Played(kind core.EventKind) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[kind]
}

// Close stops playback and releases the output device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.output {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.output = false
}
