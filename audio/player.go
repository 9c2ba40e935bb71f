package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/parameter"
)

// Output receives finished streamers; the speaker in production, a recorder in tests
type Output interface {
	Play(s ...beep.Streamer)
}

type speakerOutput struct{}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

// CuePlayer turns transition effects into short synthesised sounds
// A player without output stays muted; every method is a safe no-op then
type CuePlayer struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	out    Output
	owned  bool
	muted  bool
}

// NewCuePlayer creates a muted player; call Init or Attach to produce sound
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: parameter.AudioMasterVolume,
	}
}

// Init opens the system speaker
func (p *CuePlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out != nil {
		return nil
	}
	if err := speaker.Init(p.rate, parameter.AudioBufferSamples); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	p.out = speakerOutput{}
	p.owned = true
	return nil
}

// Attach routes sounds to out instead of the speaker
func (p *CuePlayer) Attach(out Output) {
	p.mu.Lock()
	p.out = out
	p.owned = false
	p.mu.Unlock()
}

// Enabled reports whether sounds are produced
func (p *CuePlayer) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out != nil
}

// ToggleMute flips muting and returns the new state
func (p *CuePlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Play voices each distinct cue of a batch once, panned by its offset from the listener
func (p *CuePlayer) Play(fx []engine.Effect, listener core.Point) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out == nil || p.muted || len(fx) == 0 {
		return
	}

	var seen [event.CueCount]bool
	for _, e := range fx {
		if e.Cue >= event.CueCount || seen[e.Cue] {
			continue
		}
		seen[e.Cue] = true

		s := CueSound(e.Cue, p.rate, p.volume)
		if s == nil {
			continue
		}
		p.out.Play(&effects.Pan{Streamer: s, Pan: pan(e.Pos, listener)})
	}
}

// Close silences and releases the speaker
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.owned {
		speaker.Clear()
		speaker.Close()
	}
	p.out = nil
	p.owned = false
}

// pan maps a horizontal offset to [-1, 1]
func pan(at, listener core.Point) float64 {
	v := float64(at.X-listener.X) / parameter.AudioPanSpan
	return max(-1, min(1, v))
}

// Length drains s and returns its playing time, capped at limit
func Length(s beep.Streamer, rate beep.SampleRate, limit time.Duration) time.Duration {
	buf := make([][2]float64, 512)
	total, capN := 0, rate.N(limit)
	for total < capN {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return rate.D(min(total, capN))
}
