package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/parameter"
)

// tone is one voice of a cue recipe
type tone struct {
	wave     WaveType
	from, to float64
	duration time.Duration
	release  time.Duration
	volume   float64
	// delay offsets the voice from the cue start
	delay time.Duration
}

// recipes maps feedback cues to voices; cues absent here are silent
var recipes = map[event.Cue][]tone{
	event.CueBlocked: {
		{wave: WaveSaw, from: 100, to: 90, duration: 80 * time.Millisecond, release: parameter.AudioShortRelease, volume: 0.5},
	},
	event.CueStep: {
		{wave: WaveSine, from: 70, to: 50, duration: 60 * time.Millisecond, release: parameter.AudioShortRelease, volume: 0.6},
	},
	event.CueEat: {
		{wave: WaveSquare, from: 220, to: 160, duration: 60 * time.Millisecond, release: parameter.AudioShortRelease, volume: 0.4},
		{wave: WaveSquare, from: 200, to: 140, duration: 60 * time.Millisecond, release: parameter.AudioShortRelease, volume: 0.4, delay: 80 * time.Millisecond},
	},
	event.CueCrush: {
		{wave: WaveNoise, duration: 120 * time.Millisecond, release: 80 * time.Millisecond, volume: 0.5},
		{wave: WaveSine, from: 90, to: 40, duration: 150 * time.Millisecond, release: 100 * time.Millisecond, volume: 0.7},
	},
	event.CueGrab: {
		{wave: WaveSquare, from: 300, to: 450, duration: 90 * time.Millisecond, release: parameter.AudioShortRelease, volume: 0.3},
	},
	event.CueThrow: {
		{wave: WaveNoise, duration: 180 * time.Millisecond, release: 120 * time.Millisecond, volume: 0.3},
		{wave: WaveSine, from: 600, to: 200, duration: 180 * time.Millisecond, release: 120 * time.Millisecond, volume: 0.3},
	},
	event.CueSmash: {
		{wave: WaveNoise, duration: 90 * time.Millisecond, release: 60 * time.Millisecond, volume: 0.6},
	},
	event.CueDestroy: {
		{wave: WaveNoise, duration: 350 * time.Millisecond, release: parameter.AudioLongRelease, volume: 0.7},
		{wave: WaveSine, from: 80, to: 30, duration: 350 * time.Millisecond, release: parameter.AudioLongRelease, volume: 0.8},
	},
	event.CueBreath: {
		{wave: WaveNoise, duration: 400 * time.Millisecond, release: parameter.AudioLongRelease, volume: 0.5},
		{wave: WaveSaw, from: 150, to: 400, duration: 400 * time.Millisecond, release: parameter.AudioLongRelease, volume: 0.25},
	},
	event.CueExplosion: {
		{wave: WaveNoise, duration: 900 * time.Millisecond, release: 600 * time.Millisecond, volume: 0.9},
		{wave: WaveSine, from: 60, to: 20, duration: 900 * time.Millisecond, release: 600 * time.Millisecond, volume: 0.9},
	},
	event.CueBurn: {
		{wave: WaveNoise, duration: 100 * time.Millisecond, release: 60 * time.Millisecond, volume: 0.3},
	},
	event.CueHit: {
		{wave: WaveSquare, from: 180, to: 120, duration: 100 * time.Millisecond, release: 50 * time.Millisecond, volume: 0.4},
	},
	event.CueStarve: {
		{wave: WaveSine, from: 110, to: 80, duration: 250 * time.Millisecond, release: 150 * time.Millisecond, volume: 0.4},
	},
	event.CueBerserk: {
		{wave: WaveSaw, from: 110, to: 220, duration: 300 * time.Millisecond, release: 100 * time.Millisecond, volume: 0.5},
		{wave: WaveSaw, from: 165, to: 330, duration: 300 * time.Millisecond, release: 100 * time.Millisecond, volume: 0.4},
	},
	event.CueCalm: {
		{wave: WaveSine, from: 440, duration: 200 * time.Millisecond, release: 120 * time.Millisecond, volume: 0.3},
	},
	event.CueGameOver: {
		{wave: WaveSquare, from: 330, duration: 200 * time.Millisecond, release: 50 * time.Millisecond, volume: 0.4},
		{wave: WaveSquare, from: 262, duration: 200 * time.Millisecond, release: 50 * time.Millisecond, volume: 0.4, delay: 220 * time.Millisecond},
		{wave: WaveSquare, from: 196, duration: 500 * time.Millisecond, release: 300 * time.Millisecond, volume: 0.4, delay: 440 * time.Millisecond},
	},
}

// voice picks the library sine for steady sine tones and the local oscillator otherwise
func voice(v tone, to float64, rate beep.SampleRate) beep.Streamer {
	if v.wave == WaveSine && to == v.from {
		if sine, err := generators.SineTone(rate, v.from); err == nil {
			return beep.Take(rate.N(v.duration), sine)
		}
	}
	return NewSweep(v.from, to, v.duration, v.wave, rate)
}

// Voiced reports whether c has a sound
func Voiced(c event.Cue) bool {
	_, ok := recipes[c]
	return ok
}

// CueSound renders the recipe for c at the given volume; nil for silent cues
func CueSound(c event.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	voices := recipes[c]
	if len(voices) == 0 {
		return nil
	}

	streams := make([]beep.Streamer, 0, len(voices))
	for _, v := range voices {
		to := v.to
		if to == 0 {
			to = v.from
		}
		var s beep.Streamer = NewEnvelope(voice(v, to, rate), v.duration, parameter.AudioAttack, v.release, rate)
		if v.delay > 0 {
			s = beep.Seq(beep.Silence(rate.N(v.delay)), s)
		}
		streams = append(streams, newVolume(s, v.volume))
	}
	if len(streams) == 1 {
		return newVolume(streams[0], volume)
	}
	return newVolume(beep.Mix(streams...), volume)
}
