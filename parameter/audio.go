package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100
	// AudioBufferSamples is 50ms of latency at AudioSampleRate
	AudioBufferSamples = (AudioSampleRate * 50) / 1000
	AudioMasterVolume  = 0.5

	// AudioPanSpan is the horizontal distance at which a cue is hard-panned
	AudioPanSpan = ViewWidth / 2
)

// Envelope timings shared by cue recipes
const (
	AudioAttack       = 5 * time.Millisecond
	AudioShortRelease = 30 * time.Millisecond
	AudioLongRelease  = 200 * time.Millisecond
)
