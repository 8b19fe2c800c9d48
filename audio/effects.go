// Package audio plays race cues through beep: a chime per lap, a fanfare at
// the finish and an optional engine drone pitched by speed.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-racer/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-length oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := waveAt(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveAt evaluates a unit-amplitude wave at phase in [0, 1)
func waveAt(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return math.Sin(2 * math.Pi * phase)
}

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at a log2 gain, vol is in beep's Base 2 units
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: vol}
}

// CreateLapChime is a short bell: fundamental plus octave, fast decay
func CreateLapChime(rate beep.SampleRate) beep.Streamer {
	d := parameter.LapChimeDuration
	attack := 5 * time.Millisecond

	fund := tone(rate, parameter.LapChimeFreq, d, WaveSine)
	over := tone(rate, parameter.LapChimeFreq*2, d, WaveSine)
	mixed := beep.Mix(
		newVolume(NewEnvelope(fund, d, attack, d-attack, rate), -0.5),
		newVolume(NewEnvelope(over, d, attack, d/2, rate), -2),
	)
	return newVolume(mixed, parameter.LapChimeVolume)
}

// CreateFinishFanfare plays the finish notes in sequence
func CreateFinishFanfare(rate beep.SampleRate) beep.Streamer {
	d := parameter.FinishNoteDuration
	notes := make([]beep.Streamer, 0, len(parameter.FinishNotes))
	for i, f := range parameter.FinishNotes {
		nd := d
		if i == len(parameter.FinishNotes)-1 {
			nd = 3 * d // hold the last note
		}
		osc := NewOscillator(f, nd, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, nd, 5*time.Millisecond, nd/2, rate))
	}
	return newVolume(newVolume(beep.Seq(notes...), -2), parameter.FinishVolume)
}

// tone prefers beep's sine generator and falls back to the local oscillator
func tone(rate beep.SampleRate, freq float64, d time.Duration, wave WaveType) beep.Streamer {
	if wave == WaveSine {
		if s, err := generators.SineTone(rate, freq); err == nil {
			return beep.Take(rate.N(d), s)
		}
	}
	return NewOscillator(freq, d, wave, rate)
}
