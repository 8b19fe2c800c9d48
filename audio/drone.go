package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-racer/parameter"
)

// Drone is an endless engine tone whose pitch follows SetRatio
// SetRatio may be called from the game loop while the speaker streams
type Drone struct {
	rate  beep.SampleRate
	freq  atomic.Uint64 // float64 bits
	phase float64
	cur   float64 // glides toward freq to avoid clicks
}

// NewDrone starts at idle pitch
func NewDrone(rate beep.SampleRate) *Drone {
	d := &Drone{rate: rate, cur: parameter.EngineIdleFreq}
	d.freq.Store(math.Float64bits(parameter.EngineIdleFreq))
	return d
}

// SetRatio maps speed/max speed in [0, 1] onto the idle..top pitch range
func (d *Drone) SetRatio(ratio float64) {
	ratio = math.Max(0, math.Min(1, ratio))
	f := parameter.EngineIdleFreq + (parameter.EngineTopFreq-parameter.EngineIdleFreq)*ratio
	d.freq.Store(math.Float64bits(f))
}

// Freq returns the target pitch
func (d *Drone) Freq() float64 {
	return math.Float64frombits(d.freq.Load())
}

func (d *Drone) Stream(samples [][2]float64) (n int, ok bool) {
	target := d.Freq()
	glide := 1 - math.Exp(-1/(0.05*float64(d.rate))) // 50ms time constant
	for i := range samples {
		d.cur += (target - d.cur) * glide
		// Saw plus a sub sine reads as a small engine
		v := 0.6*waveAt(WaveSaw, d.phase) + 0.4*math.Sin(math.Pi*d.phase)
		v *= parameter.EngineGain
		samples[i][0] = v
		samples[i][1] = v

		d.phase += d.cur / float64(d.rate)
		d.phase -= math.Floor(d.phase)
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }
