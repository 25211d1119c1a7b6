// Package lfo provides free-running low-frequency oscillators used as
// modulation sources. An LFO is shared across all voices in an engine
// (global LFO), ticked once per output frame.
package lfo

import "math"

const twoPi = math.Pi * 2

// Waveform constants for Set and the lfoN_waveform parameter.
const (
	WaveSine = iota
	WaveTriangle
	WaveSquare
	WaveSaw
)

// LFO accumulates phase in radians [0, 2π). Value may be read any number of
// times between ticks; it is a pure function of phase, waveform and amount.
type LFO struct {
	rateHz   float64 // ≥ 0
	amount   float64 // modulation depth, sign unbounded
	waveform int
	phase    float64 // [0, 2π)
}

// Set configures rate and depth. Negative rates are clamped to zero;
// out-of-range waveforms fall back to sine.
func (l *LFO) Set(rateHz, amount float64, waveform int) {
	l.SetRate(rateHz)
	l.SetAmount(amount)
	l.SetWaveform(waveform)
}

func (l *LFO) SetRate(rateHz float64) {
	if rateHz < 0 {
		rateHz = 0
	}
	l.rateHz = rateHz
}

func (l *LFO) SetAmount(amount float64) {
	l.amount = amount
}

func (l *LFO) SetWaveform(waveform int) {
	if waveform < WaveSine || waveform > WaveSaw {
		waveform = WaveSine
	}
	l.waveform = waveform
}

// Tick advances the phase by dt seconds.
func (l *LFO) Tick(dt float64) {
	l.phase = math.Mod(l.phase+dt*l.rateHz*twoPi, twoPi)
}

// Retrigger resets the phase to zero. Because the LFO is shared, this is a
// global side effect on every sounding voice's modulation.
func (l *LFO) Retrigger() {
	l.phase = 0
}

// Value returns the current output scaled by amount.
func (l *LFO) Value() float64 {
	var base float64
	switch l.waveform {
	case WaveTriangle:
		base = (2 / math.Pi) * math.Asin(math.Sin(l.phase))
	case WaveSquare:
		if math.Sin(l.phase) >= 0 {
			base = 1
		} else {
			base = -1
		}
	case WaveSaw:
		base = 2 * (l.phase/twoPi - 0.5)
	default:
		base = math.Sin(l.phase)
	}
	return base * l.amount
}

// Phase returns the current phase in radians.
func (l *LFO) Phase() float64 {
	return l.phase
}

func (l *LFO) Rate() float64 { return l.rateHz }

func (l *LFO) Amount() float64 { return l.amount }

func (l *LFO) Waveform() int { return l.waveform }
