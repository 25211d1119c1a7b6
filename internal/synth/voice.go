package synth

import (
	"math"
	"math/rand"

	"github.com/cbegin/polysynth-go/internal/lfo"
)

// Voice is one sounding note: two oscillator phase accumulators and an
// envelope. Oscillator settings and wavetables stay engine-owned and are
// read fresh every sample, so parameter edits reach sounding voices.
type Voice struct {
	Note     int
	freq     float64
	velocity float64
	phase    [2]float64 // table-index units [0, WavetableSize)
	env      envelope
}

// newVoice copies the envelope defaults and randomizes both phases so that
// simultaneous notes at the same frequency do not phase-lock.
func newVoice(note int, velocity float64, env ADSRParams) *Voice {
	return &Voice{
		Note:     note,
		freq:     midiToFreq(note),
		velocity: clamp(velocity, 0, 1),
		phase: [2]float64{
			rand.Float64() * WavetableSize,
			rand.Float64() * WavetableSize,
		},
		env: newEnvelope(env),
	}
}

func (v *Voice) noteOff() {
	v.env.noteOff()
}

// finished reports whether the envelope has reached its terminal stage.
func (v *Voice) finished() bool {
	return v.env.idle()
}

// render produces one mixed, enveloped sample and advances all phase and
// envelope state by one sample period.
func (v *Voice) render(dt float64, oscs *[2]OscSettings, tables *[2][]float64, lfos *[2]lfo.LFO, mods *ModMatrix, sampleRate float64) float64 {
	wtPosMod := lfos[0].Value()*mods.LFO0ToWTPos + lfos[1].Value()*mods.LFO1ToWTPos

	var sum float64
	for i := 0; i < 2; i++ {
		os := &oscs[i]
		freq := v.freq * math.Pow(2, os.DetuneCents/1200)
		incr := freq * (WavetableSize / sampleRate) * (1 + wtPosMod)
		v.phase[i] = math.Mod(v.phase[i]+incr, WavetableSize)
		if v.phase[i] < 0 {
			v.phase[i] += WavetableSize
		}
		sum += sampleWave(os.Waveform, v.phase[i], tables[i]) * os.Gain
	}

	env := v.env.tick(dt)
	ampLFO := lfos[0].Value()*mods.LFO0ToAmp + lfos[1].Value()*mods.LFO1ToAmp
	// clamp the total multiplier so summed modulation cannot blow up
	amp := clamp(env*(1+ampLFO), 0, 4) * v.velocity

	return sum * amp
}
