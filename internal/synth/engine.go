// Package synth implements a polyphonic subtractive/wavetable synthesis
// engine. The engine owns all mutable state (voices, LFOs, modulation
// matrix, effect chain) and is driven synchronously by a host that
// serializes note events, parameter updates and render calls.
package synth

import (
	"math"

	"github.com/cbegin/polysynth-go/internal/effects"
	"github.com/cbegin/polysynth-go/internal/lfo"
)

// MaxVoices is the fixed polyphony capacity. When exceeded, the oldest
// voice is evicted first (FIFO, no amplitude or stage priority).
const MaxVoices = 64

// cutoffModScale converts the summed cutoff modulation to Hz.
const cutoffModScale = 2000.0

// Engine renders mono audio one block at a time. It never allocates or
// blocks in the per-sample path; voice list edits happen only on note
// events and end-of-frame retirement.
type Engine struct {
	sampleRate float64

	oscs   [2]OscSettings
	tables [2][]float64
	voices []*Voice

	envDefaults ADSRParams
	lfos        [2]lfo.LFO
	mods        ModMatrix

	filter     *effects.SVF
	baseCutoff float64 // host-configured cutoff before modulation
	delay      *effects.Delay
	reverb     *effects.Reverb
	fx         *effects.Chain // post-filter segment: delay → reverb

	masterGain       float64
	filterEnvEnabled bool
	lfo0Retrigger    bool
}

// New constructs a fully initialized engine. sampleRate must be positive;
// the caller validates it.
func New(sampleRate float64) *Engine {
	e := &Engine{
		sampleRate:       sampleRate,
		oscs:             [2]OscSettings{defaultOscSettings(), defaultOscSettings()},
		tables:           [2][]float64{defaultSineTable(), defaultSineTable()},
		voices:           make([]*Voice, 0, MaxVoices),
		envDefaults:      defaultADSRParams(),
		mods:             defaultModMatrix(),
		filter:           effects.NewSVF(sampleRate, 1200, 0.6),
		baseCutoff:       1200,
		delay:            effects.NewDelay(sampleRate, 0.3, 0.35, 0.35),
		reverb:           effects.NewReverb(sampleRate, 0.25),
		masterGain:       0.9,
		filterEnvEnabled: true,
	}
	e.lfos[0].Set(2.5, 0, lfo.WaveSine)
	e.lfos[1].Set(2.5, 0, lfo.WaveSine)
	e.fx = effects.NewChain(e.delay, e.reverb)
	return e
}

func (e *Engine) SampleRate() float64 { return e.sampleRate }

// NoteOn starts a voice for the given MIDI note. At capacity the oldest
// voice is evicted before the new one is appended.
func (e *Engine) NoteOn(note int, velocity float64) {
	if note < 0 || note > 127 {
		return
	}
	if len(e.voices) >= MaxVoices {
		n := copy(e.voices, e.voices[1:])
		e.voices = e.voices[:n]
	}
	if e.lfo0Retrigger {
		e.lfos[0].Retrigger()
	}
	e.voices = append(e.voices, newVoice(note, velocity, e.envDefaults))
}

// NoteOff releases every live voice with a matching note, so re-triggered
// notes sharing a pitch all enter release together.
func (e *Engine) NoteOff(note int) {
	for _, v := range e.voices {
		if v.Note == note {
			v.noteOff()
		}
	}
}

// VoiceCount returns the number of live voices.
func (e *Engine) VoiceCount() int {
	return len(e.voices)
}

// SetWavetable resamples the input to the fixed table length. Empty input
// or an out-of-range oscillator index is a no-op.
func (e *Engine) SetWavetable(osc int, samples []float64) {
	if osc < 0 || osc > 1 || len(samples) == 0 {
		return
	}
	e.tables[osc] = resampleTable(samples)
}

// GetWavetable returns a copy of the table, or a zero-filled table for an
// invalid index.
func (e *Engine) GetWavetable(osc int) []float64 {
	out := make([]float64, WavetableSize)
	if osc >= 0 && osc <= 1 {
		copy(out, e.tables[osc])
	}
	return out
}

// Render fills out with exactly len(out) samples in [-1, 1].
func (e *Engine) Render(out []float32) {
	dt := 1 / e.sampleRate
	for n := range out {
		e.lfos[0].Tick(dt)
		e.lfos[1].Tick(dt)

		var mix float64
		finished := false
		for _, v := range e.voices {
			mix += v.render(dt, &e.oscs, &e.tables, &e.lfos, &e.mods, e.sampleRate)
			if v.finished() {
				finished = true
			}
		}
		if finished {
			e.retireVoices()
		}

		// global cutoff modulation, applied once per frame
		cutoffMod := e.lfos[0].Value()*e.mods.LFO0ToCutoff +
			e.lfos[1].Value()*e.mods.LFO1ToCutoff
		if e.filterEnvEnabled {
			cutoffMod += e.mods.EnvToCutoff
		}
		e.filter.SetCutoff(e.baseCutoff + cutoffMod*cutoffModScale)

		s := e.filter.Process(mix)
		s = e.fx.Process(s)
		out[n] = float32(softClip(s * e.masterGain))
	}
}

// retireVoices removes finished voices in place, preserving the relative
// order of the remainder.
func (e *Engine) retireVoices() {
	kept := e.voices[:0]
	for _, v := range e.voices {
		if !v.finished() {
			kept = append(kept, v)
		}
	}
	for i := len(kept); i < len(e.voices); i++ {
		e.voices[i] = nil
	}
	e.voices = kept
}

// softClip keeps the master output inside [-1, 1] without the hard edges
// of a plain clamp.
func softClip(x float64) float64 {
	return math.Tanh(x)
}
