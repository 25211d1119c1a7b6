package effects

import "math"

// SVF is a 2-pole lowpass built on the topology-preserving transform
// (Simper). Unlike direct-form biquads it stays stable and quiet when the
// cutoff is swept every sample, which the engine does whenever cutoff
// modulation is active.
type SVF struct {
	sampleRate float64
	cutoff     float64
	resonance  float64

	// cached TPT coefficients, recomputed only when cutoff/resonance change
	dirty      bool
	a1, a2, a3 float64
	k          float64

	// integrator states
	ic1eq float64
	ic2eq float64
}

// NewSVF creates the filter. Cutoff is clamped to (20, 0.49·sampleRate),
// resonance is floored at zero.
func NewSVF(sampleRate, cutoff, resonance float64) *SVF {
	f := &SVF{sampleRate: sampleRate}
	f.SetCutoff(cutoff)
	f.SetResonance(resonance)
	return f
}

func (f *SVF) SetCutoff(hz float64) {
	hz = clamp(hz, 20, f.sampleRate*0.49)
	if hz != f.cutoff {
		f.cutoff = hz
		f.dirty = true
	}
}

func (f *SVF) Cutoff() float64 { return f.cutoff }

// SetResonance takes the musical resonance control (≥0). Higher values map
// to a lower implied quality factor: Q = 0.5 + 1.5·(1 − resonance), floored
// at 0.05.
func (f *SVF) SetResonance(res float64) {
	if res < 0 {
		res = 0
	}
	if res != f.resonance {
		f.resonance = res
		f.dirty = true
	}
}

func (f *SVF) Resonance() float64 { return f.resonance }

func (f *SVF) updateCoefficients() {
	g := math.Tan(math.Pi * f.cutoff / f.sampleRate)
	q := 0.5 + 1.5*(1-f.resonance)
	if q < 0.05 {
		q = 0.05
	}
	f.k = 1 / q
	f.a1 = 1 / (1 + g*(g+f.k))
	f.a2 = g * f.a1
	f.a3 = g * f.a2
	f.dirty = false
}

// Process returns the lowpass tap for one input sample.
func (f *SVF) Process(x float64) float64 {
	if f.dirty {
		f.updateCoefficients()
	}
	v3 := x - f.ic2eq
	v1 := f.a1*f.ic1eq + f.a2*v3
	v2 := f.ic2eq + f.a2*f.ic1eq + f.a3*v3
	f.ic1eq = 2*v1 - f.ic1eq
	f.ic2eq = 2*v2 - f.ic2eq
	return v2
}

func (f *SVF) Reset() {
	f.ic1eq = 0
	f.ic2eq = 0
}
