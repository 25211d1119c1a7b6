package effects

import "math"

// Comb and allpass base lengths in samples at 44.1 kHz, scaled to the
// actual sample rate at construction. Prime-ish ratios avoid coincident
// resonances between the parallel combs.
var (
	combTunings    = [4]int{1116, 1188, 1277, 1356}
	allpassTunings = [2]int{556, 441}
	// per-comb damping coefficients for the feedback lowpass
	combDamps = [4]float64{0.18, 0.21, 0.24, 0.27}
)

const (
	allpassFeedback = 0.5
	maxPreDelaySec  = 0.25
	defaultPreDelay = 0.02
	defaultDecaySec = 1.8
	minCombFeedback = 0.5
	maxCombFeedback = 0.98
)

// Reverb is a Schroeder/Moorer reverberator: pre-delay, four parallel
// damped feedback combs averaged together, then two series allpass
// diffusers. The wet/dry blend uses the pre-delay output as its dry
// reference, so the output always includes the pre-delay itself.
type Reverb struct {
	sampleRate float64
	wet        float64
	size       float64 // [0.5, 1.5] buffer length rescale
	decaySec   float64

	pre     ringBuffer
	preSec  float64
	combs   [4]dampedComb
	allpass [2]allpassDiffuser
}

type ringBuffer struct {
	buf []float64
	pos int
}

func newRing(n int) ringBuffer {
	if n < 1 {
		n = 1
	}
	return ringBuffer{buf: make([]float64, n)}
}

// step writes x at the cursor and returns the oldest sample.
func (r *ringBuffer) step(x float64) float64 {
	out := r.buf[r.pos]
	r.buf[r.pos] = x
	r.pos++
	if r.pos >= len(r.buf) {
		r.pos = 0
	}
	return out
}

// resize changes the buffer length, keeping what fits and forcing the
// cursor back into bounds.
func (r *ringBuffer) resize(n int) {
	if n < 1 {
		n = 1
	}
	buf := make([]float64, n)
	copy(buf, r.buf)
	r.buf = buf
	r.pos %= n
}

func (r *ringBuffer) clear() {
	for i := range r.buf {
		r.buf[i] = 0
	}
	r.pos = 0
}

type dampedComb struct {
	ring        ringBuffer
	baseLen     int
	feedback    float64
	damp1       float64 // filter memory weight
	damp2       float64 // 1 - damp1
	filterStore float64
}

func (c *dampedComb) process(x float64) float64 {
	out := c.ring.buf[c.ring.pos]
	c.filterStore = out*c.damp2 + c.filterStore*c.damp1
	c.ring.step(x + c.filterStore*c.feedback)
	return out
}

type allpassDiffuser struct {
	ring    ringBuffer
	baseLen int
}

func (a *allpassDiffuser) process(x float64) float64 {
	bufOut := a.ring.buf[a.ring.pos]
	a.ring.step(x + bufOut*allpassFeedback)
	return -x + bufOut
}

// NewReverb builds the reverb for the given sample rate with default
// pre-delay, decay and size.
func NewReverb(sampleRate, wet float64) *Reverb {
	r := &Reverb{
		sampleRate: sampleRate,
		size:       1,
		decaySec:   defaultDecaySec,
		preSec:     defaultPreDelay,
	}
	r.SetWet(wet)
	scale := sampleRate / 44100
	for i := range r.combs {
		n := int(float64(combTunings[i]) * scale)
		r.combs[i] = dampedComb{
			ring:    newRing(n),
			baseLen: n,
			damp1:   combDamps[i],
			damp2:   1 - combDamps[i],
		}
	}
	for i := range r.allpass {
		n := int(float64(allpassTunings[i]) * scale)
		r.allpass[i] = allpassDiffuser{ring: newRing(n), baseLen: n}
	}
	r.pre = newRing(int(sampleRate * maxPreDelaySec))
	r.updateFeedback()
	return r
}

func (r *Reverb) SetWet(wet float64) {
	r.wet = clamp(wet, 0, 1)
}

func (r *Reverb) Wet() float64 { return r.wet }

// SetDecay sets the target decay time in seconds and rederives each comb's
// feedback gain from the −3·length/decay exponential relation, clamped to
// a stable range.
func (r *Reverb) SetDecay(sec float64) {
	if sec < 0.1 {
		sec = 0.1
	}
	r.decaySec = sec
	r.updateFeedback()
}

func (r *Reverb) Decay() float64 { return r.decaySec }

func (r *Reverb) updateFeedback() {
	for i := range r.combs {
		lenSec := float64(len(r.combs[i].ring.buf)) / r.sampleRate
		fb := math.Pow(10, -3*lenSec/r.decaySec)
		r.combs[i].feedback = clamp(fb, minCombFeedback, maxCombFeedback)
	}
}

// SetSize rescales every buffer length by a factor in [0.5, 1.5]. Write
// cursors are taken modulo the new lengths immediately after the resize.
func (r *Reverb) SetSize(size float64) {
	size = clamp(size, 0.5, 1.5)
	r.size = size
	for i := range r.combs {
		r.combs[i].ring.resize(int(float64(r.combs[i].baseLen) * size))
	}
	for i := range r.allpass {
		r.allpass[i].ring.resize(int(float64(r.allpass[i].baseLen) * size))
	}
	r.updateFeedback()
}

func (r *Reverb) Size() float64 { return r.size }

// SetPreDelay sets the pre-delay time, clamped to the buffer capacity.
func (r *Reverb) SetPreDelay(sec float64) {
	capSec := float64(len(r.pre.buf)) / r.sampleRate
	r.preSec = clamp(sec, 0, capSec)
}

func (r *Reverb) PreDelay() float64 { return r.preSec }

// Process runs one sample through pre-delay, combs and diffusers. The dry
// term of the final blend is the pre-delay output, not the raw input.
func (r *Reverb) Process(x float64) float64 {
	pd := r.preDelayed(x)

	var sum float64
	for i := range r.combs {
		sum += r.combs[i].process(pd)
	}
	out := sum * 0.25
	for i := range r.allpass {
		out = r.allpass[i].process(out)
	}

	return pd*(1-r.wet) + out*r.wet
}

func (r *Reverb) preDelayed(x float64) float64 {
	n := int(r.preSec * r.sampleRate)
	if n <= 0 {
		return x
	}
	if n >= len(r.pre.buf) {
		n = len(r.pre.buf) - 1
	}
	readPos := r.pre.pos - n
	if readPos < 0 {
		readPos += len(r.pre.buf)
	}
	out := r.pre.buf[readPos]
	r.pre.step(x)
	return out
}

func (r *Reverb) Reset() {
	r.pre.clear()
	for i := range r.combs {
		r.combs[i].ring.clear()
		r.combs[i].filterStore = 0
	}
	for i := range r.allpass {
		r.allpass[i].ring.clear()
	}
}
