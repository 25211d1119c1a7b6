package effects

import "math"

// maxDelaySeconds fixes the circular buffer capacity regardless of the
// requested delay time.
const maxDelaySeconds = 5.0

// Delay is a mono feedback delay with a fractional-sample read and a
// one-pole lowpass in the feedback path. The damping keeps repeats from
// accumulating high-frequency energy at high feedback settings.
type Delay struct {
	sampleRate float64
	buf        []float64
	writePos   int
	timeSec    float64
	feedback   float64 // [0, 0.99]
	wet        float64 // [0, 1]
	damp       float64 // feedback lowpass coefficient [0, 1]
	lpState    float64
}

// NewDelay allocates the fixed 5-second buffer.
func NewDelay(sampleRate, timeSec, feedback, wet float64) *Delay {
	n := int(sampleRate * maxDelaySeconds)
	if n < 1 {
		n = 1
	}
	d := &Delay{
		sampleRate: sampleRate,
		buf:        make([]float64, n),
		damp:       0.4,
	}
	d.SetTime(timeSec)
	d.SetFeedback(feedback)
	d.SetWet(wet)
	return d
}

func (d *Delay) SetTime(sec float64) {
	d.timeSec = clamp(sec, 0, maxDelaySeconds)
}

func (d *Delay) Time() float64 { return d.timeSec }

func (d *Delay) SetFeedback(fb float64) {
	d.feedback = clamp(fb, 0, 0.99)
}

func (d *Delay) Feedback() float64 { return d.feedback }

func (d *Delay) SetWet(wet float64) {
	d.wet = clamp(wet, 0, 1)
}

func (d *Delay) Wet() float64 { return d.wet }

// SetDamp sets the feedback lowpass coefficient; 0 disables damping.
func (d *Delay) SetDamp(damp float64) {
	d.damp = clamp(damp, 0, 1)
}

func (d *Delay) Damp() float64 { return d.damp }

// Process reads the delayed sample with linear interpolation, feeds the
// damped read back into the buffer and returns the wet/dry blend.
func (d *Delay) Process(x float64) float64 {
	n := len(d.buf)
	// guard keeps the interpolated read behind the write cursor
	delaySamples := clamp(d.timeSec*d.sampleRate, 1, float64(n-2))

	readPos := float64(d.writePos) - delaySamples
	for readPos < 0 {
		readPos += float64(n)
	}
	i0 := int(readPos)
	frac := readPos - math.Floor(readPos)
	i1 := (i0 + 1) % n
	delayed := d.buf[i0]*(1-frac) + d.buf[i1]*frac

	d.lpState += d.damp * (delayed - d.lpState)
	fb := d.lpState
	if d.damp == 0 {
		fb = delayed
	}

	d.buf[d.writePos] = x + fb*d.feedback
	d.writePos++
	if d.writePos >= n {
		d.writePos = 0
	}

	return x*(1-d.wet) + delayed*d.wet
}

func (d *Delay) Reset() {
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.writePos = 0
	d.lpState = 0
}
