package effects

import (
	"math"
	"testing"
)

func TestSVFPassesLowFrequencies(t *testing.T) {
	f := NewSVF(48000, 10000, 0)
	// A slow sine should come through a wide-open lowpass nearly unchanged.
	var maxOut float64
	for i := 0; i < 48000; i++ {
		x := math.Sin(2 * math.Pi * 100 * float64(i) / 48000)
		y := f.Process(x)
		if a := math.Abs(y); a > maxOut {
			maxOut = a
		}
	}
	if maxOut < 0.9 {
		t.Fatalf("lowpass attenuated 100 Hz too much, peak %f", maxOut)
	}
}

func TestSVFAttenuatesHighFrequencies(t *testing.T) {
	f := NewSVF(48000, 200, 0)
	var maxOut float64
	for i := 0; i < 48000; i++ {
		x := math.Sin(2 * math.Pi * 8000 * float64(i) / 48000)
		y := f.Process(x)
		if i > 4800 { // skip transient
			if a := math.Abs(y); a > maxOut {
				maxOut = a
			}
		}
	}
	if maxOut > 0.05 {
		t.Fatalf("expected strong attenuation at 8 kHz, peak %f", maxOut)
	}
}

func TestSVFBoundedAcrossSweep(t *testing.T) {
	// Impulse responses must stay finite for the full control range,
	// including per-sample cutoff sweeps.
	for _, res := range []float64{0, 0.5, 1.0, 1.2} {
		f := NewSVF(44100, 20, res)
		y := f.Process(1)
		for i := 0; i < 44100; i++ {
			cutoff := 20 + (0.49*44100-20)*float64(i)/44100
			f.SetCutoff(cutoff)
			y = f.Process(0)
			if math.IsNaN(y) || math.IsInf(y, 0) {
				t.Fatalf("res=%f: non-finite output at sample %d", res, i)
			}
			if math.Abs(y) > 100 {
				t.Fatalf("res=%f: runaway output %f at sample %d", res, y, i)
			}
		}
	}
}

func TestSVFCutoffClamped(t *testing.T) {
	f := NewSVF(48000, 1e9, 0)
	if got, want := f.Cutoff(), 48000*0.49; got != want {
		t.Fatalf("cutoff = %f, want %f", got, want)
	}
	f.SetCutoff(-5)
	if got := f.Cutoff(); got != 20 {
		t.Fatalf("cutoff = %f, want 20", got)
	}
}

func TestDelayEchoTiming(t *testing.T) {
	sr := 48000.0
	d := NewDelay(sr, 0.1, 0, 1) // full wet, no feedback
	d.Process(1)
	echoAt := -1
	for i := 1; i < 9600; i++ {
		if math.Abs(d.Process(0)) > 0.25 {
			echoAt = i
			break
		}
	}
	want := int(0.1 * sr)
	if echoAt < want-2 || echoAt > want+2 {
		t.Fatalf("echo at sample %d, want ~%d", echoAt, want)
	}
}

func TestDelayFractionalReadInterpolates(t *testing.T) {
	sr := 1000.0
	d := NewDelay(sr, 0.0105, 0, 1) // 10.5 samples
	d.Process(1)
	var v10, v11 float64
	for i := 1; i <= 11; i++ {
		y := d.Process(0)
		if i == 10 {
			v10 = y
		}
		if i == 11 {
			v11 = y
		}
	}
	// the unit impulse is split across the two neighbouring reads
	if math.Abs(v10-0.5) > 0.01 || math.Abs(v11-0.5) > 0.01 {
		t.Fatalf("fractional read = %f/%f, want ~0.5/0.5", v10, v11)
	}
}

func TestDelayBoundedAtMaxFeedback(t *testing.T) {
	sr := 8000.0
	d := NewDelay(sr, 0.05, 0.99, 1)
	d.Process(1)
	var maxAbs float64
	for i := 0; i < int(sr*4); i++ {
		y := d.Process(0)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("non-finite output at sample %d", i)
		}
		if a := math.Abs(y); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs > 2 {
		t.Fatalf("runaway feedback, peak %f", maxAbs)
	}
}

func TestDelayParamClamps(t *testing.T) {
	d := NewDelay(48000, 99, 2, -1)
	if d.Time() != maxDelaySeconds {
		t.Fatalf("time = %f, want %f", d.Time(), float64(maxDelaySeconds))
	}
	if d.Feedback() != 0.99 {
		t.Fatalf("feedback = %f, want 0.99", d.Feedback())
	}
	if d.Wet() != 0 {
		t.Fatalf("wet = %f, want 0", d.Wet())
	}
}

func TestReverbProducesTail(t *testing.T) {
	r := NewReverb(48000, 1)
	r.Process(1)
	var maxOut float64
	for i := 0; i < 48000; i++ {
		y := r.Process(0)
		if y > maxOut {
			maxOut = y
		}
	}
	if maxOut < 0.001 {
		t.Fatal("expected reverb tail after impulse")
	}
}

func TestReverbBoundedAtMaxDecay(t *testing.T) {
	r := NewReverb(44100, 1)
	r.SetDecay(60) // drives every comb to the 0.98 feedback clamp
	r.Process(1)
	for i := 0; i < 44100*5; i++ {
		y := r.Process(0)
		if math.IsNaN(y) || math.IsInf(y, 0) || math.Abs(y) > 10 {
			t.Fatalf("unstable reverb output %f at sample %d", y, i)
		}
	}
}

func TestReverbDryReferenceIsPreDelayOutput(t *testing.T) {
	// Pinned behavior: with wet=0 the output is the pre-delayed signal,
	// not the raw input.
	sr := 48000.0
	r := NewReverb(sr, 0)
	r.SetPreDelay(0.01)
	if y := r.Process(1); y != 0 {
		t.Fatalf("expected silence during pre-delay, got %f", y)
	}
	want := int(0.01 * sr)
	hitAt := -1
	for i := 1; i <= want+2; i++ {
		if r.Process(0) == 1 {
			hitAt = i
			break
		}
	}
	if hitAt != want {
		t.Fatalf("dry impulse at sample %d, want %d", hitAt, want)
	}
}

func TestReverbSizeRescaleKeepsCursorsInBounds(t *testing.T) {
	r := NewReverb(48000, 1)
	// toggle size around while processing and watch for blowups
	for i := 0; i < 2000; i++ {
		r.Process(math.Sin(float64(i) * 0.1))
	}
	for _, size := range []float64{0.5, 1.5, 0.7, 1.2, 1.0} {
		r.SetSize(size)
		for i := 0; i < 5000; i++ {
			y := r.Process(0.1)
			if math.IsNaN(y) || math.IsInf(y, 0) {
				t.Fatalf("size=%f: non-finite output", size)
			}
		}
	}
	r.SetSize(99)
	if r.Size() != 1.5 {
		t.Fatalf("size = %f, want clamp to 1.5", r.Size())
	}
}

func TestChainAppliesInOrder(t *testing.T) {
	d := NewDelay(48000, 0.01, 0, 0)
	r := NewReverb(48000, 0)
	c := NewChain(d, r)
	if y := c.Process(0.5); y != 0.5 {
		t.Fatalf("dry chain should pass signal through, got %f", y)
	}
	c.Reset()
}
