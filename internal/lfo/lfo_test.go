package lfo

import (
	"math"
	"testing"
)

func TestPhaseWrapsWithinTwoPi(t *testing.T) {
	var l LFO
	l.Set(10, 1, WaveSine)
	dt := 1.0 / 48000
	for i := 0; i < 48000*3; i++ {
		l.Tick(dt)
		if p := l.Phase(); p < 0 || p >= 2*math.Pi {
			t.Fatalf("phase out of range: %f", p)
		}
	}
}

func TestValueScaledByAmount(t *testing.T) {
	var l LFO
	l.Set(1, 2.5, WaveSine)
	// quarter cycle at 1 Hz puts a sine LFO at its peak
	dt := 1.0 / 48000
	for i := 0; i < 12000; i++ {
		l.Tick(dt)
	}
	if got := l.Value(); math.Abs(got-2.5) > 0.01 {
		t.Fatalf("peak value = %f, want ~2.5", got)
	}
}

func TestRetriggerResetsPhase(t *testing.T) {
	var l LFO
	l.Set(5, 1, WaveSaw)
	for i := 0; i < 1000; i++ {
		l.Tick(1.0 / 48000)
	}
	if l.Phase() == 0 {
		t.Fatal("expected non-zero phase before retrigger")
	}
	l.Retrigger()
	if l.Phase() != 0 {
		t.Fatalf("phase after retrigger = %f, want 0", l.Phase())
	}
}

func TestZeroRateHoldsPhase(t *testing.T) {
	var l LFO
	l.Set(0, 1, WaveTriangle)
	l.Tick(1.0 / 48000)
	if l.Phase() != 0 {
		t.Fatalf("phase advanced with zero rate: %f", l.Phase())
	}
}

func TestWaveformsStayBounded(t *testing.T) {
	for _, wf := range []int{WaveSine, WaveTriangle, WaveSquare, WaveSaw} {
		var l LFO
		l.Set(7.3, 1, wf)
		for i := 0; i < 20000; i++ {
			l.Tick(1.0 / 44100)
			v := l.Value()
			if math.IsNaN(v) || v < -1.0001 || v > 1.0001 {
				t.Fatalf("waveform %d produced %f", wf, v)
			}
		}
	}
}

func TestNegativeRateClampsToZero(t *testing.T) {
	var l LFO
	l.Set(-3, 1, WaveSine)
	l.Tick(1)
	if l.Phase() != 0 {
		t.Fatalf("negative rate should clamp to 0, phase = %f", l.Phase())
	}
}
