package synth

import (
	"math"
	"math/rand"
)

const twoPi = math.Pi * 2

// WavetableSize is the fixed internal table length. Arbitrary-length input
// buffers are resampled to this length on assignment.
const WavetableSize = 2048

// Waveform selects how an oscillator slot synthesizes its sample.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSaw
	WaveSquare
	WaveTriangle
	WaveNoise
	WaveWavetable
)

// waveformFromValue maps a parameter value to a Waveform, defaulting to sine.
func waveformFromValue(v float64) Waveform {
	switch int(math.Round(v)) {
	case 1:
		return WaveSaw
	case 2:
		return WaveSquare
	case 3:
		return WaveTriangle
	case 4:
		return WaveNoise
	case 5:
		return WaveWavetable
	default:
		return WaveSine
	}
}

// OscSettings are shared by every voice; edits take effect on the next sample.
type OscSettings struct {
	Waveform    Waveform
	DetuneCents float64
	Gain        float64
}

func defaultOscSettings() OscSettings {
	return OscSettings{Waveform: WaveSaw, DetuneCents: 0, Gain: 0.8}
}

// sampleWave synthesizes one sample for a phase position in table-index
// units [0, WavetableSize). The table is only consulted for WaveWavetable.
func sampleWave(w Waveform, phase float64, table []float64) float64 {
	p := phase / WavetableSize
	switch w {
	case WaveSine:
		return math.Sin(twoPi * p)
	case WaveSaw:
		return 2 * (p - 0.5)
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 2 * (2*math.Abs(p-0.25) - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	case WaveWavetable:
		return tableLookup(table, phase)
	}
	return 0
}

// tableLookup reads a fractional phase from the table with linear interpolation.
func tableLookup(table []float64, phase float64) float64 {
	if len(table) == 0 {
		return 0
	}
	idx := math.Floor(phase)
	frac := phase - idx
	i0 := int(idx) % len(table)
	if i0 < 0 {
		i0 += len(table)
	}
	i1 := (i0 + 1) % len(table)
	return table[i0]*(1-frac) + table[i1]*frac
}

// resampleTable stretches src to exactly WavetableSize samples using linear
// interpolation, treating src as one cycle (wrapping at the end).
func resampleTable(src []float64) []float64 {
	out := make([]float64, WavetableSize)
	n := len(src)
	for i := range out {
		x := float64(i) / WavetableSize * float64(n)
		i0 := int(math.Floor(x)) % n
		i1 := (i0 + 1) % n
		frac := x - math.Floor(x)
		out[i] = src[i0]*(1-frac) + src[i1]*frac
	}
	return out
}

// defaultSineTable returns one full sine cycle at the fixed table length.
func defaultSineTable() []float64 {
	t := make([]float64, WavetableSize)
	for i := range t {
		t[i] = math.Sin(twoPi * float64(i) / WavetableSize)
	}
	return t
}

func midiToFreq(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
