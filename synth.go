// Package polysynth is a polyphonic real-time synthesizer: note events and
// parameter changes in, blocks of audio samples out. The engine is driven
// entirely by its host — it has no clock of its own, only "render the next
// N frames". Realtime playback and WAV rendering are provided as hosts on
// top of the same engine.
package polysynth

import (
	"errors"
	"sync"

	intaudio "github.com/cbegin/polysynth-go/internal/audio"
	intsynth "github.com/cbegin/polysynth-go/internal/synth"
)

// MaxVoices is the engine's fixed polyphony capacity.
const MaxVoices = intsynth.MaxVoices

// WavetableSize is the fixed internal wavetable length.
const WavetableSize = intsynth.WavetableSize

// Synth wraps the engine with a mutex so hosts may call into it from
// multiple goroutines; the engine itself is single-owner and lock-free.
type Synth struct {
	mu         sync.Mutex
	engine     *intsynth.Engine
	sampleRate float64
	audio      *intaudio.Player
}

// New creates a fully initialized synthesizer at the given sample rate.
func New(sampleRate float64) (*Synth, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sampleRate must be positive")
	}
	return &Synth{
		engine:     intsynth.New(sampleRate),
		sampleRate: sampleRate,
	}, nil
}

// NoteOn starts a voice. Velocity is expected in 0..1 and is clamped.
func (s *Synth) NoteOn(note int, velocity float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.NoteOn(note, velocity)
}

// NoteOff releases every sounding voice with the given note.
func (s *Synth) NoteOff(note int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.NoteOff(note)
}

// SetParameter updates one control in the flat parameter namespace.
// Unrecognized names are silently ignored.
func (s *Synth) SetParameter(name string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetParameter(name, value)
}

// Parameter reads one control back; ok is false for unknown names.
func (s *Synth) Parameter(name string) (value float64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Parameter(name)
}

// SetWavetable resamples the input to the fixed internal table length.
// Empty input or an oscillator index outside {0,1} is a no-op.
func (s *Synth) SetWavetable(osc int, samples []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetWavetable(osc, samples)
}

// GetWavetable returns a copy of the table, or a zero-filled table for an
// invalid index.
func (s *Synth) GetWavetable(osc int) []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.GetWavetable(osc)
}

// RenderAudio renders exactly frames samples in [-1, 1]. A non-positive
// frame count returns an empty buffer.
func (s *Synth) RenderAudio(frames int) []float32 {
	if frames <= 0 {
		return []float32{}
	}
	out := make([]float32, frames)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Render(out)
	return out
}

// VoiceCount returns the number of live voices.
func (s *Synth) VoiceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.VoiceCount()
}

// SampleRate returns the rate the synth was constructed with.
func (s *Synth) SampleRate() float64 {
	return s.sampleRate
}

// Render implements the audio backend's sample source on the locked engine.
func (s *Synth) Render(dst []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Render(dst)
}

// Play starts realtime playback through the system audio device. The
// synth keeps rendering whatever notes the host sends until Stop.
func (s *Synth) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.audio != nil {
		s.audio.Play()
		return nil
	}
	backend, err := intaudio.NewPlayer(int(s.sampleRate), s)
	if err != nil {
		return err
	}
	s.audio = backend
	s.audio.Play()
	return nil
}

// Pause suspends playback without tearing down the audio device.
func (s *Synth) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.audio != nil {
		s.audio.Pause()
	}
}

// Stop ends playback and releases the audio player.
func (s *Synth) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.audio == nil {
		return nil
	}
	err := s.audio.Stop()
	s.audio = nil
	return err
}
