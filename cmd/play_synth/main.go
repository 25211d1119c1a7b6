// Command play_synth demos the engine: it schedules a small arpeggio and
// either plays it through the system audio device or renders it offline
// to a WAV file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	polysynth "github.com/cbegin/polysynth-go"
)

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 48000, "output sample rate")
		wavPath    = flag.String("wav", "", "render offline to a WAV file instead of playing")
		seconds    = flag.Float64("seconds", 4, "total length when rendering to WAV")
		notes      = flag.String("notes", "60,64,67,72", "comma-separated MIDI notes for the arpeggio")
		noteLen    = flag.Duration("note-len", 250*time.Millisecond, "time between arpeggio steps")
		waveform   = flag.Float64("waveform", 1, "osc0 waveform: 0=sine 1=saw 2=square 3=triangle 4=noise 5=wavetable")
		cutoff     = flag.Float64("cutoff", 1200, "filter cutoff in Hz")
		reverbWet  = flag.Float64("reverb", 0.25, "reverb wet mix 0..1")
		delayWet   = flag.Float64("delay", 0.35, "delay wet mix 0..1")
	)
	flag.Parse()

	arp, err := parseNotes(*notes)
	if err != nil {
		log.Fatal(err)
	}

	s, err := polysynth.New(float64(*sampleRate))
	if err != nil {
		log.Fatal(err)
	}
	s.SetParameter("osc0_waveform", *waveform)
	s.SetParameter("filter_cutoff", *cutoff)
	s.SetParameter("fx_reverb_wet", *reverbWet)
	s.SetParameter("fx_delay_wet", *delayWet)

	if *wavPath != "" {
		renderOffline(s, arp, *wavPath, *seconds, *noteLen)
		return
	}
	playRealtime(s, arp, *noteLen)
}

// renderOffline interleaves note scheduling with block rendering so the
// arpeggio lands at the right sample offsets.
func renderOffline(s *polysynth.Synth, arp []int, path string, seconds float64, noteLen time.Duration) {
	sr := s.SampleRate()
	stepFrames := int(noteLen.Seconds() * sr)
	if stepFrames < 1 {
		stepFrames = 1
	}
	totalFrames := int(seconds * sr)

	var out []float32
	prev := -1
	for rendered := 0; rendered < totalFrames; {
		step := rendered / stepFrames
		if step*stepFrames == rendered {
			if prev >= 0 {
				s.NoteOff(prev)
			}
			prev = arp[step%len(arp)]
			s.NoteOn(prev, 0.9)
		}
		n := stepFrames
		if rendered+n > totalFrames {
			n = totalFrames - rendered
		}
		out = append(out, s.RenderAudio(n)...)
		rendered += n
	}
	if prev >= 0 {
		s.NoteOff(prev)
	}
	out = append(out, s.RenderAudio(int(sr))...) // release + reverb tail

	if err := os.WriteFile(path, polysynth.EncodeWAVFloat32LE(out, int(sr), 1), 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s (%.1fs)\n", path, float64(len(out))/sr)
}

func playRealtime(s *polysynth.Synth, arp []int, noteLen time.Duration) {
	if err := s.Play(); err != nil {
		log.Fatal(err)
	}
	defer s.Stop()
	fmt.Println("playing; ctrl-c to quit")
	for i := 0; ; i++ {
		note := arp[i%len(arp)]
		s.NoteOn(note, 0.9)
		time.Sleep(noteLen)
		s.NoteOff(note)
	}
}

func parseNotes(list string) ([]int, error) {
	var notes []int
	for _, part := range strings.Split(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 127 {
			return nil, fmt.Errorf("invalid MIDI note %q", part)
		}
		notes = append(notes, n)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("no notes given")
	}
	return notes, nil
}
