// Command play_midi turns the first available MIDI input into a live
// keyboard for the synth engine.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"

	polysynth "github.com/cbegin/polysynth-go"
	"gitlab.com/gomidi/rtmididrv"
)

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 48000, "output sample rate")
		waveform   = flag.Float64("waveform", 1, "osc0 waveform: 0=sine 1=saw 2=square 3=triangle 4=noise 5=wavetable")
		preset     = flag.String("preset", "", "path to a preset JSON to load")
	)
	flag.Parse()

	s, err := polysynth.New(float64(*sampleRate))
	if err != nil {
		log.Fatal(err)
	}
	s.SetParameter("osc0_waveform", *waveform)
	if *preset != "" {
		data, err := os.ReadFile(*preset)
		if err != nil {
			log.Fatal(err)
		}
		if !s.ImportPreset(data) {
			log.Fatalf("%s is not a valid preset", *preset)
		}
	}

	drv, err := rtmididrv.New()
	if err != nil {
		log.Fatalf("failed to initialize MIDI driver: %v", err)
	}
	defer drv.Close()

	ins, err := drv.Ins()
	if err != nil {
		log.Fatalf("failed to list MIDI inputs: %v", err)
	}
	if len(ins) == 0 {
		log.Fatal("no MIDI input found")
	}
	in := ins[0]
	if err := in.Open(); err != nil {
		log.Fatalf("failed to open MIDI input: %v", err)
	}
	defer in.Close()
	log.Printf("listening on %s", in.String())

	if err := in.SetListener(func(data []byte, deltaMicroseconds int64) {
		if len(data) < 3 {
			return
		}
		status, note, velocity := data[0]>>4, int(data[1]), data[2]
		switch {
		case status == 8 || (status == 9 && velocity == 0):
			s.NoteOff(note)
		case status == 9:
			s.NoteOn(note, float64(velocity)/127)
		}
	}); err != nil {
		log.Fatalf("failed to set MIDI listener: %v", err)
	}
	defer in.StopListening()

	if err := s.Play(); err != nil {
		log.Fatal(err)
	}
	defer s.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	log.Println("shutting down")
}
