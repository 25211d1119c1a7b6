package synth

// envStage enumerates the ADSR state machine. envIdle is terminal: a voice
// whose envelope reaches it is retired and never reused.
type envStage int

const (
	envAttack envStage = iota
	envDecay
	envSustain
	envRelease
	envIdle
)

// ADSRParams are the engine-owned envelope defaults. They are copied into
// each voice at note-on; later edits do not affect sounding voices.
type ADSRParams struct {
	Attack  float64 // seconds
	Decay   float64 // seconds
	Sustain float64 // 0-1
	Release float64 // seconds
}

func defaultADSRParams() ADSRParams {
	return ADSRParams{Attack: 0.01, Decay: 0.2, Sustain: 0.8, Release: 0.3}
}

// envelope is owned exclusively by one voice. A fresh envelope starts in
// attack at level 0; noteOff forces release from any stage.
type envelope struct {
	params ADSRParams
	stage  envStage
	level  float64
}

func newEnvelope(p ADSRParams) envelope {
	return envelope{params: p, stage: envAttack}
}

func (e *envelope) noteOff() {
	e.stage = envRelease
}

// floor for time constants so pathological durations cannot divide by zero
const minEnvTime = 1e-6

// tick advances the envelope by dt seconds and returns the new level.
func (e *envelope) tick(dt float64) float64 {
	switch e.stage {
	case envAttack:
		e.level += dt / max(e.params.Attack, minEnvTime)
		if e.level >= 1 {
			e.level = 1
			e.stage = envDecay
		}
	case envDecay:
		e.level -= dt / max(e.params.Decay, minEnvTime) * (1 - e.params.Sustain)
		if e.level <= e.params.Sustain {
			e.level = e.params.Sustain
			e.stage = envSustain
		}
	case envSustain:
		// hold
	case envRelease:
		e.level -= dt / max(e.params.Release, minEnvTime)
		if e.level <= 0 {
			e.level = 0
			e.stage = envIdle
		}
	case envIdle:
	}
	return e.level
}

func (e *envelope) idle() bool {
	return e.stage == envIdle
}
