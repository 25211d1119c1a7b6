package synth

import "strings"

// SetParameter routes a host-supplied key/value pair into engine state.
// Values are clamped to safe operating ranges at the point of assignment;
// unrecognized keys are silently ignored. There is no error return: in a
// real-time signal path a bad control has no recovery path mid-stream.
func (e *Engine) SetParameter(name string, value float64) {
	switch name {
	// oscillators
	case "osc0_waveform":
		e.oscs[0].Waveform = waveformFromValue(value)
	case "osc1_waveform":
		e.oscs[1].Waveform = waveformFromValue(value)
	case "osc0_gain", "osc0_volume":
		e.oscs[0].Gain = value
	case "osc1_gain", "osc1_volume":
		e.oscs[1].Gain = value
	case "osc0_detune":
		e.oscs[0].DetuneCents = value
	case "osc1_detune":
		e.oscs[1].DetuneCents = value
	case "osc0_sync", "osc1_sync":
		// reserved for hard sync

	// envelope defaults (copied into voices at note-on)
	case "env_attack":
		e.envDefaults.Attack = max(value, 0.0001)
	case "env_decay":
		e.envDefaults.Decay = max(value, 0.0001)
	case "env_sustain":
		e.envDefaults.Sustain = clamp(value, 0, 1)
	case "env_release":
		e.envDefaults.Release = max(value, 0.0001)

	// filter
	case "filter_cutoff":
		e.baseCutoff = max(value, 20)
		e.filter.SetCutoff(e.baseCutoff)
	case "filter_resonance":
		e.filter.SetResonance(value)
	case "filter_env":
		e.filterEnvEnabled = value > 0.5

	// LFOs
	case "lfo0_rate":
		e.lfos[0].SetRate(value)
	case "lfo0_amount":
		e.lfos[0].SetAmount(value)
	case "lfo0_waveform":
		e.lfos[0].SetWaveform(int(value))
	case "lfo1_rate":
		e.lfos[1].SetRate(value)
	case "lfo1_amount":
		e.lfos[1].SetAmount(value)
	case "lfo1_waveform":
		e.lfos[1].SetWaveform(int(value))
	case "lfo0_retrigger":
		e.lfo0Retrigger = value > 0.5

	// effects
	case "fx_delay_time":
		e.delay.SetTime(max(value, 0))
	case "fx_delay_feedback":
		e.delay.SetFeedback(value)
	case "fx_delay_wet":
		e.delay.SetWet(value)
	case "fx_delay_damp":
		e.delay.SetDamp(value)
	case "fx_reverb_wet":
		e.reverb.SetWet(value)
	case "fx_reverb_size":
		e.reverb.SetSize(value)
	case "fx_reverb_decay":
		e.reverb.SetDecay(value)
	case "fx_reverb_predelay":
		e.reverb.SetPreDelay(value)

	// master
	case "master_gain":
		e.masterGain = value

	default:
		if strings.HasPrefix(name, "mod_") {
			e.mods.setByName(name, value)
		}
	}
}

// Parameter returns the current value for a recognized key, and false for
// unknown keys. Boolean flags report 0 or 1.
func (e *Engine) Parameter(name string) (float64, bool) {
	switch name {
	case "osc0_waveform":
		return float64(e.oscs[0].Waveform), true
	case "osc1_waveform":
		return float64(e.oscs[1].Waveform), true
	case "osc0_gain":
		return e.oscs[0].Gain, true
	case "osc1_gain":
		return e.oscs[1].Gain, true
	case "osc0_detune":
		return e.oscs[0].DetuneCents, true
	case "osc1_detune":
		return e.oscs[1].DetuneCents, true
	case "env_attack":
		return e.envDefaults.Attack, true
	case "env_decay":
		return e.envDefaults.Decay, true
	case "env_sustain":
		return e.envDefaults.Sustain, true
	case "env_release":
		return e.envDefaults.Release, true
	case "filter_cutoff":
		return e.baseCutoff, true
	case "filter_resonance":
		return e.filter.Resonance(), true
	case "filter_env":
		return boolValue(e.filterEnvEnabled), true
	case "lfo0_rate":
		return e.lfos[0].Rate(), true
	case "lfo0_amount":
		return e.lfos[0].Amount(), true
	case "lfo0_waveform":
		return float64(e.lfos[0].Waveform()), true
	case "lfo1_rate":
		return e.lfos[1].Rate(), true
	case "lfo1_amount":
		return e.lfos[1].Amount(), true
	case "lfo1_waveform":
		return float64(e.lfos[1].Waveform()), true
	case "lfo0_retrigger":
		return boolValue(e.lfo0Retrigger), true
	case "fx_delay_time":
		return e.delay.Time(), true
	case "fx_delay_feedback":
		return e.delay.Feedback(), true
	case "fx_delay_wet":
		return e.delay.Wet(), true
	case "fx_delay_damp":
		return e.delay.Damp(), true
	case "fx_reverb_wet":
		return e.reverb.Wet(), true
	case "fx_reverb_size":
		return e.reverb.Size(), true
	case "fx_reverb_decay":
		return e.reverb.Decay(), true
	case "fx_reverb_predelay":
		return e.reverb.PreDelay(), true
	case "master_gain":
		return e.masterGain, true
	case "mod_lfo0_to_cutoff":
		return e.mods.LFO0ToCutoff, true
	case "mod_lfo1_to_cutoff":
		return e.mods.LFO1ToCutoff, true
	case "mod_env_to_cutoff":
		return e.mods.EnvToCutoff, true
	case "mod_lfo0_to_amp":
		return e.mods.LFO0ToAmp, true
	case "mod_lfo1_to_amp":
		return e.mods.LFO1ToAmp, true
	case "mod_lfo0_to_wtpos":
		return e.mods.LFO0ToWTPos, true
	case "mod_lfo1_to_wtpos":
		return e.mods.LFO1ToWTPos, true
	}
	return 0, false
}

// PresetKeys lists every parameter included in an exported preset, in a
// stable order.
var PresetKeys = []string{
	"master_gain",
	"osc0_waveform", "osc0_gain", "osc0_detune",
	"osc1_waveform", "osc1_gain", "osc1_detune",
	"env_attack", "env_decay", "env_sustain", "env_release",
	"filter_cutoff", "filter_resonance", "filter_env",
	"lfo0_rate", "lfo0_amount", "lfo0_waveform",
	"lfo1_rate", "lfo1_amount", "lfo1_waveform",
	"lfo0_retrigger",
	"fx_delay_time", "fx_delay_feedback", "fx_delay_wet", "fx_delay_damp",
	"fx_reverb_wet", "fx_reverb_size", "fx_reverb_decay", "fx_reverb_predelay",
	"mod_lfo0_to_cutoff", "mod_lfo1_to_cutoff", "mod_env_to_cutoff",
	"mod_lfo0_to_amp", "mod_lfo1_to_amp",
	"mod_lfo0_to_wtpos", "mod_lfo1_to_wtpos",
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
