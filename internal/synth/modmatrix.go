package synth

// ModMatrix holds the scalar weight for each modulation route in use.
// Unknown route names are silently ignored.
type ModMatrix struct {
	LFO0ToCutoff float64
	LFO1ToCutoff float64
	EnvToCutoff  float64
	LFO0ToAmp    float64
	LFO1ToAmp    float64
	LFO0ToWTPos  float64
	LFO1ToWTPos  float64
}

func defaultModMatrix() ModMatrix {
	return ModMatrix{LFO0ToCutoff: 0.3}
}

func (m *ModMatrix) setByName(name string, value float64) {
	switch name {
	case "mod_lfo0_to_cutoff":
		m.LFO0ToCutoff = value
	case "mod_lfo1_to_cutoff":
		m.LFO1ToCutoff = value
	case "mod_env_to_cutoff":
		m.EnvToCutoff = value
	case "mod_lfo0_to_amp":
		m.LFO0ToAmp = value
	case "mod_lfo1_to_amp":
		m.LFO1ToAmp = value
	case "mod_lfo0_to_wtpos":
		m.LFO0ToWTPos = value
	case "mod_lfo1_to_wtpos":
		m.LFO1ToWTPos = value
	}
}
