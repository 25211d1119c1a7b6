package polysynth

import (
	"encoding/json"

	intsynth "github.com/cbegin/polysynth-go/internal/synth"
)

// presetTableSamples bounds the wavetable snapshot included in a preset.
const presetTableSamples = 256

// ExportPreset serializes the configured (not currently sounding) state as
// a flat JSON object: every parameter key plus the first 256 samples of
// each wavetable.
func (s *Synth) ExportPreset() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj := make(map[string]interface{}, len(intsynth.PresetKeys)+1)
	for _, key := range intsynth.PresetKeys {
		if v, ok := s.engine.Parameter(key); ok {
			obj[key] = v
		}
	}
	tables := make([][]float64, 2)
	for i := range tables {
		tables[i] = s.engine.GetWavetable(i)[:presetTableSamples]
	}
	obj["wavetables"] = tables

	data, err := json.Marshal(obj)
	if err != nil {
		return []byte("{}")
	}
	return data
}

// ImportPreset applies every recognized field of a preset, ignoring the
// rest. Recognized numeric fields run through SetParameter so the same
// clamping rules apply as for live updates. It returns false only when the
// payload is not a JSON object; individually invalid fields are skipped.
func (s *Synth) ImportPreset(data []byte) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, raw := range obj {
		if key == "wavetables" {
			var tables [][]float64
			if err := json.Unmarshal(raw, &tables); err != nil {
				continue
			}
			for i, t := range tables {
				s.engine.SetWavetable(i, t)
			}
			continue
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		s.engine.SetParameter(key, v)
	}
	return true
}
