package polysynth

import (
	"encoding/json"
	"testing"
)

func TestPresetRoundTripOnDefaults(t *testing.T) {
	src, err := New(48000)
	if err != nil {
		t.Fatalf("new synth: %v", err)
	}
	data := src.ExportPreset()

	dst, _ := New(48000)
	// disturb some state so the import has work to do
	dst.SetParameter("filter_cutoff", 333)
	dst.SetParameter("osc0_gain", 0.1)
	dst.SetParameter("mod_lfo0_to_cutoff", 0.9)

	if !dst.ImportPreset(data) {
		t.Fatal("import of a fresh export failed")
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	for key := range obj {
		if key == "wavetables" {
			continue
		}
		want, ok := src.Parameter(key)
		if !ok {
			t.Fatalf("export contains unknown key %q", key)
		}
		got, _ := dst.Parameter(key)
		if got != want {
			t.Fatalf("round trip %q = %f, want %f", key, got, want)
		}
	}
}

func TestPresetContainsWavetableSnapshot(t *testing.T) {
	s, _ := New(48000)
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(s.ExportPreset(), &obj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var tables [][]float64
	if err := json.Unmarshal(obj["wavetables"], &tables); err != nil {
		t.Fatalf("wavetables field: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("wavetable count = %d, want 2", len(tables))
	}
	for i, table := range tables {
		if len(table) != presetTableSamples {
			t.Fatalf("table %d snapshot length = %d, want %d", i, len(table), presetTableSamples)
		}
	}
}

func TestImportPresetStructuralFailure(t *testing.T) {
	s, _ := New(48000)
	for _, bad := range []string{"", "not json", "[1,2,3]", `"string"`, "42"} {
		if s.ImportPreset([]byte(bad)) {
			t.Fatalf("import of %q should fail", bad)
		}
	}
}

func TestImportPresetSkipsInvalidFields(t *testing.T) {
	s, _ := New(48000)
	payload := `{"filter_cutoff": 640, "osc0_gain": "loud", "unknown_key": 1, "wavetables": "nope"}`
	if !s.ImportPreset([]byte(payload)) {
		t.Fatal("well-formed object should import")
	}
	if got, _ := s.Parameter("filter_cutoff"); got != 640 {
		t.Fatalf("filter_cutoff = %f, want 640", got)
	}
	if got, _ := s.Parameter("osc0_gain"); got != 0.8 {
		t.Fatalf("osc0_gain = %f, want untouched default 0.8", got)
	}
}

func TestImportPresetRestoresWavetables(t *testing.T) {
	src, _ := New(48000)
	ramp := make([]float64, 256)
	for i := range ramp {
		ramp[i] = float64(i)/128 - 1
	}
	src.SetWavetable(1, ramp)
	data := src.ExportPreset()

	dst, _ := New(48000)
	if !dst.ImportPreset(data) {
		t.Fatal("import failed")
	}
	got := dst.GetWavetable(1)
	want := src.GetWavetable(1)
	// the snapshot covers the first 256 samples; after resampling those
	// early samples should agree closely
	for i := 0; i < 16; i++ {
		if diff := got[i] - want[i]; diff > 0.05 || diff < -0.05 {
			t.Fatalf("sample %d = %f, want ~%f", i, got[i], want[i])
		}
	}
}
