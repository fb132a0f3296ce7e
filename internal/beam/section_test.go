package beam

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestParseUnitSystem(t *testing.T) {
	tests := []struct {
		in      string
		want    UnitSystem
		wantErr bool
	}{
		{"imperial", Imperial, false},
		{"Imperial", Imperial, false},
		{"si", SI, false},
		{"SI", SI, false},
		{"metric", Imperial, true},
		{"", Imperial, true},
	}

	for _, tt := range tests {
		got, err := ParseUnitSystem(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseUnitSystem(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseUnitSystem(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseUnitSystem(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUnitSystemJSONRoundTrip(t *testing.T) {
	for _, u := range []UnitSystem{Imperial, SI} {
		data, err := json.Marshal(u)
		if err != nil {
			t.Fatalf("marshal %v: %v", u, err)
		}
		var back UnitSystem
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != u {
			t.Errorf("round trip %v -> %s -> %v", u, data, back)
		}
	}
}

func TestDefaultInput(t *testing.T) {
	imp := DefaultInput(Imperial)
	if imp.FcPrime != 4000 || imp.Fy != 60000 || imp.Es != 29000000 {
		t.Errorf("unexpected Imperial material defaults: %+v", imp)
	}
	if imp.Width != 12 || imp.Height != 20 || imp.EffectiveDepth != 17.5 {
		t.Errorf("unexpected Imperial geometry defaults: %+v", imp)
	}
	if imp.NumBars != 4 || imp.BarArea != 0.79 {
		t.Errorf("unexpected Imperial reinforcement defaults: %+v", imp)
	}

	si := DefaultInput(SI)
	if si.FcPrime != 20 || si.Fy != 420 || si.Es != 200000 {
		t.Errorf("unexpected SI material defaults: %+v", si)
	}
	if si.NumBars != 3 || si.BarArea != 510 {
		t.Errorf("unexpected SI reinforcement defaults: %+v", si)
	}

	// Defaults must pass their own validation
	for _, in := range []SectionInput{imp, si} {
		if err := in.Validate(); err != nil {
			t.Errorf("default input invalid: %v", err)
		}
	}
}

func TestLabels(t *testing.T) {
	imp := Labels(Imperial)
	if imp.Stress != "psi" || imp.MomentDisplay != "k-ft" {
		t.Errorf("unexpected Imperial labels: %+v", imp)
	}
	si := Labels(SI)
	if si.Stress != "MPa" || si.MomentDisplay != "kN-m" {
		t.Errorf("unexpected SI labels: %+v", si)
	}
}

func TestLoadInputFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "section.json")
		input := DefaultInput(SI)
		data, err := json.Marshal(input)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatalf("write: %v", err)
		}

		loaded, err := LoadInputFromFile(path)
		if err != nil {
			t.Fatalf("LoadInputFromFile: %v", err)
		}
		if *loaded != input {
			t.Errorf("loaded %+v, want %+v", *loaded, input)
		}
	})

	t.Run("invalid geometry rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		input := DefaultInput(Imperial)
		input.FcPrime = -100
		data, _ := json.Marshal(input)
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := LoadInputFromFile(path); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadInputFromFile(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
