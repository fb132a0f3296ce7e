package beam

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// ACI 318 Example 4-1: 12x20 in beam, 4 No. 8 bars taken as As = 3.16 in²
func TestComputeImperialGolden(t *testing.T) {
	input := DefaultInput(Imperial)
	result, err := Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if got, want := result.As, 3.16; math.Abs(got-want) > 1e-9 {
		t.Errorf("As = %v, want %v", got, want)
	}

	// a = (3.16 * 60000) / (0.85 * 4000 * 12) = 4.647 in
	if math.Abs(result.A-4.647) > 0.01 {
		t.Errorf("a = %v, want 4.647 ±0.01", result.A)
	}

	// c = a / 0.85
	if math.Abs(result.C-result.A/0.85) > 1e-9 {
		t.Errorf("c = %v, want a/beta1 = %v", result.C, result.A/0.85)
	}

	// Lever arm d - a/2 ≈ 15.18 in
	leverArm := input.EffectiveDepth - result.A/2
	if math.Abs(leverArm-15.18) > 0.01 {
		t.Errorf("lever arm = %v, want 15.18 ±0.01", leverArm)
	}

	// Mn = 3.16 * 60000 * 15.176 / 12000 ≈ 239.79 k-ft
	if math.Abs(result.MnDisplay-239.79) > 0.5 {
		t.Errorf("Mn = %v k-ft, want 239.79 ±0.5", result.MnDisplay)
	}

	if !result.SteelYields {
		t.Error("steel should yield for the reference section")
	}
	if result.Fs != input.Fy {
		t.Errorf("fs = %v, want fy = %v", result.Fs, input.Fy)
	}

	// Tension-controlled: εt ≥ 0.005, φ = 0.90
	if result.EpsilonT < 0.005 {
		t.Errorf("epsilon_t = %v, want >= 0.005", result.EpsilonT)
	}
	if result.Phi != 0.90 {
		t.Errorf("phi = %v, want 0.90", result.Phi)
	}

	if !result.AsMinOK {
		t.Error("As should satisfy As,min for the reference section")
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

// Same section with the exact bar area of 4 No. 8 bars (As = π in²·4/4 ≈ 3.1416)
func TestComputeImperialExactBarArea(t *testing.T) {
	input := DefaultInput(Imperial)
	input.BarArea = math.Pi / 4 // 4 bars → As = π ≈ 3.1416 in²

	result, err := Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if math.Abs(result.As-3.1416) > 0.0001 {
		t.Fatalf("As = %v, want 3.1416", result.As)
	}

	// a = (3.1416 * 60000) / 40800 = 4.620 in
	if math.Abs(result.A-4.620) > 0.01 {
		t.Errorf("a = %v, want 4.620 ±0.01", result.A)
	}

	// Mn = 3.1416 * 60000 * (17.5 - 2.310) / 12000 ≈ 238.6 k-ft
	if math.Abs(result.MnDisplay-238.6) > 0.5 {
		t.Errorf("Mn = %v k-ft, want 238.6 ±0.5", result.MnDisplay)
	}
}

// ACI 318 Example 4-1M: 250x565 mm beam, 3 bars of 510 mm²
func TestComputeSIGolden(t *testing.T) {
	input := DefaultInput(SI)
	result, err := Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if got, want := result.As, 1530.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("As = %v, want %v", got, want)
	}

	// a = (1530 * 420) / (0.85 * 20 * 250) = 151.2 mm
	if math.Abs(result.A-151.2) > 0.1 {
		t.Errorf("a = %v, want 151.2 ±0.1", result.A)
	}

	if !result.SteelYields {
		t.Error("steel should yield for the reference section")
	}

	// Mn = 1530 * 420 * (500 - 75.6) / 1e6 ≈ 272.7 kN-m
	if math.Abs(result.MnDisplay-272.7) > 0.5 {
		t.Errorf("Mn = %v kN-m, want 272.7 ±0.5", result.MnDisplay)
	}

	// As,min = max(0.25√20/420, 1.4/420) * 250 * 500 ≈ 416.7 mm² (1.4/fy governs)
	if math.Abs(result.AsMin-416.67) > 0.1 {
		t.Errorf("As,min = %v, want 416.67 ±0.1", result.AsMin)
	}
	if !result.AsMinOK {
		t.Error("As should satisfy As,min for the reference section")
	}
}

func TestAsMinImperialGoverningTerm(t *testing.T) {
	input := DefaultInput(Imperial)
	result, err := Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	// 200/fy governs over 3√f'c/fy for f'c = 4000, fy = 60000:
	// (200/60000)*12*17.5 = 0.700 in² vs (3*63.25/60000)*12*17.5 = 0.664 in²
	if math.Abs(result.AsMin-0.70) > 0.01 {
		t.Errorf("As,min = %v, want 0.70 ±0.01", result.AsMin)
	}
}

func TestAsMinMonotonicInArea(t *testing.T) {
	input := DefaultInput(Imperial)
	var prev float64
	for i := 1; i <= 10; i++ {
		input.Width = 6 + 2*float64(i)
		input.EffectiveDepth = 10 + 3*float64(i)
		input.Height = input.EffectiveDepth + 2.5
		result, err := Compute(input)
		if err != nil {
			t.Fatalf("Compute error: %v", err)
		}
		if result.AsMin < prev {
			t.Fatalf("As,min decreased from %v to %v as b*d grew", prev, result.AsMin)
		}
		prev = result.AsMin
	}
}

// Heavily reinforced narrow section: steel stays elastic, fs < fy
func TestComputeOverReinforced(t *testing.T) {
	input := SectionInput{
		FcPrime:        4000,
		Fy:             60000,
		Es:             29000000,
		Beta1:          0.85,
		EpsilonCU:      0.003,
		Width:          10,
		Height:         18,
		EffectiveDepth: 15,
		NumBars:        4,
		BarArea:        1.5,
		Units:          Imperial,
	}
	result, err := Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if result.SteelYields {
		t.Fatalf("steel should not yield: epsilon_s = %v, epsilon_y = %v", result.EpsilonS, result.EpsilonY)
	}
	if result.Fs >= input.Fy {
		t.Errorf("fs = %v, want < fy = %v", result.Fs, input.Fy)
	}
	if result.Fs != result.EpsilonS*input.Es {
		t.Errorf("fs = %v, want epsilon_s*Es = %v", result.Fs, result.EpsilonS*input.Es)
	}
	if result.Mn <= 0 {
		t.Errorf("Mn = %v, want > 0", result.Mn)
	}
}

func TestComputeDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SectionInput)
	}{
		{"zero bars", func(in *SectionInput) { in.NumBars = 0 }},
		{"zero bar area", func(in *SectionInput) { in.BarArea = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := DefaultInput(Imperial)
			tt.mutate(&input)

			result, err := Compute(input)
			if err != nil {
				t.Fatalf("Compute error: %v", err)
			}
			if !result.Degenerate {
				t.Error("result should be degenerate for As = 0")
			}
			if result.Mn != 0 {
				t.Errorf("Mn = %v, want 0", result.Mn)
			}
			if result.AsMinOK {
				t.Error("As = 0 cannot satisfy As,min")
			}
			if result.AsMin <= 0 {
				t.Errorf("As,min = %v, want > 0", result.AsMin)
			}
		})
	}
}

func TestComputeInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SectionInput)
	}{
		{"negative fc", func(in *SectionInput) { in.FcPrime = -100 }},
		{"zero fy", func(in *SectionInput) { in.Fy = 0 }},
		{"zero Es", func(in *SectionInput) { in.Es = 0 }},
		{"zero beta1", func(in *SectionInput) { in.Beta1 = 0 }},
		{"zero epsilon_cu", func(in *SectionInput) { in.EpsilonCU = 0 }},
		{"negative width", func(in *SectionInput) { in.Width = -12 }},
		{"zero height", func(in *SectionInput) { in.Height = 0 }},
		{"zero d", func(in *SectionInput) { in.EffectiveDepth = 0 }},
		{"negative bars", func(in *SectionInput) { in.NumBars = -1 }},
		{"negative bar area", func(in *SectionInput) { in.BarArea = -0.79 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := DefaultInput(Imperial)
			tt.mutate(&input)

			result, err := Compute(input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if result != nil {
				t.Errorf("expected nil result, got %+v", result)
			}
			var geomErr *InvalidGeometryError
			if !errors.As(err, &geomErr) {
				t.Errorf("expected InvalidGeometryError, got %T: %v", err, err)
			}
		})
	}
}

func TestComputeIdempotent(t *testing.T) {
	input := DefaultInput(SI)

	first, err := Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	second, err := Compute(input)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ for identical input:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestComputeDeepWarning(t *testing.T) {
	input := DefaultInput(Imperial)
	input.EffectiveDepth = input.Height + 1

	result, err := Compute(input)
	if err != nil {
		t.Fatalf("d >= h must warn, not fail: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for d >= h")
	}
	if result.Mn <= 0 {
		t.Errorf("Mn = %v, want > 0 (what-if input stays computable)", result.Mn)
	}
}

func TestDisplayConversions(t *testing.T) {
	t.Run("imperial", func(t *testing.T) {
		result, err := Compute(DefaultInput(Imperial))
		if err != nil {
			t.Fatalf("Compute error: %v", err)
		}
		if got, want := result.TDisplay, result.T/1000; got != want {
			t.Errorf("T display = %v, want %v kips", got, want)
		}
		if got, want := result.MnK, result.Mn/1000; got != want {
			t.Errorf("Mn k-in = %v, want %v", got, want)
		}
		if got, want := result.MnDisplay, result.Mn/12000; got != want {
			t.Errorf("Mn k-ft = %v, want %v", got, want)
		}
		if got, want := result.PhiMnDisplay, result.PhiMn/12000; got != want {
			t.Errorf("phiMn k-ft = %v, want %v", got, want)
		}
	})

	t.Run("si", func(t *testing.T) {
		result, err := Compute(DefaultInput(SI))
		if err != nil {
			t.Fatalf("Compute error: %v", err)
		}
		if got, want := result.TDisplay, result.T/1000; got != want {
			t.Errorf("T display = %v, want %v kN", got, want)
		}
		if got, want := result.MnDisplay, result.Mn/1e6; got != want {
			t.Errorf("Mn kN-m = %v, want %v", got, want)
		}
	})
}

// Switching unit systems changes only the As,min constants and the
// defaults, never the shape of the core formulas
func TestUnitSystemFormulaParity(t *testing.T) {
	// Identical magnitudes in both systems; only As,min may differ
	base := SectionInput{
		FcPrime:        30,
		Fy:             400,
		Es:             200000,
		Beta1:          0.85,
		EpsilonCU:      0.003,
		Width:          300,
		Height:         550,
		EffectiveDepth: 490,
		NumBars:        3,
		BarArea:        500,
	}

	imp := base
	imp.Units = Imperial
	si := base
	si.Units = SI

	impResult, err := Compute(imp)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	siResult, err := Compute(si)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if impResult.A != siResult.A || impResult.C != siResult.C ||
		impResult.EpsilonS != siResult.EpsilonS || impResult.Mn != siResult.Mn {
		t.Error("core quantities must not depend on the unit system")
	}
	if impResult.AsMin == siResult.AsMin {
		t.Error("As,min constants should differ between unit systems for these magnitudes")
	}
}
