package beam

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// UnitSystem selects the native unit set and the governing formula constants.
// Each system is self-consistent (psi/in/lb for Imperial, MPa/mm/N for SI);
// switching systems resets to that system's defaults, it never converts.
type UnitSystem int

const (
	Imperial UnitSystem = iota
	SI
)

func (u UnitSystem) String() string {
	if u == SI {
		return "si"
	}
	return "imperial"
}

// ParseUnitSystem parses "imperial" or "si" (case-insensitive)
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch strings.ToLower(s) {
	case "imperial":
		return Imperial, nil
	case "si":
		return SI, nil
	default:
		return Imperial, fmt.Errorf("unknown unit system %q (expected \"imperial\" or \"si\")", s)
	}
}

// MarshalJSON encodes the unit system as its string form
func (u UnitSystem) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON decodes "imperial" or "si"
func (u *UnitSystem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseUnitSystem(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// SectionInput describes a singly reinforced rectangular section.
// All magnitudes are in the native units of Units; the record is
// constructed once per calculation and never mutated.
type SectionInput struct {
	// Materials (psi or MPa)
	FcPrime float64 `json:"fc"` // f'c - concrete compressive strength
	Fy      float64 `json:"fy"` // fy - steel yield strength
	Es      float64 `json:"es"` // Es - steel modulus of elasticity

	// Stress block factor and ultimate concrete strain
	Beta1     float64 `json:"beta1"`
	EpsilonCU float64 `json:"epsilon_cu"`

	// Geometry (in or mm)
	Width          float64 `json:"b"` // b - section width
	Height         float64 `json:"h"` // h - total depth
	EffectiveDepth float64 `json:"d"` // d - depth to tension steel centroid

	// Reinforcement
	NumBars int     `json:"n_bars"`   // count of tension bars
	BarArea float64 `json:"bar_area"` // area per bar (in² or mm²)

	Units UnitSystem `json:"units"`
}

// InvalidGeometryError reports a non-positive required input magnitude
type InvalidGeometryError struct {
	Field string
	Value float64
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid input: %s = %g (must be positive)", e.Field, e.Value)
}

// Validate checks that every required magnitude is positive.
// Zero NumBars or BarArea is allowed (degenerate unreinforced section);
// negative values are rejected.
func (in SectionInput) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"f'c", in.FcPrime},
		{"fy", in.Fy},
		{"Es", in.Es},
		{"beta1", in.Beta1},
		{"epsilon_cu", in.EpsilonCU},
		{"b", in.Width},
		{"h", in.Height},
		{"d", in.EffectiveDepth},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return &InvalidGeometryError{Field: c.field, Value: c.value}
		}
	}
	if in.NumBars < 0 {
		return &InvalidGeometryError{Field: "n_bars", Value: float64(in.NumBars)}
	}
	if in.BarArea < 0 {
		return &InvalidGeometryError{Field: "bar_area", Value: in.BarArea}
	}
	return nil
}

// DefaultInput returns the canonical reference scenario for a unit system
// (ACI 318 Examples 4-1 and 4-1M)
func DefaultInput(units UnitSystem) SectionInput {
	if units == SI {
		return SectionInput{
			FcPrime:        20,
			Fy:             420,
			Es:             200000,
			Beta1:          0.85,
			EpsilonCU:      0.003,
			Width:          250,
			Height:         565,
			EffectiveDepth: 500,
			NumBars:        3,
			BarArea:        510,
			Units:          SI,
		}
	}
	return SectionInput{
		FcPrime:        4000,
		Fy:             60000,
		Es:             29000000,
		Beta1:          0.85,
		EpsilonCU:      0.003,
		Width:          12,
		Height:         20,
		EffectiveDepth: 17.5,
		NumBars:        4,
		BarArea:        0.79,
		Units:          Imperial,
	}
}

// UnitLabels holds the display labels for a unit system
type UnitLabels struct {
	Length        string
	Area          string
	Stress        string
	Force         string
	ForceDisplay  string
	Moment        string
	MomentDisplay string
}

// Labels returns the unit labels for a unit system
func Labels(units UnitSystem) UnitLabels {
	if units == SI {
		return UnitLabels{
			Length:        "mm",
			Area:          "mm²",
			Stress:        "MPa",
			Force:         "N",
			ForceDisplay:  "kN",
			Moment:        "N-mm",
			MomentDisplay: "kN-m",
		}
	}
	return UnitLabels{
		Length:        "in",
		Area:          "in²",
		Stress:        "psi",
		Force:         "lb",
		ForceDisplay:  "kips",
		Moment:        "lb-in",
		MomentDisplay: "k-ft",
	}
}

// LoadInputFromFile loads a section input record from a JSON file
func LoadInputFromFile(path string) (*SectionInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var input SectionInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return &input, nil
}
