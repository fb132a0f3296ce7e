package beam

import (
	"github.com/alexiusacademia/goaci/internal/aci"
)

// SectionResult holds every quantity derived from one Compute call.
// Raw quantities are in the native units of the input; display fields
// carry the fixed scalings (÷1000 kip / ÷12000 k-ft for Imperial,
// ÷1000 kN / ÷1e6 kN-m for SI).
type SectionResult struct {
	// Reinforcement
	As float64 `json:"as"` // Total tension steel area (in² or mm²)

	// Forces
	T        float64 `json:"t"`         // Tension force at assumed yield (lb or N)
	TDisplay float64 `json:"t_display"` // kips or kN

	// Section properties
	A float64 `json:"a"` // Depth of compression block (in or mm)
	C float64 `json:"c"` // Neutral axis depth (in or mm)

	// Strains
	EpsilonY float64 `json:"epsilon_y"` // Yield strain fy/Es
	EpsilonS float64 `json:"epsilon_s"` // Steel strain at ultimate concrete strain
	EpsilonT float64 `json:"epsilon_t"` // Net tensile strain (= EpsilonS for a single layer)

	// Steel stress state
	SteelYields bool    `json:"steel_yields"`
	Fs          float64 `json:"fs"` // Stress used in the moment equation (psi or MPa)

	// Capacity
	Mn           float64 `json:"mn"`             // Nominal moment (lb-in or N-mm)
	MnK          float64 `json:"mn_k"`           // k-in (Imperial) or N-mm (SI)
	MnDisplay    float64 `json:"mn_display"`     // k-ft or kN-m
	Phi          float64 `json:"phi"`            // Strength reduction factor
	PhiMn        float64 `json:"phi_mn"`         // Design moment (lb-in or N-mm)
	PhiMnDisplay float64 `json:"phi_mn_display"` // k-ft or kN-m

	// Minimum reinforcement check
	AsMin   float64 `json:"as_min"`
	AsMinOK bool    `json:"as_min_ok"`

	// Degenerate marks an unreinforced section (As = 0): strain fields
	// are undefined and Mn = 0, but the result is still renderable
	Degenerate bool `json:"degenerate,omitempty"`

	Units    UnitSystem `json:"units"`
	Warnings []string   `json:"warnings,omitempty"`
}

// Compute calculates the nominal moment strength of a singly reinforced
// rectangular section using the equivalent rectangular stress block.
//
// The stress block depth is estimated with fy (standard Whitney-block
// derivation) and is not re-solved when the strain gate finds fs < fy;
// the reference scenarios are derived from this non-iterative form.
func Compute(input SectionInput) (*SectionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result := &SectionResult{Units: input.Units}

	if input.EffectiveDepth >= input.Height {
		result.Warnings = append(result.Warnings,
			"effective depth d is not less than total depth h; steel centroid lies outside the section")
	}

	// Total tension steel area
	result.As = float64(input.NumBars) * input.BarArea

	// Minimum reinforcement (ACI 318 Section 9.6.1.2)
	if input.Units == SI {
		result.AsMin = aci.AsMinSI(input.FcPrime, input.Fy, input.Width, input.EffectiveDepth)
	} else {
		result.AsMin = aci.AsMinImperial(input.FcPrime, input.Fy, input.Width, input.EffectiveDepth)
	}
	result.AsMinOK = result.As >= result.AsMin

	// No tension steel: c = 0, strain state undefined. Return a zeroed
	// degenerate result instead of dividing by zero.
	if result.As == 0 {
		result.Degenerate = true
		result.EpsilonY = input.Fy / input.Es
		return result, nil
	}

	// Tension force at assumed yield (reported for diagrams regardless
	// of the actual strain state)
	result.T = result.As * input.Fy

	// Depth of compression block
	// T = C → As*fy = 0.85*f'c*b*a
	result.A = result.As * input.Fy / (0.85 * input.FcPrime * input.Width)

	// Neutral axis depth
	result.C = result.A / input.Beta1

	// Strain compatibility from the extreme compression fiber
	result.EpsilonY = input.Fy / input.Es
	result.EpsilonS = input.EpsilonCU * (input.EffectiveDepth - result.C) / result.C
	result.EpsilonT = result.EpsilonS

	// Strain gate: at or beyond yield the steel stress is fy, below it
	// the steel is elastic and fs = εs*Es
	if result.EpsilonS >= result.EpsilonY {
		result.SteelYields = true
		result.Fs = input.Fy
	} else {
		result.SteelYields = false
		result.Fs = result.EpsilonS * input.Es
	}

	// Nominal moment using the strain-gated stress
	// Mn = As * fs * (d - a/2)
	result.Mn = result.As * result.Fs * (input.EffectiveDepth - result.A/2)

	// Strength reduction factor and design capacity
	result.Phi = aci.Phi(result.EpsilonT)
	result.PhiMn = result.Phi * result.Mn

	// Display conversions
	result.TDisplay = result.T / 1000
	if input.Units == SI {
		result.MnK = result.Mn // N-mm
		result.MnDisplay = result.Mn / 1e6
		result.PhiMnDisplay = result.PhiMn / 1e6
	} else {
		result.MnK = result.Mn / 1000 // k-in
		result.MnDisplay = result.Mn / 12000
		result.PhiMnDisplay = result.PhiMn / 12000
	}

	return result, nil
}
