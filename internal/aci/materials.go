package aci

import "math"

// ACI 318 Material Constants

const (
	// Beta1 factors for equivalent rectangular stress block
	// Table 22.2.2.4.3
	Beta1Max = 0.85 // for f'c <= 4000 psi (28 MPa)
	Beta1Min = 0.65 // minimum value

	// Ultimate concrete strain (Section 22.2.2.1)
	EpsilonCU = 0.003

	// Strength reduction factors (Table 21.2.2)
	PhiFlexure     = 0.90 // Tension-controlled sections
	PhiCompression = 0.65 // Compression-controlled (tied)

	// Strain limits for phi interpolation
	EpsilonTCL = 0.005 // Tension-controlled limit
	EpsilonCCL = 0.002 // Compression-controlled limit

	// Modulus of elasticity for steel (Section 20.2.2.2)
	EsImperial = 29000000.0 // psi
	EsSI       = 200000.0   // MPa
)

// Beta1Imperial calculates the stress block factor for f'c in psi
// ACI 318 Table 22.2.2.4.3
func Beta1Imperial(fc float64) float64 {
	if fc <= 4000 {
		return Beta1Max
	}
	if fc >= 8000 {
		return Beta1Min
	}
	// β1 = 0.85 - 0.05(f'c - 4000)/1000 for 4000 < f'c < 8000 psi
	return Beta1Max - 0.05*(fc-4000)/1000
}

// Beta1SI calculates the stress block factor for f'c in MPa
func Beta1SI(fc float64) float64 {
	if fc <= 28 {
		return Beta1Max
	}
	if fc >= 55 {
		return Beta1Min
	}
	// β1 = 0.85 - 0.05(f'c - 28)/7 for 28 < f'c < 55 MPa
	return Beta1Max - 0.05*(fc-28)/7
}

// Phi calculates the strength reduction factor from the net tensile strain
// ACI 318 Table 21.2.2 with the fixed 0.002/0.005 strain limits
func Phi(epsilonT float64) float64 {
	if epsilonT >= EpsilonTCL {
		// Tension-controlled
		return PhiFlexure
	}
	if epsilonT <= EpsilonCCL {
		// Compression-controlled
		return PhiCompression
	}
	// Transition zone
	return PhiCompression + 0.25*(epsilonT-EpsilonCCL)/0.003
}

// AsMinImperial calculates minimum flexural reinforcement area (in²)
// ACI 318 Section 9.6.1.2, f'c and fy in psi, b and d in inches
func AsMinImperial(fc, fy, b, d float64) float64 {
	// As,min = max(3√f'c / fy, 200/fy) * b * d
	term1 := (3 * math.Sqrt(fc) / fy) * b * d
	term2 := (200 / fy) * b * d
	return math.Max(term1, term2)
}

// AsMinSI calculates minimum flexural reinforcement area (mm²)
// f'c and fy in MPa, b and d in mm
func AsMinSI(fc, fy, b, d float64) float64 {
	// As,min = max(0.25√f'c / fy, 1.4/fy) * b * d
	term1 := (0.25 * math.Sqrt(fc) / fy) * b * d
	term2 := (1.4 / fy) * b * d
	return math.Max(term1, term2)
}
