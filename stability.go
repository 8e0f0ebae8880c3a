/*
Copyright © 2024 the micromet authors.
This file is part of micromet.

micromet is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

micromet is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with micromet.  If not, see <http://www.gnu.org/licenses/>.
*/

package micromet

import (
	"fmt"
	"math"
)

// Formulation selects the functional form of the Monin-Obukhov stability
// correction. The set of variants is closed; the correction function is
// resolved from a fixed registry when the selector is used, never chosen
// by runtime state.
type Formulation int

const (
	// Dyer1970 is the Businger-Dyer form with the coefficients of
	// Dyer (1970).
	Dyer1970 Formulation = iota
	// NoStabilityCorrection returns ζ = 0 and ψm = 0 unconditionally,
	// keeping downstream calls shape-uniform.
	NoStabilityCorrection
)

func (f Formulation) String() string {
	switch f {
	case Dyer1970:
		return "Dyer_1970"
	case NoStabilityCorrection:
		return "no_stability_correction"
	}
	return fmt.Sprintf("Formulation(%d)", int(f))
}

// ParseFormulation converts a configuration string to a Formulation.
func ParseFormulation(s string) (Formulation, error) {
	switch s {
	case "Dyer_1970":
		return Dyer1970, nil
	case "no_stability_correction":
		return NoStabilityCorrection, nil
	}
	return 0, configErrorf("unknown stability formulation %q", s)
}

type psiFunc func(zeta float64, c Constants) float64

// psiRegistry is the closed registry of correction functions.
var psiRegistry = map[Formulation]psiFunc{
	Dyer1970:              psiMDyer1970,
	NoStabilityCorrection: func(float64, Constants) float64 { return 0 },
}

// PsiM evaluates the stability correction for momentum at ζ. The sign
// convention is that of the wind profile u(z) = (u*/κ)[ln((z−d)/z0m) + ψm]:
// positive under stable stratification, negative under unstable.
func (f Formulation) PsiM(zeta float64, c Constants) float64 {
	fn, ok := psiRegistry[f]
	if !ok {
		panic(fmt.Errorf("micromet: unknown stability formulation %v", f))
	}
	if f == NoStabilityCorrection {
		return 0
	}
	if !valid(zeta) {
		return Missing()
	}
	return finiteOrMissing(fn(zeta, c))
}

// psiMDyer1970 integrates the Dyer (1970) ϕm over the stable (linear in ζ)
// and unstable (Paulson 1970) branches. ζ = 0 falls in the unstable branch,
// where the expression is continuous and evaluates to 0.
func psiMDyer1970(zeta float64, c Constants) float64 {
	if zeta > 0 { // stable
		return c.DyerStable * zeta
	}
	// unstable
	x := math.Pow(1-c.DyerUnstable*zeta, 0.25)
	return -(2*math.Log((1+x)/2) + math.Log((1+x*x)/2) -
		2*math.Atan(x) + math.Pi/2)
}

// ObukhovLength returns the Monin-Obukhov length L [m] from air temperature
// [°C], pressure [kPa], friction velocity [m s-1], and sensible heat flux
// [W m-2] via the buoyancy-flux relation L = −ρ·cp·u*³·T/(κ·g·H).
// u* ≤ 0 or any missing input yields Missing; H = 0 degenerates to Missing.
func ObukhovLength(Tair, pressure, ustar, H float64, c Constants) float64 {
	if !valid(Tair, pressure, ustar, H) || ustar <= 0 {
		return Missing()
	}
	ρ := AirDensity(Tair, pressure, c)
	TK := Tair + c.Kelvin
	return finiteOrMissing(-(ρ * c.Cp * ustar * ustar * ustar * TK) /
		(c.Kappa * c.G * H))
}

// StabilityParameter returns ζ = (z−d)/L. L of 0 or Missing yields Missing.
func StabilityParameter(z, d, L float64) float64 {
	if !valid(z, d, L) || L == 0 {
		return Missing()
	}
	return finiteOrMissing((z - d) / L)
}

// Stability holds the stability parameter and momentum correction for one
// observation. It is derived state: always recomputed from its inputs,
// never cached across calls.
type Stability struct {
	Zeta float64 // (z−d)/L [-]
	PsiM float64 // integrated momentum correction [-]
}

// StabilityCorrection computes ζ and ψm for a single observation at
// evaluation height z [m] and displacement height d [m]. Missing or
// non-positive friction velocity propagates as a Missing pair. The
// NoStabilityCorrection formulation returns {0, 0} for any input.
func StabilityCorrection(f Formulation, Tair, pressure, ustar, H, z, d float64, c Constants) Stability {
	if f == NoStabilityCorrection {
		return Stability{}
	}
	L := ObukhovLength(Tair, pressure, ustar, H, c)
	zeta := StabilityParameter(z, d, L)
	if !valid(zeta) {
		return Stability{Zeta: Missing(), PsiM: Missing()}
	}
	return Stability{Zeta: zeta, PsiM: f.PsiM(zeta, c)}
}

// StabilityCorrectionSeries computes ζ and ψm columns for every row of a
// series at evaluation height z and displacement height d. Rows with
// missing inputs yield Missing in both outputs without aborting the call.
func StabilityCorrectionSeries(f Formulation, s *Series, z, d float64, c Constants) (zeta, psiM []float64, err error) {
	if err := s.checkAligned(); err != nil {
		return nil, nil, err
	}
	n := s.Len()
	if f == NoStabilityCorrection {
		return make([]float64, n), make([]float64, n), nil
	}
	if err := s.require("Tair", "pressure", "ustar", "H"); err != nil {
		return nil, nil, err
	}
	zeta = make([]float64, n)
	psiM = make([]float64, n)
	for i := 0; i < n; i++ {
		st := StabilityCorrection(f, s.Tair[i], s.Pressure[i], s.Ustar[i], s.H[i], z, d, c)
		zeta[i] = st.Zeta
		psiM[i] = st.PsiM
	}
	return zeta, psiM, nil
}
