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

import "math"

// WindSpeedAt returns the wind speed [m s-1] at height z [m] from the
// stability-corrected logarithmic profile
//
//	u(z) = (u*/κ)·[ln((z−d)/z0m) + ψm].
//
// Non-positive friction velocity or a non-positive log argument yields
// Missing.
func WindSpeedAt(z, ustar, d, z0m, psiM float64, c Constants) float64 {
	if !valid(z, ustar, d, z0m, psiM) || ustar <= 0 {
		return Missing()
	}
	return finiteOrMissing(ustar / c.Kappa * (math.Log((z-d)/z0m) + psiM))
}

// WindProfileOptions configures a series wind-profile evaluation at a
// single height Z. Three call shapes are supported:
//
//  1. D and Z0m supplied together with an explicit PsiM column;
//  2. D and Z0m supplied and ψm computed per row from the selected
//     stability formulation at height Z;
//  3. Z0m left unresolved (zero or Missing): Site.Zh and Site.Zr are then
//     required, and d and z0m are first estimated with the wind-profile
//     roughness regime before shape 2 applies.
//
// A zero-value Constants field means DefaultConstants.
type WindProfileOptions struct {
	Z           float64 // evaluation height [m]
	D           float64 // displacement height [m]; used only when Z0m is resolved
	Z0m         float64 // roughness length [m]; ≤ 0 or Missing triggers estimation
	PsiM        []float64
	Formulation Formulation
	Site        SiteGeometry
	Constants   Constants
}

// WindProfile evaluates the wind profile at height o.Z for every row of a
// series. The configuration is validated before any computation: an
// unresolvable roughness setup returns a ConfigurationError immediately.
// Rows with missing inputs yield Missing output without aborting the call.
func WindProfile(s *Series, o WindProfileOptions) ([]float64, error) {
	if o.Constants == (Constants{}) {
		o.Constants = DefaultConstants()
	}
	c := o.Constants
	if s == nil {
		return nil, configErrorf("wind profile requires an observation series")
	}
	resolved := valid(o.Z0m) && o.Z0m > 0
	if !resolved && !(valid(o.Site.Zh, o.Site.Zr) && o.Site.Zh > 0 && o.Site.Zr > 0) {
		return nil, configErrorf("wind profile: z0m not supplied and site geometry (zh, zr) absent")
	}
	need := []string{"ustar"}
	internalPsi := o.PsiM == nil && o.Formulation != NoStabilityCorrection
	if internalPsi {
		need = append(need, "Tair", "pressure", "H")
	}
	if !resolved {
		need = append(need, "wind")
	}
	if err := s.require(need...); err != nil {
		return nil, err
	}
	if err := s.checkAligned(); err != nil {
		return nil, err
	}
	n := s.Len()
	if o.PsiM != nil && len(o.PsiM) != n {
		return nil, configErrorf("ψm column has %d rows, want %d", len(o.PsiM), n)
	}

	d, z0m := o.D, o.Z0m
	if !resolved {
		est, err := RoughnessParameters(RoughnessOptions{
			Method:      FromWindProfile,
			Formulation: o.Formulation,
			Site:        o.Site,
			Series:      s,
			PsiM:        o.PsiM,
			Constants:   c,
		})
		if err != nil {
			return nil, err
		}
		d, z0m = est.D, est.Z0m
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var psi float64
		switch {
		case o.PsiM != nil:
			psi = o.PsiM[i]
		case internalPsi:
			st := StabilityCorrection(o.Formulation, s.Tair[i], s.Pressure[i],
				s.Ustar[i], s.H[i], o.Z, d, c)
			psi = st.PsiM
		}
		out[i] = WindSpeedAt(o.Z, s.Ustar[i], d, z0m, psi, c)
	}
	return out, nil
}
