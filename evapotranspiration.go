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

// PTAlphaDefault is the Priestley and Taylor (1972) coefficient for
// saturated surfaces.
const PTAlphaDefault = 1.26

// PotentialET returns the potential latent heat flux λE [W m-2] and the
// corresponding potential evapotranspiration [kg m-2 s-1] after Priestley
// and Taylor (1972):
//
//	λE_pot = α·Δ/(Δ+γ)·(Rn−G)
//
// A Missing ground heat flux is treated as zero; missing Tair, pressure,
// or Rn propagates.
func PotentialET(Tair, pressure, Rn, G, alpha float64, c Constants) (LE, ET float64) {
	if !valid(Tair, pressure, Rn) {
		return Missing(), Missing()
	}
	if !valid(G) {
		G = 0
	}
	Δ := SlopeSaturationVaporPressure(Tair)
	γ := PsychrometricConstant(Tair, pressure, c)
	λ := LatentHeatVaporization(Tair)
	LE = finiteOrMissing(alpha * Δ / (Δ + γ) * (Rn - G))
	if !valid(LE) {
		return Missing(), Missing()
	}
	return LE, finiteOrMissing(LE / λ)
}

// PotentialETSeries computes λE_pot and ET_pot for every row. The G column
// is optional; when absent the ground heat flux is zero.
func PotentialETSeries(s *Series, alpha float64, c Constants) (LE, ET []float64, err error) {
	if err := s.require("Tair", "pressure", "Rn"); err != nil {
		return nil, nil, err
	}
	if err := s.checkAligned(); err != nil {
		return nil, nil, err
	}
	n := s.Len()
	LE = make([]float64, n)
	ET = make([]float64, n)
	for i := 0; i < n; i++ {
		g := Missing()
		if s.G != nil {
			g = s.G[i]
		}
		LE[i], ET[i] = PotentialET(s.Tair[i], s.Pressure[i], s.Rn[i], g, alpha, c)
	}
	return LE, ET, nil
}
