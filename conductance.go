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

// AerodynamicConductanceMomentum returns Ga_m = u*²/u [m s-1], the
// aerodynamic conductance for momentum between the surface and the
// measurement height.
func AerodynamicConductanceMomentum(ustar, wind float64) float64 {
	if !valid(ustar, wind) || ustar <= 0 || wind <= 0 {
		return Missing()
	}
	return finiteOrMissing(ustar * ustar / wind)
}

// AerodynamicConductanceMomentumSeries computes Ga_m for every row.
func AerodynamicConductanceMomentumSeries(s *Series) ([]float64, error) {
	if err := s.require("ustar", "wind"); err != nil {
		return nil, err
	}
	if err := s.checkAligned(); err != nil {
		return nil, err
	}
	return liftColumns(func(args ...float64) float64 {
		return AerodynamicConductanceMomentum(args[0], args[1])
	}, s.Ustar, s.Wind)
}

// BoundaryLayerConductanceThom returns the canopy boundary-layer
// conductance Gb [m s-1] from friction velocity alone.
// Thom (1972): Rb = 6.2·u*^(−0.667).
func BoundaryLayerConductanceThom(ustar float64) float64 {
	if !valid(ustar) || ustar <= 0 {
		return Missing()
	}
	return finiteOrMissing(1 / (6.2 * math.Pow(ustar, -0.667)))
}

// BoundaryLayerConductanceSu returns the canopy boundary-layer conductance
// Gb [m s-1] after Su et al. (2001), mixing a within-canopy term driven by
// the leaf-scale Reynolds number with a bare-soil term driven by the
// roughness Reynolds number, weighted by fractional canopy cover
// fc = 1 − exp(−LAI/2).
func BoundaryLayerConductanceSu(Tair, pressure, ustar, wind, Dl, LAI float64, c Constants) float64 {
	if !valid(Tair, pressure, ustar, wind, Dl, LAI) ||
		ustar <= 0 || wind <= 0 || Dl <= 0 || LAI <= 0 {
		return Missing()
	}
	const N = 2 // leaf sides participating in heat exchange
	fc := 1 - math.Exp(-LAI/2)
	ν := KinematicViscosity(Tair, pressure, c)
	Re := ReynoldsNumber(Tair, pressure, ustar, c.Hs, c)
	kBsoil := 2.46*math.Pow(Re, 0.25) - math.Log(7.4) // Su et al. (2001), eq. 11
	Reh := Dl * wind / ν                              // leaf-scale Reynolds number
	Ct := math.Pow(c.Pr, -2.0/3.0) * math.Pow(Reh, -0.5) * N
	kB := c.Kappa*c.Cd/(4*Ct*ustar/wind)*fc*fc + kBsoil*(1-fc)*(1-fc)
	return finiteOrMissing(c.Kappa * ustar / kB)
}

// BoundaryLayerConductanceSuSeries computes the Su et al. (2001)
// conductance for every row, with Dl and LAI from the site geometry.
func BoundaryLayerConductanceSuSeries(s *Series, site SiteGeometry, c Constants) ([]float64, error) {
	if err := s.require("Tair", "pressure", "ustar", "wind"); err != nil {
		return nil, err
	}
	if err := s.checkAligned(); err != nil {
		return nil, err
	}
	return liftColumns(func(args ...float64) float64 {
		return BoundaryLayerConductanceSu(args[0], args[1], args[2], args[3],
			site.Dl, site.LAI, c)
	}, s.Tair, s.Pressure, s.Ustar, s.Wind)
}
