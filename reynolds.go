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

// ReynoldsNumber returns the roughness Reynolds number Re = z0m·u*/ν [-]
// from air temperature [°C], pressure [kPa], friction velocity [m s-1],
// and a characteristic roughness length z0m [m]. Massman (1999).
func ReynoldsNumber(Tair, pressure, ustar, z0m float64, c Constants) float64 {
	ν := KinematicViscosity(Tair, pressure, c)
	if !valid(ν, ustar, z0m) {
		return Missing()
	}
	return finiteOrMissing(z0m * ustar / ν)
}

// ReynoldsNumberSeries computes the roughness Reynolds number for every
// row of a series at a fixed roughness length.
func ReynoldsNumberSeries(s *Series, z0m float64, c Constants) ([]float64, error) {
	if err := s.require("Tair", "pressure", "ustar"); err != nil {
		return nil, err
	}
	if err := s.checkAligned(); err != nil {
		return nil, err
	}
	return liftColumns(func(args ...float64) float64 {
		return ReynoldsNumber(args[0], args[1], args[2], z0m, c)
	}, s.Tair, s.Pressure, s.Ustar)
}
