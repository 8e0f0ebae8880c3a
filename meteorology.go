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

// AirDensity returns the density of air ρ [kg m-3] from air temperature
// [°C] and pressure [kPa] via the gas law for dry air.
func AirDensity(Tair, pressure float64, c Constants) float64 {
	if !valid(Tair, pressure) {
		return Missing()
	}
	return finiteOrMissing(pressure * c.KPa2Pa / (c.Rd * (Tair + c.Kelvin)))
}

// KinematicViscosity returns the kinematic viscosity of air ν [m2 s-1]
// from air temperature [°C] and pressure [kPa]. Massman (1999), eq. 6.
func KinematicViscosity(Tair, pressure float64, c Constants) float64 {
	if !valid(Tair, pressure) {
		return Missing()
	}
	TK := Tair + c.Kelvin
	return finiteOrMissing(1.327e-5 * (c.Pressure0 / pressure) *
		math.Pow(TK/c.Tair0, 1.81))
}

// SaturationVaporPressure returns the saturation vapor pressure esat [kPa]
// over water at air temperature [°C]. Magnus form with the coefficients of
// Sonntag (1990).
func SaturationVaporPressure(Tair float64) float64 {
	if !valid(Tair) {
		return Missing()
	}
	return finiteOrMissing(0.6112 * math.Exp(17.62*Tair/(243.12+Tair)))
}

// SlopeSaturationVaporPressure returns Δ, the slope of the saturation
// vapor pressure curve [kPa K-1] at air temperature [°C].
func SlopeSaturationVaporPressure(Tair float64) float64 {
	esat := SaturationVaporPressure(Tair)
	if !valid(esat) {
		return Missing()
	}
	d := 243.12 + Tair
	return finiteOrMissing(esat * 17.62 * 243.12 / (d * d))
}

// LatentHeatVaporization returns λ [J kg-1] at air temperature [°C].
// Linear approximation per Stull (1988), p. 641.
func LatentHeatVaporization(Tair float64) float64 {
	if !valid(Tair) {
		return Missing()
	}
	return (2.501 - 0.00237*Tair) * 1e6
}

// PsychrometricConstant returns γ [kPa K-1] from air temperature [°C] and
// pressure [kPa].
func PsychrometricConstant(Tair, pressure float64, c Constants) float64 {
	λ := LatentHeatVaporization(Tair)
	if !valid(Tair, pressure, λ) {
		return Missing()
	}
	return finiteOrMissing(c.Cp * pressure / (c.Eps * λ))
}

// VirtualTemperature returns the virtual temperature [°C] from air
// temperature [°C], pressure [kPa], and vapor pressure e [kPa].
func VirtualTemperature(Tair, pressure, e float64, c Constants) float64 {
	if !valid(Tair, pressure, e) {
		return Missing()
	}
	TK := Tair + c.Kelvin
	return finiteOrMissing(TK/(1-(1-c.Eps)*e/pressure) - c.Kelvin)
}
