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

// Constants bundles the physical and empirical constants used by the
// package. Every computation takes an explicit bundle; there is no global
// state to mutate. Use DefaultConstants and override individual fields as
// needed.
type Constants struct {
	Kappa  float64 // von Kármán constant [-]
	G      float64 // gravitational acceleration [m s-2]
	Cp     float64 // specific heat of air at constant pressure [J kg-1 K-1]
	Rd     float64 // gas constant of dry air [J kg-1 K-1]
	Rgas   float64 // universal gas constant [J mol-1 K-1]
	Kelvin float64 // 0 °C in K
	Eps    float64 // ratio of the molar masses of water vapor and dry air [-]
	Pr     float64 // Prandtl number [-]

	KPa2Pa    float64 // conversion kPa -> Pa
	Pressure0 float64 // reference sea-level pressure [kPa]
	Tair0     float64 // reference air temperature [K]

	// Empirical coefficients of the Dyer (1970) stability functions.
	DyerUnstable float64 // coefficient of ζ inside the unstable-branch root
	DyerStable   float64 // coefficient of ζ on the stable branch

	// Roughness estimation.
	FracD   float64 // d/zh under the canopy-height regime
	FracZ0m float64 // z0m/zh under the canopy-height regime
	Cd      float64 // mean drag coefficient of canopy elements [-]
	Hs      float64 // roughness length of the soil surface [m]

	// Bounds for the wind-profile roughness fit.
	MinWindProfileRows int // minimum valid rows for the regression (≥ 2)
	DSearchGrid        int // coarse grid intervals for the displacement-height search
	DSearchIter        int // golden-section refinement iterations
}

// DefaultConstants returns the published values of all constants.
func DefaultConstants() Constants {
	return Constants{
		Kappa:  0.41,
		G:      9.81,
		Cp:     1004.834,
		Rd:     287.0586,
		Rgas:   8.31451,
		Kelvin: 273.15,
		Eps:    0.622,
		Pr:     0.71,

		KPa2Pa:    1000,
		Pressure0: 101.325,
		Tair0:     273.15,

		// Dyer (1970); same values as Dyer (1974), Concluding Remarks.
		DyerUnstable: 16,
		DyerStable:   5,

		FracD:   0.7,
		FracZ0m: 0.1,
		Cd:      0.2,  // Choudhury and Monteith (1988)
		Hs:      0.01, // Shuttleworth and Gurney (1990)

		MinWindProfileRows: 3,
		DSearchGrid:        20,
		DSearchIter:        40,
	}
}
