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

// Package micromet derives micrometeorological and ecophysiological
// quantities from half-hourly eddy-covariance flux-tower observations
// under the big-leaf approximation: Monin-Obukhov stability corrections,
// surface roughness parameters, logarithmic wind profiles, aerodynamic
// and boundary-layer conductances, and potential evapotranspiration.
//
// All formulas exist in two shapes: a scalar form operating on single
// observations, and a series form operating element-wise over the aligned
// columns of a Series. Absent or degenerate values are represented by the
// Missing sentinel and propagate row-wise; a series computation never
// aborts because individual rows are invalid.
package micromet

// Version gives the version number of this version of micromet.
const Version = "0.2.1"
