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
	"math"
	"testing"
)

// Shared test site: a tall forest canopy with the sensor well above it.
const (
	testTolerance = 1e-3

	testZh       = 26.5 // canopy height [m]
	testZr       = 42.  // sensor height [m]
	testZ        = 30.  // wind-profile evaluation height [m]
	testTair     = 25.  // air temperature [°C]
	testPressure = 100. // pressure [kPa]
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

// syntheticSeries builds observations whose wind speeds follow the
// stability-corrected logarithmic profile exactly for the given d and z0m,
// with friction velocity and sensible heat flux swept across stable and
// unstable conditions.
func syntheticSeries(n int, d, z0m float64, c Constants) *Series {
	s := &Series{
		Ustar:    make([]float64, n),
		Tair:     make([]float64, n),
		Pressure: make([]float64, n),
		H:        make([]float64, n),
		Wind:     make([]float64, n),
	}
	for i := 0; i < n; i++ {
		frac := float64(i) / float64(n-1)
		ustar := 0.3 + 0.5*frac
		H := -115. + 290.*frac // never exactly zero for integer i
		L := ObukhovLength(testTair, testPressure, ustar, H, c)
		psi := Dyer1970.PsiM(StabilityParameter(testZr, d, L), c)
		s.Ustar[i] = ustar
		s.Tair[i] = testTair
		s.Pressure[i] = testPressure
		s.H[i] = H
		s.Wind[i] = ustar / c.Kappa * (math.Log((testZr-d)/z0m) + psi)
	}
	return s
}

func TestMissingSentinel(t *testing.T) {
	m := Missing()
	if !IsMissing(m) {
		t.Error("Missing() is not recognized by IsMissing")
	}
	if !math.IsNaN(m) {
		t.Error("Missing() must be an NaN for arithmetic propagation")
	}
	if IsMissing(math.NaN()) {
		t.Error("an arithmetic NaN must not be mistaken for Missing")
	}
	if IsMissing(0) || IsMissing(1.5) || IsMissing(math.Inf(1)) {
		t.Error("ordinary values mistaken for Missing")
	}
	if valid(1, 2, m) {
		t.Error("valid must reject Missing")
	}
	if got := finiteOrMissing(math.Log(-1)); !IsMissing(got) {
		t.Errorf("degenerate result not converted to Missing: %v", got)
	}
	if got := finiteOrMissing(3.5); got != 3.5 {
		t.Errorf("finite value altered: want 3.5 but have %v", got)
	}
}
