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
	"errors"
	"math"
	"testing"
)

// TestWindSpeedAtLogLaw checks that ψm = 0 reduces the profile to the pure
// logarithmic law.
func TestWindSpeedAtLogLaw(t *testing.T) {
	c := DefaultConstants()
	const ustar, d, z0m = 0.5, 18.55, 2.65
	for _, z := range []float64{22, 30, 42, 60} {
		want := ustar / c.Kappa * math.Log((z-d)/z0m)
		if have := WindSpeedAt(z, ustar, d, z0m, 0, c); different(want, have, 1e-12) {
			t.Errorf("z=%v: want %v but have %v", z, want, have)
		}
	}
	// Below d+z0m the log argument is non-positive: Missing, not a panic.
	if u := WindSpeedAt(18.0, ustar, d, z0m, 0, c); !IsMissing(u) {
		t.Errorf("z<d: want Missing but have %v", u)
	}
	if u := WindSpeedAt(30, 0, d, z0m, 0, c); !IsMissing(u) {
		t.Errorf("ustar=0: want Missing but have %v", u)
	}
	if u := WindSpeedAt(30, Missing(), d, z0m, 0, c); !IsMissing(u) {
		t.Errorf("missing ustar: want Missing but have %v", u)
	}
}

// TestWindProfileMonotonic checks that wind speed does not decrease with
// height above d+z0m.
func TestWindProfileMonotonic(t *testing.T) {
	c := DefaultConstants()
	const ustar, d, z0m = 0.5, 18.55, 2.65
	prev := math.Inf(-1)
	for z := d + z0m + 0.1; z < 100; z += 0.5 {
		u := WindSpeedAt(z, ustar, d, z0m, 0, c)
		if u < prev {
			t.Fatalf("wind speed decreased with height at z=%v: %v < %v", z, u, prev)
		}
		prev = u
	}
}

// TestWindProfileScenario reproduces the tall-forest scenario: zh=26.5 m,
// zr=42 m, z0m=2.65 m, d=18.55 m, evaluated at z=30 m. Neutral conditions
// give ≈1.93 m/s; a stable night (H=−70 W/m²) raises it to ≈2.31 m/s.
func TestWindProfileScenario(t *testing.T) {
	const ustar = 0.54
	s := &Series{
		Ustar:    []float64{ustar},
		Tair:     []float64{testTair},
		Pressure: []float64{testPressure},
		H:        []float64{-70},
	}

	neutral, err := WindProfile(s, WindProfileOptions{
		Z: testZ, D: 18.55, Z0m: 2.65,
		Formulation: NoStabilityCorrection,
	})
	if err != nil {
		t.Fatal(err)
	}
	if different(neutral[0], 1.93, 1e-2) {
		t.Errorf("neutral: want 1.93 but have %v", neutral[0])
	}

	corrected, err := WindProfile(s, WindProfileOptions{
		Z: testZ, D: 18.55, Z0m: 2.65,
		Formulation: Dyer1970,
	})
	if err != nil {
		t.Fatal(err)
	}
	if different(corrected[0], 2.31, 1e-2) {
		t.Errorf("corrected: want 2.31 but have %v", corrected[0])
	}
}

// TestWindProfileExplicitPsiM exercises call shape (a): both z0m and ψm
// supplied directly.
func TestWindProfileExplicitPsiM(t *testing.T) {
	c := DefaultConstants()
	s := &Series{Ustar: []float64{0.5, 0.4}}
	psiM := []float64{0.2, -0.1}
	out, err := WindProfile(s, WindProfileOptions{
		Z: testZ, D: 18.55, Z0m: 2.65, PsiM: psiM,
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := range out {
		want := WindSpeedAt(testZ, s.Ustar[i], 18.55, 2.65, psiM[i], c)
		if different(out[i], want, 1e-12) {
			t.Errorf("row %d: want %v but have %v", i, want, out[i])
		}
	}
}

// TestWindProfileEstimatedRoughness exercises call shape (c): no roughness
// given, so it is first fitted from the series itself.
func TestWindProfileEstimatedRoughness(t *testing.T) {
	c := DefaultConstants()
	const d0, z0m0 = 18.55, 2.65
	s := syntheticSeries(25, d0, z0m0, c)

	out, err := WindProfile(s, WindProfileOptions{
		Z:           testZ,
		Formulation: Dyer1970,
		Site:        SiteGeometry{Zh: testZh, Zr: testZr},
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := range out {
		L := ObukhovLength(s.Tair[i], s.Pressure[i], s.Ustar[i], s.H[i], c)
		psi := Dyer1970.PsiM(StabilityParameter(testZ, d0, L), c)
		want := WindSpeedAt(testZ, s.Ustar[i], d0, z0m0, psi, c)
		if different(out[i], want, 1e-2) {
			t.Errorf("row %d: want %v but have %v", i, want, out[i])
		}
	}
}

// TestWindProfileMissingPropagation checks that exactly the rows with
// missing inputs come back Missing and all others come back finite.
func TestWindProfileMissingPropagation(t *testing.T) {
	n := 10
	s := syntheticSeries(n, 18.55, 2.65, DefaultConstants())
	s.Ustar[2] = Missing()
	s.H[5] = Missing()
	s.Tair[7] = Missing()

	out, err := WindProfile(s, WindProfileOptions{
		Z: testZ, D: 18.55, Z0m: 2.65,
		Formulation: Dyer1970,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != n {
		t.Fatalf("want length %d but have %d", n, len(out))
	}
	for i := range out {
		gap := i == 2 || i == 5 || i == 7
		if gap && !IsMissing(out[i]) {
			t.Errorf("row %d: want Missing but have %v", i, out[i])
		}
		if !gap && !valid(out[i]) {
			t.Errorf("row %d: want finite but have %v", i, out[i])
		}
	}
}

func TestWindProfileConfigurationErrors(t *testing.T) {
	var cfgErr *ConfigurationError

	// z0m unresolved and no site geometry: must fail before computing.
	s := &Series{Ustar: []float64{0.5}, Wind: []float64{2}}
	_, err := WindProfile(s, WindProfileOptions{Z: testZ, Formulation: NoStabilityCorrection})
	if !errors.As(err, &cfgErr) {
		t.Errorf("want ConfigurationError but have %v", err)
	}

	// Required stability columns absent.
	_, err = WindProfile(s, WindProfileOptions{
		Z: testZ, D: 18.55, Z0m: 2.65, Formulation: Dyer1970,
	})
	if !errors.As(err, &cfgErr) {
		t.Errorf("want ConfigurationError but have %v", err)
	}

	// ψm column of the wrong length.
	_, err = WindProfile(s, WindProfileOptions{
		Z: testZ, D: 18.55, Z0m: 2.65, PsiM: []float64{0, 0},
	})
	if !errors.As(err, &cfgErr) {
		t.Errorf("want ConfigurationError but have %v", err)
	}

	// Nil series.
	_, err = WindProfile(nil, WindProfileOptions{Z: testZ, D: 18.55, Z0m: 2.65})
	if !errors.As(err, &cfgErr) {
		t.Errorf("want ConfigurationError but have %v", err)
	}
}
