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

import "testing"

func TestAirDensity(t *testing.T) {
	c := DefaultConstants()
	if ρ := AirDensity(testTair, testPressure, c); different(ρ, 1.16841, testTolerance) {
		t.Errorf("want 1.16841 but have %v", ρ)
	}
	if ρ := AirDensity(Missing(), testPressure, c); !IsMissing(ρ) {
		t.Errorf("want Missing but have %v", ρ)
	}
}

func TestKinematicViscosity(t *testing.T) {
	c := DefaultConstants()
	if ν := KinematicViscosity(testTair, testPressure, c); different(ν, 1.57554e-5, testTolerance) {
		t.Errorf("want 1.57554e-5 but have %v", ν)
	}
	// Zero pressure degenerates to Missing.
	if ν := KinematicViscosity(testTair, 0, c); !IsMissing(ν) {
		t.Errorf("want Missing but have %v", ν)
	}
}

func TestSaturationVaporPressure(t *testing.T) {
	if e := SaturationVaporPressure(testTair); different(e, 3.16006, testTolerance) {
		t.Errorf("want 3.16006 but have %v", e)
	}
	if d := SlopeSaturationVaporPressure(testTair); different(d, 0.188306, testTolerance) {
		t.Errorf("want 0.188306 but have %v", d)
	}
}

func TestPsychrometricConstant(t *testing.T) {
	c := DefaultConstants()
	if γ := PsychrometricConstant(testTair, testPressure, c); different(γ, 0.0661611, testTolerance) {
		t.Errorf("want 0.0661611 but have %v", γ)
	}
}

func TestVirtualTemperature(t *testing.T) {
	c := DefaultConstants()
	Tv := VirtualTemperature(testTair, testPressure, 2.0, c)
	if Tv <= testTair { // moist air is lighter, so Tv > Tair
		t.Errorf("want Tv > %v but have %v", testTair, Tv)
	}
	if Tv := VirtualTemperature(testTair, testPressure, Missing(), c); !IsMissing(Tv) {
		t.Errorf("want Missing but have %v", Tv)
	}
}

func TestReynoldsNumber(t *testing.T) {
	c := DefaultConstants()
	if re := ReynoldsNumber(testTair, testPressure, 0.5, 2.65, c); different(re, 84098.4, testTolerance) {
		t.Errorf("want 84098.4 but have %v", re)
	}
	if re := ReynoldsNumber(Missing(), testPressure, 0.5, 2.65, c); !IsMissing(re) {
		t.Errorf("want Missing but have %v", re)
	}
}

func TestReynoldsNumberSeries(t *testing.T) {
	c := DefaultConstants()
	s := &Series{
		Tair:     []float64{testTair, testTair},
		Pressure: []float64{testPressure, Missing()},
		Ustar:    []float64{0.5, 0.5},
	}
	re, err := ReynoldsNumberSeries(s, 2.65, c)
	if err != nil {
		t.Fatal(err)
	}
	if different(re[0], 84098.4, testTolerance) {
		t.Errorf("row 0: want 84098.4 but have %v", re[0])
	}
	if !IsMissing(re[1]) {
		t.Errorf("row 1: want Missing but have %v", re[1])
	}
	if _, err := ReynoldsNumberSeries(&Series{Tair: []float64{20}}, 2.65, c); err == nil {
		t.Error("want error for missing columns")
	}
}
