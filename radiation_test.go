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
	"testing"
	"time"
)

func TestPotentialRadiation(t *testing.T) {
	// Equinox, solar noon on the equator at the Greenwich meridian: the
	// sun is near the zenith, so Rpot approaches the solar constant.
	noon := time.Date(2023, time.March, 21, 12, 0, 0, 0, time.UTC)
	rpot := PotentialRadiation(noon, 0, 0)
	if rpot < 1200 || rpot > 1420 {
		t.Errorf("equinox noon: want ~1360 but have %v", rpot)
	}

	// Local midnight is dark.
	midnight := time.Date(2023, time.March, 21, 0, 0, 0, 0, time.UTC)
	if rpot := PotentialRadiation(midnight, 0, 0); rpot != 0 {
		t.Errorf("midnight: want 0 but have %v", rpot)
	}

	// Mid-latitude winter noon is well below the equatorial value.
	winter := time.Date(2023, time.December, 21, 12, 0, 0, 0, time.UTC)
	if r := PotentialRadiation(winter, 51, 0); r <= 0 || r >= rpot {
		t.Errorf("winter noon at 51°N: want 0 < Rpot < %v but have %v", rpot, r)
	}

	if r := PotentialRadiation(time.Time{}, 0, 0); !IsMissing(r) {
		t.Errorf("zero time: want Missing but have %v", r)
	}
}

func TestPotentialRadiationSeries(t *testing.T) {
	times := []time.Time{
		time.Date(2023, time.June, 21, 12, 0, 0, 0, time.UTC),
		{},
	}
	s := &Series{Time: times}
	out, err := PotentialRadiationSeries(s, 51, 13)
	if err != nil {
		t.Fatal(err)
	}
	if out[0] <= 0 {
		t.Errorf("row 0: want positive but have %v", out[0])
	}
	if !IsMissing(out[1]) {
		t.Errorf("row 1: want Missing but have %v", out[1])
	}
	if _, err := PotentialRadiationSeries(&Series{Ustar: []float64{0.5}}, 51, 13); err == nil {
		t.Error("want error when timestamps are absent")
	}
}
