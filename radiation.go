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
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const solarConstant = 1361. // W m-2

// PotentialRadiation returns the potential (top-of-atmosphere) shortwave
// radiation [W m-2] on a horizontal surface at the given instant and site
// coordinates [°]. Solar declination, the equation of time, and the
// Sun-Earth distance factor use the truncated Fourier forms of Spencer
// (1971) over the day angle derived from the Julian day. Night yields 0.
func PotentialRadiation(t time.Time, lat, lon float64) float64 {
	if t.IsZero() || !valid(lat, lon) {
		return Missing()
	}
	u := t.UTC()
	jd := julian.TimeToJD(u)
	doy := jd - julian.CalendarGregorianToJD(u.Year(), 1, 0)
	Γ := 2 * math.Pi * (doy - 1) / 365

	δ := 0.006918 - 0.399912*math.Cos(Γ) + 0.070257*math.Sin(Γ) -
		0.006758*math.Cos(2*Γ) + 0.000907*math.Sin(2*Γ) -
		0.002697*math.Cos(3*Γ) + 0.00148*math.Sin(3*Γ)
	e0 := 1.00011 + 0.034221*math.Cos(Γ) + 0.00128*math.Sin(Γ) +
		0.000719*math.Cos(2*Γ) + 0.000077*math.Sin(2*Γ)
	eqTimeMin := 229.18 * (0.000075 + 0.001868*math.Cos(Γ) -
		0.032077*math.Sin(Γ) - 0.014615*math.Cos(2*Γ) -
		0.040849*math.Sin(2*Γ))

	utcMin := float64(u.Hour()*60+u.Minute()) + float64(u.Second())/60
	tst := utcMin + 4*lon + eqTimeMin
	ha := (tst/4 - 180) * math.Pi / 180

	φ := lat * math.Pi / 180
	cosZen := math.Sin(φ)*math.Sin(δ) + math.Cos(φ)*math.Cos(δ)*math.Cos(ha)
	if cosZen <= 0 {
		return 0
	}
	return finiteOrMissing(solarConstant * e0 * cosZen)
}

// PotentialRadiationSeries computes potential radiation from the series
// timestamps. Rows with a zero timestamp yield Missing.
func PotentialRadiationSeries(s *Series, lat, lon float64) ([]float64, error) {
	if s.Time == nil {
		return nil, configErrorf("series is missing required column \"time\"")
	}
	if err := s.checkAligned(); err != nil {
		return nil, err
	}
	out := make([]float64, len(s.Time))
	for i, t := range s.Time {
		out[i] = PotentialRadiation(t, lat, lon)
	}
	return out, nil
}
