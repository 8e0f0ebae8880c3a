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
	"time"

	"gonum.org/v1/gonum/floats"
)

// Series holds the named, equal-length observation columns of a flux-tower
// record. Row order is temporal order. Columns not needed by a computation
// may be nil; a computation that needs an absent column returns a
// ConfigurationError. Series values are never mutated by this package;
// every operation returns fresh columns.
type Series struct {
	Time     []time.Time // observation timestamps, optional
	Ustar    []float64   // friction velocity [m s-1]
	Tair     []float64   // air temperature [°C]
	Pressure []float64   // air pressure [kPa]
	H        []float64   // sensible heat flux [W m-2]
	Wind     []float64   // horizontal wind speed [m s-1]
	Rn       []float64   // net radiation [W m-2], optional
	G        []float64   // ground heat flux [W m-2], optional
}

// column maps a column name to its slice. Unknown names return nil.
func (s *Series) column(name string) []float64 {
	switch name {
	case "ustar":
		return s.Ustar
	case "Tair":
		return s.Tair
	case "pressure":
		return s.Pressure
	case "H":
		return s.H
	case "wind":
		return s.Wind
	case "Rn":
		return s.Rn
	case "G":
		return s.G
	}
	return nil
}

// Len returns the row count, taken from the first populated column.
func (s *Series) Len() int {
	if s.Time != nil {
		return len(s.Time)
	}
	for _, name := range []string{"ustar", "Tair", "pressure", "H", "wind", "Rn", "G"} {
		if col := s.column(name); col != nil {
			return len(col)
		}
	}
	return 0
}

// require returns a ConfigurationError naming the first of the given
// columns that is absent.
func (s *Series) require(names ...string) error {
	for _, name := range names {
		if s.column(name) == nil {
			return configErrorf("series is missing required column %q", name)
		}
	}
	return nil
}

// checkAligned returns a ConfigurationError if any populated column
// disagrees with the series length.
func (s *Series) checkAligned() error {
	n := s.Len()
	for _, name := range []string{"ustar", "Tair", "pressure", "H", "wind", "Rn", "G"} {
		if col := s.column(name); col != nil && len(col) != n {
			return configErrorf("column %q has %d rows, want %d", name, len(col), n)
		}
	}
	if s.Time != nil && len(s.Time) != n {
		return configErrorf("column \"time\" has %d rows, want %d", len(s.Time), n)
	}
	return nil
}

// ValidRows counts the rows of a column that are present and finite.
func ValidRows(col []float64) int {
	return floats.Count(func(x float64) bool { return valid(x) }, col)
}

// liftColumns applies a scalar formula element-wise over aligned columns.
// Any row with an absent or non-finite input yields Missing without
// aborting the rest of the series; degenerate results are converted to
// Missing at the formula boundary. This is the single place the
// missing-propagation rule for column math lives.
func liftColumns(f func(args ...float64) float64, cols ...[]float64) ([]float64, error) {
	if len(cols) == 0 {
		return nil, configErrorf("liftColumns: no columns given")
	}
	n := len(cols[0])
	for _, col := range cols[1:] {
		if len(col) != n {
			return nil, configErrorf("columns have mismatched lengths %d and %d", n, len(col))
		}
	}
	out := make([]float64, n)
	args := make([]float64, len(cols))
	for i := 0; i < n; i++ {
		ok := true
		for j, col := range cols {
			args[j] = col[i]
			if !valid(col[i]) {
				ok = false
			}
		}
		if !ok {
			out[i] = Missing()
			continue
		}
		out[i] = finiteOrMissing(f(args...))
	}
	return out, nil
}
