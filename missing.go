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

// missingBits is a quiet NaN carrying a payload ("missin" in ASCII) that
// floating-point arithmetic never produces, so a propagated observation gap
// stays distinguishable from a degenerate intermediate result.
const missingBits uint64 = 0x7ff86d697373696e

// Missing returns the sentinel marking an absent observation.
func Missing() float64 { return math.Float64frombits(missingBits) }

// IsMissing reports whether x is the missing-observation sentinel. An NaN
// produced by arithmetic is not Missing; see finiteOrMissing.
func IsMissing(x float64) bool { return math.Float64bits(x) == missingBits }

// valid reports whether every argument is present and finite.
func valid(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// finiteOrMissing converts a degenerate computation result (NaN or ±Inf)
// to the missing sentinel. Every scalar formula passes its result through
// this at its boundary, so NaNs from log-of-negative, division by zero and
// the like never escape as ordinary values.
func finiteOrMissing(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Missing()
	}
	return x
}
