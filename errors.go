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

import "fmt"

// ConfigurationError reports an input combination that is structurally
// unresolvable, such as a wind-profile roughness estimation requested
// without site geometry or a required column absent from a series. It is
// raised before any computation proceeds.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string { return "micromet: " + e.msg }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// InsufficientDataError reports that a series holds fewer valid rows than
// the wind-profile roughness regression requires.
type InsufficientDataError struct {
	Valid    int // valid rows found
	Required int // minimum valid rows needed
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("micromet: wind-profile fit needs at least %d valid rows but found %d",
		e.Required, e.Valid)
}
