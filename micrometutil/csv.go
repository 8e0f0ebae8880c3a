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

package micrometutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/fluxtools/micromet"
)

// Column is a named derived column appended to the output table.
type Column struct {
	Name   string
	Values []float64
}

// ReadSeries reads a CSV table of named observation columns into a Series.
// Recognized headers are time (RFC 3339), ustar, Tair, pressure, H, wind,
// Rn, and G; unrecognized columns are ignored. Empty cells, "NA", and
// "NaN" become the missing sentinel.
func ReadSeries(r io.Reader) (*micromet.Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("micromet: reading CSV header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	s := new(micromet.Series)
	var times []time.Time
	cols := map[string]*[]float64{
		"ustar":    &s.Ustar,
		"Tair":     &s.Tair,
		"pressure": &s.Pressure,
		"H":        &s.H,
		"wind":     &s.Wind,
		"Rn":       &s.Rn,
		"G":        &s.G,
	}
	_, hasTime := index["time"]

	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("micromet: reading CSV line %d: %w", line, err)
		}
		if hasTime {
			cell := record[index["time"]]
			t, err := time.Parse(time.RFC3339, cell)
			if err != nil {
				return nil, fmt.Errorf("micromet: CSV line %d: bad timestamp %q: %w", line, cell, err)
			}
			times = append(times, t)
		}
		for name, col := range cols {
			i, ok := index[name]
			if !ok {
				continue
			}
			v, err := parseCell(record[i])
			if err != nil {
				return nil, fmt.Errorf("micromet: CSV line %d, column %q: %w", line, name, err)
			}
			*col = append(*col, v)
		}
	}
	if hasTime {
		s.Time = times
	}
	return s, nil
}

// ReadSeriesFile reads a CSV observation table from a file.
func ReadSeriesFile(path string) (*micromet.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("micromet: opening input file: %w", err)
	}
	defer f.Close()
	return ReadSeries(f)
}

func parseCell(cell string) (float64, error) {
	switch cell {
	case "", "NA", "NaN", "nan":
		return micromet.Missing(), nil
	}
	return strconv.ParseFloat(cell, 64)
}

func formatCell(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteSeries writes the populated input columns followed by the derived
// columns. Missing values are written as "NA".
func WriteSeries(w io.Writer, s *micromet.Series, derived []Column) error {
	n := s.Len()
	for _, col := range derived {
		if len(col.Values) != n {
			return fmt.Errorf("micromet: derived column %q has %d rows, want %d",
				col.Name, len(col.Values), n)
		}
	}

	type namedCol struct {
		name   string
		values []float64
	}
	inputs := []namedCol{
		{"ustar", s.Ustar},
		{"Tair", s.Tair},
		{"pressure", s.Pressure},
		{"H", s.H},
		{"wind", s.Wind},
		{"Rn", s.Rn},
		{"G", s.G},
	}

	cw := csv.NewWriter(w)
	header := []string{}
	if s.Time != nil {
		header = append(header, "time")
	}
	for _, col := range inputs {
		if col.values != nil {
			header = append(header, col.name)
		}
	}
	for _, col := range derived {
		header = append(header, col.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, 0, len(header))
	for i := 0; i < n; i++ {
		record = record[:0]
		if s.Time != nil {
			record = append(record, s.Time[i].Format(time.RFC3339))
		}
		for _, col := range inputs {
			if col.values != nil {
				record = append(record, formatCell(col.values[i]))
			}
		}
		for _, col := range derived {
			record = append(record, formatCell(col.Values[i]))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSeriesFile writes the table to a file.
func WriteSeriesFile(path string, s *micromet.Series, derived []Column) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("micromet: creating output file: %w", err)
	}
	if err := WriteSeries(f, s, derived); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
