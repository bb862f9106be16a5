/*
 * describe.go, part of mlbonds.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package features

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnStats summarizes the values of one column of a table.
type ColumnStats struct {
	Name      string
	Mean, Std float64
	Min, Max  float64
}

// Describe returns the statistics for each column of T, in header order.
// The standard deviation of a single-row table is 0. It returns nil for a
// table without rows.
func Describe(T *Table) []ColumnStats {
	if T.Len() == 0 {
		return nil
	}
	ret := make([]ColumnStats, 0, T.Width())
	for _, name := range T.header {
		col, _ := T.Column(name)
		cs := ColumnStats{Name: name, Min: floats.Min(col), Max: floats.Max(col)}
		if len(col) == 1 {
			cs.Mean = col[0]
		} else {
			cs.Mean, cs.Std = stat.MeanStdDev(col, nil)
		}
		ret = append(ret, cs)
	}
	return ret
}
