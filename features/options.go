/*
 * options.go, part of mlbonds.
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

const (
	DefaultCutoff    = 3.0
	DefaultNeighbors = 3
)

// Options controls the construction of feature tables.
type Options struct {
	cutoff    float64
	neighbors int
	pad       bool
}

// DefaultOptions returns an Options with a 3.0 A cutoff, 3 neighbors per pair atom
// and padding enabled.
func DefaultOptions() *Options {
	return &Options{cutoff: DefaultCutoff, neighbors: DefaultNeighbors, pad: true}
}

// Cutoff returns the maximum distance for a pair of atoms to be considered a bond
// candidate, and sets it if a positive value is given.
func (O *Options) Cutoff(cutoff ...float64) float64 {
	ret := O.cutoff
	if len(cutoff) > 0 && cutoff[0] > 0 {
		O.cutoff = cutoff[0]
	}
	return ret
}

// Neighbors returns the number of nearest neighbors described for each atom of
// a pair, and sets it if a non-negative value is given.
func (O *Options) Neighbors(n ...int) int {
	ret := O.neighbors
	if len(n) > 0 && n[0] >= 0 {
		O.neighbors = n[0]
	}
	return ret
}

// Pad returns whether rows for atoms with fewer neighbors than requested are
// padded with zeros, and sets it if a value is given. Without padding, rows
// can be shorter than the header, which is an error when building a table
// with more than one row shape.
func (O *Options) Pad(pad ...bool) bool {
	ret := O.pad
	if len(pad) > 0 {
		O.pad = pad[0]
	}
	return ret
}
