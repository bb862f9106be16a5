/*
 * label.go, part of mlbonds.
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

// BondLookup gives the order of the bond between two atoms, identified by
// their 1-based ids, or 0 if they are not bonded.
type BondLookup interface {
	Order(id1, id2 int) int
}

// Label returns, for each row of T, the bond order that lookup gives for its
// pair. It is meant to build training targets from reference structures.
func Label(T *Table, lookup BondLookup) []float64 {
	ret := make([]float64, T.Len())
	for i, p := range T.pairs {
		ret[i] = float64(lookup.Order(p.IDs()))
	}
	return ret
}
