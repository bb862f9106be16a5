/*
 * graph.go, part of mlbonds.
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

// Package chemgraph represents a molecule with a set of bonds as a gonum
// undirected graph, so graph algorithms can be used to check the predicted
// connectivity.
package chemgraph

import (
	"slices"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	chem "github.com/rmera/mlbonds"
	"github.com/rmera/mlbonds/molfile"
)

// Atom is a graph node. Its ID is the 0-based index of the atom in the molecule.
type Atom struct {
	index  int
	Symbol string
}

func (A *Atom) ID() int64 {
	return int64(A.index)
}

// Index returns the 0-based index of the atom.
func (A *Atom) Index() int {
	return A.index
}

// Bond is a weighted graph edge. The weight is the bond order.
type Bond struct {
	At1, At2 *Atom
	Order    int
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

// ReversedEdge returns a copy of B with the atoms swapped.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{At1: B.At2, At2: B.At1, Order: B.Order}
}

func (B *Bond) Weight() float64 {
	return float64(B.Order)
}

// Topology is the bond graph of a molecule.
type Topology struct {
	*simple.WeightedUndirectedGraph
	atoms []*Atom
}

// TopologyFromBonds returns the graph with the atoms of mol as nodes and the
// given bonds as edges. Bonds must join two different atoms of mol, otherwise
// the error wraps molfile.ErrAtomIndex.
func TopologyFromBonds(mol *chem.Molecule, bonds []molfile.Bond) (*Topology, error) {
	T := &Topology{
		WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, 0),
		atoms:                   make([]*Atom, mol.Len()),
	}
	for i := range T.atoms {
		T.atoms[i] = &Atom{index: i, Symbol: mol.Symbol(i)}
		T.AddNode(T.atoms[i])
	}
	n := mol.Len()
	for _, b := range bonds {
		if b.From < 1 || b.From > n || b.To < 1 || b.To > n || b.From == b.To {
			return nil, errors.Wrapf(molfile.ErrAtomIndex, "bond %d-%d in a molecule with %d atoms", b.From, b.To, n)
		}
		T.SetWeightedEdge(&Bond{At1: T.atoms[b.From-1], At2: T.atoms[b.To-1], Order: b.Order})
	}
	return T, nil
}

// Atom returns the node for the atom with the 0-based index i.
func (T *Topology) Atom(i int) *Atom {
	return T.atoms[i]
}

// Degree returns the number of atoms bonded to the atom with the 0-based index i.
func (T *Topology) Degree(i int) int {
	return T.From(int64(i)).Len()
}

// Valence returns the sum of the orders of the bonds of the atom with the
// 0-based index i.
func (T *Topology) Valence(i int) int {
	var v int
	nodes := T.From(int64(i))
	for nodes.Next() {
		v += T.WeightedEdge(int64(i), nodes.Node().ID()).(*Bond).Order
	}
	return v
}

// Fragments returns the connected components of the graph, as lists of 0-based
// atom indexes. Each list is sorted, and the lists are sorted by their first atom.
func (T *Topology) Fragments() [][]int {
	cc := topo.ConnectedComponents(T)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		frag := make([]int, 0, len(c))
		for _, n := range c {
			frag = append(frag, int(n.ID()))
		}
		slices.Sort(frag)
		ret = append(ret, frag)
	}
	slices.SortFunc(ret, func(a, b []int) int { return a[0] - b[0] })
	return ret
}
