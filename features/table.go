/*
 * table.go, part of mlbonds.
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
	"slices"

	"github.com/cockroachdb/errors"
	chem "github.com/rmera/mlbonds"
	"gonum.org/v1/gonum/mat"
)

// Table is a row-major feature table with named columns. One row corresponds
// to one candidate pair. Tables are not modified after construction.
type Table struct {
	schema *Schema
	header []string
	pairs  []Pair
	data   []float64
}

// Build returns the feature table for mol, with one row per candidate pair
// (see CandidatePairs) in the layout
//
//	id1 id2 q ata atb distab [at dist distother]×N for a, [at dist distother]×N for b
//
// where ids are 1-based, a is the atom of the pair with the higher atomic number,
// and the neighbor triples are those given by NeighborFeatures. If opts is nil,
// DefaultOptions are used.
func Build(mol *chem.Molecule, opts *Options) (*Table, error) {
	return BuildWithDistances(mol, mol.Distances(), opts)
}

// BuildWithDistances is like Build but uses the given distance matrix for mol.
func BuildWithDistances(mol *chem.Molecule, D mat.Symmetric, opts *Options) (*Table, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if D.SymmetricDim() != mol.Len() {
		return nil, errors.Wrapf(ErrShape, "distance matrix for %d atoms, molecule has %d", D.SymmetricDim(), mol.Len())
	}
	n := opts.Neighbors()
	pad := opts.Pad()
	T := &Table{schema: NewSchema(n, opts.Cutoff())}
	T.pairs = CandidatePairs(mol, D, opts.Cutoff())
	if pad {
		T.header = T.schema.Columns
		T.data = make([]float64, 0, len(T.pairs)*T.schema.Width())
	}
	//each atom's neighbor ordering is only computed once per molecule
	sorted := make(map[int][]int)
	for r, pair := range T.pairs {
		id1, id2 := pair.IDs()
		row := []float64{
			float64(id1),
			float64(id2),
			float64(mol.Charge()),
			float64(mol.AtomicNumber(pair.A)),
			float64(mol.AtomicNumber(pair.B)),
			D.At(pair.A, pair.B),
		}
		found := make([]int, 0, 2)
		for _, p := range []int{pair.A, pair.B} {
			s, ok := sorted[p]
			if !ok {
				s = SortedNeighbors(D, p)
				sorted[p] = s
			}
			neighs := firstNeighbors(s, pair, n)
			found = append(found, len(neighs))
			row = append(row, neighborFeatures(mol, D, pair, p, neighs)...)
			if pad {
				row = append(row, make([]float64, 3*(n-len(neighs)))...)
			}
		}
		if T.header == nil {
			T.header = columnNames(found[0], found[1])
			T.schema.Padded = false
			T.schema.Columns = T.header
			T.data = make([]float64, 0, len(T.pairs)*len(T.header))
		}
		if len(row) != len(T.header) {
			return nil, errors.Wrapf(ErrShape, "row %d (pair %s) has %d values, the header has %d", r, pair, len(row), len(T.header))
		}
		T.data = append(T.data, row...)
	}
	if T.header == nil {
		//no candidate pairs and no padding: the header rows of mol would have.
		k := min(n, max(mol.Len()-2, 0))
		T.header = columnNames(k, k)
		T.schema.Padded = false
		T.schema.Columns = T.header
	}
	return T, nil
}

// Schema returns the schema of the feature columns of the table. Columns added with
// WithColumn are not part of it.
func (T *Table) Schema() *Schema {
	S := *T.schema
	S.Columns = slices.Clone(T.schema.Columns)
	return &S
}

// Len returns the number of rows in the table.
func (T *Table) Len() int {
	return len(T.pairs)
}

// Width returns the number of columns in the table.
func (T *Table) Width() int {
	return len(T.header)
}

// Header returns a copy of the column names.
func (T *Table) Header() []string {
	return slices.Clone(T.header)
}

// Row returns a copy of the ith row.
func (T *Table) Row(i int) []float64 {
	w := T.Width()
	return slices.Clone(T.data[i*w : (i+1)*w])
}

// Pair returns the candidate pair of the ith row.
func (T *Table) Pair(i int) Pair {
	return T.pairs[i]
}

// Pairs returns a copy of the candidate pairs, in row order.
func (T *Table) Pairs() []Pair {
	return slices.Clone(T.pairs)
}

// Column returns a copy of the column name. The returned error wraps ErrNoColumn
// if there is no such column.
func (T *Table) Column(name string) ([]float64, error) {
	c := slices.Index(T.header, name)
	if c < 0 {
		return nil, errors.Wrapf(ErrNoColumn, "%q", name)
	}
	w := T.Width()
	ret := make([]float64, T.Len())
	for i := range ret {
		ret[i] = T.data[i*w+c]
	}
	return ret, nil
}

// Dense returns a copy of the table as a rows×columns matrix, with the columns in
// header order. It returns nil for a table without rows, as gonum matrices can't
// be empty.
func (T *Table) Dense() *mat.Dense {
	if T.Len() == 0 {
		return nil
	}
	return mat.NewDense(T.Len(), T.Width(), slices.Clone(T.data))
}

// WithColumn returns a new table with the column name, with the given values, added
// after the last column of T. T is not modified.
func (T *Table) WithColumn(name string, values []float64) (*Table, error) {
	if len(values) != T.Len() {
		return nil, errors.Wrapf(ErrShape, "column %q has %d values, the table has %d rows", name, len(values), T.Len())
	}
	if slices.Contains(T.header, name) {
		return nil, errors.Newf("column %q already in the table", name)
	}
	w := T.Width()
	R := &Table{
		schema: T.schema,
		header: append(slices.Clone(T.header), name),
		pairs:  T.pairs,
		data:   make([]float64, 0, T.Len()*(w+1)),
	}
	for i, v := range values {
		R.data = append(R.data, T.data[i*w:(i+1)*w]...)
		R.data = append(R.data, v)
	}
	return R, nil
}

// Concat returns a table with the rows of all the given tables, in order. The
// tables must have the same columns, otherwise the error wraps ErrShape. The
// result has the schema of the first table.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return nil, errors.Wrap(ErrEmpty, "no tables to concatenate")
	}
	first := tables[0]
	R := &Table{schema: first.schema, header: slices.Clone(first.header)}
	for i, T := range tables {
		if !slices.Equal(T.header, first.header) {
			return nil, errors.Wrapf(ErrShape, "table %d has columns %v, expected %v", i, T.header, first.header)
		}
		R.pairs = append(R.pairs, T.pairs...)
		R.data = append(R.data, T.data...)
	}
	return R, nil
}
