/*
 * matrix.go, part of mlbonds.
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

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space. Within the package it is understood
// that a "vector" is a row vector, i.e. the cartesian coordinates of a point.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	return &Matrix{mat.NewDense(vecs, cols, make([]float64, cols*vecs))}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// data is used as the backing slice, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l == 0 {
		return nil, Error{"Empty input slice", []string{"NewMatrix"}, true}
	}
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNot3xX)
	}
	return r
}

// Vec copies the ith vector of F into dst, allocating it if nil, and returns it.
func (F *Matrix) Vec(dst []float64, i int) []float64 {
	if dst == nil {
		dst = make([]float64, 3)
	}
	return mat.Row(dst, i, F.Dense)
}

// RawVec returns the ith vector as a slice of the backing data, without copying.
func (F *Matrix) RawVec(i int) []float64 {
	return F.Dense.RawRowView(i)
}

// Copy returns a deep copy of F.
func (F *Matrix) Copy() *Matrix {
	r := Zeros(F.NVecs())
	r.Dense.Copy(F.Dense)
	return r
}

// Finite returns the index of the first vector of F containing a NaN or
// infinite component, or -1 if all coordinates are finite.
func (F *Matrix) Finite() int {
	for i := 0; i < F.NVecs(); i++ {
		for _, v := range F.RawVec(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return i
			}
		}
	}
	return -1
}

//Errors

// Error is the error type returned by this package. It is the same as
// chem.Error but defined here to avoid a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate adds dec to the list of callers of the error and returns it.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical.
func (err Error) Critical() bool { return err.critical }

// PanicMsg is the type used for all the panics raised in the v3 package.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

// ErrNot3xX is raised when a v3.Matrix doesn't have 3 columns.
const ErrNot3xX = PanicMsg("mlbonds/v3: A v3.Matrix should have 3 columns")
