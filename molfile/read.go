/*
 * read.go, part of mlbonds.
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

package molfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	chem "github.com/rmera/mlbonds"
	v3 "github.com/rmera/mlbonds/v3"
)

// Record holds the header, atom and bond blocks of a V2000 connection table.
type Record struct {
	Name    string
	Comment string
	Symbols []string
	Coords  []float64 //3 per atom
	Bonds   []Bond
	orders  map[[2]int]int
}

// Order returns the order of the bond between the atoms with the 1-based ids
// id1 and id2, in either order, or 0 if they are not bonded.
func (R *Record) Order(id1, id2 int) int {
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return R.orders[[2]int{id1, id2}]
}

// Molecule returns a neutral molecule with the atoms of the record.
func (R *Record) Molecule() (*chem.Molecule, error) {
	coords, err := v3.NewMatrix(R.Coords)
	if err != nil {
		return nil, errors.Wrap(err, "record coordinates")
	}
	mol, err := chem.NewMolecule(R.Symbols, coords, 0)
	if err != nil {
		return nil, err
	}
	return mol.Named(R.Name, R.Comment), nil
}

// field returns the trimmed columns [from,to) of line, or whatever part of
// them the line has.
func field(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	return strings.TrimSpace(line[from:min(to, len(line))])
}

// Read reads the first connection table in r. Property lines after the bond
// block are ignored.
func Read(r io.Reader) (*Record, error) {
	sc := bufio.NewScanner(r)
	lines := make([]string, 0, 64)
	counts := -1
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		lines = append(lines, line)
		if counts < 0 && len(lines) > 3 && strings.Contains(line, "V2000") {
			counts = len(lines) - 1
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if counts < 0 {
		return nil, errors.Wrap(ErrFormat, "no V2000 counts line")
	}
	R := &Record{Name: strings.TrimSpace(lines[0]), Comment: strings.TrimSpace(lines[1])}
	natoms, err1 := strconv.Atoi(field(lines[counts], 0, 3))
	nbonds, err2 := strconv.Atoi(field(lines[counts], 3, 6))
	if err := errors.CombineErrors(err1, err2); err != nil || natoms < 0 || nbonds < 0 {
		return nil, errors.Wrapf(ErrFormat, "counts line %q", lines[counts])
	}
	R.Symbols = make([]string, 0, natoms)
	R.Coords = make([]float64, 0, 3*natoms)
	R.Bonds = make([]Bond, 0, nbonds)
	R.orders = make(map[[2]int]int, nbonds)
	for i := 0; i < natoms+nbonds; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, errors.Wrapf(ErrFormat, "file ends after %d of %d atoms and %d bonds", i, natoms, nbonds)
		}
		line := sc.Text()
		if i < natoms {
			if err := R.addAtom(line); err != nil {
				return nil, errors.Wrapf(err, "atom %d", i+1)
			}
			continue
		}
		if err := R.addBond(line, natoms); err != nil {
			return nil, errors.Wrapf(err, "bond %d", i-natoms+1)
		}
	}
	return R, nil
}

func (R *Record) addAtom(line string) error {
	var xyz [3]float64
	for k := range xyz {
		v, err := strconv.ParseFloat(field(line, 10*k, 10*(k+1)), 64)
		if err != nil {
			return errors.Wrapf(ErrFormat, "coordinates in %q", line)
		}
		xyz[k] = v
	}
	symbol := field(line, 31, 34)
	if symbol == "" {
		return errors.Wrapf(ErrFormat, "no element in %q", line)
	}
	R.Symbols = append(R.Symbols, symbol)
	R.Coords = append(R.Coords, xyz[:]...)
	return nil
}

func (R *Record) addBond(line string, natoms int) error {
	var v [3]int
	for k := range v {
		n, err := strconv.Atoi(field(line, 3*k, 3*(k+1)))
		if err != nil {
			return errors.Wrapf(ErrFormat, "bond line %q", line)
		}
		v[k] = n
	}
	b := Bond{From: v[0], To: v[1], Order: v[2]}
	if err := checkBonds(natoms, []Bond{b}); err != nil {
		return err
	}
	R.Bonds = append(R.Bonds, b)
	R.orders[[2]int{min(b.From, b.To), max(b.From, b.To)}] = b.Order
	return nil
}

// ReadFile reads the first connection table in the file name.
func ReadFile(name string) (*Record, error) {
	f, err := chem.OpenFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	R, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return R, nil
}
