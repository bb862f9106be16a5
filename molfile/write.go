/*
 * write.go, part of mlbonds.
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
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	chem "github.com/rmera/mlbonds"
)

// Comment is the second line of every connection table written by this package.
const Comment = "ML generated sdf"

func checkBonds(natoms int, bonds []Bond) error {
	for i, b := range bonds {
		if b.From < 1 || b.From > natoms || b.To < 1 || b.To > natoms {
			return errors.Wrapf(ErrAtomIndex, "bond %d (%d-%d) in a molecule with %d atoms", i, b.From, b.To, natoms)
		}
	}
	return nil
}

// Write writes mol and bonds to w as a V2000 connection table: the molecule name,
// the comment line, an empty line, the counts line, one line per atom, in the
// molecule's order, and one line per bond. Nothing is written if a bond refers
// to an atom outside mol, and the error wraps ErrAtomIndex.
func Write(w io.Writer, mol *chem.Molecule, bonds []Bond) error {
	if err := checkBonds(mol.Len(), bonds); err != nil {
		return err
	}
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "%s\n%s\n\n", mol.Name(), Comment)
	fmt.Fprintf(out, "%3d%3d  0  0  0  0  0  0  0  0  1 V2000\n", mol.Len(), len(bonds))
	for i := 0; i < mol.Len(); i++ {
		c := mol.Coord(i)
		fmt.Fprintf(out, "%10.4f%10.4f%10.4f %-2s 0  0  0  0  0\n", c[0], c[1], c[2], mol.Symbol(i))
	}
	for _, b := range bonds {
		fmt.Fprintf(out, "%3d%3d%3d 0  0  0  0  0\n", b.From, b.To, b.Order)
	}
	return out.Flush()
}

// MolBlock returns the connection table that Write would produce.
func MolBlock(mol *chem.Molecule, bonds []Bond) (string, error) {
	var b strings.Builder
	if err := Write(&b, mol, bonds); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteSDF writes the connection table followed by the "M  END" and "$$$$" lines,
// so the output of several calls can be concatenated into one SD file.
func WriteSDF(w io.Writer, mol *chem.Molecule, bonds []Bond) error {
	if err := Write(w, mol, bonds); err != nil {
		return err
	}
	_, err := io.WriteString(w, "M  END\n$$$$\n")
	return err
}
