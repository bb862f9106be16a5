/*
 * schema.go, part of mlbonds.
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
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the version of the column layout produced by this package.
// It must be increased whenever the meaning or order of the columns changes.
const SchemaVersion = 1

// Names of the columns that describe the pair itself.
const (
	ColID1     = "id1"
	ColID2     = "id2"
	ColCharge  = "q"
	ColZA      = "ata"
	ColZB      = "atb"
	ColDistAB  = "distab"
	ColPredict = "preds"
)

var pairColumns = []string{ColID1, ColID2, ColCharge, ColZA, ColZB, ColDistAB}

// Schema describes the columns of a feature table. A model should only be used with
// tables built with a schema that passes Check against the one it was trained with.
type Schema struct {
	Version   int      `yaml:"version"`
	Neighbors int      `yaml:"neighbors"`
	Cutoff    float64  `yaml:"cutoff"`
	Padded    bool     `yaml:"padded"`
	Columns   []string `yaml:"columns"`
}

// NewSchema returns the schema for padded tables with n neighbors per pair atom.
func NewSchema(n int, cutoff float64) *Schema {
	return &Schema{
		Version:   SchemaVersion,
		Neighbors: n,
		Cutoff:    cutoff,
		Padded:    true,
		Columns:   columnNames(n, n),
	}
}

// columnNames returns the header for rows with na neighbors for the
// atom a and nb for the atom b.
func columnNames(na, nb int) []string {
	ret := make([]string, 0, len(pairColumns)+3*(na+nb))
	ret = append(ret, pairColumns...)
	for _, r := range []struct {
		label, other string
		n            int
	}{{"a", "b", na}, {"b", "a", nb}} {
		for k := 1; k <= r.n; k++ {
			ret = append(ret,
				fmt.Sprintf("at%s%d", r.label, k),
				fmt.Sprintf("dist%s%d", r.label, k),
				fmt.Sprintf("dist%s%d%s", r.label, k, r.other))
		}
	}
	return ret
}

// Width returns the number of columns in the schema.
func (S *Schema) Width() int {
	return len(S.Columns)
}

// Index returns the position of the column name, or -1 if it is not in the schema.
func (S *Schema) Index(name string) int {
	return slices.Index(S.Columns, name)
}

// Check returns an error wrapping ErrSchema if tables built with S can't be fed to a
// model trained with tables built with other.
func (S *Schema) Check(other *Schema) error {
	switch {
	case other == nil:
		return errors.Wrap(ErrSchema, "nil schema")
	case S.Version != other.Version:
		return errors.Wrapf(ErrSchema, "version %d, expected %d", S.Version, other.Version)
	case S.Neighbors != other.Neighbors:
		return errors.Wrapf(ErrSchema, "%d neighbors, expected %d", S.Neighbors, other.Neighbors)
	case S.Cutoff != other.Cutoff:
		return errors.Wrapf(ErrSchema, "cutoff %g, expected %g", S.Cutoff, other.Cutoff)
	case !slices.Equal(S.Columns, other.Columns):
		return errors.Wrapf(ErrSchema, "columns %v, expected %v", S.Columns, other.Columns)
	}
	return nil
}

// WriteSchema writes S to w as YAML.
func WriteSchema(w io.Writer, S *Schema) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(S); err != nil {
		return errors.Wrap(err, "encoding schema")
	}
	return enc.Close()
}

// ReadSchema reads a YAML schema from r.
func ReadSchema(r io.Reader) (*Schema, error) {
	S := new(Schema)
	if err := yaml.NewDecoder(r).Decode(S); err != nil {
		return nil, errors.Wrap(err, "decoding schema")
	}
	if S.Version == 0 || len(S.Columns) == 0 {
		return nil, errors.Wrap(ErrSchema, "schema without version or columns")
	}
	return S, nil
}

// SaveSchema writes S to the file name.
func SaveSchema(name string, S *Schema) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := WriteSchema(f, S); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadSchema reads the schema in the file name.
func LoadSchema(name string) (*Schema, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	S, err := ReadSchema(f)
	if err != nil {
		return nil, errors.Wrapf(err, "schema file %s", name)
	}
	return S, nil
}
