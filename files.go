/*
 * files.go, part of mlbonds.
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

package chem

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/samber/lo"

	v3 "github.com/rmera/mlbonds/v3"
)

// compressed closes both the decompressor and the underlying file.
type compressed struct {
	io.Reader
	closers []func() error
}

func (c *compressed) Close() error {
	return closeAll(c.closers)
}

// closeAll calls all the closers in order and returns the first error.
func closeAll(closers []func() error) error {
	var err error
	for _, f := range closers {
		if e := f(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// OpenFile opens the file name for reading. Files ending in .gz or .zst are
// decompressed on the fly.
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, newCError(ErrParse, "OpenFile", "%s: %v", name, err)
		}
		return &compressed{Reader: gz, closers: []func() error{gz.Close, f.Close}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, newCError(ErrParse, "OpenFile", "%s: %v", name, err)
		}
		zclose := func() error { zr.Close(); return nil }
		return &compressed{Reader: zr, closers: []func() error{zclose, f.Close}}, nil
	}
	return f, nil
}

// CreateFile creates the file name for writing. Files ending in .gz or .zst are
// compressed on the fly. The file is complete only after Close returns without
// error.
func CreateFile(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz := gzip.NewWriter(f)
		return &compressedWriter{Writer: gz, closers: []func() error{gz.Close, f.Close}}, nil
	case ".zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, newCError(err, "CreateFile", "%s", name)
		}
		return &compressedWriter{Writer: zw, closers: []func() error{zw.Close, f.Close}}, nil
	}
	return f, nil
}

type compressedWriter struct {
	io.Writer
	closers []func() error
}

func (c *compressedWriter) Close() error {
	return closeAll(c.closers)
}

// XYZFileRead reads the xyz file xyzname and returns the molecule in it, named after
// the file (without directory or extensions). Compressed files are handled as
// in OpenFile.
func XYZFileRead(xyzname string) (*Molecule, error) {
	xyzfile, err := OpenFile(xyzname)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead")
	}
	defer xyzfile.Close()
	mol, err := XYZRead(xyzfile)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead: "+xyzname)
	}
	return mol.Named(baseName(xyzname), mol.Info()), nil
}

// XYZRead reads a molecule in the xyz format from r. The first non-blank line
// must contain the number of atoms, the next one is kept as the info line,
// and each following non-blank line must start with an element symbol and three
// coordinates. Additional fields in atom lines are ignored. The charge of the
// returned molecule is 0.
func XYZRead(r io.Reader) (*Molecule, error) {
	const maxPrealloc = 4096
	xyz := bufio.NewScanner(r)
	xyz.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	natoms := -1
	for natoms < 0 && xyz.Scan() {
		lineno++
		line := strings.TrimSpace(xyz.Text())
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil || n <= 0 {
			return nil, newCError(ErrParse, "XYZRead", "line %d: invalid number of atoms %q", lineno, line)
		}
		natoms = n
	}
	if natoms < 0 {
		if err := xyz.Err(); err != nil {
			return nil, err
		}
		return nil, newCError(ErrParse, "XYZRead", "empty xyz input")
	}
	info := ""
	if xyz.Scan() {
		lineno++
		info = strings.TrimRight(xyz.Text(), "\r\n")
	}
	//the header can't be trusted until the atoms are read.
	prealloc := min(natoms, maxPrealloc)
	symbols := make([]string, 0, prealloc)
	coords := make([]float64, 0, 3*prealloc)
	for xyz.Scan() {
		lineno++
		fields := strings.Fields(xyz.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 4 {
			return nil, newCError(ErrParse, "XYZRead", "line %d: expected symbol and 3 coordinates, got %d fields", lineno, len(fields))
		}
		for _, f := range fields[1:4] {
			c, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, newCError(ErrParse, "XYZRead", "line %d: invalid coordinate %q", lineno, f)
			}
			coords = append(coords, c)
		}
		symbols = append(symbols, fields[0])
	}
	if err := xyz.Err(); err != nil {
		return nil, err
	}
	if len(symbols) != natoms {
		return nil, newCError(ErrAtomCount, "XYZRead", "header says %d atoms, read %d", natoms, len(symbols))
	}
	vcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, newCError(ErrParse, "XYZRead", "%v", err)
	}
	if i := vcoords.Finite(); i >= 0 {
		return nil, newCError(ErrParse, "XYZRead", "atom %d: non-finite coordinates %v", i+1, vcoords.Vec(nil, i))
	}
	mol, err := NewMolecule(symbols, vcoords, 0)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return mol.Named("", info), nil
}

// ScanDir returns the sorted paths of the regular files in dir with the given
// extension (with or without the leading dot). It doesn't descend into
// subdirectories.
func ScanDir(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	ext = "." + strings.TrimPrefix(ext, ".")
	files := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return filepath.Join(dir, e.Name()), e.Type().IsRegular() && strings.HasSuffix(e.Name(), ext)
	})
	sort.Strings(files)
	return files, nil
}

// baseName returns the file name without directory and without any of
// the extensions xyz, gz, zst.
func baseName(name string) string {
	b := filepath.Base(name)
	for {
		ext := strings.ToLower(filepath.Ext(b))
		if ext != ".gz" && ext != ".zst" && ext != ".xyz" {
			return b
		}
		b = strings.TrimSuffix(b, filepath.Ext(b))
	}
}
