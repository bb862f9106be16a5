/*
 * export.go, part of mlbonds.
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
	"bufio"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/sbinet/npyio"
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes the table to w as CSV, with the header as the first line.
// A table without rows produces only the header.
func WriteCSV(w io.Writer, T *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(T.header); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	rec := make([]string, T.Width())
	for i := 0; i < T.Len(); i++ {
		for j, v := range T.Row(i) {
			rec[j] = formatValue(v)
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrapf(err, "writing CSV row %d", i)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteNPY writes the table values, without header, to w as a 2D float64
// NumPy array. The column names can be recovered from the table's Schema.
// Tables without rows can't be written and give an error wrapping ErrEmpty.
func WriteNPY(w io.Writer, T *Table) error {
	D := T.Dense()
	if D == nil {
		return errors.Wrap(ErrEmpty, "writing NPY")
	}
	if err := npyio.Write(w, D); err != nil {
		return errors.Wrap(err, "writing NPY")
	}
	return nil
}

// WriteLibSVM writes the table to w in LIBSVM format, one line per row, each
// starting with the corresponding label. All the values are written, including
// zeros, with 0-based column indexes. labels must have one element per row.
func WriteLibSVM(w io.Writer, T *Table, labels []float64) error {
	if len(labels) != T.Len() {
		return errors.Wrapf(ErrShape, "%d labels for %d rows", len(labels), T.Len())
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < T.Len(); i++ {
		bw.WriteString(formatValue(labels[i]))
		for j, v := range T.Row(i) {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(j))
			bw.WriteByte(':')
			bw.WriteString(formatValue(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
