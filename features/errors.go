/*
 * errors.go, part of mlbonds.
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

import "github.com/cockroachdb/errors"

var (
	// ErrShape is returned when a row or column doesn't have the width or length
	// expected by the table. It means a bug in the extraction, not bad input.
	ErrShape = errors.New("feature table shape mismatch")
	// ErrNoColumn is returned when a requested column doesn't exist.
	ErrNoColumn = errors.New("no such column")
	// ErrSchema is returned for incompatible or malformed schemas.
	ErrSchema = errors.New("incompatible feature schema")
	// ErrEmpty is returned when exporting a table without rows in a format that
	// can't represent it.
	ErrEmpty = errors.New("empty feature table")
)
