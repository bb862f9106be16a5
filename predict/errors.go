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

package predict

import "github.com/cockroachdb/errors"

var (
	// ErrPredictionCount is returned when a classifier doesn't give exactly one
	// prediction per row.
	ErrPredictionCount = errors.New("prediction count doesn't match row count")
	// ErrModel is returned when a model can't be loaded or used with the
	// feature tables it is given.
	ErrModel = errors.New("unusable bond model")
)
