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

package chem

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

// Sentinel causes for the structural errors of this package. CErrors returned by the
// package wrap one of them, so they can be checked with errors.Is.
var (
	ErrAtomCount = errors.New("number of atoms and coordinates differ")
	ErrParse     = errors.New("malformed geometry")
)

// CError is the error type of the chem package.
type CError struct {
	msg      string
	deco     []string
	critical bool
	cause    error
}

func newCError(cause error, caller string, format string, a ...interface{}) *CError {
	return &CError{msg: fmt.Sprintf(format, a...), deco: []string{caller}, critical: true, cause: cause}
}

// Error returns the error message.
func (err *CError) Error() string {
	if err.cause != nil {
		return fmt.Sprintf("%s: %s", err.cause, err.msg)
	}
	return err.msg
}

// Decorate adds dec to the list of callers of the error, and returns the list.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical. All structural errors are.
func (err *CError) Critical() bool { return err.critical }

// Unwrap returns the sentinel cause of the error, if any.
func (err *CError) Unwrap() error { return err.cause }

// errDecorate decorates err with the caller's name if it implements Error,
// and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
