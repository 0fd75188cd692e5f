/*
 * errors.go, part of goKin.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}usachDOTcl>
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
 *
 * goKin is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package kin

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else. The decoration slice
// should contain a list of the functions in the calling stack plus, for each
// function, any relevant information, or nothing.
type Error interface {
	Error() string
	Decorate(string) []string
}

// Kinds of construction-time failures. All of them are fatal to the caller:
// there is nothing to retry, the inputs are inconsistent.
const (
	//InvalidInput signals a missing or ill-formed argument, such as an empty
	//reactant or product list where at least one species is required.
	InvalidInput = "invalid input"

	//InvalidBarrier signals a negative forward or reverse barrier, i.e. an
	//inconsistent energy ordering between the transition state and the
	//reactants or products.
	InvalidBarrier = "invalid barrier"

	//InvalidTransitionState signals a transition state that does not have
	//exactly one imaginary vibrational frequency.
	InvalidTransitionState = "invalid transition state"

	//ParseError signals a file that could be opened but not understood. Only
	//the file-reading subpackages report it.
	ParseError = "parse error"
)

// CError is the concrete error type of the kin package. It carries the kind of
// failure, a message, and the decoration stack.
type CError struct {
	kind string
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Kind returns the kind of failure (one of the Invalid* constants).
func (err CError) Kind() string { return err.kind }

// Decorate will add the dec string to the decoration slice of strings of the
// error, and return the resulting slice. If dec is empty, it only returns the
// current slice.
func (err CError) Decorate(dec string) []string {
	//Even though this method does not use a pointer as a receiver, and tries
	//to alter the receiver, it should work, since err.deco is a slice, and
	//hence a pointer itself.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// IsKind returns whether err is a goKin error of the given kind. It works with
// the error types of the subpackages as long as they implement Kind.
func IsKind(err error, kind string) bool {
	e, ok := err.(interface{ Kind() string })
	return ok && e.Kind() == kind
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before returning it. Calling it with anything else is a
// programming error, and panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
