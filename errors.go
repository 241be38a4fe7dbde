/*
 * errors.go, part of godock.
 *
 * Copyright 2024 Raul Mera <rmeraaatacademicosdotutadotcl>
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
 * goDock is developed at Universidad de Tarapaca (UTA)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package dock

//Error is the interface for the errors returned by goDock functions. They can
//be "decorated" with the name of each function in the calling stack as they
//propagate up.
type Error interface {
	error
	Decorate(string) []string
	Critical() bool
}

//FileError is the interface for errors tied to an input file, such as a
//Vina output that can't be parsed.
type FileError interface {
	Error
	FileName() string
	Format() string
}

//CError is the concrete error type for the dock package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err CError) Critical() bool { return true }

//errDecorate asserts that the error implements Error and decorates it with
//the caller's name before returning it. A non-conforming error will cause
//a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics, even though it does satisfy the
//error interface. For errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilData     = PanicMsg("goDock: Nil data given")
	ErrNilAtoms    = PanicMsg("goDock: Nil topology or empty atom slice given")
	ErrNilCoords   = PanicMsg("goDock: Nil coordinates given")
	ErrNotAVector  = PanicMsg("goDock: A 1x3 vector is required")
	ErrAtomsCoords = PanicMsg("goDock: Coordinates don't match the number of atoms")
)
