/*
 * v3_test.go, part of godock.
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

package v3

import (
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	r, c := A.Dims()
	if r != 3 || c != 3 {
		Te.Errorf("Wrong dimensions: %d, %d", r, c)
	}
	if A.At(1, 2) != 6.0 {
		Te.Errorf("Wrong element at 1,2: %f", A.At(1, 2))
	}
	//A 10-element slice is not a set of 3D vectors.
	if _, err := NewMatrix(a[:7]); err == nil {
		Te.Error("NewMatrix accepted a slice with length not divisible by 3")
	}
	//gonum panics on zero-sized matrices, so an empty slice must be
	//caught here, as an error.
	if _, err := NewMatrix(nil); err == nil {
		Te.Error("NewMatrix accepted an empty slice")
	}
}

func TestViews(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	v := A.VecView(1)
	if v.NVecs() != 1 || v.At(0, 0) != 4.0 {
		Te.Errorf("Wrong vector view: %v", v)
	}
	//views are reflected in the viewed matrix
	v.Set(0, 0, 40.0)
	if A.At(1, 0) != 40.0 {
		Te.Errorf("Change in view not reflected: %f", A.At(1, 0))
	}
	B := Zeros(3)
	B.SetMatrix(0, 0, A)
	if B.At(2, 2) != 9.0 {
		Te.Errorf("SetMatrix didn't copy the data: %f", B.At(2, 2))
	}
}
