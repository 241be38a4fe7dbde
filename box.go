/*
 * box.go, part of godock.
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

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	v3 "github.com/rmera/godock/v3"
)

//Centroid returns the geometric center of the vectors in coords, as a 1x3
//vector. Note that it is not the center of mass: every atom weighs the
//same.
func Centroid(coords *v3.Matrix) (*v3.Matrix, error) {
	if coords == nil {
		return nil, CError{string(ErrNilCoords), []string{"Centroid"}}
	}
	n := coords.NVecs()
	cen := make([]float64, 3)
	col := make([]float64, n)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, coords)
		cen[j] = floats.Sum(col) / float64(n)
	}
	ret, err := v3.NewMatrix(cen)
	if err != nil {
		return nil, errDecorate(err, "Centroid")
	}
	return ret, nil
}

//BoxDims returns the dimensions, as a 1x3 vector, of the smallest
//axis-aligned box containing the vectors in coords, enlarged by pad on
//each axis. Together with Centroid, it defines a docking box around a
//binding site.
func BoxDims(coords *v3.Matrix, pad float64) (*v3.Matrix, error) {
	if coords == nil {
		return nil, CError{string(ErrNilCoords), []string{"BoxDims"}}
	}
	n := coords.NVecs()
	dims := make([]float64, 3)
	col := make([]float64, n)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, coords)
		dims[j] = floats.Max(col) - floats.Min(col) + pad
	}
	ret, err := v3.NewMatrix(dims)
	if err != nil {
		return nil, errDecorate(err, "BoxDims")
	}
	return ret, nil
}
