/*
 * chem.go, part of godock.
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
	"fmt"

	v3 "github.com/rmera/godock/v3"
)

//Atom contains the per-atom data read from a structure file, except for the
//coordinates and b-factors, which are in the Molecule, as they change
//between poses.
type Atom struct {
	Name      string
	ID        int
	MolName   string
	MolName1  byte //the one-letter name for residues and nucleotides
	MolID     int
	Chain     string
	Mass      float64
	Occupancy float64
	Charge    float64 //a partial charge, e.g. the one carried by PDBQT files
	Symbol    string
	Het       bool //is this a HETATM record?
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(ErrNilData)
	}
	at := new(Atom)
	*at = *A
	return at
}

//Topology contains information about a molecule which is not expected to
//change between poses, i.e. everything except for coordinates and b-factors.
type Topology struct {
	Atoms    []*Atom
	charge   int
	unpaired int
}

//NewTopology returns a topology with the given net charge, unpaired
//electrons and atoms. It doesn't check the consistency of charge or
//unpaired electrons.
func NewTopology(charge, unpaired int, ats []*Atom) *Topology {
	top := new(Topology)
	if ats == nil {
		ats = make([]*Atom, 0)
	}
	top.Atoms = ats
	top.charge = charge
	top.unpaired = unpaired
	return top
}

//Atom returns the Atom corresponding to the index i of the Atom slice in
//the Topology. Panics if out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic(PanicMsg(fmt.Sprintf("goDock: Requested atom (%d) out of bounds (%d)", i, T.Len())))
	}
	return T.Atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//Charge returns the total charge of the topology.
func (T *Topology) Charge() int {
	return T.charge
}

//Unpaired returns the number of unpaired electrons in the topology.
func (T *Topology) Unpaired() int {
	return T.unpaired
}

//SetCharge sets the total charge of the topology to i.
func (T *Topology) SetCharge(i int) {
	T.charge = i
}

//SetUnpaired sets the number of unpaired electrons in the topology to i.
func (T *Topology) SetUnpaired(i int) {
	T.unpaired = i
}

//Atomer is the basic interface for a topology.
type Atomer interface {
	//Atom returns the Atom corresponding to the index i of the Atom slice
	//in the Topology. Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

//Molecule contains all the info for a molecule in one or more states
//(poses, in docking terms). The info that changes between poses,
//coordinates and b-factors, is stored separately from the rest.
type Molecule struct {
	*Topology
	Coords   []*v3.Matrix
	Bfactors [][]float64
}

//NewMolecule makes a molecule from the given coordinates, topology and
//(possibly nil) b-factors. It checks that every frame of coordinates and
//b-factors matches the number of atoms.
func NewMolecule(coords []*v3.Matrix, ats *Topology, bfactors [][]float64) (*Molecule, error) {
	if ats == nil {
		return nil, CError{string(ErrNilAtoms), []string{"NewMolecule"}}
	}
	if coords == nil {
		return nil, CError{string(ErrNilCoords), []string{"NewMolecule"}}
	}
	for i, v := range coords {
		if v == nil || v.NVecs() != ats.Len() {
			return nil, CError{fmt.Sprintf("%s: frame %d", ErrAtomsCoords, i), []string{"NewMolecule"}}
		}
	}
	for i, v := range bfactors {
		if len(v) != ats.Len() {
			return nil, CError{fmt.Sprintf("goDock: Bfactors of frame %d don't match the number of atoms", i), []string{"NewMolecule"}}
		}
	}
	mol := new(Molecule)
	mol.Topology = ats
	mol.Coords = coords
	mol.Bfactors = bfactors
	return mol, nil
}

//NFrames returns the number of frames (poses) in the molecule.
func (M *Molecule) NFrames() int {
	return len(M.Coords)
}

//Coord returns a view of the coordinates for the atom atom in the frame
//frame. Panics if either is out of range.
func (M *Molecule) Coord(atom, frame int) *v3.Matrix {
	if frame >= len(M.Coords) {
		panic(PanicMsg(fmt.Sprintf("goDock: Frame requested (%d) out of range", frame)))
	}
	if atom >= M.Coords[frame].NVecs() {
		panic(PanicMsg(fmt.Sprintf("goDock: Requested coordinate (%d) out of bounds (%d)", atom, M.Coords[frame].NVecs())))
	}
	return M.Coords[frame].VecView(atom)
}

//Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	ats := make([]*Atom, 0, M.Len())
	for i := 0; i < M.Len(); i++ {
		ats = append(ats, M.Atom(i).Copy())
	}
	coords := make([]*v3.Matrix, 0, len(M.Coords))
	for _, v := range M.Coords {
		c := v3.Zeros(v.NVecs())
		c.SetMatrix(0, 0, v)
		coords = append(coords, c)
	}
	var bfacts [][]float64
	if M.Bfactors != nil {
		bfacts = make([][]float64, 0, len(M.Bfactors))
		for _, v := range M.Bfactors {
			b := make([]float64, len(v))
			copy(b, v)
			bfacts = append(bfacts, b)
		}
	}
	mol, _ := NewMolecule(coords, NewTopology(M.Charge(), M.Unpaired(), ats), bfacts)
	return mol
}
